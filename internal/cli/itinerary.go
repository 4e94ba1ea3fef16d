package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"go-dominance/internal/itinerary"
)

var itineraryDays int

// itineraryCmd represents the itinerary command
var itineraryCmd = &cobra.Command{
	Use:   "itinerary",
	Short: "Split the ten favourite Seoul sights over 1 to 3 days",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		plan, err := itinerary.Split(itinerary.SeoulTop10, itineraryDays)
		if err != nil {
			return err
		}
		return printPlan(cmd.OutOrStdout(), plan)
	},
}

func init() {
	rootCmd.AddCommand(itineraryCmd)
	itineraryCmd.Flags().IntVar(&itineraryDays, "days", 2, "number of days (1-3)")
}

func printPlan(w io.Writer, plan *itinerary.Plan) error {
	if ok, err := printStructured(w, plan); ok {
		return err
	}

	fmt.Fprintf(w, "Map center %.4f, %.4f; up to %d sights per day\n", plan.CenterLat, plan.CenterLon, plan.PerDay)
	for _, day := range plan.Days {
		fmt.Fprintf(w, "\nDay %d\n", day.Day)
		if len(day.Places) == 0 {
			fmt.Fprintln(w, "  free day")
			continue
		}
		for _, p := range day.Places {
			fmt.Fprintf(w, "  - %s (%s)\n    %s\n", p.Name, p.Subway, p.Description)
		}
	}
	return nil
}
