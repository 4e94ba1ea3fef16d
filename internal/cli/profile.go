package cli

import (
	"bytes"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"go-dominance/internal/chart"
	"go-dominance/internal/model"
	"go-dominance/internal/pipeline"
)

var (
	profileSource    sourceFlags
	profileKey       string
	profileKeyColumn string
	profileDirection string
	profilePNG       string
)

// profileCmd represents the profile command
var profileCmd = &cobra.Command{
	Use:   "profile [path or url]",
	Short: "Show one row of a wide table, e.g. a country's MBTI shares",
	Long: `Show the numeric columns of the row whose key column matches --key.

Proportions (a first row summing to about 1) are scaled to percent. The largest
value is highlighted and the three largest are listed separately.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := profileSource.source(args, "mbti")
		if err != nil {
			return err
		}
		p, err := newRunner().Profile(cmd.Context(), model.ProfileRequest{
			Source:    src,
			KeyColumn: profileKeyColumn,
			Key:       profileKey,
			Direction: profileDirection,
		})
		if err != nil {
			return err
		}

		if profilePNG != "" {
			err := writePNG(profilePNG, func(buf *bytes.Buffer) error {
				return chart.ProfileBar(buf, p.Key, p, chart.Options{})
			})
			if err != nil {
				return err
			}
			success(cmd.ErrOrStderr(), fmt.Sprintf("Wrote chart to %s", profilePNG))
		}
		return printProfile(cmd.OutOrStdout(), p)
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)

	profileSource.register(profileCmd)
	profileCmd.Flags().StringVar(&profileKey, "key", "", "value of the key column to show (required)")
	profileCmd.Flags().StringVar(&profileKeyColumn, "key-column", pipeline.DefaultProfileKey, "key column")
	profileCmd.Flags().StringVar(&profileDirection, "direction", "asc", "gradient direction (asc, desc)")
	profileCmd.Flags().StringVar(&profilePNG, "png", "", "also render a bar chart to this file")
	_ = profileCmd.MarkFlagRequired("key")
}

func printProfile(w io.Writer, p *model.Profile) error {
	if ok, err := printStructured(w, p); ok {
		return err
	}

	rows := make([][]string, len(p.Values))
	highlightRow := -1
	for i, v := range p.Values {
		if v.Color == pipeline.HighlightRed && highlightRow < 0 {
			highlightRow = i
		}
		rows[i] = []string{v.Label, fmt.Sprintf("%.2f", v.Value), string(v.Color)}
	}
	unit := "VALUE"
	if p.Scaled {
		unit = "PCT"
	}
	fmt.Fprintf(w, "%s\n\n", p.Key)
	printTable(w, []string{"COLUMN", unit, "COLOR"}, rows, highlightRow)

	fmt.Fprintln(w)
	for i, v := range p.Top {
		fmt.Fprintf(w, "%d. %s  %.2f\n", i+1, v.Label, v.Value)
	}
	return nil
}
