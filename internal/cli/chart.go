package cli

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"go-dominance/internal/chart"
	"go-dominance/internal/model"
)

var (
	chartFlags  aggregateFlags
	chartKind   string
	chartOut    string
	chartWidth  int
	chartHeight int
)

// chartCmd represents the chart command
var chartCmd = &cobra.Command{
	Use:   "chart [path or url]",
	Short: "Render the dominance chart as PNG",
	Long: `Render a PNG chart of the aggregation.

  --kind bar   dominant count of the top groups, highlight plus blue gradient
  --kind pie   category breakdown of the --focus group`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind := strings.ToLower(chartKind)
		if kind != "bar" && kind != "pie" {
			return fmt.Errorf("unknown chart kind %q (bar, pie)", chartKind)
		}
		if kind == "pie" && chartFlags.focus == "" {
			return fmt.Errorf("a pie chart needs --focus")
		}

		req, err := chartFlags.request(args)
		if err != nil {
			return err
		}
		res, err := newRunner().Run(cmd.Context(), req)
		if err != nil {
			return err
		}

		opts := chart.Options{Width: chartWidth, Height: chartHeight}
		err = writePNG(chartOut, func(buf *bytes.Buffer) error {
			if kind == "pie" {
				return chart.BreakdownPie(buf, res.Focus, res.Distribution, opts)
			}
			return chart.DominantBar(buf, chartTitle(req), res.Top, res.Colors, opts)
		})
		if err != nil {
			return err
		}
		success(cmd.ErrOrStderr(), fmt.Sprintf("Wrote %s chart to %s", kind, chartOut))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(chartCmd)

	chartFlags.register(chartCmd)
	chartCmd.Flags().StringVar(&chartKind, "kind", "bar", "chart kind (bar, pie)")
	chartCmd.Flags().StringVar(&chartOut, "out", "chart.png", "output PNG file")
	chartCmd.Flags().IntVar(&chartWidth, "width", 0, "image width in pixels (default 1024)")
	chartCmd.Flags().IntVar(&chartHeight, "height", 0, "image height in pixels (default 512)")
}

func chartTitle(req model.Request) string {
	req = req.WithDefaults()
	if req.TopN > 0 {
		return fmt.Sprintf("Top %d %s by dominant %s", req.TopN, req.GroupColumn, req.CategoryColumn)
	}
	return fmt.Sprintf("Dominant %s by %s", req.CategoryColumn, req.GroupColumn)
}

// writePNG renders the whole image before creating path
func writePNG(path string, render func(*bytes.Buffer) error) error {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
