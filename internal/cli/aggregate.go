package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"go-dominance/internal/model"
	"go-dominance/internal/pipeline"
	"go-dominance/pkg/utils"
)

// aggregateFlags are shared by aggregate, breakdown and chart
type aggregateFlags struct {
	sourceFlags
	group     string
	category  string
	top       int
	focus     string
	direction string
}

func (a *aggregateFlags) register(cmd *cobra.Command) {
	a.sourceFlags.register(cmd)
	cmd.Flags().StringVar(&a.group, "group", model.DefaultGroupColumn, "group column")
	cmd.Flags().StringVar(&a.category, "category", model.DefaultCategoryColumn, "category column")
	cmd.Flags().IntVar(&a.top, "top", 0, "keep the N groups with the largest dominant count (0 keeps all)")
	cmd.Flags().StringVar(&a.focus, "focus", "", "group whose category breakdown is reported")
	cmd.Flags().StringVar(&a.direction, "direction", "asc", "gradient direction (asc, desc)")
}

func (a *aggregateFlags) request(args []string) (model.Request, error) {
	src, err := a.source(args, "blood_types")
	if err != nil {
		return model.Request{}, err
	}
	return model.Request{
		Source:         src,
		GroupColumn:    a.group,
		CategoryColumn: a.category,
		TopN:           a.top,
		Focus:          a.focus,
		Direction:      a.direction,
	}, nil
}

var (
	aggFlags     aggregateFlags
	exportPath   string
	exportOutDir string
)

// aggregateCmd represents the aggregate command
var aggregateCmd = &cobra.Command{
	Use:   "aggregate [path or url]",
	Short: "Report the dominant category of every group",
	Long: `Count categories per group and report the dominant (most frequent) category of
every group, sorted by dominant count. Ties go to the alphabetically first category.

The largest dominant count is highlighted; the rest carry a blue gradient color.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := aggFlags.request(args)
		if err != nil {
			return err
		}
		res, err := newRunner().Run(cmd.Context(), req)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if exportPath != "" {
			if err := exportFile(exportPath, res.Dominant); err != nil {
				return err
			}
			success(cmd.ErrOrStderr(), fmt.Sprintf("Exported %d groups to %s", len(res.Dominant), exportPath))
		}
		if exportOutDir != "" {
			dir, err := exportAll(exportOutDir, res)
			if err != nil {
				return err
			}
			success(cmd.ErrOrStderr(), fmt.Sprintf("Exported csv, json and xlsx to %s", dir))
		}
		return printResult(out, res)
	},
}

// breakdownCmd represents the breakdown command
var breakdownCmd = &cobra.Command{
	Use:   "breakdown [path or url]",
	Short: "Show the category distribution of one group",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := breakdownFlags.request(args)
		if err != nil {
			return err
		}
		if req.Focus == "" {
			return fmt.Errorf("--focus is required")
		}
		res, err := newRunner().Run(cmd.Context(), req)
		if err != nil {
			return err
		}
		return printBreakdown(cmd.OutOrStdout(), res)
	},
}

var breakdownFlags aggregateFlags

func init() {
	rootCmd.AddCommand(aggregateCmd)
	rootCmd.AddCommand(breakdownCmd)

	aggFlags.register(aggregateCmd)
	aggregateCmd.Flags().StringVar(&exportPath, "export", "", "also write the dominant table to this file (.csv, .json or .xlsx)")
	aggregateCmd.Flags().StringVar(&exportOutDir, "out-dir", "", "also write every export format under <dir>/<run id>/")

	breakdownFlags.register(breakdownCmd)
}

func printResult(w io.Writer, res *model.Result) error {
	if format() == "csv" {
		return pipeline.WriteCSV(w, res.Dominant)
	}
	if ok, err := printStructured(w, res); ok {
		return err
	}

	fmt.Fprintf(w, "%d rows, %d dropped, %d groups\n\n", res.Rows, res.Dropped, res.GroupCount)
	headers := []string{"#", "GROUP", "DOMINANT", "COUNT", "TOTAL", "PCT", "COLOR"}
	rows := make([][]string, len(res.Top))
	highlightRow := -1
	for i, e := range res.Top {
		var c model.Color
		if i < len(res.Colors) {
			c = res.Colors[i]
		}
		if c == pipeline.HighlightRed && highlightRow < 0 {
			highlightRow = i
		}
		rows[i] = []string{
			strconv.Itoa(i + 1),
			e.GroupKey,
			e.DominantCategory,
			strconv.Itoa(e.DominantCount),
			strconv.Itoa(e.TotalCount),
			fmt.Sprintf("%.1f%%", e.DominantPct),
			string(c),
		}
	}
	printTable(w, headers, rows, highlightRow)

	if res.Focus != "" {
		fmt.Fprintln(w)
		return printBreakdown(w, res)
	}
	return nil
}

func printBreakdown(w io.Writer, res *model.Result) error {
	switch format() {
	case "csv":
		return pipeline.WriteBreakdownCSV(w, res.Distribution)
	case "json", "yaml", "yml":
		_, err := printStructured(w, struct {
			Group        string                `json:"group" yaml:"group"`
			Distribution []model.CategoryCount `json:"distribution" yaml:"distribution"`
		}{res.Focus, res.Distribution})
		return err
	}

	fmt.Fprintf(w, "Breakdown of %s\n", res.Focus)
	rows := make([][]string, len(res.Distribution))
	for i, c := range res.Distribution {
		rows[i] = []string{c.Category, strconv.Itoa(c.Count), fmt.Sprintf("%.1f%%", c.Pct)}
	}
	printTable(w, []string{"CATEGORY", "COUNT", "PCT"}, rows, 0)
	return nil
}

// exportFile writes entries to path, picking the format from its extension
func exportFile(path string, entries []model.DominantEntry) error {
	ef, err := pipeline.ParseExportFormat(utils.GetFileType(path))
	if err != nil {
		return fmt.Errorf("unsupported export file %s: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := pipeline.Export(f, ef, entries); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// exportAll writes every export format into the run's output directory
func exportAll(baseDir string, res *model.Result) (string, error) {
	om := utils.NewOutputManager(baseDir)
	dir, err := om.CreateRunOutputDir(res.ID)
	if err != nil {
		return "", err
	}
	for _, ef := range []pipeline.ExportFormat{pipeline.FormatCSV, pipeline.FormatJSON, pipeline.FormatXLSX} {
		path, err := om.GetOutputFilePath(res.ID, ef.FileName(pipeline.ExportBase(res.GroupColumn, res.CategoryColumn)))
		if err != nil {
			return "", err
		}
		if err := exportFile(path, res.Dominant); err != nil {
			return "", err
		}
	}
	return dir, nil
}
