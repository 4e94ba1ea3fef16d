package cli

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"go-dominance/internal/chart"
	"go-dominance/internal/model"
	"go-dominance/internal/pipeline"
	"go-dominance/pkg/utils"
)

var (
	rankSource    sourceFlags
	rankLabel     string
	rankSum       string
	rankEquals    []string
	rankPrefix    []string
	rankTop       int
	rankDirection string
	rankPNG       string
)

// rankCmd represents the rank command
var rankCmd = &cobra.Command{
	Use:   "rank [path or url]",
	Short: "Rank rows by the sum of numeric columns",
	Long: `Filter rows, add up the --sum columns and list rows by that total, largest first.

Example (bundled subway sample, line 2 stations by riders on 2025-10-01):
  dominance rank --sample subway --label 역명 --sum 승차총승객수,하차총승객수 \
    --equals 노선명=2호선 --prefix 사용일자=20251001 --top 10`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := rankSource.source(args, "subway")
		if err != nil {
			return err
		}
		equals, err := utils.ParsePairs(rankEquals)
		if err != nil {
			return fmt.Errorf("--equals: %w", err)
		}
		prefix, err := utils.ParsePairs(rankPrefix)
		if err != nil {
			return fmt.Errorf("--prefix: %w", err)
		}

		req := model.RankRequest{
			Source:    src,
			Label:     rankLabel,
			Sum:       utils.SplitList(rankSum),
			Equals:    equals,
			Prefix:    prefix,
			TopN:      rankTop,
			Direction: rankDirection,
		}
		ranking, err := newRunner().Rank(cmd.Context(), req)
		if err != nil {
			return err
		}

		if rankPNG != "" {
			err := writePNG(rankPNG, func(buf *bytes.Buffer) error {
				return chart.RankingBar(buf, req.Label, ranking, chart.Options{})
			})
			if err != nil {
				return err
			}
			success(cmd.ErrOrStderr(), fmt.Sprintf("Wrote chart to %s", rankPNG))
		}
		return printRanking(cmd.OutOrStdout(), ranking)
	},
}

func init() {
	rootCmd.AddCommand(rankCmd)

	rankSource.register(rankCmd)
	rankCmd.Flags().StringVar(&rankLabel, "label", "", "column naming each row (required)")
	rankCmd.Flags().StringVar(&rankSum, "sum", "", "comma separated numeric columns to add up (required)")
	rankCmd.Flags().StringArrayVar(&rankEquals, "equals", nil, "keep rows where column=value (repeatable)")
	rankCmd.Flags().StringArrayVar(&rankPrefix, "prefix", nil, "keep rows where column starts with value (repeatable)")
	rankCmd.Flags().IntVar(&rankTop, "top", 10, "rows to keep (0 keeps all)")
	rankCmd.Flags().StringVar(&rankDirection, "direction", "asc", "gradient direction (asc, desc)")
	rankCmd.Flags().StringVar(&rankPNG, "png", "", "also render a bar chart to this file")
	_ = rankCmd.MarkFlagRequired("label")
	_ = rankCmd.MarkFlagRequired("sum")
}

func printRanking(w io.Writer, r *model.Ranking) error {
	if ok, err := printStructured(w, r); ok {
		return err
	}
	if len(r.Rows) == 0 {
		fmt.Fprintln(w, "no rows matched")
		return nil
	}

	// value columns in a stable order
	var columns []string
	for name := range r.Rows[0].Values {
		columns = append(columns, name)
	}
	sort.Strings(columns)

	headers := append([]string{"#", "LABEL"}, columns...)
	headers = append(headers, "TOTAL")
	rows := make([][]string, len(r.Rows))
	highlightRow := -1
	for i, row := range r.Rows {
		if row.Color == pipeline.HighlightRed && highlightRow < 0 {
			highlightRow = i
		}
		cells := []string{strconv.Itoa(i + 1), row.Label}
		for _, c := range columns {
			cells = append(cells, strconv.FormatFloat(row.Values[c], 'f', -1, 64))
		}
		rows[i] = append(cells, strconv.FormatFloat(row.Total, 'f', -1, 64))
	}
	fmt.Fprintf(w, "%d rows matched\n\n", r.Matched)
	printTable(w, headers, rows, highlightRow)
	return nil
}
