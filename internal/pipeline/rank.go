package pipeline

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"go-dominance/internal/model"
)

// Rank filters a table, sums the requested numeric columns per row and sorts
// rows by that total, largest first (label ascending on ties). NaN cells count
// as zero. The first row gets the highlight color.
func Rank(df dataframe.DataFrame, req model.RankRequest) (*model.Ranking, error) {
	if strings.TrimSpace(req.Label) == "" || len(req.Sum) == 0 {
		return nil, fmt.Errorf("%w: ranking needs a label column and at least one value column", ErrInvalidRequest)
	}
	dir, err := ParseDirection(req.Direction)
	if err != nil {
		return nil, err
	}

	want := append([]string{req.Label}, req.Sum...)
	for col := range req.Equals {
		want = append(want, col)
	}
	for col := range req.Prefix {
		want = append(want, col)
	}
	cols, err := ValidateColumns(df, want...)
	if err != nil {
		return nil, err
	}

	filtered, err := filterFrame(df, cols, req.Equals, req.Prefix)
	if err != nil {
		return nil, err
	}

	labels := StringColumn(filtered, cols[req.Label])
	sums := make([][]float64, len(req.Sum))
	for i, c := range req.Sum {
		sums[i] = filtered.Col(cols[c]).Float()
	}

	rows := make([]model.RankedRow, len(labels))
	for i, label := range labels {
		row := model.RankedRow{Label: strings.TrimSpace(label), Values: make(map[string]float64, len(req.Sum))}
		for j, c := range req.Sum {
			v := sums[j][i]
			if math.IsNaN(v) {
				v = 0
			}
			row.Values[c] = v
			row.Total += v
		}
		rows[i] = row
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Total != rows[j].Total {
			return rows[i].Total > rows[j].Total
		}
		return rows[i].Label < rows[j].Label
	})
	matched := len(rows)
	if req.TopN > 0 && req.TopN < len(rows) {
		rows = rows[:req.TopN]
	}

	totals := make([]float64, len(rows))
	for i := range rows {
		totals[i] = rows[i].Total
	}
	for i, c := range ColorRamp(totals, RampOptions{Direction: dir}) {
		rows[i].Color = c
	}

	return &model.Ranking{Rows: rows, Matched: matched}, nil
}

// filterFrame keeps rows whose columns equal (or start with) the given values.
func filterFrame(df dataframe.DataFrame, cols map[string]string, equals, prefix map[string]string) (dataframe.DataFrame, error) {
	for col, value := range equals {
		if df.Nrow() == 0 {
			return df, nil
		}
		df = df.Filter(dataframe.F{Colname: cols[col], Comparator: series.Eq, Comparando: value})
		if df.Err != nil {
			return df, fmt.Errorf("%w: filter %s: %v", ErrInvalidRequest, col, df.Err)
		}
	}
	for col, value := range prefix {
		if df.Nrow() == 0 {
			return df, nil
		}
		p := value
		df = df.Filter(dataframe.F{
			Colname:    cols[col],
			Comparator: series.CompFunc,
			Comparando: func(el series.Element) bool { return strings.HasPrefix(el.String(), p) },
		})
		if df.Err != nil {
			return df, fmt.Errorf("%w: filter %s: %v", ErrInvalidRequest, col, df.Err)
		}
	}
	return df, nil
}
