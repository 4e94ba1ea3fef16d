package pipeline

import (
	"fmt"
	"math"
	"sort"

	"github.com/go-gota/gota/dataframe"

	"go-dominance/internal/model"
)

// DefaultProfileKey is the key column of the MBTI share table
const DefaultProfileKey = "Country"

// profileTopN is how many leading columns a profile reports
const profileTopN = 3

// BuildProfile returns one row of a wide table (a key column followed by
// numeric columns) as a colored bar series.
//
// When the first row's values sum to within [0.9, 1.1] the table holds
// proportions and every value is scaled to percent. Unparseable cells count as 0.
func BuildProfile(df dataframe.DataFrame, keyColumn, key string, opts RampOptions) (*model.Profile, error) {
	keyCol, err := ResolveColumn(df, keyColumn)
	if err != nil {
		return nil, err
	}

	var valueCols []string
	for _, name := range df.Names() {
		if name != keyCol {
			valueCols = append(valueCols, name)
		}
	}
	if len(valueCols) == 0 {
		return nil, fmt.Errorf("%w: table has no value columns besides %q", ErrInvalidRequest, keyCol)
	}

	keys := StringColumn(df, keyCol)
	available := make([]string, 0, len(keys))
	row := -1
	want := model.NormalizeGroup(key)
	for i, k := range keys {
		k = model.NormalizeGroup(k)
		if k == "" {
			continue
		}
		available = append(available, k)
		if row == -1 && k == want {
			row = i
		}
	}
	sort.Strings(available)
	if row == -1 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGroup, key)
	}

	columns := make([][]float64, len(valueCols))
	for i, name := range valueCols {
		columns[i] = df.Col(name).Float()
	}
	scaled := looksLikeProportions(columns)

	raw := make([]float64, len(valueCols))
	for i := range valueCols {
		raw[i] = columns[i][row]
		if math.IsNaN(raw[i]) {
			raw[i] = 0
		}
		if scaled {
			raw[i] *= 100
		}
	}

	colors := ColorRamp(raw, opts)
	values := make([]model.ProfileValue, len(valueCols))
	for i, name := range valueCols {
		values[i] = model.ProfileValue{Label: name, Value: round2(raw[i]), Color: colors[i]}
	}

	return &model.Profile{
		Key:       want,
		Scaled:    scaled,
		Values:    values,
		Top:       topValues(values, profileTopN),
		Available: available,
	}, nil
}

// looksLikeProportions checks the first row's sum, skipping NaN
func looksLikeProportions(columns [][]float64) bool {
	sum := 0.0
	for _, col := range columns {
		if len(col) == 0 {
			return false
		}
		if !math.IsNaN(col[0]) {
			sum += col[0]
		}
	}
	return sum >= 0.9 && sum <= 1.1
}

// topValues returns the n largest values; ties keep column order.
func topValues(values []model.ProfileValue, n int) []model.ProfileValue {
	sorted := make([]model.ProfileValue, len(values))
	copy(sorted, values)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Value > sorted[j].Value
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
