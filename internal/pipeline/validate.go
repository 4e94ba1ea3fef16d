package pipeline

import (
	"errors"

	"github.com/go-gota/gota/dataframe"
)

// ValidateColumns resolves every wanted column against the frame header. All
// missing columns are reported together; nothing is returned on failure.
func ValidateColumns(df dataframe.DataFrame, want ...string) (map[string]string, error) {
	resolved := make(map[string]string, len(want))
	var errs []error
	for _, w := range want {
		name, err := ResolveColumn(df, w)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		resolved[w] = name
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return resolved, nil
}
