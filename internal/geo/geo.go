// Package geo maps group names to ISO 3166-1 alpha-3 codes for choropleth data.
package geo

import (
	"fmt"
	"strings"

	"github.com/biter777/countries"

	"go-dominance/internal/model"
)

// Resolver looks up the alpha-3 code of a country name.
type Resolver interface {
	Alpha3(name string) (string, bool)
}

// CountryResolver resolves names, alpha-2 and alpha-3 codes with biter777/countries.
type CountryResolver struct{}

// Alpha3 implements Resolver.
func (CountryResolver) Alpha3(name string) (string, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", false
	}
	code := countries.ByName(name)
	if code == countries.Unknown {
		return "", false
	}
	return code.Alpha3(), true
}

// MapEntries keeps the entries the resolver can place on a map. A nil
// resolver yields an unavailable, empty result; the tabular data is untouched.
func MapEntries(entries []model.DominantEntry, resolver Resolver) model.MapResult {
	result := model.MapResult{Entries: []model.MapEntry{}, Unmapped: []string{}}
	if resolver == nil {
		for _, e := range entries {
			result.Unmapped = append(result.Unmapped, e.GroupKey)
		}
		return result
	}

	result.Available = true
	for _, e := range entries {
		iso, ok := resolver.Alpha3(e.GroupKey)
		if !ok {
			result.Unmapped = append(result.Unmapped, e.GroupKey)
			continue
		}
		result.Entries = append(result.Entries, model.MapEntry{
			ISO3:             iso,
			GroupKey:         e.GroupKey,
			DominantCategory: e.DominantCategory,
			DominantCount:    e.DominantCount,
			Text:             fmt.Sprintf("%s: %s (%d)", e.GroupKey, e.DominantCategory, e.DominantCount),
		})
	}
	return result
}
