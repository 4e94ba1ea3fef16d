package pipeline

import (
	"sort"

	"go-dominance/internal/model"
)

// Aggregate counts categories per group. It is a pure function of its input:
// every call builds a fresh Counts and observations are normalized again, so
// hand-built values count the same as ones made by model.NewObservation.
func Aggregate(observations []model.Observation) model.Counts {
	counts := make(model.Counts)
	for _, obs := range observations {
		obs = model.NewObservation(obs.GroupKey, obs.Category)

		group, exists := counts[obs.GroupKey]
		if !exists {
			group = model.GroupCounts{
				GroupKey:   obs.GroupKey,
				Categories: make(map[string]int),
			}
		}
		group.Categories[obs.Category]++
		group.Total++
		counts[obs.GroupKey] = group
	}
	return counts
}

// Dominant selects the most frequent category of every group.
//
// Ties on the maximum count go to the lexicographically smallest category, so
// the answer does not depend on row order. Entries are sorted by
// DominantCount descending, then GroupKey ascending.
func Dominant(counts model.Counts) []model.DominantEntry {
	entries := make([]model.DominantEntry, 0, len(counts))
	for key, group := range counts {
		best, bestCount := dominantCategory(group.Categories)
		if bestCount == 0 || group.Total == 0 {
			continue
		}
		entries = append(entries, model.DominantEntry{
			GroupKey:         key,
			DominantCategory: best,
			DominantCount:    bestCount,
			TotalCount:       group.Total,
			DominantPct:      float64(bestCount) / float64(group.Total) * 100,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].DominantCount != entries[j].DominantCount {
			return entries[i].DominantCount > entries[j].DominantCount
		}
		return entries[i].GroupKey < entries[j].GroupKey
	})
	return entries
}

func dominantCategory(categories map[string]int) (string, int) {
	best, bestCount := "", 0
	for category, count := range categories {
		if count > bestCount || (count == bestCount && category < best) {
			best, bestCount = category, count
		}
	}
	return best, bestCount
}

// Breakdown returns one group's categories sorted by count descending, then
// category ascending, with each share in percent.
func Breakdown(counts model.Counts, groupKey string) ([]model.CategoryCount, bool) {
	group, exists := counts[model.NormalizeGroup(groupKey)]
	if !exists {
		return nil, false
	}

	rows := make([]model.CategoryCount, 0, len(group.Categories))
	for category, count := range group.Categories {
		rows = append(rows, model.CategoryCount{
			Category: category,
			Count:    count,
			Pct:      float64(count) / float64(group.Total) * 100,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Category < rows[j].Category
	})
	return rows, true
}

// GroupKeys returns the sorted group keys, for filter lists.
func GroupKeys(counts model.Counts) []string {
	keys := make([]string, 0, len(counts))
	for key := range counts {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Top returns at most n leading entries; n <= 0 keeps all of them.
func Top(entries []model.DominantEntry, n int) []model.DominantEntry {
	if n <= 0 || n >= len(entries) {
		return entries
	}
	return entries[:n]
}

// DominantCounts projects the counts of entries, for charting and ColorRamp.
func DominantCounts(entries []model.DominantEntry) []float64 {
	values := make([]float64, len(entries))
	for i, e := range entries {
		values[i] = float64(e.DominantCount)
	}
	return values
}
