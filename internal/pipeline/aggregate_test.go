package pipeline

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-dominance/internal/model"
	_ "go-dominance/internal/testhelper"
)

func observations(pairs ...string) []model.Observation {
	out := make([]model.Observation, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, model.NewObservation(pairs[i], pairs[i+1]))
	}
	return out
}

func TestAggregate(t *testing.T) {
	counts := Aggregate(observations("X", "A", "X", "A", "X", "O", "Y", "A", "Y", "B"))

	require.Len(t, counts, 2)
	assert.Equal(t, map[string]int{"A": 2, "O": 1}, counts["X"].Categories)
	assert.Equal(t, 3, counts["X"].Total)
	assert.Equal(t, map[string]int{"A": 1, "B": 1}, counts["Y"].Categories)
	assert.Equal(t, 2, counts["Y"].Total)
}

func TestDominant(t *testing.T) {
	entries := Dominant(Aggregate(observations("X", "A", "X", "A", "X", "O", "Y", "A", "Y", "B")))

	require.Len(t, entries, 2)

	assert.Equal(t, "X", entries[0].GroupKey)
	assert.Equal(t, "A", entries[0].DominantCategory)
	assert.Equal(t, 2, entries[0].DominantCount)
	assert.Equal(t, 3, entries[0].TotalCount)
	assert.InDelta(t, 66.67, entries[0].DominantPct, 0.01)

	// A and B tie on Y; the lexicographically smaller label wins
	assert.Equal(t, "Y", entries[1].GroupKey)
	assert.Equal(t, "A", entries[1].DominantCategory)
	assert.Equal(t, 1, entries[1].DominantCount)
	assert.Equal(t, 2, entries[1].TotalCount)
	assert.InDelta(t, 50.0, entries[1].DominantPct, 1e-9)
}

func TestAggregateEmptyInput(t *testing.T) {
	counts := Aggregate(nil)
	assert.Empty(t, counts)

	entries := Dominant(counts)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestAggregateNormalizesValues(t *testing.T) {
	counts := Aggregate([]model.Observation{
		{GroupKey: " Japan", Category: "a "},
		{GroupKey: "Japan ", Category: "A"},
		{GroupKey: "Japan", Category: "ab"},
	})

	require.Contains(t, counts, "Japan")
	assert.Equal(t, map[string]int{"A": 2, "AB": 1}, counts["Japan"].Categories)
}

func TestAggregateIsIdempotent(t *testing.T) {
	obs := observations("KR", "A", "KR", "O", "JP", "B", "JP", "B", "US", "O")

	first := Aggregate(obs)
	second := Aggregate(obs)
	assert.Equal(t, first, second)
	assert.Equal(t, Dominant(first), Dominant(second))
}

func TestDominantIgnoresRowOrder(t *testing.T) {
	obs := observations(
		"X", "B", "X", "A", "X", "B", "X", "A",
		"Y", "O", "Y", "AB", "Y", "AB", "Y", "O",
		"Z", "A", "Z", "B", "Z", "O",
	)
	want := Dominant(Aggregate(obs))

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		shuffled := append([]model.Observation(nil), obs...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		assert.Equal(t, want, Dominant(Aggregate(shuffled)))
	}

	assert.Equal(t, "A", want[0].DominantCategory)
	assert.Equal(t, "AB", want[1].DominantCategory)
	assert.Equal(t, "A", want[2].DominantCategory)
}

func TestDominantInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	groups := []string{"KR", "JP", "US", "IN", "BR"}
	categories := []string{"A", "B", "O", "AB"}

	var obs []model.Observation
	for i := 0; i < 500; i++ {
		obs = append(obs, model.NewObservation(groups[rng.Intn(len(groups))], categories[rng.Intn(len(categories))]))
	}
	counts := Aggregate(obs)

	for key, group := range counts {
		sum := 0
		for _, c := range group.Categories {
			assert.GreaterOrEqual(t, c, 1)
			sum += c
		}
		assert.Equal(t, group.Total, sum, "total of %s", key)
	}

	entries := Dominant(counts)
	require.Len(t, entries, len(counts))
	for i, e := range entries {
		maxCount := 0
		for _, c := range counts[e.GroupKey].Categories {
			maxCount = max(maxCount, c)
		}
		assert.Equal(t, maxCount, e.DominantCount)
		assert.InDelta(t, float64(e.DominantCount)/float64(e.TotalCount)*100, e.DominantPct, 1e-9)

		if i > 0 {
			prev := entries[i-1]
			ordered := prev.DominantCount > e.DominantCount ||
				(prev.DominantCount == e.DominantCount && prev.GroupKey < e.GroupKey)
			assert.True(t, ordered, "entries %d and %d out of order", i-1, i)
		}
	}
}

func TestDominantSortsTiedCountsByGroup(t *testing.T) {
	entries := Dominant(Aggregate(observations("b", "A", "c", "A", "a", "A", "d", "O", "d", "O")))

	keys := make([]string, len(entries))
	for i, e := range entries {
		keys[i] = e.GroupKey
	}
	assert.Equal(t, []string{"d", "a", "b", "c"}, keys)
}

func TestBreakdown(t *testing.T) {
	counts := Aggregate(observations("KR", "O", "KR", "A", "KR", "A", "KR", "B", "KR", "AB"))

	rows, ok := Breakdown(counts, " KR ")
	require.True(t, ok)
	require.Len(t, rows, 4)
	assert.Equal(t, "A", rows[0].Category)
	assert.Equal(t, 2, rows[0].Count)
	assert.InDelta(t, 40.0, rows[0].Pct, 1e-9)
	assert.Equal(t, "AB", rows[1].Category)
	assert.Equal(t, "B", rows[2].Category)
	assert.Equal(t, "O", rows[3].Category)
	assert.InDelta(t, 20.0, rows[3].Pct, 1e-9)

	_, ok = Breakdown(counts, "JP")
	assert.False(t, ok)
}

func TestTop(t *testing.T) {
	entries := Dominant(Aggregate(observations("a", "A", "a", "A", "b", "A", "c", "O")))

	assert.Len(t, Top(entries, 0), 3)
	assert.Len(t, Top(entries, -1), 3)
	assert.Len(t, Top(entries, 10), 3)
	top := Top(entries, 2)
	require.Len(t, top, 2)
	assert.Equal(t, "a", top[0].GroupKey)

	assert.Equal(t, []float64{2, 1, 1}, DominantCounts(entries))
	assert.Equal(t, []string{"a", "b", "c"}, GroupKeys(Aggregate(observations("c", "A", "a", "A", "b", "A"))))
}
