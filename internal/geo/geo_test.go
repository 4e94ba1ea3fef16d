package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-dominance/internal/model"
)

type fakeResolver map[string]string

func (f fakeResolver) Alpha3(name string) (string, bool) {
	code, ok := f[name]
	return code, ok
}

func entries() []model.DominantEntry {
	return []model.DominantEntry{
		{GroupKey: "Korea", DominantCategory: "A", DominantCount: 3},
		{GroupKey: "Atlantis", DominantCategory: "O", DominantCount: 2},
		{GroupKey: "Japan", DominantCategory: "A", DominantCount: 2},
	}
}

func TestMapEntries(t *testing.T) {
	res := MapEntries(entries(), fakeResolver{"Korea": "KOR", "Japan": "JPN"})

	assert.True(t, res.Available)
	require.Len(t, res.Entries, 2)
	assert.Equal(t, model.MapEntry{
		ISO3:             "KOR",
		GroupKey:         "Korea",
		DominantCategory: "A",
		DominantCount:    3,
		Text:             "Korea: A (3)",
	}, res.Entries[0])
	assert.Equal(t, "JPN", res.Entries[1].ISO3)
	assert.Equal(t, []string{"Atlantis"}, res.Unmapped)
}

func TestMapEntriesWithoutResolver(t *testing.T) {
	res := MapEntries(entries(), nil)

	assert.False(t, res.Available)
	assert.Empty(t, res.Entries)
	assert.Equal(t, []string{"Korea", "Atlantis", "Japan"}, res.Unmapped)
}

func TestCountryResolver(t *testing.T) {
	var r Resolver = CountryResolver{}

	code, ok := r.Alpha3("Japan")
	require.True(t, ok)
	assert.Equal(t, "JPN", code)

	code, ok = r.Alpha3(" Brazil ")
	require.True(t, ok)
	assert.Equal(t, "BRA", code)

	_, ok = r.Alpha3("Atlantis")
	assert.False(t, ok)

	_, ok = r.Alpha3("")
	assert.False(t, ok)
}
