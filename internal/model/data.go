package model

// GroupCounts holds the category counts of a single group.
// Invariant: Total equals the sum of Categories.
type GroupCounts struct {
	GroupKey   string         `json:"group_key"`
	Categories map[string]int `json:"categories"`
	Total      int            `json:"total_count"`
}

// Counts maps a group key to its category counts
type Counts map[string]GroupCounts

// CategoryCount is one row of a group's breakdown (pie chart slice)
type CategoryCount struct {
	Category string  `json:"category"`
	Count    int     `json:"count"`
	Pct      float64 `json:"pct"`
}

// DominantEntry is the arg-max category of one group
type DominantEntry struct {
	GroupKey         string  `json:"group_key" yaml:"group_key"`
	DominantCategory string  `json:"dominant_category" yaml:"dominant_category"`
	DominantCount    int     `json:"dominant_count" yaml:"dominant_count"`
	TotalCount       int     `json:"total_count" yaml:"total_count"`
	DominantPct      float64 `json:"dominant_pct" yaml:"dominant_pct"`
}

// Result is the response of one dominance run
type Result struct {
	ID             string          `json:"id" yaml:"id"`
	Rows           int             `json:"rows" yaml:"rows"`
	Dropped        int             `json:"dropped" yaml:"dropped"`
	GroupCount     int             `json:"group_count" yaml:"group_count"`
	Groups         []string        `json:"groups" yaml:"groups"`
	Dominant       []DominantEntry `json:"dominant" yaml:"dominant"`
	Top            []DominantEntry `json:"top" yaml:"top"`
	Colors         []Color         `json:"colors" yaml:"colors"`
	Counts         Counts          `json:"counts" yaml:"-"`
	GroupColumn    string          `json:"group_column" yaml:"group_column"`       // as named in the table
	CategoryColumn string          `json:"category_column" yaml:"category_column"` // as named in the table
	Focus          string          `json:"focus,omitempty" yaml:"focus,omitempty"`
	Distribution   []CategoryCount `json:"distribution,omitempty" yaml:"distribution,omitempty"`
}

// MapEntry is one choropleth cell
type MapEntry struct {
	ISO3             string `json:"iso_a3"`
	GroupKey         string `json:"group_key"`
	DominantCategory string `json:"dominant_category"`
	DominantCount    int    `json:"dominant_count"`
	Text             string `json:"text"`
}

// MapResult wraps map entries with the lookup availability flag
type MapResult struct {
	Available bool       `json:"available"`
	Entries   []MapEntry `json:"entries"`
	Unmapped  []string   `json:"unmapped"`
}

// ProfileValue is one column of a wide-table profile
type ProfileValue struct {
	Label string  `json:"label" yaml:"label"`
	Value float64 `json:"value" yaml:"value"`
	Color Color   `json:"color" yaml:"color"`
}

// Profile is one row of a wide table, e.g. a country's 16 MBTI shares in percent
type Profile struct {
	Key       string         `json:"key" yaml:"key"`
	Scaled    bool           `json:"scaled" yaml:"scaled"` // proportions converted to percent
	Values    []ProfileValue `json:"values" yaml:"values"`
	Top       []ProfileValue `json:"top" yaml:"top"`
	Available []string       `json:"available" yaml:"available"`
}

// RankedRow is one row of a ranking, e.g. a station and its total riders
type RankedRow struct {
	Label  string             `json:"label" yaml:"label"`
	Total  float64            `json:"total" yaml:"total"`
	Values map[string]float64 `json:"values" yaml:"values"`
	Color  Color              `json:"color" yaml:"color"`
}

// Ranking is the ordered result of a rank request
type Ranking struct {
	Rows    []RankedRow `json:"rows" yaml:"rows"`
	Matched int         `json:"matched" yaml:"matched"`
}
