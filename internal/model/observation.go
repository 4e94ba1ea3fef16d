package model

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Observation is one (group, category) occurrence, e.g. one person's country and blood type.
type Observation struct {
	GroupKey string `json:"group_key"`
	Category string `json:"category"`
}

// NewObservation builds a normalized observation.
func NewObservation(group, category string) Observation {
	return Observation{
		GroupKey: NormalizeGroup(group),
		Category: NormalizeCategory(category),
	}
}

// missingCategories are placeholder spellings, compared after NormalizeCategory.
var missingCategories = map[string]bool{
	"":     true,
	"NA":   true,
	"NAN":  true,
	"N/A":  true,
	"NULL": true,
}

// Missing reports whether the observation has no usable group or category.
// Group keys are only missing when empty: "NA" is a valid key (Namibia).
func (o Observation) Missing() bool {
	return o.GroupKey == "" || missingCategories[o.Category]
}

// NormalizeGroup trims the key and folds it to NFC.
func NormalizeGroup(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// NormalizeCategory trims, folds to NFC and upper-cases so "a " and "A" count together.
func NormalizeCategory(s string) string {
	// cases.Caser keeps state; one per call
	return cases.Upper(language.Und).String(norm.NFC.String(strings.TrimSpace(s)))
}
