package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObservationMissing(t *testing.T) {
	tests := []struct {
		group, category string
		missing         bool
	}{
		{"Korea", "A", false},
		{"Korea", "na", true},
		{"Korea", " NaN ", true},
		{"Korea", "N/A", true},
		{"Korea", "Null", true},
		{"Korea", "", true},
		{"  ", "A", true},
		{"NA", "O", false},
		{"Korea", "NAB", false},
	}
	for _, tt := range tests {
		obs := NewObservation(tt.group, tt.category)
		assert.Equal(t, tt.missing, obs.Missing(), "%q/%q", tt.group, tt.category)
	}
}
