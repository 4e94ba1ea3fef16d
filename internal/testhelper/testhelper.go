// Package testhelper silences logging in tests. Import it for side effects.
package testhelper

import (
	"os"
	"testing"

	"github.com/rs/zerolog"
)

// init disables logging for tests unless DOMINANCE_TEST_LOG is set
func init() {
	if testing.Testing() && os.Getenv("DOMINANCE_TEST_LOG") == "" {
		zerolog.SetGlobalLevel(zerolog.Disabled)
	}
}
