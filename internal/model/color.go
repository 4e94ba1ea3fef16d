package model

import "strings"

// Color is a "#rrggbb" hex color
type Color string

// Hex returns the color without the leading '#'.
func (c Color) Hex() string {
	return strings.TrimPrefix(string(c), "#")
}
