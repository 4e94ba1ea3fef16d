package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/viper"
	"golang.org/x/text/width"
	"gopkg.in/yaml.v3"
)

var highlight = color.New(color.FgRed, color.Bold)

// format returns the requested output format, lower-cased
func format() string {
	return strings.ToLower(viper.GetString("output"))
}

// printJSON outputs data as formatted JSON
func printJSON(w io.Writer, data interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	return nil
}

// printYAML outputs data as YAML
func printYAML(w io.Writer, data interface{}) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("encode YAML: %w", err)
	}
	return encoder.Close()
}

// printStructured handles the json and yaml formats. It reports false for
// any other format so the caller can print its own text form.
func printStructured(w io.Writer, data interface{}) (bool, error) {
	switch format() {
	case "json":
		return true, printJSON(w, data)
	case "yaml", "yml":
		return true, printYAML(w, data)
	default:
		return false, nil
	}
}

// printTable outputs rows in aligned columns. Row highlightRow (if >= 0) is
// printed in red; widths are computed before coloring.
func printTable(w io.Writer, headers []string, rows [][]string, highlightRow int) {
	if len(rows) == 0 {
		return
	}

	// Calculate column widths
	widths := make([]int, len(headers))
	for i, header := range headers {
		widths[i] = displayWidth(header)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && displayWidth(cell) > widths[i] {
				widths[i] = displayWidth(cell)
			}
		}
	}

	writeRow := func(cells []string) string {
		var b strings.Builder
		for i, cell := range cells {
			if i >= len(widths) {
				break
			}
			b.WriteString(cell)
			b.WriteString(strings.Repeat(" ", widths[i]-displayWidth(cell)+2))
		}
		return strings.TrimRight(b.String(), " ")
	}

	fmt.Fprintln(w, writeRow(headers))
	seps := make([]string, len(headers))
	for i := range headers {
		seps[i] = strings.Repeat("-", widths[i])
	}
	fmt.Fprintln(w, writeRow(seps))

	for i, row := range rows {
		line := writeRow(row)
		if i == highlightRow {
			line = highlight.Sprint(line)
		}
		fmt.Fprintln(w, line)
	}
}

// displayWidth counts East Asian wide runes as two columns so Korean
// station names still line up.
func displayWidth(s string) int {
	n := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return n
}

// success prints a success message unless --quiet is set
func success(w io.Writer, message string) {
	if viper.GetBool("quiet") {
		return
	}
	fmt.Fprintf(w, "✅ %s\n", message)
}
