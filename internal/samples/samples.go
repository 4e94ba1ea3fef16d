// Package samples bundles the demo datasets of the dashboards.
package samples

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed data/*.csv
var files embed.FS

// ErrNotFound is returned by Open for names that are not bundled
var ErrNotFound = errors.New("sample not found")

// Names lists the bundled sample names (file names without extension).
func Names() []string {
	entries, err := fs.ReadDir(files, "data")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), path.Ext(e.Name())))
	}
	sort.Strings(names)
	return names
}

// Open returns the CSV content of a sample. The ".csv" suffix is optional.
func Open(name string) (io.ReadCloser, error) {
	name = strings.TrimSuffix(strings.TrimSpace(name), ".csv")
	if name == "" || strings.ContainsAny(name, `/\`) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	f, err := files.Open("data/" + name + ".csv")
	if err != nil {
		return nil, fmt.Errorf("%w: %q (have %s)", ErrNotFound, name, strings.Join(Names(), ", "))
	}
	return f, nil
}
