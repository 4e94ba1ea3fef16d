package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"go-dominance/internal/model"
)

// sourceFlags selects the input table of a command
type sourceFlags struct {
	file   string
	url    string
	sample string
	sqlite string
	query  string
}

func (s *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&s.file, "file", "", "read a local CSV file")
	cmd.Flags().StringVar(&s.url, "url", "", "fetch a CSV over http(s)")
	cmd.Flags().StringVar(&s.sample, "sample", "", "use a bundled sample table")
	cmd.Flags().StringVar(&s.sqlite, "sqlite", "", "read rows from a SQLite database (needs --query)")
	cmd.Flags().StringVar(&s.query, "query", "", "SQL query for --sqlite")
}

// source resolves the flags plus an optional positional path or URL. With
// nothing given it falls back to fallbackSample.
func (s *sourceFlags) source(args []string, fallbackSample string) (model.Source, error) {
	var picked []model.Source
	if len(args) > 0 {
		// auto-detect file or URL
		picked = append(picked, model.Source{URL: args[0]})
	}
	if s.file != "" {
		picked = append(picked, model.Source{Type: model.SourceFile, URL: s.file})
	}
	if s.url != "" {
		picked = append(picked, model.Source{Type: model.SourceURL, URL: s.url})
	}
	if s.sample != "" {
		picked = append(picked, model.Source{Type: model.SourceSample, URL: s.sample})
	}
	if s.sqlite != "" {
		picked = append(picked, model.Source{Type: model.SourceSQLite, URL: s.sqlite, Query: s.query})
	}

	switch len(picked) {
	case 0:
		if s.query != "" {
			return model.Source{}, fmt.Errorf("--query needs --sqlite")
		}
		return model.Source{Type: model.SourceSample, URL: fallbackSample}, nil
	case 1:
		return picked[0], nil
	default:
		return model.Source{}, fmt.Errorf("choose one input: a path argument, --file, --url, --sample or --sqlite")
	}
}
