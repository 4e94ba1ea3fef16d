package cli

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"
	"github.com/stoewer/go-strcase"

	"go-dominance/internal/model"
)

// schemaTargets are the request bodies of the HTTP API
var schemaTargets = map[string]interface{}{
	"request": &model.Request{},
	"profile": &model.ProfileRequest{},
	"rank":    &model.RankRequest{},
}

// schemaCmd represents the schema command
var schemaCmd = &cobra.Command{
	Use:       "schema [request|profile|rank]",
	Short:     "Output the JSON schema of an API request body",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"request", "profile", "rank"},
	RunE: func(cmd *cobra.Command, args []string) error {
		name := "request"
		if len(args) == 1 {
			name = args[0]
		}
		out, err := requestSchema(name)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}

// requestSchema reflects the JSON schema of a request type
func requestSchema(name string) ([]byte, error) {
	target, ok := schemaTargets[name]
	if !ok {
		return nil, fmt.Errorf("unknown schema %q (request, profile, rank)", name)
	}
	r := &jsonschema.Reflector{
		Namer: func(t reflect.Type) string {
			return strcase.SnakeCase(t.Name())
		},
		ExpandedStruct: true,
	}
	return json.MarshalIndent(r.Reflect(target), "", "  ")
}
