package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"

	"github.com/megal/resourced/internal/presentation"
)

var schemaOut string

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of registry:list output",
	Long: `Print the JSON schema describing the output of 'resourced registry:list',
for editors and for tools that consume the listing.

Examples:
  resourced schema
  resourced schema --out docs/registry.schema.json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		data, err := marshalSchema(buildSchema())
		if err != nil {
			return err
		}
		if schemaOut == "" {
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}
		return writeSchema(schemaOut, data)
	},
}

func init() {
	schemaCmd.Flags().StringVar(&schemaOut, "out", "", "write the schema to a file instead of stdout")
	rootCmd.AddCommand(schemaCmd)
}

func buildSchema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: true,
	}
	schema := reflector.Reflect(new([]presentation.EntryDTO))
	schema.Title = "Resourced Registry"
	schema.Description = "Entries of the resource table as printed by resourced registry:list"
	return schema
}

func marshalSchema(schema *jsonschema.Schema) ([]byte, error) {
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	return append(data, '\n'), nil
}

func writeSchema(outPath string, data []byte) error {
	dir := filepath.Dir(outPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create schema directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(outPath)+".tmp.*")
	if err != nil {
		return fmt.Errorf("create temp schema: %w", err)
	}
	tmpPath := tmp.Name()

	_, err = tmp.Write(data)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err == nil {
		err = os.Chmod(tmpPath, 0o644)
	}
	if err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write temp schema: %w", err)
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("replace schema: %w", err)
	}
	return nil
}
