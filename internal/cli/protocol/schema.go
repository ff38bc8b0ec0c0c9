package protocol

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/royalbit/asimov/internal/cli/shared"
	clierrors "github.com/royalbit/asimov/internal/errors"
	"github.com/royalbit/asimov/internal/fsutil"
	"github.com/royalbit/asimov/internal/schema"
)

var schemaCmd = &cobra.Command{
	Use:   "schema [kind]",
	Short: "Print the JSON Schema of a protocol file",
	Long: `Print the draft-07 JSON Schema for a protocol kind.

Without a kind, every schema is printed as one JSON object keyed by kind.
With --out, one <kind>.schema.json file per kind is written to the directory
instead, for use by editors and CI validators.

Kinds: ` + strings.Join(schema.KindNames(), ", "),
	Example: `  # Print the roadmap schema
  asimov schema roadmap

  # Write all schemas for editor integration
  asimov schema --out .vscode/schemas`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		outDir, _ := cmd.Flags().GetString("out")
		return runSchema(cmd.OutOrStdout(), args, outDir)
	},
}

func init() {
	schemaCmd.GroupID = shared.GroupReference
	schemaCmd.Flags().StringP("out", "o", "", "Write <kind>.schema.json files to this directory")
}

// runSchema prints or writes JSON Schemas for one kind or all of them.
func runSchema(out io.Writer, args []string, outDir string) error {
	kinds := schema.Kinds()
	if len(args) == 1 {
		kind, err := schema.ParseKind(args[0])
		if err != nil {
			return clierrors.UnknownKind(args[0], schema.KindNames())
		}
		kinds = []schema.Kind{kind}
	}

	rendered := make(map[string]json.RawMessage, len(kinds))
	for _, kind := range kinds {
		data, err := schema.JSONSchema(schema.Get(kind))
		if err != nil {
			return err
		}
		rendered[kind.String()] = data
	}

	if outDir != "" {
		c := shared.NewColors()
		for _, kind := range kinds {
			path := filepath.Join(outDir, kind.String()+".schema.json")
			if err := fsutil.WriteFileAtomic(path, append(rendered[kind.String()], '\n')); err != nil {
				return clierrors.WrapWithMessage(err, clierrors.Runtime, "writing schema")
			}
			fmt.Fprintf(out, "%s %s\n", c.Green(shared.MarkOK), path)
		}
		return nil
	}

	if len(kinds) == 1 {
		_, err := fmt.Fprintf(out, "%s\n", rendered[kinds[0].String()])
		return err
	}
	data, err := json.MarshalIndent(rendered, "", "  ")
	if err != nil {
		return fmt.Errorf("rendering schemas: %w", err)
	}
	_, err = fmt.Fprintf(out, "%s\n", data)
	return err
}
