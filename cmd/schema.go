package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var schemaVerbose bool

// schemaCmd groups the item schema cache commands.
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Manage the cached item schema",
}

// schemaUpdateCmd fetches the schema from Steam and replaces the cache.
var schemaUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Fetch the item schema and replace the cached copy",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv(schemaVerbose)
		if err != nil {
			return err
		}
		defer e.log.Sync()

		svc, err := e.services()
		if err != nil {
			return err
		}

		schema, err := svc.catalogs.Update(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to update schema: %w", err)
		}

		e.log.Info("Schema updated",
			zap.String("backend", e.cfg.Catalog.Backend),
			zap.Int("items", schema.Len()),
			zap.Int("uniques", len(schema.ReferenceSet())))
		return nil
	},
}

// schemaClearCmd drops the cached schema. No Steam key is needed.
var schemaClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Drop the cached item schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv(schemaVerbose)
		if err != nil {
			return err
		}
		defer e.log.Sync()

		store, err := e.catalogStore()
		if err != nil {
			return err
		}

		if err := store.Clear(cmd.Context()); err != nil {
			return fmt.Errorf("failed to clear schema: %w", err)
		}

		e.log.Info("Schema cache cleared", zap.String("backend", e.cfg.Catalog.Backend))
		return nil
	},
}

func init() {
	schemaCmd.PersistentFlags().BoolVarP(&schemaVerbose, "log", "v", false, "Log debug output and Steam requests")
	schemaCmd.AddCommand(schemaUpdateCmd)
	schemaCmd.AddCommand(schemaClearCmd)

	RootCmd.AddCommand(schemaCmd)
}
