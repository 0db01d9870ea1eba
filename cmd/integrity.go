package cmd

import (
	"fmt"

	"backpack-manager/feature/integrity"
	"backpack-manager/feature/integrity/checks"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	fixFlag       bool
	integrityJSON bool
)

// integrityCmd checks the cached item schema.
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Check the cached item schema",
	Long: `Checks that the item schema cache exists, is within its TTL and holds a schema
the duplicate engine can fully interpret. --fix refetches a missing or stale cache.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv(false)
		if err != nil {
			return err
		}
		defer e.log.Sync()

		store, err := e.catalogStore()
		if err != nil {
			return err
		}

		var refresher integrity.Refresher
		if fixFlag {
			svc, err := e.services()
			if err != nil {
				return err
			}
			refresher = svc.catalogs
		}

		report, err := integrity.NewService(store, refresher, e.cfg.Catalog.TTL(), e.log).Check(cmd.Context(), fixFlag)
		if err != nil {
			return fmt.Errorf("integrity check failed: %w", err)
		}

		if integrityJSON {
			data, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal JSON: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		}

		printIntegrityReport(e.log, report)
		return nil
	},
}

func init() {
	integrityCmd.Flags().BoolVar(&fixFlag, "fix", false, "Refetch a missing or stale schema")
	integrityCmd.Flags().BoolVar(&integrityJSON, "json", false, "Print the report as JSON")
	RootCmd.AddCommand(integrityCmd)
}

func printIntegrityReport(l *zap.Logger, report *integrity.Report) {
	cache := report.Cache
	switch cache.Status {
	case checks.StatusOK:
		l.Info("Schema cache is intact.",
			zap.Int("items", cache.Items),
			zap.Float64("age_hours", cache.AgeHours),
			zap.Bool("fixed", report.Fixed))
	case checks.StatusError:
		l.Error("Schema cache unreadable", zap.String("error", cache.Error))
	default:
		l.Warn("Schema cache needs a refresh", zap.String("status", cache.Status))
		l.Info("Run with --fix to fetch the schema.")
	}

	if report.Schema == nil {
		return
	}
	s := report.Schema
	if s.Healthy() {
		l.Info("Schema is consistent.",
			zap.Int("items", s.Items),
			zap.Int("weapons", s.Weapons),
			zap.Int("uniques", s.Uniques))
		return
	}
	l.Warn("Schema has problems",
		zap.Int("uniques", s.Uniques),
		zap.Ints("duplicate_indices", s.DuplicateIndices),
		zap.Ints("unknown_qualities", s.UnknownQualities),
		zap.Strings("unknown_slots", s.UnknownSlots))
}
