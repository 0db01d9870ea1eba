package cmd

import (
	"fmt"
	"os"

	"backpack-manager/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "backpack-manager",
	Short: "TF2 backpack duplicate manager",
	Long: `Backpack Manager finds duplicate weapons across Steam accounts, plans which
spares go to friends missing them and pairs the rest for crafting.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format at debug level gives readable timestamps on a terminal.
		cfg := &logger.Config{
			Level:  "debug",
			Format: logger.FormatConsole,
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
