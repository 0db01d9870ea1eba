package cmd

import (
	"fmt"

	"backpack-manager/feature/duplicates"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	dupAccounts []string
	dupFriends  []string
	dupList     bool
	dupScrap    bool
	dupVerbose  bool
)

// duplicatesCmd checks accounts for duplicate weapons.
var duplicatesCmd = &cobra.Command{
	Use:   "duplicates",
	Short: "Find duplicate weapons across Steam accounts",
	Long: `Collects the weapons of every given account and reports the ones held more than once.

With --friends, spare copies are handed to friends missing them.
With --scrap, the remaining spares are paired into craft combinations and valued in metal.

Examples:
  duplicates -a robin,76561197960287930 --list
  duplicates -a robin -f alex,sam --scrap`,
	RunE: runDuplicates,
}

func init() {
	duplicatesCmd.Flags().StringSliceVarP(&dupAccounts, "accounts", "a", nil, "Steam ids or profile names to check")
	duplicatesCmd.Flags().StringSliceVarP(&dupFriends, "friends", "f", nil, "Steam ids or profile names that may receive duplicates")
	duplicatesCmd.Flags().BoolVarP(&dupList, "list", "l", false, "Print the duplicate lists")
	duplicatesCmd.Flags().BoolVarP(&dupScrap, "scrap", "s", false, "Pair the remaining duplicates for crafting")
	duplicatesCmd.Flags().BoolVarP(&dupVerbose, "log", "v", false, "Log debug output and Steam requests")
	_ = duplicatesCmd.MarkFlagRequired("accounts")

	RootCmd.AddCommand(duplicatesCmd)
}

func runDuplicates(cmd *cobra.Command, args []string) error {
	e, err := loadEnv(dupVerbose)
	if err != nil {
		return err
	}
	defer e.log.Sync()

	svc, err := e.services()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	dups := duplicates.NewService(svc.catalogs, svc.accounts, e.log)
	dups.OnProgress(func(step string) {
		fmt.Fprintln(out, duplicates.Title(step))
	})

	report, err := dups.Run(cmd.Context(), duplicates.Request{
		Accounts: dupAccounts,
		Friends:  dupFriends,
		List:     dupList,
		Scrap:    dupScrap,
	})
	if err != nil {
		return err
	}

	if err := report.WriteText(out); err != nil {
		return err
	}

	e.log.Debug("Run summary",
		zap.Int("items", report.Plan.Summary.Items),
		zap.Int("surplus", report.Plan.Summary.Surplus),
		zap.Int("leftover", report.Plan.Summary.Leftover))

	if !dupList && !dupScrap && len(dupFriends) == 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), "Nothing to print. Use --list, --friends or --scrap.")
	}
	return nil
}
