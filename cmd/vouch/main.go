package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/vouch/internal/cli"
	"github.com/example/vouch/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "vouch",
		Short:   "vouch - candidate vetting workflow",
		Version: version.String(),
		Long: `vouch runs the candidate vetting workflow: a recommendation opens a
record, reviewers work a background-check checklist to a pass or fail
verdict, observation reports fill the record's slots, and completing
the last slot opens the downstream poll.`,
	}

	rootCmd.PersistentFlags().String("actor", "", "User ID actions are attributed to")

	// Add subcommands
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.RecommendCmd())
	rootCmd.AddCommand(cli.BgcheckCmd())
	rootCmd.AddCommand(cli.ObservationCmd())
	rootCmd.AddCommand(cli.StatusCmd())
	rootCmd.AddCommand(cli.ActCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
