package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/vouch/internal/core/action"
	"github.com/example/vouch/internal/core/bgcheck"
	"github.com/example/vouch/internal/wire"
)

// BgcheckCmd returns the bgcheck command
func BgcheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bgcheck",
		Short: "Manage background checks",
		Long:  `Work the background-check checklist and finalize the verdict for a candidate record.`,
	}

	cmd.AddCommand(bgcheckStartCmd())
	cmd.AddCommand(bgcheckSelectCmd())
	cmd.AddCommand(bgcheckFinalizeCmd())
	cmd.AddCommand(bgcheckCancelCmd())
	cmd.AddCommand(bgcheckCriteriaCmd())

	return cmd
}

func bgcheckStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start [origin-id]",
		Short: "Open the checklist for a record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outcome, err := wire.WorkflowService().Dispatch(actorContext(cmd), action.CheckStart{OriginID: args[0]})
			if err != nil {
				return fmt.Errorf("failed to start background check: %w", err)
			}

			printOutcome(outcome)
			return nil
		},
	}
}

func bgcheckSelectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "select [origin-id] [keys]",
		Short: "Overwrite the checklist selection",
		Long: `Overwrite the checklist selection with a comma-separated list of
criterion keys. The full selection is sent every time; the latest write
replaces the previous one. Unknown keys are dropped.

Examples:
  vouch bgcheck select 3f2a identity,history
  vouch bgcheck select 3f2a identity,history,references,conduct,activity`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var keys []string
			for _, k := range strings.Split(args[1], ",") {
				if k = strings.TrimSpace(k); k != "" {
					keys = append(keys, k)
				}
			}

			outcome, err := wire.WorkflowService().Dispatch(actorContext(cmd), action.CheckSelect{
				OriginID: args[0],
				Keys:     keys,
			})
			if err != nil {
				return fmt.Errorf("failed to update selection: %w", err)
			}

			printOutcome(outcome)
			return nil
		},
	}
}

func bgcheckFinalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "finalize [origin-id] [pass|fail]",
		Short: "Commit the terminal verdict",
		Long: `Commit the pass or fail verdict for a record. The verdict is
permanent; a pass requires every criterion to be checked, a fail is
always available. Under concurrent finalizes exactly one wins.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			verdict := bgcheck.Verdict(args[1])
			if verdict != bgcheck.VerdictPass && verdict != bgcheck.VerdictFail {
				return fmt.Errorf("verdict must be pass or fail, got %q", args[1])
			}

			outcome, err := wire.WorkflowService().Dispatch(actorContext(cmd), action.CheckFinalize{
				OriginID: args[0],
				Verdict:  verdict,
			})
			if err != nil {
				return fmt.Errorf("failed to finalize background check: %w", err)
			}

			printOutcome(outcome)
			return nil
		},
	}
}

func bgcheckCancelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel [origin-id]",
		Short: "Dismiss the checklist without finalizing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outcome, err := wire.WorkflowService().Dispatch(actorContext(cmd), action.CheckCancel{OriginID: args[0]})
			if err != nil {
				return fmt.Errorf("failed to cancel checklist: %w", err)
			}

			printOutcome(outcome)
			return nil
		},
	}
}

func bgcheckCriteriaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "criteria",
		Short: "List the fixed checklist criteria",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, c := range bgcheck.Criteria {
				fmt.Printf("%-12s %s\n", c.Key, c.Label)
			}
			return nil
		},
	}
}
