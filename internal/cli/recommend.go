package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/vouch/internal/core/action"
	"github.com/example/vouch/internal/wire"
)

// RecommendCmd returns the recommend command
func RecommendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Manage candidate recommendations",
		Long:  `Open, extend, cancel, and submit candidate recommendation drafts.`,
	}

	cmd.AddCommand(recommendStartCmd())
	cmd.AddCommand(recommendContinueCmd())
	cmd.AddCommand(recommendCancelCmd())
	cmd.AddCommand(recommendSubmitCmd())

	return cmd
}

func recommendStartCmd() *cobra.Command {
	var note string

	cmd := &cobra.Command{
		Use:   "start [candidate]",
		Short: "Open a recommendation draft",
		Long: `Open a recommendation draft for a candidate.

The draft lives in memory with a limited lifetime. Extend it with
"recommend continue" and post it with "recommend submit" before it
expires.

Examples:
  vouch recommend start alice --note "Active contributor since spring"
  vouch recommend start bob`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outcome, err := wire.WorkflowService().Dispatch(actorContext(cmd), action.RecommendStart{
				Candidate: args[0],
				Note:      note,
			})
			if err != nil {
				return fmt.Errorf("failed to start recommendation: %w", err)
			}

			printOutcome(outcome)
			return nil
		},
	}

	cmd.Flags().StringVarP(&note, "note", "n", "", "Recommendation note text")

	return cmd
}

func recommendContinueCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "continue [token]",
		Short: "Extend a draft's lifetime",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outcome, err := wire.WorkflowService().Dispatch(actorContext(cmd), action.RecommendContinue{Token: args[0]})
			if err != nil {
				return fmt.Errorf("failed to continue draft: %w", err)
			}

			printOutcome(outcome)
			return nil
		},
	}
}

func recommendCancelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel [token]",
		Short: "Discard a draft",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outcome, err := wire.WorkflowService().Dispatch(actorContext(cmd), action.RecommendCancel{Token: args[0]})
			if err != nil {
				return fmt.Errorf("failed to cancel draft: %w", err)
			}

			printOutcome(outcome)
			return nil
		},
	}
}

func recommendSubmitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "submit [token]",
		Short: "Post the draft as a candidate record",
		Long: `Post the draft to the review channel. The posted message becomes
the candidate record's origin and its background check opens unset.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outcome, err := wire.WorkflowService().Dispatch(actorContext(cmd), action.RecommendSubmit{Token: args[0]})
			if err != nil {
				return fmt.Errorf("failed to submit recommendation: %w", err)
			}

			printOutcome(outcome)
			return nil
		},
	}
}
