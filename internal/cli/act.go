package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/vouch/internal/core/action"
	"github.com/example/vouch/internal/wire"
)

// ActCmd returns the act command
func ActCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "act [custom-id]",
		Short: "Dispatch a raw transport action",
		Long: `Parse and dispatch a transport custom ID of the shape
"stage.verb:id[:extra]". This is the same path a chat surface's button
press takes, useful for scripting and for replaying surface actions.

Examples:
  vouch act bgcheck.start:3f2a
  vouch act bgcheck.finalize:pass:3f2a
  vouch act observation.view:2:3f2a`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			act, err := action.Parse(args[0])
			if err != nil {
				return err
			}

			outcome, err := wire.WorkflowService().Dispatch(actorContext(cmd), act)
			if err != nil {
				return fmt.Errorf("failed to dispatch action: %w", err)
			}

			printOutcome(outcome)
			return nil
		},
	}
}
