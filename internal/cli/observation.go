package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/example/vouch/internal/core/action"
	"github.com/example/vouch/internal/wire"
)

// ObservationCmd returns the observation command
func ObservationCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "observation",
		Short: "Manage observation reports",
		Long: `File and view observation reports for a passed candidate record.
Each record has a fixed number of report slots; a slot is write-once and
filing the last one opens the downstream poll.`,
	}

	cmd.AddCommand(observationStartCmd())
	cmd.AddCommand(observationSubmitCmd())
	cmd.AddCommand(observationViewCmd())

	return cmd
}

func parseSlot(arg string) (int, error) {
	slot, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("slot must be a number, got %q", arg)
	}
	return slot, nil
}

func observationStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start [origin-id] [slot]",
		Short: "Open a report slot for filling",
		Long: `Open a report slot. If the slot was already filed the stored
report is shown instead of opening an editor.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			slot, err := parseSlot(args[1])
			if err != nil {
				return err
			}

			outcome, err := wire.WorkflowService().Dispatch(actorContext(cmd), action.ReportStart{
				OriginID: args[0],
				Slot:     slot,
			})
			if err != nil {
				return fmt.Errorf("failed to start report: %w", err)
			}

			printOutcome(outcome)
			return nil
		},
	}
}

func observationSubmitCmd() *cobra.Command {
	var date, notes, issues string

	cmd := &cobra.Command{
		Use:   "submit [origin-id] [slot]",
		Short: "File a report into a slot",
		Long: `File an observation report into a slot. The slot is write-once:
if another reviewer's report lands first, yours is discarded and the
stored one is kept.

Examples:
  vouch observation submit 3f2a 1 --notes "Helped onboard two newcomers"
  vouch observation submit 3f2a 2 --date 2026-08-20 --notes "..." --issues "none"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			slot, err := parseSlot(args[1])
			if err != nil {
				return err
			}

			outcome, err := wire.WorkflowService().Dispatch(actorContext(cmd), action.ReportSubmit{
				OriginID: args[0],
				Slot:     slot,
				Date:     date,
				Notes:    notes,
				Issues:   issues,
			})
			if err != nil {
				return fmt.Errorf("failed to submit report: %w", err)
			}

			printOutcome(outcome)
			return nil
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "Observation date (YYYY-MM-DD, defaults to today)")
	cmd.Flags().StringVarP(&notes, "notes", "n", "", "Observation notes")
	cmd.Flags().StringVarP(&issues, "issues", "i", "", "Issues observed, if any")

	return cmd
}

func observationViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view [origin-id] [slot]",
		Short: "View a filed report",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			slot, err := parseSlot(args[1])
			if err != nil {
				return err
			}

			outcome, err := wire.WorkflowService().Dispatch(actorContext(cmd), action.ReportView{
				OriginID: args[0],
				Slot:     slot,
			})
			if err != nil {
				return fmt.Errorf("failed to view report: %w", err)
			}

			printOutcome(outcome)
			return nil
		},
	}
}
