package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/vouch/internal/core/bgcheck"
	"github.com/example/vouch/internal/core/view"
	"github.com/example/vouch/internal/ports/primary"
	"github.com/example/vouch/internal/wire"
)

// StatusCmd returns the status command
func StatusCmd() *cobra.Command {
	var render bool

	cmd := &cobra.Command{
		Use:   "status [origin-id]",
		Short: "Show a candidate record",
		Long: `Show the canonical state of a candidate record: checklist progress,
verdict, filed reports, and the message currently shown on its origin
surface.

With --render, print the projected message content instead, exactly as
it would be applied to every replica surface.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := actorContext(cmd)

			record, err := wire.BackgroundCheckService().Get(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to get record: %w", err)
			}

			if render {
				fmt.Print(view.Project(recordState(record)).Render())
				return nil
			}

			printRecord(record)

			content, reactions, err := wire.Messenger().Fetch(ctx, record.OriginChannelID, record.OriginID)
			if err != nil {
				fmt.Printf("\nOrigin surface unavailable: %v\n", err)
				return nil
			}

			fmt.Printf("\n--- ORIGIN SURFACE (%s) ---\n\n%s", record.OriginChannelID, content)
			if len(reactions) > 0 {
				fmt.Printf("\nReactions: %v\n", reactions)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&render, "render", false, "Print the projected message content")

	return cmd
}

// recordState maps a record into the projection input.
func recordState(record *primary.Record) view.RecordState {
	state := view.RecordState{
		OriginID:      record.OriginID,
		Candidate:     record.Candidate,
		RecommenderID: record.RecommenderID,
		Note:          record.Note,
		Status:        record.Status,
		Selected:      record.Selected,
		SlotCount:     record.SlotCount,
	}
	for _, r := range record.Reports {
		state.Reports = append(state.Reports, view.Report{
			Slot:     r.Slot,
			Date:     r.Date,
			Notes:    r.Notes,
			Issues:   r.Issues,
			AuthorID: r.AuthorID,
		})
	}
	return state
}

func printRecord(record *primary.Record) {
	fmt.Printf("Record: %s\n", record.OriginID)
	fmt.Printf("Candidate: %s\n", record.Candidate)
	fmt.Printf("Recommended by: %s\n", record.RecommenderID)
	if record.Note != "" {
		fmt.Printf("Note: %s\n", record.Note)
	}
	fmt.Printf("Status: %s\n", colorStatus(record.Status))
	fmt.Printf("Created: %s\n", record.CreatedAt)

	fmt.Println("\nChecklist:")
	selected := make(map[string]bool, len(record.Selected))
	for _, k := range record.Selected {
		selected[k] = true
	}
	for _, c := range bgcheck.Criteria {
		if selected[c.Key] {
			fmt.Printf("  %s %s\n", color.GreenString("[x]"), c.Label)
		} else {
			fmt.Printf("  [ ] %s\n", c.Label)
		}
	}

	fmt.Println("\nReports:")
	filed := make(map[int]*primary.Report, len(record.Reports))
	for _, r := range record.Reports {
		filed[r.Slot] = r
	}
	for slot := 1; slot <= record.SlotCount; slot++ {
		if r, ok := filed[slot]; ok {
			fmt.Printf("  %d: filed by %s on %s\n", slot, r.AuthorID, r.Date)
		} else {
			fmt.Printf("  %d: open\n", slot)
		}
	}
}

func colorStatus(status bgcheck.Status) string {
	switch status {
	case bgcheck.StatusPass:
		return color.GreenString("PASS")
	case bgcheck.StatusFail:
		return color.RedString("FAIL")
	default:
		return color.YellowString("checking")
	}
}
