// Package cli contains the cobra commands for the vouch binary. Commands
// are thin: they build typed actions from argv and hand them to the
// workflow service, which owns all decision making.
package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/vouch/internal/ctxutil"
	"github.com/example/vouch/internal/ports/primary"
)

// DefaultActorID attributes actions when no --actor flag is given.
const DefaultActorID = "reviewer"

// actorContext builds the request context carrying the acting user's ID
// from the persistent --actor flag.
func actorContext(cmd *cobra.Command) context.Context {
	actor, _ := cmd.Flags().GetString("actor")
	if actor == "" {
		actor = DefaultActorID
	}
	return ctxutil.WithActorID(context.Background(), actor)
}

// printOutcome renders a workflow outcome to stdout.
func printOutcome(outcome *primary.Outcome) {
	if outcome.OK {
		fmt.Printf("%s %s\n", color.GreenString("✓"), outcome.Message)
	} else {
		fmt.Printf("%s %s\n", color.RedString("✗"), outcome.Message)
	}
	if outcome.Token != "" {
		fmt.Printf("  Token: %s\n", outcome.Token)
	}
	if outcome.Record != nil {
		fmt.Printf("  Record: %s\n", outcome.Record.OriginID)
	}
}
