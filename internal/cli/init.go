package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/vouch/internal/config"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	var reviewChannel, pollChannel string
	var slotCount int

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize vouch in the current directory",
		Long: `Write .vouch/config.json in the current directory with the channel
and slot settings. Existing config is not overwritten.

Examples:
  vouch init
  vouch init --review-channel membership --poll-channel votes --slots 3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}

			if _, err := config.LoadConfig(cwd); err == nil {
				return fmt.Errorf("config already exists in %s/.vouch", cwd)
			}

			cfg := config.Default()
			if reviewChannel != "" {
				cfg.ReviewChannelID = reviewChannel
			}
			if pollChannel != "" {
				cfg.PollChannelID = pollChannel
			}
			if slotCount > 0 {
				cfg.SlotCount = slotCount
			}

			if err := config.SaveConfig(cwd, cfg); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}

			fmt.Printf("✓ Created .vouch/config.json\n")
			fmt.Printf("  Review channel: %s\n", cfg.ReviewChannelID)
			fmt.Printf("  Poll channel: %s\n", cfg.PollChannelID)
			fmt.Printf("  Report slots: %d\n", cfg.SlotCount)
			return nil
		},
	}

	cmd.Flags().StringVar(&reviewChannel, "review-channel", "", "Channel recommendations are posted to")
	cmd.Flags().StringVar(&pollChannel, "poll-channel", "", "Channel the poll mirror is posted to")
	cmd.Flags().IntVar(&slotCount, "slots", 0, "Number of observation report slots")

	return cmd
}
