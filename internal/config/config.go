package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Defaults applied when a field is absent from the config file.
const (
	DefaultSlotCount      = 3
	DefaultReactionMarker = "white_check_mark"
	DefaultDraftTTL       = 10 * time.Minute
)

// Config represents the flat vouch configuration.
type Config struct {
	Version         string `json:"version"`
	ReviewChannelID string `json:"review_channel_id"`          // Channel where recommendations are posted
	PollChannelID   string `json:"poll_channel_id,omitempty"`  // Mirror target; empty disables the poll mirror
	ReactionMarker  string `json:"reaction_marker,omitempty"`  // Reaction attached to a submitted recommendation
	SlotCount       int    `json:"slot_count,omitempty"`       // Number of observation report slots per candidate
	AllowedRole     string `json:"allowed_role,omitempty"`     // Role allowed to act; enforcement happens in the transport
	DraftTTLSeconds int    `json:"draft_ttl_seconds,omitempty"` // Lifetime of an unsubmitted recommendation draft
}

// LoadConfig reads .vouch/config.json from the specified directory.
// Resolution order: cwd only (no home fallback).
// Returns error if no config found - caller should handle accordingly.
func LoadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, ".vouch", "config.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// SaveConfig writes config.json to directory
func SaveConfig(dir string, cfg *Config) error {
	vouchDir := filepath.Join(dir, ".vouch")
	if err := os.MkdirAll(vouchDir, 0755); err != nil {
		return fmt.Errorf("failed to create .vouch dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(vouchDir, "config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Default returns a config with all defaults filled in, used when no
// config file exists.
func Default() *Config {
	cfg := &Config{
		Version:         "1.0",
		ReviewChannelID: "review",
		PollChannelID:   "poll",
	}
	cfg.applyDefaults()
	return cfg
}

// DraftTTL returns the configured draft lifetime as a duration.
func (c *Config) DraftTTL() time.Duration {
	if c.DraftTTLSeconds > 0 {
		return time.Duration(c.DraftTTLSeconds) * time.Second
	}
	return DefaultDraftTTL
}

func (c *Config) applyDefaults() {
	if c.SlotCount <= 0 {
		c.SlotCount = DefaultSlotCount
	}
	if c.ReactionMarker == "" {
		c.ReactionMarker = DefaultReactionMarker
	}
}
