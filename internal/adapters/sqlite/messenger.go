package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/example/vouch/internal/ports/secondary"
)

// ChatMessenger implements secondary.Messenger against the local
// surface_messages table. It emulates a chat backend so the CLI works
// end-to-end without one; a real transport binding implements the same
// port against its messaging API.
type ChatMessenger struct {
	db *sql.DB
}

// NewChatMessenger creates a new SQLite-backed messenger.
func NewChatMessenger(db *sql.DB) *ChatMessenger {
	return &ChatMessenger{db: db}
}

// Post creates a message in a channel and returns its message ID.
func (m *ChatMessenger) Post(ctx context.Context, channelID, content string) (string, error) {
	messageID := uuid.NewString()

	_, err := m.db.ExecContext(ctx,
		"INSERT INTO surface_messages (channel_id, message_id, content) VALUES (?, ?, ?)",
		channelID, messageID, content,
	)
	if err != nil {
		return "", fmt.Errorf("failed to post message: %w", err)
	}

	return messageID, nil
}

// Edit replaces the content of an existing message.
func (m *ChatMessenger) Edit(ctx context.Context, channelID, messageID, content string) error {
	result, err := m.db.ExecContext(ctx,
		`UPDATE surface_messages SET content = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE channel_id = ? AND message_id = ?`,
		content, channelID, messageID,
	)
	if err != nil {
		return fmt.Errorf("failed to edit message: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return secondary.ErrSurfaceGone
	}

	return nil
}

// React attaches a reaction marker to a message.
func (m *ChatMessenger) React(ctx context.Context, channelID, messageID, marker string) error {
	result, err := m.db.ExecContext(ctx,
		`UPDATE surface_messages SET reactions = TRIM(reactions || ' ' || ?)
		 WHERE channel_id = ? AND message_id = ?`,
		marker, channelID, messageID,
	)
	if err != nil {
		return fmt.Errorf("failed to react to message: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return secondary.ErrSurfaceGone
	}

	return nil
}

// Fetch reads back a rendered message, used by the CLI to display surfaces.
// Returns ErrSurfaceGone when the message does not exist.
func (m *ChatMessenger) Fetch(ctx context.Context, channelID, messageID string) (content string, reactions []string, err error) {
	var rawReactions string
	err = m.db.QueryRowContext(ctx,
		"SELECT content, reactions FROM surface_messages WHERE channel_id = ? AND message_id = ?",
		channelID, messageID,
	).Scan(&content, &rawReactions)

	if err == sql.ErrNoRows {
		return "", nil, secondary.ErrSurfaceGone
	}
	if err != nil {
		return "", nil, fmt.Errorf("failed to fetch message: %w", err)
	}

	if rawReactions != "" {
		reactions = strings.Fields(rawReactions)
	}
	return content, reactions, nil
}

// Ensure ChatMessenger implements the interface
var _ secondary.Messenger = (*ChatMessenger)(nil)
