package secondary

import (
	"context"
	"errors"
)

// ErrSurfaceGone signals that a replica surface no longer exists (message
// deleted, channel gone). Broadcast logs and skips it; it never aborts the
// remaining surfaces.
var ErrSurfaceGone = errors.New("surface message gone")

// Messenger defines the secondary port onto the chat transport: create,
// edit and mark rendered messages by (channel, message) identity. The
// transport itself (widgets, dialogs, permissions) stays outside the core.
type Messenger interface {
	// Post creates a message in a channel and returns its message ID.
	Post(ctx context.Context, channelID, content string) (string, error)

	// Edit replaces the content of an existing message.
	// Returns ErrSurfaceGone when the message no longer exists.
	Edit(ctx context.Context, channelID, messageID, content string) error

	// React attaches a lightweight reaction marker to a message.
	// Returns ErrSurfaceGone when the message no longer exists.
	React(ctx context.Context, channelID, messageID, marker string) error
}
