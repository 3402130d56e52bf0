// File: services/assistant/interface.go
package assistant

import (
	"context"

	"tripdesk/models"
)

// Service runs one chat turn: history plus a new user message in, the
// assistant's reply out. Errors never escape a turn; they surface as a fixed
// apology reply.
type Service interface {
	Chat(ctx context.Context, message string, history []models.ChatTurn) string
}

// Announcer speaks a reply without blocking its delivery.
type Announcer interface {
	Announce(text string)
}
