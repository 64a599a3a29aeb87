// Package domain contains core concepts of the chat directory.
// This file defines Message values and their ordering rules.
// Messages are immutable once created.
package domain

import (
	"time"
)

// Message represents an immutable chat message.
// It belongs to no group until it has been sent.
type Message struct {
	ID        int // sequential identifier, starts at 1
	Content   string
	CreatedAt time.Time
}

// Before reports whether m is older than other.
// Messages sharing a timestamp are ordered by id.
func (m Message) Before(other Message) bool {
	if m.CreatedAt.Equal(other.CreatedAt) {
		return m.ID < other.ID
	}
	return m.CreatedAt.Before(other.CreatedAt)
}

// Within reports whether the message was created strictly between start and end.
func (m Message) Within(start, end time.Time) bool {
	return m.CreatedAt.After(start) && m.CreatedAt.Before(end)
}
