package domain

import "time"

// StatusEvent is an immutable record of a ticket status transition.
// The event trail is the canonical source for pause accounting; hold
// intervals are reconstructed from transitions into and out of ON_HOLD.
type StatusEvent struct {
	ID        string
	TicketID  string
	OldStatus TicketStatus
	NewStatus TicketStatus
	CreatedAt time.Time
}
