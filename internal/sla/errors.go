package sla

import "fmt"

// MalformedTicketError reports a ticket record unusable for deadline math,
// typically a missing creation timestamp. Defaulting the timestamp would
// mask data corruption, so the engine fails the single ticket instead.
type MalformedTicketError struct {
	TicketID string
	Reason   string
}

func (e *MalformedTicketError) Error() string {
	return fmt.Sprintf("malformed ticket %s: %s", e.TicketID, e.Reason)
}
