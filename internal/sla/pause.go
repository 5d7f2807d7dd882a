package sla

import (
	"sort"
	"time"

	"github.com/spec-kit/sla-monitor/internal/domain"
)

// PausedDuration sums the time a ticket spent on hold up to asOf, derived
// from its status-change events. Events are processed in timestamp order
// regardless of slice order; a resume with no unmatched hold is ignored.
// An open-ended hold is closed at asOf.
func PausedDuration(ticket *domain.Ticket, asOf time.Time) time.Duration {
	if len(ticket.StatusEvents) == 0 {
		return 0
	}

	events := make([]domain.StatusEvent, len(ticket.StatusEvents))
	copy(events, ticket.StatusEvents)
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].CreatedAt.Before(events[j].CreatedAt)
	})

	var (
		total      time.Duration
		pauseStart *time.Time
	)
	for i := range events {
		ev := events[i]
		if ev.CreatedAt.After(asOf) {
			break
		}
		switch {
		case ev.NewStatus == domain.TicketStatusOnHold && pauseStart == nil:
			at := ev.CreatedAt
			pauseStart = &at
		case ev.NewStatus != domain.TicketStatusOnHold && pauseStart != nil:
			total += ev.CreatedAt.Sub(*pauseStart)
			pauseStart = nil
		}
	}
	if pauseStart != nil {
		if open := asOf.Sub(*pauseStart); open > 0 {
			total += open
		}
	}
	return total
}
