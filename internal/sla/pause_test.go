package sla

import (
	"testing"
	"time"

	"github.com/spec-kit/sla-monitor/internal/domain"
)

var pauseBase = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func event(at time.Time, from, to domain.TicketStatus) domain.StatusEvent {
	return domain.StatusEvent{TicketID: "t-1", OldStatus: from, NewStatus: to, CreatedAt: at}
}

func TestPausedDurationNoEvents(t *testing.T) {
	ticket := &domain.Ticket{ID: "t-1", CreatedAt: pauseBase}
	if got := PausedDuration(ticket, pauseBase.Add(2*time.Hour)); got != 0 {
		t.Fatalf("expected zero paused duration, got %s", got)
	}
}

func TestPausedDurationClosedInterval(t *testing.T) {
	ticket := &domain.Ticket{
		ID:        "t-1",
		CreatedAt: pauseBase,
		Status:    domain.TicketStatusInProgress,
		StatusEvents: []domain.StatusEvent{
			event(pauseBase.Add(30*time.Minute), domain.TicketStatusInProgress, domain.TicketStatusOnHold),
			event(pauseBase.Add(time.Hour), domain.TicketStatusOnHold, domain.TicketStatusInProgress),
		},
	}
	if got := PausedDuration(ticket, pauseBase.Add(3*time.Hour)); got != 30*time.Minute {
		t.Fatalf("expected 30m, got %s", got)
	}
}

func TestPausedDurationOpenEndedHold(t *testing.T) {
	ticket := &domain.Ticket{
		ID:        "t-1",
		CreatedAt: pauseBase,
		Status:    domain.TicketStatusOnHold,
		StatusEvents: []domain.StatusEvent{
			event(pauseBase.Add(time.Hour), domain.TicketStatusOpen, domain.TicketStatusOnHold),
		},
	}
	if got := PausedDuration(ticket, pauseBase.Add(90*time.Minute)); got != 30*time.Minute {
		t.Fatalf("expected open hold clipped at asOf (30m), got %s", got)
	}
}

func TestPausedDurationSortsOutOfOrderEvents(t *testing.T) {
	ticket := &domain.Ticket{
		ID:        "t-1",
		CreatedAt: pauseBase,
		StatusEvents: []domain.StatusEvent{
			event(pauseBase.Add(time.Hour), domain.TicketStatusOnHold, domain.TicketStatusInProgress),
			event(pauseBase.Add(20*time.Minute), domain.TicketStatusInProgress, domain.TicketStatusOnHold),
		},
	}
	if got := PausedDuration(ticket, pauseBase.Add(2*time.Hour)); got != 40*time.Minute {
		t.Fatalf("expected 40m after reordering, got %s", got)
	}
}

func TestPausedDurationIgnoresUnmatchedResume(t *testing.T) {
	ticket := &domain.Ticket{
		ID:        "t-1",
		CreatedAt: pauseBase,
		StatusEvents: []domain.StatusEvent{
			event(pauseBase.Add(10*time.Minute), domain.TicketStatusOnHold, domain.TicketStatusInProgress),
		},
	}
	if got := PausedDuration(ticket, pauseBase.Add(time.Hour)); got != 0 {
		t.Fatalf("expected resume without hold to be ignored, got %s", got)
	}
}

func TestPausedDurationMultipleIntervals(t *testing.T) {
	ticket := &domain.Ticket{
		ID:        "t-1",
		CreatedAt: pauseBase,
		StatusEvents: []domain.StatusEvent{
			event(pauseBase.Add(10*time.Minute), domain.TicketStatusOpen, domain.TicketStatusOnHold),
			event(pauseBase.Add(25*time.Minute), domain.TicketStatusOnHold, domain.TicketStatusInProgress),
			event(pauseBase.Add(time.Hour), domain.TicketStatusInProgress, domain.TicketStatusOnHold),
			event(pauseBase.Add(80*time.Minute), domain.TicketStatusOnHold, domain.TicketStatusResolved),
		},
	}
	if got := PausedDuration(ticket, pauseBase.Add(2*time.Hour)); got != 35*time.Minute {
		t.Fatalf("expected 15m+20m=35m, got %s", got)
	}
}

func TestPausedDurationIgnoresEventsAfterAsOf(t *testing.T) {
	ticket := &domain.Ticket{
		ID:        "t-1",
		CreatedAt: pauseBase,
		StatusEvents: []domain.StatusEvent{
			event(pauseBase.Add(3*time.Hour), domain.TicketStatusOpen, domain.TicketStatusOnHold),
		},
	}
	if got := PausedDuration(ticket, pauseBase.Add(time.Hour)); got != 0 {
		t.Fatalf("expected future events ignored, got %s", got)
	}
}
