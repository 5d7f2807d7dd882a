package events

import (
	"context"
	"errors"
	"testing"
)

func TestDispatcherDeliversToSubscribers(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	var received []string
	dispatcher.Subscribe(EventSLABreached, func(_ context.Context, event Event) error {
		received = append(received, event.TicketID)
		return nil
	})

	if err := dispatcher.Publish(context.Background(), Event{Type: EventSLABreached, TicketID: "t-1"}); err != nil {
		t.Fatalf("unexpected publish error: %v", err)
	}
	if err := dispatcher.Publish(context.Background(), Event{Type: EventEscalationRaised, TicketID: "t-2"}); err != nil {
		t.Fatalf("unexpected publish error: %v", err)
	}

	if len(received) != 1 || received[0] != "t-1" {
		t.Fatalf("expected only the breach event, got %v", received)
	}
}

func TestDispatcherContinuesPastHandlerErrors(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	dispatcher.Subscribe(EventSLABreached, func(_ context.Context, _ Event) error {
		return errors.New("handler failed")
	})
	var called bool
	dispatcher.Subscribe(EventSLABreached, func(_ context.Context, _ Event) error {
		called = true
		return nil
	})

	if err := dispatcher.Publish(context.Background(), Event{Type: EventSLABreached}); err != nil {
		t.Fatalf("unexpected publish error: %v", err)
	}
	if !called {
		t.Fatal("second handler not invoked after first errored")
	}
}
