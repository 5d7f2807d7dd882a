package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/sla-monitor/internal/events"
)

// EscalationNotifier surfaces escalation events to operators. The delivery
// channel is a structured log line for now; a mail or webhook sender would
// subscribe the same way.
type EscalationNotifier struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewEscalationNotifier constructs the notifier.
func NewEscalationNotifier(dispatcher events.Dispatcher, logger *zap.Logger) *EscalationNotifier {
	return &EscalationNotifier{dispatcher: dispatcher, logger: logger}
}

// RegisterHandlers subscribes the notifier to escalation-related events.
func (n *EscalationNotifier) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventSLABreached, n.handleBreach)
	n.dispatcher.Subscribe(events.EventEscalationRaised, n.handleEscalation)
}

func (n *EscalationNotifier) handleBreach(_ context.Context, event events.Event) error {
	n.logger.Error("sla breached",
		zap.String("ticket_id", event.TicketID),
		zap.Any("payload", event.Payload),
	)
	return nil
}

func (n *EscalationNotifier) handleEscalation(_ context.Context, event events.Event) error {
	n.logger.Warn("ticket escalated",
		zap.String("ticket_id", event.TicketID),
		zap.Any("payload", event.Payload),
	)
	return nil
}
