package events

import (
	"time"

	"github.com/spec-kit/sla-monitor/internal/domain"
	"github.com/spec-kit/sla-monitor/internal/sla"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventSLAAtRisk         EventType = "sla_at_risk"
	EventSLABreached       EventType = "sla_breached"
	EventEscalationRaised  EventType = "escalation_raised"
	EventRuleCreated       EventType = "sla_rule_created"
	EventRuleUpdated       EventType = "sla_rule_updated"
	EventRuleConflictFound EventType = "sla_rule_conflict"
)

// Event represents a domain event emitted by the SLA service.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	TicketID  string      `json:"ticket_id,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// DeadlinePayload carries the computed deadline facts for a ticket.
type DeadlinePayload struct {
	RuleID            string                `json:"rule_id,omitempty"`
	Bucket            sla.Bucket            `json:"bucket"`
	Priority          domain.TicketPriority `json:"priority"`
	RemainingMs       int64                 `json:"remaining_ms"`
	PercentageUsed    float64               `json:"percentage_used"`
	UsedDefaultBudget bool                  `json:"used_default_budget"`
}

// RulePayload describes a rule configuration change.
type RulePayload struct {
	RuleID       string  `json:"rule_id"`
	DepartmentID *string `json:"department_id,omitempty"`
	Category     *string `json:"category,omitempty"`
	Priority     *string `json:"priority,omitempty"`
	TimeHours    float64 `json:"time_hours"`
	IsActive     bool    `json:"is_active"`
}

// RuleConflictPayload flags an ambiguous rule tie observed during resolution.
type RuleConflictPayload struct {
	TicketID string `json:"ticket_id"`
	RuleID   string `json:"rule_id"`
}
