package sla

import (
	"time"

	"github.com/spec-kit/sla-monitor/internal/domain"
)

// DeadlineResult is the per-ticket SLA evaluation. Results are ephemeral:
// recomputed on every evaluation, never persisted.
type DeadlineResult struct {
	TicketID    string
	ExternalKey string
	RuleID      string
	Status      domain.TicketStatus
	Priority    domain.TicketPriority

	Budget        time.Duration
	ActiveElapsed time.Duration
	Paused        time.Duration
	// Remaining is signed; negative means overdue.
	Remaining time.Duration
	// Percentage of the budget consumed, unbounded above 100 so callers can
	// distinguish "at limit" from "over limit".
	Percentage float64
	DueAt      time.Time

	Bucket             Bucket
	EscalationEligible bool
	UsedDefaultBudget  bool
	RuleConflict       bool
}

// Compute derives elapsed, remaining and consumed-percentage figures for a
// ticket under an already-resolved rule. Resolved and closed tickets are
// evaluated against their resolution time, which keeps historical compliance
// reporting truthful, but they are never escalation-eligible.
func (e *Engine) Compute(ticket *domain.Ticket, res Resolution, asOf time.Time) (DeadlineResult, error) {
	if ticket.CreatedAt.IsZero() {
		return DeadlineResult{}, &MalformedTicketError{TicketID: ticket.ID, Reason: "missing creation timestamp"}
	}

	endTime := asOf
	if ticket.ResolvedAt != nil {
		endTime = *ticket.ResolvedAt
	}

	rawElapsed := endTime.Sub(ticket.CreatedAt)
	if rawElapsed < 0 {
		rawElapsed = 0
	}
	paused := PausedDuration(ticket, endTime)
	activeElapsed := rawElapsed - paused
	if activeElapsed < 0 {
		activeElapsed = 0
	}

	remaining := res.Budget - activeElapsed
	percentage := float64(activeElapsed) / float64(res.Budget) * 100

	onHold := ticket.Status == domain.TicketStatusOnHold
	bucket, eligible := Classify(remaining, percentage, ticket.Status, onHold)

	result := DeadlineResult{
		TicketID:           ticket.ID,
		ExternalKey:        ticket.ExternalKey,
		Status:             ticket.Status,
		Priority:           ticket.Priority,
		Budget:             res.Budget,
		ActiveElapsed:      activeElapsed,
		Paused:             paused,
		Remaining:          remaining,
		Percentage:         percentage,
		DueAt:              ticket.CreatedAt.Add(res.Budget + paused),
		Bucket:             bucket,
		EscalationEligible: eligible,
		UsedDefaultBudget:  res.UsedDefaultBudget,
		RuleConflict:       res.Conflict,
	}
	if res.Rule != nil {
		result.RuleID = res.Rule.ID
	}
	return result, nil
}

// Evaluate resolves the applicable rule and computes the deadline result in
// one pass, the common path for dashboards and sweeps.
func (e *Engine) Evaluate(ticket *domain.Ticket, rules []domain.SLARule, asOf time.Time) (DeadlineResult, error) {
	return e.Compute(ticket, e.Resolve(ticket, rules), asOf)
}
