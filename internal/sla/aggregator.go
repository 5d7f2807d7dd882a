package sla

import (
	"sort"
	"time"

	"github.com/spec-kit/sla-monitor/internal/domain"
)

// Summary aggregates deadline results over a ticket population.
type Summary struct {
	TotalTickets  int
	NormalCount   int
	WarningCount  int
	CriticalCount int
	ViolatedCount int
	// ErrorCount tallies tickets that failed evaluation; one bad record
	// never aborts the rest of the population.
	ErrorCount     int
	ComplianceRate float64
	GeneratedAt    time.Time
}

// EvaluateAll evaluates every ticket against the rule set, isolating
// per-ticket failures. It returns the successful results and the count of
// tickets that could not be evaluated.
func (e *Engine) EvaluateAll(tickets []domain.Ticket, rules []domain.SLARule, asOf time.Time) ([]DeadlineResult, int) {
	results := make([]DeadlineResult, 0, len(tickets))
	errorCount := 0
	for i := range tickets {
		result, err := e.Evaluate(&tickets[i], rules, asOf)
		if err != nil {
			errorCount++
			continue
		}
		results = append(results, result)
	}
	return results, errorCount
}

// Summarize produces dashboard counts and the compliance rate for a ticket
// population. Every call is a fresh stateless pass over the supplied
// snapshot, so it is safe to rerun on each refresh tick.
func (e *Engine) Summarize(tickets []domain.Ticket, rules []domain.SLARule, asOf time.Time) Summary {
	results, errorCount := e.EvaluateAll(tickets, rules, asOf)

	summary := Summary{
		TotalTickets: len(tickets),
		ErrorCount:   errorCount,
		GeneratedAt:  asOf,
	}
	for _, result := range results {
		switch result.Bucket {
		case BucketNormal:
			summary.NormalCount++
		case BucketWarning:
			summary.WarningCount++
		case BucketCritical:
			summary.CriticalCount++
		case BucketViolated:
			summary.ViolatedCount++
		}
	}

	if summary.TotalTickets > 0 {
		summary.ComplianceRate = float64(summary.TotalTickets-summary.ViolatedCount) / float64(summary.TotalTickets)
	} else {
		summary.ComplianceRate = 1.0
	}
	return summary
}

// EscalationQueue returns escalation-eligible results ordered by urgency:
// least remaining time first, then higher priority, then ticket ID so the
// ordering is stable across refreshes.
func (e *Engine) EscalationQueue(tickets []domain.Ticket, rules []domain.SLARule, asOf time.Time) []DeadlineResult {
	results, _ := e.EvaluateAll(tickets, rules, asOf)

	queue := results[:0]
	for _, result := range results {
		if result.EscalationEligible {
			queue = append(queue, result)
		}
	}
	sort.SliceStable(queue, func(i, j int) bool {
		if queue[i].Remaining != queue[j].Remaining {
			return queue[i].Remaining < queue[j].Remaining
		}
		if queue[i].Priority.Rank() != queue[j].Priority.Rank() {
			return queue[i].Priority.Rank() > queue[j].Priority.Rank()
		}
		return queue[i].TicketID < queue[j].TicketID
	})
	return queue
}
