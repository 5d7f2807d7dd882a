package dto

import (
	"time"

	"github.com/spec-kit/sla-monitor/internal/domain"
	"github.com/spec-kit/sla-monitor/internal/sla"
)

// SummaryResponse is the dashboard aggregate.
type SummaryResponse struct {
	TotalTickets   int       `json:"total_tickets"`
	NormalCount    int       `json:"normal_count"`
	WarningCount   int       `json:"warning_count"`
	CriticalCount  int       `json:"critical_count"`
	ViolatedCount  int       `json:"violated_count"`
	ErrorCount     int       `json:"error_count"`
	ComplianceRate float64   `json:"compliance_rate"`
	GeneratedAt    time.Time `json:"generated_at"`
}

// DeadlineResponse is the per-ticket SLA evaluation. Durations are exposed
// in milliseconds; remaining_ms goes negative once the budget is exhausted.
type DeadlineResponse struct {
	TicketID           string                `json:"ticket_id"`
	ExternalKey        string                `json:"external_key,omitempty"`
	RuleID             string                `json:"rule_id,omitempty"`
	Status             domain.TicketStatus   `json:"status"`
	Priority           domain.TicketPriority `json:"priority"`
	BudgetMs           int64                 `json:"budget_ms"`
	ActiveElapsedMs    int64                 `json:"active_elapsed_ms"`
	PausedMs           int64                 `json:"paused_ms"`
	RemainingMs        int64                 `json:"remaining_ms"`
	PercentageUsed     float64               `json:"percentage_used"`
	DueAt              time.Time             `json:"due_at"`
	Bucket             sla.Bucket            `json:"bucket"`
	EscalationEligible bool                  `json:"escalation_eligible"`
	UsedDefaultBudget  bool                  `json:"used_default_budget"`
	RuleConflict       bool                  `json:"rule_conflict"`
}

// EscalationQueueResponse wraps the ordered escalation list.
type EscalationQueueResponse struct {
	Count   int                `json:"count"`
	Tickets []DeadlineResponse `json:"tickets"`
}

// RuleRequest is the rule create/update payload.
type RuleRequest struct {
	DepartmentID *string `json:"department_id"`
	Category     *string `json:"category"`
	Priority     *string `json:"priority"`
	TimeHours    float64 `json:"time_hours"`
	IsActive     *bool   `json:"is_active"`
}

// RuleResponse describes a configured rule.
type RuleResponse struct {
	ID           string    `json:"id"`
	DepartmentID *string   `json:"department_id,omitempty"`
	Category     *string   `json:"category,omitempty"`
	Priority     *string   `json:"priority,omitempty"`
	TimeHours    float64   `json:"time_hours"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// FromDeadlineResult maps an engine result to its API shape.
func FromDeadlineResult(result sla.DeadlineResult) DeadlineResponse {
	return DeadlineResponse{
		TicketID:           result.TicketID,
		ExternalKey:        result.ExternalKey,
		RuleID:             result.RuleID,
		Status:             result.Status,
		Priority:           result.Priority,
		BudgetMs:           result.Budget.Milliseconds(),
		ActiveElapsedMs:    result.ActiveElapsed.Milliseconds(),
		PausedMs:           result.Paused.Milliseconds(),
		RemainingMs:        result.Remaining.Milliseconds(),
		PercentageUsed:     result.Percentage,
		DueAt:              result.DueAt,
		Bucket:             result.Bucket,
		EscalationEligible: result.EscalationEligible,
		UsedDefaultBudget:  result.UsedDefaultBudget,
		RuleConflict:       result.RuleConflict,
	}
}

// FromSummary maps the engine aggregate to its API shape.
func FromSummary(summary sla.Summary) SummaryResponse {
	return SummaryResponse{
		TotalTickets:   summary.TotalTickets,
		NormalCount:    summary.NormalCount,
		WarningCount:   summary.WarningCount,
		CriticalCount:  summary.CriticalCount,
		ViolatedCount:  summary.ViolatedCount,
		ErrorCount:     summary.ErrorCount,
		ComplianceRate: summary.ComplianceRate,
		GeneratedAt:    summary.GeneratedAt,
	}
}

// FromRule maps a rule record to its API shape.
func FromRule(rule domain.SLARule) RuleResponse {
	var priority *string
	if rule.Priority != nil {
		p := string(*rule.Priority)
		priority = &p
	}
	return RuleResponse{
		ID:           rule.ID,
		DepartmentID: rule.DepartmentID,
		Category:     rule.Category,
		Priority:     priority,
		TimeHours:    rule.TimeHours,
		IsActive:     rule.IsActive,
		CreatedAt:    rule.CreatedAt,
		UpdatedAt:    rule.UpdatedAt,
	}
}
