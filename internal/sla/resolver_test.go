package sla

import (
	"testing"
	"time"

	"github.com/spec-kit/sla-monitor/internal/domain"
)

func strPtr(s string) *string { return &s }

func priPtr(p domain.TicketPriority) *domain.TicketPriority { return &p }

func activeRule(id string, dept, category *string, priority *domain.TicketPriority, hours float64) domain.SLARule {
	return domain.SLARule{
		ID:           id,
		DepartmentID: dept,
		Category:     category,
		Priority:     priority,
		TimeHours:    hours,
		IsActive:     true,
	}
}

func TestResolvePrecedence(t *testing.T) {
	ticket := &domain.Ticket{
		ID:           "t-1",
		DepartmentID: "dept-ti",
		Category:     "hardware",
		Priority:     domain.TicketPriorityCritical,
		Status:       domain.TicketStatusOpen,
		CreatedAt:    time.Now(),
	}
	rules := []domain.SLARule{
		activeRule("rule-global", nil, nil, nil, 24),
		activeRule("rule-critical", nil, nil, priPtr(domain.TicketPriorityCritical), 2),
		activeRule("rule-ti-critical", strPtr("dept-ti"), nil, priPtr(domain.TicketPriorityCritical), 1),
	}

	res := NewEngine(DefaultBudgetHours).Resolve(ticket, rules)
	if res.Rule == nil || res.Rule.ID != "rule-ti-critical" {
		t.Fatalf("expected department+priority rule to win, got %+v", res.Rule)
	}
	if res.Budget != time.Hour {
		t.Fatalf("expected 1h budget, got %s", res.Budget)
	}
	if res.UsedDefaultBudget || res.Conflict {
		t.Fatalf("unexpected flags: %+v", res)
	}
}

func TestResolveDepartmentBeatsCategoryAndPriority(t *testing.T) {
	ticket := &domain.Ticket{
		ID:           "t-2",
		DepartmentID: "dept-ti",
		Category:     "network",
		Priority:     domain.TicketPriorityHigh,
	}
	rules := []domain.SLARule{
		activeRule("rule-priority", nil, nil, priPtr(domain.TicketPriorityHigh), 4),
		activeRule("rule-category", nil, strPtr("network"), nil, 6),
		activeRule("rule-department", strPtr("dept-ti"), nil, nil, 8),
	}

	res := NewEngine(DefaultBudgetHours).Resolve(ticket, rules)
	if res.Rule == nil || res.Rule.ID != "rule-department" {
		t.Fatalf("expected department rule, got %+v", res.Rule)
	}
}

func TestResolveIgnoresInactiveAndNonPositiveBudget(t *testing.T) {
	ticket := &domain.Ticket{ID: "t-3", DepartmentID: "dept-ti", Priority: domain.TicketPriorityLow}
	inactive := activeRule("rule-dept", strPtr("dept-ti"), nil, nil, 8)
	inactive.IsActive = false
	rules := []domain.SLARule{
		inactive,
		activeRule("rule-zero", nil, nil, priPtr(domain.TicketPriorityLow), 0),
		activeRule("rule-global", nil, nil, nil, 48),
	}

	res := NewEngine(DefaultBudgetHours).Resolve(ticket, rules)
	if res.Rule == nil || res.Rule.ID != "rule-global" {
		t.Fatalf("expected fall-through to global rule, got %+v", res.Rule)
	}
}

func TestResolveDefaultBudgetWhenNothingMatches(t *testing.T) {
	ticket := &domain.Ticket{ID: "t-4", DepartmentID: "dept-hr", Priority: domain.TicketPriorityMedium}
	rules := []domain.SLARule{
		activeRule("rule-other-dept", strPtr("dept-ti"), nil, nil, 8),
	}

	res := NewEngine(DefaultBudgetHours).Resolve(ticket, rules)
	if res.Rule != nil {
		t.Fatalf("expected no rule, got %+v", res.Rule)
	}
	if !res.UsedDefaultBudget {
		t.Fatal("expected UsedDefaultBudget flag")
	}
	if res.Budget != 24*time.Hour {
		t.Fatalf("expected 24h default budget, got %s", res.Budget)
	}
}

func TestResolveTieIsDeterministicAndFlagged(t *testing.T) {
	ticket := &domain.Ticket{ID: "t-5", Priority: domain.TicketPriorityHigh}
	rules := []domain.SLARule{
		activeRule("rule-b", nil, nil, priPtr(domain.TicketPriorityHigh), 4),
		activeRule("rule-a", nil, nil, priPtr(domain.TicketPriorityHigh), 6),
	}

	engine := NewEngine(DefaultBudgetHours)
	res := engine.Resolve(ticket, rules)
	if res.Rule == nil || res.Rule.ID != "rule-a" {
		t.Fatalf("expected smallest rule ID to win the tie, got %+v", res.Rule)
	}
	if !res.Conflict {
		t.Fatal("expected Conflict flag on specificity tie")
	}

	// Same outcome regardless of slice order.
	reversed := []domain.SLARule{rules[1], rules[0]}
	again := engine.Resolve(ticket, reversed)
	if again.Rule == nil || again.Rule.ID != "rule-a" {
		t.Fatalf("tie-break depends on input order, got %+v", again.Rule)
	}
}
