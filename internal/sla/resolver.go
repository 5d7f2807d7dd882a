package sla

import (
	"time"

	"github.com/spec-kit/sla-monitor/internal/domain"
)

// DefaultBudgetHours is the fallback time budget applied when no rule
// matches a ticket and no global rule is configured.
const DefaultBudgetHours = 24

// Engine evaluates SLA deadlines. It is stateless apart from the default
// budget and safe for concurrent use; every method is a pure function of
// its arguments and the explicit asOf instant.
type Engine struct {
	defaultBudget time.Duration
}

// NewEngine builds an engine with the given fallback budget in hours.
// Non-positive values fall back to DefaultBudgetHours.
func NewEngine(defaultBudgetHours float64) *Engine {
	if defaultBudgetHours <= 0 {
		defaultBudgetHours = DefaultBudgetHours
	}
	return &Engine{defaultBudget: hoursToDuration(defaultBudgetHours)}
}

// Resolution is the outcome of matching a ticket against the rule set.
type Resolution struct {
	// Rule is nil when the default budget was applied.
	Rule *domain.SLARule
	// Budget is the active-time allowance for the ticket.
	Budget time.Duration
	// UsedDefaultBudget marks tickets with no configured SLA so dashboards
	// can surface "unconfigured" rather than a false guarantee.
	UsedDefaultBudget bool
	// Conflict marks a specificity tie that was broken deterministically.
	Conflict bool
}

// Resolve selects the applicable SLA rule for a ticket, most specific scope
// first: department+category+priority beats department-only, which beats
// category-only, which beats priority-only, which beats the global rule.
// Inactive rules and rules with a non-positive time budget are ineligible.
// Ties at equal specificity resolve to the smallest rule ID and are flagged
// as a conflict. With no eligible match the default budget applies.
func (e *Engine) Resolve(ticket *domain.Ticket, rules []domain.SLARule) Resolution {
	var (
		best      *domain.SLARule
		bestScore = -1
		conflict  bool
	)

	for i := range rules {
		rule := &rules[i]
		if !rule.IsActive || rule.TimeHours <= 0 {
			continue
		}
		score, ok := scopeScore(ticket, rule)
		if !ok {
			continue
		}
		switch {
		case score > bestScore:
			best = rule
			bestScore = score
			conflict = false
		case score == bestScore:
			conflict = true
			if rule.ID < best.ID {
				best = rule
			}
		}
	}

	if best == nil {
		return Resolution{Budget: e.defaultBudget, UsedDefaultBudget: true}
	}
	return Resolution{
		Rule:     best,
		Budget:   hoursToDuration(best.TimeHours),
		Conflict: conflict,
	}
}

// scopeScore reports whether the rule's scoped attributes all match the
// ticket and, if so, a specificity score. Department outranks category,
// category outranks priority, so compound scopes order naturally.
func scopeScore(ticket *domain.Ticket, rule *domain.SLARule) (int, bool) {
	score := 0
	if rule.DepartmentID != nil {
		if *rule.DepartmentID != ticket.DepartmentID {
			return 0, false
		}
		score |= 4
	}
	if rule.Category != nil {
		if *rule.Category != ticket.Category {
			return 0, false
		}
		score |= 2
	}
	if rule.Priority != nil {
		if *rule.Priority != ticket.Priority {
			return 0, false
		}
		score |= 1
	}
	return score, true
}

func hoursToDuration(hours float64) time.Duration {
	return time.Duration(hours * float64(time.Hour))
}
