package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/sla-monitor/internal/domain"
	"github.com/spec-kit/sla-monitor/internal/events"
	"github.com/spec-kit/sla-monitor/internal/repository"
	"github.com/spec-kit/sla-monitor/pkg/util"
)

// RuleService manages SLA rule configuration on behalf of administrators.
type RuleService struct {
	rules       repository.SLARuleRepository
	departments repository.DepartmentRepository
	dispatcher  events.Dispatcher
	logger      *zap.Logger
}

// RuleDependencies bundles collaborators for rule administration.
type RuleDependencies struct {
	RuleRepo       repository.SLARuleRepository
	DepartmentRepo repository.DepartmentRepository
	Dispatcher     events.Dispatcher
	Logger         *zap.Logger
}

// RuleInput describes a rule create/update payload.
type RuleInput struct {
	DepartmentID *string
	Category     *string
	Priority     *domain.TicketPriority
	TimeHours    float64
	IsActive     bool
}

// NewRuleService constructs the service.
func NewRuleService(deps RuleDependencies) *RuleService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RuleService{
		rules:       deps.RuleRepo,
		departments: deps.DepartmentRepo,
		dispatcher:  deps.Dispatcher,
		logger:      logger,
	}
}

// CreateRule validates and persists a new SLA rule.
func (s *RuleService) CreateRule(ctx context.Context, input RuleInput) (*domain.SLARule, error) {
	if err := s.validateInput(ctx, input); err != nil {
		return nil, err
	}

	rule := &domain.SLARule{
		DepartmentID: input.DepartmentID,
		Category:     input.Category,
		Priority:     input.Priority,
		TimeHours:    input.TimeHours,
		IsActive:     input.IsActive,
	}
	if err := s.rules.Create(ctx, rule); err != nil {
		return nil, err
	}
	s.publishRuleEvent(ctx, events.EventRuleCreated, rule)
	return rule, nil
}

// UpdateRule validates and applies changes to an existing rule.
// Deactivation goes through here too: administrators flip IsActive rather
// than deleting, so historical results keep their rule reference.
func (s *RuleService) UpdateRule(ctx context.Context, ruleID string, input RuleInput) (*domain.SLARule, error) {
	if err := s.validateInput(ctx, input); err != nil {
		return nil, err
	}

	rule, err := s.rules.GetByID(ctx, ruleID)
	if err != nil {
		return nil, err
	}
	rule.DepartmentID = input.DepartmentID
	rule.Category = input.Category
	rule.Priority = input.Priority
	rule.TimeHours = input.TimeHours
	rule.IsActive = input.IsActive
	if err := s.rules.Update(ctx, rule); err != nil {
		return nil, err
	}
	s.publishRuleEvent(ctx, events.EventRuleUpdated, rule)
	return rule, nil
}

// ListRules returns all configured rules for the administration surface.
func (s *RuleService) ListRules(ctx context.Context) ([]domain.SLARule, error) {
	return s.rules.ListAll(ctx)
}

func (s *RuleService) validateInput(ctx context.Context, input RuleInput) error {
	if input.TimeHours <= 0 {
		return util.NewValidationError("time budget must be a positive number of hours", map[string]any{
			"time_hours": input.TimeHours,
		})
	}
	if input.Priority != nil && input.Priority.Rank() == 0 {
		return util.NewValidationError("unknown priority", map[string]any{
			"priority": string(*input.Priority),
		})
	}
	if input.DepartmentID != nil {
		dept, err := s.departments.GetByID(ctx, *input.DepartmentID)
		if err != nil {
			return err
		}
		if !dept.IsActive {
			return util.NewValidationError("department inactive", map[string]any{
				"department_id": dept.ID,
			})
		}
	}
	return nil
}

func (s *RuleService) publishRuleEvent(ctx context.Context, eventType events.EventType, rule *domain.SLARule) {
	if s.dispatcher == nil {
		return
	}
	var priority *string
	if rule.Priority != nil {
		p := string(*rule.Priority)
		priority = &p
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:   uuid.NewString(),
		Type: eventType,
		Payload: events.RulePayload{
			RuleID:       rule.ID,
			DepartmentID: rule.DepartmentID,
			Category:     rule.Category,
			Priority:     priority,
			TimeHours:    rule.TimeHours,
			IsActive:     rule.IsActive,
		},
	})
}
