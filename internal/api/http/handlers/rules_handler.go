package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/sla-monitor/internal/api/dto"
	"github.com/spec-kit/sla-monitor/internal/domain"
	"github.com/spec-kit/sla-monitor/internal/service"
	"github.com/spec-kit/sla-monitor/pkg/util"
)

// RulesHandler exposes SLA rule administration.
type RulesHandler struct {
	ruleService *service.RuleService
}

// NewRulesHandler returns a new handler instance.
func NewRulesHandler(ruleService *service.RuleService) *RulesHandler {
	return &RulesHandler{ruleService: ruleService}
}

// List serves all configured rules.
func (h *RulesHandler) List(c *fiber.Ctx) error {
	rules, err := h.ruleService.ListRules(c.UserContext())
	if err != nil {
		return err
	}
	response := make([]dto.RuleResponse, 0, len(rules))
	for _, rule := range rules {
		response = append(response, dto.FromRule(rule))
	}
	return c.JSON(fiber.Map{"rules": response})
}

// Create persists a new rule.
func (h *RulesHandler) Create(c *fiber.Ctx) error {
	input, err := parseRuleRequest(c)
	if err != nil {
		return err
	}
	rule, err := h.ruleService.CreateRule(c.UserContext(), input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromRule(*rule))
}

// Update applies changes to an existing rule.
func (h *RulesHandler) Update(c *fiber.Ctx) error {
	input, err := parseRuleRequest(c)
	if err != nil {
		return err
	}
	rule, err := h.ruleService.UpdateRule(c.UserContext(), c.Params("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(dto.FromRule(*rule))
}

func parseRuleRequest(c *fiber.Ctx) (service.RuleInput, error) {
	var req dto.RuleRequest
	if err := c.BodyParser(&req); err != nil {
		return service.RuleInput{}, util.NewValidationError("invalid request body", nil)
	}

	input := service.RuleInput{
		DepartmentID: req.DepartmentID,
		Category:     req.Category,
		TimeHours:    req.TimeHours,
		IsActive:     true,
	}
	if req.Priority != nil {
		priority := domain.TicketPriority(*req.Priority)
		input.Priority = &priority
	}
	if req.IsActive != nil {
		input.IsActive = *req.IsActive
	}
	return input, nil
}
