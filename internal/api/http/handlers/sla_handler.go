package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/sla-monitor/internal/api/dto"
	"github.com/spec-kit/sla-monitor/internal/service"
)

// SLAHandler exposes the deadline engine over HTTP for dashboards and
// escalation views.
type SLAHandler struct {
	slaService *service.SLAService
}

// NewSLAHandler returns a new handler instance.
func NewSLAHandler(slaService *service.SLAService) *SLAHandler {
	return &SLAHandler{slaService: slaService}
}

// Summary serves the aggregated dashboard counts.
func (h *SLAHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.slaService.Overview(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.FromSummary(summary))
}

// EscalationQueue serves the ordered escalation list.
func (h *SLAHandler) EscalationQueue(c *fiber.Ctx) error {
	queue, err := h.slaService.EscalationQueue(c.UserContext())
	if err != nil {
		return err
	}
	tickets := make([]dto.DeadlineResponse, 0, len(queue))
	for _, result := range queue {
		tickets = append(tickets, dto.FromDeadlineResult(result))
	}
	return c.JSON(dto.EscalationQueueResponse{Count: len(tickets), Tickets: tickets})
}

// TicketDeadline serves the evaluation for a single ticket.
func (h *SLAHandler) TicketDeadline(c *fiber.Ctx) error {
	result, err := h.slaService.TicketDeadline(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.FromDeadlineResult(result))
}
