package repository

import (
	"context"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/sla-monitor/internal/domain"
)

// TicketFilter narrows the ticket population loaded for evaluation.
type TicketFilter struct {
	DepartmentID *string
	Category     *string
	Statuses     []domain.TicketStatus
	Priorities   []domain.TicketPriority
	CreatedFrom  *time.Time
	CreatedTo    *time.Time
	Limit        int
	Offset       int
}

// TicketRepository loads ticket snapshots for the SLA engine. Tickets are
// returned with their status event trail attached so pause accounting never
// needs a second round trip.
type TicketRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Ticket, error)
	ListActive(ctx context.Context) ([]domain.Ticket, error)
	ListWithFilter(ctx context.Context, filter TicketFilter) ([]domain.Ticket, error)
}

type ticketRepository struct {
	pool *pgxpool.Pool
}

// NewTicketRepository instantiates repository.
func NewTicketRepository(pool *pgxpool.Pool) TicketRepository {
	return &ticketRepository{pool: pool}
}

const ticketColumns = `id, external_key, requester_user_id, department_id, category, title, description, status, priority, created_at, updated_at, resolved_at`

func (r *ticketRepository) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	const query = `
        SELECT ` + ticketColumns + `
        FROM tickets WHERE id=$1`
	var ticket domain.Ticket
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&ticket.ID,
		&ticket.ExternalKey,
		&ticket.RequesterID,
		&ticket.DepartmentID,
		&ticket.Category,
		&ticket.Title,
		&ticket.Description,
		&ticket.Status,
		&ticket.Priority,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
		&ticket.ResolvedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := r.attachEvents(ctx, []*domain.Ticket{&ticket}); err != nil {
		return nil, err
	}
	return &ticket, nil
}

// ListActive returns every ticket still in the active workflow, the
// population the dashboard and escalation sweep evaluate each tick.
func (r *ticketRepository) ListActive(ctx context.Context) ([]domain.Ticket, error) {
	return r.ListWithFilter(ctx, TicketFilter{
		Statuses: []domain.TicketStatus{
			domain.TicketStatusOpen,
			domain.TicketStatusInProgress,
			domain.TicketStatusOnHold,
		},
	})
}

func (r *ticketRepository) ListWithFilter(ctx context.Context, filter TicketFilter) ([]domain.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets WHERE 1=1`
	args := []any{}
	idx := 1

	appendArg := func(clause string, value any) {
		query += clause + placeholder(idx)
		args = append(args, value)
		idx++
	}

	if filter.DepartmentID != nil {
		appendArg(" AND department_id=", *filter.DepartmentID)
	}
	if filter.Category != nil {
		appendArg(" AND category=", *filter.Category)
	}
	if len(filter.Statuses) > 0 {
		appendArg(" AND status=ANY(", statusStrings(filter.Statuses))
		query += ")"
	}
	if len(filter.Priorities) > 0 {
		appendArg(" AND priority=ANY(", priorityStrings(filter.Priorities))
		query += ")"
	}
	if filter.CreatedFrom != nil {
		appendArg(" AND created_at >= ", *filter.CreatedFrom)
	}
	if filter.CreatedTo != nil {
		appendArg(" AND created_at <= ", *filter.CreatedTo)
	}

	query += " ORDER BY created_at ASC"
	if filter.Limit > 0 {
		appendArg(" LIMIT ", filter.Limit)
	}
	if filter.Offset > 0 {
		appendArg(" OFFSET ", filter.Offset)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tickets []domain.Ticket
	for rows.Next() {
		var ticket domain.Ticket
		if err := rows.Scan(
			&ticket.ID,
			&ticket.ExternalKey,
			&ticket.RequesterID,
			&ticket.DepartmentID,
			&ticket.Category,
			&ticket.Title,
			&ticket.Description,
			&ticket.Status,
			&ticket.Priority,
			&ticket.CreatedAt,
			&ticket.UpdatedAt,
			&ticket.ResolvedAt,
		); err != nil {
			return nil, err
		}
		tickets = append(tickets, ticket)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	refs := make([]*domain.Ticket, len(tickets))
	for i := range tickets {
		refs[i] = &tickets[i]
	}
	if err := r.attachEvents(ctx, refs); err != nil {
		return nil, err
	}
	return tickets, nil
}

func (r *ticketRepository) attachEvents(ctx context.Context, tickets []*domain.Ticket) error {
	if len(tickets) == 0 {
		return nil
	}
	ids := make([]string, len(tickets))
	byID := make(map[string]*domain.Ticket, len(tickets))
	for i, ticket := range tickets {
		ids[i] = ticket.ID
		byID[ticket.ID] = ticket
	}

	const query = `
        SELECT id, ticket_id, old_status, new_status, created_at
        FROM ticket_status_events
        WHERE ticket_id=ANY($1)
        ORDER BY created_at ASC`
	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var ev domain.StatusEvent
		if err := rows.Scan(&ev.ID, &ev.TicketID, &ev.OldStatus, &ev.NewStatus, &ev.CreatedAt); err != nil {
			return err
		}
		if ticket, ok := byID[ev.TicketID]; ok {
			ticket.StatusEvents = append(ticket.StatusEvents, ev)
		}
	}
	return rows.Err()
}

func placeholder(idx int) string {
	return "$" + strconv.Itoa(idx)
}

func statusStrings(statuses []domain.TicketStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

func priorityStrings(priorities []domain.TicketPriority) []string {
	out := make([]string, len(priorities))
	for i, p := range priorities {
		out[i] = string(p)
	}
	return out
}
