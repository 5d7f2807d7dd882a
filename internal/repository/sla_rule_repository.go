package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/sla-monitor/internal/domain"
)

// SLARuleRepository manages SLA rule persistence.
type SLARuleRepository interface {
	Create(ctx context.Context, rule *domain.SLARule) error
	Update(ctx context.Context, rule *domain.SLARule) error
	GetByID(ctx context.Context, id string) (*domain.SLARule, error)
	ListActive(ctx context.Context) ([]domain.SLARule, error)
	ListAll(ctx context.Context) ([]domain.SLARule, error)
}

type slaRuleRepository struct {
	pool *pgxpool.Pool
}

// NewSLARuleRepository builds the repository.
func NewSLARuleRepository(pool *pgxpool.Pool) SLARuleRepository {
	return &slaRuleRepository{pool: pool}
}

func (r *slaRuleRepository) Create(ctx context.Context, rule *domain.SLARule) error {
	const query = `
        INSERT INTO sla_rules (department_id, category, priority, time_hours, is_active)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		rule.DepartmentID,
		rule.Category,
		rule.Priority,
		rule.TimeHours,
		rule.IsActive,
	).Scan(&rule.ID, &rule.CreatedAt, &rule.UpdatedAt)
}

func (r *slaRuleRepository) Update(ctx context.Context, rule *domain.SLARule) error {
	const query = `
        UPDATE sla_rules
        SET department_id=$1, category=$2, priority=$3, time_hours=$4, is_active=$5, updated_at=NOW()
        WHERE id=$6`
	cmd, err := r.pool.Exec(ctx, query,
		rule.DepartmentID,
		rule.Category,
		rule.Priority,
		rule.TimeHours,
		rule.IsActive,
		rule.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *slaRuleRepository) GetByID(ctx context.Context, id string) (*domain.SLARule, error) {
	const query = `
        SELECT id, department_id, category, priority, time_hours, is_active, created_at, updated_at
        FROM sla_rules WHERE id=$1`
	var rule domain.SLARule
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&rule.ID,
		&rule.DepartmentID,
		&rule.Category,
		&rule.Priority,
		&rule.TimeHours,
		&rule.IsActive,
		&rule.CreatedAt,
		&rule.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rule, nil
}

// ListActive returns the rule set the engine evaluates against. Ordered by
// ID so rule-tie resolution sees a stable input.
func (r *slaRuleRepository) ListActive(ctx context.Context) ([]domain.SLARule, error) {
	const query = `
        SELECT id, department_id, category, priority, time_hours, is_active, created_at, updated_at
        FROM sla_rules WHERE is_active=TRUE ORDER BY id ASC`
	return r.queryRules(ctx, query)
}

func (r *slaRuleRepository) ListAll(ctx context.Context) ([]domain.SLARule, error) {
	const query = `
        SELECT id, department_id, category, priority, time_hours, is_active, created_at, updated_at
        FROM sla_rules ORDER BY created_at ASC`
	return r.queryRules(ctx, query)
}

func (r *slaRuleRepository) queryRules(ctx context.Context, query string) ([]domain.SLARule, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rules []domain.SLARule
	for rows.Next() {
		var rule domain.SLARule
		if err := rows.Scan(
			&rule.ID,
			&rule.DepartmentID,
			&rule.Category,
			&rule.Priority,
			&rule.TimeHours,
			&rule.IsActive,
			&rule.CreatedAt,
			&rule.UpdatedAt,
		); err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, rows.Err()
}
