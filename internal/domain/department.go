package domain

import "time"

// Department represents a high-level organizational unit. SLA rules may be
// scoped to a department, so rule writes validate the reference.
type Department struct {
	ID          string
	Name        string
	Description string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
