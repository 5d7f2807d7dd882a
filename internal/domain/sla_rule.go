package domain

import "time"

// SLARule bounds how long a matching ticket may stay active.
// A rule is scoped by whichever of department, category and priority are
// non-nil; a rule with none set is the global fallback.
type SLARule struct {
	ID           string
	DepartmentID *string
	Category     *string
	Priority     *TicketPriority
	TimeHours    float64
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
