package sla

import (
	"time"

	"github.com/spec-kit/sla-monitor/internal/domain"
)

// Bucket is the discrete urgency classification of a deadline result.
type Bucket string

const (
	BucketNormal   Bucket = "NORMAL"
	BucketWarning  Bucket = "WARNING"
	BucketCritical Bucket = "CRITICAL"
	BucketViolated Bucket = "VIOLATED"
)

// Classification thresholds as percentage of budget consumed. Fixed policy
// constants for now; a rule-level override would replace these lookups.
const (
	WarningThresholdPercent  = 60.0
	CriticalThresholdPercent = 80.0
	ViolatedThresholdPercent = 100.0
)

// Classify maps consumed percentage and remaining time to a bucket and
// decides escalation eligibility. Resolved, closed and currently-held
// tickets are shielded from escalation; held tickets still classify by
// consumption so the dashboard stays truthful while they wait.
func Classify(remaining time.Duration, percentage float64, status domain.TicketStatus, onHold bool) (Bucket, bool) {
	var bucket Bucket
	switch {
	case percentage >= ViolatedThresholdPercent || remaining <= 0:
		bucket = BucketViolated
	case percentage >= CriticalThresholdPercent:
		bucket = BucketCritical
	case percentage >= WarningThresholdPercent:
		bucket = BucketWarning
	default:
		bucket = BucketNormal
	}

	eligible := (bucket == BucketCritical || bucket == BucketViolated) &&
		!status.IsTerminal() && !onHold
	return bucket, eligible
}
