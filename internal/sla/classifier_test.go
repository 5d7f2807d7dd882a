package sla

import (
	"testing"
	"time"

	"github.com/spec-kit/sla-monitor/internal/domain"
)

func TestClassifyBoundaries(t *testing.T) {
	budget := 10 * time.Hour
	cases := []struct {
		name       string
		percentage float64
		want       Bucket
	}{
		{"just below warning", 59.999, BucketNormal},
		{"warning threshold", 60.0, BucketWarning},
		{"just below critical", 79.999, BucketWarning},
		{"critical threshold", 80.0, BucketCritical},
		{"just below violated", 99.999, BucketCritical},
		{"violated threshold", 100.0, BucketViolated},
		{"far over budget", 250.0, BucketViolated},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			remaining := budget - time.Duration(tc.percentage/100*float64(budget))
			bucket, _ := Classify(remaining, tc.percentage, domain.TicketStatusInProgress, false)
			if bucket != tc.want {
				t.Fatalf("percentage %f: expected %s, got %s", tc.percentage, tc.want, bucket)
			}
		})
	}
}

func TestClassifyEscalationEligibility(t *testing.T) {
	cases := []struct {
		name       string
		percentage float64
		remaining  time.Duration
		status     domain.TicketStatus
		onHold     bool
		want       bool
	}{
		{"warning not eligible", 70, 3 * time.Hour, domain.TicketStatusInProgress, false, false},
		{"critical eligible", 85, time.Hour, domain.TicketStatusInProgress, false, true},
		{"violated eligible", 120, -time.Hour, domain.TicketStatusOpen, false, true},
		{"resolved shielded", 120, -time.Hour, domain.TicketStatusResolved, false, false},
		{"closed shielded", 120, -time.Hour, domain.TicketStatusClosed, false, false},
		{"held shielded", 120, -time.Hour, domain.TicketStatusOnHold, true, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, eligible := Classify(tc.remaining, tc.percentage, tc.status, tc.onHold)
			if eligible != tc.want {
				t.Fatalf("expected eligible=%v, got %v", tc.want, eligible)
			}
		})
	}
}

func TestClassifyZeroRemainingIsViolated(t *testing.T) {
	bucket, _ := Classify(0, 100, domain.TicketStatusInProgress, false)
	if bucket != BucketViolated {
		t.Fatalf("expected VIOLATED at zero remaining, got %s", bucket)
	}
}
