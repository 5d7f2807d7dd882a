package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/sla-monitor/internal/service"
)

// SweepWorker reruns the escalation sweep on a fixed cadence. Every tick is
// an independent pass over current tickets and rules; a failed tick is
// logged and the next one starts clean.
type SweepWorker struct {
	slaService *service.SLAService
	interval   time.Duration
	logger     *zap.Logger
}

// NewSweepWorker constructs the worker.
func NewSweepWorker(slaService *service.SLAService, interval time.Duration, logger *zap.Logger) *SweepWorker {
	return &SweepWorker{slaService: slaService, interval: interval, logger: logger}
}

// Run blocks until the context is cancelled, sweeping once per interval.
func (w *SweepWorker) Run(ctx context.Context) {
	w.logger.Info("escalation sweep started", zap.Duration("interval", w.interval))
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("escalation sweep stopped")
			return
		case <-ticker.C:
			summary, escalated, err := w.slaService.RunEscalationSweep(ctx)
			if err != nil {
				w.logger.Error("escalation sweep failed", zap.Error(err))
				continue
			}
			w.logger.Info("escalation sweep complete",
				zap.Int("total", summary.TotalTickets),
				zap.Int("violated", summary.ViolatedCount),
				zap.Int("escalated", escalated),
				zap.Float64("compliance_rate", summary.ComplianceRate),
			)
		}
	}
}
