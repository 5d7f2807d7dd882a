package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/sla-monitor/internal/domain"
	"github.com/spec-kit/sla-monitor/internal/events"
	"github.com/spec-kit/sla-monitor/internal/observability"
	"github.com/spec-kit/sla-monitor/internal/persistence"
	"github.com/spec-kit/sla-monitor/internal/repository"
	"github.com/spec-kit/sla-monitor/internal/sla"
)

const summaryCacheKey = "sla:summary"

// SLAService runs the deadline engine over repository snapshots. The engine
// itself is pure; this layer owns the clock, the summary cache and event
// publication.
type SLAService struct {
	tickets    repository.TicketRepository
	rules      repository.SLARuleRepository
	engine     *sla.Engine
	cache      SummaryCache
	dispatcher events.Dispatcher
	logger     *zap.Logger
	metrics    *observability.Metrics
	cacheTTL   time.Duration
	clock      func() time.Time
}

// SLADependencies bundles collaborators for the SLA service.
type SLADependencies struct {
	TicketRepo repository.TicketRepository
	RuleRepo   repository.SLARuleRepository
	Engine     *sla.Engine
	Cache      SummaryCache
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
	Metrics    *observability.Metrics
	CacheTTL   time.Duration
	// Clock supplies the evaluation instant; defaults to time.Now.
	Clock func() time.Time
}

// NewSLAService constructs the service.
func NewSLAService(deps SLADependencies) *SLAService {
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SLAService{
		tickets:    deps.TicketRepo,
		rules:      deps.RuleRepo,
		engine:     deps.Engine,
		cache:      deps.Cache,
		dispatcher: deps.Dispatcher,
		logger:     logger,
		metrics:    deps.Metrics,
		cacheTTL:   deps.CacheTTL,
		clock:      clock,
	}
}

// Overview returns the dashboard summary, served from cache when a fresh
// snapshot exists so each ~30s refresh does not hit the database.
func (s *SLAService) Overview(ctx context.Context) (sla.Summary, error) {
	if s.cache != nil {
		if summary, ok := s.cache.GetSummary(ctx); ok {
			return summary, nil
		}
	}

	summary, _, err := s.evaluatePopulation(ctx)
	if err != nil {
		return sla.Summary{}, err
	}
	if s.cache != nil {
		s.cache.SetSummary(ctx, summary, s.cacheTTL)
	}
	return summary, nil
}

// EscalationQueue returns escalation-eligible tickets ordered by urgency.
func (s *SLAService) EscalationQueue(ctx context.Context) ([]sla.DeadlineResult, error) {
	tickets, rules, err := s.loadSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	return s.engine.EscalationQueue(tickets, rules, s.clock()), nil
}

// TicketDeadline evaluates a single ticket on demand.
func (s *SLAService) TicketDeadline(ctx context.Context, ticketID string) (sla.DeadlineResult, error) {
	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		return sla.DeadlineResult{}, err
	}
	rules, err := s.rules.ListActive(ctx)
	if err != nil {
		return sla.DeadlineResult{}, err
	}

	result, err := s.engine.Evaluate(ticket, rules, s.clock())
	if err != nil {
		return sla.DeadlineResult{}, err
	}
	if result.RuleConflict {
		s.logger.Warn("ambiguous sla rule tie",
			zap.String("ticket_id", ticket.ID),
			zap.String("rule_id", result.RuleID),
		)
	}
	return result, nil
}

// RunEscalationSweep evaluates the active population once, refreshes the
// cached summary and publishes events for every escalation-eligible ticket.
// Each sweep is a fresh stateless pass over current data.
func (s *SLAService) RunEscalationSweep(ctx context.Context) (sla.Summary, int, error) {
	summary, snapshot, err := s.evaluatePopulation(ctx)
	if err != nil {
		return sla.Summary{}, 0, err
	}
	if s.cache != nil {
		s.cache.SetSummary(ctx, summary, s.cacheTTL)
	}

	queue := s.engine.EscalationQueue(snapshot.tickets, snapshot.rules, snapshot.asOf)
	for _, result := range queue {
		eventType := events.EventSLAAtRisk
		if result.Bucket == sla.BucketViolated {
			eventType = events.EventSLABreached
		}
		s.publishEvent(ctx, events.Event{
			Type:     eventType,
			TicketID: result.TicketID,
			Payload:  deadlinePayload(result),
		})
		s.publishEvent(ctx, events.Event{
			Type:     events.EventEscalationRaised,
			TicketID: result.TicketID,
			Payload:  deadlinePayload(result),
		})
		if result.RuleConflict {
			s.logger.Warn("ambiguous sla rule tie",
				zap.String("ticket_id", result.TicketID),
				zap.String("rule_id", result.RuleID),
			)
			s.publishEvent(ctx, events.Event{
				Type:     events.EventRuleConflictFound,
				TicketID: result.TicketID,
				Payload:  events.RuleConflictPayload{TicketID: result.TicketID, RuleID: result.RuleID},
			})
		}
	}
	return summary, len(queue), nil
}

type populationSnapshot struct {
	tickets []domain.Ticket
	rules   []domain.SLARule
	asOf    time.Time
}

func (s *SLAService) evaluatePopulation(ctx context.Context) (sla.Summary, populationSnapshot, error) {
	tickets, rules, err := s.loadSnapshot(ctx)
	if err != nil {
		return sla.Summary{}, populationSnapshot{}, err
	}
	asOf := s.clock()

	start := time.Now()
	summary := s.engine.Summarize(tickets, rules, asOf)
	s.metrics.RecordSummary(summary, time.Since(start))

	if summary.ErrorCount > 0 {
		s.logger.Warn("tickets failed sla evaluation", zap.Int("error_count", summary.ErrorCount))
	}
	return summary, populationSnapshot{tickets: tickets, rules: rules, asOf: asOf}, nil
}

func (s *SLAService) loadSnapshot(ctx context.Context) ([]domain.Ticket, []domain.SLARule, error) {
	tickets, err := s.tickets.ListActive(ctx)
	if err != nil {
		return nil, nil, err
	}
	rules, err := s.rules.ListActive(ctx)
	if err != nil {
		return nil, nil, err
	}
	return tickets, rules, nil
}

func (s *SLAService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = s.clock()
	}
	_ = s.dispatcher.Publish(ctx, event)
}

func deadlinePayload(result sla.DeadlineResult) events.DeadlinePayload {
	return events.DeadlinePayload{
		RuleID:            result.RuleID,
		Bucket:            result.Bucket,
		Priority:          result.Priority,
		RemainingMs:       result.Remaining.Milliseconds(),
		PercentageUsed:    result.Percentage,
		UsedDefaultBudget: result.UsedDefaultBudget,
	}
}

// SummaryCache stores the latest aggregated summary between refresh ticks.
type SummaryCache interface {
	GetSummary(ctx context.Context) (sla.Summary, bool)
	SetSummary(ctx context.Context, summary sla.Summary, ttl time.Duration)
}

type redisSummaryCache struct {
	redis  *persistence.Redis
	logger *zap.Logger
}

// NewRedisSummaryCache caches summaries in Redis. Cache failures degrade to
// recomputation, never to an error surfaced to the dashboard.
func NewRedisSummaryCache(r *persistence.Redis, logger *zap.Logger) SummaryCache {
	return &redisSummaryCache{redis: r, logger: logger}
}

func (c *redisSummaryCache) GetSummary(ctx context.Context) (sla.Summary, bool) {
	if c.redis == nil || c.redis.Client == nil {
		return sla.Summary{}, false
	}
	raw, err := c.redis.Client.Get(ctx, summaryCacheKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("summary cache read failed", zap.Error(err))
		}
		return sla.Summary{}, false
	}
	var summary sla.Summary
	if err := json.Unmarshal(raw, &summary); err != nil {
		c.logger.Warn("summary cache decode failed", zap.Error(err))
		return sla.Summary{}, false
	}
	return summary, true
}

func (c *redisSummaryCache) SetSummary(ctx context.Context, summary sla.Summary, ttl time.Duration) {
	if c.redis == nil || c.redis.Client == nil || ttl <= 0 {
		return
	}
	raw, err := json.Marshal(summary)
	if err != nil {
		return
	}
	if err := c.redis.Client.Set(ctx, summaryCacheKey, raw, ttl).Err(); err != nil {
		c.logger.Warn("summary cache write failed", zap.Error(err))
	}
}
