package monitor

import (
	"context"
	"log"
	"math"
	"time"

	"SolanaTradeBot/internal/models"
)

// PriceSource is the slice of the market-data adapter the monitor needs.
type PriceSource interface {
	GetCurrentPrice(ctx context.Context, symbol string) (float64, error)
}

// Executor is invoked exactly once, when the entry price is matched.
type Executor interface {
	Execute(ctx context.Context, intent models.TradeIntent) (*models.TradeExecution, error)
}

// Session is the single-owner polling state machine that waits for the
// market to reach the target entry price. It starts WAITING and ends in
// exactly one of MATCHED, EXPIRED or FAILED. A fetch failure is absorbed
// by the next tick; reaching the deadline is the only automatic
// termination besides a match. There is no external cancel: the owner
// simply stops ticking.
type Session struct {
	intent    models.TradeIntent
	tolerance float64
	startedAt time.Time
	deadline  time.Time

	source   PriceSource
	executor Executor

	status    string
	execution *models.TradeExecution
	err       error
}

// NewSession starts a monitoring session for the intent's entry price.
// The window bounds how long the session may wait; tolerance is the
// absolute slippage band around the target.
func NewSession(intent models.TradeIntent, source PriceSource, executor Executor, tolerance float64, window time.Duration) *Session {
	now := time.Now()
	return &Session{
		intent:    intent,
		tolerance: tolerance,
		startedAt: now,
		deadline:  now.Add(window),
		source:    source,
		executor:  executor,
		status:    models.SessionStatusWaiting,
	}
}

// Tick advances the state machine one step and returns the new status.
// Calling Tick on a terminal session is a no-op.
func (s *Session) Tick(ctx context.Context) string {
	if s.status != models.SessionStatusWaiting {
		return s.status
	}

	if !time.Now().Before(s.deadline) {
		s.status = models.SessionStatusExpired
		log.Printf("Monitoring ended for %s: entry price %.4f not matched within window",
			s.intent.Symbol, s.intent.EntryPrice)
		return s.status
	}

	currentPrice, err := s.source.GetCurrentPrice(ctx, s.intent.Symbol)
	if err != nil {
		// Absorbed: the next tick fetches again.
		log.Printf("Failed to fetch market price for %s: %v", s.intent.Symbol, err)
		return s.status
	}

	log.Printf("Monitoring %s: current=%.4f target=%.4f", s.intent.Symbol, currentPrice, s.intent.EntryPrice)

	if math.Abs(currentPrice-s.intent.EntryPrice) > s.tolerance {
		return s.status
	}

	log.Printf("Entry price matched for %s at %.4f, executing trade", s.intent.Symbol, currentPrice)

	execution, err := s.executor.Execute(ctx, s.intent)
	if err != nil {
		s.status = models.SessionStatusFailed
		s.err = err
		log.Printf("Trade execution failed for %s: %v", s.intent.Symbol, err)
		return s.status
	}

	s.status = models.SessionStatusMatched
	s.execution = execution
	return s.status
}

// Run ticks the session on the given interval until it reaches a terminal
// status or the context ends, and returns the final status.
func (s *Session) Run(ctx context.Context, interval time.Duration) string {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if status := s.Tick(ctx); status != models.SessionStatusWaiting {
			return status
		}
		select {
		case <-ctx.Done():
			return s.status
		case <-ticker.C:
		}
	}
}

// Status returns the current session status.
func (s *Session) Status() string {
	return s.status
}

// Execution returns the trade outcome after a successful match.
func (s *Session) Execution() *models.TradeExecution {
	return s.execution
}

// Err returns the execution error after a FAILED session.
func (s *Session) Err() error {
	return s.err
}

// StartedAt returns when monitoring began.
func (s *Session) StartedAt() time.Time {
	return s.startedAt
}

// Deadline returns when the session expires.
func (s *Session) Deadline() time.Time {
	return s.deadline
}
