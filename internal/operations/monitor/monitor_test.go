package monitor

import (
	"context"
	"errors"
	"testing"
	"time"

	"SolanaTradeBot/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedPrices replays a fixed price sequence, repeating the final
// entry once the script runs out.
type scriptedPrices struct {
	prices []float64
	errs   []error
	calls  int
}

func (s *scriptedPrices) GetCurrentPrice(ctx context.Context, symbol string) (float64, error) {
	i := s.calls
	if i >= len(s.prices) {
		i = len(s.prices) - 1
	}
	s.calls++
	if s.errs != nil && s.errs[i] != nil {
		return 0, s.errs[i]
	}
	return s.prices[i], nil
}

type recordingExecutor struct {
	calls  int
	err    error
	result *models.TradeExecution
}

func (e *recordingExecutor) Execute(ctx context.Context, intent models.TradeIntent) (*models.TradeExecution, error) {
	e.calls++
	if e.err != nil {
		return nil, e.err
	}
	return e.result, nil
}

func buyIntent(entry float64) models.TradeIntent {
	return models.TradeIntent{
		Symbol:     "SOLUSDT",
		Direction:  models.SignalBuy,
		EntryPrice: entry,
		CreatedAt:  time.Now(),
	}
}

func TestSession_MatchesWithinToleranceBand(t *testing.T) {
	source := &scriptedPrices{prices: []float64{98, 99.8, 100.05}}
	executor := &recordingExecutor{result: &models.TradeExecution{}}

	session := NewSession(buyIntent(100), source, executor, 0.10, time.Hour)
	ctx := context.Background()

	// 98 and 99.8 are outside the $0.10 band around 100.
	assert.Equal(t, models.SessionStatusWaiting, session.Tick(ctx))
	assert.Equal(t, models.SessionStatusWaiting, session.Tick(ctx))
	assert.Equal(t, models.SessionStatusMatched, session.Tick(ctx))

	assert.Equal(t, 1, executor.calls)
	require.NotNil(t, session.Execution())
}

func TestSession_TickAfterTerminalIsNoOp(t *testing.T) {
	source := &scriptedPrices{prices: []float64{100}}
	executor := &recordingExecutor{result: &models.TradeExecution{}}

	session := NewSession(buyIntent(100), source, executor, 0.10, time.Hour)
	ctx := context.Background()

	require.Equal(t, models.SessionStatusMatched, session.Tick(ctx))
	assert.Equal(t, models.SessionStatusMatched, session.Tick(ctx))
	assert.Equal(t, 1, executor.calls, "executor must run exactly once")
	assert.Equal(t, 1, source.calls, "terminal sessions stop fetching")
}

func TestSession_ExpiresAtDeadline(t *testing.T) {
	source := &scriptedPrices{prices: []float64{100}}
	executor := &recordingExecutor{result: &models.TradeExecution{}}

	session := NewSession(buyIntent(100), source, executor, 0.10, 0)

	assert.Equal(t, models.SessionStatusExpired, session.Tick(context.Background()))
	assert.Equal(t, 0, executor.calls, "expiry must not execute")
	assert.Equal(t, 0, source.calls)
}

func TestSession_AbsorbsFetchFailures(t *testing.T) {
	source := &scriptedPrices{
		prices: []float64{0, 100},
		errs:   []error{errors.New("exchange unavailable"), nil},
	}
	executor := &recordingExecutor{result: &models.TradeExecution{}}

	session := NewSession(buyIntent(100), source, executor, 0.10, time.Hour)
	ctx := context.Background()

	assert.Equal(t, models.SessionStatusWaiting, session.Tick(ctx))
	assert.Equal(t, models.SessionStatusMatched, session.Tick(ctx))
}

func TestSession_ExecutionErrorFailsSession(t *testing.T) {
	execErr := errors.New("insufficient balance")
	source := &scriptedPrices{prices: []float64{100}}
	executor := &recordingExecutor{err: execErr}

	session := NewSession(buyIntent(100), source, executor, 0.10, time.Hour)

	assert.Equal(t, models.SessionStatusFailed, session.Tick(context.Background()))
	assert.ErrorIs(t, session.Err(), execErr)
	assert.Nil(t, session.Execution())

	// A failed session stays failed.
	assert.Equal(t, models.SessionStatusFailed, session.Tick(context.Background()))
	assert.Equal(t, 1, executor.calls)
}

func TestSession_RunUntilMatched(t *testing.T) {
	source := &scriptedPrices{prices: []float64{99, 99.95}}
	executor := &recordingExecutor{result: &models.TradeExecution{}}

	session := NewSession(buyIntent(100), source, executor, 0.10, time.Hour)

	status := session.Run(context.Background(), time.Millisecond)

	assert.Equal(t, models.SessionStatusMatched, status)
	assert.Equal(t, 1, executor.calls)
}

func TestSession_RunStopsOnContextCancel(t *testing.T) {
	source := &scriptedPrices{prices: []float64{50}} // never in band
	executor := &recordingExecutor{result: &models.TradeExecution{}}

	session := NewSession(buyIntent(100), source, executor, 0.10, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	status := session.Run(ctx, time.Millisecond)

	assert.Equal(t, models.SessionStatusWaiting, status)
	assert.Equal(t, 0, executor.calls)
}
