package models

import "time"

// TradeIntent is produced once per analysis cycle and consumed by the
// entry-price monitor. Immutable once produced.
type TradeIntent struct {
	Symbol          string
	Direction       string // "BUY" for this bot; short entries are not traded
	EntryPrice      float64
	StopLossPrice   float64
	TakeProfitPrice float64
	Summary         AggregateSignal
	CreatedAt       time.Time
}

const (
	SessionStatusWaiting = "waiting"
	SessionStatusMatched = "matched"
	SessionStatusExpired = "expired"
	SessionStatusFailed  = "failed"
)

// OrderFill holds the realized result of the triggering market order.
// Owned by the execution controller for the lifetime of one trade cycle.
type OrderFill struct {
	Symbol           string
	OrderID          int64
	ExecutedQuantity float64
	AveragePrice     float64
	QuoteSpent       float64

	// RawExecutedQty is the venue's own quantity string, reused verbatim
	// when sizing the bracket orders so no precision is lost.
	RawExecutedQty string

	FilledAt time.Time
}

// BracketOrders reports the protective orders placed against a fill.
// A zero order id with a non-nil error means that leg failed to place,
// leaving the position unprotected on that side.
type BracketOrders struct {
	TakeProfitOrderID int64
	TakeProfitPrice   float64
	TakeProfitErr     error

	StopLossOrderID    int64
	StopTriggerPrice   float64
	StopLimitPrice     float64
	StopLossErr        error

	Quantity float64
}

// Unprotected reports whether at least one protective leg failed to place
// while the entry order filled.
func (b BracketOrders) Unprotected() bool {
	return b.TakeProfitErr != nil || b.StopLossErr != nil
}

// TradeExecution is the full outcome of one matched trade cycle.
type TradeExecution struct {
	Fill    OrderFill
	Bracket BracketOrders
}
