package trade

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"SolanaTradeBot/config"
	"SolanaTradeBot/internal/models"
)

// OrderPlacer is the slice of the execution-venue adapter the controller needs.
type OrderPlacer interface {
	PlaceMarketOrder(ctx context.Context, symbol, side string, quoteAmount float64) (*models.OrderFill, error)
	PlaceLimitOrder(ctx context.Context, symbol, side string, price float64, quantity string, timeInForce string) (int64, error)
	PlaceStopLimitOrder(ctx context.Context, symbol, side string, stopPrice, limitPrice float64, quantity string, timeInForce string) (int64, error)
}

// Executor places the triggering market order and the protective bracket
// against the realized fill. It does not track the resting orders after
// placement; their lifecycle belongs to the venue.
type Executor struct {
	venue OrderPlacer

	quoteOrderQty    float64
	profitMultiplier float64
	lossMultiplier   float64
}

// stopLimitDiscount keeps the stop-limit execution price strictly below
// the trigger so the order is marketable once triggered.
const stopLimitDiscount = 0.99

func NewExecutor(venue OrderPlacer, cfg config.TradingConfig) *Executor {
	return &Executor{
		venue:            venue,
		quoteOrderQty:    cfg.QuoteOrderQty,
		profitMultiplier: cfg.ProfitMultiplier,
		lossMultiplier:   cfg.LossMultiplier,
	}
}

// Execute runs one trade cycle: market buy sized by the configured quote
// amount, then a take-profit limit sell and a stop-loss stop-limit sell
// for the full executed quantity, both good until cancelled. A failed
// entry order is returned as an error; a failed bracket leg is recorded
// on the result and reported, because it leaves the position unprotected,
// but the entry is never rolled back.
func (e *Executor) Execute(ctx context.Context, intent models.TradeIntent) (*models.TradeExecution, error) {
	fill, err := e.venue.PlaceMarketOrder(ctx, intent.Symbol, models.SignalBuy, e.quoteOrderQty)
	if err != nil {
		return nil, fmt.Errorf("entry order failed: %w", err)
	}

	quantity := fill.RawExecutedQty
	if quantity == "" {
		quantity = strconv.FormatFloat(fill.ExecutedQuantity, 'f', -1, 64)
	}

	bracket := models.BracketOrders{
		TakeProfitPrice:  fill.AveragePrice * (1 + e.profitMultiplier),
		StopTriggerPrice: fill.AveragePrice * (1 - e.lossMultiplier),
		Quantity:         fill.ExecutedQuantity,
	}
	bracket.StopLimitPrice = bracket.StopTriggerPrice * stopLimitDiscount

	bracket.TakeProfitOrderID, bracket.TakeProfitErr = e.venue.PlaceLimitOrder(
		ctx, intent.Symbol, models.SignalSell, bracket.TakeProfitPrice, quantity, "GTC")
	if bracket.TakeProfitErr != nil {
		log.Printf("Take-profit placement failed for %s: %v", intent.Symbol, bracket.TakeProfitErr)
	}

	bracket.StopLossOrderID, bracket.StopLossErr = e.venue.PlaceStopLimitOrder(
		ctx, intent.Symbol, models.SignalSell, bracket.StopTriggerPrice, bracket.StopLimitPrice, quantity, "GTC")
	if bracket.StopLossErr != nil {
		log.Printf("Stop-loss placement failed for %s: %v", intent.Symbol, bracket.StopLossErr)
	}

	if bracket.Unprotected() {
		log.Printf("WARNING: open %s position of %s is missing protective orders", intent.Symbol, quantity)
	} else {
		log.Printf("Bracket placed for %s: take-profit @ %.4f, stop-loss trigger @ %.4f",
			intent.Symbol, bracket.TakeProfitPrice, bracket.StopTriggerPrice)
	}

	return &models.TradeExecution{Fill: *fill, Bracket: bracket}, nil
}
