package binance

import (
	"context"
	"fmt"
	"log"
	"time"

	"SolanaTradeBot/internal/models"

	binance "github.com/adshao/go-binance/v2"
	"github.com/shopspring/decimal"
)

// PlaceMarketOrder executes a market order sized by a quote-currency
// amount and returns the realized fill.
func (c *Client) PlaceMarketOrder(ctx context.Context, symbol, side string, quoteAmount float64) (*models.OrderFill, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	order, err := c.spot.NewCreateOrderService().
		Symbol(symbol).
		Side(binance.SideType(side)).
		Type(binance.OrderTypeMarket).
		QuoteOrderQty(formatQuote(quoteAmount)).
		Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("market %s order failed for %s: %w", side, symbol, err)
	}

	executedQty := parseFloat(order.ExecutedQuantity)
	quoteSpent := parseFloat(order.CummulativeQuoteQuantity)

	averagePrice := 0.0
	if executedQty > 0 && quoteSpent > 0 {
		averagePrice = quoteSpent / executedQty
	} else if len(order.Fills) > 0 {
		averagePrice = parseFloat(order.Fills[0].Price)
	}

	log.Printf("Market %s executed for %s: qty=%s avgPrice=%.8f quote=%.8f",
		side, symbol, order.ExecutedQuantity, averagePrice, quoteSpent)

	return &models.OrderFill{
		Symbol:           symbol,
		OrderID:          order.OrderID,
		ExecutedQuantity: executedQty,
		AveragePrice:     averagePrice,
		QuoteSpent:       quoteSpent,
		RawExecutedQty:   order.ExecutedQuantity,
		FilledAt:         time.Unix(order.TransactTime/1000, 0),
	}, nil
}

// PlaceLimitOrder places a resting limit order and returns its id.
func (c *Client) PlaceLimitOrder(ctx context.Context, symbol, side string, price float64, quantity string, timeInForce string) (int64, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return 0, err
	}

	order, err := c.spot.NewCreateOrderService().
		Symbol(symbol).
		Side(binance.SideType(side)).
		Type(binance.OrderTypeLimit).
		TimeInForce(tif(timeInForce)).
		Price(formatPrice(price)).
		Quantity(quantity).
		Do(ctx)
	if err != nil {
		return 0, fmt.Errorf("limit %s order failed for %s: %w", side, symbol, err)
	}
	return order.OrderID, nil
}

// PlaceStopLimitOrder places a stop-loss-limit order: the limit order is
// submitted once the stop price triggers.
func (c *Client) PlaceStopLimitOrder(ctx context.Context, symbol, side string, stopPrice, limitPrice float64, quantity string, timeInForce string) (int64, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return 0, err
	}

	order, err := c.spot.NewCreateOrderService().
		Symbol(symbol).
		Side(binance.SideType(side)).
		Type(binance.OrderTypeStopLossLimit).
		TimeInForce(tif(timeInForce)).
		StopPrice(formatPrice(stopPrice)).
		Price(formatPrice(limitPrice)).
		Quantity(quantity).
		Do(ctx)
	if err != nil {
		return 0, fmt.Errorf("stop-limit %s order failed for %s: %w", side, symbol, err)
	}
	return order.OrderID, nil
}

func tif(timeInForce string) binance.TimeInForceType {
	if timeInForce == "" {
		return binance.TimeInForceTypeGTC
	}
	return binance.TimeInForceType(timeInForce)
}

// formatPrice renders a price to the two decimals the venue expects for
// USDT quotes.
func formatPrice(p float64) string {
	return decimal.NewFromFloat(p).StringFixed(2)
}

func formatQuote(q float64) string {
	return decimal.NewFromFloat(q).StringFixed(2)
}
