package binance

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"SolanaTradeBot/config"
	"SolanaTradeBot/internal/models"

	binance "github.com/adshao/go-binance/v2"
	"github.com/adshao/go-binance/v2/futures"
	"golang.org/x/time/rate"
)

// Client is a narrow adapter over the Binance spot and futures APIs. It
// only shapes requests and responses; retry policy belongs to callers.
type Client struct {
	spot        *binance.Client
	futures     *futures.Client
	rateLimiter *rate.Limiter
}

// NewClient builds the adapter. Missing credentials are a configuration
// failure for this adapter and are reported immediately.
func NewClient(cfg config.ExchangeConfig) (*Client, error) {
	if cfg.APIKey == "" || cfg.SecretKey == "" {
		return nil, errors.New("binance: missing API credentials")
	}

	binance.UseTestnet = cfg.UseTestnet
	futures.UseTestnet = cfg.UseTestnet

	return &Client{
		spot:        binance.NewClient(cfg.APIKey, cfg.SecretKey),
		futures:     futures.NewClient(cfg.APIKey, cfg.SecretKey),
		rateLimiter: rate.NewLimiter(rate.Limit(10), 20),
	}, nil
}

// GetCurrentPrice returns the latest traded price for the symbol.
func (c *Client) GetCurrentPrice(ctx context.Context, symbol string) (float64, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return 0, err
	}

	prices, err := c.spot.NewListPricesService().Symbol(symbol).Do(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch price for %s: %w", symbol, err)
	}
	if len(prices) == 0 {
		return 0, fmt.Errorf("no price returned for %s", symbol)
	}
	return parseFloat(prices[0].Price), nil
}

// GetCandles fetches up to limit klines for the symbol and interval.
func (c *Client) GetCandles(ctx context.Context, symbol, interval string, limit int) ([]models.Candle, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	klines, err := c.spot.NewKlinesService().
		Symbol(symbol).
		Interval(interval).
		Limit(limit).
		Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch klines for %s-%s: %w", symbol, interval, err)
	}

	candles := make([]models.Candle, 0, len(klines))
	for _, k := range klines {
		candles = append(candles, models.Candle{
			OpenTime: time.Unix(k.OpenTime/1000, 0),
			Open:     parseFloat(k.Open),
			High:     parseFloat(k.High),
			Low:      parseFloat(k.Low),
			Close:    parseFloat(k.Close),
			Volume:   parseFloat(k.Volume),
		})
	}
	return candles, nil
}

// GetOrderBook returns a depth snapshot.
func (c *Client) GetOrderBook(ctx context.Context, symbol string, limit int) (*models.OrderBook, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	depth, err := c.spot.NewDepthService().Symbol(symbol).Limit(limit).Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch order book for %s: %w", symbol, err)
	}

	book := &models.OrderBook{
		Bids: make([]models.PriceLevel, 0, len(depth.Bids)),
		Asks: make([]models.PriceLevel, 0, len(depth.Asks)),
	}
	for _, b := range depth.Bids {
		book.Bids = append(book.Bids, models.PriceLevel{Price: parseFloat(b.Price), Quantity: parseFloat(b.Quantity)})
	}
	for _, a := range depth.Asks {
		book.Asks = append(book.Asks, models.PriceLevel{Price: parseFloat(a.Price), Quantity: parseFloat(a.Quantity)})
	}
	return book, nil
}

// GetFundingRate returns the latest perpetual funding rate for the symbol.
func (c *Client) GetFundingRate(ctx context.Context, symbol string) (*models.FundingRate, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	indexes, err := c.futures.NewPremiumIndexService().Symbol(symbol).Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch funding rate for %s: %w", symbol, err)
	}
	if len(indexes) == 0 {
		return nil, fmt.Errorf("no funding rate returned for %s", symbol)
	}

	idx := indexes[0]
	return &models.FundingRate{
		Symbol:      idx.Symbol,
		Rate:        parseFloat(idx.LastFundingRate),
		MarkPrice:   parseFloat(idx.MarkPrice),
		FundingTime: time.Unix(idx.NextFundingTime/1000, 0),
	}, nil
}

// GetAccountBalances returns the non-zero balances of the spot account.
func (c *Client) GetAccountBalances(ctx context.Context) ([]models.Balance, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	account, err := c.spot.NewGetAccountService().Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch account balances: %w", err)
	}

	var balances []models.Balance
	for _, b := range account.Balances {
		free := parseFloat(b.Free)
		locked := parseFloat(b.Locked)
		if free == 0 && locked == 0 {
			continue
		}
		balances = append(balances, models.Balance{Asset: b.Asset, Free: free, Locked: locked})
	}
	return balances, nil
}

// GetOrderHistory returns all orders for the symbol.
func (c *Client) GetOrderHistory(ctx context.Context, symbol string) ([]models.Order, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	orders, err := c.spot.NewListOrdersService().Symbol(symbol).Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch order history for %s: %w", symbol, err)
	}

	out := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, models.Order{
			OrderID:          o.OrderID,
			Symbol:           o.Symbol,
			Side:             string(o.Side),
			Type:             string(o.Type),
			Price:            parseFloat(o.Price),
			OrigQuantity:     parseFloat(o.OrigQuantity),
			ExecutedQuantity: parseFloat(o.ExecutedQuantity),
			Status:           string(o.Status),
			Time:             time.Unix(o.Time/1000, 0),
		})
	}
	return out, nil
}

// parseFloat converts the API's decimal strings, treating garbage as zero
// the same way the kline ingestion always has.
func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
