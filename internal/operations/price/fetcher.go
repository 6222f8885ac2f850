package price

import (
	"context"
	"log"
	"math"
	"time"

	"SolanaTradeBot/internal/models"
)

// CandleSource is the slice of the market-data adapter the fetcher needs.
type CandleSource interface {
	GetCandles(ctx context.Context, symbol, interval string, limit int) ([]models.Candle, error)
}

// Fetcher retrieves candle history and normalizes it into a validated
// series. Transient fetch failures are retried here with bounded
// exponential backoff; the adapter itself stays policy-free.
type Fetcher struct {
	source     CandleSource
	maxRetries int
	baseDelay  time.Duration
}

func NewFetcher(source CandleSource) *Fetcher {
	return &Fetcher{
		source:     source,
		maxRetries: 3,
		baseDelay:  100 * time.Millisecond,
	}
}

// FetchSeries fetches up to limit candles and returns them as an
// immutable validated series.
func (f *Fetcher) FetchSeries(ctx context.Context, symbol, interval string, limit int) (*models.CandleSeries, error) {
	var candles []models.Candle
	var err error

	for attempt := 0; attempt <= f.maxRetries; attempt++ {
		candles, err = f.source.GetCandles(ctx, symbol, interval, limit)
		if err == nil {
			break
		}
		if attempt == f.maxRetries {
			return nil, err
		}

		waitTime := time.Duration(math.Pow(2, float64(attempt))) * f.baseDelay
		log.Printf("Candle fetch for %s-%s failed (attempt %d): %v, retrying in %s",
			symbol, interval, attempt+1, err, waitTime)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(waitTime):
		}
	}

	series := models.NewCandleSeries(candles)
	if dropped := len(candles) - series.Len(); dropped > 0 {
		log.Printf("Dropped %d invalid candles for %s-%s", dropped, symbol, interval)
	}
	return series, nil
}
