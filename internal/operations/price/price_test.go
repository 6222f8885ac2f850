package price

import (
	"context"
	"errors"
	"testing"
	"time"

	"SolanaTradeBot/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCandleSource struct {
	candles  []models.Candle
	failures int
	calls    int
}

func (f *fakeCandleSource) GetCandles(ctx context.Context, symbol, interval string, limit int) ([]models.Candle, error) {
	f.calls++
	if f.calls <= f.failures {
		return nil, errors.New("connection reset")
	}
	return f.candles, nil
}

func hourlyCandles(n int) []models.Candle {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	candles := make([]models.Candle, n)
	for i := range candles {
		candles[i] = models.Candle{
			OpenTime: base.Add(time.Duration(i) * time.Hour),
			Open:     100, High: 101, Low: 99, Close: 100.5, Volume: 10,
		}
	}
	return candles
}

func TestFetchSeries_RetriesTransientFailures(t *testing.T) {
	source := &fakeCandleSource{candles: hourlyCandles(5), failures: 2}
	fetcher := &Fetcher{source: source, maxRetries: 3, baseDelay: time.Millisecond}

	series, err := fetcher.FetchSeries(context.Background(), "SOLUSDT", "1h", 5)

	require.NoError(t, err)
	assert.Equal(t, 5, series.Len())
	assert.Equal(t, 3, source.calls)
}

func TestFetchSeries_GivesUpAfterMaxRetries(t *testing.T) {
	source := &fakeCandleSource{failures: 10}
	fetcher := &Fetcher{source: source, maxRetries: 2, baseDelay: time.Millisecond}

	_, err := fetcher.FetchSeries(context.Background(), "SOLUSDT", "1h", 5)

	require.Error(t, err)
	assert.Equal(t, 3, source.calls)
}

func TestFetchSeries_DropsInvalidCandles(t *testing.T) {
	candles := hourlyCandles(5)
	candles[2].Volume = -1
	source := &fakeCandleSource{candles: candles}
	fetcher := NewFetcher(source)

	series, err := fetcher.FetchSeries(context.Background(), "SOLUSDT", "1h", 5)

	require.NoError(t, err)
	assert.Equal(t, 4, series.Len())
}

func TestDisplay_RollingHistory(t *testing.T) {
	d := &Display{symbol: "SOLUSDT"}

	for i := 0; i < historySize+5; i++ {
		d.record(100 + float64(i))
	}

	history := d.History()
	require.Len(t, history, historySize)
	assert.Equal(t, 105.0, history[0].Price, "oldest samples roll off")
	assert.Equal(t, 124.0, d.Current())
}

func TestDisplay_CurrentWithoutSamples(t *testing.T) {
	d := &Display{symbol: "SOLUSDT"}
	assert.Equal(t, 0.0, d.Current())
	assert.Empty(t, d.History())
}
