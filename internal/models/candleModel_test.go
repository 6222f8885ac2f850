package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bar(t time.Time, open, high, low, close, volume float64) Candle {
	return Candle{OpenTime: t, Open: open, High: high, Low: low, Close: close, Volume: volume}
}

func TestNewCandleSeries_DropsInvalidBars(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	series := NewCandleSeries([]Candle{
		bar(base, 100, 101, 99, 100.5, 10),
		// high below close
		bar(base.Add(time.Hour), 100.5, 100, 99, 100.8, 10),
		// negative volume
		bar(base.Add(2*time.Hour), 100.8, 102, 100, 101, -1),
		bar(base.Add(3*time.Hour), 101, 102, 100.5, 101.5, 12),
	})

	require.Equal(t, 2, series.Len())
	assert.Equal(t, 100.5, series.Closes()[0])
	assert.Equal(t, 101.5, series.LastClose())
}

func TestNewCandleSeries_DropsOutOfOrderBars(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	series := NewCandleSeries([]Candle{
		bar(base, 100, 101, 99, 100, 10),
		// duplicate timestamp
		bar(base, 100, 101, 99, 100.2, 10),
		// earlier than predecessor
		bar(base.Add(-time.Hour), 100, 101, 99, 100.1, 10),
		bar(base.Add(time.Hour), 100, 101, 99, 100.3, 10),
	})

	require.Equal(t, 2, series.Len())
	candles := series.Candles()
	assert.True(t, candles[1].OpenTime.After(candles[0].OpenTime))
}

func TestCandleSeries_Views(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	var raw []Candle
	for i := 0; i < 5; i++ {
		close := 100 + float64(i)
		raw = append(raw, bar(base.Add(time.Duration(i)*time.Hour), close-0.5, close+1, close-1, close, float64(10*i)))
	}
	series := NewCandleSeries(raw)

	assert.Equal(t, []float64{100, 101, 102, 103, 104}, series.Closes())
	assert.Equal(t, []float64{0, 10, 20, 30, 40}, series.Volumes())

	last2 := series.LastN(2)
	require.Equal(t, 2, last2.Len())
	assert.Equal(t, []float64{103, 104}, last2.Closes())

	// LastN beyond the length returns the series itself.
	assert.Equal(t, 5, series.LastN(10).Len())
}

func TestCandleSeries_CandlesReturnsCopy(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	series := NewCandleSeries([]Candle{bar(base, 100, 101, 99, 100, 10)})

	candles := series.Candles()
	candles[0].Close = 999

	assert.Equal(t, 100.0, series.LastClose())
}
