package indicators

import (
	"testing"
	"time"

	"SolanaTradeBot/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seriesFromCloses builds a valid hourly candle series around the given
// closing prices.
func seriesFromCloses(closes []float64, volumes []float64) *models.CandleSeries {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	candles := make([]models.Candle, len(closes))
	for i, close := range closes {
		open := close
		if i > 0 {
			open = closes[i-1]
		}
		high := open
		if close > open {
			high = close
		}
		low := open
		if close < open {
			low = close
		}
		volume := 1000.0
		if volumes != nil {
			volume = volumes[i]
		}
		candles[i] = models.Candle{
			OpenTime: base.Add(time.Duration(i) * time.Hour),
			Open:     open,
			High:     high + 0.5,
			Low:      low - 0.5,
			Close:    close,
			Volume:   volume,
		}
	}
	return models.NewCandleSeries(candles)
}

func constantCloses(n int, value float64) []float64 {
	closes := make([]float64, n)
	for i := range closes {
		closes[i] = value
	}
	return closes
}

func TestShortSeriesReturnsNeutralPlaceholders(t *testing.T) {
	short := seriesFromCloses([]float64{100, 101, 102}, nil)

	for _, ind := range ForMode(true) {
		result := ind.Compute(short)
		assert.Equal(t, models.SignalNeutral, result.Signal, "%s should stay neutral", ind.Kind())
		if ind.Kind() == models.IndicatorMovingAverages {
			// The moving averages fall back to the last close on short
			// series, so the comparison stays defined and valid.
			continue
		}
		assert.False(t, result.Valid, "%s should be a placeholder", ind.Kind())
	}
}

func TestIndicatorsAreIdempotent(t *testing.T) {
	closes := make([]float64, 60)
	for i := range closes {
		closes[i] = 100 + 0.002*float64(i*i)
		if i%2 == 0 {
			closes[i] += 2.5
		}
	}
	series := seriesFromCloses(closes, nil)

	for _, ind := range ForMode(true) {
		first := ind.Compute(series)
		second := ind.Compute(series)
		assert.Equal(t, first, second, "%s must be a pure function of the series", ind.Kind())
	}
}

func TestMACD_TrendSignals(t *testing.T) {
	svc := NewMACDService()

	up := make([]float64, 60)
	down := make([]float64, 60)
	for i := range up {
		up[i] = 100 + 0.01*float64(i*i)
		down[i] = 200 - 0.01*float64(i*i)
	}

	bullish := svc.Compute(seriesFromCloses(up, nil))
	require.True(t, bullish.Valid)
	assert.Equal(t, models.SignalBuy, bullish.Signal)
	assert.Greater(t, bullish.Values["histogram"], 0.0)

	bearish := svc.Compute(seriesFromCloses(down, nil))
	require.True(t, bearish.Valid)
	assert.Equal(t, models.SignalSell, bearish.Signal)
	assert.Less(t, bearish.Values["histogram"], 0.0)
}

func TestBollingerBands_Signals(t *testing.T) {
	svc := NewBBandsService()

	spikeUp := append(constantCloses(24, 100), 110)
	result := svc.Compute(seriesFromCloses(spikeUp, nil))
	require.True(t, result.Valid)
	assert.Equal(t, models.SignalSell, result.Signal)

	spikeDown := append(constantCloses(24, 100), 90)
	result = svc.Compute(seriesFromCloses(spikeDown, nil))
	require.True(t, result.Valid)
	assert.Equal(t, models.SignalBuy, result.Signal)
}

func TestBollingerBands_ShortSeriesSyntheticBands(t *testing.T) {
	svc := NewBBandsService()

	result := svc.Compute(seriesFromCloses(constantCloses(10, 200), nil))
	assert.False(t, result.Valid)
	assert.Equal(t, models.SignalNeutral, result.Signal)
	assert.InDelta(t, 210, result.Values["upper"], 1e-9)
	assert.InDelta(t, 190, result.Values["lower"], 1e-9)
}

func TestMovingAverages_Crosses(t *testing.T) {
	svc := NewMAService()

	up := make([]float64, 100)
	down := make([]float64, 100)
	for i := range up {
		up[i] = 100 + float64(i)
		down[i] = 300 - float64(i)
	}

	gold := svc.Compute(seriesFromCloses(up, nil))
	require.True(t, gold.Valid)
	assert.Equal(t, models.SignalBuy, gold.Signal)
	assert.Greater(t, gold.Values["ma7"], gold.Values["ma25"])
	assert.Greater(t, gold.Values["ma25"], gold.Values["ma99"])

	death := svc.Compute(seriesFromCloses(down, nil))
	assert.Equal(t, models.SignalSell, death.Signal)

	flat := svc.Compute(seriesFromCloses(constantCloses(100, 100), nil))
	assert.Equal(t, models.SignalNeutral, flat.Signal)
}

func TestMomentum_Thresholds(t *testing.T) {
	svc := NewMomentumService()

	closes := constantCloses(30, 100)
	closes[len(closes)-1] = 103 // +3% over the 10-bar reference
	result := svc.Compute(seriesFromCloses(closes, nil))
	require.True(t, result.Valid)
	assert.Equal(t, models.SignalBuy, result.Signal)
	assert.Equal(t, 2, result.Weight)
	assert.InDelta(t, 3.0, result.Value, 1e-9)

	closes[len(closes)-1] = 97
	result = svc.Compute(seriesFromCloses(closes, nil))
	assert.Equal(t, models.SignalSell, result.Signal)

	closes[len(closes)-1] = 100.5 // inside the +/-1.5% band
	result = svc.Compute(seriesFromCloses(closes, nil))
	assert.Equal(t, models.SignalNeutral, result.Signal)
}

func TestPricePatterns_BreakoutAndBreakdown(t *testing.T) {
	svc := NewPatternService()

	breakout := constantCloses(25, 100)
	breakout[len(breakout)-1] = 105 // >2% above the prior 15-bar high of 100.5
	result := svc.Compute(seriesFromCloses(breakout, nil))
	require.True(t, result.Valid)
	assert.Equal(t, models.PatternBreakout, result.Pattern)
	assert.Equal(t, models.SignalBuy, result.Signal)

	breakdown := constantCloses(25, 100)
	breakdown[len(breakdown)-1] = 95
	result = svc.Compute(seriesFromCloses(breakdown, nil))
	assert.Equal(t, models.PatternBreakdown, result.Pattern)
	assert.Equal(t, models.SignalSell, result.Signal)

	quiet := svc.Compute(seriesFromCloses(constantCloses(25, 100), nil))
	assert.Equal(t, models.PatternNone, quiet.Pattern)
	assert.Equal(t, models.SignalNeutral, quiet.Signal)
}

func TestVolumeProfile_PointOfControl(t *testing.T) {
	svc := NewVolumeService()

	// Volume concentrated at the top of the range, current price just below.
	closes := constantCloses(28, 105)
	closes = append(closes, 100, 104)
	volumes := make([]float64, len(closes))
	for i := range volumes {
		volumes[i] = 1000
	}
	volumes[len(volumes)-2] = 1 // the low outlier carries no weight
	volumes[len(volumes)-1] = 1

	result := svc.Compute(seriesFromCloses(closes, volumes))
	require.True(t, result.Valid)
	assert.Equal(t, models.SignalBuy, result.Signal)
	assert.InDelta(t, 104.75, result.Values["point_of_control"], 1e-9)
}
