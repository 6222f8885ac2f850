package indicators

import (
	"math"

	"SolanaTradeBot/internal/models"
)

type PatternService struct {
	window int
}

func NewPatternService() *PatternService {
	return &PatternService{window: 20}
}

func (s *PatternService) Kind() models.IndicatorKind {
	return models.IndicatorPricePattern
}

// Compute scans the last 20 bars for reversal and continuation shapes:
// a double bottom (two local lows within 2% of each other with the close
// recovered 3% above them), its double-top mirror, and a breakout or
// breakdown beyond the prior 15-bar extreme by more than 2%. Patterns
// carry double vote weight in the aggregate.
func (s *PatternService) Compute(series *models.CandleSeries) models.IndicatorResult {
	if series.Len() < s.window {
		return models.IndicatorResult{
			Kind:    models.IndicatorPricePattern,
			Signal:  models.SignalNeutral,
			Pattern: models.PatternNone,
			Weight:  2,
		}
	}

	closes := series.Closes()
	highs := series.Highs()
	lows := series.Lows()
	currentPrice := closes[len(closes)-1]

	recentLows := lows[len(lows)-s.window:]
	recentHighs := highs[len(highs)-s.window:]

	if minima := localMinima(recentLows); len(minima) >= 2 {
		first, second := recentLows[minima[0]], recentLows[minima[1]]
		if math.Abs(first-second) < 0.02*first && currentPrice > first*1.03 {
			return patternResult(models.PatternDoubleBottom, models.SignalBuy, currentPrice)
		}
	}

	if maxima := localMaxima(recentHighs); len(maxima) >= 2 {
		first, second := recentHighs[maxima[0]], recentHighs[maxima[1]]
		if math.Abs(first-second) < 0.02*first && currentPrice < first*0.97 {
			return patternResult(models.PatternDoubleTop, models.SignalSell, currentPrice)
		}
	}

	// Breakout past the prior 15-bar range, excluding the current bar.
	previousHigh := maxOf(highs[len(highs)-15 : len(highs)-1])
	if currentPrice > previousHigh*1.02 {
		return patternResult(models.PatternBreakout, models.SignalBuy, currentPrice)
	}

	previousLow := minOf(lows[len(lows)-15 : len(lows)-1])
	if currentPrice < previousLow*0.98 {
		return patternResult(models.PatternBreakdown, models.SignalSell, currentPrice)
	}

	return patternResult(models.PatternNone, models.SignalNeutral, currentPrice)
}

func patternResult(pattern, signal string, price float64) models.IndicatorResult {
	return models.IndicatorResult{
		Kind:    models.IndicatorPricePattern,
		Signal:  signal,
		Pattern: pattern,
		Value:   price,
		Weight:  2,
		Valid:   true,
	}
}

// localMinima returns indices that are strictly lower than their two
// neighbors on each side.
func localMinima(data []float64) []int {
	var minima []int
	for i := 2; i < len(data)-2; i++ {
		if data[i] < data[i-1] && data[i] < data[i-2] && data[i] < data[i+1] && data[i] < data[i+2] {
			minima = append(minima, i)
		}
	}
	return minima
}

// localMaxima returns indices that are strictly higher than their two
// neighbors on each side.
func localMaxima(data []float64) []int {
	var maxima []int
	for i := 2; i < len(data)-2; i++ {
		if data[i] > data[i-1] && data[i] > data[i-2] && data[i] > data[i+1] && data[i] > data[i+2] {
			maxima = append(maxima, i)
		}
	}
	return maxima
}

func maxOf(data []float64) float64 {
	max := data[0]
	for _, v := range data[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

func minOf(data []float64) float64 {
	min := data[0]
	for _, v := range data[1:] {
		if v < min {
			min = v
		}
	}
	return min
}
