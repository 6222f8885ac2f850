package indicators

import (
	"math"

	"SolanaTradeBot/internal/models"
)

type BBandsService struct {
	period     int
	deviations float64
}

func NewBBandsService() *BBandsService {
	return &BBandsService{
		period:     20,
		deviations: 2.0,
	}
}

func (s *BBandsService) Kind() models.IndicatorKind {
	return models.IndicatorBollingerBands
}

// Compute calculates the bands over the last period closes: middle is the
// SMA, upper/lower sit deviations standard deviations away, width is the
// bandwidth relative to the middle. With fewer than period bars it falls
// back to synthetic bands at +/-5% of the last close and stays NEUTRAL.
func (s *BBandsService) Compute(series *models.CandleSeries) models.IndicatorResult {
	currentPrice := series.LastClose()

	if series.Len() < s.period {
		return models.IndicatorResult{
			Kind:   models.IndicatorBollingerBands,
			Signal: models.SignalNeutral,
			Value:  currentPrice,
			Values: map[string]float64{
				"upper":  currentPrice * 1.05,
				"middle": currentPrice,
				"lower":  currentPrice * 0.95,
				"width":  0.1,
			},
			Weight: 1,
		}
	}

	closes := series.Closes()
	window := closes[len(closes)-s.period:]

	sum := 0.0
	for _, price := range window {
		sum += price
	}
	middle := sum / float64(s.period)

	squareSum := 0.0
	for _, price := range window {
		diff := price - middle
		squareSum += diff * diff
	}
	stdDev := math.Sqrt(squareSum / float64(s.period))

	upper := middle + s.deviations*stdDev
	lower := middle - s.deviations*stdDev
	width := (upper - lower) / middle

	signal := models.SignalNeutral
	if currentPrice > upper {
		signal = models.SignalSell
	} else if currentPrice < lower {
		signal = models.SignalBuy
	}

	return models.IndicatorResult{
		Kind:   models.IndicatorBollingerBands,
		Signal: signal,
		Value:  currentPrice,
		Values: map[string]float64{
			"upper":  upper,
			"middle": middle,
			"lower":  lower,
			"width":  width,
		},
		Weight: 1,
		Valid:  true,
	}
}
