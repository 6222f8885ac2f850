package indicators

import "SolanaTradeBot/internal/models"

type MAService struct {
	shortPeriod int
	midPeriod   int
	longPeriod  int
}

func NewMAService() *MAService {
	return &MAService{
		shortPeriod: 7,
		midPeriod:   25,
		longPeriod:  99,
	}
}

func (s *MAService) Kind() models.IndicatorKind {
	return models.IndicatorMovingAverages
}

// Compute layers simple moving averages at 7, 25 and min(99, len-1) bars.
// MA7 > MA25 > MA99 is a gold cross (BUY); the inverse ordering is a
// death cross (SELL). With too little data for a window the last close
// stands in, which keeps the comparison defined on short series.
func (s *MAService) Compute(series *models.CandleSeries) models.IndicatorResult {
	if series.Len() == 0 {
		return models.IndicatorResult{
			Kind:   models.IndicatorMovingAverages,
			Signal: models.SignalNeutral,
			Weight: 1,
		}
	}

	closes := series.Closes()

	longPeriod := s.longPeriod
	if len(closes)-1 < longPeriod {
		longPeriod = len(closes) - 1
	}

	ma7 := sma(closes, s.shortPeriod)
	ma25 := sma(closes, s.midPeriod)
	ma99 := sma(closes, longPeriod)

	goldCross := ma7 > ma25 && ma25 > ma99
	deathCross := ma7 < ma25 && ma25 < ma99

	signal := models.SignalNeutral
	if goldCross {
		signal = models.SignalBuy
	} else if deathCross {
		signal = models.SignalSell
	}

	return models.IndicatorResult{
		Kind:   models.IndicatorMovingAverages,
		Signal: signal,
		Value:  ma7,
		Values: map[string]float64{
			"ma7":  ma7,
			"ma25": ma25,
			"ma99": ma99,
		},
		Weight: 1,
		Valid:  true,
	}
}

// sma averages the last period values, falling back to the final value
// when the series is shorter than the window.
func sma(data []float64, period int) float64 {
	if period <= 0 || len(data) < period {
		return data[len(data)-1]
	}
	sum := 0.0
	for _, v := range data[len(data)-period:] {
		sum += v
	}
	return sum / float64(period)
}
