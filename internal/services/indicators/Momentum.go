package indicators

import (
	"math"

	"SolanaTradeBot/internal/models"
)

type MomentumService struct {
	period    int
	threshold float64
}

func NewMomentumService() *MomentumService {
	return &MomentumService{
		period:    10,
		threshold: 1.5,
	}
}

func (s *MomentumService) Kind() models.IndicatorKind {
	return models.IndicatorMomentum
}

// Compute measures the percent change between the current close and the
// close period bars earlier. Above +1.5% is BUY, below -1.5% is SELL.
// Momentum carries double vote weight in the aggregate because of its
// short-horizon relevance.
func (s *MomentumService) Compute(series *models.CandleSeries) models.IndicatorResult {
	if series.Len() < s.period+1 {
		return models.IndicatorResult{
			Kind:   models.IndicatorMomentum,
			Signal: models.SignalNeutral,
			Weight: 2,
		}
	}

	closes := series.Closes()
	currentPrice := closes[len(closes)-1]
	referencePrice := closes[len(closes)-s.period-1]

	momentum := (currentPrice - referencePrice) / referencePrice * 100

	signal := models.SignalNeutral
	if momentum > s.threshold {
		signal = models.SignalBuy
	} else if momentum < -s.threshold {
		signal = models.SignalSell
	}

	return models.IndicatorResult{
		Kind:   models.IndicatorMomentum,
		Signal: signal,
		Value:  momentum,
		Values: map[string]float64{
			"strength": math.Abs(momentum),
		},
		Weight: 2,
		Valid:  true,
	}
}
