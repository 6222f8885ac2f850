package indicators

import "SolanaTradeBot/internal/models"

type RSIService struct {
	period     int
	overbought float64
	oversold   float64
}

func NewRSIService() *RSIService {
	return &RSIService{
		period:     14,
		overbought: 70,
		oversold:   30,
	}
}

func (s *RSIService) Kind() models.IndicatorKind {
	return models.IndicatorRSI
}

// Compute calculates the Wilder-smoothed RSI over the closing prices.
// The seed average gain/loss is the simple mean of the first period
// changes; later changes update with avg = (avg*(period-1)+new)/period.
// A zero average loss is floored at 0.001 to keep RS finite.
// Needs at least period+1 bars, otherwise returns 50 / NEUTRAL.
func (s *RSIService) Compute(series *models.CandleSeries) models.IndicatorResult {
	if series.Len() < s.period+1 {
		return models.IndicatorResult{
			Kind:   models.IndicatorRSI,
			Signal: models.SignalNeutral,
			Value:  50,
			Weight: 1,
		}
	}

	closes := series.Closes()

	gains := make([]float64, 0, len(closes)-1)
	losses := make([]float64, 0, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		change := closes[i] - closes[i-1]
		if change > 0 {
			gains = append(gains, change)
			losses = append(losses, 0)
		} else {
			gains = append(gains, 0)
			losses = append(losses, -change)
		}
	}

	var avgGain, avgLoss float64
	for i := 0; i < s.period; i++ {
		avgGain += gains[i]
		avgLoss += losses[i]
	}
	avgGain /= float64(s.period)
	avgLoss /= float64(s.period)

	rsi := 100 - 100/(1+rs(avgGain, avgLoss))
	for i := s.period; i < len(gains); i++ {
		avgGain = (avgGain*float64(s.period-1) + gains[i]) / float64(s.period)
		avgLoss = (avgLoss*float64(s.period-1) + losses[i]) / float64(s.period)
		rsi = 100 - 100/(1+rs(avgGain, avgLoss))
	}

	signal := models.SignalNeutral
	if rsi > s.overbought {
		signal = models.SignalSell
	} else if rsi < s.oversold {
		signal = models.SignalBuy
	}

	return models.IndicatorResult{
		Kind:   models.IndicatorRSI,
		Signal: signal,
		Value:  rsi,
		Values: map[string]float64{
			"avg_gain": avgGain,
			"avg_loss": avgLoss,
		},
		Weight: 1,
		Valid:  true,
	}
}

func rs(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		avgLoss = 0.001
	}
	return avgGain / avgLoss
}
