package indicators

import "SolanaTradeBot/internal/models"

type MACDService struct {
	ema          *EMAService
	fastPeriod   int
	slowPeriod   int
	signalPeriod int
}

func NewMACDService() *MACDService {
	return &MACDService{
		ema:          NewEMAService(),
		fastPeriod:   12,
		slowPeriod:   26,
		signalPeriod: 9,
	}
}

func (s *MACDService) Kind() models.IndicatorKind {
	return models.IndicatorMACD
}

// Compute calculates the MACD line (EMA12-EMA26 of closes) and its
// 9-period EMA signal line from a rolling history of MACD line values.
// Needs at least slowPeriod bars, otherwise returns a zero NEUTRAL result.
// When fewer than signalPeriod MACD points exist the signal line equals
// the MACD line, which leaves the histogram flat and the signal NEUTRAL.
func (s *MACDService) Compute(series *models.CandleSeries) models.IndicatorResult {
	if series.Len() < s.slowPeriod {
		return models.IndicatorResult{
			Kind:   models.IndicatorMACD,
			Signal: models.SignalNeutral,
			Weight: 1,
		}
	}

	closes := series.Closes()

	fastEMA := s.ema.Calculate(closes, s.fastPeriod)
	slowEMA := s.ema.Calculate(closes, s.slowPeriod)

	// Align both EMA histories on their most recent values.
	n := len(slowEMA)
	if len(fastEMA) < n {
		n = len(fastEMA)
	}
	macdHistory := make([]float64, n)
	for i := 0; i < n; i++ {
		macdHistory[i] = fastEMA[len(fastEMA)-n+i] - slowEMA[len(slowEMA)-n+i]
	}

	macdLine := macdHistory[n-1]

	var signalLine float64
	if sig := s.ema.Calculate(macdHistory, s.signalPeriod); len(sig) > 0 {
		signalLine = sig[len(sig)-1]
	} else {
		signalLine = macdLine
	}

	histogram := macdLine - signalLine

	trend := models.SignalNeutral
	if macdLine > signalLine && histogram > 0 {
		trend = models.SignalBuy
	} else if macdLine < signalLine && histogram < 0 {
		trend = models.SignalSell
	}

	return models.IndicatorResult{
		Kind:   models.IndicatorMACD,
		Signal: trend,
		Value:  histogram,
		Values: map[string]float64{
			"line":      macdLine,
			"signal":    signalLine,
			"histogram": histogram,
		},
		Weight: 1,
		Valid:  true,
	}
}
