package indicators

import "SolanaTradeBot/internal/models"

// Indicator is the closed set of supported technical indicators. Each one
// is a pure function of a candle series; adding an indicator means adding
// a service here, not registering anything at runtime.
type Indicator interface {
	Kind() models.IndicatorKind
	Compute(series *models.CandleSeries) models.IndicatorResult
}

// ForMode returns the indicator set for one analysis run. The basic set is
// RSI, MACD, Bollinger Bands and the layered moving averages; extended
// mode adds momentum, price patterns and the volume profile.
func ForMode(extended bool) []Indicator {
	set := []Indicator{
		NewRSIService(),
		NewMACDService(),
		NewBBandsService(),
		NewMAService(),
	}
	if extended {
		set = append(set,
			NewMomentumService(),
			NewPatternService(),
			NewVolumeService(),
		)
	}
	return set
}
