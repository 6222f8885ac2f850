package models

const (
	SignalBuy     = "BUY"
	SignalSell    = "SELL"
	SignalNeutral = "NEUTRAL"
)

// IndicatorKind enumerates the closed set of supported indicators.
type IndicatorKind string

const (
	IndicatorRSI            IndicatorKind = "rsi"
	IndicatorMACD           IndicatorKind = "macd"
	IndicatorBollingerBands IndicatorKind = "bollinger_bands"
	IndicatorMovingAverages IndicatorKind = "moving_averages"
	IndicatorMomentum       IndicatorKind = "momentum"
	IndicatorPricePattern   IndicatorKind = "price_pattern"
	IndicatorVolumeProfile  IndicatorKind = "volume_profile"
)

// IndicatorResult is the output of a single indicator computation.
// Value carries the headline number (RSI level, MACD histogram, momentum
// percent, ...); Values carries any named components of the calculation.
type IndicatorResult struct {
	Kind   IndicatorKind
	Signal string
	Value  float64
	Values map[string]float64

	// Weight of this indicator's vote in the aggregate (usually 1).
	Weight int

	// Valid is false when the series was too short and the result is the
	// documented neutral placeholder.
	Valid bool

	// Pattern names the detected price pattern, if any.
	Pattern string
}

const (
	PatternNone         = "NONE"
	PatternDoubleBottom = "DOUBLE_BOTTOM"
	PatternDoubleTop    = "DOUBLE_TOP"
	PatternBreakout     = "BREAKOUT"
	PatternBreakdown    = "BREAKDOWN"
)

// AggregateSignal is the fused directional call over all indicator votes.
type AggregateSignal struct {
	Signal     string
	Strength   int // 0-100
	BuyVotes   int
	SellVotes  int
	ValidCount int
}
