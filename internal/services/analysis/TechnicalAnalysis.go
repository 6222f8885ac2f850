package analysis

import (
	"log"
	"time"

	"SolanaTradeBot/internal/models"
	"SolanaTradeBot/internal/services/indicators"
)

// MinimumBars is the minimum series length for a full analysis run.
const MinimumBars = 30

// TechnicalAnalyzer runs the fixed indicator set over a candle series and
// fuses the results into one aggregate signal.
type TechnicalAnalyzer struct {
	extended bool
}

// AnalysisResult is the output of one analysis cycle.
type AnalysisResult struct {
	Symbol     string
	Timestamp  time.Time
	Indicators []models.IndicatorResult
	Summary    models.AggregateSignal
}

// ByKind returns the result for one indicator, if it was part of the run.
func (r *AnalysisResult) ByKind(kind models.IndicatorKind) (models.IndicatorResult, bool) {
	for _, ind := range r.Indicators {
		if ind.Kind == kind {
			return ind, true
		}
	}
	return models.IndicatorResult{}, false
}

// NewTechnicalAnalyzer creates an analyzer. Extended mode adds the
// momentum, price-pattern and volume-profile indicators, which need more
// history to be meaningful.
func NewTechnicalAnalyzer(extended bool) *TechnicalAnalyzer {
	return &TechnicalAnalyzer{extended: extended}
}

// Analyze computes every indicator in the set and summarizes their votes.
// Series shorter than MinimumBars produce an empty run with a NEUTRAL
// zero-strength summary rather than an error.
func (a *TechnicalAnalyzer) Analyze(symbol string, series *models.CandleSeries) *AnalysisResult {
	result := &AnalysisResult{
		Symbol:    symbol,
		Timestamp: time.Now(),
	}

	if series == nil || series.Len() < MinimumBars {
		n := 0
		if series != nil {
			n = series.Len()
		}
		log.Printf("Analysis skipped for %s: %d bars, need %d", symbol, n, MinimumBars)
		result.Summary = models.AggregateSignal{Signal: models.SignalNeutral}
		return result
	}

	for _, ind := range indicators.ForMode(a.extended) {
		r := ind.Compute(series)
		log.Printf("Indicator %s on %s (%d bars): signal=%s value=%.6f",
			r.Kind, symbol, series.Len(), r.Signal, r.Value)
		result.Indicators = append(result.Indicators, r)
	}

	result.Summary = Summarize(result.Indicators)
	log.Printf("Signal summary for %s: %s strength=%d (buy=%d sell=%d valid=%d)",
		symbol, result.Summary.Signal, result.Summary.Strength,
		result.Summary.BuyVotes, result.Summary.SellVotes, result.Summary.ValidCount)

	return result
}
