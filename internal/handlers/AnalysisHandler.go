package handlers

import (
	"context"
	"fmt"
	"log"
	"time"

	"SolanaTradeBot/config"
	"SolanaTradeBot/internal/models"
	"SolanaTradeBot/internal/operations/price"
	"SolanaTradeBot/internal/services/analysis"
	"SolanaTradeBot/internal/services/narrative"
)

const (
	candleInterval = "1h"
	candleLimit    = 720 // 30 days of hourly bars
)

// AnalysisHandler runs one full analysis cycle: fresh candle series,
// indicator computation (short-circuited by the signal cache), aggregate
// signal, and the trade intent derived from it. The narrative service is
// consulted for an advisory entry price when configured.
type AnalysisHandler struct {
	fetcher   *price.Fetcher
	analyzer  *analysis.TechnicalAnalyzer
	cache     *analysis.SignalCache
	snapshots *analysis.SnapshotBuilder
	narrative *narrative.Service // nil when not configured
	trading   config.TradingConfig
}

func NewAnalysisHandler(
	fetcher *price.Fetcher,
	analyzer *analysis.TechnicalAnalyzer,
	cache *analysis.SignalCache,
	snapshots *analysis.SnapshotBuilder,
	narrativeService *narrative.Service,
	trading config.TradingConfig,
) *AnalysisHandler {
	return &AnalysisHandler{
		fetcher:   fetcher,
		analyzer:  analyzer,
		cache:     cache,
		snapshots: snapshots,
		narrative: narrativeService,
		trading:   trading,
	}
}

// Analyze fetches a fresh series and returns the aggregate analysis for
// it. A cached result within its TTL skips the indicator recomputation;
// the series itself is always fetched fresh.
func (h *AnalysisHandler) Analyze(ctx context.Context) (*analysis.AnalysisResult, *models.CandleSeries, error) {
	series, err := h.fetcher.FetchSeries(ctx, h.trading.Symbol, candleInterval, candleLimit)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch candle history: %w", err)
	}

	if cached, ok := h.cache.Get(); ok {
		log.Printf("Using cached analysis for %s from %s", h.trading.Symbol, cached.Timestamp.Format(time.RFC3339))
		return cached, series, nil
	}

	result := h.analyzer.Analyze(h.trading.Symbol, series)
	h.cache.Put(result)
	return result, series, nil
}

// BuildTradeIntent turns the current analysis into an immutable trade
// intent. The entry price defaults to the last close and is replaced by
// the narrative service's recommendation when one can be extracted; the
// stop and target prices are derived from the configured multipliers.
func (h *AnalysisHandler) BuildTradeIntent(ctx context.Context) (*models.TradeIntent, error) {
	result, series, err := h.Analyze(ctx)
	if err != nil {
		return nil, err
	}

	entryPrice := series.LastClose()

	if h.narrative != nil {
		snapshot := h.snapshots.Build(ctx, h.trading.Symbol, series, result.Summary)
		text, err := h.narrative.GenerateNarrative(ctx, snapshot)
		if err != nil {
			// Advisory only: losing the narrative loses nothing else.
			log.Printf("Narrative generation failed: %v", err)
		} else if advised, err := narrative.ExtractEntryPrice(text); err != nil {
			log.Printf("Could not extract entry price from narrative: %v", err)
		} else {
			log.Printf("Entry price identified: %.4f", advised)
			entryPrice = advised
		}
	}

	return &models.TradeIntent{
		Symbol:          h.trading.Symbol,
		Direction:       models.SignalBuy,
		EntryPrice:      entryPrice,
		StopLossPrice:   entryPrice * (1 - h.trading.LossMultiplier),
		TakeProfitPrice: entryPrice * (1 + h.trading.ProfitMultiplier),
		Summary:         result.Summary,
		CreatedAt:       time.Now(),
	}, nil
}
