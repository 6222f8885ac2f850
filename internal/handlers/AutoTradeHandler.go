package handlers

import (
	"context"
	"log"

	"SolanaTradeBot/config"
	"SolanaTradeBot/internal/models"
	"SolanaTradeBot/internal/operations/monitor"
)

// AutoTradeHandler drives the automated flow: analysis, then a monitoring
// session that waits for the entry price, then bracket execution on match.
// At most one session runs per instrument at a time.
type AutoTradeHandler struct {
	analysis *AnalysisHandler
	source   monitor.PriceSource
	executor monitor.Executor
	trading  config.TradingConfig
}

func NewAutoTradeHandler(
	analysisHandler *AnalysisHandler,
	source monitor.PriceSource,
	executor monitor.Executor,
	trading config.TradingConfig,
) *AutoTradeHandler {
	return &AutoTradeHandler{
		analysis: analysisHandler,
		source:   source,
		executor: executor,
		trading:  trading,
	}
}

// Run performs one complete trade cycle. It returns the execution outcome
// on a matched entry, or nil when no trade happened (no buy signal, or
// the monitoring window expired).
func (h *AutoTradeHandler) Run(ctx context.Context) (*models.TradeExecution, error) {
	intent, err := h.analysis.BuildTradeIntent(ctx)
	if err != nil {
		return nil, err
	}

	if intent.Summary.Signal != models.SignalBuy {
		log.Printf("No buy signal for %s (signal=%s strength=%d), skipping trade cycle",
			intent.Symbol, intent.Summary.Signal, intent.Summary.Strength)
		return nil, nil
	}

	log.Printf("Monitoring %s for entry at %.4f (tolerance %.2f, window %s)",
		intent.Symbol, intent.EntryPrice, h.trading.Tolerance, h.trading.MonitorWindow)

	session := monitor.NewSession(*intent, h.source, h.executor, h.trading.Tolerance, h.trading.MonitorWindow)

	switch session.Run(ctx, h.trading.PollInterval) {
	case models.SessionStatusMatched:
		return session.Execution(), nil
	case models.SessionStatusFailed:
		return nil, session.Err()
	default:
		return nil, nil
	}
}
