package analysis

import (
	"math"

	"SolanaTradeBot/internal/models"
)

// Summarize fuses the indicator results of one run into a directional
// signal with a 0-100 strength. Each valid indicator casts one weighted
// vote (momentum and price patterns count double); low-data placeholders
// are skipped entirely. Strength is the winning vote share over the
// number of valid indicators, clamped to 100.
func Summarize(results []models.IndicatorResult) models.AggregateSignal {
	var buyVotes, sellVotes, validCount int

	for _, r := range results {
		if !r.Valid {
			continue
		}
		validCount++

		weight := r.Weight
		if weight <= 0 {
			weight = 1
		}

		switch r.Signal {
		case models.SignalBuy:
			buyVotes += weight
		case models.SignalSell:
			sellVotes += weight
		}
	}

	if validCount == 0 {
		return models.AggregateSignal{Signal: models.SignalNeutral}
	}

	winning := buyVotes
	if sellVotes > winning {
		winning = sellVotes
	}

	strength := int(math.Round(float64(winning) / float64(validCount) * 100))
	if strength > 100 {
		strength = 100
	}

	signal := models.SignalNeutral
	if buyVotes > sellVotes {
		signal = models.SignalBuy
	} else if sellVotes > buyVotes {
		signal = models.SignalSell
	}

	return models.AggregateSignal{
		Signal:     signal,
		Strength:   strength,
		BuyVotes:   buyVotes,
		SellVotes:  sellVotes,
		ValidCount: validCount,
	}
}
