package indicators

import "SolanaTradeBot/internal/models"

type VolumeService struct {
	bins    int
	minBars int
}

func NewVolumeService() *VolumeService {
	return &VolumeService{
		bins:    10,
		minBars: 20,
	}
}

func (s *VolumeService) Kind() models.IndicatorKind {
	return models.IndicatorVolumeProfile
}

// Compute buckets closing prices into 10 equal-width bins across the
// observed range and accumulates traded volume per bin. The highest-volume
// bin is the point of control; a current price within 2% below it signals
// BUY, within 2% above it SELL.
func (s *VolumeService) Compute(series *models.CandleSeries) models.IndicatorResult {
	if series.Len() < s.minBars {
		return models.IndicatorResult{
			Kind:   models.IndicatorVolumeProfile,
			Signal: models.SignalNeutral,
			Weight: 1,
		}
	}

	closes := series.Closes()
	volumes := series.Volumes()

	min, max := minOf(closes), maxOf(closes)
	binSize := (max - min) / float64(s.bins)
	if binSize == 0 {
		// Flat series, every close in one bucket.
		return models.IndicatorResult{
			Kind:   models.IndicatorVolumeProfile,
			Signal: models.SignalNeutral,
			Weight: 1,
		}
	}

	binVolumes := make([]float64, s.bins)
	for i, close := range closes {
		bin := int((close - min) / binSize)
		if bin >= s.bins {
			bin = s.bins - 1
		}
		binVolumes[bin] += volumes[i]
	}

	pocBin := 0
	for i, v := range binVolumes {
		if v > binVolumes[pocBin] {
			pocBin = i
		}
	}
	pocPrice := min + binSize*float64(pocBin) + binSize/2

	currentPrice := closes[len(closes)-1]

	signal := models.SignalNeutral
	if currentPrice < pocPrice && currentPrice > pocPrice*0.98 {
		signal = models.SignalBuy
	} else if currentPrice > pocPrice && currentPrice < pocPrice*1.02 {
		signal = models.SignalSell
	}

	return models.IndicatorResult{
		Kind:   models.IndicatorVolumeProfile,
		Signal: signal,
		Value:  pocPrice,
		Values: map[string]float64{
			"point_of_control": pocPrice,
			"poc_volume":       binVolumes[pocBin],
		},
		Weight: 1,
		Valid:  true,
	}
}
