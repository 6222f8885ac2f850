package indicators

// EMAService provides Exponential Moving Average calculations shared by
// the MACD indicator.
type EMAService struct{}

// NewEMAService creates a new EMA service instance
func NewEMAService() *EMAService {
	return &EMAService{}
}

// Calculate computes the EMA series for the given prices. The first value
// is the simple average of the first period prices; each later value is
// price*k + prev*(1-k) with k = 2/(period+1). The returned slice has
// len(prices)-period+1 entries. Returns nil when the input is too short.
func (s *EMAService) Calculate(prices []float64, period int) []float64 {
	if period <= 0 || len(prices) < period {
		return nil
	}

	k := s.getMultiplier(period)

	sma := 0.0
	for i := 0; i < period; i++ {
		sma += prices[i]
	}
	sma /= float64(period)

	emas := make([]float64, 0, len(prices)-period+1)
	emas = append(emas, sma)
	for i := period; i < len(prices); i++ {
		prev := emas[len(emas)-1]
		emas = append(emas, prices[i]*k+prev*(1-k))
	}

	return emas
}

// Latest returns the most recent EMA value, or 0 when the input is too short.
func (s *EMAService) Latest(prices []float64, period int) float64 {
	emas := s.Calculate(prices, period)
	if len(emas) == 0 {
		return 0
	}
	return emas[len(emas)-1]
}

func (s *EMAService) getMultiplier(period int) float64 {
	return 2.0 / float64(period+1)
}
