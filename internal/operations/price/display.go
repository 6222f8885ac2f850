package price

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/jpillora/backoff"
)

// PriceSource is the slice of the market-data adapter the display needs.
type PriceSource interface {
	GetCurrentPrice(ctx context.Context, symbol string) (float64, error)
}

// PricePoint is one sampled quote.
type PricePoint struct {
	Timestamp time.Time
	Price     float64
}

const historySize = 20

// Display samples the live price on a fixed interval and keeps a short
// rolling history for user-facing output. Failed fetches are retried with
// exponential backoff (1s, 2s, 4s) up to three times per sample; this
// retry path exists only here, not in the entry-matching loop.
type Display struct {
	source   PriceSource
	symbol   string
	interval time.Duration

	mu      sync.RWMutex
	history []PricePoint
}

func NewDisplay(source PriceSource, symbol string) *Display {
	return &Display{
		source:   source,
		symbol:   symbol,
		interval: 5 * time.Second,
	}
}

// Run samples until the context ends.
func (d *Display) Run(ctx context.Context) {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	d.sample(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			d.sample(ctx)
		}
	}
}

func (d *Display) sample(ctx context.Context) {
	b := &backoff.Backoff{
		Min:    time.Second,
		Max:    4 * time.Second,
		Factor: 2,
	}

	for attempt := 0; ; attempt++ {
		price, err := d.source.GetCurrentPrice(ctx, d.symbol)
		if err == nil {
			d.record(price)
			log.Printf("Current %s price: %.4f", d.symbol, price)
			return
		}

		if attempt >= 3 {
			log.Printf("Price fetch for %s failed after retries: %v", d.symbol, err)
			return
		}

		delay := b.Duration()
		log.Printf("Price fetch for %s failed: %v, retrying in %s", d.symbol, err, delay)
		select {
		case <-ctx.Done():
			return
		case <-time.After(delay):
		}
	}
}

func (d *Display) record(price float64) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.history = append(d.history, PricePoint{Timestamp: time.Now(), Price: price})
	if len(d.history) > historySize {
		d.history = d.history[len(d.history)-historySize:]
	}
}

// History returns a copy of the rolling price history.
func (d *Display) History() []PricePoint {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]PricePoint, len(d.history))
	copy(out, d.history)
	return out
}

// Current returns the most recent sampled price, or 0 when none exists.
func (d *Display) Current() float64 {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if len(d.history) == 0 {
		return 0
	}
	return d.history[len(d.history)-1].Price
}
