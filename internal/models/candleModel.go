package models

import (
	"log"
	"time"
)

// Candle represents a single OHLCV bar.
type Candle struct {
	OpenTime time.Time
	Open     float64
	High     float64
	Low      float64
	Close    float64
	Volume   float64
}

// Valid checks the OHLC consistency invariants for a single bar.
func (c Candle) Valid() bool {
	if c.Open < 0 || c.High < 0 || c.Low < 0 || c.Close < 0 || c.Volume < 0 {
		return false
	}
	if c.High < c.Open || c.High < c.Close {
		return false
	}
	if c.Low > c.Open || c.Low > c.Close {
		return false
	}
	return true
}

// CandleSeries is an immutable, time-ascending sequence of candles.
// Build one with NewCandleSeries; invalid or out-of-order bars are dropped.
type CandleSeries struct {
	candles []Candle
}

// NewCandleSeries validates raw bars and returns an ordered series.
// Bars failing OHLC consistency or the ascending-unique-time invariant
// are dropped with a warning.
func NewCandleSeries(raw []Candle) *CandleSeries {
	candles := make([]Candle, 0, len(raw))
	for _, c := range raw {
		if !c.Valid() {
			log.Printf("Dropping invalid candle at %s: O=%.8f H=%.8f L=%.8f C=%.8f V=%.8f",
				c.OpenTime.Format(time.RFC3339), c.Open, c.High, c.Low, c.Close, c.Volume)
			continue
		}
		if len(candles) > 0 && !c.OpenTime.After(candles[len(candles)-1].OpenTime) {
			log.Printf("Dropping out-of-order candle at %s", c.OpenTime.Format(time.RFC3339))
			continue
		}
		candles = append(candles, c)
	}
	return &CandleSeries{candles: candles}
}

// Len returns the number of bars in the series.
func (s *CandleSeries) Len() int {
	return len(s.candles)
}

// Candles returns a copy of the underlying bars.
func (s *CandleSeries) Candles() []Candle {
	out := make([]Candle, len(s.candles))
	copy(out, s.candles)
	return out
}

// LastN returns a series containing the most recent n bars.
func (s *CandleSeries) LastN(n int) *CandleSeries {
	if n >= len(s.candles) {
		return s
	}
	sub := make([]Candle, n)
	copy(sub, s.candles[len(s.candles)-n:])
	return &CandleSeries{candles: sub}
}

// Closes returns the closing prices as a parallel array.
func (s *CandleSeries) Closes() []float64 {
	out := make([]float64, len(s.candles))
	for i, c := range s.candles {
		out[i] = c.Close
	}
	return out
}

// Highs returns the high prices as a parallel array.
func (s *CandleSeries) Highs() []float64 {
	out := make([]float64, len(s.candles))
	for i, c := range s.candles {
		out[i] = c.High
	}
	return out
}

// Lows returns the low prices as a parallel array.
func (s *CandleSeries) Lows() []float64 {
	out := make([]float64, len(s.candles))
	for i, c := range s.candles {
		out[i] = c.Low
	}
	return out
}

// Volumes returns the traded volumes as a parallel array.
func (s *CandleSeries) Volumes() []float64 {
	out := make([]float64, len(s.candles))
	for i, c := range s.candles {
		out[i] = c.Volume
	}
	return out
}

// LastClose returns the most recent closing price, or 0 for an empty series.
func (s *CandleSeries) LastClose() float64 {
	if len(s.candles) == 0 {
		return 0
	}
	return s.candles[len(s.candles)-1].Close
}
