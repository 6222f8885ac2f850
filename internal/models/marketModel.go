package models

import "time"

// PriceLevel is one order-book level.
type PriceLevel struct {
	Price    float64
	Quantity float64
}

// OrderBook is a depth snapshot from the execution venue.
type OrderBook struct {
	Bids []PriceLevel
	Asks []PriceLevel
}

// FundingRate is the latest perpetual funding rate for a symbol, used only
// as a snapshot enrichment.
type FundingRate struct {
	Symbol      string
	Rate        float64
	MarkPrice   float64
	FundingTime time.Time
}

// Balance is one asset balance on the venue account.
type Balance struct {
	Asset  string
	Free   float64
	Locked float64
}

// Order is a single entry from the venue order history.
type Order struct {
	OrderID          int64
	Symbol           string
	Side             string
	Type             string
	Price            float64
	OrigQuantity     float64
	ExecutedQuantity float64
	Status           string
	Time             time.Time
}
