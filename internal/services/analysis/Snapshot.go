package analysis

import (
	"context"
	"log"
	"time"

	"SolanaTradeBot/internal/models"
)

// MarketDataSource supplies the live-market parts of a snapshot.
type MarketDataSource interface {
	GetCurrentPrice(ctx context.Context, symbol string) (float64, error)
	GetOrderBook(ctx context.Context, symbol string, limit int) (*models.OrderBook, error)
	GetFundingRate(ctx context.Context, symbol string) (*models.FundingRate, error)
}

// TweetSource supplies recent cached tweet texts.
type TweetSource interface {
	RecentTexts(limit int) ([]string, error)
}

// NewsSource supplies recent news headlines.
type NewsSource interface {
	RecentHeadlines(limit int) ([]string, error)
}

// MarketSnapshot is the structured view handed to the narrative service.
// Everything beyond price and candles is best-effort enrichment; none of
// it feeds the indicator math.
type MarketSnapshot struct {
	Symbol        string                 `json:"symbol"`
	RealTimePrice float64                `json:"realTimePrice"`
	Candles       []models.Candle        `json:"historicalData"`
	OrderBook     *models.OrderBook      `json:"orderBook,omitempty"`
	FundingRate   *models.FundingRate    `json:"fundingRate,omitempty"`
	Tweets        []string               `json:"tweets,omitempty"`
	News          []string               `json:"news,omitempty"`
	Summary       models.AggregateSignal `json:"summary"`
	GeneratedAt   time.Time              `json:"generatedAt"`
}

// SnapshotBuilder assembles market snapshots from whatever sources are
// configured. Tweet and news sources may be nil.
type SnapshotBuilder struct {
	market MarketDataSource
	tweets TweetSource
	news   NewsSource

	orderBookDepth int
	recentLimit    int
}

func NewSnapshotBuilder(market MarketDataSource, tweets TweetSource, news NewsSource) *SnapshotBuilder {
	return &SnapshotBuilder{
		market:         market,
		tweets:         tweets,
		news:           news,
		orderBookDepth: 50,
		recentLimit:    20,
	}
}

// Build collects every available enrichment for the snapshot. Failures are
// logged and leave the corresponding field empty; the snapshot itself is
// always returned.
func (b *SnapshotBuilder) Build(ctx context.Context, symbol string, series *models.CandleSeries, summary models.AggregateSignal) *MarketSnapshot {
	snapshot := &MarketSnapshot{
		Symbol:      symbol,
		Summary:     summary,
		GeneratedAt: time.Now(),
	}
	if series != nil {
		snapshot.Candles = series.Candles()
	}

	if price, err := b.market.GetCurrentPrice(ctx, symbol); err != nil {
		log.Printf("Snapshot: current price unavailable for %s: %v", symbol, err)
	} else {
		snapshot.RealTimePrice = price
	}

	if book, err := b.market.GetOrderBook(ctx, symbol, b.orderBookDepth); err != nil {
		log.Printf("Snapshot: order book unavailable for %s: %v", symbol, err)
	} else {
		snapshot.OrderBook = book
	}

	if rate, err := b.market.GetFundingRate(ctx, symbol); err != nil {
		log.Printf("Snapshot: funding rate unavailable for %s: %v", symbol, err)
	} else {
		snapshot.FundingRate = rate
	}

	if b.tweets != nil {
		if texts, err := b.tweets.RecentTexts(b.recentLimit); err != nil {
			log.Printf("Snapshot: tweet cache unavailable: %v", err)
		} else {
			snapshot.Tweets = texts
		}
	}

	if b.news != nil {
		if headlines, err := b.news.RecentHeadlines(b.recentLimit); err != nil {
			log.Printf("Snapshot: news feed unavailable: %v", err)
		} else {
			snapshot.News = headlines
		}
	}

	return snapshot
}
