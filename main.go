package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"SolanaTradeBot/config"
	"SolanaTradeBot/internal/handlers"
	"SolanaTradeBot/internal/models"
	binanceops "SolanaTradeBot/internal/operations/binance"
	"SolanaTradeBot/internal/operations/price"
	"SolanaTradeBot/internal/operations/trade"
	"SolanaTradeBot/internal/repositories"
	"SolanaTradeBot/internal/services/analysis"
	"SolanaTradeBot/internal/services/narrative"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Initialize Binance client
	client, err := binanceops.NewClient(cfg.Exchange)
	if err != nil {
		log.Fatal("Failed to initialize Binance client:", err)
	}

	// Setup database for the tweet cache and news feed. These only enrich
	// the narrative snapshot, so a missing database disables them and
	// nothing else.
	var tweetRepo *repositories.TweetRepository
	var newsRepo *repositories.NewsRepository
	if db, err := setupDatabase(cfg.Database); err != nil {
		log.Printf("Database unavailable, tweet/news enrichment disabled: %v", err)
	} else {
		tweetRepo = repositories.NewTweetRepository(db)
		newsRepo = repositories.NewNewsRepository(db)
	}

	// Initialize narrative service (advisory only)
	var narrativeService *narrative.Service
	narrativeService, err = narrative.NewService(cfg.OpenAI.APIKey, cfg.OpenAI.Model)
	if err != nil {
		log.Printf("Narrative service disabled: %v", err)
		narrativeService = nil
	}

	// Initialize analysis components
	fetcher := price.NewFetcher(client)
	analyzer := analysis.NewTechnicalAnalyzer(cfg.Trading.Extended)
	cache := analysis.NewSignalCache(analysis.DefaultCacheTTL)

	var tweetSource analysis.TweetSource
	if tweetRepo != nil {
		tweetSource = tweetRepo
	}
	var newsSource analysis.NewsSource
	if newsRepo != nil {
		newsSource = newsRepo
	}
	snapshots := analysis.NewSnapshotBuilder(client, tweetSource, newsSource)

	analysisHandler := handlers.NewAnalysisHandler(fetcher, analyzer, cache, snapshots, narrativeService, cfg.Trading)
	executor := trade.NewExecutor(client, cfg.Trading)
	autoTrade := handlers.NewAutoTradeHandler(analysisHandler, client, executor, cfg.Trading)

	// Setup context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start the live price display
	display := price.NewDisplay(client, cfg.Trading.Symbol)
	go display.Run(ctx)

	// Run the trade cycle
	go func() {
		execution, err := autoTrade.Run(ctx)
		if err != nil {
			log.Printf("Trade cycle failed: %v", err)
			return
		}
		if execution == nil {
			log.Println("Trade cycle finished without a trade")
			return
		}

		fmt.Println("\n=== Trade Executed ===")
		fmt.Printf("Filled: %.8f %s @ %.4f\n",
			execution.Fill.ExecutedQuantity, execution.Fill.Symbol, execution.Fill.AveragePrice)
		fmt.Printf("Take Profit: %.4f\n", execution.Bracket.TakeProfitPrice)
		fmt.Printf("Stop Loss: %.4f (limit %.4f)\n",
			execution.Bracket.StopTriggerPrice, execution.Bracket.StopLimitPrice)
		if execution.Bracket.Unprotected() {
			fmt.Println("WARNING: one or more protective orders failed to place")
		}
	}()

	// Handle shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Shutting down...")
	cancel()
	time.Sleep(time.Second * 2) // Give time for cleanup
	log.Println("Shutdown complete")
}

func setupDatabase(dbConfig config.DatabaseConfig) (*gorm.DB, error) {
	if dbConfig.Host == "" || dbConfig.DBName == "" {
		return nil, fmt.Errorf("database not configured")
	}

	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		dbConfig.Host,
		dbConfig.Port,
		dbConfig.User,
		dbConfig.Password,
		dbConfig.DBName)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Auto migrate database schemas
	if err := db.AutoMigrate(&models.Tweet{}, &models.NewsItem{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}
