package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

func Load() (*config, error) {
	if err := godotenv.Load(); err != nil {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	return &config{
		Exchange: ExchangeConfig{
			APIKey:     os.Getenv("BINANCE_API_KEY"),
			SecretKey:  os.Getenv("BINANCE_SECRET_KEY"),
			UseTestnet: EnvtoBool(os.Getenv("BINANCE_USE_TESTNET")),
		},
		Database: DatabaseConfig{
			Host:     os.Getenv("DB_HOST"),
			Port:     EnvtoInt(os.Getenv("DB_PORT")),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			DBName:   os.Getenv("DB_NAME"),
		},
		OpenAI: OpenAIConfig{
			APIKey: os.Getenv("OPENAI_API_KEY"),
			Model:  os.Getenv("OPENAI_MODEL"),
		},
		Trading: TradingConfig{
			Symbol:           envOrDefault("TRADING_SYMBOL", "SOLUSDT"),
			QuoteOrderQty:    EnvtoFloat(os.Getenv("QUOTE_ORDER_QTY"), 10.0),
			ProfitMultiplier: EnvtoFloat(os.Getenv("PROFIT_MULTIPLIER"), 0.25),
			LossMultiplier:   EnvtoFloat(os.Getenv("LOSS_MULTIPLIER"), 0.08),
			Tolerance:        EnvtoFloat(os.Getenv("ENTRY_TOLERANCE"), 0.10),
			PollInterval:     EnvtoDuration(os.Getenv("POLL_INTERVAL"), 15*time.Second),
			MonitorWindow:    EnvtoDuration(os.Getenv("MONITOR_WINDOW"), 24*time.Hour),
			Extended:         EnvtoBool(os.Getenv("EXTENDED_ANALYSIS")),
		},
	}, nil
}

// helper env(string) to int
func EnvtoInt(s string) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return i
}

// helper env(string) to float with default
func EnvtoFloat(s string, def float64) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return f
}

// helper env(string) to bool
func EnvtoBool(s string) bool {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false
	}
	return b
}

// helper env(string) to duration with default
func EnvtoDuration(s string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return def
	}
	return d
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
