package config

import "time"

type config struct {
	Exchange ExchangeConfig
	Database DatabaseConfig
	OpenAI   OpenAIConfig
	Trading  TradingConfig
}

type ExchangeConfig struct {
	APIKey     string
	SecretKey  string
	UseTestnet bool
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
}

type OpenAIConfig struct {
	APIKey string
	Model  string
}

type TradingConfig struct {
	Symbol        string
	QuoteOrderQty float64 // entry order size in quote currency (USDT)

	// Bracket order multipliers applied to the realized fill price.
	ProfitMultiplier float64 // e.g. 0.25 for +25% take profit
	LossMultiplier   float64 // e.g. 0.08 for -8% stop loss

	// Entry-price monitoring.
	Tolerance     float64       // absolute slippage band around the entry price
	PollInterval  time.Duration // delay between monitor ticks
	MonitorWindow time.Duration // how long to wait for the entry price

	Extended bool // run the extended indicator set
}
