package config

import "time"

// Defaults applied after every other source.
const (
	DefaultHTTPAddress     = "localhost:8080"
	DefaultRequestTimeout  = 30 * time.Second
	DefaultBreachRateLimit = 5
	DefaultBreachRateBurst = 10
	DefaultDSN             = "go-pass-gen.db"
	DefaultBreachBaseURL   = "https://api.pwnedpasswords.com"
	DefaultBreachTimeout   = 10 * time.Second
	DefaultBreachUserAgent = "go-pass-gen"
	DefaultMaxLength       = 4096
	DefaultMaxBulkCount    = 10000
	DefaultMaxWordCount    = 64
	DefaultVersion         = "0.1.0"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{Version: DefaultVersion},
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			RequestTimeout:  DefaultRequestTimeout,
			BreachRateLimit: DefaultBreachRateLimit,
			BreachRateBurst: DefaultBreachRateBurst,
		},
		Storage: Storage{DB: DB{DSN: DefaultDSN}},
		Breach: Breach{
			BaseURL:   DefaultBreachBaseURL,
			Timeout:   DefaultBreachTimeout,
			UserAgent: DefaultBreachUserAgent,
		},
		Generator: Generator{
			MaxLength:    DefaultMaxLength,
			MaxBulkCount: DefaultMaxBulkCount,
			MaxWordCount: DefaultMaxWordCount,
		},
	}
}
