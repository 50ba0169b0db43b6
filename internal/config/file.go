package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// fileConfig mirrors [StructuredConfig] for the JSON and TOML sources.
// Durations are written as strings such as "30s".
type fileConfig struct {
	App struct {
		Version string `json:"version" toml:"version"`
	} `json:"app" toml:"app"`

	Server struct {
		HTTPAddress     string   `json:"http_address" toml:"http_address"`
		RequestTimeout  Duration `json:"request_timeout" toml:"request_timeout"`
		BreachRateLimit float64  `json:"breach_rate_limit" toml:"breach_rate_limit"`
		BreachRateBurst int      `json:"breach_rate_burst" toml:"breach_rate_burst"`
	} `json:"server" toml:"server"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn" toml:"dsn"`
		} `json:"db" toml:"db"`
	} `json:"storage" toml:"storage"`

	Breach struct {
		BaseURL        string   `json:"base_url" toml:"base_url"`
		Timeout        Duration `json:"timeout" toml:"timeout"`
		UserAgent      string   `json:"user_agent" toml:"user_agent"`
		DisablePadding bool     `json:"disable_padding" toml:"disable_padding"`
	} `json:"breach" toml:"breach"`

	Generator struct {
		MaxLength    int `json:"max_length" toml:"max_length"`
		MaxBulkCount int `json:"max_bulk_count" toml:"max_bulk_count"`
		MaxWordCount int `json:"max_word_count" toml:"max_word_count"`
	} `json:"generator" toml:"generator"`
}

// parseFile decodes the config file at path. Files ending in ".toml" are
// decoded as TOML, everything else as JSON.
func parseFile(path string) (*StructuredConfig, error) {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return parseTOML(path)
	}
	return parseJSON(path)
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var fileCfg fileConfig
	if err = json.NewDecoder(jsonFile).Decode(&fileCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return fileCfg.structured(), nil
}

func parseTOML(tomlFilePath string) (*StructuredConfig, error) {
	var fileCfg fileConfig
	if _, err := toml.DecodeFile(tomlFilePath, &fileCfg); err != nil {
		return nil, fmt.Errorf("error decoding toml configs: %w", err)
	}

	return fileCfg.structured(), nil
}

func (f fileConfig) structured() *StructuredConfig {
	return &StructuredConfig{
		App: App{Version: f.App.Version},
		Server: Server{
			HTTPAddress:     f.Server.HTTPAddress,
			RequestTimeout:  time.Duration(f.Server.RequestTimeout),
			BreachRateLimit: f.Server.BreachRateLimit,
			BreachRateBurst: f.Server.BreachRateBurst,
		},
		Storage: Storage{DB: DB{DSN: f.Storage.DB.DSN}},
		Breach: Breach{
			BaseURL:        f.Breach.BaseURL,
			Timeout:        time.Duration(f.Breach.Timeout),
			UserAgent:      f.Breach.UserAgent,
			DisablePadding: f.Breach.DisablePadding,
		},
		Generator: Generator{
			MaxLength:    f.Generator.MaxLength,
			MaxBulkCount: f.Generator.MaxBulkCount,
			MaxWordCount: f.Generator.MaxWordCount,
		},
	}
}

// Duration is a wrapper around time.Duration that supports JSON and TOML
// decoding from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		return d.UnmarshalText([]byte(value))
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// UnmarshalText is used by the TOML decoder.
func (d *Duration) UnmarshalText(text []byte) error {
	tmp, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}
