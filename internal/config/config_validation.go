// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or one of the ErrInvalid*
// sentinels wrapped with the offending field otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty http address", ErrInvalidServerConfigs)
	}
	if cfg.Server.BreachRateLimit <= 0 || cfg.Server.BreachRateBurst <= 0 {
		return fmt.Errorf("%w: breach rate limit and burst must be positive", ErrInvalidServerConfigs)
	}
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}
	if err := cfg.Breach.validate(); err != nil {
		return err
	}

	return cfg.Generator.validate()
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}
	if err := cfg.Breach.validate(); err != nil {
		return err
	}

	return cfg.Generator.validate()
}

func (b Breach) validate() error {
	u, err := url.Parse(b.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: base url %q", ErrInvalidBreachConfigs, b.BaseURL)
	}
	if b.Timeout <= 0 {
		return fmt.Errorf("%w: non-positive timeout", ErrInvalidBreachConfigs)
	}
	return nil
}

func (g Generator) validate() error {
	if g.MaxLength <= 0 || g.MaxBulkCount <= 0 || g.MaxWordCount <= 0 {
		return ErrInvalidGeneratorConfigs
	}
	return nil
}
