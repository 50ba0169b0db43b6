package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-pass-gen/internal/config"
	"github.com/MKhiriev/go-pass-gen/internal/logger"
	"github.com/MKhiriev/go-pass-gen/internal/utils"
)

const rangePath = "/range/{prefix}"

type httpBreachAdapter struct {
	client *utils.HTTPClient

	addPadding bool

	logger *logger.Logger
}

// NewHTTPBreachAdapter constructs the HTTP implementation of
// [BreachRangeAdapter]. It normalises and validates cfg.BaseURL and
// configures the underlying HTTP client with the base URL, request timeout
// and User-Agent.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid URL.
func NewHTTPBreachAdapter(cfg config.Breach, logger *logger.Logger) (BreachRangeAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid breach base url: %w", err)
	}

	client := utils.NewHTTPClient(
		utils.WithBaseURL(baseURL),
		utils.WithTimeout(cfg.Timeout),
		utils.WithUserAgent(cfg.UserAgent),
	)

	return &httpBreachAdapter{
		client:     client,
		addPadding: !cfg.DisablePadding,
		logger:     logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Range implements [BreachRangeAdapter].
func (h *httpBreachAdapter) Range(ctx context.Context, prefix string) (map[string]int, error) {
	prefix = strings.ToUpper(prefix)
	if !isRangePrefix(prefix) {
		return nil, ErrInvalidPrefix
	}

	req := h.client.R().
		SetContext(ctx).
		SetPathParam("prefix", prefix).
		SetHeader("Accept", "text/plain")
	if h.addPadding {
		req.SetHeader("Add-Padding", "true")
	}

	resp, err := req.Get(rangePath)
	if err != nil {
		return nil, fmt.Errorf("range request failed: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	suffixes, skipped := ParseRange(resp.Body())
	if skipped > 0 {
		h.logger.Warn().
			Str("func", "httpBreachAdapter.Range").
			Str("prefix", prefix).
			Int("skipped", skipped).
			Msg("malformed range lines skipped")
	}

	return suffixes, nil
}

func isRangePrefix(prefix string) bool {
	if len(prefix) != 5 {
		return false
	}
	for i := 0; i < len(prefix); i++ {
		c := prefix[i]
		if (c < '0' || c > '9') && (c < 'A' || c > 'F') {
			return false
		}
	}
	return true
}
