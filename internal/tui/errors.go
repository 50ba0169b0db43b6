// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-pass-gen/internal/service"
)

var ErrUserQuit = errors.New("user quit the program")

// humanizeError turns service errors into a line fit for the status bar.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, service.ErrPresetNotFound):
		return "Preset no longer exists"
	case errors.Is(err, service.ErrInvalidDataProvided):
		return "Invalid settings: " + strings.TrimPrefix(err.Error(), service.ErrInvalidDataProvided.Error()+": ")
	}

	return err.Error()
}
