// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Preset is a named [GenerationConfig] kept in the settings store.
type Preset struct {
	Name      string           `json:"name"`
	Config    GenerationConfig `json:"config"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}
