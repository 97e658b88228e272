// Package themestate persists the user's theme selection.
package themestate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/opencode-ai/themeshell/internal/db"
	"github.com/opencode-ai/themeshell/internal/models"
	"github.com/opencode-ai/themeshell/internal/palette"
	"github.com/rs/zerolog"
)

// StorageKey is the durable slot holding the serialized state.
const StorageKey = "app-theme"

// ErrNotFound is returned by a Storage when the key has never been written.
var ErrNotFound = db.ErrSettingNotFound

// Storage is a durable key-value slot. db.SettingsRepository implements it.
type Storage interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// storedState mirrors the serialized record. Pointers distinguish missing
// fields from zero values.
type storedState struct {
	Primary  *string `json:"primary"`
	Surface  *string `json:"surface"`
	DarkMode *bool   `json:"darkMode"`
}

// Load reads the persisted state. It never fails: a missing key, malformed
// content, missing fields, names outside the catalogs or a storage error all
// yield models.DefaultThemeState and a diagnostic log line.
func Load(ctx context.Context, storage Storage, logger zerolog.Logger) models.ThemeState {
	defaults := models.DefaultThemeState()
	if storage == nil {
		return defaults
	}

	raw, err := storage.Get(ctx, StorageKey)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			logger.Debug().Str("key", StorageKey).Msg("no stored theme, using defaults")
		} else {
			logger.Warn().Err(err).Str("key", StorageKey).Msg("failed to read theme config, using defaults")
		}
		return defaults
	}

	state, err := decode(raw)
	if err != nil {
		logger.Warn().Err(err).Str("key", StorageKey).Msg("failed to parse theme config, using defaults")
		return defaults
	}
	return state
}

func decode(raw string) (models.ThemeState, error) {
	var stored storedState
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		return models.ThemeState{}, err
	}
	if stored.Primary == nil || stored.Surface == nil || stored.DarkMode == nil {
		return models.ThemeState{}, errors.New("stored theme is missing fields")
	}
	if !palette.Has(palette.KindPrimary, *stored.Primary) {
		return models.ThemeState{}, fmt.Errorf("unknown primary %q", *stored.Primary)
	}
	if !palette.Has(palette.KindSurface, *stored.Surface) {
		return models.ThemeState{}, fmt.Errorf("unknown surface %q", *stored.Surface)
	}

	return models.ThemeState{
		Primary:  *stored.Primary,
		Surface:  *stored.Surface,
		DarkMode: *stored.DarkMode,
	}, nil
}

// Save writes state to the durable slot. Failures are logged, not returned.
func Save(ctx context.Context, storage Storage, state models.ThemeState, logger zerolog.Logger) {
	if storage == nil {
		return
	}

	data, err := json.Marshal(state)
	if err != nil {
		logger.Warn().Err(err).Msg("failed to encode theme config")
		return
	}
	if err := storage.Set(ctx, StorageKey, string(data)); err != nil {
		logger.Warn().Err(err).Str("key", StorageKey).Msg("failed to save theme config")
	}
}
