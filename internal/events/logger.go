// Package events provides helper functions for recording theme events.
package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/opencode-ai/themeshell/internal/models"
)

// ThemeEntityID is the entity every theme event is recorded against. It
// matches the durable storage key of the theme state.
const ThemeEntityID = "app-theme"

// Repository is the minimal interface needed to write events.
type Repository interface {
	Create(ctx context.Context, event *models.Event) error
}

// LogPaletteApplied records a completed palette propagation.
func LogPaletteApplied(ctx context.Context, repo Repository, kind, name, strategy string) error {
	if repo == nil {
		return fmt.Errorf("event repository is required")
	}
	if kind == "" || name == "" {
		return fmt.Errorf("palette kind and name are required")
	}

	payload, err := json.Marshal(models.PaletteAppliedPayload{
		Kind:     kind,
		Name:     name,
		Strategy: strategy,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal palette payload: %w", err)
	}

	return repo.Create(ctx, &models.Event{
		Type:       models.EventTypePaletteApplied,
		EntityType: models.EntityTypeTheme,
		EntityID:   ThemeEntityID,
		Payload:    payload,
	})
}

// LogDarkModeChanged records a dark/light switch.
func LogDarkModeChanged(ctx context.Context, repo Repository, darkMode bool) error {
	if repo == nil {
		return fmt.Errorf("event repository is required")
	}

	payload, err := json.Marshal(models.DarkModeChangedPayload{DarkMode: darkMode})
	if err != nil {
		return fmt.Errorf("failed to marshal dark mode payload: %w", err)
	}

	return repo.Create(ctx, &models.Event{
		Type:       models.EventTypeDarkModeChanged,
		EntityType: models.EntityTypeTheme,
		EntityID:   ThemeEntityID,
		Payload:    payload,
	})
}

// LogStateRestored records the selection the shell started with.
func LogStateRestored(ctx context.Context, repo Repository, state models.ThemeState) error {
	if repo == nil {
		return fmt.Errorf("event repository is required")
	}

	return repo.Create(ctx, &models.Event{
		Type:       models.EventTypeStateRestored,
		EntityType: models.EntityTypeTheme,
		EntityID:   ThemeEntityID,
		Metadata: map[string]string{
			"primary":   state.Primary,
			"surface":   state.Surface,
			"dark_mode": fmt.Sprintf("%t", state.DarkMode),
		},
	})
}
