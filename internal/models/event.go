package models

import (
	"encoding/json"
	"errors"
	"strings"
	"time"
)

// EventType categorizes events in the system.
type EventType string

const (
	// Theme events
	EventTypePaletteApplied  EventType = "theme.palette_applied"
	EventTypeDarkModeChanged EventType = "theme.dark_mode_changed"
	EventTypeStateRestored   EventType = "theme.state_restored"
)

// EntityType identifies the type of entity an event relates to.
type EntityType string

const (
	EntityTypeTheme EntityType = "theme"
)

// Event represents an append-only log entry.
type Event struct {
	// ID is the unique identifier for the event.
	ID string `json:"id"`

	// Timestamp is when the event occurred.
	Timestamp time.Time `json:"timestamp"`

	// Type categorizes the event.
	Type EventType `json:"type"`

	// EntityType identifies what kind of entity this event relates to.
	EntityType EntityType `json:"entity_type"`

	// EntityID is the ID of the related entity.
	EntityID string `json:"entity_id"`

	// Payload contains event-specific data.
	Payload json.RawMessage `json:"payload,omitempty"`

	// Metadata contains additional context.
	Metadata map[string]string `json:"metadata,omitempty"`
}

// Validate checks if the event is valid.
func (e *Event) Validate() error {
	var missing []string
	if strings.TrimSpace(string(e.Type)) == "" {
		missing = append(missing, "type")
	}
	if strings.TrimSpace(string(e.EntityType)) == "" {
		missing = append(missing, "entity_type")
	}
	if strings.TrimSpace(e.EntityID) == "" {
		missing = append(missing, "entity_id")
	}
	if len(missing) > 0 {
		return errors.New("event is missing " + strings.Join(missing, ", "))
	}
	return nil
}

// PaletteAppliedPayload is the payload for theme.palette_applied events.
type PaletteAppliedPayload struct {
	Kind     string `json:"kind"`
	Name     string `json:"name"`
	Strategy string `json:"strategy"`
}

// DarkModeChangedPayload is the payload for theme.dark_mode_changed events.
type DarkModeChangedPayload struct {
	DarkMode bool `json:"dark_mode"`
}
