package themestate

import (
	"context"
	"sync"
	"time"

	"github.com/opencode-ai/themeshell/internal/models"
	"github.com/rs/zerolog"
)

// DefaultSaveTimeout bounds a single write-through save.
const DefaultSaveTimeout = 2 * time.Second

// Store holds the live ThemeState and writes it through to storage on every
// change. Setters that do not change the value do not save.
type Store struct {
	storage     Storage
	logger      zerolog.Logger
	saveTimeout time.Duration

	mu        sync.RWMutex
	state     models.ThemeState
	listeners map[int]func(models.ThemeState)
	nextID    int
}

// NewStore loads the persisted state and returns a Store around it.
func NewStore(ctx context.Context, storage Storage, logger zerolog.Logger) *Store {
	return &Store{
		storage:     storage,
		logger:      logger,
		saveTimeout: DefaultSaveTimeout,
		state:       Load(ctx, storage, logger),
		listeners:   make(map[int]func(models.ThemeState)),
	}
}

// State returns a copy of the current state.
func (s *Store) State() models.ThemeState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// SetPrimary updates the primary name.
func (s *Store) SetPrimary(name string) {
	s.update(func(state *models.ThemeState) { state.Primary = name })
}

// SetSurface updates the surface name.
func (s *Store) SetSurface(name string) {
	s.update(func(state *models.ThemeState) { state.Surface = name })
}

// SetDarkMode updates the dark mode flag.
func (s *Store) SetDarkMode(value bool) {
	s.update(func(state *models.ThemeState) { state.DarkMode = value })
}

// Subscribe registers fn to run after every saved change and returns a
// function that removes it.
func (s *Store) Subscribe(fn func(models.ThemeState)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

func (s *Store) update(mutate func(*models.ThemeState)) {
	s.mu.Lock()
	next := s.state
	mutate(&next)
	if next == s.state {
		s.mu.Unlock()
		return
	}
	s.state = next

	listeners := make([]func(models.ThemeState), 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), s.saveTimeout)
	Save(ctx, s.storage, next, s.logger)
	cancel()

	for _, fn := range listeners {
		fn(next)
	}
}
