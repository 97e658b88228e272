package themestate

import (
	"context"
	"errors"
	"testing"

	"github.com/opencode-ai/themeshell/internal/db"
	"github.com/opencode-ai/themeshell/internal/models"
	"github.com/opencode-ai/themeshell/internal/palette"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type countingStorage struct {
	*MemoryStorage
	sets int
}

func (c *countingStorage) Set(ctx context.Context, key, value string) error {
	c.sets++
	return c.MemoryStorage.Set(ctx, key, value)
}

func TestLoadDefaultsWhenMissing(t *testing.T) {
	state := Load(context.Background(), NewMemoryStorage(), zerolog.Nop())
	require.Equal(t, models.DefaultThemeState(), state)
}

func TestLoadDefaultsOnCorruptContent(t *testing.T) {
	cases := map[string]string{
		"not json":        "{{{",
		"missing fields":  `{"primary":"teal"}`,
		"unknown primary": `{"primary":"chartreuse","surface":"zinc","darkMode":false}`,
		"unknown surface": `{"primary":"teal","surface":"plaid","darkMode":false}`,
		"wrong types":     `{"primary":1,"surface":"zinc","darkMode":"yes"}`,
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			storage := NewMemoryStorage()
			require.NoError(t, storage.Set(context.Background(), StorageKey, raw))

			state := Load(context.Background(), storage, zerolog.Nop())
			require.Equal(t, models.ThemeState{Primary: "rose", Surface: "slate", DarkMode: true}, state)
		})
	}
}

func TestLoadIgnoresExtraFields(t *testing.T) {
	storage := NewMemoryStorage()
	require.NoError(t, storage.Set(context.Background(), StorageKey,
		`{"primary":"teal","surface":"zinc","darkMode":false,"fontSize":14}`))

	state := Load(context.Background(), storage, zerolog.Nop())
	require.Equal(t, models.ThemeState{Primary: "teal", Surface: "zinc", DarkMode: false}, state)
}

func TestLoadDefaultsOnStorageError(t *testing.T) {
	storage := NewMemoryStorage()
	storage.Err = errors.New("disk on fire")

	state := Load(context.Background(), storage, zerolog.Nop())
	require.Equal(t, models.DefaultThemeState(), state)

	// Save must swallow the failure too.
	Save(context.Background(), storage, state, zerolog.Nop())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()

	for _, primary := range palette.Names(palette.KindPrimary) {
		for _, surface := range []string{"slate", "shadow", "cream"} {
			for _, dark := range []bool{true, false} {
				want := models.ThemeState{Primary: primary, Surface: surface, DarkMode: dark}
				Save(ctx, storage, want, zerolog.Nop())
				require.Equal(t, want, Load(ctx, storage, zerolog.Nop()))
			}
		}
	}
}

func TestRoundTripThroughSQLite(t *testing.T) {
	ctx := context.Background()
	database, err := db.OpenInMemory()
	require.NoError(t, err)
	defer database.Close()
	_, err = database.MigrateUp(ctx)
	require.NoError(t, err)

	repo := db.NewSettingsRepository(database)
	require.Equal(t, models.DefaultThemeState(), Load(ctx, repo, zerolog.Nop()))

	want := models.ThemeState{Primary: "emerald", Surface: "ocean", DarkMode: false}
	Save(ctx, repo, want, zerolog.Nop())
	require.Equal(t, want, Load(ctx, repo, zerolog.Nop()))
}

func TestStoreWritesThroughOnChange(t *testing.T) {
	storage := &countingStorage{MemoryStorage: NewMemoryStorage()}
	store := NewStore(context.Background(), storage, zerolog.Nop())

	var seen []models.ThemeState
	unsubscribe := store.Subscribe(func(state models.ThemeState) {
		seen = append(seen, state)
	})

	store.SetPrimary("teal")
	store.SetPrimary("teal")
	store.SetSurface("zinc")
	store.SetDarkMode(false)

	require.Equal(t, 3, storage.sets, "unchanged values must not save")
	require.Len(t, seen, 3)
	require.Equal(t, models.ThemeState{Primary: "teal", Surface: "zinc", DarkMode: false}, store.State())

	reloaded := Load(context.Background(), storage, zerolog.Nop())
	require.Equal(t, store.State(), reloaded)

	unsubscribe()
	store.SetDarkMode(true)
	require.Len(t, seen, 3)
	require.Equal(t, 4, storage.sets)
}
