package cli

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/opencode-ai/themeshell/internal/models"
	"github.com/opencode-ai/themeshell/internal/palette"
	"github.com/opencode-ai/themeshell/internal/themed"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// backend is where theme commands read and write the selection: the
// in-process engine, or a running daemon with --remote.
type backend interface {
	State(ctx context.Context) (models.ThemeState, error)
	Apply(ctx context.Context, kind palette.Kind, name string) (models.ThemeState, string, error)
	SetDarkMode(ctx context.Context, value bool) (models.ThemeState, error)
	ToggleDarkMode(ctx context.Context) (models.ThemeState, error)
	Stylesheet(ctx context.Context) (string, error)
	Close() error
}

func openBackend(ctx context.Context) (backend, error) {
	if themeRemote {
		remote, err := dialRemote()
		if err != nil {
			return nil, err
		}
		return remote, nil
	}
	rt, err := newRuntime(ctx)
	if err != nil {
		return nil, err
	}
	return &localBackend{rt: rt}, nil
}

type localBackend struct {
	rt *runtime
}

func (b *localBackend) State(context.Context) (models.ThemeState, error) {
	return b.rt.engine.State(), nil
}

func (b *localBackend) Apply(_ context.Context, kind palette.Kind, name string) (models.ThemeState, string, error) {
	if !palette.Has(kind, name) {
		return models.ThemeState{}, "", unknownPaletteError(kind, name)
	}
	strategy := b.rt.apply(kind, name)
	return b.rt.engine.State(), strategy, nil
}

func (b *localBackend) SetDarkMode(_ context.Context, value bool) (models.ThemeState, error) {
	b.rt.engine.SetDarkMode(value)
	b.rt.loop.RunPending()
	return b.rt.engine.State(), nil
}

func (b *localBackend) ToggleDarkMode(context.Context) (models.ThemeState, error) {
	b.rt.engine.ToggleDarkMode()
	b.rt.loop.RunPending()
	return b.rt.engine.State(), nil
}

func (b *localBackend) Stylesheet(context.Context) (string, error) {
	return b.rt.root.CSS(), nil
}

func (b *localBackend) Close() error {
	return b.rt.Close()
}

type remoteBackend struct {
	conn   *grpc.ClientConn
	client *themed.Client
}

func dialRemote() (*remoteBackend, error) {
	cfg, err := requireConfig()
	if err != nil {
		return nil, err
	}
	addr := net.JoinHostPort(cfg.Daemon.Host, strconv.Itoa(cfg.Daemon.Port))
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to theme daemon at %s: %w", addr, err)
	}
	return &remoteBackend{conn: conn, client: themed.NewClient(conn)}, nil
}

func (b *remoteBackend) State(ctx context.Context) (models.ThemeState, error) {
	return b.client.GetTheme(ctx)
}

func (b *remoteBackend) Apply(ctx context.Context, kind palette.Kind, name string) (models.ThemeState, string, error) {
	return b.client.UpdateColors(ctx, string(kind), name)
}

func (b *remoteBackend) SetDarkMode(ctx context.Context, value bool) (models.ThemeState, error) {
	return b.client.SetDarkMode(ctx, value)
}

func (b *remoteBackend) ToggleDarkMode(ctx context.Context) (models.ThemeState, error) {
	return b.client.ToggleDarkMode(ctx)
}

func (b *remoteBackend) Stylesheet(ctx context.Context) (string, error) {
	return b.client.GetStylesheet(ctx)
}

func (b *remoteBackend) Close() error {
	return b.conn.Close()
}

func unknownPaletteError(kind palette.Kind, name string) error {
	suggestions := palette.Suggest(kind, name, 3)
	if len(suggestions) == 0 {
		return fmt.Errorf("unknown %s palette %q", kind, name)
	}
	return fmt.Errorf("unknown %s palette %q (did you mean %s?)", kind, name, strings.Join(suggestions, ", "))
}
