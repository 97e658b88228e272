package themed

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"

	"github.com/opencode-ai/themeshell/internal/loop"
	"github.com/opencode-ai/themeshell/internal/palette"
	"github.com/opencode-ai/themeshell/internal/scope"
	"github.com/opencode-ai/themeshell/internal/theme"
	"github.com/rs/zerolog"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Server implements ThemeServiceServer on top of a theme engine. Every call
// that touches the engine is marshalled onto the engine's loop.
//
// Theme responses are Structs of the form
// {"primary": string, "surface": string, "darkMode": bool}. UpdateColors adds
// "strategy" ("delegate" or "direct").
// ListPalettes takes {"kind": string} and returns
// {"kind": string, "palettes": [{"name": string, "colors": {step: hex}}]}.
type Server struct {
	engine *theme.Engine
	loop   *loop.Loop
	root   *scope.Root
	logger zerolog.Logger

	startedAt time.Time
	hostname  string
	version   string

	// last is written by the propagation observer, which runs on the loop.
	last *theme.Propagation
}

// ServerOption configures the Server.
type ServerOption func(*Server)

// WithVersion sets the daemon version.
func WithVersion(version string) ServerOption {
	return func(s *Server) {
		s.version = version
	}
}

// NewServer creates the gRPC theme service. It must be called before the loop
// starts running.
func NewServer(engine *theme.Engine, l *loop.Loop, root *scope.Root, logger zerolog.Logger, opts ...ServerOption) *Server {
	hostname, _ := os.Hostname()

	s := &Server{
		engine:    engine,
		loop:      l,
		root:      root,
		logger:    logger,
		startedAt: time.Now(),
		hostname:  hostname,
		version:   "dev",
	}

	for _, opt := range opts {
		opt(s)
	}

	engine.OnPropagation(func(p theme.Propagation) {
		s.last = &p
	})

	return s
}

// GetTheme returns the current selection.
func (s *Server) GetTheme(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	var resp *structpb.Struct
	var encErr error
	if err := s.do(ctx, func() {
		resp, encErr = stateToStruct(s.engine.State(), nil)
	}); err != nil {
		return nil, err
	}
	if encErr != nil {
		return nil, status.Error(codes.Internal, encErr.Error())
	}
	return resp, nil
}

// ListPalettes returns one catalog with its ramps.
func (s *Server) ListPalettes(_ context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	kind, err := parseKind(req)
	if err != nil {
		return nil, err
	}

	items := make([]any, 0)
	for _, entry := range palette.Entries(kind) {
		colors := make(map[string]any, len(entry.Palette))
		for step, value := range entry.Palette {
			colors[string(step)] = value
		}
		items = append(items, map[string]any{
			"name":   entry.Name,
			"colors": colors,
		})
	}

	resp, err := structpb.NewStruct(map[string]any{
		"kind":     string(kind),
		"palettes": items,
	})
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to encode palettes: %v", err)
	}
	return resp, nil
}

// UpdateColors selects and propagates a palette. An update that arrives while
// another propagation still holds the guard is dropped and answered with
// Aborted; nothing changed, so the caller may retry.
func (s *Server) UpdateColors(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	kind, err := parseKind(req)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.GetFields()["name"].GetStringValue())
	if name == "" {
		return nil, status.Error(codes.InvalidArgument, "name is required")
	}
	if !palette.Has(kind, name) {
		return nil, notFound(kind, name)
	}

	var resp *structpb.Struct
	var encErr error
	dropped := false
	if err := s.do(ctx, func() {
		s.last = nil
		s.engine.UpdateColors(kind, name)
		if s.last == nil {
			dropped = true
			return
		}
		resp, encErr = stateToStruct(s.engine.State(), map[string]any{"strategy": string(s.last.Strategy)})
	}); err != nil {
		return nil, err
	}
	if dropped {
		s.logger.Debug().Str("kind", string(kind)).Str("name", name).Msg("palette update dropped, propagation in progress")
		return nil, status.Errorf(codes.Aborted, "%s palette %q not applied: another update is in progress", kind, name)
	}
	if encErr != nil {
		return nil, status.Error(codes.Internal, encErr.Error())
	}

	s.logger.Info().
		Str("kind", string(kind)).
		Str("name", name).
		Str("strategy", resp.GetFields()["strategy"].GetStringValue()).
		Msg("palette update requested")

	return resp, nil
}

// SetDarkMode sets dark mode.
func (s *Server) SetDarkMode(ctx context.Context, req *wrapperspb.BoolValue) (*structpb.Struct, error) {
	return s.mutate(ctx, func() {
		s.engine.SetDarkMode(req.GetValue())
	})
}

// ToggleDarkMode flips dark mode.
func (s *Server) ToggleDarkMode(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	return s.mutate(ctx, s.engine.ToggleDarkMode)
}

// GetStylesheet renders the root scope as CSS.
func (s *Server) GetStylesheet(ctx context.Context, _ *emptypb.Empty) (*wrapperspb.StringValue, error) {
	var css string
	if err := s.do(ctx, func() {
		css = s.root.CSS()
	}); err != nil {
		return nil, err
	}
	return wrapperspb.String(css), nil
}

// Uptime reports how long the server has existed.
func (s *Server) Uptime() time.Duration {
	return time.Since(s.startedAt)
}

func (s *Server) mutate(ctx context.Context, fn func()) (*structpb.Struct, error) {
	var resp *structpb.Struct
	var encErr error
	if err := s.do(ctx, func() {
		fn()
		resp, encErr = stateToStruct(s.engine.State(), nil)
	}); err != nil {
		return nil, err
	}
	if encErr != nil {
		return nil, status.Error(codes.Internal, encErr.Error())
	}
	return resp, nil
}

func (s *Server) do(ctx context.Context, fn func()) error {
	err := s.loop.Do(ctx, fn)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, loop.ErrLoopStopped):
		return status.Error(codes.Unavailable, "theme daemon is shutting down")
	default:
		return status.FromContextError(err).Err()
	}
}

func parseKind(req *structpb.Struct) (palette.Kind, error) {
	raw := req.GetFields()["kind"].GetStringValue()
	if raw == "" {
		return "", status.Error(codes.InvalidArgument, "kind is required")
	}
	kind, err := palette.ParseKind(raw)
	if err != nil {
		return "", status.Error(codes.InvalidArgument, err.Error())
	}
	return kind, nil
}

func notFound(kind palette.Kind, name string) error {
	suggestions := palette.Suggest(kind, name, 3)
	if len(suggestions) == 0 {
		return status.Errorf(codes.NotFound, "%s palette %q not found", kind, name)
	}
	return status.Errorf(codes.NotFound, "%s palette %q not found (did you mean %s?)", kind, name, strings.Join(suggestions, ", "))
}
