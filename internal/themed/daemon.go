package themed

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"

	"github.com/opencode-ai/themeshell/internal/config"
	"github.com/opencode-ai/themeshell/internal/loop"
	"github.com/opencode-ai/themeshell/internal/scope"
	"github.com/opencode-ai/themeshell/internal/theme"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
)

// Options configure the daemon runtime.
type Options struct {
	Hostname string
	Port     int
	Version  string

	// Limits overrides DefaultLimits.
	Limits map[string]Limit
}

// Daemon owns the engine loop and the gRPC server in front of it.
type Daemon struct {
	logger zerolog.Logger
	opts   Options
	loop   *loop.Loop

	server     *Server
	grpcServer *grpc.Server
}

// New constructs a daemon. The engine must already be bound to l.
func New(engine *theme.Engine, l *loop.Loop, root *scope.Root, logger zerolog.Logger, opts Options) (*Daemon, error) {
	if engine == nil {
		return nil, errors.New("engine is required")
	}
	if l == nil {
		return nil, errors.New("loop is required")
	}
	if root == nil {
		return nil, errors.New("root scope is required")
	}
	if opts.Hostname == "" {
		opts.Hostname = "127.0.0.1"
	}
	if opts.Port == 0 {
		opts.Port = config.DefaultPort
	}

	server := NewServer(engine, l, root, logger, WithVersion(opts.Version))

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(NewRateLimiter(opts.Limits).UnaryServerInterceptor()),
	)
	RegisterThemeServiceServer(grpcServer, server)

	return &Daemon{
		logger:     logger,
		opts:       opts,
		loop:       l,
		server:     server,
		grpcServer: grpcServer,
	}, nil
}

// Run drives the engine loop and serves gRPC until ctx is canceled.
func (d *Daemon) Run(ctx context.Context) error {
	if ctx == nil {
		return errors.New("context is required")
	}

	bindAddr := d.bindAddr()
	listener, err := net.Listen("tcp", bindAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", bindAddr, err)
	}

	return d.serve(ctx, listener)
}

func (d *Daemon) serve(ctx context.Context, listener net.Listener) error {
	d.logger.Info().
		Str("bind", listener.Addr().String()).
		Str("version", d.opts.Version).
		Msg("theme daemon starting")

	// The loop outlives ctx so in-flight calls can finish during GracefulStop.
	loopCtx, stopLoop := context.WithCancel(context.Background())
	defer stopLoop()

	loopErr := make(chan error, 1)
	go func() {
		loopErr <- d.loop.Run(loopCtx)
	}()

	serveErr := make(chan error, 1)
	go func() {
		if err := d.grpcServer.Serve(listener); err != nil {
			serveErr <- err
		}
		close(serveErr)
	}()

	var result error
	select {
	case <-ctx.Done():
		d.logger.Info().Msg("theme daemon shutting down")
		d.grpcServer.GracefulStop()
	case err := <-serveErr:
		if err != nil {
			result = fmt.Errorf("gRPC server error: %w", err)
		}
	case err := <-loopErr:
		d.grpcServer.Stop()
		if err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("engine loop error: %w", err)
		}
		return nil
	}

	stopLoop()
	if err := <-loopErr; err != nil && !errors.Is(err, context.Canceled) {
		d.logger.Warn().Err(err).Msg("engine loop stopped with error")
	}

	d.logger.Info().Msg("theme daemon shutdown complete")
	return result
}

func (d *Daemon) bindAddr() string {
	return net.JoinHostPort(d.opts.Hostname, strconv.Itoa(d.opts.Port))
}

// Server returns the underlying gRPC service implementation.
func (d *Daemon) Server() *Server {
	return d.server
}
