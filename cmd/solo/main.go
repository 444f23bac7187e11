package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/bqsolo/internal/ai"
	"github.com/udisondev/bqsolo/internal/config"
	"github.com/udisondev/bqsolo/internal/db"
	"github.com/udisondev/bqsolo/internal/game/geo"
	"github.com/udisondev/bqsolo/internal/gameserver"
	"github.com/udisondev/bqsolo/internal/journal"
	"github.com/udisondev/bqsolo/internal/localclient"
	"github.com/udisondev/bqsolo/internal/protocol"
	"github.com/udisondev/bqsolo/internal/schedule"
	"github.com/udisondev/bqsolo/internal/settings"
	"github.com/udisondev/bqsolo/internal/spawn"
)

const DefaultConfigPath = "config/solo.yaml"

func main() {
	configPath := flag.String("config", DefaultConfigPath, "path to YAML config")
	override := flag.String("singleplayer", "", `single-player override, e.g. "1" or "no"`)
	remember := flag.Bool("remember", false, "store the resolved single-player flag")
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	opts := options{
		configPath: config.ResolvePath(*configPath),
		remember:   *remember,
	}
	if *override != "" {
		opts.override = "singleplayer=" + *override
	}

	if err := run(ctx, opts, os.Stdin, os.Stdout); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

type options struct {
	configPath string
	override   string
	remember   bool
}

func run(ctx context.Context, opts options, in io.Reader, out io.Writer) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// stdout carries game events, so logs go to stderr.
	slog.SetDefault(slog.New(newLogHandler(cfg, os.Stderr)))
	ai.EnableDebugLogging(cfg.SlogLevel() == slog.LevelDebug)

	slog.Info("bqsolo starting", "config", opts.configPath, "log_level", cfg.LogLevel)

	enabled, err := resolveSinglePlayer(ctx, cfg.Preferences, opts)
	if err != nil {
		return err
	}
	if !enabled {
		return errors.New("single-player mode is disabled; run with -singleplayer=1 or set preferences.override")
	}

	templates, err := spawn.LoadTemplates(cfg.World.TemplatesFile)
	if err != nil {
		return fmt.Errorf("loading templates: %w", err)
	}

	var geoMap geo.Map
	if cfg.World.MapFile != "" {
		grid, err := geo.LoadGrid(cfg.World.MapFile)
		if err != nil {
			return fmt.Errorf("loading map: %w", err)
		}
		geoMap = grid
	}

	writer := newBatchWriter(out)
	var client *localclient.Client
	var pushSink protocol.Sink = protocol.SinkFunc(func(b []protocol.Event) { client.Push(b) })
	var replyObserver protocol.Sink

	if cfg.Journal.Enabled {
		jw := journal.NewWriter(cfg.Journal.Dir)
		defer func() {
			if err := jw.Close(); err != nil {
				slog.Error("closing journal", "error", err)
			}
		}()
		pushSink = journal.NewSink(jw, journal.SourcePush, pushSink)
		replyObserver = journal.NewSink(jw, journal.SourceReply, nil)
		slog.Info("event journal enabled", "dir", cfg.Journal.Dir)
	}

	srv := gameserver.NewServer(cfg.World, templates, geoMap, pushSink)
	client = localclient.New(srv, writer)
	client.SetReplyObserver(replyObserver)
	client.OnConnected(func() { slog.Info("local client connected") })
	client.Connect()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return srv.Run(gctx)
	})

	g.Go(func() error {
		defer srv.Close()
		return pumpMessages(gctx, in, client)
	})

	return g.Wait()
}

// resolveSinglePlayer opens the preference store only for the duration
// of the check.
func resolveSinglePlayer(ctx context.Context, cfg config.Preferences, opts options) (bool, error) {
	store, err := db.OpenPreferences(ctx, cfg)
	if err != nil {
		return false, fmt.Errorf("opening preferences: %w", err)
	}

	if store != nil {
		defer store.Close()
	}
	resolver := settings.NewResolver(store, cfg.Override, opts.override)

	enabled := resolver.IsEnabled(ctx)
	if opts.remember {
		resolver.Remember(ctx, enabled)
	}
	slog.Info("single-player mode resolved", "enabled", enabled, "driver", cfg.Driver)
	return enabled, nil
}

// pumpMessages forwards input lines to the client until EOF or ctx ends.
// The scanner goroutine may outlive the call while blocked on a read.
func pumpMessages(ctx context.Context, in io.Reader, client *localclient.Client) error {
	type line struct {
		msg []any
		err error
	}
	lines := make(chan line)

	go func() {
		defer close(lines)
		reader := protocol.NewReader(in)
		for {
			msg, err := reader.ReadMessage()
			if errors.Is(err, io.EOF) {
				return
			}
			select {
			case lines <- line{msg: msg, err: err}:
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case l, ok := <-lines:
			if !ok {
				slog.Info("input closed")
				return nil
			}
			switch {
			case errors.Is(l.err, protocol.ErrEmptyMessage):
				continue
			case errors.Is(l.err, protocol.ErrMalformedMessage):
				slog.Warn("skipping input line", "error", l.err)
				continue
			case l.err != nil:
				return fmt.Errorf("reading input: %w", l.err)
			}
			if err := client.SendMessage(ctx, l.msg); err != nil {
				if errors.Is(err, schedule.ErrStopped) || errors.Is(err, context.Canceled) {
					return nil
				}
				return fmt.Errorf("sending message: %w", err)
			}
		}
	}
}
