package demo

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/redis/go-redis/v9"

	"github.com/teaform/teaform/store"
)

// stateKey names the persisted signup draft in file and redis stores.
const stateKey = "signup"

// Options are command line overrides applied on top of the
// environment configuration.
type Options struct {
	Flavor      string
	StateDir    string
	RedisURL    string
	NoAutoReset bool
	LogFile     string
}

func (c Config) withOverrides(opts Options) Config {
	if opts.Flavor != "" {
		c.Flavor = opts.Flavor
	}
	if opts.StateDir != "" {
		c.StateDir = opts.StateDir
	}
	if opts.RedisURL != "" {
		c.RedisURL = opts.RedisURL
	}
	if opts.NoAutoReset {
		c.AutoReset = false
	}
	if opts.LogFile != "" {
		c.LogFile = opts.LogFile
	}
	return c
}

// Run starts the demo UI and blocks until it exits or ctx is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}
	cfg = cfg.withOverrides(opts)
	if err := cfg.Validate(); err != nil {
		return err
	}

	closeLog, err := setupLogging(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	cell, closeCell, err := openCell(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeCell()

	p := tea.NewProgram(NewModel(cfg, cell),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	// The form needs the program's send function before it can
	// dispatch, and the program does not exist until now. Handing it
	// over as the first message keeps all wiring inside the loop.
	go p.Send(wireMsg{send: p.Send})

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

// setupLogging routes slog output away from the terminal the UI owns.
func setupLogging(path string) (func(), error) {
	if path == "" {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
		return func() {}, nil
	}
	fh, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(fh, nil)))
	return func() { _ = fh.Close() }, nil
}

// openCell builds the state cell for the configured flavor. Restore
// failures on persistent flavors are logged, not fatal; the demo
// starts from a zero draft instead.
func openCell(ctx context.Context, cfg Config) (*store.Store[Signup], func(), error) {
	noop := func() {}

	switch cfg.Flavor {
	case FlavorMemory:
		return store.New[Signup](), noop, nil

	case FlavorGlobal:
		return store.Global[Signup](), noop, nil

	case FlavorFile:
		backend, err := store.NewFileBackend(cfg.StateDir)
		if err != nil {
			return nil, nil, fmt.Errorf("file backend: %w", err)
		}
		cell, err := store.Open[Signup](ctx, backend, stateKey)
		if err != nil {
			slog.Warn("restore signup draft", "key", stateKey, "error", err)
		}
		return cell, noop, nil

	case FlavorRedis:
		redisOpts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, nil, fmt.Errorf("parse redis url: %w", err)
		}
		client := redis.NewClient(redisOpts)

		pingCtx, cancel := context.WithTimeout(ctx, cfg.RedisTimeout)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("connect redis: %w", err)
		}

		var backendOpts []store.RedisOption
		if cfg.RedisTTL > 0 {
			backendOpts = append(backendOpts, store.WithTTL(cfg.RedisTTL))
		}
		backend := store.NewRedisBackend(client, backendOpts...)
		cell, err := store.Open[Signup](ctx, backend, stateKey)
		if err != nil {
			slog.Warn("restore signup draft", "key", stateKey, "error", err)
		}
		return cell, func() { _ = client.Close() }, nil
	}
	return nil, nil, fmt.Errorf("unknown store flavor %q", cfg.Flavor)
}
