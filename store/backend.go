package store

import (
	"context"
	"fmt"
	"log/slog"

	toml "github.com/pelletier/go-toml/v2"
)

// Backend stores encoded state blobs by key.
type Backend interface {
	// Load returns the blob for key. ok is false when the key has no
	// stored value; that is not an error.
	Load(ctx context.Context, key string) (data []byte, ok bool, err error)

	// Save stores the blob for key, replacing any previous value.
	Save(ctx context.Context, key string, data []byte) error
}

// Option configures a persistent cell built by Open.
type Option func(*openOptions)

type openOptions struct {
	logger *slog.Logger
}

// WithLogger sets the logger used to report write-through failures.
// Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *openOptions) {
		o.logger = logger
	}
}

// Open builds a persistent cell backed by b under the given key. The
// stored value is decoded from TOML on construction; after every
// reduction the new value is encoded and written back.
//
// Open always returns a usable cell. When the stored value is missing
// the cell starts at the zero value of T with a nil error; when the
// restore fails the cell also starts at the zero value and the failure
// is returned so the caller can decide how loudly to report it. Write
// failures after that are logged and otherwise ignored.
func Open[T any](ctx context.Context, b Backend, key string, opts ...Option) (*Store[T], error) {
	if b == nil {
		panic("store: Open called with nil backend")
	}

	o := openOptions{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	s := New[T]()
	s.persist = func(v T) {
		data, err := toml.Marshal(v)
		if err != nil {
			o.logger.Error("encode state", "key", key, "error", err)
			return
		}
		if err := b.Save(ctx, key, data); err != nil {
			o.logger.Error("persist state", "key", key, "error", err)
		}
	}

	raw, ok, err := b.Load(ctx, key)
	if err != nil {
		return s, fmt.Errorf("load %s: %w", key, err)
	}
	if !ok {
		return s, nil
	}
	if err := toml.Unmarshal(raw, &s.value); err != nil {
		var zero T
		s.value = zero
		return s, fmt.Errorf("decode %s: %w", key, err)
	}
	return s, nil
}
