package container

import (
	"io"
	"log/slog"
)

// DefaultIDLength is the length of generated instance ids.
const DefaultIDLength = 9

// ── Container options ─────────────────────────────────────────────────────────

type options struct {
	kinds    []Kind
	logger   *slog.Logger
	observer Observer
	idLength int
	random   io.Reader
}

// Option configures a Container at construction time.
type Option func(*options)

// WithKinds restricts the bucket set to kinds. Invalid kinds are skipped.
func WithKinds(kinds ...Kind) Option {
	return func(o *options) {
		o.kinds = o.kinds[:0:0]
		for _, k := range kinds {
			if k.Valid() {
				o.kinds = append(o.kinds, k)
			}
		}
	}
}

// WithLogger sets the logger warnings are written to (default: slog.Default()).
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithObserver attaches an Observer, e.g. the Prometheus collector.
func WithObserver(observer Observer) Option {
	return func(o *options) {
		o.observer = observer
	}
}

// WithIDLength sets the length of generated ids. Values below 1 are ignored.
func WithIDLength(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.idLength = n
		}
	}
}

// WithRandom sets the entropy source for generated ids (default: crypto/rand).
func WithRandom(r io.Reader) Option {
	return func(o *options) {
		if r != nil {
			o.random = r
		}
	}
}

// ── Add options ───────────────────────────────────────────────────────────────

type addOptions struct {
	id       string
	override bool
}

// AddOption configures a single Add call.
type AddOption func(*addOptions)

// WithID stores the instance under id instead of a generated one.
func WithID(id string) AddOption {
	return func(o *addOptions) {
		o.id = id
	}
}

// WithOverride lets Add replace an instance already stored under the same id.
func WithOverride() AddOption {
	return func(o *addOptions) {
		o.override = true
	}
}
