package jsonc

import (
	"fmt"
	"log/slog"

	"github.com/KimNorgaard/go-jsonc/internal/formatter"
)

// Option configures parsing, pruning and marshaling.
type Option func(*options) error

type options struct {
	maxDepth int
	compact  bool
	colors   *formatter.Colors
	logger   *slog.Logger
}

func newOptions(opts []Option) (*options, error) {
	o := &options{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// MaxDepth returns an Option that limits how deeply objects and arrays may
// nest. Parsing has no limit unless this option is given.
//
// The depth n must be a positive integer.
func MaxDepth(n int) Option {
	return func(o *options) error {
		if n <= 0 {
			return fmt.Errorf("jsonc: max depth must be a positive integer")
		}
		o.maxDepth = n
		return nil
	}
}

// Compact omits the space after the colon of every member, so that
// {"n": 5} marshals as {"n":"5"} instead of {"n": "5"}.
func Compact() Option {
	return func(o *options) error {
		o.compact = true
		return nil
	}
}

// WithColor paints marshaled output with ANSI colors.
func WithColor(enabled bool) Option {
	return func(o *options) error {
		o.colors = nil
		if enabled {
			o.colors = formatter.NewColors()
		}
		return nil
	}
}

// Logger sets the logger that receives debug records for each pipeline
// stage. By default nothing is logged.
func Logger(l *slog.Logger) Option {
	return func(o *options) error {
		if l == nil {
			return fmt.Errorf("jsonc: logger must not be nil")
		}
		o.logger = l
		return nil
	}
}

func (o *options) formatterOpts() []formatter.Option {
	var res []formatter.Option
	if o.compact {
		res = append(res, formatter.Compact())
	}
	if o.colors != nil {
		res = append(res, formatter.WithColors(o.colors))
	}
	return res
}
