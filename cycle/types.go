package cycle

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to Find.
	ErrGraphNil = errors.New("cycle: graph is nil")

	// ErrNoCycle is returned by Find when no positive-flow edge closes into a
	// cycle. It is a normal termination signal, not a failure.
	ErrNoCycle = errors.New("cycle: no cycle")
)

// Option configures Find.
type Option func(*Options)

// Options holds configurable parameters for Find.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnCandidate, if non-nil, is called for every starting edge tried, in
	// scan order, with its endpoints and edge ID.
	OnCandidate func(u, v, edgeID int)
}

// DefaultOptions returns Options with a background context and no hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		OnCandidate: func(int, int, int) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnCandidate registers a hook for every starting edge tried.
func WithOnCandidate(fn func(u, v, edgeID int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnCandidate = fn
		}
	}
}
