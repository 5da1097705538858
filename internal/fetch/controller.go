// Package fetch provides the asynchronous data controller behind every
// gridview surface: a small state machine wrapping a user-supplied fetch
// operation and exposing data, loading, and error as observable state.
//
// Failures never escape the controller. A failed or panicking fetcher is
// normalized to an error string in the state while previously fetched
// data stays visible (stale-while-revalidate).
package fetch

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/taisazevedo9/gridview/internal/util"
)

// unknownErrText is used when a fetcher fails without a usable error,
// e.g. a panic with a non-error value.
const unknownErrText = "Unknown error"

// FetchFunc loads one result. It may block; the controller passes the
// caller's context through unchanged.
type FetchFunc[T any] func(ctx context.Context) (T, error)

// State is the externally visible controller state. Data holds the most
// recent successful result (Loaded reports whether one exists) and is
// retained both while a new fetch is in flight and after a failure.
type State[T any] struct {
	Data    T
	Loaded  bool
	Loading bool
	Err     string
}

// Option configures a Controller.
type Option[T any] func(*Controller[T])

// WithInitialLoad controls whether Init triggers one automatic refetch.
// Defaults to true.
func WithInitialLoad[T any](on bool) Option[T] {
	return func(c *Controller[T]) { c.initial = on }
}

// WithOnChange registers a state-change observer. It is invoked after
// every transition, outside the controller lock, on the goroutine that
// drove the transition.
func WithOnChange[T any](fn func(State[T])) Option[T] {
	return func(c *Controller[T]) { c.onChange = fn }
}

// WithLogger sets the debug logger.
func WithLogger[T any](log *slog.Logger) Option[T] {
	return func(c *Controller[T]) { c.log = log }
}

// Controller owns the fetch lifecycle for one view. All methods are safe
// for concurrent use; each instance owns its state exclusively.
type Controller[T any] struct {
	mu       sync.Mutex
	fn       FetchFunc[T]
	state    State[T]
	onChange func(State[T])
	log      *slog.Logger

	initial  bool
	inited   bool
	autoDone bool // the one automatic fetch has been issued
	disposed bool

	// Monotonic request sequence. Only the response matching the latest
	// issued request may write state, so a slow earlier fetch can never
	// clobber a newer result (last-start-wins).
	seq     uint64
	lastReq string
}

// New creates a controller around fn. Nothing is fetched until Init or
// Refetch is called.
func New[T any](fn FetchFunc[T], opts ...Option[T]) *Controller[T] {
	c := &Controller[T]{
		fn:      fn,
		initial: true,
		log:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Init marks the controller live and, when initial load is enabled,
// performs the one automatic refetch. Subsequent calls are no-ops.
func (c *Controller[T]) Init(ctx context.Context) {
	c.mu.Lock()
	if c.inited || c.disposed {
		c.mu.Unlock()
		return
	}
	c.inited = true
	fire := c.initial && !c.autoDone
	if fire {
		c.autoDone = true
	}
	c.mu.Unlock()

	if fire {
		c.Refetch(ctx)
	}
}

// SetInitialLoad flips the automatic-load flag. Turning it on after Init
// triggers exactly one additional automatic fetch if none has happened.
func (c *Controller[T]) SetInitialLoad(ctx context.Context, on bool) {
	c.mu.Lock()
	c.initial = on
	fire := on && c.inited && !c.autoDone && !c.disposed
	if fire {
		c.autoDone = true
	}
	c.mu.Unlock()

	if fire {
		c.Refetch(ctx)
	}
}

// SetFetch swaps the fetch operation. No refetch is triggered; the
// caller decides when the new fetcher runs.
func (c *Controller[T]) SetFetch(fn FetchFunc[T]) {
	c.mu.Lock()
	c.fn = fn
	c.mu.Unlock()
}

// State returns a copy of the current state.
func (c *Controller[T]) State() State[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// LastRequest returns the short id of the most recently issued fetch.
func (c *Controller[T]) LastRequest() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return util.ShortID(c.lastReq)
}

// Dispose tears the controller down. In-flight completions are discarded
// so state is never written after teardown.
func (c *Controller[T]) Dispose() {
	c.mu.Lock()
	c.disposed = true
	c.mu.Unlock()
}

// Refetch runs the fetcher once and applies the outcome to the state.
// It blocks until the fetch completes but never returns an error: a
// failure lands in State.Err while previous data is preserved. Repeated
// calls are not deduplicated; each runs the fetcher independently and
// only the latest-issued request may write state.
func (c *Controller[T]) Refetch(ctx context.Context) {
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return
	}
	c.seq++
	id := c.seq
	reqID := util.NewULID()
	c.lastReq = reqID
	fn := c.fn
	c.state.Loading = true
	c.state.Err = ""
	st := c.state
	notify := c.onChange
	c.mu.Unlock()

	if notify != nil {
		notify(st)
	}
	c.log.Debug("fetch started", "request", util.ShortID(reqID))

	data, err := runFetch(ctx, fn)

	c.mu.Lock()
	if c.disposed || id != c.seq {
		c.mu.Unlock()
		c.log.Debug("fetch result discarded", "request", util.ShortID(reqID))
		return
	}
	if err != nil {
		c.state.Loading = false
		c.state.Err = errText(err)
	} else {
		c.state = State[T]{Data: data, Loaded: true}
	}
	st = c.state
	notify = c.onChange
	c.mu.Unlock()

	if notify != nil {
		notify(st)
	}
	if err != nil {
		c.log.Debug("fetch failed", "request", util.ShortID(reqID), "error", errText(err))
	} else {
		c.log.Debug("fetch completed", "request", util.ShortID(reqID))
	}
}

// runFetch invokes the fetcher, converting panics into errors so no
// failure shape escapes the controller.
func runFetch[T any](ctx context.Context, fn FetchFunc[T]) (data T, err error) {
	if fn == nil {
		return data, errors.New(unknownErrText)
	}
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
			} else {
				err = errors.New(unknownErrText)
			}
		}
	}()
	return fn(ctx)
}

func errText(err error) string {
	msg := err.Error()
	if msg == "" {
		return unknownErrText
	}
	return msg
}
