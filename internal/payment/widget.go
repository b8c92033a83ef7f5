package payment

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
)

// WidgetState tracks the lifecycle of a hosted payment widget render
// attempt.
type WidgetState int

const (
	// StateLoading means the provider SDK has not confirmed readiness yet.
	StateLoading WidgetState = iota
	// StateReady means the widget rendered and is interactive.
	StateReady
	// StateError means the SDK failed to load or the widget failed to
	// initialize. No automatic retry happens; a new detail-view visit
	// starts a fresh attempt.
	StateError
)

func (s WidgetState) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateError:
		return "error"
	default:
		return "loading"
	}
}

// ScriptLoader fetches the provider SDK script. The fetch happens at most
// once per process; once loaded, every later render attempt reuses it. A
// failed fetch leaves the loader unloaded so the next attempt tries again.
type ScriptLoader struct {
	sdkURL string
	client *http.Client
	logger *zap.Logger

	mu     sync.Mutex
	loaded bool
}

// NewScriptLoader creates a loader for the SDK at sdkURL.
func NewScriptLoader(sdkURL string, logger *zap.Logger) *ScriptLoader {
	return &ScriptLoader{
		sdkURL: sdkURL,
		client: &http.Client{Timeout: 15 * time.Second},
		logger: logger,
	}
}

// EnsureLoaded fetches the SDK script if it has not been fetched yet.
// Concurrent callers share a single fetch; the call is idempotent once the
// script is confirmed loaded.
func (l *ScriptLoader) EnsureLoaded(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.loaded {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.sdkURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build sdk request: %w", err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch payment sdk: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("payment sdk responded with status %d", resp.StatusCode)
	}

	if _, err := io.Copy(io.Discard, resp.Body); err != nil {
		return fmt.Errorf("failed to read payment sdk: %w", err)
	}

	l.loaded = true
	l.logger.Info("Payment SDK loaded", zap.String("url", l.sdkURL))
	return nil
}

// Widget is one render attempt of the hosted payment button for a single
// detail-view visit. It starts in StateLoading and settles exactly once
// into StateReady or StateError, unless torn down first.
type Widget struct {
	ButtonID string

	cancel context.CancelFunc
	done   chan struct{}

	mu    sync.Mutex
	state WidgetState
	err   error
	torn  bool
}

// Render starts an asynchronous render attempt bound to buttonID. Each
// call returns a fresh Widget, so no partial state from an earlier attempt
// leaks into this one. The attempt is tied to ctx: when the consumer
// navigates away it should call Teardown (or let ctx expire), after which
// a late-arriving result is discarded rather than applied.
func (l *ScriptLoader) Render(ctx context.Context, buttonID string) *Widget {
	ctx, cancel := context.WithCancel(ctx)
	w := &Widget{
		ButtonID: buttonID,
		cancel:   cancel,
		done:     make(chan struct{}),
		state:    StateLoading,
	}

	go func() {
		err := l.EnsureLoaded(ctx)
		w.settle(err)
	}()

	return w
}

// settle records the outcome of the render attempt unless the widget was
// already torn down.
func (w *Widget) settle(err error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.torn {
		// The consuming view is gone; dropping the result here is the
		// still-mounted guard.
		return
	}

	if err != nil {
		w.state = StateError
		w.err = err
	} else {
		w.state = StateReady
	}
	close(w.done)
}

// Teardown cancels a pending render attempt. It is safe to call more than
// once and after the widget has settled.
func (w *Widget) Teardown() {
	w.mu.Lock()
	if !w.torn {
		select {
		case <-w.done:
			// Already settled; nothing left to guard against.
		default:
			w.torn = true
		}
	}
	w.mu.Unlock()

	w.cancel()
}

// Done is closed when the attempt settles. It never closes after Teardown
// preempted the result, so waiters must also watch their own context.
func (w *Widget) Done() <-chan struct{} {
	return w.done
}

// State returns the current lifecycle state.
func (w *Widget) State() WidgetState {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Err returns the failure that moved the widget into StateError, if any.
func (w *Widget) Err() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.err
}
