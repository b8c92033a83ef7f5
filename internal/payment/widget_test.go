package payment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// sdkServer fakes the provider SDK endpoint, counting fetches and failing
// while broken is set.
type sdkServer struct {
	*httptest.Server
	hits   atomic.Int64
	broken atomic.Bool
}

func newSDKServer() *sdkServer {
	s := &sdkServer{}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.hits.Add(1)
		if s.broken.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte("window.paypal = {};"))
	}))
	return s
}

func waitSettled(t *testing.T, w *Widget) {
	t.Helper()
	select {
	case <-w.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("widget never settled")
	}
}

func TestRender_ReadyAndIdempotentLoad(t *testing.T) {
	sdk := newSDKServer()
	defer sdk.Close()

	loader := NewScriptLoader(sdk.URL, zap.NewNop())

	w := loader.Render(context.Background(), "btn-1")
	waitSettled(t, w)

	assert.Equal(t, StateReady, w.State())
	assert.NoError(t, w.Err())
	assert.Equal(t, "btn-1", w.ButtonID)

	// A second visit reuses the already-loaded script.
	w2 := loader.Render(context.Background(), "btn-1")
	waitSettled(t, w2)

	assert.Equal(t, StateReady, w2.State())
	assert.Equal(t, int64(1), sdk.hits.Load())
}

func TestRender_LoadFailureIsErrorState(t *testing.T) {
	sdk := newSDKServer()
	defer sdk.Close()
	sdk.broken.Store(true)

	loader := NewScriptLoader(sdk.URL, zap.NewNop())

	w := loader.Render(context.Background(), "btn-1")
	waitSettled(t, w)

	assert.Equal(t, StateError, w.State())
	assert.Error(t, w.Err())
	assert.Equal(t, int64(1), sdk.hits.Load(), "no automatic retry on failure")

	// Re-entering the view starts a fresh attempt, which may now succeed.
	sdk.broken.Store(false)
	w2 := loader.Render(context.Background(), "btn-1")
	waitSettled(t, w2)

	assert.Equal(t, StateReady, w2.State())
	assert.Equal(t, int64(2), sdk.hits.Load())
}

func TestTeardown_LateResultIsDiscarded(t *testing.T) {
	release := make(chan struct{})
	var hits atomic.Int64
	sdk := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		<-release
		w.Write([]byte("window.paypal = {};"))
	}))
	defer sdk.Close()
	defer close(release)

	loader := NewScriptLoader(sdk.URL, zap.NewNop())

	w := loader.Render(context.Background(), "btn-1")

	// The consumer navigates away before the script resolves.
	for hits.Load() == 0 {
		time.Sleep(time.Millisecond)
	}
	w.Teardown()

	// The attempt resolves late; the result must not be applied.
	select {
	case <-w.Done():
		t.Fatal("torn-down widget must not settle")
	case <-time.After(100 * time.Millisecond):
	}
	assert.Equal(t, StateLoading, w.State())
}

func TestTeardown_AfterSettleIsSafe(t *testing.T) {
	sdk := newSDKServer()
	defer sdk.Close()

	loader := NewScriptLoader(sdk.URL, zap.NewNop())

	w := loader.Render(context.Background(), "btn-1")
	waitSettled(t, w)

	w.Teardown()
	w.Teardown()

	assert.Equal(t, StateReady, w.State())
}

func TestEnsureLoaded_CancelledContext(t *testing.T) {
	sdk := newSDKServer()
	defer sdk.Close()

	loader := NewScriptLoader(sdk.URL, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := loader.EnsureLoaded(ctx)
	require.Error(t, err)

	// The failed attempt leaves the loader unloaded for the next visit.
	require.NoError(t, loader.EnsureLoaded(context.Background()))
}

func TestWidgetStateString(t *testing.T) {
	assert.Equal(t, "loading", StateLoading.String())
	assert.Equal(t, "ready", StateReady.String())
	assert.Equal(t, "error", StateError.String())
}
