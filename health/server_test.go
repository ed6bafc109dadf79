package health

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestServer_AlwaysOK(t *testing.T) {
	server := NewServer(":0", slog.New(slog.NewTextHandler(io.Discard, nil)))

	requests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/"},
		{http.MethodGet, "/healthz"},
		{http.MethodHead, "/"},
		{http.MethodPost, "/anything/else"},
	}
	for _, r := range requests {
		t.Run(r.method+" "+r.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(r.method, r.path, nil)
			server.Handler().ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			if r.method != http.MethodHead {
				assert.Equal(t, "OK", w.Body.String())
			}
		})
	}
}

func TestServer_RunStopsOnCancel(t *testing.T) {
	server := NewServer("127.0.0.1:0", slog.New(slog.NewTextHandler(io.Discard, nil)))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- server.Run(ctx)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(shutdownTimeout + time.Second):
		t.Fatal("server did not stop")
	}
}
