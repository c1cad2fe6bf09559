package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "index.html"), []byte("home"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "work"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "work", "index.html"), []byte("work"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "videos"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "videos", "hero-main-loop.mp4"), []byte("mp4"), 0o644))
	return root
}

func TestHandler(t *testing.T) {
	s := New(Config{Root: newTestRoot(t)})
	h := s.Handler()

	tests := []struct {
		path     string
		wantCode int
		wantBody string
	}{
		{path: "/", wantCode: http.StatusOK, wantBody: "home"},
		{path: "/work/", wantCode: http.StatusOK, wantBody: "work"},
		{path: "/videos/hero-main-loop.mp4", wantCode: http.StatusOK, wantBody: "mp4"},
		{path: "/videos/", wantCode: http.StatusNotFound},
		{path: "/missing.html", wantCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, "no-cache, no-store, must-revalidate", rec.Header().Get("Cache-Control"))
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestServe_InitialBuildFailure(t *testing.T) {
	buildErr := errors.New("boom")
	s := New(Config{
		Root:  t.TempDir(),
		Build: func(context.Context) error { return buildErr },
	})

	err := s.Serve(context.Background())
	assert.ErrorIs(t, err, buildErr)
}

func TestServe_ShutsDownOnCancel(t *testing.T) {
	var builds atomic.Int32
	s := New(Config{
		Port:      0,
		Root:      newTestRoot(t),
		WatchDirs: []string{t.TempDir()},
		Build: func(context.Context) error {
			builds.Add(1)
			return nil
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
	assert.Equal(t, int32(1), builds.Load())
}

func TestWatch_RebuildsOnChange(t *testing.T) {
	src := t.TempDir()
	var builds atomic.Int32

	s := New(Config{
		Root:      t.TempDir(),
		WatchDirs: []string{src, filepath.Join(src, "missing")},
		Debounce:  20 * time.Millisecond,
		Build: func(context.Context) error {
			builds.Add(1)
			return nil
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.watch(ctx) }()

	// Give the watcher time to register.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(src, "page.md"), []byte("hello"), 0o644))

	assert.Eventually(t, func() bool { return builds.Load() >= 1 }, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}
