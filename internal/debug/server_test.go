package debug

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bonfire-defense/internal/app"
	"bonfire-defense/internal/config"

	"go.uber.org/zap"
)

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHealth(t *testing.T) {
	rec := get(t, Routes(NewFeed(), zap.NewNop()), "/api/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type = %q", ct)
	}
}

func TestSnapshotBeforePublish(t *testing.T) {
	rec := get(t, Routes(NewFeed(), zap.NewNop()), "/api/snapshot")
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", rec.Code)
	}
}

func TestSnapshotServesLatest(t *testing.T) {
	g := app.NewGame(app.Options{Seed: 3})
	g.StartMatch()
	for i := 0; i < 200; i++ {
		g.Tick()
	}
	feed := NewFeed()
	feed.Publish(g.Snapshot())

	rec := get(t, Routes(feed, zap.NewNop()), "/api/snapshot")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", rec.Code, rec.Body)
	}
	var got struct {
		Tick  uint64 `json:"tick"`
		Phase string `json:"phase"`
		Wave  int    `json:"wave"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Tick != 200 || got.Phase != "active" || got.Wave != 1 {
		t.Errorf("snapshot = %+v", got)
	}
}

func TestPprofIndex(t *testing.T) {
	rec := get(t, Routes(NewFeed(), zap.NewNop()), "/debug/pprof/")
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}
}

func TestStartDisabled(t *testing.T) {
	if feed := Start(context.Background(), config.DebugSettings{Enabled: false}, zap.NewNop()); feed != nil {
		t.Error("disabled server must not return a feed")
	}
}
