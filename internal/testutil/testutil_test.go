package testutil

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/preston-bernstein/sports-ticker/internal/domain/leagues"
)

func TestClockHelpers(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	if got := NowAt(now)(); !got.Equal(now) {
		t.Fatalf("expected fixed time, got %v", got)
	}
	if MustParseRFC3339(now.Format(time.RFC3339)) != now {
		t.Fatalf("expected parse round trip")
	}
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic on invalid RFC3339")
		}
	}()
	MustParseRFC3339("not-a-time")
}

func TestFakeClockSleepAdvances(t *testing.T) {
	start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	c := NewFakeClock(start)
	var seen time.Time
	c.OnSleep = func(now time.Time) { seen = now }

	c.Sleep(2 * time.Second)
	c.Advance(time.Second)
	c.Sleep(500 * time.Millisecond)

	if got := c.Now(); !got.Equal(start.Add(3500 * time.Millisecond)) {
		t.Fatalf("unexpected now %s", got)
	}
	if !seen.Equal(c.Now()) {
		t.Fatalf("expected hook to see latest time, got %s", seen)
	}
	if got := c.Sleeps(); len(got) != 2 || got[0] != 2*time.Second {
		t.Fatalf("unexpected sleeps %v", got)
	}
}

func TestFixturesHelper(t *testing.T) {
	g := LiveGame(leagues.NHL, "BOS", "NYR", "1", "0")
	if !g.IsLive() || g.Identity().String() != "NHL-BOS-NYR" {
		t.Fatalf("unexpected live fixture %+v", g)
	}
	if s := ScheduledGame(leagues.NFL, "KC", "BUF"); !s.IsScheduled() {
		t.Fatalf("unexpected scheduled fixture %+v", s)
	}
	if f := FinalGame(leagues.MLB, "NYY", "BOS", "5", "4"); f.StatusText != "FINAL" {
		t.Fatalf("unexpected final fixture %+v", f)
	}
	if got := Leagues(leagues.NHL, leagues.NFL); len(got) != 2 || got[1].Code != leagues.NFL {
		t.Fatalf("unexpected leagues %+v", got)
	}
}

func TestServeHelpers(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	rr := Serve(handler, http.MethodPost, "/test", strings.NewReader("{}"))
	AssertStatus(t, rr, http.StatusCreated)
	var body map[string]bool
	DecodeJSON(t, rr, &body)
	if !body["ok"] {
		t.Fatalf("expected ok=true")
	}

	req := httptest.NewRequest(http.MethodGet, "/req", nil)
	rr2 := ServeRequest(handler, req)
	AssertStatus(t, rr2, http.StatusCreated)
}

func TestLoggerAndMetricsHelpers(t *testing.T) {
	logger, buf := NewBufferLogger()
	logger.Info("hello", "k", "v")
	if buf.Len() == 0 {
		t.Fatalf("expected buffered log output")
	}
	rec, shutdown := NewRecorderWithShutdown()
	if rec == nil || shutdown == nil {
		t.Fatalf("expected recorder and shutdown")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("expected nil shutdown error, got %v", err)
	}
}
