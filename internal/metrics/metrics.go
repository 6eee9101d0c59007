package metrics

import (
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
)

type providerStats struct {
	calls           int
	errors          int
	rateLimitHits   int
	lastRetryAfter  time.Duration
	lastCallLatency time.Duration
}

// Recorder captures in-memory counters about source calls and ticker activity,
// mirroring them to OpenTelemetry instruments when configured.
type Recorder struct {
	mu       sync.Mutex
	stats    map[string]*providerStats
	alerts   map[string]int
	buttons  map[string]int
	restarts map[string]int
	polls    int
	failed   int
	otel     *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats:    make(map[string]*providerStats),
		alerts:   make(map[string]int),
		buttons:  make(map[string]int),
		restarts: make(map[string]int),
		otel:     otel,
	}
}

// RecordProviderAttempt increments counters for a provider call and stores the last observed latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	stats := r.ensureStats(provider)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, duration, err)
	}
}

// RecordRateLimit tracks that a provider response hit a rate limit and stores the last Retry-After.
func (r *Recorder) RecordRateLimit(provider string, retryAfter time.Duration) {
	if r == nil {
		return
	}

	stats := r.ensureStats(provider)
	stats.rateLimitHits++
	if retryAfter > 0 {
		stats.lastRetryAfter = retryAfter
	}
	if r.otel != nil {
		r.otel.recordRateLimit(provider, retryAfter)
	}
}

// ProviderCalls returns the total attempts recorded for a provider.
func (r *Recorder) ProviderCalls(provider string) int {
	return r.Snapshot(provider).Calls
}

// ProviderErrors returns the total failed attempts recorded for a provider.
func (r *Recorder) ProviderErrors(provider string) int {
	return r.Snapshot(provider).Errors
}

// RateLimitHits returns the number of rate limit events seen for a provider.
func (r *Recorder) RateLimitHits(provider string) int {
	return r.Snapshot(provider).RateLimitHits
}

// LastRetryAfter returns the most recent Retry-After recorded for a provider.
func (r *Recorder) LastRetryAfter(provider string) time.Duration {
	return r.Snapshot(provider).LastRetryAfter
}

// LastCallLatency returns the last recorded latency for a provider call.
func (r *Recorder) LastCallLatency(provider string) time.Duration {
	return r.Snapshot(provider).LastCallLatency
}

// Snapshot returns a copy of the current stats for the provider.
type Snapshot struct {
	Calls           int
	Errors          int
	RateLimitHits   int
	LastRetryAfter  time.Duration
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(provider string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	stats := r.snapshot(provider)
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		RateLimitHits:   stats.rateLimitHits,
		LastRetryAfter:  stats.lastRetryAfter,
		LastCallLatency: stats.lastCallLatency,
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// RecordPollerCycle tracks poll cycles, their game count, and cycles where every source failed.
func (r *Recorder) RecordPollerCycle(duration time.Duration, gameCount int, err error) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.polls++
	if err != nil {
		r.failed++
	}
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordPoller(duration, gameCount, err)
	}
}

// RecordScoreAlert counts an alert shown for a league.
func (r *Recorder) RecordScoreAlert(league string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.alerts[league]++
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordCounter(r.otel.scoreAlerts, 1, attribute.String(AttrLeague, league))
	}
}

// RecordButton counts an accepted button press.
func (r *Recorder) RecordButton(button string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.buttons[button]++
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordCounter(r.otel.buttonPresses, 1, attribute.String(AttrButton, button))
	}
}

// RecordRestart counts an engine restart by failure class.
func (r *Recorder) RecordRestart(class string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.restarts[class]++
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordCounter(r.otel.restarts, 1, attribute.String(AttrClass, class))
	}
}

// PollCycles returns total poll cycles and how many of them failed outright.
func (r *Recorder) PollCycles() (total, failed int) {
	if r == nil {
		return 0, 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.polls, r.failed
}

// ScoreAlerts returns alerts recorded for a league.
func (r *Recorder) ScoreAlerts(league string) int {
	return r.count(func() int { return r.alerts[league] })
}

// ButtonPresses returns accepted presses recorded for a button.
func (r *Recorder) ButtonPresses(button string) int {
	return r.count(func() int { return r.buttons[button] })
}

// Restarts returns restarts recorded for a failure class.
func (r *Recorder) Restarts(class string) int {
	return r.count(func() int { return r.restarts[class] })
}

func (r *Recorder) count(read func() int) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return read()
}

func (r *Recorder) ensureStats(provider string) *providerStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[provider]
	if !ok {
		stats = &providerStats{}
		r.stats[provider] = stats
	}
	return stats
}

func (r *Recorder) snapshot(provider string) providerStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	if stats, ok := r.stats[provider]; ok && stats != nil {
		return *stats
	}
	return providerStats{}
}
