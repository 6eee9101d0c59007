package poller

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/preston-bernstein/sports-ticker/internal/alerts"
	"github.com/preston-bernstein/sports-ticker/internal/domain/games"
	"github.com/preston-bernstein/sports-ticker/internal/domain/leagues"
	"github.com/preston-bernstein/sports-ticker/internal/filter"
	"github.com/preston-bernstein/sports-ticker/internal/logging"
	"github.com/preston-bernstein/sports-ticker/internal/metrics"
	"github.com/preston-bernstein/sports-ticker/internal/providers"
)

const (
	defaultFastInterval      = 30 * time.Second
	defaultSlowInterval      = 5 * time.Minute
	defaultIdleRetryInterval = 10 * time.Second
	defaultIdleRetryLimit    = 3
)

// ErrAllSourcesFailed marks a cycle in which no attempted source answered.
var ErrAllSourcesFailed = errors.New("poller: all sources failed")

// Config holds the cadence options of the scheduler.
type Config struct {
	Fast           time.Duration
	Slow           time.Duration
	IdleRetry      time.Duration
	IdleRetryLimit int
}

func (c Config) withDefaults() Config {
	if c.Fast <= 0 {
		c.Fast = defaultFastInterval
	}
	if c.Slow <= 0 {
		c.Slow = defaultSlowInterval
	}
	if c.IdleRetry <= 0 {
		c.IdleRetry = defaultIdleRetryInterval
	}
	if c.IdleRetryLimit < 0 {
		c.IdleRetryLimit = 0
	}
	return c
}

// Status describes the recent health of the poll cycle.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
	Interval            time.Duration
	NextPoll            time.Time
}

// IsReady reports whether the scheduler has had a recent success and is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// Result is the outcome of one poll cycle.
type Result struct {
	// Games is the collection to show next. It is the previous collection when
	// every attempted source failed.
	Games   []games.Game
	Changed []alerts.Change
	// Replaced is false when the previous collection was kept.
	Replaced  bool
	Attempted int
	Failed    int
	Interval  time.Duration
	// IdleRetry is set when the next poll was pulled forward because nothing is on.
	IdleRetry bool
}

// Scheduler owns the fetch cadence: it decides when to poll, fetches every
// enabled league, filters, detects score changes and picks the next interval.
// It is driven by the engine loop and never starts goroutines of its own.
type Scheduler struct {
	source   providers.GameSource
	leagues  []leagues.League
	detector alerts.Detector
	logger   *slog.Logger
	metrics  *metrics.Recorder
	cfg      Config
	now      func() time.Time

	interval    time.Duration
	next        time.Time
	idleRetries int

	statusMu sync.RWMutex
	status   Status
}

// New constructs a Scheduler polling the given leagues in order.
func New(source providers.GameSource, enabled []leagues.League, detector alerts.Detector, logger *slog.Logger, recorder *metrics.Recorder, cfg Config) *Scheduler {
	cfg = cfg.withDefaults()
	return &Scheduler{
		source:   source,
		leagues:  append([]leagues.League(nil), enabled...),
		detector: detector,
		logger:   logger,
		metrics:  recorder,
		cfg:      cfg,
		now:      time.Now,
		interval: cfg.Slow,
	}
}

// ShouldPoll reports whether the next-poll deadline has passed. A scheduler
// that has never polled is always due.
func (s *Scheduler) ShouldPoll(now time.Time) bool {
	return s.next.IsZero() || !now.Before(s.next)
}

// ForcePoll makes the scheduler due at now.
func (s *Scheduler) ForcePoll(now time.Time) {
	s.next = now
	s.publishDeadline()
}

// Interval returns the interval currently in effect.
func (s *Scheduler) Interval() time.Duration { return s.interval }

// NextPoll returns the next-poll deadline.
func (s *Scheduler) NextPoll() time.Time { return s.next }

// CompletePoll runs one poll cycle. Each enabled league allowed by f is
// fetched once; a failing league contributes nothing and is logged. When every
// attempted league fails the previous collection is kept and no changes are
// reported.
func (s *Scheduler) CompletePoll(ctx context.Context, now time.Time, previous []games.Game, f filter.Filter) Result {
	start := s.now()
	s.recordAttempt(now)

	var (
		collected []games.Game
		res       Result
		lastErr   error
	)
	for _, league := range s.leagues {
		if !f.AllowsLeague(league.Code) {
			continue
		}
		res.Attempted++
		got, err := s.fetch(ctx, league)
		if err != nil {
			res.Failed++
			lastErr = err
			s.logWarn("source fetch failed",
				slog.String(logging.FieldLeague, string(league.Code)),
				"error", err,
			)
			continue
		}
		collected = append(collected, f.Apply(got)...)
	}

	var cycleErr error
	if res.Attempted > 0 && res.Failed == res.Attempted {
		cycleErr = errors.Join(ErrAllSourcesFailed, lastErr)
		res.Games = previous
	} else {
		res.Games = collected
		res.Replaced = true
		res.Changed = s.detector.Detect(previous, collected)
	}

	res.Interval, res.IdleRetry = s.selectInterval(previous, res)
	s.advance(now, res.Interval, res.IdleRetry)

	elapsed := s.now().Sub(start)
	s.metrics.RecordPollerCycle(elapsed, len(res.Games), cycleErr)
	if cycleErr != nil {
		s.recordFailure(cycleErr, now)
		s.logError("poll cycle failed", cycleErr,
			slog.Int(logging.FieldFailed, res.Failed),
			slog.Int64(logging.FieldIntervalMS, res.Interval.Milliseconds()),
		)
		return res
	}

	s.recordSuccess(now)
	s.logInfo("poll cycle complete",
		slog.Int(logging.FieldCount, len(res.Games)),
		slog.Int(logging.FieldFailed, res.Failed),
		slog.Int("changed", len(res.Changed)),
		slog.Bool("idle_retry", res.IdleRetry),
		slog.Int64(logging.FieldIntervalMS, res.Interval.Milliseconds()),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
	)
	for _, c := range res.Changed {
		s.logInfo("score changed",
			slog.String(logging.FieldLeague, string(c.Game.League)),
			slog.String(logging.FieldMatchup, c.Game.Matchup()),
			slog.String(logging.FieldScore, c.Game.Scoreline()),
			slog.String("previous", c.Previous.Home+" - "+c.Previous.Away),
		)
	}
	return res
}

func (s *Scheduler) fetch(ctx context.Context, league leagues.League) ([]games.Game, error) {
	if s.source == nil {
		return nil, providers.ErrProviderUnavailable
	}
	return s.source.FetchGames(ctx, league)
}

// selectInterval picks the cadence for the next cycle: fast while anything is
// live, slow otherwise, with a bounded number of short idle retries while the
// collection stays empty.
func (s *Scheduler) selectInterval(previous []games.Game, res Result) (time.Duration, bool) {
	next := s.cfg.Slow
	if games.AnyLive(res.Games) {
		next = s.cfg.Fast
	}
	if next != s.interval {
		s.logInfo("poll interval changed",
			slog.Int64("from_ms", s.interval.Milliseconds()),
			slog.Int64(logging.FieldIntervalMS, next.Milliseconds()),
		)
		s.interval = next
	}

	if len(res.Games) > 0 {
		s.idleRetries = 0
		return next, false
	}
	if len(previous) == 0 && s.idleRetries < s.cfg.IdleRetryLimit {
		s.idleRetries++
		return next, true
	}
	return next, false
}

// advance moves the deadline by a fixed increment from the previous deadline
// so processing time does not accumulate as drift. A deadline that would still
// be in the past re-anchors at now.
func (s *Scheduler) advance(now time.Time, interval time.Duration, idleRetry bool) {
	switch {
	case idleRetry:
		s.next = now.Add(s.cfg.IdleRetry)
	case s.next.IsZero():
		s.next = now.Add(interval)
	default:
		s.next = s.next.Add(interval)
		if !s.next.After(now) {
			s.next = now.Add(interval)
		}
	}
	s.publishDeadline()
}

func (s *Scheduler) publishDeadline() {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	s.status.Interval = s.interval
	s.status.NextPoll = s.next
}

func (s *Scheduler) logInfo(msg string, args ...any) {
	logging.Info(s.logger, msg, args...)
}

func (s *Scheduler) logWarn(msg string, args ...any) {
	logging.Warn(s.logger, msg, args...)
}

func (s *Scheduler) logError(msg string, err error, args ...any) {
	logging.Error(s.logger, msg, err, args...)
}

func (s *Scheduler) recordAttempt(at time.Time) {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	s.status.LastAttempt = at
}

func (s *Scheduler) recordSuccess(at time.Time) {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	s.status.ConsecutiveFailures = 0
	s.status.LastError = ""
	s.status.LastSuccess = at
}

func (s *Scheduler) recordFailure(err error, at time.Time) {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	s.status.ConsecutiveFailures++
	if err != nil {
		s.status.LastError = err.Error()
	}
	s.status.LastAttempt = at
}

// Status returns a snapshot of the scheduler's recent health.
func (s *Scheduler) Status() Status {
	s.statusMu.RLock()
	defer s.statusMu.RUnlock()
	return s.status
}
