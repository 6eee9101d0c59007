// Package engine runs the ticker loop: button edges, then polling, then
// display, once per tick, with every pause an explicit bounded sleep.
package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/sports-ticker/internal/alerts"
	"github.com/preston-bernstein/sports-ticker/internal/domain/games"
	"github.com/preston-bernstein/sports-ticker/internal/filter"
	"github.com/preston-bernstein/sports-ticker/internal/input"
	"github.com/preston-bernstein/sports-ticker/internal/logging"
	"github.com/preston-bernstein/sports-ticker/internal/metrics"
	"github.com/preston-bernstein/sports-ticker/internal/poller"
	"github.com/preston-bernstein/sports-ticker/internal/rotation"
	"github.com/preston-bernstein/sports-ticker/internal/store"
)

const (
	StartupMessage = "SPORTS TICKER"
	LoadingMessage = "Loading..."

	defaultTickInterval = 100 * time.Millisecond
)

// AlertConfig shapes the flash sequence shown for each score change.
type AlertConfig struct {
	Flashes int
	On      time.Duration
	Off     time.Duration
	Hold    time.Duration
}

// Config holds the loop's timing options.
type Config struct {
	TickInterval    time.Duration
	DisplayInterval time.Duration
	DebounceWindow  time.Duration
	ModeAckHold     time.Duration
	StartupHold     time.Duration
	Alert           AlertConfig
}

// DefaultConfig returns the stock ticker timings.
func DefaultConfig() Config {
	return Config{
		TickInterval:    defaultTickInterval,
		DisplayInterval: 5 * time.Second,
		DebounceWindow:  300 * time.Millisecond,
		ModeAckHold:     1500 * time.Millisecond,
		StartupHold:     2 * time.Second,
		Alert: AlertConfig{
			Flashes: 3,
			On:      500 * time.Millisecond,
			Off:     200 * time.Millisecond,
			Hold:    2 * time.Second,
		},
	}
}

// Deps are the collaborators of one engine run.
type Deps struct {
	Scheduler *poller.Scheduler
	Filter    *filter.State
	Display   Display
	Buttons   input.Reader
	Clock     Clock
	Sink      Sink
	Guard     *MemoryGuard
	Logger    *slog.Logger
	Metrics   *metrics.Recorder
	RunID     string
}

// Session is the engine-owned view of what is on the ticker.
type Session struct {
	Games  []games.Game
	Cursor int
}

// Engine owns the session and filter state for one run. It is not safe for
// concurrent use; the loop goroutine is the only mutator.
type Engine struct {
	cfg       Config
	scheduler *poller.Scheduler
	filter    *filter.State
	display   Display
	buttons   input.Reader
	clock     Clock
	sink      Sink
	guard     *MemoryGuard
	logger    *slog.Logger
	metrics   *metrics.Recorder
	runID     string

	cycler    *rotation.Cycler
	debouncer *input.Debouncer
	session   Session
}

// New wires an engine. Scheduler, Filter and Display are required.
func New(cfg Config, deps Deps) *Engine {
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = defaultTickInterval
	}
	clock := deps.Clock
	if clock == nil {
		clock = SystemClock()
	}
	return &Engine{
		cfg:       cfg,
		scheduler: deps.Scheduler,
		filter:    deps.Filter,
		display:   deps.Display,
		buttons:   deps.Buttons,
		clock:     clock,
		sink:      deps.Sink,
		guard:     deps.Guard,
		logger:    deps.Logger,
		metrics:   deps.Metrics,
		runID:     deps.RunID,
		cycler:    rotation.NewCycler(cfg.DisplayInterval),
		debouncer: input.NewDebouncer(cfg.DebounceWindow),
	}
}

// Session returns a copy of the current session.
func (e *Engine) Session() Session {
	return Session{
		Games:  append([]games.Game(nil), e.session.Games...),
		Cursor: e.session.Cursor,
	}
}

// Run shows the startup screen and then ticks until ctx is done or a tick
// fails. Cancellation is only observed between ticks.
func (e *Engine) Run(ctx context.Context) error {
	if err := e.display.RenderMessage(StartupMessage, LoadingMessage); err != nil {
		return err
	}
	e.clock.Sleep(e.cfg.StartupHold)
	logging.Info(e.logger, "engine started",
		slog.Int(logging.FieldCount, e.filter.ModeCount()),
		slog.Int64("display_interval_ms", e.cycler.Interval().Milliseconds()),
	)

	for {
		if ctx.Err() != nil {
			logging.Info(e.logger, "engine stopped")
			return nil
		}
		if err := e.Tick(ctx); err != nil {
			return err
		}
		e.clock.Sleep(e.cfg.TickInterval)
	}
}

// Tick runs one loop iteration: buttons, then poll, then display.
func (e *Engine) Tick(ctx context.Context) error {
	if err := e.handleButtons(); err != nil {
		return err
	}
	if err := e.handlePoll(ctx); err != nil {
		return err
	}
	return e.handleDisplay()
}

func (e *Engine) handleButtons() error {
	if e.buttons == nil {
		return nil
	}
	// Both edges of one tick share its timestamp, so the second is debounced.
	now := e.clock.Now()
	for _, b := range []input.Button{input.ButtonUp, input.ButtonDown} {
		if !e.buttons.Edge(b) {
			continue
		}
		if !e.debouncer.Accept(now) {
			logging.Debug(e.logger, "button edge debounced", slog.String("button", b.String()))
			continue
		}
		if err := e.applyButton(b); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) applyButton(b input.Button) error {
	switch b {
	case input.ButtonUp:
		e.filter.AdvanceMode()
	case input.ButtonDown:
		e.filter.ToggleFavorites()
	}
	e.metrics.RecordButton(b.String())

	ack := ModeAck{
		Mode:          e.filter.Mode().Name,
		FavoritesOnly: e.filter.FavoritesOnly(),
		TeamsLabel:    e.filter.TeamsLabel(),
	}
	resolved := e.filter.Resolve()
	logging.Info(e.logger, "filter changed",
		slog.String("button", b.String()),
		slog.String(logging.FieldMode, ack.Mode),
		slog.Bool(logging.FieldFavorites, ack.FavoritesOnly),
		slog.Any(logging.FieldTeams, resolved.Teams),
	)

	if err := e.display.RenderModeAck(ack); err != nil {
		return err
	}
	e.clock.Sleep(e.cfg.ModeAckHold)

	// The new filter applies to the very next poll, and the rotation starts over.
	now := e.clock.Now()
	e.scheduler.ForcePoll(now)
	e.session.Cursor = 0
	e.cycler.Restart(now)
	e.publish(now)
	return nil
}

func (e *Engine) handlePoll(ctx context.Context) error {
	now := e.clock.Now()
	if !e.scheduler.ShouldPoll(now) {
		return nil
	}

	res := e.scheduler.CompletePoll(ctx, now, e.session.Games, e.filter.Resolve())
	if res.Replaced {
		e.session.Games = res.Games
		e.session.Cursor = rotation.Clamp(e.session.Cursor, len(res.Games))
	}
	e.publish(now)
	if err := e.guard.Check(); err != nil {
		return err
	}

	if len(res.Changed) == 0 {
		return nil
	}
	if err := e.showAlerts(res.Changed); err != nil {
		return err
	}
	if err := e.guard.Check(); err != nil {
		return err
	}
	// Redraw the rotation right after the alert hold.
	e.cycler.Restart(e.clock.Now())
	return nil
}

// showAlerts flashes each changed game, then holds the last frame.
func (e *Engine) showAlerts(changes []alerts.Change) error {
	flashes := e.cfg.Alert.Flashes
	if flashes <= 0 {
		flashes = 1
	}
	for _, c := range changes {
		g := c.Game
		logging.Info(e.logger, "score alert",
			slog.String(logging.FieldLeague, string(g.League)),
			slog.String(logging.FieldMatchup, g.Matchup()),
			slog.String(logging.FieldScore, g.Scoreline()),
		)
		e.metrics.RecordScoreAlert(string(g.League))

		for i := 0; i < flashes; i++ {
			if err := e.display.RenderAlert(g); err != nil {
				return err
			}
			e.clock.Sleep(e.cfg.Alert.On)
			if i < flashes-1 {
				if err := e.display.RenderBlank(); err != nil {
					return err
				}
				e.clock.Sleep(e.cfg.Alert.Off)
			}
		}
		e.clock.Sleep(e.cfg.Alert.Hold)
	}
	return nil
}

func (e *Engine) handleDisplay() error {
	now := e.clock.Now()
	if !e.cycler.ShouldAdvance(now) {
		return nil
	}

	current := rotation.Current(e.session.Games, e.session.Cursor)
	if err := e.display.Render(current); err != nil {
		return err
	}
	if current != nil {
		logging.Debug(e.logger, "showing game",
			slog.String(logging.FieldLeague, string(current.League)),
			slog.String(logging.FieldMatchup, current.Matchup()),
			slog.Bool("live", current.IsLive()),
		)
	}
	e.session.Cursor = rotation.Advance(e.session.Games, e.session.Cursor)
	e.cycler.Schedule(now)
	e.publish(now)
	return nil
}

func (e *Engine) publish(now time.Time) {
	if e.sink == nil {
		return
	}
	e.sink.Publish(store.Snapshot{
		RunID:         e.runID,
		Games:         e.session.Games,
		Cursor:        e.session.Cursor,
		Mode:          e.filter.Mode().Name,
		FavoritesOnly: e.filter.FavoritesOnly(),
		PollInterval:  e.scheduler.Interval(),
		NextPoll:      e.scheduler.NextPoll(),
		NextDisplay:   e.cycler.Next(),
		UpdatedAt:     now,
	})
}
