package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/preston-bernstein/sports-ticker/internal/alerts"
	"github.com/preston-bernstein/sports-ticker/internal/config"
	"github.com/preston-bernstein/sports-ticker/internal/engine"
	"github.com/preston-bernstein/sports-ticker/internal/filter"
	httpserver "github.com/preston-bernstein/sports-ticker/internal/http"
	"github.com/preston-bernstein/sports-ticker/internal/http/handlers"
	"github.com/preston-bernstein/sports-ticker/internal/logging"
	"github.com/preston-bernstein/sports-ticker/internal/metrics"
	"github.com/preston-bernstein/sports-ticker/internal/poller"
	"github.com/preston-bernstein/sports-ticker/internal/providers"
	"github.com/preston-bernstein/sports-ticker/internal/store"
	"github.com/preston-bernstein/sports-ticker/internal/supervisor"
)

var metricsSetup = metrics.Setup

// Server owns the process: the supervised ticker loop, the status surface
// and the metrics endpoint.
type Server struct {
	cfg     config.Config
	logger  *slog.Logger
	metrics *metrics.Recorder
	layout  config.Layout
	source  providers.GameSource
	board   *store.Board
	guard   *engine.MemoryGuard
	clock   engine.Clock

	displays   displayStack
	supervisor *supervisor.Supervisor
	scheduler  atomic.Pointer[poller.Scheduler]

	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
}

// New builds a server from configuration. quit is called when a display
// backend asks the process to exit.
func New(cfg config.Config, logger *slog.Logger, quit func()) (*Server, error) {
	return newServerWithSource(cfg, logger, nil, quit)
}

func newServerWithSource(cfg config.Config, logger *slog.Logger, source providers.GameSource, quit func()) (*Server, error) {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger)

	layout, err := config.LoadLeagues(cfg.LeaguesFile)
	if err != nil {
		logger.Warn("league layout invalid, using defaults", "error", err)
	}

	if source == nil {
		source = newSourceFactory(logger, recorder).build(cfg.Source)
	}

	displays, err := buildDisplay(cfg.Display, logger, quit)
	if err != nil {
		if metricsShutdown != nil {
			_ = metricsShutdown(context.Background())
		}
		return nil, err
	}

	s := &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		layout:        layout,
		source:        source,
		board:         store.NewBoard(),
		guard:         engine.NewMemoryGuard(cfg.Runtime.MemoryLimitMB),
		clock:         engine.SystemClock(),
		displays:      displays,
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
	}
	s.supervisor = supervisor.New(s.newRun, restartPolicy(cfg.Runtime), displays.display, logger, recorder)
	s.httpServer = s.buildHTTPServer()
	return s, nil
}

func restartPolicy(cfg config.RuntimeConfig) supervisor.Policy {
	policy := supervisor.DefaultPolicy()
	policy.Mode = supervisor.ParseRestartMode(cfg.RestartMode)
	return policy
}

func pollerConfig(cfg config.PollConfig) poller.Config {
	return poller.Config{
		Fast:           cfg.Fast,
		Slow:           cfg.Slow,
		IdleRetry:      cfg.IdleRetry,
		IdleRetryLimit: cfg.IdleRetryLimit,
	}
}

func engineConfig(cfg config.EngineConfig) engine.Config {
	return engine.Config{
		TickInterval:    cfg.TickInterval,
		DisplayInterval: cfg.DisplayInterval,
		DebounceWindow:  cfg.DebounceWindow,
		ModeAckHold:     cfg.ModeAckHold,
		StartupHold:     cfg.StartupHold,
		Alert: engine.AlertConfig{
			Flashes: cfg.AlertFlashes,
			On:      cfg.AlertOn,
			Off:     cfg.AlertOff,
			Hold:    cfg.AlertHold,
		},
	}
}

// newRun builds a fresh session for one supervised run: new scheduler,
// filter state and engine, sharing only the source, display and board.
func (s *Server) newRun(runID string) (supervisor.Runner, error) {
	logger := s.logger.With(slog.String(logging.FieldRunID, runID))
	scheduler := poller.New(
		s.source,
		s.layout.Enabled,
		alerts.NewDetector(s.layout.Alertable),
		logger,
		s.metrics,
		pollerConfig(s.cfg.Poll),
	)
	s.scheduler.Store(scheduler)

	return engine.New(engineConfig(s.cfg.Engine), engine.Deps{
		Scheduler: scheduler,
		Filter:    filter.NewState(s.layout.Modes, s.layout.Favorites),
		Display:   s.displays.display,
		Buttons:   s.displays.buttons,
		Clock:     s.clock,
		Sink:      s.board,
		Guard:     s.guard,
		Logger:    logger,
		Metrics:   s.metrics,
		RunID:     runID,
	}), nil
}

// pollerStatus reports the health of the current run's scheduler.
func (s *Server) pollerStatus() poller.Status {
	if sched := s.scheduler.Load(); sched != nil {
		return sched.Status()
	}
	return poller.Status{}
}

func (s *Server) buildHTTPServer() httpServer {
	router := httpserver.NewRouter(httpserver.RouterConfig{
		Handler: handlers.NewHandler(s.board, s.pollerStatus, s.logger),
		Control: handlers.NewControlHandler(s.displays.hub, s.cfg.AdminToken, s.logger),
		Panel:   s.displays.hub,
		Logger:  s.logger,
		Metrics: s.metrics,
	})
	return netHTTPServer{srv: &http.Server{
		Addr:         ":" + s.cfg.Port,
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}}
}

// Run starts the servers and the supervised ticker, then waits for ctx to be
// cancelled or the supervisor to give up. It returns the supervisor's error,
// which is a *supervisor.FatalError in process restart mode.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) error {
	s.guard.ApplySoftLimit()
	s.startMetrics()
	s.startServer(stop)
	if s.displays.term != nil {
		go s.displays.term.Run()
	}

	s.logger.Info("ticker starting",
		slog.String("provider", s.cfg.Source.Provider),
		slog.Int(logging.FieldCount, len(s.layout.Enabled)),
		slog.Int("utc_offset", s.cfg.Source.TimezoneOffset),
		slog.String("timezone", s.cfg.Source.TimezoneLabel),
		slog.String("restart_mode", s.cfg.Runtime.RestartMode),
	)

	done := make(chan error, 1)
	go func() { done <- s.supervisor.Run(ctx) }()

	var runErr error
	select {
	case runErr = <-done:
		if stop != nil {
			stop()
		}
	case <-ctx.Done():
		s.logger.Info("shutdown signal received")
		select {
		case runErr = <-done:
		case <-time.After(shutdownTimeout):
			runErr = errors.New("ticker loop did not stop before shutdown timeout")
		}
	}

	s.gracefulShutdown()
	return runErr
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	s.displays.close()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}
	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}
	s.logger.Info("shutdown complete")
}

func buildMetrics(cfg config.Config, logger *slog.Logger) (*metrics.Recorder, httpServer, func(context.Context) error) {
	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:              ":" + recCfg.Port,
				Handler:           handler,
				ReadHeaderTimeout: readTimeout,
			},
		}
	}
	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Warn(name+" server failed", "error", err)
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}

// Board exposes the published session (useful for tests).
func (s *Server) Board() *store.Board {
	return s.board
}
