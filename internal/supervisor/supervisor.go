// Package supervisor is the only place that restarts the ticker. Every error
// that escapes an engine run is fatal to that run; the supervisor classifies
// it, pauses, reclaims memory and starts a fresh run (or exits for an
// external process manager).
package supervisor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/google/uuid"

	"github.com/preston-bernstein/sports-ticker/internal/engine"
	"github.com/preston-bernstein/sports-ticker/internal/logging"
	"github.com/preston-bernstein/sports-ticker/internal/metrics"
)

// RestartMode selects where a failed run restarts.
type RestartMode string

const (
	// RestartEngine builds a fresh engine inside the same process.
	RestartEngine RestartMode = "engine"
	// RestartProcess returns a FatalError so the process exits and its manager restarts it.
	RestartProcess RestartMode = "process"
)

// ParseRestartMode returns the mode for raw, defaulting to RestartEngine.
func ParseRestartMode(raw string) RestartMode {
	if RestartMode(raw) == RestartProcess {
		return RestartProcess
	}
	return RestartEngine
}

// Policy holds the pauses around a restart.
type Policy struct {
	Mode RestartMode
	// ResourcePause follows reclamation after resource exhaustion.
	ResourcePause time.Duration
	// UnclassifiedPause precedes reclamation after any other failure.
	UnclassifiedPause time.Duration
	// SettlePause follows reclamation after any other failure.
	SettlePause time.Duration
}

// DefaultPolicy restarts in-process with 5s/10s/5s pauses.
func DefaultPolicy() Policy {
	return Policy{
		Mode:              RestartEngine,
		ResourcePause:     5 * time.Second,
		UnclassifiedPause: 10 * time.Second,
		SettlePause:       5 * time.Second,
	}
}

// Runner is one engine run.
type Runner interface {
	Run(ctx context.Context) error
}

// Factory builds a fresh runner for a run id.
type Factory func(runID string) (Runner, error)

// Blanker clears the panel while a restart is pending.
type Blanker interface {
	RenderBlank() error
}

// FatalError is returned in process restart mode.
type FatalError struct {
	RunID string
	Class engine.FailureClass
	Err   error
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("run %s failed (%s): %v", e.RunID, e.Class, e.Err)
}

func (e *FatalError) Unwrap() error { return e.Err }

// Supervisor runs engines until ctx is done.
type Supervisor struct {
	factory Factory
	policy  Policy
	blank   Blanker
	logger  *slog.Logger
	metrics *metrics.Recorder

	newID   func() string
	reclaim func()
	sleep   func(ctx context.Context, d time.Duration) error
}

// New returns a Supervisor. blank may be nil.
func New(factory Factory, policy Policy, blank Blanker, logger *slog.Logger, recorder *metrics.Recorder) *Supervisor {
	return &Supervisor{
		factory: factory,
		policy:  policy,
		blank:   blank,
		logger:  logger,
		metrics: recorder,
		newID:   func() string { return uuid.NewString() },
		reclaim: debug.FreeOSMemory,
		sleep:   sleepContext,
	}
}

// Run starts runs until ctx is done. It returns nil on cancellation, the
// factory's error if a run cannot be built, or a FatalError in process mode.
func (s *Supervisor) Run(ctx context.Context) error {
	for {
		runID := s.newID()
		logger := s.logger
		if logger != nil {
			logger = logger.With(slog.String(logging.FieldRunID, runID))
		}

		runner, err := s.factory(runID)
		if err != nil {
			return fmt.Errorf("build run %s: %w", runID, err)
		}

		logging.Info(logger, "engine run starting")
		err = s.runOnce(logging.WithLogger(ctx, logger), runner)
		if ctx.Err() != nil {
			logging.Info(logger, "supervisor stopping")
			return nil
		}
		if err == nil {
			logging.Info(logger, "engine run ended")
			return nil
		}

		class := engine.Classify(err)
		logging.Error(logger, "engine run failed", err, slog.String("failure_class", string(class)))
		s.metrics.RecordRestart(string(class))
		if s.blank != nil {
			if blankErr := s.blank.RenderBlank(); blankErr != nil {
				logging.Warn(logger, "blank panel failed", "error", blankErr)
			}
		}

		if err := s.cooldown(ctx, class); err != nil {
			return nil
		}
		if s.policy.Mode == RestartProcess {
			return &FatalError{RunID: runID, Class: class, Err: err}
		}
		logging.Info(logger, "restarting engine")
	}
}

// cooldown applies the pause/reclaim sequence for class. It returns an error
// only when ctx ends during a pause.
func (s *Supervisor) cooldown(ctx context.Context, class engine.FailureClass) error {
	switch class {
	case engine.ClassResourceExhausted:
		s.reclaim()
		return s.sleep(ctx, s.policy.ResourcePause)
	default:
		if err := s.sleep(ctx, s.policy.UnclassifiedPause); err != nil {
			return err
		}
		s.reclaim()
		return s.sleep(ctx, s.policy.SettlePause)
	}
}

func (s *Supervisor) runOnce(ctx context.Context, runner Runner) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &engine.PanicError{Value: r}
		}
	}()
	return runner.Run(ctx)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// IsFatal reports whether err asks the process to exit for restart.
func IsFatal(err error) bool {
	var fatal *FatalError
	return errors.As(err, &fatal)
}
