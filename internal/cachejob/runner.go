package cachejob

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/povarna/generative-ai-agents/vvquest-api/internal/engine"
	"github.com/rs/zerolog"
)

type Status string

const (
	StatusStarted    Status = "Cache generation started"
	StatusExists     Status = "Cache already exists"
	StatusInProgress Status = "Cache generation already in progress"
)

type CredentialSource interface {
	Snapshot() engine.Credentials
}

// Job is one background cache build. Err is only meaningful after Done is closed.
type Job struct {
	ID      string
	Started time.Time

	done chan struct{}
	err  error
}

func newJob() *Job {
	return &Job{
		ID:      uuid.NewString(),
		Started: time.Now(),
		done:    make(chan struct{}),
	}
}

func (j *Job) Done() <-chan struct{} {
	return j.done
}

func (j *Job) Err() error {
	select {
	case <-j.done:
		return j.err
	default:
		return nil
	}
}

// Runner schedules at most one cache build at a time.
type Runner struct {
	engine   engine.Engine
	settings CredentialSource
	logger   *zerolog.Logger

	inflight atomic.Bool
	mu       sync.Mutex
	current  *Job
}

func NewRunner(eng engine.Engine, settings CredentialSource, logger *zerolog.Logger) *Runner {
	return &Runner{
		engine:   eng,
		settings: settings,
		logger:   logger,
	}
}

// Trigger starts a background build when the engine has no cache. The
// returned job is nil when StatusExists is reported.
func (r *Runner) Trigger(ctx context.Context) (Status, *Job, error) {
	if r.inflight.Load() {
		return StatusInProgress, r.Current(), nil
	}

	exists, err := r.engine.HasCache(ctx)
	if err != nil {
		return "", nil, fmt.Errorf("failed to check cache: %w", err)
	}
	if exists {
		return StatusExists, nil, nil
	}

	if !r.inflight.CompareAndSwap(false, true) {
		return StatusInProgress, r.Current(), nil
	}

	job := newJob()
	r.mu.Lock()
	r.current = job
	r.mu.Unlock()

	go r.run(context.WithoutCancel(ctx), job)

	return StatusStarted, job, nil
}

// Current returns the most recent job, finished or not.
func (r *Runner) Current() *Job {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// RunSync builds the cache in the caller's goroutine if it is missing.
func (r *Runner) RunSync(ctx context.Context) error {
	exists, err := r.engine.HasCache(ctx)
	if err != nil {
		return fmt.Errorf("failed to check cache: %w", err)
	}
	if exists {
		r.logger.Info().Msg("Cache already exists")
		return nil
	}

	r.logger.Info().Msg("Generating cache")
	start := time.Now()
	if err := r.engine.GenerateCache(ctx, r.settings.Snapshot()); err != nil {
		return fmt.Errorf("failed to generate cache: %w", err)
	}
	r.logger.Info().Dur("duration", time.Since(start)).Msg("Cache generated")
	return nil
}

func (r *Runner) run(ctx context.Context, job *Job) {
	defer r.inflight.Store(false)
	defer close(job.done)

	r.logger.Info().Str("job_id", job.ID).Msg("Cache generation started")

	if err := r.engine.GenerateCache(ctx, r.settings.Snapshot()); err != nil {
		job.err = err
		r.logger.Error().Err(err).Str("job_id", job.ID).Msg("Cache generation failed")
		return
	}

	r.logger.Info().
		Str("job_id", job.ID).
		Dur("duration", time.Since(job.Started)).
		Msg("Cache generation finished")
}
