package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/did-signin/internal/logger"
)

const defaultWatchInterval = 30 * time.Second

// sessionChecker is the part of SessionService the watch job drives.
type sessionChecker interface {
	CheckSession(ctx context.Context) (bool, error)
}

type sessionWatchJob struct {
	sessions sessionChecker
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	onDrop func()
	wg     sync.WaitGroup
}

// NewSessionWatchJob creates a job calling sessions.CheckSession on a ticker.
// The job is idle until Start is called.
func NewSessionWatchJob(sessions sessionChecker, log *logger.Logger) SessionWatchJob {
	return &sessionWatchJob{sessions: sessions, logger: log}
}

// Start implements SessionWatchJob. It stops any previously running job, then
// launches a goroutine checking the session every interval. A zero or
// negative interval defaults to 30 seconds. The goroutine exits when ctx is
// cancelled or Stop is called.
func (j *sessionWatchJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultWatchInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.check(jobCtx)
			}
		}
	}()
}

func (j *sessionWatchJob) check(ctx context.Context) {
	dropped, err := j.sessions.CheckSession(ctx)
	if err != nil {
		if ctx.Err() == nil {
			j.logger.Warn().Err(err).Str("func", "sessionWatchJob.check").Msg("session check failed")
		}
		return
	}
	if !dropped {
		return
	}

	j.logger.Info().Str("func", "sessionWatchJob.check").Msg("wallet session dropped")

	j.mu.Lock()
	onDrop := j.onDrop
	j.mu.Unlock()
	if onDrop != nil {
		onDrop()
	}
}

// Stop implements SessionWatchJob. It cancels the goroutine's context and
// blocks until it has exited. Calling it on an idle job is a no-op.
func (j *sessionWatchJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *sessionWatchJob) SetDropHandler(handler func()) {
	j.mu.Lock()
	j.onDrop = handler
	j.mu.Unlock()
}
