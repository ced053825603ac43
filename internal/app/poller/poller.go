package poller

import (
	"context"
	"time"

	"github.com/nuworldagency/SpeechScribe/internal/app/model"
)

// DefaultInterval matches the status-check cadence of the dashboard UI.
const DefaultInterval = 3 * time.Second

// StatusFunc reads the current state of a transcription job.
type StatusFunc func(ctx context.Context, id string) (*model.TranscriptionJob, error)

// Poller re-queries job status until a terminal state is reached. Ticks are
// sequential: a slow status read delays the next tick instead of overlapping
// with it.
type Poller struct {
	interval time.Duration
	getjob   StatusFunc
}

// New creates a poller. A non-positive interval falls back to DefaultInterval.
func New(interval time.Duration, getjob StatusFunc) *Poller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Poller{interval: interval, getjob: getjob}
}

// Wait polls immediately and then on every interval until the job reaches
// completed or error, the context is cancelled, or a status read fails.
func (p *Poller) Wait(ctx context.Context, id string) (*model.TranscriptionJob, error) {
	job, err := p.getjob(ctx, id)
	if err != nil {
		return nil, err
	}
	if job.Status.IsTerminal() {
		return job, nil
	}

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
			job, err = p.getjob(ctx, id)
			if err != nil {
				return nil, err
			}
			if job.Status.IsTerminal() {
				return job, nil
			}
		}
	}
}

// Watch polls like Wait but reports every observed state on the returned
// channel, closing it after the terminal state. Errors stop the watch.
func (p *Poller) Watch(ctx context.Context, id string) (<-chan *model.TranscriptionJob, <-chan error) {
	updates := make(chan *model.TranscriptionJob)
	errc := make(chan error, 1)

	go func() {
		defer close(updates)

		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		for {
			job, err := p.getjob(ctx, id)
			if err != nil {
				errc <- err
				return
			}
			select {
			case updates <- job:
			case <-ctx.Done():
				errc <- ctx.Err()
				return
			}
			if job.Status.IsTerminal() {
				return
			}
			select {
			case <-ticker.C:
			case <-ctx.Done():
				errc <- ctx.Err()
				return
			}
		}
	}()

	return updates, errc
}
