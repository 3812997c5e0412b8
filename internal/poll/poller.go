package poll

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"holdem-console/internal/api"
)

// StateSource is the slice of the API client the poller needs.
type StateSource interface {
	GameState(ctx context.Context) (api.GameState, error)
}

type Config struct {
	// Interval between successful fetches. Defaults to one second.
	Interval time.Duration
	// MaxAttempts is the per-fetch attempt budget. 1 means any failure is
	// immediately terminal.
	MaxAttempts int
	// Backoff before the first retry, doubling on each further attempt.
	Backoff time.Duration
}

// Poller repeatedly fetches the authoritative game state and hands each
// snapshot to its handler. Requests never overlap: the next tick is only
// consumed after the previous fetch fully resolved. Once the attempt budget
// for a fetch is spent the task stops permanently; a fresh Start is the only
// way to resume.
type Poller struct {
	source  StateSource
	cfg     Config
	handle  func(api.GameState)
	onRetry func(attempt int, err error)
	onDown  func(err error)
}

func New(source StateSource, cfg Config, handle func(api.GameState)) *Poller {
	if cfg.Interval <= 0 {
		cfg.Interval = time.Second
	}
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	if cfg.Backoff <= 0 {
		cfg.Backoff = time.Second
	}
	return &Poller{source: source, cfg: cfg, handle: handle}
}

// OnRetry is invoked before each retry wait, for surfacing a "connection
// lost, retrying" state to the user.
func (p *Poller) OnRetry(fn func(attempt int, err error)) {
	p.onRetry = fn
}

// OnDown is invoked once when the attempt budget is exhausted and polling
// stops for good.
func (p *Poller) OnDown(fn func(err error)) {
	p.onDown = fn
}

// Task is an owned handle on one recurring poll.
type Task struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// Stop cancels the poll; it is safe to call more than once.
func (t *Task) Stop() {
	t.cancel()
}

// Done closes once the poll loop has exited, whether stopped or failed.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

func (p *Poller) Start(ctx context.Context) *Task {
	ctx, cancel := context.WithCancel(ctx)
	t := &Task{cancel: cancel, done: make(chan struct{})}
	go p.run(ctx, t)
	return t
}

func (p *Poller) run(ctx context.Context, t *Task) {
	defer close(t.done)
	ticker := time.NewTicker(p.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			state, err := p.fetch(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				log.Error().Err(err).Msg("state polling stopped")
				if p.onDown != nil {
					p.onDown(err)
				}
				return
			}
			p.handle(state)
		}
	}
}

func (p *Poller) fetch(ctx context.Context) (api.GameState, error) {
	backoff := p.cfg.Backoff
	var lastErr error
	for attempt := 1; attempt <= p.cfg.MaxAttempts; attempt++ {
		state, err := p.source.GameState(ctx)
		if err == nil {
			return state, nil
		}
		lastErr = err
		if attempt == p.cfg.MaxAttempts || ctx.Err() != nil {
			break
		}
		log.Warn().Err(err).Int("attempt", attempt).Dur("backoff", backoff).Msg("state fetch failed, retrying")
		if p.onRetry != nil {
			p.onRetry(attempt, err)
		}
		select {
		case <-ctx.Done():
			return api.GameState{}, ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2
	}
	return api.GameState{}, lastErr
}
