// Package countdown runs the pre-game 3-2-1 sequence.
//
// A sequence owns two timers: a repeating ticker that emits the visible values and a one-shot
// timer, armed at start, that fires one interval after the last value. Both belong to a single
// Task and are stopped together by Task.Cancel. Handlers guard against a callback that was
// already in flight when the task was cancelled by checking Task.Cancelled.
package countdown

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"
)

const (
	DefaultFrom     = 3
	DefaultInterval = time.Second
)

var ErrInvalidSettings = errors.New("countdown needs a positive start value and interval")

type Settings struct {
	From     int
	Interval time.Duration
}

// Handler receives the sequence callbacks. OnTick gets From, From-1 ... 1, then OnDone is called once.
type Handler interface {
	OnTick(task *Task, value int)
	OnDone(task *Task)
}

type Sequencer struct {
	logger   *slog.Logger
	clock    clockwork.Clock
	settings Settings
}

func New(logger *slog.Logger, clock clockwork.Clock, settings Settings) (*Sequencer, error) {
	if settings.From <= 0 || settings.Interval <= 0 {
		return nil, ErrInvalidSettings
	}

	return &Sequencer{
		logger:   logger.With("component", "countdown"),
		clock:    clock,
		settings: settings,
	}, nil
}

// Task is a running sequence.
type Task struct {
	cancel    context.CancelFunc
	ticker    clockwork.Ticker
	timer     clockwork.Timer
	cancelled atomic.Bool
	done      chan struct{}
	stopOnce  sync.Once
}

// Start - arms both timers and returns the task that owns them.
func (that *Sequencer) Start(ctx context.Context, handler Handler) *Task {
	ctx, cancel := context.WithCancel(ctx)

	task := &Task{
		cancel: cancel,
		ticker: that.clock.NewTicker(that.settings.Interval),
		timer:  that.clock.NewTimer(time.Duration(that.settings.From+1) * that.settings.Interval),
		done:   make(chan struct{}),
	}

	go that.run(ctx, task, handler)

	return task
}

func (that *Sequencer) run(ctx context.Context, task *Task, handler Handler) {
	log := that.logger.With("method", "run")
	defer close(task.done)
	defer task.stopTimers()

	value := that.settings.From

	for {
		select {
		case <-ctx.Done():
			log.Debug("countdown cancelled", "remaining", value)
			return
		case <-task.ticker.Chan():
			if value <= 0 {
				continue
			}

			if task.cancelled.Load() {
				return
			}

			handler.OnTick(task, value)
			value--

			if value == 0 {
				task.ticker.Stop()
			}
		case <-task.timer.Chan():
			if task.cancelled.Load() {
				return
			}

			task.ticker.Stop()
			handler.OnDone(task)
			log.Debug("countdown finished")

			return
		}
	}
}

// Cancel - stops both timers. No callback starts after Cancel returns, but one that already
// passed its cancellation check may still be running, so handlers re-check Cancelled
// (or task identity) under their own lock before acting.
// Cancel does not wait for the sequence goroutine, so it is safe to call from inside a handler.
func (that *Task) Cancel() {
	if that == nil {
		return
	}

	that.cancelled.Store(true)
	that.cancel()
	that.stopTimers()
}

func (that *Task) Cancelled() bool {
	return that.cancelled.Load()
}

// Done is closed once the sequence goroutine has returned.
func (that *Task) Done() <-chan struct{} {
	return that.done
}

func (that *Task) stopTimers() {
	that.stopOnce.Do(func() {
		that.ticker.Stop()
		that.timer.Stop()
	})
}
