package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solo/internal/audio"
	"github.com/rocketscienceinc/tictactoe-solo/internal/countdown"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solo/internal/tictactoe"
)

// Listener receives the view after every change of the board.
type Listener interface {
	Render(view *entity.View)
}

type sessionStore interface {
	Save(ctx context.Context, view *entity.View) error
	DeleteByID(ctx context.Context, id string) error
}

type countdownRunner interface {
	Start(ctx context.Context, handler countdown.Handler) *countdown.Task
}

// Session is one mounted board. Client actions and countdown callbacks are serialised by mu,
// and callbacks of a task that is no longer current are dropped.
type Session struct {
	logger *slog.Logger
	id     string

	ctx       context.Context
	sequencer countdownRunner
	store     sessionStore
	player    audio.Player
	listener  Listener

	mu     sync.Mutex
	state  entity.State
	task   *countdown.Task
	closed bool
}

func newSession(ctx context.Context, logger *slog.Logger, id string, sequencer countdownRunner, store sessionStore, player audio.Player, listener Listener) *Session {
	return &Session{
		logger:    logger.With("sessionID", id),
		id:        id,
		ctx:       ctx,
		sequencer: sequencer,
		store:     store,
		player:    player,
		listener:  listener,
		state:     entity.NewState(),
	}
}

func (that *Session) ID() string {
	return that.id
}

func (that *Session) View() *entity.View {
	that.mu.Lock()
	defer that.mu.Unlock()

	return entity.Render(that.id, that.state)
}

func (that *Session) State() entity.State {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.state
}

// Mount - publishes the initial view.
func (that *Session) Mount() {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.publish()
}

// Start - starts the game and the countdown. Ignored when the game is already started.
func (that *Session) Start() error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.closed {
		return apperror.ErrSessionClosed
	}

	state, changed := tictactoe.Start(that.state)
	if !changed {
		return nil
	}

	that.state = state
	that.task.Cancel()
	that.task = that.sequencer.Start(that.ctx, that)

	that.logger.Info("game started")
	that.publish()

	return nil
}

// SelectCell - plays the next mark on cell. Illegal moves are absorbed without error,
// only an index outside the board is reported.
func (that *Session) SelectCell(cell int) error {
	if !entity.IsValidCell(cell) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	if that.closed {
		return apperror.ErrSessionClosed
	}

	state, effects, changed := tictactoe.SelectCell(that.state, cell)
	if !changed {
		that.logger.Debug("selection ignored", "cell", cell, "phase", that.state.Phase())
		return nil
	}

	that.state = state
	audio.Apply(that.player, effects)

	if winner := state.Winner(); winner != entity.EmptyCell {
		that.logger.Info("game won", "winner", winner)
	}

	that.publish()

	return nil
}

// Restart - cancels the countdown, clears the board and stops every cue.
func (that *Session) Restart() error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.closed {
		return apperror.ErrSessionClosed
	}

	that.task.Cancel()
	that.task = nil

	state, effects := tictactoe.Restart(that.state)
	that.state = state
	audio.Apply(that.player, effects)

	that.logger.Info("game restarted")
	that.publish()

	return nil
}

// Close - tears the board down: the countdown is cancelled, the music stopped and the view removed.
// Closing twice is a no-op.
func (that *Session) Close() {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.closed {
		return
	}

	that.closed = true
	that.task.Cancel()
	that.task = nil

	audio.Apply(that.player, tictactoe.Teardown())

	if err := that.store.DeleteByID(context.WithoutCancel(that.ctx), that.id); err != nil {
		that.logger.Warn("failed to delete session view", "error", err)
	}

	that.logger.Info("session closed")
}

func (that *Session) OnTick(task *countdown.Task, value int) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if !that.isCurrent(task) {
		return
	}

	that.state = tictactoe.Tick(that.state, value)
	that.publish()
}

func (that *Session) OnDone(task *countdown.Task) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if !that.isCurrent(task) {
		return
	}

	that.task = nil

	state, effects := tictactoe.FinishCountdown(that.state)
	that.state = state
	audio.Apply(that.player, effects)

	that.publish()
}

func (that *Session) isCurrent(task *countdown.Task) bool {
	if that.closed || task == nil || task != that.task || task.Cancelled() {
		that.logger.Debug("stale countdown callback dropped")
		return false
	}

	return true
}

// publish - must be called with mu held.
func (that *Session) publish() {
	view := entity.Render(that.id, that.state)

	if err := that.store.Save(that.ctx, view); err != nil {
		that.logger.Warn("failed to save session view", "error", err)
	}

	that.listener.Render(view)
}
