package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solo/internal/audio"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

type sessionRepo interface {
	sessionStore
	GetByID(ctx context.Context, id string) (*entity.View, error)
}

// Client is what a connected page offers to its board: audio playback and a view sink.
type Client interface {
	audio.Player
	Listener
}

// GameManager mounts and unmounts boards and keeps track of the live ones.
type GameManager struct {
	logger    *slog.Logger
	sequencer countdownRunner
	repo      sessionRepo

	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewGameManager(logger *slog.Logger, sequencer countdownRunner, repo sessionRepo) *GameManager {
	return &GameManager{
		logger:    logger.With("component", "game_manager"),
		sequencer: sequencer,
		repo:      repo,
		sessions:  make(map[string]*Session),
	}
}

// Open - mounts a new board for client and publishes its first view.
func (that *GameManager) Open(ctx context.Context, client Client) *Session {
	id := uuid.NewString()

	session := newSession(ctx, that.logger, id, that.sequencer, that.repo, client, client)

	that.mu.Lock()
	that.sessions[id] = session
	that.mu.Unlock()

	session.Mount()

	that.logger.Info("session opened", "sessionID", id)

	return session
}

func (that *GameManager) Get(id string) (*Session, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	session, ok := that.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperror.ErrSessionNotFound, id)
	}

	return session, nil
}

// Close - unmounts the board with the given id.
func (that *GameManager) Close(id string) {
	that.mu.Lock()
	session, ok := that.sessions[id]
	delete(that.sessions, id)
	that.mu.Unlock()

	if ok {
		session.Close()
	}
}

// CloseAll - unmounts every board, used on shutdown.
func (that *GameManager) CloseAll() {
	that.mu.Lock()
	sessions := that.sessions
	that.sessions = make(map[string]*Session)
	that.mu.Unlock()

	for _, session := range sessions {
		session.Close()
	}

	that.logger.Info("all sessions closed", "count", len(sessions))
}

func (that *GameManager) Count() int {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return len(that.sessions)
}

// GetView - the last published view of a board, read from the store.
func (that *GameManager) GetView(ctx context.Context, id string) (*entity.View, error) {
	view, err := that.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get session view: %w", err)
	}

	return view, nil
}
