package repository

import (
	"context"
	"sync"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

type memorySession struct {
	mu       sync.RWMutex
	sessions map[string]entity.View
}

// NewMemorySessionRepository is used when redis is disabled.
func NewMemorySessionRepository() SessionRepository {
	return &memorySession{
		sessions: make(map[string]entity.View),
	}
}

func (that *memorySession) Save(_ context.Context, view *entity.View) error {
	stored := *view
	stored.Cells = append([]entity.Cell(nil), view.Cells...)

	that.mu.Lock()
	defer that.mu.Unlock()

	that.sessions[view.SessionID] = stored

	return nil
}

func (that *memorySession) GetByID(_ context.Context, id string) (*entity.View, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	view, ok := that.sessions[id]
	if !ok {
		return nil, apperror.ErrSessionNotFound
	}

	view.Cells = append([]entity.Cell(nil), view.Cells...)

	return &view, nil
}

func (that *memorySession) DeleteByID(_ context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.sessions[id]; !ok {
		return apperror.ErrSessionNotFound
	}

	delete(that.sessions, id)

	return nil
}
