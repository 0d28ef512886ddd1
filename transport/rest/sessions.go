package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

type viewReader interface {
	GetView(ctx context.Context, id string) (*entity.View, error)
}

type sessionHandler struct {
	logger *slog.Logger
	views  viewReader
}

// getSession - GET /api/sessions/{id}, the last view of a mounted board.
func (that *sessionHandler) getSession(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "getSession")

	id := r.PathValue("id")

	view, err := that.views.GetView(r.Context(), id)
	if errors.Is(err, apperror.ErrSessionNotFound) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: apperror.ErrSessionNotFound.Error()})
		return
	}

	if err != nil {
		log.Error("failed to get session view", "sessionID", id, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Internal Server Error"})
		return
	}

	writeJSON(w, http.StatusOK, view)
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
