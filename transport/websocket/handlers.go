package websocket

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solo/internal/usecase"
)

// processMessage - dispatches a message to its handler, failures go back to the page.
func (that *Server) processMessage(client *connection, session *usecase.Session, msg *Message) {
	log := client.logger.With("method", "processMessage", "action", msg.Action)

	handler, ok := that.handlers[msg.Action]
	if !ok {
		log.Warn("unknown action")
		client.sendError(msg.Action, apperror.ErrUnknownAction.Error())
		return
	}

	if err := handler(session, msg); err != nil {
		log.Error("error processing message", "error", err)
		client.sendError(msg.Action, errorMessage(err))
	}
}

func (that *Server) handleStart(session *usecase.Session, _ *Message) error {
	if err := session.Start(); err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	return nil
}

func (that *Server) handleSelect(session *usecase.Session, msg *Message) error {
	var payloadReq RequestPayload

	if len(msg.Payload) == 0 {
		return apperror.ErrPayloadMissing
	}

	if err := json.Unmarshal(msg.Payload, &payloadReq); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	if payloadReq.Cell == nil {
		return fmt.Errorf("%w: cell", apperror.ErrPayloadMissing)
	}

	if err := session.SelectCell(*payloadReq.Cell); err != nil {
		return fmt.Errorf("failed to select cell: %w", err)
	}

	return nil
}

func (that *Server) handleRestart(session *usecase.Session, _ *Message) error {
	if err := session.Restart(); err != nil {
		return fmt.Errorf("failed to restart game: %w", err)
	}

	return nil
}

// errorMessage - known errors are shown as is, anything else stays generic.
func errorMessage(err error) string {
	for _, known := range []error{
		apperror.ErrInvalidCell,
		apperror.ErrPayloadMissing,
		apperror.ErrSessionClosed,
	} {
		if errors.Is(err, known) {
			return known.Error()
		}
	}

	return "bad request"
}
