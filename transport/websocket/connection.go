package websocket

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rocketscienceinc/tictactoe-solo/internal/audio"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

// connection is one page. It is the audio player and the view sink of its board,
// everything it is asked to send goes through the buffered send channel in order.
type connection struct {
	logger *slog.Logger
	conn   *websocket.Conn
	conf   Config

	send      chan []byte
	done      chan struct{}
	closeOnce sync.Once
}

func newConnection(logger *slog.Logger, conn *websocket.Conn, conf Config) *connection {
	return &connection{
		logger: logger,
		conn:   conn,
		conf:   conf,
		send:   make(chan []byte, conf.SendBuffer),
		done:   make(chan struct{}),
	}
}

func (that *connection) Render(view *entity.View) {
	that.enqueue(ActionState, ResponsePayload{Game: view})
}

func (that *connection) Play(cue audio.Cue) {
	that.logger.Debug("play cue", "cue", cue)
	that.enqueue(ActionAudioPlay, ResponsePayload{Cue: cue})
}

func (that *connection) Stop(cue audio.Cue) {
	that.logger.Debug("stop cue", "cue", cue)
	that.enqueue(ActionAudioStop, ResponsePayload{Cue: cue})
}

func (that *connection) sendError(action, errorMsg string) {
	that.enqueue(ActionError, ResponsePayload{Error: action + ": " + errorMsg})
}

func (that *connection) enqueue(action string, payload ResponsePayload) {
	data, err := encodeMessage(action, payload)
	if err != nil {
		that.logger.Error("failed to marshal message", "action", action, "error", err)
		return
	}

	select {
	case <-that.done:
		return
	default:
	}

	select {
	case that.send <- data:
	case <-that.done:
	default:
		that.logger.Warn("send buffer full, closing connection", "action", action)
		that.close()
	}
}

func (that *connection) close() {
	that.closeOnce.Do(func() {
		close(that.done)
	})
}

// writePump - the only goroutine that writes to the socket.
func (that *connection) writePump() {
	log := that.logger.With("method", "writePump")

	ticker := time.NewTicker(that.conf.pingInterval())
	defer func() {
		ticker.Stop()
		_ = that.conn.Close()
	}()

	for {
		select {
		case data := <-that.send:
			if err := that.write(websocket.TextMessage, data); err != nil {
				log.Error("failed to write message", "error", err)
				that.close()
				return
			}
		case <-ticker.C:
			if err := that.write(websocket.PingMessage, nil); err != nil {
				log.Debug("failed to write ping", "error", err)
				that.close()
				return
			}
		case <-that.done:
			that.flush()
			_ = that.write(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		}
	}
}

// flush - writes what is still queued, best effort.
func (that *connection) flush() {
	for {
		select {
		case data := <-that.send:
			if err := that.write(websocket.TextMessage, data); err != nil {
				return
			}
		default:
			return
		}
	}
}

func (that *connection) write(messageType int, data []byte) error {
	if err := that.conn.SetWriteDeadline(time.Now().Add(that.conf.WriteTimeout)); err != nil {
		return err
	}

	return that.conn.WriteMessage(messageType, data)
}
