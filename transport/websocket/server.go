package websocket

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rocketscienceinc/tictactoe-solo/internal/usecase"
)

type Config struct {
	ReadBufferSize  int
	WriteBufferSize int
	SendBuffer      int
	WriteTimeout    time.Duration
	PongTimeout     time.Duration
	MaxMessageSize  int64
}

func (that Config) pingInterval() time.Duration {
	return that.PongTimeout * 9 / 10
}

type gameManager interface {
	Open(ctx context.Context, client usecase.Client) *usecase.Session
	Close(id string)
}

type handlerFunc func(session *usecase.Session, msg *Message) error

type Server struct {
	ctx      context.Context
	logger   *slog.Logger
	manager  gameManager
	conf     Config
	upgrader websocket.Upgrader

	handlers map[string]handlerFunc
}

// New - ctx bounds the lifetime of every board opened by the server.
func New(ctx context.Context, logger *slog.Logger, manager gameManager, conf Config) *Server {
	server := &Server{
		ctx:     ctx,
		logger:  logger.With("component", "websocket"),
		manager: manager,
		conf:    conf,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  conf.ReadBufferSize,
			WriteBufferSize: conf.WriteBufferSize,
			CheckOrigin: func(_ *http.Request) bool {
				return true
			},
		},
		handlers: make(map[string]handlerFunc),
	}

	server.handlers[ActionStart] = server.handleStart
	server.handlers[ActionSelect] = server.handleSelect
	server.handlers[ActionRestart] = server.handleRestart

	return server
}

// ServeHTTP - upgrades the request and mounts a board for the page until it disconnects.
func (that *Server) ServeHTTP(writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "ServeHTTP")

	conn, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	client := newConnection(that.logger, conn, that.conf)

	session := that.manager.Open(that.ctx, client)
	client.logger = client.logger.With("sessionID", session.ID())

	go client.writePump()

	log.Info("WebSocket connection established", "sessionID", session.ID())

	that.readPump(client, session)

	that.manager.Close(session.ID())
	client.close()

	log.Info("WebSocket connection closed", "sessionID", session.ID())
}

// readPump - processes messages from the page until the socket fails or the server stops.
func (that *Server) readPump(client *connection, session *usecase.Session) {
	log := client.logger.With("method", "readPump")

	client.conn.SetReadLimit(that.conf.MaxMessageSize)
	_ = client.conn.SetReadDeadline(time.Now().Add(that.conf.PongTimeout))
	client.conn.SetPongHandler(func(string) error {
		return client.conn.SetReadDeadline(time.Now().Add(that.conf.PongTimeout))
	})

	stop := context.AfterFunc(that.ctx, func() {
		_ = client.conn.Close()
	})
	defer stop()

	for {
		_, data, err := client.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Error("error reading message", "error", err)
			}
			return
		}

		_ = client.conn.SetReadDeadline(time.Now().Add(that.conf.PongTimeout))

		var message Message
		if err = json.Unmarshal(data, &message); err != nil {
			log.Error("failed to unmarshal message", "error", err)
			client.sendError(ActionError, "malformed message")
			continue
		}

		that.processMessage(client, session, &message)
	}
}
