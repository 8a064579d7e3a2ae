package server

import (
	"errors"
	"net/http"
	"time"

	"delve-server/internal/domain"
	"delve-server/pkg/api"
	"delve-server/pkg/logger"

	"github.com/gorilla/websocket"
)

// Настройки WebSocket
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client - посредник между Websocket и движком.
type Client struct {
	Server *Server
	Conn   *websocket.Conn
	Send   chan *api.ServerResponse
}

func NewClient(s *Server, conn *websocket.Conn) *Client {
	return &Client{
		Server: s,
		Conn:   conn,
		Send:   make(chan *api.ServerResponse, 16),
	}
}

// readPump читает команды от клиента
func (c *Client) readPump() {
	defer func() {
		close(c.Send)
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Debug("failed to close websocket connection")
		}
		logger.Log.Info("Client disconnected")
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		logger.Log.WithError(err).Warn("failed to set read deadline")
	}
	c.Conn.SetPongHandler(func(string) error {
		if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			logger.Log.WithError(err).Warn("failed to set pong read deadline")
		}
		return nil
	})

	// Первая отрисовка: полный снимок сразу после подключения.
	c.Send <- c.snapshot()

	for {
		var cmd api.ClientCommand
		if err := c.Conn.ReadJSON(&cmd); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Log.Errorf("WS Error: %v", err)
			}
			break
		}

		c.Send <- c.process(cmd)
	}
}

// process выполняет команду под мьютексом сервера и строит ответ.
// Невыполнимое действие - штатный случай: сообщение о причине уже
// лежит в логе движка и уходит клиенту в том же снимке.
func (c *Client) process(cmd api.ClientCommand) *api.ServerResponse {
	s := c.Server
	s.mu.Lock()
	defer s.mu.Unlock()

	action := domain.ParseAction(cmd.Action)

	err := s.Engine.HandleCommand(domain.Command{
		Action:  action,
		ActorID: s.Engine.Player().ID,
		Payload: cmd.Payload,
	})
	if err != nil {
		var imp *domain.Impossible
		if !errors.As(err, &imp) {
			logger.Log.WithError(err).WithField("action", cmd.Action).Warn("Command rejected")
		}
	}

	return s.Engine.BuildState()
}

func (c *Client) snapshot() *api.ServerResponse {
	s := c.Server
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Engine.BuildState()
}

// writePump отправляет данные клиенту + Ping
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Debug("failed to close websocket connection in writePump")
		}
	}()

	for {
		select {
		case message, ok := <-c.Send:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set write deadline")
			}
			if !ok {
				if err := c.Conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
					logger.Log.WithError(err).Debug("write close message failed")
				}
				return
			}
			if err := c.Conn.WriteJSON(message); err != nil {
				logger.Log.WithError(err).Debug("write json message failed")
				return
			}

		case <-ticker.C:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set ping write deadline")
			}
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				logger.Log.WithError(err).Debug("ping failed")
				return
			}
		}
	}
}
