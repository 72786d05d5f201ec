package handlers

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/jobport/jobport/internal/events"
)

// WSHandler streams application status decisions to the connected applicant.
// The application service publishes to a per-applicant Redis channel; this
// handler subscribes and forwards.
type WSHandler struct {
	redis    *redis.Client
	logger   *logrus.Logger
	upgrader websocket.Upgrader
}

func NewWSHandler(rdb *redis.Client, logger *logrus.Logger) *WSHandler {
	if logger == nil {
		logger = logrus.New()
	}
	return &WSHandler{
		redis:  rdb,
		logger: logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true }, // TODO: restrict origin in prod
		},
	}
}

type wsConn struct {
	c  *websocket.Conn
	mu sync.Mutex
}

func (w *wsConn) writeText(b []byte) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.c.SetWriteDeadline(time.Now().Add(10 * time.Second))
	return w.c.WriteMessage(websocket.TextMessage, b)
}

func (h *WSHandler) Notifications(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// upgrade already wrote response in most cases
		return
	}
	defer conn.Close()

	wc := &wsConn{c: conn}
	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	sub := h.redis.Subscribe(ctx, events.NotifyChannel(userID))
	defer sub.Close()

	// Redis -> WS
	go func() {
		ch := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, open := <-ch:
				if !open {
					return
				}
				if err := wc.writeText([]byte(msg.Payload)); err != nil {
					cancel()
					return
				}
			}
		}
	}()

	// Read loop only to observe the close; clients send nothing.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.logger.WithField("user_id", userID).Debug("notification socket closed")
			return
		}
	}
}
