package httpinterface

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
	"github.com/tdex-network/tdex-pooling/internal/core/domain"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	clientBuffSize = 64
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Origins are already filtered by the cors middleware.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type wsClient struct {
	poolID string
	conn   *websocket.Conn
	send   chan []byte
}

// eventHub fans out withdrawal events to the websocket clients listening for
// the pool they occurred in. Slow clients are dropped.
type eventHub struct {
	lock    *sync.RWMutex
	clients map[string]map[*wsClient]struct{}
}

func newEventHub() *eventHub {
	return &eventHub{
		lock:    &sync.RWMutex{},
		clients: make(map[string]map[*wsClient]struct{}),
	}
}

func (h *eventHub) register(c *wsClient) {
	h.lock.Lock()
	defer h.lock.Unlock()

	if _, ok := h.clients[c.poolID]; !ok {
		h.clients[c.poolID] = make(map[*wsClient]struct{})
	}
	h.clients[c.poolID][c] = struct{}{}
}

func (h *eventHub) unregister(c *wsClient) {
	h.lock.Lock()
	defer h.lock.Unlock()

	clients, ok := h.clients[c.poolID]
	if !ok {
		return
	}
	if _, ok := clients[c]; ok {
		delete(clients, c)
		close(c.send)
	}
	if len(clients) <= 0 {
		delete(h.clients, c.poolID)
	}
}

func (h *eventHub) broadcast(withdrawal domain.Withdrawal) {
	msg, err := json.Marshal(withdrawalResponse{toWithdrawalJSON(withdrawal)})
	if err != nil {
		log.WithError(err).Warn("failed to serialize withdrawal event")
		return
	}

	h.lock.RLock()
	slow := make([]*wsClient, 0)
	for c := range h.clients[withdrawal.PoolID] {
		select {
		case c.send <- msg:
		default:
			slow = append(slow, c)
		}
	}
	h.lock.RUnlock()

	for _, c := range slow {
		log.Debugf("dropping slow websocket client for pool %s", c.poolID)
		h.unregister(c)
	}
}

func (h *eventHub) close() {
	h.lock.Lock()
	defer h.lock.Unlock()

	for poolID, clients := range h.clients {
		for c := range clients {
			close(c.send)
		}
		delete(h.clients, poolID)
	}
}

func (h *handler) poolEvents(hub *eventHub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		poolID := chi.URLParam(r, "pool")
		if _, err := h.poolingSvc.GetPool(r.Context(), poolID); err != nil {
			writeAppError(w, err)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.WithError(err).Debug("websocket upgrade failed")
			return
		}

		c := &wsClient{poolID, conn, make(chan []byte, clientBuffSize)}
		hub.register(c)

		go c.writeLoop()
		c.readLoop(hub)
	}
}

// readLoop only drains control frames, the feed is read-only.
func (c *wsClient) readLoop(hub *eventHub) {
	defer func() {
		hub.unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(512)
	//nolint
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(
				err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure,
			) {
				log.WithError(err).Debug("websocket closed unexpectedly")
			}
			return
		}
	}
}

func (c *wsClient) writeLoop() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			//nolint
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				//nolint
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			//nolint
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
