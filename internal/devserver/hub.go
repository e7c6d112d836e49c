package devserver

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/ingyamilmolinar/reverbfx/internal/log"
)

const writeWait = 5 * time.Second

// message is the JSON frame sent to tabs.
type message struct {
	Type string `json:"type"`
	ID   string `json:"id,omitempty"`
	Path string `json:"path,omitempty"`
}

type client struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (c *client) write(data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteMessage(websocket.TextMessage, data)
}

// hub tracks the open reload sockets.
type hub struct {
	upgrader websocket.Upgrader
	log      *log.Logger

	mu      sync.Mutex
	clients map[uuid.UUID]*client
}

func newHub(allowAllOrigins bool, logger *log.Logger) *hub {
	h := &hub{
		log:     logger,
		clients: map[uuid.UUID]*client{},
	}
	if allowAllOrigins {
		h.upgrader.CheckOrigin = func(*http.Request) bool { return true }
	}
	return h
}

func (h *hub) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warnf("livereload upgrade: %v", err)
		return
	}
	id := uuid.New()
	c := &client{conn: conn}

	h.mu.Lock()
	h.clients[id] = c
	h.mu.Unlock()
	h.log.Debugf("tab %s connected", id)

	hello, _ := json.Marshal(message{Type: "hello", ID: id.String()})
	if err := c.write(hello); err != nil {
		h.drop(id)
		return
	}

	// Tabs never send anything; reading only notices the close.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.drop(id)
				return
			}
		}
	}()
}

func (h *hub) drop(id uuid.UUID) {
	h.mu.Lock()
	c, ok := h.clients[id]
	delete(h.clients, id)
	h.mu.Unlock()
	if ok {
		c.conn.Close()
		h.log.Debugf("tab %s disconnected", id)
	}
}

func (h *hub) broadcast(m message) {
	data, err := json.Marshal(m)
	if err != nil {
		h.log.Errorf("encoding %s: %v", m.Type, err)
		return
	}
	h.mu.Lock()
	targets := make(map[uuid.UUID]*client, len(h.clients))
	for id, c := range h.clients {
		targets[id] = c
	}
	h.mu.Unlock()

	for id, c := range targets {
		if err := c.write(data); err != nil {
			h.log.Warnf("tab %s: %v", id, err)
			h.drop(id)
		}
	}
	h.log.Infof("%s %s sent to %d tabs", m.Type, m.Path, len(targets))
}

func (h *hub) len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *hub) closeAll() {
	h.mu.Lock()
	ids := make([]uuid.UUID, 0, len(h.clients))
	for id := range h.clients {
		ids = append(ids, id)
	}
	h.mu.Unlock()
	for _, id := range ids {
		h.drop(id)
	}
}
