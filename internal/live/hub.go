package live

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Hub fans events out to every connected client, raw TCP and WebSocket
// alike. Dead connections are dropped on the first failed write.
type Hub struct {
	mu        sync.Mutex
	tcpConns  map[net.Conn]struct{}
	wsConns   map[*websocket.Conn]struct{}
	writeWait time.Duration
}

type Stats struct {
	TCPClients int `json:"tcp_clients"`
	WSClients  int `json:"ws_clients"`
}

func NewHub() *Hub {
	return &Hub{
		tcpConns:  make(map[net.Conn]struct{}),
		wsConns:   make(map[*websocket.Conn]struct{}),
		writeWait: 2 * time.Second,
	}
}

func (h *Hub) Add(conn net.Conn) {
	h.mu.Lock()
	h.tcpConns[conn] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) Remove(conn net.Conn) {
	h.mu.Lock()
	delete(h.tcpConns, conn)
	h.mu.Unlock()
	_ = conn.Close()
}

func (h *Hub) AddWS(ws *websocket.Conn) {
	h.mu.Lock()
	h.wsConns[ws] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) RemoveWS(ws *websocket.Conn) {
	h.mu.Lock()
	delete(h.wsConns, ws)
	h.mu.Unlock()
	_ = ws.Close()
}

// BroadcastJSON sends v as one newline-terminated JSON line to every
// client. Write failures evict the client in place.
func (h *Hub) BroadcastJSON(v any) {
	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	b = append(b, '\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	for c := range h.tcpConns {
		_ = c.SetWriteDeadline(time.Now().Add(h.writeWait))
		w := bufio.NewWriter(c)
		if _, err := w.Write(b); err != nil {
			_ = c.Close()
			delete(h.tcpConns, c)
			continue
		}
		if err := w.Flush(); err != nil {
			_ = c.Close()
			delete(h.tcpConns, c)
		}
	}

	for ws := range h.wsConns {
		if err := ws.WriteMessage(websocket.TextMessage, b); err != nil {
			_ = ws.Close()
			delete(h.wsConns, ws)
		}
	}
}

func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.tcpConns)
}

func (h *Hub) Stats() Stats {
	h.mu.Lock()
	defer h.mu.Unlock()
	return Stats{
		TCPClients: len(h.tcpConns),
		WSClients:  len(h.wsConns),
	}
}

func (h *Hub) Welcome(conn net.Conn) {
	msg := fmt.Sprintf("{\"type\":\"welcome\",\"message\":\"connected\",\"clients\":%d}\n", h.Count())
	_, _ = conn.Write([]byte(msg))
}
