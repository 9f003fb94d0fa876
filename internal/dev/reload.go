package dev

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// ReloadPath is the websocket endpoint browsers connect to.
const ReloadPath = "/_dev/reload"

// writeWait bounds a single websocket write.
const writeWait = 5 * time.Second

// ReloadMessageType represents the type of reload message.
type ReloadMessageType string

const (
	ReloadTypeFull  ReloadMessageType = "reload"
	ReloadTypeCSS   ReloadMessageType = "css"
	ReloadTypeError ReloadMessageType = "error"
	ReloadTypeClear ReloadMessageType = "clear"
)

// ReloadMessage is sent to browsers via WebSocket.
type ReloadMessage struct {
	Type  ReloadMessageType `json:"type"`
	Error string            `json:"error,omitempty"`
	File  string            `json:"file,omitempty"`
}

// ReloadServer manages WebSocket connections for live reload.
type ReloadServer struct {
	clients  map[*websocket.Conn]bool
	mu       sync.RWMutex
	writeMu  sync.Mutex
	upgrader websocket.Upgrader
	logger   *slog.Logger
	failed   bool
}

// NewReloadServer creates a new reload server. A nil logger uses slog.Default().
func NewReloadServer(logger *slog.Logger) *ReloadServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReloadServer{
		clients: make(map[*websocket.Conn]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // Allow all origins in dev
			},
		},
		logger: logger,
	}
}

// ServeHTTP upgrades the request and holds the connection until the client
// disconnects.
func (r *ReloadServer) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	conn, err := r.upgrader.Upgrade(w, req, nil)
	if err != nil {
		r.logger.Debug("reload upgrade failed", "error", err)
		return
	}

	r.mu.Lock()
	r.clients[conn] = true
	r.mu.Unlock()
	r.logger.Debug("reload client connected", "remote", req.RemoteAddr)

	// Keep connection alive until client disconnects
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	r.remove(conn)
}

// NotifyReload sends a full page reload message to all clients.
func (r *ReloadServer) NotifyReload() {
	r.broadcast(ReloadMessage{Type: ReloadTypeFull})
}

// NotifyCSS sends a CSS-only reload message to all clients.
func (r *ReloadServer) NotifyCSS(file string) {
	r.broadcast(ReloadMessage{Type: ReloadTypeCSS, File: file})
}

// NotifyError sends an error message to all clients. The next change
// clears it.
func (r *ReloadServer) NotifyError(errMsg string) {
	r.mu.Lock()
	r.failed = true
	r.mu.Unlock()
	r.broadcast(ReloadMessage{Type: ReloadTypeError, Error: errMsg})
}

// ClearError clears a reported error on all clients.
func (r *ReloadServer) ClearError() {
	r.mu.Lock()
	r.failed = false
	r.mu.Unlock()
	r.broadcast(ReloadMessage{Type: ReloadTypeClear})
}

// HandleError forwards a watcher error to all clients.
func (r *ReloadServer) HandleError(err error) {
	r.NotifyError(err.Error())
}

// HandleChange notifies clients about a watched file change: stylesheets
// are swapped in place, anything else reloads the page. A pending error is
// cleared first.
func (r *ReloadServer) HandleChange(c Change) {
	r.mu.RLock()
	failed := r.failed
	r.mu.RUnlock()
	if failed {
		r.ClearError()
	}
	if c.Type == ChangeCSS {
		r.NotifyCSS(c.Path)
		return
	}
	r.NotifyReload()
}

// broadcast sends a message to all connected clients.
func (r *ReloadServer) broadcast(msg ReloadMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}

	r.mu.RLock()
	clients := make([]*websocket.Conn, 0, len(r.clients))
	for client := range r.clients {
		clients = append(clients, client)
	}
	r.mu.RUnlock()

	// gorilla connections allow one concurrent writer.
	r.writeMu.Lock()
	defer r.writeMu.Unlock()
	for _, client := range clients {
		_ = client.SetWriteDeadline(time.Now().Add(writeWait))
		if err := client.WriteMessage(websocket.TextMessage, data); err != nil {
			r.logger.Debug("reload client dropped", "error", err)
			r.remove(client)
		}
	}
	r.logger.Debug("reload broadcast", "type", msg.Type, "clients", len(clients))
}

func (r *ReloadServer) remove(conn *websocket.Conn) {
	r.mu.Lock()
	delete(r.clients, conn)
	r.mu.Unlock()
	conn.Close()
}

// ClientCount returns the number of connected clients.
func (r *ReloadServer) ClientCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.clients)
}

// Close closes all client connections.
func (r *ReloadServer) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for client := range r.clients {
		client.Close()
		delete(r.clients, client)
	}
}
