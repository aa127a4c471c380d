// Package web serves the game to browsers: an embedded page on / and a
// WebSocket on /ws that streams snapshots and accepts actions.
package web

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/golang/glog"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"awaresnake/pkg/engine/input"
	"awaresnake/pkg/game/renderer"
	"awaresnake/pkg/game/state"
)

//go:embed static/index.html
var indexHTML []byte

const (
	writeWait      = 5 * time.Second
	clientBuffer   = 4
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// ServerMessage is pushed to every browser after each state change
type ServerMessage struct {
	Type  string         `json:"type"`
	State state.Snapshot `json:"state"`
}

// ClientMessage is what a browser sends
type ClientMessage struct {
	Action string `json:"action"`
}

type client struct {
	id   uuid.UUID
	conn *websocket.Conn
	send chan []byte
}

var _ renderer.Renderer = (*Server)(nil)

// Server is the browser front end
type Server struct {
	addr     string
	listener net.Listener
	srv      *http.Server
	intents  chan input.Intent

	mu      sync.Mutex
	clients map[uuid.UUID]*client
	last    []byte
}

// New creates a server that will listen on addr
func New(addr string) *Server {
	s := &Server{
		addr:    addr,
		intents: make(chan input.Intent, renderer.IntentBuffer),
		clients: make(map[uuid.UUID]*client),
	}
	s.srv = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the HTTP routes
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/ws", s.handleWebSocket)
	return mux
}

// Init binds the listening socket
func (s *Server) Init() error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.addr, err)
	}
	s.listener = ln
	glog.Infof("serving on http://%s/", ln.Addr())
	return nil
}

// Addr returns the bound address, or nil before Init
func (s *Server) Addr() net.Addr {
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Intents returns actions received from browsers
func (s *Server) Intents() <-chan input.Intent {
	return s.intents
}

// Run serves HTTP until ctx is done
func (s *Server) Run(ctx context.Context) error {
	if s.listener == nil {
		return errors.New("web: Run called before Init")
	}

	errc := make(chan error, 1)
	go func() {
		errc <- s.srv.Serve(s.listener)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), writeWait)
		defer cancel()
		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	}
}

// Close drops every connection and stops the server
func (s *Server) Close() error {
	s.mu.Lock()
	for id, c := range s.clients {
		c.conn.Close()
		close(c.send)
		delete(s.clients, id)
	}
	s.mu.Unlock()
	return s.srv.Close()
}

// RenderFrame broadcasts snap. Clients whose buffers are full miss the frame.
func (s *Server) RenderFrame(snap state.Snapshot) {
	data, err := json.Marshal(ServerMessage{Type: "state", State: snap})
	if err != nil {
		glog.Errorf("encoding snapshot: %v", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.last = data
	for _, c := range s.clients {
		select {
		case c.send <- data:
		default:
			glog.V(2).Infof("session %s: dropped frame", c.id)
		}
	}
}

// Clients returns the number of connected browsers
func (s *Server) Clients() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(indexHTML)
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		glog.Warningf("upgrade error: %v", err)
		return
	}

	c := &client{
		id:   uuid.New(),
		conn: conn,
		send: make(chan []byte, clientBuffer),
	}
	s.register(c)
	glog.Infof("session %s: connected from %s", c.id, r.RemoteAddr)

	go s.writePump(c)
	s.readPump(c)
}

func (s *Server) register(c *client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clients[c.id] = c
	if s.last != nil {
		c.send <- s.last
	}
}

func (s *Server) unregister(c *client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.clients[c.id]; ok {
		delete(s.clients, c.id)
		close(c.send)
	}
}

// writePump owns all writes on the connection
func (s *Server) writePump(c *client) {
	defer c.conn.Close()
	for data := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			glog.V(1).Infof("session %s: write error: %v", c.id, err)
			return
		}
	}
	c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

// readPump turns browser actions into intents until the connection drops
func (s *Server) readPump(c *client) {
	defer func() {
		s.unregister(c)
		c.conn.Close()
		glog.Infof("session %s: disconnected", c.id)
	}()
	c.conn.SetReadLimit(maxMessageSize)

	for {
		var msg ClientMessage
		if err := c.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				glog.V(1).Infof("session %s: read error: %v", c.id, err)
			}
			return
		}

		intent := input.FromCode(input.DeviceWeb, msg.Action)
		switch intent.Action {
		case input.ActionNone:
			glog.V(1).Infof("session %s: unknown action %q", c.id, msg.Action)
			continue
		case input.ActionQuit:
			// Browsers steer the game but cannot stop the server
			glog.V(1).Infof("session %s: ignored quit", c.id)
			continue
		}
		if !renderer.Send(s.intents, intent) {
			glog.V(2).Infof("session %s: dropped %s", c.id, msg.Action)
		}
	}
}
