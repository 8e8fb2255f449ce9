// Package debugview serves live grid snapshots to browser clients over
// a websocket, for inspecting simulation data while it evolves. It is
// an opt-in observability surface; nothing in the core depends on it.
package debugview

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/oceanlod/swell"
)

// Frame is one snapshot message sent to every connected client.
type Frame struct {
	Type    string    `json:"type"`
	Width   int       `json:"width"`
	Height  int       `json:"height"`
	Heights []float32 `json:"heights,omitempty"`
	Flow    []float32 `json:"flow,omitempty"` // interleaved x,y pairs
	Time    float64   `json:"time"`
}

// Source produces the frame to send. It is called on the viewer's
// broadcast goroutine, so implementations that read live grids must
// synchronize with the simulation themselves.
type Source func() Frame

// Viewer streams frames from a Source to websocket clients at a fixed
// interval. Each client also receives one frame on connect.
//
// Unlike the core containers, Viewer is concurrent: the HTTP server,
// per-client readers, and the broadcast loop run on their own
// goroutines, with the client set guarded by a mutex and one write
// mutex per connection.
type Viewer struct {
	addr     string
	source   Source
	interval time.Duration
	log      *slog.Logger

	upgrader websocket.Upgrader
	srv      *http.Server
	done     chan struct{}

	mu      sync.RWMutex
	clients map[*websocket.Conn]*sync.Mutex
}

// ViewerOption configures a Viewer.
type ViewerOption func(*Viewer)

// WithInterval sets the broadcast interval. Default 250ms.
func WithInterval(d time.Duration) ViewerOption {
	return func(v *Viewer) { v.interval = d }
}

// WithLogger sets the viewer's logger. Default is the shared swell
// logger.
func WithLogger(l *slog.Logger) ViewerOption {
	return func(v *Viewer) { v.log = l }
}

// New creates a viewer serving on addr.
func New(addr string, source Source, opts ...ViewerOption) *Viewer {
	v := &Viewer{
		addr:     addr,
		source:   source,
		interval: 250 * time.Millisecond,
		log:      swell.Logger(),
		upgrader: websocket.Upgrader{
			// Local debug tool: any origin may connect.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		done:    make(chan struct{}),
		clients: make(map[*websocket.Conn]*sync.Mutex),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Handler returns the websocket endpoint. It is also mounted at /ws by
// Start; tests and embedders can serve it on their own mux.
func (v *Viewer) Handler() http.Handler {
	return http.HandlerFunc(v.handleWS)
}

// Start begins serving and broadcasting. It returns once the listener
// is closed; a clean Shutdown returns nil.
func (v *Viewer) Start() error {
	mux := http.NewServeMux()
	mux.Handle("/ws", v.Handler())

	v.srv = &http.Server{
		Addr:              v.addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go v.broadcastLoop()

	v.log.Info("debugview: serving", slog.String("addr", v.addr))
	err := v.srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return fmt.Errorf("debugview: serve: %w", err)
}

// Shutdown stops broadcasting, disconnects clients, and closes the
// listener.
func (v *Viewer) Shutdown(ctx context.Context) error {
	close(v.done)

	v.mu.Lock()
	for conn := range v.clients {
		_ = conn.Close()
	}
	clear(v.clients)
	v.mu.Unlock()

	if v.srv == nil {
		return nil
	}
	v.log.Info("debugview: shutting down")
	return v.srv.Shutdown(ctx)
}

// handleWS upgrades a connection, sends one initial frame, and parks in
// a read loop until the client goes away.
func (v *Viewer) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := v.upgrader.Upgrade(w, r, nil)
	if err != nil {
		v.log.Warn("debugview: upgrade failed", slog.String("error", err.Error()))
		return
	}
	defer func() {
		_ = conn.Close()
	}()

	connMu := &sync.Mutex{}
	v.mu.Lock()
	v.clients[conn] = connMu
	v.mu.Unlock()
	defer func() {
		v.mu.Lock()
		delete(v.clients, conn)
		v.mu.Unlock()
	}()

	v.send(conn, connMu, v.source())
	v.log.Debug("debugview: client connected", slog.String("remote", conn.RemoteAddr().String()))

	// Drain control and client messages until the connection drops.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// broadcastLoop pushes a frame to every client each interval.
func (v *Viewer) broadcastLoop() {
	ticker := time.NewTicker(v.interval)
	defer ticker.Stop()

	for {
		select {
		case <-v.done:
			return
		case <-ticker.C:
		}

		frame := v.source()

		v.mu.RLock()
		conns := make(map[*websocket.Conn]*sync.Mutex, len(v.clients))
		for conn, mu := range v.clients {
			conns[conn] = mu
		}
		v.mu.RUnlock()

		for conn, mu := range conns {
			v.send(conn, mu, frame)
		}
	}
}

// send writes one frame, dropping the client on failure.
func (v *Viewer) send(conn *websocket.Conn, connMu *sync.Mutex, frame Frame) {
	connMu.Lock()
	err := conn.WriteJSON(frame)
	connMu.Unlock()
	if err != nil {
		v.log.Warn("debugview: dropping client", slog.String("error", err.Error()))
		v.mu.Lock()
		delete(v.clients, conn)
		v.mu.Unlock()
		_ = conn.Close()
	}
}

// HeightFrame builds a Source for a scalar grid. The elapsed time
// reported in each frame starts when HeightFrame is called.
func HeightFrame(g *swell.Grid[float32]) Source {
	start := time.Now()
	snap := swell.NewSnapshot(g, func(h float32) float32 { return h })
	return func() Frame {
		return Frame{
			Type:    "heights",
			Width:   g.Width(),
			Height:  g.Height(),
			Heights: snap.Values(),
			Time:    time.Since(start).Seconds(),
		}
	}
}
