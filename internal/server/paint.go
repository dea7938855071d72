package server

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/wvclb/internal/paint"
	"github.com/desertthunder/wvclb/internal/shared"
	"github.com/gorilla/websocket"
)

// ErrUnknownSession is returned for ids not present in the registry.
var ErrUnknownSession = errors.New("unknown paint session")

// Paint message targets.
const (
	TargetCanvas   = "canvas"
	TargetPicker   = "picker"
	TargetTitleBar = "titlebar"
)

// PaintMessage is one client action on a session.
//
//	{"type":"pointer","target":"canvas","event":{"phase":0,"source":0,"client":{"x":1,"y":2}}}
//	{"type":"tool","tool":"eraser"}
//	{"type":"color","color":"#FF0000"}
//	{"type":"swatch","index":3}
//	{"type":"hover","index":3} / {"type":"unhover"}
//	{"type":"toggle-picker"} / {"type":"clear"}
//	{"type":"layout","target":"canvas","layout":{"left":0,"top":0,"width":300,"height":200}}
type PaintMessage struct {
	Type   string              `json:"type"`
	Target string              `json:"target,omitempty"`
	Event  *paint.PointerEvent `json:"event,omitempty"`
	Tool   string              `json:"tool,omitempty"`
	Color  string              `json:"color,omitempty"`
	Index  int                 `json:"index,omitempty"`
	Layout *paint.Layout       `json:"layout,omitempty"`
}

// PaintReply is sent after every message.
type PaintReply struct {
	Session string      `json:"session"`
	State   paint.State `json:"state"`
	Error   string      `json:"error,omitempty"`
}

type paintSession struct {
	mu    sync.Mutex
	ctrl  *paint.Controller
	conns map[*websocket.Conn]struct{}
}

// PaintSessions is the registry of live paint controllers. Each session's controller is
// only touched under that session's lock.
type PaintSessions struct {
	opts     paint.Options
	logger   *log.Logger
	upgrader websocket.Upgrader

	mu       sync.RWMutex
	sessions map[string]*paintSession
}

// NewPaintSessions creates an empty registry whose controllers are built with opts.
func NewPaintSessions(opts paint.Options, logger *log.Logger) *PaintSessions {
	return &PaintSessions{
		opts:     opts,
		logger:   logger,
		sessions: make(map[string]*paintSession),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

func (p *PaintSessions) Routes() []string {
	return []string{"GET /api/paint/ws", "GET /api/paint/{id}/canvas.png"}
}

// Create registers a new session and returns its id.
func (p *PaintSessions) Create() string {
	id := shared.GenerateID()
	p.mu.Lock()
	p.sessions[id] = &paintSession{
		ctrl:  paint.NewController(p.opts),
		conns: make(map[*websocket.Conn]struct{}),
	}
	p.mu.Unlock()
	return id
}

// Remove drops a session and disconnects everyone still attached to it.
func (p *PaintSessions) Remove(id string) {
	p.mu.Lock()
	s, ok := p.sessions[id]
	delete(p.sessions, id)
	p.mu.Unlock()
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for conn := range s.conns {
		goingAway(conn, "session closed")
		_ = conn.Close()
	}
	s.conns = nil
}

// Connections counts the sockets attached to session id.
func (p *PaintSessions) Connections(id string) int {
	s, err := p.get(id)
	if err != nil {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.conns)
}

// Len counts live sessions.
func (p *PaintSessions) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.sessions)
}

func (p *PaintSessions) get(id string) (*paintSession, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	s, ok := p.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSession, id)
	}
	return s, nil
}

// Apply runs msg against session id and returns the resulting state.
func (p *PaintSessions) Apply(id string, msg PaintMessage) (paint.State, error) {
	s, err := p.get(id)
	if err != nil {
		return paint.State{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	err = apply(s.ctrl, msg)
	return s.ctrl.Snapshot(), err
}

func apply(c *paint.Controller, msg PaintMessage) error {
	switch msg.Type {
	case "pointer":
		if msg.Event == nil {
			return fmt.Errorf("pointer message without event")
		}
		switch msg.Target {
		case TargetCanvas, "":
			c.HandleCanvas(*msg.Event)
		case TargetPicker:
			c.HandlePicker(*msg.Event)
		case TargetTitleBar:
			c.HandleTitleBar(*msg.Event)
		default:
			return fmt.Errorf("unknown target %q", msg.Target)
		}
	case "tool":
		t, err := paint.ParseTool(msg.Tool)
		if err != nil {
			return err
		}
		c.SelectTool(t)
	case "color":
		return c.SetColor(msg.Color)
	case "swatch":
		if !c.SelectSwatch(msg.Index) {
			return fmt.Errorf("swatch index %d out of range", msg.Index)
		}
	case "hover":
		c.HoverSwatch(msg.Index)
	case "unhover":
		c.UnhoverSwatch()
	case "toggle-picker":
		c.TogglePicker()
	case "clear":
		c.Clear()
	case "layout":
		if msg.Layout == nil {
			return fmt.Errorf("layout message without layout")
		}
		switch msg.Target {
		case TargetCanvas, "":
			c.Surface().SetLayout(*msg.Layout)
		case TargetPicker:
			c.Picker().SetLayout(*msg.Layout)
		default:
			return fmt.Errorf("unknown target %q", msg.Target)
		}
	default:
		return fmt.Errorf("unknown message type %q", msg.Type)
	}
	return nil
}

// Snapshot returns the current state of session id.
func (p *PaintSessions) Snapshot(id string) (paint.State, error) {
	s, err := p.get(id)
	if err != nil {
		return paint.State{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctrl.Snapshot(), nil
}

// EncodePNG writes the session's surface as PNG.
func (p *PaintSessions) EncodePNG(id string, buf *bytes.Buffer) error {
	s, err := p.get(id)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return paint.EncodePNG(buf, s.ctrl.Surface())
}

func (p *PaintSessions) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if id := r.PathValue("id"); id != "" {
		p.serveCanvas(w, r, id)
		return
	}
	p.serveSocket(w, r)
}

func (p *PaintSessions) serveCanvas(w http.ResponseWriter, r *http.Request, id string) {
	var buf bytes.Buffer
	if err := p.EncodePNG(id, &buf); err != nil {
		if errors.Is(err, ErrUnknownSession) {
			writeError(w, http.StatusNotFound, "Session not found")
			return
		}
		p.logger.Error("encode canvas", "session", id, "error", err)
		writeError(w, http.StatusInternalServerError, internalError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = buf.WriteTo(w)
}

// serveSocket joins ?session=<id> or creates a new session, then applies each incoming
// message and replies with the state snapshot. The creating connection owns the session:
// when it leaves, the session is removed and joiners are disconnected.
func (p *PaintSessions) serveSocket(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("session")
	created := false
	if id == "" {
		id = p.Create()
		created = true
	} else if _, err := p.get(id); err != nil {
		writeError(w, http.StatusNotFound, "Session not found")
		return
	}

	conn, err := p.upgrader.Upgrade(w, r, nil)
	if err != nil {
		p.logger.Warn("websocket upgrade failed", "error", err)
		if created {
			p.Remove(id)
		}
		return
	}
	if !p.attach(id, conn) {
		goingAway(conn, "session closed")
		_ = conn.Close()
		return
	}
	logger := p.logger.With("session", id)
	logger.Info("paint session opened")

	defer func() {
		p.detach(id, conn)
		_ = conn.Close()
		if created {
			p.Remove(id)
		}
		logger.Info("paint session closed")
	}()

	state, _ := p.Snapshot(id)
	if err := conn.WriteJSON(PaintReply{Session: id, State: state}); err != nil {
		return
	}

	for {
		var msg PaintMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Warn("paint session read", "error", err)
			}
			return
		}
		reply := PaintReply{Session: id}
		reply.State, err = p.Apply(id, msg)
		if err != nil {
			reply.Error = err.Error()
		}
		if err := conn.WriteJSON(reply); err != nil {
			logger.Warn("paint session write", "error", err)
			return
		}
	}
}

// attach reports false when the session was removed before the socket could join.
func (p *PaintSessions) attach(id string, conn *websocket.Conn) bool {
	s, err := p.get(id)
	if err != nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conns == nil {
		return false
	}
	s.conns[conn] = struct{}{}
	return true
}

func (p *PaintSessions) detach(id string, conn *websocket.Conn) {
	if s, err := p.get(id); err == nil {
		s.mu.Lock()
		delete(s.conns, conn)
		s.mu.Unlock()
	}
}

// CloseAll sends a going-away close frame to every attached socket.
func (p *PaintSessions) CloseAll() {
	p.mu.RLock()
	defer p.mu.RUnlock()
	for _, s := range p.sessions {
		s.mu.Lock()
		for conn := range s.conns {
			goingAway(conn, "server shutting down")
		}
		s.mu.Unlock()
	}
}

// goingAway may run concurrently with the connection's own writer; WriteControl allows that.
func goingAway(conn *websocket.Conn, reason string) {
	msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, reason)
	_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
}
