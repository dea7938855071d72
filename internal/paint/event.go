package paint

// Phase is the stage of a pointer gesture.
type Phase int

const (
	PhaseDown Phase = iota
	PhaseMove
	PhaseUp
	PhaseLeave
)

var phaseNames = [...]string{"down", "move", "up", "leave"}

func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "unknown"
}

// ParsePhase maps a phase name back to its value.
func ParsePhase(s string) (Phase, bool) {
	for i, name := range phaseNames {
		if name == s {
			return Phase(i), true
		}
	}
	return 0, false
}

// Source is the input device that produced an event.
type Source int

const (
	SourceMouse Source = iota
	SourceTouch
)

// PointerEvent is the single input abstraction for mouse and touch.
//
// Mouse events carry their position in Client. Touch events carry Touches (active
// points) and ChangedTouches (points that just lifted, present on touch end).
type PointerEvent struct {
	Phase          Phase   `json:"phase"`
	Source         Source  `json:"source"`
	Client         Point   `json:"client"`
	Touches        []Point `json:"touches,omitempty"`
	ChangedTouches []Point `json:"changedTouches,omitempty"`
}

// Mouse builds a mouse event at client position (x, y).
func Mouse(phase Phase, x, y float64) PointerEvent {
	return PointerEvent{Phase: phase, Source: SourceMouse, Client: Pt(x, y)}
}

// Touch builds a touch event with the given active touch points.
func Touch(phase Phase, touches ...Point) PointerEvent {
	return PointerEvent{Phase: phase, Source: SourceTouch, Touches: touches}
}

// Position returns the client position of e. Touch events use the first active touch,
// then the first changed touch; with neither, ok is false and the event is a no-op.
func (e PointerEvent) Position() (p Point, ok bool) {
	if e.Source != SourceTouch {
		return e.Client, true
	}
	if len(e.Touches) > 0 {
		return e.Touches[0], true
	}
	if len(e.ChangedTouches) > 0 {
		return e.ChangedTouches[0], true
	}
	return Point{}, false
}

// releases reports whether e ends a gesture.
func (e PointerEvent) releases() bool {
	return e.Phase == PhaseUp || e.Phase == PhaseLeave
}
