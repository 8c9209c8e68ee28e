package tooltip

import (
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is the top-level object that owns the node tree, the overlay layer,
// the frame clock, pointer state and the tooltips attached to its nodes.
// Scenes are single-threaded: call every method from the game loop.
type Scene struct {
	// ClearColor, when non-transparent, fills the screen before drawing.
	ClearColor Color

	root     *Node
	overlays *Node
	viewport Size
	clock    *FrameClock
	style    Style
	tooltips []*Tooltip

	log   *slog.Logger
	debug bool

	// Input state
	pointers    [maxPointers]pointerState
	hitBuf      []*Node
	touchIDs    []ebiten.TouchID
	injectQueue []syntheticPointerEvent
	synthetic   bool
	testRunner  *TestRunner

	// Draw scratch buffers
	vertices []ebiten.Vertex
	indices  []uint16
}

// NewScene creates a new scene with a pre-created root container and an
// empty overlay layer drawn above it.
func NewScene() *Scene {
	root := NewContainer("root")
	root.root = true
	overlays := NewContainer("overlays")
	overlays.root = true
	return &Scene{
		root:     root,
		overlays: overlays,
		clock:    NewFrameClock(),
		style:    DefaultStyle(),
		log:      discardLogger,
	}
}

// Root returns the scene's root container node. Anchors live under it.
func (s *Scene) Root() *Node {
	return s.root
}

// Overlays returns the layer tooltips mount their overlays into. It is drawn
// after Root and never hit-tested.
func (s *Scene) Overlays() *Node {
	return s.overlays
}

// Clock returns the frame clock that drives debounce timers and fades.
func (s *Scene) Clock() *FrameClock {
	return s.clock
}

// SetStyle sets the style applied to tooltips created afterwards. Zero
// fields fall back to DefaultStyle.
func (s *Scene) SetStyle(st Style) {
	s.style = st.withDefaults()
}

// Style returns the scene's tooltip style.
func (s *Scene) Style() Style {
	return s.style
}

// SetViewportSize sets the viewport extents used for hit testing and
// placement. Run calls it from Layout.
func (s *Scene) SetViewportSize(w, h float64) {
	s.viewport = Size{Width: w, Height: h}
}

// ViewportSize implements GeometryProvider.
func (s *Scene) ViewportSize() Size {
	return s.viewport
}

// BoundingRect implements GeometryProvider for *Node elements.
func (s *Scene) BoundingRect(e Element) (Rect, bool) {
	n, ok := e.(*Node)
	if !ok || n == nil || !n.Attached() {
		return Rect{}, false
	}
	return n.WorldRect(), true
}

// Tooltips returns the live tooltips. The returned slice MUST NOT be mutated.
func (s *Scene) Tooltips() []*Tooltip {
	return s.tooltips
}

// Update advances the scene by one tick at the current TPS.
func (s *Scene) Update() {
	s.Step(time.Second / time.Duration(ebiten.TPS()))
}

// Step advances the scene by dt: input and hover dispatch first, then
// anchors that left the tree are treated as unhovered, then debounce timers, then fades, then the measure and placement pass for
// every mounted overlay.
func (s *Scene) Step(dt time.Duration) {
	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	s.processInput()
	for _, t := range s.tooltips {
		t.checkAnchor()
	}
	s.clock.Advance(dt)
	for _, t := range s.tooltips {
		t.updateFade(dt)
	}
	s.layoutOverlays()
}

// layoutOverlays runs the measure/resolve/position cycle for mounted
// overlays. Geometry is read fresh every frame.
func (s *Scene) layoutOverlays() {
	for _, t := range s.tooltips {
		t.layout()
	}
}

// addTooltip registers t for per-frame layout.
func (s *Scene) addTooltip(t *Tooltip) {
	s.tooltips = append(s.tooltips, t)
}

// removeTooltip unregisters t.
func (s *Scene) removeTooltip(t *Tooltip) {
	for i, c := range s.tooltips {
		if c == t {
			copy(s.tooltips[i:], s.tooltips[i+1:])
			s.tooltips[len(s.tooltips)-1] = nil
			s.tooltips = s.tooltips[:len(s.tooltips)-1]
			return
		}
	}
}
