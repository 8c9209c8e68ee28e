package tooltip

import (
	"fmt"
	"io"
	"log/slog"
)

// discardLogger is used until SetLogger is called.
var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply. Only valid
// with a single Scene.
var globalDebug bool

// SetLogger sets the logger used for debug output. nil restores the
// discarding logger.
func (s *Scene) SetLogger(l *slog.Logger) {
	if l == nil {
		l = discardLogger
	}
	s.log = l
}

// Logger returns the scene's logger.
func (s *Scene) Logger() *slog.Logger {
	return s.log
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics and visibility and placement decisions are logged at debug
// level.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("tooltip debug: %s on disposed node %q", op, n.Name))
	}
}

func (s *Scene) debugVisibility(t *Tooltip, visible bool) {
	if !s.debug {
		return
	}
	s.log.Debug("tooltip visibility",
		slog.String("anchor", t.anchorName()),
		slog.Bool("visible", visible),
		slog.Duration("at", s.clock.Now()))
}

func (s *Scene) debugPlacement(t *Tooltip, spaces SpaceAvailability, d Direction) {
	if !s.debug {
		return
	}
	s.log.Debug("tooltip placement",
		slog.String("anchor", t.anchorName()),
		slog.String("mode", t.mode.String()),
		slog.Bool("down", spaces[Down]),
		slog.Bool("up", spaces[Up]),
		slog.Bool("left", spaces[Left]),
		slog.Bool("right", spaces[Right]),
		slog.String("direction", d.String()))
}
