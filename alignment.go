package tooltip

// Edge selects a point along one axis of a rectangle: its start (left/top),
// its middle, or its end (right/bottom).
type Edge uint8

const (
	EdgeStart  Edge = iota // left or top
	EdgeCenter             // midpoint
	EdgeEnd                // right or bottom
)

// Alignment describes how PopOver places an overlay. Position picks a point
// on the anchor; Alignment picks which point of the overlay sits on it.
type Alignment struct {
	HorizontalPosition  Edge
	HorizontalAlignment Edge
	VerticalPosition    Edge
	VerticalAlignment   Edge
}

// Alignments maps each Direction to the PopOver alignment that puts the overlay
// on that side, centered along the other axis.
var Alignments = [4]Alignment{
	Up: {
		HorizontalPosition:  EdgeCenter,
		HorizontalAlignment: EdgeCenter,
		VerticalPosition:    EdgeStart,
		VerticalAlignment:   EdgeEnd,
	},
	Down: {
		HorizontalPosition:  EdgeCenter,
		HorizontalAlignment: EdgeCenter,
		VerticalPosition:    EdgeEnd,
		VerticalAlignment:   EdgeStart,
	},
	Left: {
		HorizontalPosition:  EdgeStart,
		HorizontalAlignment: EdgeEnd,
		VerticalPosition:    EdgeCenter,
		VerticalAlignment:   EdgeCenter,
	},
	Right: {
		HorizontalPosition:  EdgeEnd,
		HorizontalAlignment: EdgeStart,
		VerticalPosition:    EdgeCenter,
		VerticalAlignment:   EdgeCenter,
	},
}

// ArrowGlyph is the direction a tooltip arrow points.
type ArrowGlyph uint8

const (
	ArrowUp ArrowGlyph = iota
	ArrowDown
	ArrowLeft
	ArrowRight
)

// Arrows maps each Direction to the glyph pointing back at the anchor.
var Arrows = [4]ArrowGlyph{
	Down:  ArrowUp,
	Up:    ArrowDown,
	Left:  ArrowRight,
	Right: ArrowLeft,
}

const (
	arrowBase   = 10.0 // triangle base
	arrowHeight = 5.0  // base to tip
	arrowGap    = 3.0  // space between the anchor and the tip
)

// Size returns the glyph's box including the gap on the anchor side.
func (g ArrowGlyph) Size() Size {
	switch g {
	case ArrowLeft, ArrowRight:
		return Size{Width: arrowHeight + arrowGap, Height: arrowBase}
	default:
		return Size{Width: arrowBase, Height: arrowHeight + arrowGap}
	}
}

// Triangle returns the glyph's three vertices inside a box of Size()
// whose top-left is origin. The tip faces the anchor and the gap sits
// between the tip and the box edge on that side.
func (g ArrowGlyph) Triangle(origin Vec2) [3]Vec2 {
	x, y := origin.X, origin.Y
	switch g {
	case ArrowUp:
		return [3]Vec2{
			{x + arrowBase/2, y + arrowGap},
			{x + arrowBase, y + arrowGap + arrowHeight},
			{x, y + arrowGap + arrowHeight},
		}
	case ArrowDown:
		return [3]Vec2{
			{x, y},
			{x + arrowBase, y},
			{x + arrowBase/2, y + arrowHeight},
		}
	case ArrowLeft:
		return [3]Vec2{
			{x + arrowGap, y + arrowBase/2},
			{x + arrowGap + arrowHeight, y},
			{x + arrowGap + arrowHeight, y + arrowBase},
		}
	default:
		return [3]Vec2{
			{x, y},
			{x + arrowHeight, y + arrowBase/2},
			{x, y + arrowBase},
		}
	}
}
