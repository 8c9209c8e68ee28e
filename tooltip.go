package tooltip

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// DefaultDelay is how long the hover state must hold before the debounced
// visibility follows it. Show and hide are delayed alike.
const DefaultDelay = 250 * time.Millisecond

// OverlayMargin is added to both measured overlay dimensions before the
// placement probe. It covers the wrapper margin and the arrow glyph.
const OverlayMargin = 16.0

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at draw time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// toRGBA converts c to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D vector used for positions and offsets.
type Vec2 struct {
	X, Y float64
}

// Size is a width/height pair.
type Size struct {
	Width, Height float64
}

// Grow returns s with d added to both dimensions.
func (s Size) Grow(d float64) Size {
	return Size{Width: s.Width + d, Height: s.Height + d}
}

// whitePixel is a 1x1 white image used as the source for solid fills.
var whitePixel *ebiten.Image

func init() {
	whitePixel = ebiten.NewImage(1, 1)
	whitePixel.Fill(ColorWhite.toRGBA())
}

// Rect is an axis-aligned rectangle in viewport coordinates. The origin is
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// RectFromEdges builds a Rect from its left, top, right and bottom edges.
func RectFromEdges(left, top, right, bottom float64) Rect {
	return Rect{X: left, Y: top, Width: right - left, Height: bottom - top}
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Mid returns the center point of the rectangle.
func (r Rect) Mid() Vec2 {
	return Vec2{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// ContainsRect reports whether both the top-left and bottom-right corners of
// other lie inside r.
func (r Rect) ContainsRect(other Rect) bool {
	return r.Contains(other.X, other.Y) && r.Contains(other.Right(), other.Bottom())
}

// Direction is the side of the anchor the overlay occupies.
type Direction uint8

const (
	Down  Direction = iota // below the anchor, centered horizontally
	Up                     // above the anchor, centered horizontally
	Left                   // left of the anchor, centered vertically
	Right                  // right of the anchor, centered vertically
)

var directionNames = [...]string{Down: "down", Up: "up", Left: "left", Right: "right"}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// Directions lists every Direction in declaration order.
var Directions = [4]Direction{Down, Up, Left, Right}

// PlacementMode selects which pair of directions is tried before the
// orthogonal pair.
type PlacementMode uint8

const (
	PlacementUpDown    PlacementMode = iota // prefer down, then up (default)
	PlacementLeftRight                      // prefer right, then left
)

func (m PlacementMode) String() string {
	switch m {
	case PlacementUpDown:
		return "up-down"
	case PlacementLeftRight:
		return "left-right"
	}
	return fmt.Sprintf("PlacementMode(%d)", uint8(m))
}

// ParsePlacementMode parses "up-down" or "left-right". The empty string
// yields the default, PlacementUpDown.
func ParsePlacementMode(s string) (PlacementMode, error) {
	switch s {
	case "", "up-down":
		return PlacementUpDown, nil
	case "left-right":
		return PlacementLeftRight, nil
	}
	return PlacementUpDown, fmt.Errorf("tooltip: unknown placement %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (m PlacementMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *PlacementMode) UnmarshalText(b []byte) error {
	v, err := ParsePlacementMode(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Variant selects the content layout of a tooltip.
type Variant uint8

const (
	VariantDefault  Variant = iota // single text block
	VariantExpanded                // title row, contents, arrow and fade-in
)

func (v Variant) String() string {
	switch v {
	case VariantDefault:
		return "default"
	case VariantExpanded:
		return "expanded"
	}
	return fmt.Sprintf("Variant(%d)", uint8(v))
}

// ParseVariant parses "default" or "expanded". The empty string yields
// VariantDefault.
func ParseVariant(s string) (Variant, error) {
	switch s {
	case "", "default":
		return VariantDefault, nil
	case "expanded":
		return VariantExpanded, nil
	}
	return VariantDefault, fmt.Errorf("tooltip: unknown variant %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (v Variant) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Variant) UnmarshalText(b []byte) error {
	p, err := ParseVariant(string(b))
	if err != nil {
		return err
	}
	*v = p
	return nil
}

// VisibilityState is the hover state of one tooltip. Hovering is the
// instantaneous pointer-over state; DebouncedVisible lags it by the delay.
type VisibilityState struct {
	Hovering         bool
	DebouncedVisible bool
}

// NodeType distinguishes drawing behavior for a Node.
type NodeType uint8

const (
	NodeTypeContainer NodeType = iota // group node with no visual output
	NodeTypeBox                       // solid filled rectangle
	NodeTypeText                      // text block
	NodeTypeArrow                     // triangle glyph pointing toward an anchor
)

// TextAlign controls horizontal text alignment within a TextBlock.
type TextAlign uint8

const (
	TextAlignLeft   TextAlign = iota // align text to the left edge (default)
	TextAlignCenter                  // center text horizontally
	TextAlignRight                   // align text to the right edge
)
