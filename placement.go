package tooltip

// SpaceAvailability records, per Direction, whether the overlay placed on
// that side lies entirely inside the viewport.
type SpaceAvailability [4]bool

// Available reports whether d fits.
func (s SpaceAvailability) Available(d Direction) bool {
	if int(d) >= len(s) {
		return false
	}
	return s[d]
}

// Any reports whether at least one direction fits.
func (s SpaceAvailability) Any() bool {
	return s[Down] || s[Up] || s[Left] || s[Right]
}

// Candidates returns the overlay rectangle for each Direction. Vertical
// placements are centered on the anchor's horizontal midpoint and
// horizontal placements on its vertical midpoint.
func Candidates(anchor Rect, overlay Size) [4]Rect {
	mid := anchor.Mid()
	w, h := overlay.Width, overlay.Height
	var c [4]Rect
	c[Down] = Rect{X: mid.X - w/2, Y: anchor.Bottom(), Width: w, Height: h}
	c[Up] = Rect{X: mid.X - w/2, Y: anchor.Top() - h, Width: w, Height: h}
	c[Right] = Rect{X: anchor.Right(), Y: mid.Y - h/2, Width: w, Height: h}
	c[Left] = Rect{X: anchor.Left() - w, Y: mid.Y - h/2, Width: w, Height: h}
	return c
}

// Spaces probes all four candidates against the viewport
// [0, viewport.Width] x [0, viewport.Height]. Edges count as inside.
func Spaces(anchor Rect, overlay Size, viewport Size) SpaceAvailability {
	bounds := Rect{Width: viewport.Width, Height: viewport.Height}
	var s SpaceAvailability
	for d, c := range Candidates(anchor, overlay) {
		s[d] = bounds.ContainsRect(c)
	}
	return s
}

// Choose applies the fallback policy for mode. The primary pair is tried
// first (down then up, or right then left); if neither fits, the
// orthogonal pair is tried and its second member is returned
// unconditionally.
func Choose(s SpaceAvailability, mode PlacementMode) Direction {
	if mode == PlacementLeftRight {
		switch {
		case s[Right]:
			return Right
		case s[Left]:
			return Left
		case s[Up]:
			return Up
		default:
			return Down
		}
	}
	switch {
	case s[Down]:
		return Down
	case s[Up]:
		return Up
	case s[Right]:
		return Right
	default:
		return Left
	}
}

// Resolve picks the side of anchor to place an overlay of the given size.
// overlay must already include OverlayMargin. The result is always one of
// the four directions, even when nothing fits.
func Resolve(anchor Rect, overlay Size, viewport Size, mode PlacementMode) Direction {
	return Choose(Spaces(anchor, overlay, viewport), mode)
}

// Element is anything a GeometryProvider can measure. *Node implements it.
type Element interface {
	// Attached reports whether the element is part of a live tree and can be
	// measured.
	Attached() bool
}

// GeometryProvider exposes the ambient layout state the resolver reads.
type GeometryProvider interface {
	ViewportSize() Size
	// BoundingRect returns the element's rectangle in viewport coordinates.
	// ok is false when the element is nil or not attached.
	BoundingRect(e Element) (r Rect, ok bool)
}

// Resolver resolves placements from live geometry.
type Resolver struct {
	Geometry GeometryProvider
	Mode     PlacementMode
}

// Probe measures anchor and overlay and returns the availability of each
// direction. The overlay size is inflated by OverlayMargin. ok is false when
// either element cannot be measured yet.
func (r Resolver) Probe(anchor, overlay Element) (spaces SpaceAvailability, ok bool) {
	if r.Geometry == nil || isNilElement(anchor) || isNilElement(overlay) {
		return spaces, false
	}
	ar, ok := r.Geometry.BoundingRect(anchor)
	if !ok {
		return spaces, false
	}
	or, ok := r.Geometry.BoundingRect(overlay)
	if !ok {
		return spaces, false
	}
	size := Size{Width: or.Width, Height: or.Height}.Grow(OverlayMargin)
	return Spaces(ar, size, r.Geometry.ViewportSize()), true
}

// ResolveFor measures anchor and overlay and resolves a Direction. ok is
// false when either element cannot be measured yet; callers keep their
// previous Direction in that case.
func (r Resolver) ResolveFor(anchor, overlay Element) (d Direction, ok bool) {
	spaces, ok := r.Probe(anchor, overlay)
	if !ok {
		return Down, false
	}
	return Choose(spaces, r.Mode), true
}

func isNilElement(e Element) bool {
	if e == nil {
		return true
	}
	if n, isNode := e.(*Node); isNode && n == nil {
		return true
	}
	return false
}
