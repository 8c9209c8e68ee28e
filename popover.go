package tooltip

// PopOver returns the top-left position of an overlay of the given size
// placed against anchor according to a. On each axis where the overlay fits
// the viewport it is shifted back inside it; where it does not fit it is
// left where the alignment put it.
func PopOver(anchor Rect, a Alignment, size Size, viewport Size) Vec2 {
	x := edgeAt(anchor.X, anchor.Width, a.HorizontalPosition) - edgeOffset(size.Width, a.HorizontalAlignment)
	y := edgeAt(anchor.Y, anchor.Height, a.VerticalPosition) - edgeOffset(size.Height, a.VerticalAlignment)
	return Vec2{
		X: clampAxis(x, size.Width, viewport.Width),
		Y: clampAxis(y, size.Height, viewport.Height),
	}
}

// edgeAt returns the coordinate of edge e on a span starting at start.
func edgeAt(start, length float64, e Edge) float64 {
	switch e {
	case EdgeCenter:
		return start + length/2
	case EdgeEnd:
		return start + length
	default:
		return start
	}
}

// edgeOffset returns the distance from an overlay's start to its edge e.
func edgeOffset(length float64, e Edge) float64 {
	switch e {
	case EdgeCenter:
		return length / 2
	case EdgeEnd:
		return length
	default:
		return 0
	}
}

func clampAxis(pos, length, limit float64) float64 {
	if length > limit || limit <= 0 {
		return pos
	}
	if pos < 0 {
		return 0
	}
	if pos+length > limit {
		return limit - length
	}
	return pos
}
