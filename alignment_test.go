package tooltip

import "testing"

func TestPopOverDirections(t *testing.T) {
	overlay := Size{Width: 116, Height: 56}
	tests := []struct {
		name   string
		anchor Rect
		dir    Direction
		want   Vec2
	}{
		{"down", RectFromEdges(100, 5, 200, 25), Down, Vec2{92, 25}},
		{"up", RectFromEdges(100, 580, 200, 595), Up, Vec2{92, 524}},
		{"left", Rect{X: 400, Y: 290, Width: 20, Height: 20}, Left, Vec2{284, 272}},
		{"right", Rect{X: 400, Y: 290, Width: 20, Height: 20}, Right, Vec2{420, 272}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PopOver(tt.anchor, Alignments[tt.dir], overlay, testViewport)
			if got != tt.want {
				t.Errorf("PopOver = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPopOverClamps(t *testing.T) {
	// Centered under an anchor at the left edge: shifted back to x=0.
	got := PopOver(Rect{X: 0, Y: 0, Width: 10, Height: 10}, Alignments[Down], Size{Width: 116, Height: 56}, testViewport)
	if got != (Vec2{0, 10}) {
		t.Errorf("clamped = %v, want {0 10}", got)
	}

	// Right edge.
	got = PopOver(Rect{X: 790, Y: 0, Width: 10, Height: 10}, Alignments[Down], Size{Width: 116, Height: 56}, testViewport)
	if got != (Vec2{684, 10}) {
		t.Errorf("clamped = %v, want {684 10}", got)
	}

	// Wider than the viewport: left where the alignment put it.
	got = PopOver(Rect{X: 0, Y: 0, Width: 10, Height: 10}, Alignments[Down], Size{Width: 900, Height: 56}, testViewport)
	if got != (Vec2{-445, 10}) {
		t.Errorf("unclamped = %v, want {-445 10}", got)
	}

	// No viewport yet: nothing to clamp against.
	got = PopOver(Rect{X: 0, Y: 0, Width: 10, Height: 10}, Alignments[Down], Size{Width: 116, Height: 56}, Size{})
	if got != (Vec2{-53, 10}) {
		t.Errorf("no viewport = %v, want {-53 10}", got)
	}
}

func TestAlignmentsTable(t *testing.T) {
	tests := []struct {
		dir  Direction
		want Alignment
	}{
		{Up, Alignment{EdgeCenter, EdgeCenter, EdgeStart, EdgeEnd}},
		{Down, Alignment{EdgeCenter, EdgeCenter, EdgeEnd, EdgeStart}},
		{Left, Alignment{EdgeStart, EdgeEnd, EdgeCenter, EdgeCenter}},
		{Right, Alignment{EdgeEnd, EdgeStart, EdgeCenter, EdgeCenter}},
	}
	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			if Alignments[tt.dir] != tt.want {
				t.Errorf("Alignments[%v] = %+v, want %+v", tt.dir, Alignments[tt.dir], tt.want)
			}
		})
	}
}

func TestArrowPointsAtAnchor(t *testing.T) {
	want := map[Direction]ArrowGlyph{Down: ArrowUp, Up: ArrowDown, Left: ArrowRight, Right: ArrowLeft}
	for d, g := range want {
		if Arrows[d] != g {
			t.Errorf("Arrows[%v] = %v, want %v", d, Arrows[d], g)
		}
	}
}

func TestArrowGlyphSize(t *testing.T) {
	tests := []struct {
		g    ArrowGlyph
		want Size
	}{
		{ArrowUp, Size{10, 8}},
		{ArrowDown, Size{10, 8}},
		{ArrowLeft, Size{8, 10}},
		{ArrowRight, Size{8, 10}},
	}
	for _, tt := range tests {
		if got := tt.g.Size(); got != tt.want {
			t.Errorf("glyph %d Size = %v, want %v", tt.g, got, tt.want)
		}
	}
}

func TestArrowTriangleInsideBox(t *testing.T) {
	origin := Vec2{50, 50}
	for _, g := range []ArrowGlyph{ArrowUp, ArrowDown, ArrowLeft, ArrowRight} {
		sz := g.Size()
		box := Rect{X: origin.X, Y: origin.Y, Width: sz.Width, Height: sz.Height}
		for i, p := range g.Triangle(origin) {
			if !box.Contains(p.X, p.Y) {
				t.Errorf("glyph %d vertex %d %v outside %v", g, i, p, box)
			}
		}
	}

	// The up glyph's tip sits arrowGap below the box top.
	tip := ArrowUp.Triangle(origin)[0]
	if tip != (Vec2{55, 53}) {
		t.Errorf("up tip = %v, want {55 53}", tip)
	}
}
