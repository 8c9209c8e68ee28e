package tooltip

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// maxBatchVertices keeps indices within uint16 range.
const maxBatchVertices = 65532

// TextDrawer is implemented by fonts that can render onto an image. Text
// nodes whose font does not implement it are measured but not drawn.
type TextDrawer interface {
	DrawString(dst *ebiten.Image, s string, x, y float64, c Color)
}

// DrawString renders s with its top-left at (x, y).
func (f *TTFFont) DrawString(dst *ebiten.Image, s string, x, y float64, c Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.Scale(float32(c.R*c.A), float32(c.G*c.A), float32(c.B*c.A), float32(c.A))
	op.LineSpacing = f.lh
	text.Draw(dst, s, f.face, op)
}

// Draw renders the node tree, then the overlay layer, onto screen.
func (s *Scene) Draw(screen *ebiten.Image) {
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.toRGBA())
	}
	s.vertices = s.vertices[:0]
	s.indices = s.indices[:0]
	s.drawNode(screen, s.root, 1)
	s.drawNode(screen, s.overlays, 1)
	s.flush(screen)
}

// drawNode walks the tree depth-first in painter order. Solid fills are
// batched; text flushes the batch first so ordering is preserved.
func (s *Scene) drawNode(dst *ebiten.Image, n *Node, parentAlpha float64) {
	if !n.Visible {
		return
	}
	alpha := parentAlpha * n.Alpha
	if alpha <= 0 {
		return
	}

	switch n.Type {
	case NodeTypeBox:
		r := n.WorldRect()
		c := n.Color
		c.A *= alpha
		s.appendQuad(dst, r, c)
	case NodeTypeArrow:
		p := n.WorldPosition()
		c := n.Color
		c.A *= alpha
		s.appendTriangle(dst, n.Glyph.Triangle(p), c)
	case NodeTypeText:
		s.flush(dst)
		s.drawText(dst, n, alpha)
	}

	for _, child := range n.children {
		s.drawNode(dst, child, alpha)
	}
}

func (s *Scene) drawText(dst *ebiten.Image, n *Node, alpha float64) {
	tb := n.TextBlock
	if tb == nil {
		return
	}
	drawer, ok := tb.Font.(TextDrawer)
	if !ok {
		return
	}
	lines := tb.layout()
	lh := tb.lineHeight()
	p := n.WorldPosition()
	c := tb.Color
	c.A *= alpha
	for i, l := range lines {
		x := p.X
		switch tb.Align {
		case TextAlignCenter:
			x += (tb.measuredW - l.width) / 2
		case TextAlignRight:
			x += tb.measuredW - l.width
		}
		drawer.DrawString(dst, l.text, x, p.Y+float64(i)*lh, c)
	}
}

// appendQuad queues a solid rectangle, flushing first if the batch is full.
func (s *Scene) appendQuad(dst *ebiten.Image, r Rect, c Color) {
	if len(s.vertices)+4 > maxBatchVertices {
		s.flush(dst)
	}
	base := uint16(len(s.vertices))
	s.vertices = append(s.vertices,
		solidVertex(r.X, r.Y, c),
		solidVertex(r.Right(), r.Y, c),
		solidVertex(r.Right(), r.Bottom(), c),
		solidVertex(r.X, r.Bottom(), c),
	)
	s.indices = append(s.indices, base, base+1, base+2, base, base+2, base+3)
}

func (s *Scene) appendTriangle(dst *ebiten.Image, pts [3]Vec2, c Color) {
	if len(s.vertices)+3 > maxBatchVertices {
		s.flush(dst)
	}
	base := uint16(len(s.vertices))
	for _, p := range pts {
		s.vertices = append(s.vertices, solidVertex(p.X, p.Y, c))
	}
	s.indices = append(s.indices, base, base+1, base+2)
}

func solidVertex(x, y float64, c Color) ebiten.Vertex {
	return ebiten.Vertex{
		DstX: float32(x), DstY: float32(y),
		SrcX: 0.5, SrcY: 0.5,
		ColorR: float32(c.R), ColorG: float32(c.G), ColorB: float32(c.B), ColorA: float32(c.A),
	}
}

// flush submits accumulated solid fills as a single DrawTriangles call.
func (s *Scene) flush(dst *ebiten.Image) {
	if len(s.indices) == 0 {
		return
	}
	var op ebiten.DrawTrianglesOptions
	dst.DrawTriangles(s.vertices, s.indices, whitePixel, &op)
	s.vertices = s.vertices[:0]
	s.indices = s.indices[:0]
}
