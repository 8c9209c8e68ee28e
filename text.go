package tooltip

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/rivo/uniseg"
)

// Font is the interface for text measurement and layout.
type Font interface {
	MeasureString(text string) (width, height float64)
	LineHeight() float64
}

// --- TextBlock ---

// TextBlock holds text content, formatting, and cached layout state.
// Newlines in Content are kept; other line breaks are chosen by the Unicode
// line breaking rules when WrapWidth is set.
type TextBlock struct {
	Content    string
	Font       Font
	Align      TextAlign
	WrapWidth  float64 // 0 = no wrapping
	Color      Color
	LineHeight float64 // override; 0 = use Font.LineHeight()

	// Cached layout (unexported)
	layoutDirty bool
	measuredW   float64
	measuredH   float64
	lines       []textLine
}

// textLine stores one laid-out line.
type textLine struct {
	text  string
	width float64
}

// lineHeight returns the effective line height for this text block.
func (tb *TextBlock) lineHeight() float64 {
	if tb.LineHeight > 0 {
		return tb.LineHeight
	}
	if tb.Font != nil {
		return tb.Font.LineHeight()
	}
	return 0
}

// Lines returns the laid-out lines.
func (tb *TextBlock) Lines() []string {
	lines := tb.layout()
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.text
	}
	return out
}

// layout recomputes line breaks if dirty. Returns the cached lines.
func (tb *TextBlock) layout() []textLine {
	if !tb.layoutDirty {
		return tb.lines
	}
	tb.layoutDirty = false
	tb.lines = tb.lines[:0]
	tb.measuredW, tb.measuredH = 0, 0
	if tb.Font == nil || tb.Content == "" {
		return tb.lines
	}

	for _, para := range strings.Split(tb.Content, "\n") {
		tb.lines = tb.wrapParagraph(para, tb.lines)
	}
	for _, l := range tb.lines {
		if l.width > tb.measuredW {
			tb.measuredW = l.width
		}
	}
	tb.measuredH = float64(len(tb.lines)) * tb.lineHeight()
	return tb.lines
}

// wrapParagraph breaks a single paragraph into lines no wider than
// WrapWidth where the break opportunities allow it. A segment wider than
// WrapWidth on its own gets a line to itself.
func (tb *TextBlock) wrapParagraph(para string, lines []textLine) []textLine {
	if tb.WrapWidth <= 0 {
		return append(lines, tb.measureLine(para))
	}

	var cur strings.Builder
	rest := para
	state := -1
	for len(rest) > 0 {
		var seg string
		var mustBreak bool
		seg, rest, mustBreak, state = uniseg.FirstLineSegmentInString(rest, state)

		candidate := cur.String() + seg
		if cur.Len() > 0 {
			w, _ := tb.Font.MeasureString(strings.TrimRight(candidate, " \t"))
			if w > tb.WrapWidth {
				lines = append(lines, tb.measureLine(cur.String()))
				cur.Reset()
			}
		}
		cur.WriteString(seg)
		if mustBreak && len(rest) > 0 {
			lines = append(lines, tb.measureLine(cur.String()))
			cur.Reset()
		}
	}
	return append(lines, tb.measureLine(cur.String()))
}

func (tb *TextBlock) measureLine(s string) textLine {
	s = strings.TrimRight(s, " \t\r")
	w, _ := tb.Font.MeasureString(s)
	return textLine{text: s, width: w}
}

// --- TTFFont ---

// TTFFont wraps Ebitengine's text/v2 for TrueType font rendering.
type TTFFont struct {
	face   *text.GoTextFace
	source *text.GoTextFaceSource
	size   float64
	lh     float64 // cached line height
}

// LoadTTFFont loads a TrueType font from raw TTF/OTF data at the given size.
func LoadTTFFont(ttfData []byte, size float64) (*TTFFont, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("tooltip: failed to parse TTF data: %w", err)
	}

	face := &text.GoTextFace{
		Source: source,
		Size:   size,
	}

	m := face.Metrics()
	lh := m.HAscent + m.HDescent + m.HLineGap

	return &TTFFont{
		face:   face,
		source: source,
		size:   size,
		lh:     lh,
	}, nil
}

// MeasureString returns the width and height of the rendered text.
func (f *TTFFont) MeasureString(s string) (width, height float64) {
	return text.Measure(s, f.face, f.lh)
}

// LineHeight returns the vertical distance between baselines.
func (f *TTFFont) LineHeight() float64 {
	return f.lh
}

// Face returns the underlying GoTextFace for direct Ebitengine text/v2 rendering.
func (f *TTFFont) Face() *text.GoTextFace {
	return f.face
}

// WithSize returns a font sharing this font's source at a different size.
func (f *TTFFont) WithSize(size float64) *TTFFont {
	face := &text.GoTextFace{Source: f.source, Size: size}
	m := face.Metrics()
	return &TTFFont{face: face, source: f.source, size: size, lh: m.HAscent + m.HDescent + m.HLineGap}
}
