package tooltip

import (
	"fmt"
	"time"
)

// Tooltip shows an overlay next to an anchor node while the anchor is
// hovered. Visibility is debounced; placement is re-resolved from live
// geometry on every frame the overlay is mounted.
type Tooltip struct {
	scene *Scene
	font  Font
	style Style
	opts  Options
	mode  PlacementMode
	vis   *Visibility

	anchor      *Node
	enterHandle ListenerHandle
	leaveHandle ListenerHandle

	direction Direction

	// Mounted only while the debounced visibility is true.
	overlay *Node // outer container including the margin, positioned by PopOver
	box     *Node // measured wrapper
	arrow   *Node // expanded variant only
	fade    *Fade

	closed bool
}

// NewTooltip attaches a tooltip to anchor. Panics if anchor or font is nil;
// returns an error if opts are invalid.
func (s *Scene) NewTooltip(anchor *Node, font Font, opts Options) (*Tooltip, error) {
	if anchor == nil {
		panic("tooltip: nil anchor")
	}
	if font == nil {
		panic("tooltip: nil font")
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	t := &Tooltip{
		scene:     s,
		font:      font,
		style:     s.style.withDefaults(),
		opts:      opts,
		mode:      opts.Mode(),
		direction: Down,
	}
	t.vis = NewVisibility(s.clock, t.style.Delay)
	t.vis.OnChange = t.visibilityChanged
	t.SetAnchor(anchor)
	s.addTooltip(t)
	return t, nil
}

// Wrap attaches a tooltip to the only child of parent. Panics unless parent
// has exactly one child.
func (s *Scene) Wrap(parent *Node, font Font, opts Options) (*Tooltip, error) {
	if parent == nil {
		panic("tooltip: nil parent")
	}
	if n := parent.NumChildren(); n != 1 {
		panic(fmt.Sprintf("tooltip: Wrap needs exactly one child, %q has %d", parent.Name, n))
	}
	return s.NewTooltip(parent.ChildAt(0), font, opts)
}

// Anchor returns the current anchor node, or nil.
func (t *Tooltip) Anchor() *Node {
	return t.anchor
}

// SetAnchor moves the tooltip to a new anchor. Listeners on the old anchor
// are removed before listeners on the new one are added. A nil anchor
// leaves the tooltip without listeners.
func (t *Tooltip) SetAnchor(n *Node) {
	if n == t.anchor && (n == nil || t.enterHandle.list != nil) {
		return
	}
	t.enterHandle.Remove()
	t.leaveHandle.Remove()
	t.enterHandle, t.leaveHandle = ListenerHandle{}, ListenerHandle{}
	t.anchor = n
	if n == nil || t.closed {
		return
	}
	t.enterHandle = n.OnPointerEnter(func(PointerContext) { t.vis.PointerEnter() })
	t.leaveHandle = n.OnPointerLeave(func(PointerContext) { t.vis.PointerLeave() })
}

// Options returns the tooltip's options.
func (t *Tooltip) Options() Options {
	return t.opts
}

// SetOptions replaces the content and placement options. A mounted overlay
// is rebuilt with the new content.
func (t *Tooltip) SetOptions(opts Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	t.opts = opts
	t.mode = opts.Mode()
	if t.overlay != nil {
		t.unmount()
		t.mount()
	}
	return nil
}

// Mode returns the placement mode in effect.
func (t *Tooltip) Mode() PlacementMode {
	return t.mode
}

// Direction returns the side of the anchor the overlay was last placed on.
// It starts as Down.
func (t *Tooltip) Direction() Direction {
	return t.direction
}

// State returns the hover and debounced visibility state.
func (t *Tooltip) State() VisibilityState {
	return t.vis.State()
}

// Visible reports whether the overlay is mounted.
func (t *Tooltip) Visible() bool {
	return t.overlay != nil
}

// Overlay returns the mounted overlay container, or nil.
func (t *Tooltip) Overlay() *Node {
	return t.overlay
}

// Box returns the mounted content wrapper, the element placement measures.
func (t *Tooltip) Box() *Node {
	return t.box
}

// Arrow returns the mounted arrow glyph node, or nil.
func (t *Tooltip) Arrow() *Node {
	return t.arrow
}

// Close cancels any pending debounce timer, detaches the anchor listeners,
// unmounts the overlay and unregisters the tooltip from its scene.
func (t *Tooltip) Close() {
	if t.closed {
		return
	}
	t.vis.Stop()
	t.SetAnchor(nil)
	t.unmount()
	t.scene.removeTooltip(t)
	t.closed = true
}

// checkAnchor turns a hovered anchor that has been disposed or detached into
// a pointer leave. Its own leave event never arrives in that case.
func (t *Tooltip) checkAnchor() {
	if t.anchor == nil || !t.vis.Hovering() {
		return
	}
	if !t.anchor.Attached() {
		t.vis.PointerLeave()
	}
}

func (t *Tooltip) anchorName() string {
	if t.anchor == nil {
		return ""
	}
	return t.anchor.Name
}

func (t *Tooltip) visibilityChanged(visible bool) {
	t.scene.debugVisibility(t, visible)
	if visible {
		t.mount()
	} else {
		t.unmount()
	}
}

// --- Mount / measure ---

// mount builds the overlay subtree and adds it to the overlay layer. It is
// measured and positioned by the next layout pass.
func (t *Tooltip) mount() {
	if t.overlay != nil || t.closed {
		return
	}
	var box *Node
	if t.opts.Variant == VariantExpanded {
		box = t.buildExpanded()
	} else {
		box = t.buildDefault()
	}
	inset := OverlayMargin / 2
	box.SetPosition(inset, inset)

	overlay := NewContainer("tooltip-overlay")
	overlay.SetSize(box.Width+OverlayMargin, box.Height+OverlayMargin)
	overlay.AddChild(box)
	t.scene.overlays.AddChild(overlay)
	t.overlay = overlay
	t.box = box

	if t.opts.Variant == VariantExpanded {
		t.arrow = NewArrow("tooltip-arrow", Arrows[t.direction], t.style.ExpandedBackground)
		t.scene.overlays.AddChild(t.arrow)
		t.fade = FadeIn(overlay, t.style.FadeIn)
		t.arrow.Alpha = overlay.Alpha
	}
}

// unmount disposes the overlay subtree.
func (t *Tooltip) unmount() {
	if t.overlay != nil {
		t.overlay.Dispose()
	}
	if t.arrow != nil {
		t.arrow.Dispose()
	}
	t.overlay, t.box, t.arrow, t.fade = nil, nil, nil, nil
}

// buildDefault lays out a single text block.
func (t *Tooltip) buildDefault() *Node {
	st := t.style
	label := NewText("tooltip-text", t.opts.Text, t.font)
	label.TextBlock.Color = st.Foreground
	label.SetWrapWidth(st.MaxWidth - 2*st.PaddingX)

	h := label.Height + 2*st.PaddingY
	if h < st.MinHeight {
		h = st.MinHeight
	}
	box := NewBox("tooltip-box", label.Width+2*st.PaddingX, h, st.Background)
	label.SetPosition(st.PaddingX, (h-label.Height)/2)
	box.AddChild(label)
	return box
}

// buildExpanded lays out an optional title row (title, extra info on the
// right) above the contents.
func (t *Tooltip) buildExpanded() *Node {
	st := t.style
	p := st.ExpandedPadding
	inner := st.MaxWidth - 2*p

	var title, extra, contents *Node
	if t.opts.TipTitle != "" {
		title = NewText("tooltip-title", t.opts.TipTitle, t.font)
		title.TextBlock.Color = st.ExpandedForeground
	}
	if t.opts.ExtraInfo != "" {
		extra = NewText("tooltip-extra", t.opts.ExtraInfo, t.font)
		extra.TextBlock.Color = st.ExpandedForeground
	}
	if t.opts.Contents != "" {
		contents = NewText("tooltip-contents", t.opts.Contents, t.font)
		contents.TextBlock.Color = st.ExpandedForeground
		contents.SetWrapWidth(inner)
	}

	var rowW, rowH float64
	if title != nil {
		rowW, rowH = title.Width, title.Height
	}
	if extra != nil {
		if title != nil {
			rowW += st.Gap
		}
		rowW += extra.Width
		if extra.Height > rowH {
			rowH = extra.Height
		}
	}

	w := rowW
	h := rowH
	if contents != nil {
		if contents.Width > w {
			w = contents.Width
		}
		if rowH > 0 {
			h += st.Gap
		}
		h += contents.Height
	}
	w += 2 * p
	h += 2 * p

	box := NewBox("tooltip-box", w, h, st.ExpandedBackground)
	y := p
	if title != nil {
		title.SetPosition(p, y)
		box.AddChild(title)
	}
	if extra != nil {
		extra.SetPosition(w-p-extra.Width, y)
		box.AddChild(extra)
	}
	if rowH > 0 {
		y += rowH + st.Gap
	}
	if contents != nil {
		contents.SetPosition(p, y)
		box.AddChild(contents)
	}
	return box
}

// layout re-measures and re-places a mounted overlay. When the anchor or the
// overlay cannot be measured the previous Direction is kept and nothing moves.
func (t *Tooltip) layout() {
	if t.overlay == nil || t.anchor == nil {
		return
	}
	r := Resolver{Geometry: t.scene, Mode: t.mode}
	spaces, ok := r.Probe(t.anchor, t.box)
	if !ok {
		return
	}
	t.direction = Choose(spaces, t.mode)
	t.scene.debugPlacement(t, spaces, t.direction)

	anchorRect := t.anchor.WorldRect()
	viewport := t.scene.ViewportSize()
	a := Alignments[t.direction]

	pos := PopOver(anchorRect, a, Size{Width: t.overlay.Width, Height: t.overlay.Height}, viewport)
	t.overlay.SetPosition(pos.X, pos.Y)

	if t.arrow != nil {
		g := Arrows[t.direction]
		sz := g.Size()
		t.arrow.Glyph = g
		t.arrow.SetSize(sz.Width, sz.Height)
		apos := PopOver(anchorRect, a, sz, viewport)
		t.arrow.SetPosition(apos.X, apos.Y)
		t.arrow.Alpha = t.overlay.Alpha
	}
}

func (t *Tooltip) updateFade(dt time.Duration) {
	if t.fade == nil {
		return
	}
	t.fade.Update(dt)
	if t.arrow != nil && t.overlay != nil {
		t.arrow.Alpha = t.overlay.Alpha
	}
	if t.fade.Done {
		t.fade = nil
	}
}
