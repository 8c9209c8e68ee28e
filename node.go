package tooltip

// PointerContext carries pointer event data.
type PointerContext struct {
	Node      *Node
	GlobalX   float64
	GlobalY   float64
	LocalX    float64
	LocalY    float64
	PointerID int
}

// --- ID counter ---

// nodeIDCounter is a plain counter; scenes are single-threaded.
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// --- Node ---

// Node is a scene element: an anchor, an overlay, or a part of one. A single
// flat struct is used for all node types.
type Node struct {
	// Identity
	ID   uint32
	Name string
	Type NodeType

	// Hierarchy
	Parent   *Node
	children []*Node

	// Local offset from the parent and box size. Text nodes size
	// themselves from their TextBlock.
	X, Y          float64
	Width, Height float64

	// Visibility & interaction
	Alpha        float64
	Visible      bool
	Interactable bool

	// Box and arrow fill; text color lives on the TextBlock.
	Color Color

	// Text fields (NodeTypeText)
	TextBlock *TextBlock

	// Arrow fields (NodeTypeArrow)
	Glyph ArrowGlyph

	// Metadata
	UserData any

	enter listenerList
	leave listenerList

	// Internal
	root     bool
	disposed bool
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.Alpha = 1
	n.Color = ColorWhite
	n.Visible = true
}

// NewContainer creates a container node with no visual representation.
func NewContainer(name string) *Node {
	n := &Node{Name: name, Type: NodeTypeContainer}
	nodeDefaults(n)
	return n
}

// NewBox creates a solid rectangle of the given size and color.
func NewBox(name string, w, h float64, c Color) *Node {
	n := &Node{Name: name, Type: NodeTypeBox, Width: w, Height: h}
	nodeDefaults(n)
	n.Color = c
	return n
}

// NewText creates a text node. The node's size is the measured size of the
// laid-out text.
func NewText(name string, content string, font Font) *Node {
	n := &Node{
		Name: name,
		Type: NodeTypeText,
		TextBlock: &TextBlock{
			Content:     content,
			Font:        font,
			Color:       ColorWhite,
			layoutDirty: true,
		},
	}
	nodeDefaults(n)
	n.syncTextSize()
	return n
}

// NewArrow creates an arrow glyph node sized to g.
func NewArrow(name string, g ArrowGlyph, c Color) *Node {
	sz := g.Size()
	n := &Node{Name: name, Type: NodeTypeArrow, Glyph: g, Width: sz.Width, Height: sz.Height}
	nodeDefaults(n)
	n.Color = c
	return n
}

// syncTextSize copies the text block's measured size onto the node.
func (n *Node) syncTextSize() {
	if n.TextBlock == nil {
		return
	}
	n.TextBlock.layout()
	n.Width, n.Height = n.TextBlock.measuredW, n.TextBlock.measuredH
}

// SetText replaces a text node's content and re-measures it.
func (n *Node) SetText(content string) {
	if n.TextBlock == nil {
		return
	}
	n.TextBlock.Content = content
	n.TextBlock.layoutDirty = true
	n.syncTextSize()
}

// SetWrapWidth sets the maximum line width of a text node and re-measures it.
// Zero disables wrapping.
func (n *Node) SetWrapWidth(w float64) {
	if n.TextBlock == nil {
		return
	}
	n.TextBlock.WrapWidth = w
	n.TextBlock.layoutDirty = true
	n.syncTextSize()
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("tooltip: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("tooltip: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("tooltip: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// --- Geometry ---

// WorldPosition returns the node's top-left in scene coordinates.
func (n *Node) WorldPosition() Vec2 {
	var p Vec2
	for c := n; c != nil; c = c.Parent {
		p.X += c.X
		p.Y += c.Y
	}
	return p
}

// WorldRect returns the node's bounding rectangle in scene coordinates.
func (n *Node) WorldRect() Rect {
	p := n.WorldPosition()
	return Rect{X: p.X, Y: p.Y, Width: n.Width, Height: n.Height}
}

// SetPosition sets the local offset.
func (n *Node) SetPosition(x, y float64) {
	n.X = x
	n.Y = y
}

// SetSize sets the box size. Ignored for text nodes, which size themselves.
func (n *Node) SetSize(w, h float64) {
	if n.Type == NodeTypeText {
		return
	}
	n.Width = w
	n.Height = h
}

// WorldToLocal converts scene coordinates to this node's local coordinates.
func (n *Node) WorldToLocal(wx, wy float64) (lx, ly float64) {
	p := n.WorldPosition()
	return wx - p.X, wy - p.Y
}

// Attached reports whether the node is live and connected to a scene root.
func (n *Node) Attached() bool {
	if n == nil {
		return false
	}
	for c := n; c != nil; c = c.Parent {
		if c.disposed {
			return false
		}
		if c.root {
			return true
		}
	}
	return false
}

// worldAlpha returns the product of Alpha along the ancestor chain.
func (n *Node) worldAlpha() float64 {
	a := 1.0
	for c := n; c != nil; c = c.Parent {
		a *= c.Alpha
	}
	return a
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.Parent = nil
	n.TextBlock = nil
	n.UserData = nil
	n.enter.clear()
	n.leave.clear()
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}
