package tooltip

import "testing"

// --- Constructor defaults ---

func TestNewContainerDefaults(t *testing.T) {
	n := NewContainer("test")
	assertNodeDefaults(t, n, "test", NodeTypeContainer)
}

func TestNewBoxDefaults(t *testing.T) {
	c := Color{R: 0.5, G: 0.5, B: 0.5, A: 1}
	n := NewBox("box", 30, 20, c)
	assertNodeDefaults(t, n, "box", NodeTypeBox)
	if n.Width != 30 || n.Height != 20 || n.Color != c {
		t.Errorf("box = %vx%v %v", n.Width, n.Height, n.Color)
	}
}

func TestNewTextDefaults(t *testing.T) {
	n := NewText("text", "hello", nil)
	assertNodeDefaults(t, n, "text", NodeTypeText)
	if n.Width != 0 || n.Height != 0 {
		t.Errorf("text without a font should be empty, got %vx%v", n.Width, n.Height)
	}
}

func TestNewArrowDefaults(t *testing.T) {
	n := NewArrow("arrow", ArrowLeft, ColorWhite)
	assertNodeDefaults(t, n, "arrow", NodeTypeArrow)
	if n.Width != 8 || n.Height != 10 {
		t.Errorf("arrow size = %vx%v, want 8x10", n.Width, n.Height)
	}
}

func assertNodeDefaults(t *testing.T, n *Node, name string, typ NodeType) {
	t.Helper()
	if n.ID == 0 {
		t.Error("ID should be non-zero")
	}
	if n.Name != name {
		t.Errorf("Name = %q, want %q", n.Name, name)
	}
	if n.Type != typ {
		t.Errorf("Type = %d, want %d", n.Type, typ)
	}
	if n.Alpha != 1 {
		t.Errorf("Alpha = %v, want 1", n.Alpha)
	}
	if !n.Visible {
		t.Error("Visible should be true")
	}
	if n.Interactable {
		t.Error("Interactable should be false")
	}
	if n.Parent != nil {
		t.Error("Parent should be nil")
	}
}

func TestUniqueIDs(t *testing.T) {
	seen := make(map[uint32]bool)
	for range 100 {
		n := NewContainer("n")
		if seen[n.ID] {
			t.Fatalf("duplicate ID %d", n.ID)
		}
		seen[n.ID] = true
	}
}

// --- Tree manipulation ---

func TestAddChildBasic(t *testing.T) {
	parent := NewContainer("parent")
	child := NewContainer("child")
	parent.AddChild(child)

	if child.Parent != parent {
		t.Error("child.Parent should be parent")
	}
	if parent.NumChildren() != 1 || parent.ChildAt(0) != child {
		t.Error("parent should have exactly the child")
	}
}

func TestAddChildReparent(t *testing.T) {
	p1 := NewContainer("p1")
	p2 := NewContainer("p2")
	child := NewContainer("child")

	p1.AddChild(child)
	p2.AddChild(child)

	if child.Parent != p2 {
		t.Error("child.Parent should be p2")
	}
	if p1.NumChildren() != 0 {
		t.Error("p1 should have no children")
	}
	if p2.NumChildren() != 1 {
		t.Error("p2 should have 1 child")
	}
}

func TestAddChildCyclePanic(t *testing.T) {
	a := NewContainer("a")
	b := NewContainer("b")
	a.AddChild(b)

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic on cycle")
		}
	}()
	b.AddChild(a)
}

func TestAddChildSelfPanic(t *testing.T) {
	a := NewContainer("a")
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic adding self")
		}
	}()
	a.AddChild(a)
}

func TestAddChildNilPanic(t *testing.T) {
	a := NewContainer("a")
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic on nil child")
		}
	}()
	a.AddChild(nil)
}

func TestRemoveChild(t *testing.T) {
	parent := NewContainer("parent")
	a := NewContainer("a")
	b := NewContainer("b")
	c := NewContainer("c")
	parent.AddChild(a)
	parent.AddChild(b)
	parent.AddChild(c)

	parent.RemoveChild(b)
	if b.Parent != nil {
		t.Error("removed child should have nil Parent")
	}
	ch := parent.Children()
	if len(ch) != 2 || ch[0] != a || ch[1] != c {
		t.Errorf("children order wrong after remove")
	}
}

func TestRemoveChildWrongParentPanic(t *testing.T) {
	p1 := NewContainer("p1")
	p2 := NewContainer("p2")
	child := NewContainer("child")
	p1.AddChild(child)

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic removing from the wrong parent")
		}
	}()
	p2.RemoveChild(child)
}

func TestRemoveFromParentNoOp(t *testing.T) {
	n := NewContainer("n")
	n.RemoveFromParent()
	if n.Parent != nil {
		t.Error("Parent should stay nil")
	}
}

// --- Geometry ---

func TestWorldRect(t *testing.T) {
	a := NewContainer("a")
	a.SetPosition(10, 20)
	b := NewContainer("b")
	b.SetPosition(5, 5)
	c := NewBox("c", 30, 40, ColorWhite)
	c.SetPosition(1, 2)
	a.AddChild(b)
	b.AddChild(c)

	if got := c.WorldRect(); got != (Rect{X: 16, Y: 27, Width: 30, Height: 40}) {
		t.Errorf("WorldRect = %v", got)
	}
	if lx, ly := c.WorldToLocal(20, 30); lx != 4 || ly != 3 {
		t.Errorf("WorldToLocal = (%v, %v), want (4, 3)", lx, ly)
	}
}

func TestSetSizeIgnoredOnText(t *testing.T) {
	n := NewText("t", "abc", fixedFont{})
	n.SetSize(500, 500)
	if n.Width != 24 || n.Height != 16 {
		t.Errorf("text size = %vx%v, want measured 24x16", n.Width, n.Height)
	}
}

func TestAttached(t *testing.T) {
	s := NewScene()
	holder := NewContainer("holder")
	child := NewContainer("child")
	holder.AddChild(child)

	if child.Attached() {
		t.Error("detached subtree reported attached")
	}
	s.Root().AddChild(holder)
	if !child.Attached() {
		t.Error("child of root should be attached")
	}
	holder.RemoveFromParent()
	if child.Attached() {
		t.Error("removed subtree reported attached")
	}

	var nilNode *Node
	if nilNode.Attached() {
		t.Error("nil node reported attached")
	}
}

// --- Disposal ---

func TestDispose(t *testing.T) {
	s := NewScene()
	parent := NewContainer("parent")
	child := NewContainer("child")
	grandchild := NewContainer("grandchild")
	s.Root().AddChild(parent)
	parent.AddChild(child)
	child.AddChild(grandchild)
	child.OnPointerEnter(func(PointerContext) {})

	child.Dispose()

	if !child.IsDisposed() || !grandchild.IsDisposed() {
		t.Error("child and grandchild should be disposed")
	}
	if child.ID != 0 {
		t.Error("disposed node ID should be zero")
	}
	if parent.NumChildren() != 0 {
		t.Error("parent should have no children after dispose")
	}
	if e, _ := child.ListenerCount(); e != 0 {
		t.Error("dispose should clear listeners")
	}
	if grandchild.Attached() {
		t.Error("disposed node reported attached")
	}
}

func TestDisposeIdempotent(t *testing.T) {
	n := NewContainer("n")
	n.Dispose()
	n.Dispose()
	if !n.IsDisposed() {
		t.Error("should be disposed")
	}
}

func TestDebugDisposedPanics(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(true)
	t.Cleanup(func() { s.SetDebugMode(false) })

	n := NewContainer("gone")
	n.Dispose()
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic on disposed child in debug mode")
		}
	}()
	s.Root().AddChild(n)
}
