package tooltip

import "testing"

// newInputScene returns a scene whose viewport covers the test coordinates.
func newInputScene() *Scene {
	s := NewScene()
	s.SetViewportSize(800, 600)
	return s
}

func interactableBox(name string, x, y, w, h float64) *Node {
	n := NewBox(name, w, h, ColorWhite)
	n.SetPosition(x, y)
	n.Interactable = true
	return n
}

// --- Hit testing ---

func TestHitTest_TopmostNode(t *testing.T) {
	s := newInputScene()
	bottom := interactableBox("bottom", 0, 0, 100, 100)
	top := interactableBox("top", 50, 50, 100, 100)
	s.Root().AddChild(bottom)
	s.Root().AddChild(top)

	if hit := s.hitTest(75, 75); hit != top {
		t.Errorf("hit %v, want top", hit)
	}
	if hit := s.hitTest(25, 25); hit != bottom {
		t.Errorf("hit %v, want bottom", hit)
	}
}

func TestHitTest_SkipsInvisible(t *testing.T) {
	s := newInputScene()
	holder := NewContainer("holder")
	holder.Visible = false
	holder.AddChild(interactableBox("n", 0, 0, 100, 100))
	s.Root().AddChild(holder)

	if hit := s.hitTest(50, 50); hit != nil {
		t.Errorf("hit %v in invisible subtree", hit.Name)
	}
}

func TestHitTest_SkipsNonInteractable(t *testing.T) {
	s := newInputScene()
	n := NewBox("n", 100, 100, ColorWhite)
	s.Root().AddChild(n)
	if hit := s.hitTest(50, 50); hit != nil {
		t.Error("non-interactable node was hit")
	}
}

func TestHitTest_IgnoresOverlays(t *testing.T) {
	s := newInputScene()
	s.Overlays().AddChild(interactableBox("overlay", 0, 0, 100, 100))
	if hit := s.hitTest(50, 50); hit != nil {
		t.Error("overlay layer should not be hit-tested")
	}
}

func TestHitTest_NodeWithListeners(t *testing.T) {
	s := newInputScene()
	n := NewBox("n", 100, 100, ColorWhite)
	s.Root().AddChild(n)
	h := n.OnPointerLeave(func(PointerContext) {})
	if hit := s.hitTest(50, 50); hit != n {
		t.Error("node with hover listeners should be hit")
	}
	h.Remove()
	if hit := s.hitTest(50, 50); hit != nil {
		t.Error("node without listeners or Interactable should not be hit")
	}
}

func TestHitTest_Miss(t *testing.T) {
	s := newInputScene()
	s.Root().AddChild(interactableBox("n", 0, 0, 10, 10))
	if hit := s.hitTest(50, 50); hit != nil {
		t.Error("expected miss")
	}
}

// --- Hover enter/leave ---

func TestHoverEnterLeave(t *testing.T) {
	s := newInputScene()
	a := interactableBox("a", 0, 0, 100, 100)
	b := interactableBox("b", 200, 0, 100, 100)
	s.Root().AddChild(a)
	s.Root().AddChild(b)

	var events []string
	a.OnPointerEnter(func(PointerContext) { events = append(events, "enter a") })
	a.OnPointerLeave(func(PointerContext) { events = append(events, "leave a") })
	b.OnPointerEnter(func(ctx PointerContext) {
		events = append(events, "enter b")
		if ctx.LocalX != 50 || ctx.LocalY != 10 {
			t.Errorf("local = (%v, %v), want (50, 10)", ctx.LocalX, ctx.LocalY)
		}
	})
	b.OnPointerLeave(func(PointerContext) { events = append(events, "leave b") })

	s.processPointer(0, 10, 10, true)
	s.processPointer(0, 20, 20, true) // same node, no events
	s.processPointer(0, 250, 10, true)
	s.processPointer(0, 250, 10, false)

	want := []string{"enter a", "leave a", "enter b", "leave b"}
	if len(events) != len(want) {
		t.Fatalf("events = %v, want %v", events, want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("events[%d] = %q, want %q", i, events[i], want[i])
		}
	}
}

func TestHoverDisposedNodeNoLeave(t *testing.T) {
	s := newInputScene()
	a := interactableBox("a", 0, 0, 100, 100)
	s.Root().AddChild(a)
	left := false
	a.OnPointerLeave(func(PointerContext) { left = true })

	s.processPointer(0, 10, 10, true)
	a.Dispose()
	s.processPointer(0, 10, 10, true)
	if left {
		t.Error("leave fired on a disposed node")
	}
	if s.pointers[0].hoverNode != nil {
		t.Error("hoverNode should be cleared")
	}
}

func TestHoverPointersIndependent(t *testing.T) {
	s := newInputScene()
	a := interactableBox("a", 0, 0, 100, 100)
	s.Root().AddChild(a)
	enters := 0
	a.OnPointerEnter(func(PointerContext) { enters++ })

	s.processPointer(0, 10, 10, true)
	s.processPointer(1, 20, 20, true)
	if enters != 2 {
		t.Errorf("enters = %d, want 2", enters)
	}
}

// --- Listener handles ---

func TestListenerHandle_Remove(t *testing.T) {
	s := newInputScene()
	a := interactableBox("a", 0, 0, 100, 100)
	s.Root().AddChild(a)

	count := 0
	h := a.OnPointerEnter(func(PointerContext) { count++ })
	h.Remove()
	h.Remove()
	ListenerHandle{}.Remove()

	s.processPointer(0, 10, 10, true)
	if count != 0 {
		t.Error("removed listener fired")
	}
	if e, l := a.ListenerCount(); e != 0 || l != 0 {
		t.Errorf("ListenerCount = %d/%d, want 0/0", e, l)
	}
}

func TestListenerRemovedDuringDispatch(t *testing.T) {
	s := newInputScene()
	a := interactableBox("a", 0, 0, 100, 100)
	s.Root().AddChild(a)

	var calls []int
	var h2 ListenerHandle
	a.OnPointerEnter(func(PointerContext) {
		calls = append(calls, 1)
		h2.Remove()
	})
	h2 = a.OnPointerEnter(func(PointerContext) { calls = append(calls, 2) })

	s.processPointer(0, 10, 10, true)
	if len(calls) != 2 {
		t.Errorf("calls = %v, want both listeners for the in-flight dispatch", calls)
	}
	if e, _ := a.ListenerCount(); e != 1 {
		t.Errorf("enter listeners = %d, want 1", e)
	}
}
