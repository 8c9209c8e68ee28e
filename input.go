package tooltip

import "github.com/hajimehoshi/ebiten/v2"

const maxPointers = 10 // pointer 0 = mouse, 1-9 = touch

// --- Per-pointer state ---

type pointerState struct {
	lastX, lastY float64
	present      bool
	hoverNode    *Node // last node the pointer was hovering over (for enter/leave)
}

// --- Listener registry ---

type pointerListener struct {
	id uint32
	fn func(PointerContext)
}

type listenerList struct {
	items []pointerListener
}

// listenerIDCounter is shared by all lists so handles never collide.
var listenerIDCounter uint32

func (l *listenerList) add(fn func(PointerContext)) uint32 {
	listenerIDCounter++
	l.items = append(l.items, pointerListener{id: listenerIDCounter, fn: fn})
	return listenerIDCounter
}

// remove drops the listener with the given id. Reports whether it was found.
func (l *listenerList) remove(id uint32) bool {
	for i := range l.items {
		if l.items[i].id == id {
			copy(l.items[i:], l.items[i+1:])
			l.items[len(l.items)-1] = pointerListener{}
			l.items = l.items[:len(l.items)-1]
			return true
		}
	}
	return false
}

func (l *listenerList) clear() {
	l.items = nil
}

func (l *listenerList) len() int {
	return len(l.items)
}

// dispatch calls every listener registered at the time of the call.
func (l *listenerList) dispatch(ctx PointerContext) {
	if len(l.items) == 0 {
		return
	}
	snapshot := make([]pointerListener, len(l.items))
	copy(snapshot, l.items)
	for _, h := range snapshot {
		h.fn(ctx)
	}
}

// ListenerHandle allows removing a registered pointer listener.
type ListenerHandle struct {
	id   uint32
	list *listenerList
}

// Remove unregisters the listener so it no longer fires. Safe to call more
// than once and on the zero handle.
func (h ListenerHandle) Remove() {
	if h.list == nil {
		return
	}
	h.list.remove(h.id)
}

// OnPointerEnter registers fn to run when a pointer moves onto the node.
func (n *Node) OnPointerEnter(fn func(PointerContext)) ListenerHandle {
	return ListenerHandle{id: n.enter.add(fn), list: &n.enter}
}

// OnPointerLeave registers fn to run when a pointer moves off the node.
func (n *Node) OnPointerLeave(fn func(PointerContext)) ListenerHandle {
	return ListenerHandle{id: n.leave.add(fn), list: &n.leave}
}

func (n *Node) hoverable() bool {
	return n.Interactable || n.enter.len() > 0 || n.leave.len() > 0
}

// ListenerCount returns the number of enter and leave listeners on the node.
func (n *Node) ListenerCount() (enter, leave int) {
	return n.enter.len(), n.leave.len()
}

// --- Hit testing ---

// collectInteractable walks the tree in painter order (DFS), appending
// hoverable nodes with a non-empty box to buf. A node is hoverable when it is
// Interactable or has enter/leave listeners. Skips Visible=false subtrees.
func collectInteractable(n *Node, buf []*Node) []*Node {
	if !n.Visible {
		return buf
	}
	if n.hoverable() && (n.Width > 0 || n.Height > 0) {
		buf = append(buf, n)
	}
	for _, child := range n.children {
		buf = collectInteractable(child, buf)
	}
	return buf
}

// hitTest finds the topmost interactable node at (worldX, worldY).
// Returns nil if nothing is hit.
func (s *Scene) hitTest(worldX, worldY float64) *Node {
	s.hitBuf = collectInteractable(s.root, s.hitBuf[:0])

	// Iterate backward (reverse painter order): topmost visual node first.
	for i := len(s.hitBuf) - 1; i >= 0; i-- {
		n := s.hitBuf[i]
		if n.WorldRect().Contains(worldX, worldY) {
			return n
		}
	}
	return nil
}

// --- Input processing ---

// processInput is called from Scene.Update to handle mouse and touch hover.
// Once anything has been injected, pointer 0 follows injected events only
// until ResumeMouse is called.
func (s *Scene) processInput() {
	if !s.processInjectedInput() && !s.synthetic {
		s.processMousePointer()
	}
	s.processTouchPointers()
}

// processMousePointer handles mouse input (pointer 0).
func (s *Scene) processMousePointer() {
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)
	vp := s.ViewportSize()
	inside := x >= 0 && y >= 0 && x < vp.Width && y < vp.Height
	s.processPointer(0, x, y, inside)
}

// processTouchPointers handles touch input (pointers 1-9). A touch hovers
// whatever is under it for as long as it is held.
func (s *Scene) processTouchPointers() {
	s.touchIDs = ebiten.AppendTouchIDs(s.touchIDs[:0])

	var active [maxPointers]bool
	for i, tid := range s.touchIDs {
		slot := i + 1
		if slot >= maxPointers {
			break
		}
		active[slot] = true
		tx, ty := ebiten.TouchPosition(tid)
		s.processPointer(slot, float64(tx), float64(ty), true)
	}
	for i := 1; i < maxPointers; i++ {
		if !active[i] && s.pointers[i].present {
			s.processPointer(i, s.pointers[i].lastX, s.pointers[i].lastY, false)
		}
	}
}

// processPointer runs hover tracking for a single pointer. present is false
// when the pointer has left the viewport or the touch was lifted.
func (s *Scene) processPointer(pointerID int, wx, wy float64, present bool) {
	ps := &s.pointers[pointerID]

	var target *Node
	if present {
		target = s.hitTest(wx, wy)
	}

	// Fire hover enter/leave when the hovered node changes.
	if target != ps.hoverNode {
		if ps.hoverNode != nil && !ps.hoverNode.disposed {
			firePointer(&ps.hoverNode.leave, ps.hoverNode, pointerID, wx, wy)
		}
		if target != nil {
			firePointer(&target.enter, target, pointerID, wx, wy)
		}
		ps.hoverNode = target
	}
	ps.present = present
	ps.lastX = wx
	ps.lastY = wy
}

func firePointer(list *listenerList, node *Node, pointerID int, wx, wy float64) {
	lx, ly := node.WorldToLocal(wx, wy)
	list.dispatch(PointerContext{
		Node: node, GlobalX: wx, GlobalY: wy, LocalX: lx, LocalY: ly,
		PointerID: pointerID,
	})
}
