package tooltip

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Fade animates a node's Alpha. Create one with FadeIn or FadeTo and call
// Update(dt) each frame. If the target node is disposed, the fade stops
// immediately.
type Fade struct {
	tween  *gween.Tween
	target *Node
	Done   bool
}

// FadeTo animates node.Alpha from its current value to the target over the
// given duration using the easing function.
func FadeTo(node *Node, to float64, duration time.Duration, fn ease.TweenFunc) *Fade {
	return &Fade{
		tween:  gween.New(float32(node.Alpha), float32(to), float32(duration.Seconds()), fn),
		target: node,
	}
}

// FadeIn sets node.Alpha to 0 and animates it to 1 with an ease-out curve.
func FadeIn(node *Node, duration time.Duration) *Fade {
	node.Alpha = 0
	return FadeTo(node, 1, duration, ease.OutQuad)
}

// Update advances the fade by dt and writes the value to the target.
func (f *Fade) Update(dt time.Duration) {
	if f.Done {
		return
	}
	if f.target == nil || f.target.IsDisposed() {
		f.Done = true
		return
	}
	val, finished := f.tween.Update(float32(dt.Seconds()))
	f.target.Alpha = float64(val)
	f.Done = finished
}
