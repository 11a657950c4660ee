package game

import (
	"math"

	"github.com/go-gl/glfw/v3.3/glfw"
)

type Input struct {
	prevKeys map[glfw.Key]bool
	drag     DragTracker
}

func NewInput() *Input {
	return &Input{
		prevKeys: make(map[glfw.Key]bool),
	}
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

func (in *Input) Held(window *glfw.Window, key glfw.Key) bool {
	return window.GetKey(key) == glfw.Press
}

// SteerKey polls the four-directional movement keys (arrows plus WASD) and
// returns the freshly pressed direction, if any. Polled every frame; the
// result only feeds the simulation's pending-direction buffer.
func (in *Input) SteerKey(window *glfw.Window) (Dir, bool) {
	switch {
	case in.JustPressed(window, glfw.KeyUp) || in.JustPressed(window, glfw.KeyW):
		return DirUp, true
	case in.JustPressed(window, glfw.KeyDown) || in.JustPressed(window, glfw.KeyS):
		return DirDown, true
	case in.JustPressed(window, glfw.KeyLeft) || in.JustPressed(window, glfw.KeyA):
		return DirLeft, true
	case in.JustPressed(window, glfw.KeyRight) || in.JustPressed(window, glfw.KeyD):
		return DirRight, true
	}
	return 0, false
}

// SteerDrag polls the mouse-drag gesture (the pointer stand-in for a touch
// swipe) and returns a direction when a completed drag qualifies.
func (in *Input) SteerDrag(window *glfw.Window) (Dir, bool) {
	pressed := window.GetMouseButton(glfw.MouseButtonLeft) == glfw.Press
	x, y := window.GetCursorPos()
	return in.drag.Update(pressed, x, y)
}

// DragTracker turns press/move/release into a four-way swipe. A gesture is
// classified on release by its dominant axis; too-short drags are ignored.
type DragTracker struct {
	active         bool
	startX, startY float64
	lastX, lastY   float64
}

func (d *DragTracker) Update(pressed bool, x, y float64) (Dir, bool) {
	switch {
	case pressed && !d.active:
		d.active = true
		d.startX, d.startY = x, y
		d.lastX, d.lastY = x, y
	case pressed:
		d.lastX, d.lastY = x, y
	case d.active:
		d.active = false
		return ClassifyDrag(d.lastX-d.startX, d.lastY-d.startY)
	}
	return 0, false
}

// ClassifyDrag maps a displacement to a direction. The dominant axis wins;
// the gesture must travel at least DragMinDist on that axis. Y grows
// downward in window space, matching DirDown.
func ClassifyDrag(dx, dy float64) (Dir, bool) {
	ax := math.Abs(dx)
	ay := math.Abs(dy)
	if ax < DragMinDist && ay < DragMinDist {
		return 0, false
	}
	if ax >= ay {
		if dx > 0 {
			return DirRight, true
		}
		return DirLeft, true
	}
	if dy > 0 {
		return DirDown, true
	}
	return DirUp, true
}
