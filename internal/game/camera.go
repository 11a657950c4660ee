package game

type Camera struct {
	X, Y float64 // world-unit space, camera centre
	Zoom float64 // screen pixels per world unit
}

// FitCamera centres a w x h world-unit board in the framebuffer with the
// given margin (in world units) on every side.
func FitCamera(w, h, margin float64, fbW, fbH int) Camera {
	zx := float64(fbW) / (w + 2*margin)
	zy := float64(fbH) / (h + 2*margin)
	zoom := zx
	if zy < zoom {
		zoom = zy
	}
	return Camera{X: w / 2, Y: h / 2, Zoom: zoom}
}
