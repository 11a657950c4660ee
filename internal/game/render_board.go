package game

import "math"

// Lock board layout, in world units of the lock camera.
const (
	lockBoardW  = 116.0
	lockBoardH  = 56.0
	lockTrackX  = 8.0 // track spans lockTrackX .. lockTrackX+LockMax
	lockRowY0   = 8.0
	lockRowStep = 6.0
)

func appendSprite(buf []float32, x, y, size float64, col RGB, alpha float32) []float32 {
	return append(buf,
		float32(x), float32(y), float32(size),
		float32(col.R)/255.0, float32(col.G)/255.0, float32(col.B)/255.0, alpha,
	)
}

// BoardRenderData builds the sprite stream for the snake board: border ring,
// obstacles, food, poison, then the body with a distinguished head. Reuses
// buf to avoid per-frame allocations.
func BoardRenderData(s *Sim, buf []float32) []float32 {
	buf = buf[:0]

	// Border ring, one cell thick.
	for x := -1; x <= GridW; x++ {
		buf = appendSprite(buf, float64(x)+0.5, -0.5, 1.0, Palette.Border, 1)
		buf = appendSprite(buf, float64(x)+0.5, float64(GridH)+0.5, 1.0, Palette.Border, 1)
	}
	for y := 0; y < GridH; y++ {
		buf = appendSprite(buf, -0.5, float64(y)+0.5, 1.0, Palette.Border, 1)
		buf = appendSprite(buf, float64(GridW)+0.5, float64(y)+0.5, 1.0, Palette.Border, 1)
	}

	for c := range s.Obstacles() {
		buf = appendSprite(buf, float64(c.X)+0.5, float64(c.Y)+0.5, 0.96, Palette.Obstacle, 1)
	}

	if s.Phase != PhaseIdle {
		f := s.Food()
		buf = appendSprite(buf, float64(f.X)+0.5, float64(f.Y)+0.5, 0.8, Palette.Food, 1)
		if p, ok := s.Poison(); ok {
			buf = appendSprite(buf, float64(p.X)+0.5, float64(p.Y)+0.5, 0.8, Palette.Poison, 1)
		}
		for i, c := range s.Body() {
			col := Palette.SnakeBody
			size := 0.88
			if i == 0 {
				col = Palette.SnakeHead
				size = 0.98
			}
			buf = appendSprite(buf, float64(c.X)+0.5, float64(c.Y)+0.5, size, col, 1)
		}
	}

	return buf
}

// BoardGlowData builds the additive highlight pass: soft pulses over food and
// poison so they read at a glance. now drives the pulse phase.
func BoardGlowData(s *Sim, now float64, buf []float32) []float32 {
	buf = buf[:0]
	if s.Phase == PhaseIdle {
		return buf
	}
	pulse := 0.55 + 0.2*math.Sin(now*5.0)

	f := s.Food()
	buf = appendSprite(buf, float64(f.X)+0.5, float64(f.Y)+0.5, 2.6,
		Palette.Food.Mul(uint8(255*pulse)), 1)
	if p, ok := s.Poison(); ok {
		buf = appendSprite(buf, float64(p.X)+0.5, float64(p.Y)+0.5, 2.6,
			Palette.Poison.Mul(uint8(255*pulse)), 1)
	}
	return buf
}

// LockRenderData builds the sprite stream for the slider board. Track colour
// runs from red to green with proximity so the puzzle is a hot/cold search;
// the exact target never renders.
func LockRenderData(p *LockPuzzle, activeRow int, buf []float32) []float32 {
	buf = buf[:0]

	for i := 0; i < LockSliders; i++ {
		y := lockRowY0 + float64(i)*lockRowStep
		rowCol := Palette.Track
		if p.Unlocked {
			rowCol = Palette.SolvedRow
		}

		// Track: one dot per position step.
		for x := 0; x <= LockMax; x += 2 {
			buf = appendSprite(buf, lockTrackX+float64(x), y, 0.7, rowCol, 1)
		}

		// Proximity marker at the row's left edge.
		heat := lerpRGB(Palette.LockedRow, Palette.SolvedRow, p.Proximity(i))
		buf = appendSprite(buf, lockTrackX-4, y, 2.2, heat, 1)

		// Knob.
		knob := Palette.Knob
		size := 2.6
		if i == activeRow {
			knob = Palette.KnobActive
			size = 3.2
		}
		buf = appendSprite(buf, lockTrackX+float64(p.Current[i]), y, size, knob, 1)
	}

	return buf
}

// LockGlowData adds the unlock flash once the latch is set.
func LockGlowData(p *LockPuzzle, now float64, buf []float32) []float32 {
	buf = buf[:0]
	if !p.Unlocked {
		return buf
	}
	pulse := 0.45 + 0.25*math.Sin(now*4.0)
	buf = appendSprite(buf, lockBoardW/2, lockBoardH-10, 30,
		Palette.SolvedRow.Mul(uint8(255*pulse)), 1)
	return buf
}
