package game

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

func (c RGB) Mul(k uint8) RGB {
	return RGB{
		R: uint8((uint16(c.R) * uint16(k)) / 255),
		G: uint8((uint16(c.G) * uint16(k)) / 255),
		B: uint8((uint16(c.B) * uint16(k)) / 255),
	}
}

var Palette = struct {
	Background  RGB
	Border      RGB
	Obstacle    RGB
	Food        RGB
	Poison      RGB
	SnakeHead   RGB
	SnakeBody   RGB
	Track       RGB
	Knob        RGB
	KnobActive  RGB
	LockedRow   RGB
	SolvedRow   RGB
	TextDim     RGB
	TextBright  RGB
	TextWarn    RGB
	TextSuccess RGB
}{
	Background:  RGB{R: 16, G: 18, B: 24},
	Border:      RGB{R: 90, G: 98, B: 115},
	Obstacle:    RGB{R: 130, G: 82, B: 44},
	Food:        RGB{R: 90, G: 220, B: 90},
	Poison:      RGB{R: 190, G: 70, B: 230},
	SnakeHead:   RGB{R: 255, G: 240, B: 120},
	SnakeBody:   RGB{R: 225, G: 180, B: 40},
	Track:       RGB{R: 54, G: 58, B: 70},
	Knob:        RGB{R: 170, G: 176, B: 190},
	KnobActive:  RGB{R: 255, G: 255, B: 255},
	LockedRow:   RGB{R: 200, G: 70, B: 60},
	SolvedRow:   RGB{R: 80, G: 210, B: 90},
	TextDim:     RGB{R: 140, G: 146, B: 160},
	TextBright:  RGB{R: 235, G: 238, B: 245},
	TextWarn:    RGB{R: 255, G: 110, B: 90},
	TextSuccess: RGB{R: 110, G: 240, B: 120},
}
