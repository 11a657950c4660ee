package game

import "time"

// Snake grid (in cells).
const (
	GridW = 28
	GridH = 20
)

// Window defaults.
const (
	WindowWidth  = 900
	WindowHeight = 640
)

// Snake tick pacing. The interval shrinks on food/poison events and is
// floored at TickMin.
const (
	TickStart     = 160 * time.Millisecond
	TickMin       = 60 * time.Millisecond
	FoodSpeedup   = 4 * time.Millisecond
	PoisonSpeedup = 10 * time.Millisecond
)

// Snake scoring and session limits.
const (
	FoodScore     = 5
	PoisonPenalty = 7
	TimeLimit     = 60 // seconds
	CodeThreshold = 100
)

// Obstacle/poison spawn cadence (in ticks).
const (
	ObstacleEvery = 48
	MaxObstacles  = 40
	PoisonEvery   = 36
	PoisonChance  = 0.5
)

// End-of-game codes.
const (
	SnakeCode       = "4712"
	LockCode        = "3117"
	CodePlaceholder = "XXXX"
)

// Lock puzzle.
const (
	LockSliders   = 8
	LockMax       = 100 // slider positions are in [0,LockMax)
	LockTolerance = 2
)

// Input.
const (
	DragMinDist  = 24.0 // window pixels before a drag counts as a swipe
	SliderRepeat = 12.0 // held-key slider steps per second
)

// Font atlas layout (generated at init from the 5x7 glyph table in font.go:
// 16 cols x 6 rows, ASCII 32-95, lowercase folded).
const (
	FontCellW  = 6
	FontCellH  = 8
	FontCols   = 16
	FontRows   = 6
	FontAtlasW = FontCellW * FontCols // 96
	FontAtlasH = FontCellH * FontRows // 48
)

// Sprite stream cap (cells + HUD pixels per frame stay far below this).
const MaxSpriteRender = 8192

// MaxParticles bounds the cosmetic particle pool; the oldest are overwritten
// past this.
const MaxParticles = 2048
