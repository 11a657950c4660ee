package game

import "math"

// Particle burst effects: food and poison pickups, the unlock flash and the
// end of a run. Purely cosmetic. Spawned from bus events, integrated per
// frame, drawn through the additive glow pass.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Size    float64
	Life    float64
	MaxLife float64
	Col     RGB
}

type ParticleSystem struct {
	Max    int
	P      []Particle
	rng    *Rand
	ovrIdx int // circular overwrite index when full
}

func NewParticleSystem(maxParticles int, seed uint64) *ParticleSystem {
	if maxParticles <= 0 {
		maxParticles = MaxParticles
	}
	return &ParticleSystem{
		Max: maxParticles,
		P:   make([]Particle, 0, maxParticles),
		rng: NewRand(seed),
	}
}

func (ps *ParticleSystem) Clear() {
	ps.P = ps.P[:0]
	ps.ovrIdx = 0
}

func (ps *ParticleSystem) Add(p Particle) {
	if len(ps.P) < ps.Max {
		ps.P = append(ps.P, p)
		return
	}
	// Circular overwrite.
	if ps.ovrIdx >= ps.Max {
		ps.ovrIdx = 0
	}
	ps.P[ps.ovrIdx] = p
	ps.ovrIdx++
}

func (ps *ParticleSystem) rangeF(lo, hi float64) float64 {
	return lo + ps.rng.Float64()*(hi-lo)
}

// SpawnBurst throws count sparks radially out of a cell.
func (ps *ParticleSystem) SpawnBurst(x, y float64, col RGB, count int, speed float64) {
	for i := 0; i < count; i++ {
		ang := ps.rangeF(0, math.Pi*2)
		spd := ps.rangeF(speed*0.35, speed)
		ps.Add(Particle{
			X: x + ps.rangeF(-0.2, 0.2), Y: y + ps.rangeF(-0.2, 0.2),
			VX: math.Cos(ang) * spd, VY: math.Sin(ang) * spd,
			Size:    ps.rangeF(0.25, 0.6),
			MaxLife: ps.rangeF(0.25, 0.7),
			Col:     col,
		})
	}
}

// SpawnRing is the unlock flash: an even circle expanding outward.
func (ps *ParticleSystem) SpawnRing(x, y float64, col RGB, count int, speed float64) {
	for i := 0; i < count; i++ {
		ang := 2 * math.Pi * float64(i) / float64(count)
		ps.Add(Particle{
			X: x, Y: y,
			VX: math.Cos(ang) * speed, VY: math.Sin(ang) * speed,
			Size:    0.5,
			MaxLife: 0.8,
			Col:     col,
		})
	}
}

// Update integrates and drops expired particles, compacting in place.
func (ps *ParticleSystem) Update(dt float64) {
	drag := math.Pow(0.08, dt) // strong exponential damping
	n := 0
	for i := range ps.P {
		p := &ps.P[i]
		p.Life += dt
		if p.Life >= p.MaxLife {
			continue
		}
		p.VX *= drag
		p.VY *= drag
		p.X += p.VX * dt
		p.Y += p.VY * dt
		ps.P[n] = *p
		n++
	}
	ps.P = ps.P[:n]
	if ps.ovrIdx > n {
		ps.ovrIdx = 0
	}
}

// RenderData appends live particles as glow sprites, fading and shrinking
// over their lifetime.
func (ps *ParticleSystem) RenderData(buf []float32) []float32 {
	for i := range ps.P {
		p := &ps.P[i]
		t := clampF(p.Life/p.MaxLife, 0, 1)
		buf = appendSprite(buf, p.X, p.Y, p.Size*(1.0-0.6*t), p.Col, float32(1.0-t))
	}
	return buf
}
