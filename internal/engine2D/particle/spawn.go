package particle

import (
	"image/color"
	"math"
)

// spawnParticle reassigns every field of particle at random.
func (ps *System) spawnParticle(particle *Particle) {
	particle.Position = Vec2{
		X: float64(ps.rng.Intn(ps.Width)),
		Y: float64(ps.rng.Intn(ps.Height)),
	}
	particle.Velocity = Vec2{
		X: ps.unitVelocity(),
		Y: ps.unitVelocity(),
	}
	particle.Life = ps.lifetime()
	particle.Color = color.RGBA{
		R: uint8(ps.rng.Intn(256)),
		G: uint8(ps.rng.Intn(256)),
		B: uint8(ps.rng.Intn(256)),
		A: 255,
	}
}

// unitVelocity is in [-1, 1) with a step of 0.01.
func (ps *System) unitVelocity() float64 {
	return float64(ps.rng.Intn(200)-100) / 100
}

// lifetime is in [LifetimeMin, LifetimeMax) with a step of 0.01.
func (ps *System) lifetime() float64 {
	span := int(math.Round((ps.LifetimeMax - ps.LifetimeMin) * 100))
	if span <= 0 {
		return ps.LifetimeMin
	}
	return ps.LifetimeMin + float64(ps.rng.Intn(span))/100
}
