package particle

import (
	"math/rand"
	"time"
)

// NewSystem creates a particle system and spawns all of its particles.
func NewSystem(opts Options) *System {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	ps := &System{
		Width:       max(opts.Width, 1),
		Height:      max(opts.Height, 1),
		SpeedScale:  opts.SpeedScale,
		LifetimeMin: opts.LifetimeMin,
		LifetimeMax: opts.LifetimeMax,
		rng:         rng,
	}
	if ps.LifetimeMin <= 0 {
		ps.LifetimeMin = DefaultLifetimeMin
	}
	if ps.LifetimeMax < ps.LifetimeMin {
		ps.LifetimeMax = ps.LifetimeMin
	}

	count := max(opts.Count, 0)
	ps.Particles = make([]*Particle, count)
	for i := range ps.Particles {
		ps.Particles[i] = &Particle{}
		ps.spawnParticle(ps.Particles[i])
	}

	return ps
}

// Update moves every particle by delta time and respawns the ones that
// expired or left the screen.
func (ps *System) Update(dt float64) {
	for _, particle := range ps.Particles {
		particle.Position.X += particle.Velocity.X * ps.SpeedScale * dt
		particle.Position.Y += particle.Velocity.Y * ps.SpeedScale * dt
		particle.Life -= dt

		if particle.Life <= 0 || !ps.inBounds(particle.Position) {
			ps.spawnParticle(particle)
		}
	}
}

// Count returns the number of live particles.
func (ps *System) Count() int {
	return len(ps.Particles)
}

func (ps *System) inBounds(p Vec2) bool {
	return p.X >= 0 && p.X < float64(ps.Width) && p.Y >= 0 && p.Y < float64(ps.Height)
}
