package engine2D

import (
	"time"

	"advanced-clock/internal/engine2D/particle"
)

// Action is a user command the scene reacts to.
type Action int

const (
	ActionNone Action = iota
	ToggleDigitalClock
	ToggleDigitalDate
	CycleScheme
	ToggleDebug
	ToggleTick
)

func (a Action) String() string {
	switch a {
	case ToggleDigitalClock:
		return "toggle-digital-clock"
	case ToggleDigitalDate:
		return "toggle-digital-date"
	case CycleScheme:
		return "cycle-scheme"
	case ToggleDebug:
		return "toggle-debug"
	case ToggleTick:
		return "toggle-tick"
	}
	return "none"
}

type SceneOptions struct {
	Width  int
	Height int
	Radius int

	Scheme   Scheme
	Palettes Palettes

	Particles particle.Options

	ShowDigitalClock bool
	ShowDigitalDate  bool
	ShowDebug        bool
	Tick             bool

	// Start is the wall-clock time the hand angles are derived from.
	Start time.Time
}

// Scene is the complete animated state of the clock.
type Scene struct {
	Width  int
	Height int
	Face   Face

	Angles    HandAngles
	Particles *particle.System

	Scheme   Scheme
	Palettes Palettes

	ShowDigitalClock bool
	ShowDigitalDate  bool
	ShowDebug        bool
	TickEnabled      bool

	// Elapsed is the number of seconds since the scene was created.
	Elapsed float64
	// Now is the wall-clock time of the current frame.
	Now time.Time
}

func NewScene(opts SceneOptions) *Scene {
	popts := opts.Particles
	popts.Width = opts.Width
	popts.Height = opts.Height

	start := opts.Start
	if start.IsZero() {
		start = time.Now()
	}

	return &Scene{
		Width:  opts.Width,
		Height: opts.Height,
		Face: Face{
			CX:     opts.Width / 2,
			CY:     opts.Height / 2,
			Radius: opts.Radius,
		},
		Angles:           AnglesFromTime(start),
		Particles:        particle.NewSystem(popts),
		Scheme:           opts.Scheme,
		Palettes:         opts.Palettes,
		ShowDigitalClock: opts.ShowDigitalClock,
		ShowDigitalDate:  opts.ShowDigitalDate,
		ShowDebug:        opts.ShowDebug,
		TickEnabled:      opts.Tick,
		Now:              start,
	}
}

// Update advances the scene by dt seconds. It reports whether the second
// hand moved into a new second.
func (s *Scene) Update(dt float64, now time.Time) bool {
	if dt < 0 {
		dt = 0
	}
	s.Elapsed += dt
	s.Now = now

	s.Particles.Update(dt)

	before := s.Angles.WholeSecond()
	s.Angles.Advance(dt)
	return s.Angles.WholeSecond() != before
}

// Apply performs a user action.
func (s *Scene) Apply(a Action) {
	switch a {
	case ToggleDigitalClock:
		s.ShowDigitalClock = !s.ShowDigitalClock
	case ToggleDigitalDate:
		s.ShowDigitalDate = !s.ShowDigitalDate
	case CycleScheme:
		s.Scheme = s.Scheme.Next()
	case ToggleDebug:
		s.ShowDebug = !s.ShowDebug
	case ToggleTick:
		s.TickEnabled = !s.TickEnabled
	}
}

// Palette returns the colours of the active scheme.
func (s *Scene) Palette() Palette {
	return s.Palettes[s.Scheme]
}

// Render draws one frame. The order is fixed: background, particles, ring,
// ticks, hour labels, hands, centre dot, digital clock, digital date.
func (s *Scene) Render(c Canvas) {
	palette := s.Palette()

	DrawGradientBackground(c, s.Width, s.Height, palette, s.Elapsed)
	s.Particles.Draw(c)

	s.Face.DrawRing(c, palette)
	s.Face.DrawTicks(c)
	s.Face.DrawHourLabels(c)
	s.Face.DrawHands(c, s.Angles)
	s.Face.DrawCenterDot(c, s.Elapsed)

	if s.ShowDigitalClock {
		DrawDigitalClock(c, s.Width, s.Height, s.Now)
	}
	if s.ShowDigitalDate {
		DrawDigitalDate(c, s.Width, s.Height, s.Now)
	}
}
