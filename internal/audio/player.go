package audio

import (
	"errors"

	"advanced-clock/internal/config"
	"advanced-clock/internal/utils"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ErrAudioUnavailable is returned when no audio device could be opened.
var ErrAudioUnavailable = errors.New("audio device unavailable")

// Player owns the audio device and the synthesised tick sound.
type Player struct {
	sound  rl.Sound
	active bool
}

func NewPlayer(cfg config.SoundConfig) (*Player, error) {
	if !rl.IsAudioDeviceReady() {
		rl.InitAudioDevice()
	}
	if !rl.IsAudioDeviceReady() {
		return nil, ErrAudioUnavailable
	}

	samples := SynthesizeTick(DefaultSampleRate, TickDuration, cfg.Frequency, cfg.Volume)
	wave := rl.NewWave(uint32(len(samples)), uint32(DefaultSampleRate), 16, 1, PCMBytes(samples))
	sound := rl.LoadSoundFromWave(wave)

	utils.Debug("Tick sound ready: %d samples at %.0f Hz (vol %.2f)", len(samples), cfg.Frequency, cfg.Volume)

	return &Player{sound: sound, active: true}, nil
}

// Tick plays the tick sound once.
func (p *Player) Tick() {
	if p == nil || !p.active {
		return
	}
	rl.PlaySound(p.sound)
}

func (p *Player) Close() {
	if p == nil || !p.active {
		return
	}
	rl.StopSound(p.sound)
	rl.UnloadSound(p.sound)
	p.active = false
	if rl.IsAudioDeviceReady() {
		rl.CloseAudioDevice()
	}
}
