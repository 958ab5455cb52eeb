package main

import (
	"errors"
	"fmt"
	"time"

	"advanced-clock/internal/audio"
	"advanced-clock/internal/clock"
	"advanced-clock/internal/config"
	"advanced-clock/internal/debug"
	"advanced-clock/internal/engine2D"
	"advanced-clock/internal/utils"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ErrWindowInit is returned when the window or its render target cannot be
// created.
var ErrWindowInit = errors.New("failed to initialize window")

var keyBindings = []struct {
	key    int32
	action engine2D.Action
}{
	{rl.KeyD, engine2D.ToggleDigitalClock},
	{rl.KeyT, engine2D.ToggleDigitalDate},
	{rl.KeyC, engine2D.CycleScheme},
	{rl.KeyF8, engine2D.ToggleDebug},
	{rl.KeyS, engine2D.ToggleTick},
}

type Window struct {
	cfg   *config.Config
	clock clock.Clock

	scene        *engine2D.Scene
	viewport     *engine2D.Viewport
	canvas       *engine2D.RaylibCanvas
	target       rl.RenderTexture2D
	font         rl.Font
	player       *audio.Player
	audioFailed  bool
	debugOverlay *debug.Overlay

	lastFrameTime time.Time
	frameTime     time.Duration
}

func NewWindow(cfg *config.Config) (*Window, error) {
	rl.SetTraceLogCallback(utils.RaylibLogCallback)
	if cfg.Window.Resizable {
		rl.SetConfigFlags(rl.FlagWindowResizable)
	}

	width, height := cfg.Window.Width, cfg.Window.Height
	if cfg.Window.FitDisplay {
		if w, h, err := utils.DisplaySize(); err != nil {
			utils.Warn("Could not query display size, using %dx%d: %v", width, height, err)
		} else {
			width, height = w, h
		}
	}

	rl.InitWindow(int32(width), int32(height), cfg.Window.Title)
	if !rl.IsWindowReady() {
		return nil, ErrWindowInit
	}

	font, err := loadRaylibFont(cfg.Font)
	if err != nil {
		rl.CloseWindow()
		return nil, err
	}

	target := rl.LoadRenderTexture(int32(cfg.Window.Width), int32(cfg.Window.Height))
	if target.ID == 0 {
		rl.UnloadFont(font)
		rl.CloseWindow()
		return nil, fmt.Errorf("%w: render texture %dx%d", ErrWindowInit, cfg.Window.Width, cfg.Window.Height)
	}
	rl.SetTextureFilter(target.Texture, rl.FilterBilinear)

	clk := clock.RealClock{}
	scene, err := buildScene(cfg, clk.Now(), cfg.Particles.Seed)
	if err != nil {
		rl.UnloadRenderTexture(target)
		rl.UnloadFont(font)
		rl.CloseWindow()
		return nil, err
	}

	window := &Window{
		cfg:      cfg,
		clock:    clk,
		scene:    scene,
		viewport: engine2D.NewViewport(cfg.Window.Width, cfg.Window.Height),
		canvas: &engine2D.RaylibCanvas{
			Width:    cfg.Window.Width,
			Height:   cfg.Window.Height,
			Font:     font,
			FontSize: float32(cfg.Font.Size),
		},
		target:        target,
		font:          font,
		debugOverlay:  debug.NewOverlay(cfg.Debug.SampleInterval, clk),
		lastFrameTime: time.Now(),
	}

	if scene.TickEnabled {
		window.ensurePlayer()
	}

	utils.Info("Window %dx%d, scene %dx%d (%s)", width, height, cfg.Window.Width, cfg.Window.Height, cfg.Window.Scaling)
	return window, nil
}

func loadRaylibFont(cfg config.FontConfig) (rl.Font, error) {
	src, err := resolveFont(cfg)
	if err != nil {
		return rl.Font{}, err
	}

	var font rl.Font
	if src.Path != "" {
		font = rl.LoadFontEx(src.Path, int32(cfg.Size), nil, 0)
	} else {
		font = rl.LoadFontFromMemory(".ttf", src.Data, int32(cfg.Size), nil)
	}
	if font.Texture.ID == 0 {
		return rl.Font{}, fmt.Errorf("%w: %s", ErrFontLoad, src.Name)
	}
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)

	utils.Debug("Loaded font %s at %dpx", src.Name, cfg.Size)
	return font, nil
}

// ensurePlayer opens the audio device on first use. Failure disables
// ticking for the rest of the run.
func (window *Window) ensurePlayer() {
	if window.player != nil || window.audioFailed {
		return
	}
	player, err := audio.NewPlayer(window.cfg.Sound)
	if err != nil {
		utils.Warn("Tick sound disabled: %v", err)
		window.audioFailed = true
		window.scene.TickEnabled = false
		return
	}
	window.player = player
}

func (window *Window) Run() {
	rl.SetTargetFPS(int32(window.cfg.Window.FPS))

	for !rl.WindowShouldClose() {
		window.Update()
		window.Draw()
	}
}

func (window *Window) Update() {
	currentTime := time.Now()
	deltaTime := currentTime.Sub(window.lastFrameTime).Seconds()
	window.frameTime = currentTime.Sub(window.lastFrameTime)
	window.lastFrameTime = currentTime

	for _, binding := range keyBindings {
		if rl.IsKeyPressed(binding.key) {
			window.scene.Apply(binding.action)
			utils.Debug("Action %s", binding.action)
		}
	}
	if window.scene.TickEnabled {
		window.ensurePlayer()
	}

	if window.scene.Update(deltaTime, window.clock.Now()) && window.scene.TickEnabled {
		window.player.Tick()
	}

	window.viewport.UpdateViewport(rl.GetScreenWidth(), rl.GetScreenHeight(), window.cfg.Window.Scaling)

	if window.scene.ShowDebug {
		window.debugOverlay.Update(window.frameTime)
	}
}

func (window *Window) Draw() {
	rl.BeginTextureMode(window.target)
	window.scene.Render(window.canvas)
	if window.scene.ShowDebug {
		window.debugOverlay.Draw(window.canvas, window.stats())
	}
	rl.EndTextureMode()

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	tex := window.target.Texture
	sourceRec := rl.NewRectangle(0, 0, float32(tex.Width), -float32(tex.Height))
	x, y, w, h := window.viewport.Dest()
	destRec := rl.NewRectangle(float32(x), float32(y), float32(w), float32(h))
	rl.DrawTexturePro(tex, sourceRec, destRec, rl.NewVector2(0, 0), 0, rl.White)

	rl.EndDrawing()

	if rl.IsKeyPressed(rl.KeyF12) {
		name := fmt.Sprintf("advanced-clock-%s.png", time.Now().Format("20060102-150405"))
		rl.TakeScreenshot(name)
		utils.Info("Screenshot saved to %s", name)
	}
}

func (window *Window) stats() debug.Stats {
	return debug.Stats{
		Particles:   window.scene.Particles.Count(),
		Scheme:      window.scene.Scheme.String(),
		SceneWidth:  window.scene.Width,
		SceneHeight: window.scene.Height,
		RenderScale: window.viewport.RenderScale,
		ScalingMode: window.cfg.Window.Scaling,
		Tick:        window.scene.TickEnabled,
	}
}

// Close releases resources in reverse order of acquisition.
func (window *Window) Close() {
	window.player.Close()
	rl.UnloadRenderTexture(window.target)
	rl.UnloadFont(window.font)
	rl.CloseWindow()
}
