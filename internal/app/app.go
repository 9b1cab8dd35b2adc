//go:build ebiten

package app

import (
	"log/slog"
	"time"

	"torus-life/internal/core"
	"torus-life/internal/render"
	"torus-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a core simulation to the ebiten.Game interface. It starts
// paused so cells can be toggled with the mouse before the first generation.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	stepper *core.FixedStep
	log     *slog.Logger

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
	reported bool
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config, log *slog.Logger) *Game {
	size := sim.Size()
	return &Game{
		sim:     sim,
		painter: render.NewGridPainter(size.W, size.H, render.DefaultPalette()),
		overlay: ui.NewOverlay(sim, cfg.Scale),
		hud:     ui.NewHUD(sim, cfg.HUDWidth),
		stepper: core.NewFixedStep(cfg.GPS),
		log:     log,
		scale:   cfg.Scale,
		paused:  true,
		seed:    cfg.Seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
	g.paused = true
	g.reported = false
	if err := ui.SimErr(g.sim); err != nil {
		g.log.Error("reset failed", slog.Int64("seed", seed), slog.Any("err", err))
		return
	}
	g.log.Info("board reset", slog.Int64("seed", seed))
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.toggleAtCursor()
	}

	g.overlay.Update()
	g.hud.Update()

	if g.halted() {
		if !g.reported {
			g.reported = true
			g.log.Info("loop detected", slog.String("banner", ui.LoopBanner(g.sim)))
		}
		return nil
	}
	if g.tickOnce || (!g.paused && g.stepper.ShouldStep()) {
		g.sim.Step()
		g.tickOnce = false
		if err := ui.SimErr(g.sim); err != nil {
			g.log.Error("step failed", slog.Any("err", err))
			g.paused = true
		}
	}
	return nil
}

func (g *Game) halted() bool {
	h, ok := g.sim.(core.Halter)
	return ok && h.Halted()
}

func (g *Game) toggleAtCursor() {
	editor, ok := g.sim.(core.Editor)
	if !ok {
		return
	}
	mx, my := ebiten.CursorPosition()
	size := g.sim.Size()
	if mx < 0 || my < 0 || mx >= size.W*g.scale || my >= size.H*g.scale {
		return
	}
	x, y := mx/g.scale, my/g.scale
	if err := editor.Toggle(x, y); err != nil {
		g.log.Debug("toggle rejected", slog.Int("x", x), slog.Int("y", y), slog.Any("err", err))
	}
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.halted(), g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.sim.Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hud.Width(), s.H * g.scale
}
