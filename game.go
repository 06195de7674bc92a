package main

import (
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/wiggle/client"
	"github.com/milk9111/wiggle/config"
	"github.com/milk9111/wiggle/input"
	"github.com/milk9111/wiggle/motion"
	"github.com/milk9111/wiggle/render"
)

// maxFrameMillis caps dt after stalls such as window drags.
const maxFrameMillis = 100

type Game struct {
	cfg        *config.Config
	configPath string
	// fileVariant is the variant named by the last loaded config; a reload
	// only switches models when it changes.
	fileVariant string
	log         *slog.Logger

	client   *client.Client
	renderer *render.Renderer
	surface  *render.Surface
	keys     keyPoller
	watcher  *config.Watcher

	last    time.Time
	debug   bool
	paused  bool
	quit    bool
	pauseUI *ebitenui.UI
}

func NewGame(cfg *config.Config, configPath string, watcher *config.Watcher, debug bool, log *slog.Logger) (*Game, error) {
	renderer, err := render.New(cfg, log)
	if err != nil {
		return nil, err
	}
	model, err := motion.New(cfg.Motion, log)
	if err != nil {
		return nil, err
	}
	renderer.ShowPolyline(cfg.Polyline.ShownFor(model.Name()))

	surface := render.NewSurface(cfg.Window.Width, cfg.Window.Height)

	g := &Game{
		cfg:         cfg,
		configPath:  configPath,
		fileVariant: cfg.Motion.Variant,
		log:         log,
		client:      client.New(input.NewState(), model, renderer, surface, log),
		renderer:    renderer,
		surface:     surface,
		watcher:     watcher,
		last:        time.Now(),
		debug:       debug,
	}
	g.pauseUI = NewPauseUI(g)
	return g, nil
}

func (g *Game) Update() error {
	g.drainConfig()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.setPaused(!g.paused)
	}
	if g.paused {
		g.pauseUI.Update()
	}
	if g.quit {
		return ebiten.Termination
	}

	now := time.Now()
	dt := float32(now.Sub(g.last).Seconds() * 1000)
	g.last = now
	if g.paused {
		return nil
	}

	g.keys.Poll(g.client.Keys())
	g.client.Update(min(dt, maxFrameMillis))
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Begin(screen)
	g.client.Render()

	if g.paused {
		g.pauseUI.Draw(screen)
	}
	g.drawHUD(screen)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	stats := g.client.Stats()
	msg := fmt.Sprintf("Frames: %d    FPS: %.2f", stats.Frames, ebiten.ActualFPS())
	if g.debug {
		model := g.client.Model()
		pos := model.Position()
		msg += fmt.Sprintf("\nMotion: %s    Pos: (%.1f, %.1f)\nHeld: %v    Resizes: %d",
			model.Name(), pos.X, pos.Y, g.client.Keys().Held(), stats.Resizes)
	}
	ebitenutil.DebugPrint(screen, msg)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.surface.SetDisplaySize(outsideWidth, outsideHeight)
	return g.surface.BufferSize()
}

func (g *Game) setPaused(paused bool) {
	g.paused = paused
	// Releases that happen while paused are never polled.
	g.client.Keys().Reset()
	g.last = time.Now()
}

// nextMotion switches to the variant after the current one.
func (g *Game) nextMotion() {
	cur := slices.Index(config.Variants, g.client.Model().Name())
	next := config.Variants[(cur+1)%len(config.Variants)]

	mcfg := g.cfg.Motion
	mcfg.Variant = next
	m, err := motion.New(mcfg, g.log)
	if err != nil {
		g.log.Warn("switch motion", "variant", next, "error", err)
		return
	}
	g.client.SetModel(m)
	g.renderer.ShowPolyline(g.cfg.Polyline.ShownFor(next))
}

func (g *Game) drainConfig() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case _, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload()
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			g.log.Warn("config watcher", "error", err)
		default:
			return
		}
	}
}

func (g *Game) reload() {
	cfg, err := config.Load(g.configPath)
	if err != nil {
		g.log.Warn("config reload failed, keeping current settings", "path", g.configPath, "error", err)
		return
	}

	mcfg := cfg.Motion
	if mcfg.Variant == g.fileVariant {
		// Keep a variant picked from the pause menu.
		mcfg.Variant = g.client.Model().Name()
	}
	if err := g.client.Retune(mcfg); err != nil {
		g.log.Warn("config reload: motion", "error", err)
		return
	}
	if err := g.renderer.SetPolyline(cfg.Polyline); err != nil {
		g.log.Warn("config reload: polyline", "error", err)
	}
	g.renderer.ShowPolyline(cfg.Polyline.ShownFor(g.client.Model().Name()))

	g.fileVariant = cfg.Motion.Variant
	g.cfg = cfg
	g.log.Info("config reloaded", "path", g.configPath, "motion", g.client.Model().Name())
}
