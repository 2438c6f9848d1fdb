package main

import (
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/wvoliveira/pong-unbound/arena"
	"github.com/wvoliveira/pong-unbound/configs"
	"github.com/wvoliveira/pong-unbound/game"
	"github.com/wvoliveira/pong-unbound/present"
	"github.com/wvoliveira/pong-unbound/render"
	"github.com/wvoliveira/pong-unbound/winsys"
)

type Game struct {
	cfg configs.Config
	sys winsys.System

	sim     *game.Sim
	adapter *present.Adapter
}

// setup roda no primeiro Update: só aí a janela principal existe e o monitor
// pode ser consultado.
func (g *Game) setup() {
	// Janelas nativas pertencem à thread que as criou; Update sempre roda na
	// mesma goroutine, então fixamos a thread aqui.
	runtime.LockOSThread()

	x, y := ebiten.WindowPosition()
	mw, mh := ebiten.Monitor().Size()

	g.sim = game.NewSim(&g.cfg, uint64(time.Now().UnixNano()),
		arena.Point{X: float64(x), Y: float64(y)},
		arena.Point{X: float64(mw), Y: float64(mh)},
	)

	g.sys.UseDarkMode(true)
	sc := g.screen(x, y)
	g.adapter = present.NewAdapter(&g.cfg, g.sys, sc)

	slog.Info("game ready", "window_x", x, "window_y", y, "monitor_w", mw, "monitor_h", mh,
		"scale", sc.Scale, "monitor_origin", sc.Origin)
}

// screen calcula a conversão para pixels nativos. Sem a posição nativa da
// janela principal a origem do monitor fica em (0,0).
func (g *Game) screen(x, y int) present.Screen {
	scale := ebiten.Monitor().DeviceScaleFactor()
	native, ok := g.sys.MainPosition()
	if !ok {
		return present.Screen{Scale: scale}
	}
	return present.Calibrate(native, arena.Point{X: float64(x), Y: float64(y)}, scale)
}

func (g *Game) Update() error {
	if g.sim == nil {
		g.setup()
	}

	// Controles: W/S ou setas
	x, y := ebiten.WindowPosition()
	in := game.Input{
		Up:        ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:      ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		WindowPos: arena.Point{X: float64(x), Y: float64(y)},
	}

	ev := g.sim.Update(1/float64(ebiten.TPS()), in)
	state := &g.sim.State

	if pos, ok := state.WindowCommand(); ok {
		ebiten.SetWindowPosition(int(pos.X), int(pos.Y))
	} else {
		// Só recalibra com a janela parada na mão do usuário; durante a
		// animação a posição nativa chega atrasada.
		g.adapter.SetScreen(g.screen(x, y))
	}
	g.adapter.Sync(state, ev)

	logEvents(state, ev)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.sim == nil {
		return
	}
	render.Scene(screen, &g.cfg, &g.sim.State)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.cfg.ScreenWidth), int(g.cfg.ScreenHeight)
}

func logEvents(s *game.State, ev game.Events) {
	switch {
	case ev.Has(game.EventTransitionStarted):
		slog.Info("expanding to full screen", "phase", s.Phase.String(), "player_hits", s.PlayerHits)
	case ev.Has(game.EventTransitionDone):
		slog.Info("arena locked", "arena", s.Arena)
	}
	if ev.Has(game.EventPlayerScored) || ev.Has(game.EventAIScored) {
		slog.Info("point", "player", s.Score.Player, "ai", s.Score.AI, "ai_hits_total", s.AIHitsTotal)
	}
}

func main() {
	cfg := configs.New()

	ebiten.SetWindowSize(int(cfg.ScreenWidth), int(cfg.ScreenHeight))
	ebiten.SetWindowTitle(cfg.WindowTitle)
	ebiten.SetWindowIcon(render.Icon())
	ebiten.SetTPS(cfg.TPS)

	g := &Game{cfg: cfg, sys: winsys.Open(cfg.WindowTitle)}

	err := ebiten.RunGame(g)
	if g.adapter != nil {
		if cerr := g.adapter.Close(); cerr != nil {
			slog.Error("error to close aux windows", "error", cerr)
		}
	} else if cerr := g.sys.Close(); cerr != nil {
		slog.Error("error to close window system", "error", cerr)
	}

	if err != nil {
		slog.Error("error to run game", "error", err)
		os.Exit(1)
	}
}
