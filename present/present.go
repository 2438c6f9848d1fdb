// Package present leva as posições da simulação para as janelas auxiliares.
// O fluxo é de mão única: nada aqui altera o estado do jogo.
package present

import (
	"image"
	"log/slog"
	"math"

	"github.com/wvoliveira/pong-unbound/arena"
	"github.com/wvoliveira/pong-unbound/configs"
	"github.com/wvoliveira/pong-unbound/game"
	"github.com/wvoliveira/pong-unbound/winsys"
)

// Placement são os retângulos absolutos de tela de cada janela auxiliar.
type Placement struct {
	Player image.Rectangle
	AI     image.Rectangle
	Ball   image.Rectangle
}

// TitleBarOffset compensa a barra de título da janela principal, que some
// durante a animação.
func TitleBarOffset(cfg *configs.Config, s *game.State) int {
	return int(cfg.TitleBarOffset * (1 - s.Blend))
}

// Screen converte coordenadas do ebiten (independentes de DPI e relativas ao
// monitor atual) para pixels nativos absolutos da área de trabalho.
// O valor zero é a identidade.
type Screen struct {
	Origin image.Point // canto do monitor, em pixels nativos
	Scale  float64     // fator de escala do monitor
}

// Calibrate deduz a origem do monitor a partir da posição da janela principal
// vista pelos dois lados: native pelo sistema de janelas, dip pelo ebiten.
func Calibrate(native image.Point, dip arena.Point, scale float64) Screen {
	sc := Screen{Scale: scale}
	sc.Origin = native.Sub(sc.Point(dip))
	return sc
}

func (sc Screen) scale() float64 {
	if sc.Scale <= 0 {
		return 1
	}
	return sc.Scale
}

// Point converte um ponto relativo ao monitor, sem somar a origem.
func (sc Screen) Point(p arena.Point) image.Point {
	k := sc.scale()
	return image.Pt(int(math.Floor(p.X*k)), int(math.Floor(p.Y*k)))
}

// Len converte um comprimento.
func (sc Screen) Len(v float64) int {
	return int(math.Round(v * sc.scale()))
}

func (sc Screen) rect(p arena.Point, w, h float64) image.Rectangle {
	at := sc.Origin.Add(sc.Point(p))
	return image.Rectangle{Min: at, Max: at.Add(image.Pt(sc.Len(w), sc.Len(h)))}
}

// Place calcula os retângulos nativos. A simulação fica em pixels do ebiten;
// só aqui se aplicam escala e origem do monitor.
func Place(cfg *configs.Config, s *game.State, sc Screen) Placement {
	offset := TitleBarOffset(cfg, s)

	paddle := func(p game.Paddle) image.Rectangle {
		at := s.Arena.ToScreen(p.Pos)
		at.Y += float64(offset)
		return sc.rect(at, cfg.PaddleWidth, cfg.PaddleHeight)
	}

	return Placement{
		Player: paddle(s.Player),
		AI:     paddle(s.AI),
		Ball:   sc.rect(s.BallScreen(), cfg.BallSize, cfg.BallSize),
	}
}

// Adapter é dono das três janelas auxiliares.
type Adapter struct {
	cfg *configs.Config
	sys winsys.System

	player winsys.Handle
	ai     winsys.Handle
	ball   winsys.Handle

	screen   Screen
	revealed bool
}

// NewAdapter cria as janelas (invisíveis), arredonda a bola e devolve o foco
// para a janela principal. Os tamanhos já saem em pixels nativos.
func NewAdapter(cfg *configs.Config, sys winsys.System, sc Screen) *Adapter {
	pw, ph := sc.Len(cfg.PaddleWidth), sc.Len(cfg.PaddleHeight)
	size := sc.Len(cfg.BallSize)

	a := &Adapter{
		cfg:    cfg,
		sys:    sys,
		screen: sc,
		player: sys.CreateAux(pw, ph),
		ai:     sys.CreateAux(pw, ph),
		ball:   sys.CreateAux(size, size),
	}
	sys.MakeRound(a.ball, size, size)
	sys.FocusMain()

	slog.Info("aux windows created", "player", a.player, "ai", a.ai, "ball", a.ball)
	return a
}

// SetScreen troca a conversão usada nos próximos Sync, ex.: quando a janela
// principal muda de monitor.
func (a *Adapter) SetScreen(sc Screen) {
	a.screen = sc
}

func (a *Adapter) handles() []winsys.Handle {
	return []winsys.Handle{a.player, a.ai, a.ball}
}

// Sync aplica o quadro atual. Chamado uma vez por quadro, depois de Update.
func (a *Adapter) Sync(s *game.State, ev game.Events) {
	// Também revela se o estado já chegou animado (ex.: restaurado de um
	// snapshot) sem o evento.
	if !a.revealed && (ev.Has(game.EventTransitionStarted) || s.Phase != game.Windowed) {
		a.reveal()
	}

	p := Place(a.cfg, s, a.screen)
	a.sys.SetBounds(a.player, p.Player)
	a.sys.SetBounds(a.ai, p.AI)
	a.sys.SetBounds(a.ball, p.Ball)
	a.sys.Pump()
}

func (a *Adapter) reveal() {
	for _, h := range a.handles() {
		a.sys.SetVisible(h, true)
	}
	for _, h := range a.handles() {
		a.sys.SetTopMost(h, true)
	}
	a.revealed = true
	slog.Info("aux windows revealed")
}

// Close destrói as janelas sempre, mesmo que nunca tenham aparecido.
func (a *Adapter) Close() error {
	for _, h := range a.handles() {
		a.sys.Destroy(h)
	}
	return a.sys.Close()
}
