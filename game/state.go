// Package game contém a simulação: fases da transição, física, placar e IA.
//
// Todo o estado mutável vive em State, que é um valor comparável (sem
// ponteiros nem slices). Step avança um quadro; a camada de apresentação só
// lê o resultado.
package game

import (
	"github.com/wvoliveira/pong-unbound/arena"
	"github.com/wvoliveira/pong-unbound/configs"
)

// Phase é a fase da transição janela -> tela cheia.
type Phase int

const (
	Windowed Phase = iota
	Animating
	Locked
)

func (p Phase) String() string {
	switch p {
	case Windowed:
		return "windowed"
	case Animating:
		return "animating"
	case Locked:
		return "locked"
	}
	return "unknown"
}

// Anchored indica se as raquetes estão presas a coordenadas absolutas.
func (p Phase) Anchored() bool {
	return p == Animating || p == Locked
}

// Paddle guarda a posição local à arena e a âncora absoluta em Y.
type Paddle struct {
	Pos          arena.Point
	LockedWorldY float64
}

// Pin recalcula a âncora a partir da posição local atual.
func (p *Paddle) Pin(a arena.Rect) {
	p.LockedWorldY = a.ToScreen(p.Pos).Y
}

// Follow reposiciona a raquete para que continue parada na tela enquanto a
// arena se move por baixo dela.
func (p *Paddle) Follow(a arena.Rect) {
	p.Pos.Y = a.ToLocal(arena.Point{Y: p.LockedWorldY}).Y
}

// Move desloca a raquete e, se preciso, a âncora junto.
func (p *Paddle) Move(dy float64, anchored bool) {
	p.Pos.Y += dy
	if anchored {
		p.LockedWorldY += dy
	}
}

type Ball struct {
	Pos arena.Point
	Vel arena.Point
}

type Score struct {
	Player int
	AI     int
}

// Diff é o placar do jogador menos o da IA.
func (s Score) Diff() int {
	return s.Player - s.AI
}

// Input é o que a camada de apresentação entrega a cada quadro.
type Input struct {
	Up   bool
	Down bool
	// Posição atual da janela principal no SO.
	WindowPos arena.Point
}

// Estado do mundo.
type State struct {
	Phase Phase

	Arena       arena.Rect
	StartArena  arena.Rect
	TargetArena arena.Rect

	Window       arena.Point
	WindowStart  arena.Point
	WindowTarget arena.Point

	AnimTimer float64
	Blend     float64

	Player Paddle
	AI     Paddle
	Ball   Ball

	Score       Score
	Rally       bool
	PlayerHits  int
	AIHitsTotal int

	AITarget      float64
	ReactionTimer float64
}

// NewState monta o estado inicial para uma janela em windowPos e um monitor
// de tamanho monitor.
func NewState(cfg *configs.Config, windowPos, monitor arena.Point) State {
	w, h := cfg.ScreenWidth, cfg.ScreenHeight
	paddleY := h/2 - cfg.PaddleHeight/2

	return State{
		Phase:       Windowed,
		Arena:       arena.Rect{X: windowPos.X, Y: windowPos.Y, W: w, H: h},
		StartArena:  arena.Rect{X: windowPos.X, Y: windowPos.Y, W: w, H: h},
		TargetArena: arena.Rect{W: monitor.X, H: monitor.Y},

		Window: windowPos,
		WindowTarget: arena.Point{
			X: monitor.X/2 - w/2,
			Y: monitor.Y/2 - h/2,
		},

		Player: Paddle{Pos: arena.Point{X: cfg.PaddleMargin, Y: paddleY}},
		AI:     Paddle{Pos: arena.Point{X: cfg.RightPaddleX(w), Y: paddleY}},
		Ball: Ball{
			Pos: arena.Point{X: w / 2, Y: h / 2},
			Vel: arena.Point{X: cfg.BaseBallSpeed, Y: cfg.BaseBallSpeed},
		},

		AITarget: h / 2,
	}
}

// WindowCommand devolve a posição para onde a janela principal deve ir.
// Na fase Windowed a janela é livre (o usuário pode arrastá-la).
func (s *State) WindowCommand() (arena.Point, bool) {
	if !s.Phase.Anchored() {
		return arena.Point{}, false
	}
	return s.Window, true
}

// BallScreen é a posição absoluta da bola.
func (s *State) BallScreen() arena.Point {
	return s.Arena.ToScreen(s.Ball.Pos)
}
