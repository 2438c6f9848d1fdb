package game

import (
	"github.com/wvoliveira/pong-unbound/arena"
	"github.com/wvoliveira/pong-unbound/configs"
)

// Rand é a fonte de aleatoriedade da IA. *rand.Rand de math/rand/v2 serve.
type Rand interface {
	IntN(n int) int
}

type stepper struct {
	cfg *configs.Config
	rng Rand
	s   *State
	in  Input
	dt  float64
	ev  Events
}

// Step avança a simulação em um quadro de dt segundos. A ordem é a mesma do
// laço original: transição, entrada, IA e física, e por fim os limites.
func Step(cfg *configs.Config, s State, dt float64, in Input, rng Rand) (State, Events) {
	st := stepper{cfg: cfg, rng: rng, s: &s, in: in, dt: dt}

	st.transition()
	st.input()
	if s.Rally {
		st.ai()
		st.physics()
	}
	st.clamp()

	return s, st.ev
}

func (st *stepper) input() {
	s := st.s
	var dy float64
	if st.in.Up {
		dy -= st.cfg.Speed
	}
	if st.in.Down {
		dy += st.cfg.Speed
	}
	if !st.in.Up && !st.in.Down {
		return
	}

	s.Player.Move(dy, s.Phase.Anchored())
	if !s.Rally {
		s.Rally = true
		st.ev |= EventRallyStarted
	}
}

// clamp mantém as raquetes dentro da altura da arena.
func (st *stepper) clamp() {
	s := st.s
	if s.Phase == Locked {
		s.AI.Pos.X = st.cfg.RightPaddleX(s.Arena.W)
	}
	for _, p := range []*Paddle{&s.Player, &s.AI} {
		y := arena.Clamp(p.Pos.Y, 0, s.Arena.H-st.cfg.PaddleHeight)
		if y == p.Pos.Y {
			continue
		}
		p.Pos.Y = y
		if s.Phase.Anchored() {
			p.Pin(s.Arena)
		}
	}
}
