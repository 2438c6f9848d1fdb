package game

import (
	"github.com/wvoliveira/pong-unbound/arena"
)

// transition atualiza arena e janela conforme a fase.
func (st *stepper) transition() {
	s := st.s
	switch s.Phase {
	case Windowed:
		// A janela pode ser arrastada; a arena acompanha só a origem.
		s.Arena.X = st.in.WindowPos.X
		s.Arena.Y = st.in.WindowPos.Y
		s.Window = st.in.WindowPos
		s.Blend = 0

	case Animating:
		s.AnimTimer += st.dt
		t := arena.Clamp(s.AnimTimer/st.cfg.AnimDuration, 0, 1)
		s.Blend = arena.EaseInOutCubic(t)

		s.Arena = s.StartArena.Lerp(s.TargetArena, s.Blend)
		s.Window = s.WindowStart.Lerp(s.WindowTarget, s.Blend)

		if t >= 1 {
			s.Phase = Locked
			s.Arena = s.TargetArena
			s.Window = s.WindowTarget
			s.Blend = 1
			st.ev |= EventTransitionDone
		}

		s.Player.Follow(s.Arena)
		s.AI.Follow(s.Arena)
		s.AI.Pos.X = st.cfg.RightPaddleX(s.Arena.W)

	case Locked:
		s.Window = s.WindowTarget
		s.Arena = s.TargetArena
		s.Blend = 1
	}
}

// arm inicia a animação. Só tem efeito na fase Windowed.
func (st *stepper) arm() {
	s := st.s
	if s.Phase != Windowed {
		return
	}

	pos := st.in.WindowPos
	s.StartArena = arena.Rect{X: pos.X, Y: pos.Y, W: st.cfg.ScreenWidth, H: st.cfg.ScreenHeight}
	s.WindowStart = pos
	s.AnimTimer = 0
	s.Player.Pin(s.StartArena)
	s.AI.Pin(s.StartArena)

	s.Phase = Animating
	st.ev |= EventTransitionStarted
}
