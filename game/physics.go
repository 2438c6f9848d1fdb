package game

import (
	"math"

	"github.com/wvoliveira/pong-unbound/arena"
)

func (st *stepper) physics() {
	s := st.s
	size := st.cfg.BallSize

	s.Ball.Pos.X += s.Ball.Vel.X
	s.Ball.Pos.Y += s.Ball.Vel.Y

	// Teto/Chão
	if s.Ball.Pos.Y <= 0 {
		s.Ball.Pos.Y = 0
		s.Ball.Vel.Y = math.Abs(s.Ball.Vel.Y)
	} else if s.Ball.Pos.Y+size >= s.Arena.H {
		s.Ball.Pos.Y = s.Arena.H - size
		s.Ball.Vel.Y = -math.Abs(s.Ball.Vel.Y)
	}

	// Ponto / Reset
	if s.Ball.Pos.X < 0 {
		s.Score.AI++
		st.ev |= EventAIScored
		st.resetRally()
		return
	}
	if s.Ball.Pos.X > s.Arena.W {
		s.Score.Player++
		st.ev |= EventPlayerScored
		st.resetRally()
		return
	}

	// Colisão raquete 1 (jogador)
	if st.overlaps(s.Player.Pos) {
		s.Ball.Pos.X = s.Player.Pos.X + st.cfg.PaddleWidth + 1
		st.bounce()
		st.ev |= EventPlayerHit

		if s.Phase == Windowed {
			s.PlayerHits++
			if s.PlayerHits >= st.cfg.HitsToExpand {
				st.arm()
			}
		}
	}

	// Colisão raquete 2 (IA)
	if st.overlaps(s.AI.Pos) {
		s.Ball.Pos.X = s.AI.Pos.X - size - 1
		st.bounce()
		s.AIHitsTotal++
		st.ev |= EventAIHit
	}
}

// overlaps testa a caixa da bola contra a raquete em p.
func (st *stepper) overlaps(p arena.Point) bool {
	b := st.s.Ball.Pos
	size := st.cfg.BallSize
	return b.X < p.X+st.cfg.PaddleWidth && b.X+size > p.X &&
		b.Y < p.Y+st.cfg.PaddleHeight && b.Y+size > p.Y
}

// bounce inverte vx e acelera um passo, respeitando a velocidade máxima.
func (st *stepper) bounce() {
	v := &st.s.Ball.Vel
	speed := math.Min(math.Abs(v.X)+st.cfg.SpeedStep, st.cfg.MaxBallSpeed)
	if v.X > 0 {
		v.X = -speed
	} else {
		v.X = speed
	}
}

func (st *stepper) resetRally() {
	s := st.s
	w, h := s.Arena.W, s.Arena.H

	s.Ball.Pos = arena.Point{X: w / 2, Y: h / 2}
	s.Ball.Vel = arena.Point{X: st.cfg.BaseBallSpeed, Y: st.cfg.BaseBallSpeed}
	s.Rally = false
	s.PlayerHits = 0

	paddleY := h/2 - st.cfg.PaddleHeight/2
	s.Player.Pos.Y = paddleY
	s.AI.Pos.Y = paddleY
	s.Player.Pin(s.Arena)
	s.AI.Pin(s.Arena)

	s.AITarget = h / 2
	s.ReactionTimer = 0
}
