package game

import (
	"math"

	"github.com/wvoliveira/pong-unbound/arena"
	"github.com/wvoliveira/pong-unbound/configs"
)

// Difficulty calcula o coeficiente da IA em [0,1] a partir do total de
// rebatidas da IA e do placar.
func Difficulty(ai *configs.AIConfig, aiHitsTotal int, score Score) float64 {
	diff := score.Diff()
	switch {
	case aiHitsTotal <= ai.WarmupHits:
		// Primeiras rebatidas garantidas.
		return 1.0
	case diff <= -ai.ScoreMargin:
		// Jogador perdendo: facilita.
		return ai.AssistDifficulty
	case diff >= ai.ScoreMargin:
		// Jogador ganhando com folga: invencível.
		return 1.0
	}
	d := ai.BaseDifficulty + math.Sqrt(float64(aiHitsTotal-ai.WarmupHits))*ai.RampFactor
	return math.Min(d, ai.MaxRamp)
}

func (st *stepper) ai() {
	s := st.s
	ai := &st.cfg.AI
	half := st.cfg.PaddleHeight / 2

	d := Difficulty(ai, s.AIHitsTotal, s.Score)
	center := s.AI.Pos.Y + half

	if d == 1.0 {
		// Perfeita: segue a bola direto, sem atraso nem erro.
		switch {
		case s.Ball.Pos.Y > center:
			s.AI.Move(ai.PerfectSpeed, s.Phase.Anchored())
		case s.Ball.Pos.Y < center:
			s.AI.Move(-ai.PerfectSpeed, s.Phase.Anchored())
		}
		return
	}

	s.ReactionTimer += st.dt
	if s.ReactionTimer >= ai.ReactionDelay {
		s.ReactionTimer = 0
		s.AITarget = arena.Clamp(
			s.Ball.Pos.Y+st.cfg.BallRadius()+st.errorOffset(d),
			half,
			s.Arena.H-half,
		)
	}

	speed := ai.BaseSpeed + ai.SpeedScale*d
	diff := s.AITarget - center
	step := arena.Clamp(diff*ai.Smoothing, -speed, speed)

	if math.Abs(diff) > ai.Deadzone {
		s.AI.Move(step, s.Phase.Anchored())
	}
}

// errorOffset sorteia um erro inteiro uniforme em [-n/2, n/2], com n
// proporcional a (1 - d).
func (st *stepper) errorOffset(d float64) float64 {
	n := int(st.cfg.AI.MaxError*(1-d)) / 2
	if n <= 0 || st.rng == nil {
		return 0
	}
	return float64(st.rng.IntN(2*n+1) - n)
}
