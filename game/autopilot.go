package game

import "github.com/wvoliveira/pong-unbound/configs"

// Autopilot gera a entrada de um jogador que persegue a bola. Sempre aperta
// alguma tecla, então também serve a bola depois de cada ponto.
//
// A janela é tratada como obediente: fica onde a simulação mandou por último.
func Autopilot(cfg *configs.Config, s *State) Input {
	in := Input{WindowPos: s.Window}

	center := s.Player.Pos.Y + cfg.PaddleHeight/2
	if s.Ball.Pos.Y+cfg.BallRadius() < center {
		in.Up = true
	} else {
		in.Down = true
	}
	return in
}
