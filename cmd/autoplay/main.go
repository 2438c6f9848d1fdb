// autoplay roda partidas sem janela, com o piloto automático no lugar do
// jogador, e confere os invariantes da simulação a cada quadro.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"golang.org/x/sync/errgroup"

	"github.com/wvoliveira/pong-unbound/arena"
	"github.com/wvoliveira/pong-unbound/configs"
	"github.com/wvoliveira/pong-unbound/game"
)

const (
	matches    = 4
	pointLimit = 11
	maxFrames  = 60 * 60 * 30 // 30 minutos de jogo
)

var (
	window  = arena.Point{X: 560, Y: 240}
	monitor = arena.Point{X: 1920, Y: 1080}
)

type result struct {
	Seed     uint64
	Score    game.Score
	Frames   int
	LockedAt int
	AIHits   int
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg := configs.New()
	results := make([]result, matches)

	g, ctx := errgroup.WithContext(ctx)
	for i := range matches {
		g.Go(func() error {
			r, err := play(ctx, &cfg, uint64(i+1))
			results[i] = r
			return err
		})
	}

	err := g.Wait()
	for _, r := range results {
		slog.Info("match finished",
			"seed", r.Seed, "player", r.Score.Player, "ai", r.Score.AI,
			"frames", r.Frames, "locked_at", r.LockedAt, "ai_hits_total", r.AIHits)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("error to run matches", "error", err)
		os.Exit(1)
	}
}

func play(ctx context.Context, cfg *configs.Config, seed uint64) (result, error) {
	sim := game.NewSim(cfg, seed, window, monitor)
	dt := 1 / float64(cfg.TPS)
	log := slog.With("seed", seed)

	res := result{Seed: seed, LockedAt: -1}
	for frame := 0; frame < maxFrames; frame++ {
		select {
		case <-ctx.Done():
			return res, ctx.Err()
		default:
		}

		prev := sim.State
		ev := sim.Update(dt, game.Autopilot(cfg, &sim.State))
		s := &sim.State

		if err := check(cfg, &prev, s); err != nil {
			return res, fmt.Errorf("seed %d frame %d: %w", seed, frame, err)
		}

		res.Frames = frame + 1
		res.Score = s.Score
		res.AIHits = s.AIHitsTotal

		if ev.Has(game.EventTransitionStarted) {
			log.Info("transition started", "frame", frame)
		}
		if ev.Has(game.EventTransitionDone) {
			res.LockedAt = frame
			log.Info("arena locked", "frame", frame)
		}
		if ev.Has(game.EventPlayerScored) || ev.Has(game.EventAIScored) {
			log.Debug("point", "player", s.Score.Player, "ai", s.Score.AI)
		}

		if max(s.Score.Player, s.Score.AI) >= pointLimit {
			break
		}
	}
	return res, nil
}

// check confere os invariantes entre dois quadros seguidos.
func check(cfg *configs.Config, prev, s *game.State) error {
	switch {
	case s.AIHitsTotal < prev.AIHitsTotal:
		return fmt.Errorf("ai hits decreased %d -> %d", prev.AIHitsTotal, s.AIHitsTotal)
	case prev.Phase != game.Windowed && s.PlayerHits > prev.PlayerHits:
		return fmt.Errorf("player hits grew in phase %s", prev.Phase)
	case s.Phase < prev.Phase:
		return fmt.Errorf("phase went back %s -> %s", prev.Phase, s.Phase)
	case !s.Arena.Valid():
		return fmt.Errorf("degenerate arena %+v", s.Arena)
	case s.Ball.Pos.Y < 0 || s.Ball.Pos.Y+cfg.BallSize > s.Arena.H:
		return fmt.Errorf("ball escaped vertically at y=%f", s.Ball.Pos.Y)
	}
	return nil
}
