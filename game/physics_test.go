package game

import (
	"math"
	"testing"

	"github.com/wvoliveira/pong-unbound/arena"
)

func TestScoringResetsRally(t *testing.T) {
	cfg, s := newTestState(t)
	s.Rally = true
	s.PlayerHits = 1
	s.ReactionTimer = 0.1
	s.Ball.Pos = arena.Point{X: 0, Y: s.Arena.H / 2}
	s.Ball.Vel = arena.Point{X: -7, Y: 7}

	s, ev := Step(cfg, s, 1.0/60, Input{WindowPos: testWindow}, nil)

	if !ev.Has(EventAIScored) || s.Score.AI != 1 || s.Score.Player != 0 {
		t.Fatalf("Expected ai point, got score %+v events=%v", s.Score, ev.Names())
	}
	if s.Ball.Pos != (arena.Point{X: 400, Y: 300}) {
		t.Errorf("Expected ball recentred, got %+v", s.Ball.Pos)
	}
	if s.Ball.Vel != (arena.Point{X: cfg.BaseBallSpeed, Y: cfg.BaseBallSpeed}) {
		t.Errorf("Expected base velocity, got %+v", s.Ball.Vel)
	}
	if s.Rally {
		t.Error("Expected rally stopped after a point")
	}
	if s.PlayerHits != 0 {
		t.Errorf("Expected player hits reset, got %d", s.PlayerHits)
	}
	if s.AITarget != 300 || s.ReactionTimer != 0 {
		t.Errorf("Expected ai target reset, got target=%f timer=%f", s.AITarget, s.ReactionTimer)
	}
	paddleY := s.Arena.H/2 - cfg.PaddleHeight/2
	if s.Player.Pos.Y != paddleY || s.AI.Pos.Y != paddleY {
		t.Errorf("Expected paddles centred at %f, got %f / %f", paddleY, s.Player.Pos.Y, s.AI.Pos.Y)
	}
	if s.Player.LockedWorldY != s.Arena.Y+paddleY {
		t.Errorf("Expected anchor re-synced, got %f", s.Player.LockedWorldY)
	}
}

func TestScoringRightSide(t *testing.T) {
	cfg, s := newTestState(t)
	s.Rally = true
	s.Ball.Pos = arena.Point{X: s.Arena.W - 1, Y: 20}
	s.Ball.Vel = arena.Point{X: 9, Y: 0}

	s, ev := Step(cfg, s, 1.0/60, Input{WindowPos: testWindow}, nil)

	if !ev.Has(EventPlayerScored) || s.Score.Player != 1 {
		t.Errorf("Expected player point, got score %+v", s.Score)
	}
}

func TestWallBounce(t *testing.T) {
	tests := []struct {
		name  string
		y, vy float64
		wantV float64
	}{
		{"top", 3, -7, 7},
		{"bottom", 600 - 25 - 3, 7, -7},
		{"middle", 300, 7, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, s := newTestState(t)
			s.Rally = true
			s.Ball.Pos = arena.Point{X: 400, Y: tt.y}
			s.Ball.Vel = arena.Point{X: 7, Y: tt.vy}

			s, _ = Step(cfg, s, 1.0/60, Input{WindowPos: testWindow}, nil)

			if s.Ball.Vel.Y != tt.wantV {
				t.Errorf("Expected vy %f, got %f", tt.wantV, s.Ball.Vel.Y)
			}
			if s.Ball.Pos.Y < 0 || s.Ball.Pos.Y+cfg.BallSize > s.Arena.H {
				t.Errorf("Ball escaped vertically: y=%f", s.Ball.Pos.Y)
			}
		})
	}
}

func TestPaddleHitSpeedsUpAndCaps(t *testing.T) {
	tests := []struct {
		vx   float64
		want float64
	}{
		{-7, 8},
		{-13.5, 14},
		{-14, 14},
	}

	for _, tt := range tests {
		cfg, s := newTestState(t)
		primePlayerHit(&s)
		s.Ball.Vel.X = tt.vx
		s.Ball.Pos.X = s.Player.Pos.X + cfg.PaddleWidth - tt.vx - 1

		s, ev := Step(cfg, s, 1.0/60, Input{WindowPos: testWindow}, nil)

		if !ev.Has(EventPlayerHit) {
			t.Fatalf("vx=%f: expected a player hit", tt.vx)
		}
		if s.Ball.Vel.X != tt.want {
			t.Errorf("vx=%f: expected %f, got %f", tt.vx, tt.want, s.Ball.Vel.X)
		}
		if s.Ball.Pos.X != s.Player.Pos.X+cfg.PaddleWidth+1 {
			t.Errorf("vx=%f: ball not pushed out of paddle, x=%f", tt.vx, s.Ball.Pos.X)
		}
	}
}

func TestAIHitCountsAndSpeedsUp(t *testing.T) {
	cfg, s := newTestState(t)
	s.Rally = true
	s.AIHitsTotal = 50
	s.AI.Pos.Y = 250
	s.AITarget = 300
	s.Ball.Pos = arena.Point{X: s.AI.Pos.X - 30, Y: 280}
	s.Ball.Vel = arena.Point{X: 10, Y: 0}

	s, ev := Step(cfg, s, 1.0/60, Input{WindowPos: testWindow}, &seqRand{vals: []int{0}})

	if !ev.Has(EventAIHit) || s.AIHitsTotal != 51 {
		t.Fatalf("Expected ai hit, got total=%d events=%v", s.AIHitsTotal, ev.Names())
	}
	if s.Ball.Vel.X != -11 {
		t.Errorf("Expected vx -11, got %f", s.Ball.Vel.X)
	}
	if s.Ball.Pos.X != s.AI.Pos.X-cfg.BallSize-1 {
		t.Errorf("Ball not pushed out of ai paddle, x=%f", s.Ball.Pos.X)
	}
}

// Rodada longa com piloto automático verificando os invariantes a cada
// quadro. Começa armando a transição para passar pelas três fases.
func TestInvariantsOverLongRun(t *testing.T) {
	cfg, _ := newTestState(t)
	sim := NewSim(cfg, 1234, testWindow, testMonitor)
	sim.State.PlayerHits = cfg.HitsToExpand - 1
	primePlayerHit(&sim.State)

	if ev := sim.Update(1.0/60, Input{WindowPos: testWindow}); !ev.Has(EventTransitionStarted) {
		t.Fatalf("Expected transition to start, got %v", ev.Names())
	}

	var sawLock bool
	lockedTicks := 0
	for i := 0; i < 30000; i++ {
		prev := sim.State
		ev := sim.Update(1.0/60, Autopilot(cfg, &sim.State))
		s := sim.State

		if s.AIHitsTotal < prev.AIHitsTotal {
			t.Fatalf("Tick %d: ai hits decreased %d -> %d", i, prev.AIHitsTotal, s.AIHitsTotal)
		}
		if prev.Phase != Windowed && s.PlayerHits > prev.PlayerHits {
			t.Fatalf("Tick %d: player hits grew outside windowed phase", i)
		}
		if s.Phase < prev.Phase {
			t.Fatalf("Tick %d: phase went back %s -> %s", i, prev.Phase, s.Phase)
		}
		if s.Ball.Pos.Y < 0 || s.Ball.Pos.Y+cfg.BallSize > s.Arena.H {
			t.Fatalf("Tick %d: ball escaped vertically y=%f h=%f", i, s.Ball.Pos.Y, s.Arena.H)
		}
		if math.Abs(s.Ball.Vel.X) > cfg.MaxBallSpeed {
			t.Fatalf("Tick %d: ball speed %f above cap", i, s.Ball.Vel.X)
		}
		if !s.Arena.Valid() {
			t.Fatalf("Tick %d: degenerate arena %+v", i, s.Arena)
		}
		if s.Phase.Anchored() {
			for _, p := range []Paddle{s.Player, s.AI} {
				if math.Abs(s.Arena.ToScreen(p.Pos).Y-p.LockedWorldY) > 1e-6 {
					t.Fatalf("Tick %d: anchor out of sync: %f vs %f", i, s.Arena.ToScreen(p.Pos).Y, p.LockedWorldY)
				}
			}
		}
		if ev.Has(EventTransitionDone) {
			sawLock = true
		}
		if s.Phase == Locked {
			lockedTicks++
		}
	}

	if !sawLock {
		t.Fatal("Expected the arena to lock during the run")
	}
	if lockedTicks < 20000 {
		t.Errorf("Expected most of the run locked, got %d ticks", lockedTicks)
	}
}
