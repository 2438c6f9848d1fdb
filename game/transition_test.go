package game

import (
	"math"
	"testing"

	"github.com/wvoliveira/pong-unbound/arena"
)

func TestTransitionArmsOnSecondHit(t *testing.T) {
	cfg, s := newTestState(t)
	in := Input{WindowPos: testWindow}

	primePlayerHit(&s)
	s, ev := Step(cfg, s, 0.5, in, nil)
	if !ev.Has(EventPlayerHit) || s.PlayerHits != 1 {
		t.Fatalf("Expected first hit counted, got hits=%d events=%v", s.PlayerHits, ev.Names())
	}
	if s.Phase != Windowed {
		t.Fatalf("Expected still windowed after one hit, got %s", s.Phase)
	}

	primePlayerHit(&s)
	s, ev = Step(cfg, s, 0.5, in, nil)
	if s.Phase != Animating || !ev.Has(EventTransitionStarted) {
		t.Fatalf("Expected animating in the same tick, got %s events=%v", s.Phase, ev.Names())
	}
	if s.StartArena != (arena.Rect{X: 100, Y: 50, W: 800, H: 600}) {
		t.Errorf("Unexpected start arena %+v", s.StartArena)
	}
	if s.WindowStart != testWindow {
		t.Errorf("Unexpected window start %+v", s.WindowStart)
	}
	if s.Player.LockedWorldY != s.StartArena.Y+s.Player.Pos.Y {
		t.Errorf("Expected player anchor %f, got %f", s.StartArena.Y+s.Player.Pos.Y, s.Player.LockedWorldY)
	}
	if s.AI.LockedWorldY != s.StartArena.Y+s.AI.Pos.Y {
		t.Errorf("Expected ai anchor %f, got %f", s.StartArena.Y+s.AI.Pos.Y, s.AI.LockedWorldY)
	}
}

// armed devolve um estado que acabou de entrar em Animating, com o rali
// parado para que só a transição mexa nas raquetes.
func armed(t *testing.T) (State, Input) {
	t.Helper()
	cfg, s := newTestState(t)
	in := Input{WindowPos: testWindow}

	s.PlayerHits = cfg.HitsToExpand - 1
	primePlayerHit(&s)
	s, _ = Step(cfg, s, 0.5, in, nil)
	if s.Phase != Animating {
		t.Fatalf("Expected animating, got %s", s.Phase)
	}
	s.Rally = false
	return s, in
}

func TestTransitionKeepsPaddlesStillOnScreen(t *testing.T) {
	cfg, _ := newTestState(t)
	s, in := armed(t)

	playerY := s.Player.LockedWorldY
	aiY := s.AI.LockedWorldY

	for i := 0; i < 4; i++ {
		s, _ = Step(cfg, s, 0.5, in, nil)
		if s.Phase != Animating {
			t.Fatalf("Tick %d: expected animating, got %s", i, s.Phase)
		}
		if got := s.Arena.ToScreen(s.Player.Pos).Y; math.Abs(got-playerY) > 1e-9 {
			t.Errorf("Tick %d: player drifted on screen: %f != %f", i, got, playerY)
		}
		if got := s.Arena.ToScreen(s.AI.Pos).Y; math.Abs(got-aiY) > 1e-9 {
			t.Errorf("Tick %d: ai drifted on screen: %f != %f", i, got, aiY)
		}
		if s.AI.Pos.X != cfg.RightPaddleX(s.Arena.W) {
			t.Errorf("Tick %d: ai column %f does not follow arena width %f", i, s.AI.Pos.X, s.Arena.W)
		}
		if !s.Arena.Valid() {
			t.Errorf("Tick %d: degenerate arena %+v", i, s.Arena)
		}
	}
}

func TestTransitionInterpolation(t *testing.T) {
	cfg, _ := newTestState(t)
	s, in := armed(t)

	s, _ = Step(cfg, s, 0.5, in, nil)
	s, _ = Step(cfg, s, 0.5, in, nil)

	// 1.0s de 2.5s: t = 0.4
	blend := arena.EaseInOutCubic(0.4)
	if math.Abs(s.Blend-blend) > 1e-12 {
		t.Errorf("Expected blend %f, got %f", blend, s.Blend)
	}
	if want := s.StartArena.Lerp(s.TargetArena, blend); s.Arena != want {
		t.Errorf("Expected arena %+v, got %+v", want, s.Arena)
	}

	pos, ok := s.WindowCommand()
	if !ok {
		t.Fatal("Expected a window command while animating")
	}
	if want := s.WindowStart.Lerp(s.WindowTarget, blend); pos != want {
		t.Errorf("Expected window at %+v, got %+v", want, pos)
	}
}

func TestTransitionLocksOnceAfterDuration(t *testing.T) {
	cfg, _ := newTestState(t)
	s, in := armed(t)

	var done int
	for i := 1; i <= 20; i++ {
		var ev Events
		s, ev = Step(cfg, s, 0.5, in, nil)
		if ev.Has(EventTransitionStarted) {
			t.Fatalf("Tick %d: transition re-armed", i)
		}
		if ev.Has(EventTransitionDone) {
			done++
			if i != 5 {
				t.Errorf("Expected lock after 2.5s (tick 5), got tick %d", i)
			}
		}
		if i >= 5 && s.Phase != Locked {
			t.Fatalf("Tick %d: expected locked, got %s", i, s.Phase)
		}
	}

	if done != 1 {
		t.Errorf("Expected exactly one transition_done, got %d", done)
	}
	if s.Arena != s.TargetArena {
		t.Errorf("Expected arena pinned to %+v, got %+v", s.TargetArena, s.Arena)
	}
	if pos, _ := s.WindowCommand(); pos != s.WindowTarget {
		t.Errorf("Expected window at %+v, got %+v", s.WindowTarget, pos)
	}
	if s.AI.Pos.X != cfg.RightPaddleX(s.TargetArena.W) {
		t.Errorf("Expected ai column at right edge, got %f", s.AI.Pos.X)
	}
}

func TestPlayerHitsFrozenAfterWindowed(t *testing.T) {
	cfg, _ := newTestState(t)
	s, in := armed(t)
	hits := s.PlayerHits

	for i := 0; i < 3; i++ {
		primePlayerHit(&s)
		var ev Events
		s, ev = Step(cfg, s, 0.5, in, nil)
		if !ev.Has(EventPlayerHit) {
			t.Fatalf("Tick %d: expected a player hit", i)
		}
		if s.PlayerHits != hits {
			t.Errorf("Tick %d: expected hits frozen at %d, got %d", i, hits, s.PlayerHits)
		}
	}
}
