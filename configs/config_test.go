package configs

import "testing"

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.MaxBallSpeed != 2*cfg.BaseBallSpeed {
		t.Errorf("Expected max ball speed %f, got %f", 2*cfg.BaseBallSpeed, cfg.MaxBallSpeed)
	}
	if cfg.AnimDuration <= 0 {
		t.Errorf("Expected positive animation duration, got %f", cfg.AnimDuration)
	}
	if cfg.HitsToExpand != 2 {
		t.Errorf("Expected 2 hits to expand, got %d", cfg.HitsToExpand)
	}
	if cfg.ScreenWidth <= 0 || cfg.ScreenHeight <= 0 {
		t.Errorf("Expected non-degenerate window, got %fx%f", cfg.ScreenWidth, cfg.ScreenHeight)
	}
	if cfg.AI.MaxRamp >= 1.0 {
		t.Errorf("Expected ramp cap below perfect, got %f", cfg.AI.MaxRamp)
	}
}

func TestRightPaddleX(t *testing.T) {
	cfg := New()

	if got := cfg.RightPaddleX(800); got != 735 {
		t.Errorf("Expected 735, got %f", got)
	}
	if got := cfg.BallRadius(); got != 12.5 {
		t.Errorf("Expected radius 12.5, got %f", got)
	}
}
