package arena

import (
	"math"
	"testing"
)

func TestEaseInOutCubicEndpoints(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{0.5, 0.5},
		{1, 1},
		{-1, 0},
		{2, 1},
	}

	for _, tt := range tests {
		if got := EaseInOutCubic(tt.in); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("EaseInOutCubic(%f): expected %f, got %f", tt.in, tt.want, got)
		}
	}
}

func TestEaseInOutCubicMonotonic(t *testing.T) {
	prev := EaseInOutCubic(0)
	for i := 1; i <= 1000; i++ {
		v := EaseInOutCubic(float64(i) / 1000)
		if v <= prev {
			t.Fatalf("Expected strictly increasing at step %d: %f <= %f", i, v, prev)
		}
		prev = v
	}
}

func TestRectLerp(t *testing.T) {
	from := Rect{X: 100, Y: 50, W: 800, H: 600}
	to := Rect{X: 0, Y: 0, W: 1920, H: 1080}

	if got := from.Lerp(to, 0); got != from {
		t.Errorf("Expected %+v at t=0, got %+v", from, got)
	}
	if got := from.Lerp(to, 1); got != to {
		t.Errorf("Expected %+v at t=1, got %+v", to, got)
	}

	mid := from.Lerp(to, 0.5)
	want := Rect{X: 50, Y: 25, W: 1360, H: 840}
	if mid != want {
		t.Errorf("Expected %+v at t=0.5, got %+v", want, mid)
	}
}

func TestFrameOfReference(t *testing.T) {
	r := Rect{X: 320, Y: 180, W: 800, H: 600}
	local := Point{X: 50, Y: 250}

	screen := r.ToScreen(local)
	if screen != (Point{X: 370, Y: 430}) {
		t.Errorf("Expected (370,430), got %+v", screen)
	}
	if back := r.ToLocal(screen); back != local {
		t.Errorf("Expected round trip to %+v, got %+v", local, back)
	}
	if r.Origin() != (Point{X: 320, Y: 180}) {
		t.Errorf("Unexpected origin %+v", r.Origin())
	}
}

func TestValid(t *testing.T) {
	if !(Rect{W: 1, H: 1}).Valid() {
		t.Error("Expected 1x1 rect to be valid")
	}
	if (Rect{W: 0, H: 10}).Valid() {
		t.Error("Expected zero-width rect to be invalid")
	}
}

func TestClamp(t *testing.T) {
	if Clamp(-5, 0, 10) != 0 || Clamp(15, 0, 10) != 10 || Clamp(3, 0, 10) != 3 {
		t.Error("Clamp returned a value outside its range")
	}
}
