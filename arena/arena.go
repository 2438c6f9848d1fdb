// Package arena guarda o retângulo lógico do campo de jogo e a conversão
// entre coordenadas locais da arena e coordenadas absolutas de tela.
package arena

// Ponto em unidades de tela.
type Point struct {
	X float64
	Y float64
}

// Retângulo em coordenadas de tela. X/Y é a origem da arena.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

func (r Rect) Valid() bool {
	return r.W > 0 && r.H > 0
}

func (r Rect) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}

// ToScreen converte uma posição local da arena para tela.
func (r Rect) ToScreen(local Point) Point {
	return Point{X: r.X + local.X, Y: r.Y + local.Y}
}

// ToLocal é o inverso de ToScreen.
func (r Rect) ToLocal(screen Point) Point {
	return Point{X: screen.X - r.X, Y: screen.Y - r.Y}
}

func (r Rect) Lerp(to Rect, t float64) Rect {
	return Rect{
		X: Lerp(r.X, to.X, t),
		Y: Lerp(r.Y, to.Y, t),
		W: Lerp(r.W, to.W, t),
		H: Lerp(r.H, to.H, t),
	}
}

func (p Point) Lerp(to Point, t float64) Point {
	return Point{X: Lerp(p.X, to.X, t), Y: Lerp(p.Y, to.Y, t)}
}

func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// EaseInOutCubic: acelera até a metade e desacelera até o fim.
func EaseInOutCubic(t float64) float64 {
	t = Clamp(t, 0, 1)
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}
