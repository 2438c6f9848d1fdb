// Package render desenha a cena dentro da janela principal com ebiten.
package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/wvoliveira/pong-unbound/configs"
	"github.com/wvoliveira/pong-unbound/game"
)

var (
	background = color.Black
	centerLine = color.RGBA{0x50, 0x50, 0x50, 0xff}
	face       = text.NewGoXFace(basicfont.Face7x13)
)

const scoreScale = 4

// Scene desenha o placar, a linha central e, enquanto o jogo está na janela,
// as raquetes e a bola. Depois da transição quem mostra as peças são as
// janelas auxiliares.
func Scene(screen *ebiten.Image, cfg *configs.Config, s *game.State) {
	screen.Fill(background)

	w, h := float32(cfg.ScreenWidth), float32(cfg.ScreenHeight)

	// Placar
	drawScore(screen, s.Score.Player, float64(w)/4, 50)
	drawScore(screen, s.Score.AI, 3*float64(w)/4, 50)

	vector.StrokeLine(screen, w/2, 0, w/2, h, 1, centerLine, false)

	if s.Phase != game.Windowed {
		return
	}

	pw, ph := float32(cfg.PaddleWidth), float32(cfg.PaddleHeight)
	vector.FillRect(screen, float32(s.Player.Pos.X), float32(s.Player.Pos.Y), pw, ph, color.White, false)
	vector.FillRect(screen, float32(s.AI.Pos.X), float32(s.AI.Pos.Y), pw, ph, color.White, false)

	r := float32(cfg.BallRadius())
	vector.FillCircle(screen, float32(s.Ball.Pos.X)+r, float32(s.Ball.Pos.Y)+r, r, color.White, true)
}

func drawScore(screen *ebiten.Image, score int, x, y float64) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scoreScale, scoreScale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, fmt.Sprintf("%d", score), face, op)
}

// Icon gera os ícones da janela: uma bola branca sobre fundo preto.
func Icon() []image.Image {
	var icons []image.Image
	for _, size := range []int{16, 32, 48} {
		img := image.NewRGBA(image.Rect(0, 0, size, size))
		r := float64(size) / 2
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				dx, dy := float64(x)+0.5-r, float64(y)+0.5-r
				c := color.RGBA{A: 0xff}
				if dx*dx+dy*dy <= (r*0.6)*(r*0.6) {
					c = color.RGBA{0xff, 0xff, 0xff, 0xff}
				}
				img.SetRGBA(x, y, c)
			}
		}
		icons = append(icons, img)
	}
	return icons
}
