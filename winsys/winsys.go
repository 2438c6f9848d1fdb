// Package winsys cria e move as janelas auxiliares (raquetes e bola) no
// sistema de janelas nativo. Existem três backends: X11 (via xgb), Win32 (via
// x/sys/windows) e Headless, que não faz nada.
package winsys

import (
	"image"
	"log/slog"
)

// Handle identifica uma janela auxiliar. Zero é "sem janela" e toda operação
// com ele é ignorada.
type Handle uintptr

// System é a capacidade de janelas que o jogo usa.
type System interface {
	// CreateAux cria uma janela sem borda, acima das outras, inicialmente
	// invisível, pertencente à janela principal.
	CreateAux(w, h int) Handle
	// MakeRound deixa a região visível da janela elíptica.
	MakeRound(h Handle, w, hgt int)
	SetBounds(h Handle, r image.Rectangle)
	SetTopMost(h Handle, on bool)
	// SetVisible mostra a janela opaca ou a esconde sem destruí-la.
	SetVisible(h Handle, on bool)
	FocusMain()
	// MainPosition devolve o canto da área cliente da janela principal em
	// pixels nativos absolutos. ok é falso se a janela não foi encontrada.
	MainPosition() (p image.Point, ok bool)
	UseDarkMode(on bool)
	// Pump drena as mensagens pendentes do SO. Chamado uma vez por quadro.
	Pump()
	Destroy(h Handle)
	Close() error
}

// Open tenta o backend nativo da plataforma e cai para Headless se falhar.
// title é o título da janela principal, usado para encontrá-la.
func Open(title string) System {
	sys, err := openNative(title)
	if err != nil {
		slog.Warn("native window system unavailable, running headless", "error", err)
		return Headless{}
	}
	return sys
}

// Headless implementa System sem fazer nada.
type Headless struct{}

func (Headless) CreateAux(w, h int) Handle             { return 0 }
func (Headless) MakeRound(h Handle, w, hgt int)        {}
func (Headless) SetBounds(h Handle, r image.Rectangle) {}
func (Headless) SetTopMost(h Handle, on bool)          {}
func (Headless) SetVisible(h Handle, on bool)          {}
func (Headless) FocusMain()                            {}
func (Headless) MainPosition() (image.Point, bool)     { return image.Point{}, false }
func (Headless) UseDarkMode(on bool)                   {}
func (Headless) Pump()                                 {}
func (Headless) Destroy(h Handle)                      {}
func (Headless) Close() error                          { return nil }
