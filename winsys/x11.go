//go:build !windows

package winsys

import (
	"fmt"
	"image"
	"log/slog"
	"math"
	"os"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/shape"
	"github.com/jezek/xgb/xproto"
)

// X11 usa janelas override-redirect: sem borda e fora do gerenciador de
// janelas. Escondida = desmapeada.
type X11 struct {
	conn   *xgb.Conn
	screen *xproto.ScreenInfo
	title  string
	shape  bool

	main    xproto.Window
	topMost map[xproto.Window]bool
}

func openNative(title string) (System, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, fmt.Errorf("connect to X server: %w", err)
	}

	x := &X11{
		conn:    conn,
		screen:  xproto.Setup(conn).DefaultScreen(conn),
		title:   title,
		topMost: make(map[xproto.Window]bool),
	}
	if err := shape.Init(conn); err != nil {
		slog.Warn("X shape extension missing, ball stays square", "error", err)
	} else {
		x.shape = true
	}
	return x, nil
}

func (x *X11) CreateAux(w, h int) Handle {
	wid, err := xproto.NewWindowId(x.conn)
	if err != nil {
		slog.Error("error to allocate X window id", "error", err)
		return 0
	}

	xproto.CreateWindow(x.conn, x.screen.RootDepth, wid, x.screen.Root,
		0, 0, uint16(w), uint16(h), 0,
		xproto.WindowClassInputOutput, x.screen.RootVisual,
		xproto.CwBackPixel|xproto.CwOverrideRedirect|xproto.CwEventMask,
		[]uint32{x.screen.WhitePixel, 1, xproto.EventMaskExposure},
	)

	if main := x.mainWindow(); main != 0 {
		buf := make([]byte, 4)
		xgb.Put32(buf, uint32(main))
		xproto.ChangeProperty(x.conn, xproto.PropModeReplace, wid,
			xproto.AtomWmTransientFor, xproto.AtomWindow, 32, 1, buf)
	}
	return Handle(wid)
}

func (x *X11) MakeRound(h Handle, w, hgt int) {
	if h == 0 || !x.shape {
		return
	}
	shape.Rectangles(x.conn, shape.SoSet, shape.SkBounding, xproto.ClipOrderingUnsorted,
		xproto.Window(h), 0, 0, ellipseRows(w, hgt))
}

func (x *X11) SetBounds(h Handle, r image.Rectangle) {
	if h == 0 {
		return
	}
	wid := xproto.Window(h)
	xproto.ConfigureWindow(x.conn, wid,
		xproto.ConfigWindowX|xproto.ConfigWindowY|xproto.ConfigWindowWidth|xproto.ConfigWindowHeight,
		[]uint32{uint32(int32(r.Min.X)), uint32(int32(r.Min.Y)), uint32(r.Dx()), uint32(r.Dy())},
	)
	if x.topMost[wid] {
		x.raise(wid)
	}
}

func (x *X11) SetTopMost(h Handle, on bool) {
	if h == 0 {
		return
	}
	wid := xproto.Window(h)
	x.topMost[wid] = on
	if on {
		x.raise(wid)
	}
}

func (x *X11) SetVisible(h Handle, on bool) {
	if h == 0 {
		return
	}
	wid := xproto.Window(h)
	if on {
		xproto.MapWindow(x.conn, wid)
		return
	}
	xproto.UnmapWindow(x.conn, wid)
}

// MainPosition traduz a origem da janela principal para a raiz. Isso dá a
// área cliente, a mesma referência que o ebiten usa.
func (x *X11) MainPosition() (image.Point, bool) {
	main := x.mainWindow()
	if main == 0 {
		return image.Point{}, false
	}
	reply, err := xproto.TranslateCoordinates(x.conn, main, x.screen.Root, 0, 0).Reply()
	if err != nil || reply == nil {
		return image.Point{}, false
	}
	return image.Pt(int(reply.DstX), int(reply.DstY)), true
}

func (x *X11) FocusMain() {
	main := x.mainWindow()
	if main == 0 {
		return
	}
	active := x.atom("_NET_ACTIVE_WINDOW")
	if active == 0 {
		return
	}

	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: main,
		Type:   active,
		Data:   xproto.ClientMessageDataUnionData32New([]uint32{1, 0, 0, 0, 0}),
	}
	xproto.SendEvent(x.conn, false, x.screen.Root,
		xproto.EventMaskSubstructureNotify|xproto.EventMaskSubstructureRedirect,
		string(ev.Bytes()))
}

// UseDarkMode pede a variante escura do tema para a decoração da janela.
func (x *X11) UseDarkMode(on bool) {
	main := x.mainWindow()
	prop := x.atom("_GTK_THEME_VARIANT")
	utf8 := x.atom("UTF8_STRING")
	if main == 0 || prop == 0 || utf8 == 0 {
		return
	}

	variant := "light"
	if on {
		variant = "dark"
	}
	xproto.ChangeProperty(x.conn, xproto.PropModeReplace, main, prop, utf8, 8,
		uint32(len(variant)), []byte(variant))
}

func (x *X11) Pump() {
	for {
		ev, err := x.conn.PollForEvent()
		if ev == nil && err == nil {
			return
		}
		if err != nil {
			slog.Debug("X request failed", "error", err)
		}
	}
}

func (x *X11) Destroy(h Handle) {
	if h == 0 {
		return
	}
	delete(x.topMost, xproto.Window(h))
	xproto.DestroyWindow(x.conn, xproto.Window(h))
}

func (x *X11) Close() error {
	x.conn.Close()
	return nil
}

func (x *X11) raise(wid xproto.Window) {
	xproto.ConfigureWindow(x.conn, wid, xproto.ConfigWindowStackMode,
		[]uint32{xproto.StackModeAbove})
}

func (x *X11) atom(name string) xproto.Atom {
	reply, err := xproto.InternAtom(x.conn, true, uint16(len(name)), name).Reply()
	if err != nil || reply == nil {
		return 0
	}
	return reply.Atom
}

// mainWindow procura a janela principal em _NET_CLIENT_LIST: título igual e
// _NET_WM_PID deste processo. Sem _NET_WM_PID, vale a primeira com o título.
func (x *X11) mainWindow() xproto.Window {
	if x.main != 0 {
		return x.main
	}

	list := x.atom("_NET_CLIENT_LIST")
	name := x.atom("_NET_WM_NAME")
	if list == 0 || name == 0 {
		return 0
	}

	reply, err := xproto.GetProperty(x.conn, false, x.screen.Root, list,
		xproto.AtomWindow, 0, 1024).Reply()
	if err != nil || reply == nil || reply.Format != 32 {
		return 0
	}

	var fallback xproto.Window
	for i := 0; i+4 <= len(reply.Value); i += 4 {
		wid := xproto.Window(xgb.Get32(reply.Value[i:]))
		title, err := xproto.GetProperty(x.conn, false, wid, name,
			xproto.GetPropertyTypeAny, 0, 256).Reply()
		if err != nil || title == nil || string(title.Value) != x.title {
			continue
		}
		pid, ok := x.windowPID(wid)
		if ok && pid == os.Getpid() {
			x.main = wid
			return wid
		}
		if !ok && fallback == 0 {
			fallback = wid
		}
	}
	x.main = fallback
	return fallback
}

func (x *X11) windowPID(wid xproto.Window) (int, bool) {
	atom := x.atom("_NET_WM_PID")
	if atom == 0 {
		return 0, false
	}
	reply, err := xproto.GetProperty(x.conn, false, wid, atom,
		xproto.AtomCardinal, 0, 1).Reply()
	if err != nil || reply == nil || reply.Format != 32 || len(reply.Value) < 4 {
		return 0, false
	}
	return int(xgb.Get32(reply.Value)), true
}

// ellipseRows aproxima uma elipse w x h por uma faixa horizontal por linha.
func ellipseRows(w, h int) []xproto.Rectangle {
	rows := make([]xproto.Rectangle, 0, h)
	rx, ry := float64(w)/2, float64(h)/2
	for y := 0; y < h; y++ {
		dy := (float64(y) + 0.5 - ry) / ry
		span := 1 - dy*dy
		if span <= 0 {
			continue
		}
		half := rx * math.Sqrt(span)
		x0 := int(rx - half + 0.5)
		x1 := int(rx + half + 0.5)
		if x1 <= x0 {
			continue
		}
		rows = append(rows, xproto.Rectangle{
			X: int16(x0), Y: int16(y), Width: uint16(x1 - x0), Height: 1,
		})
	}
	return rows
}
