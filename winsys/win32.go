//go:build windows

package winsys

import (
	"fmt"
	"image"
	"sync"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32 = windows.NewLazySystemDLL("user32.dll")
	gdi32  = windows.NewLazySystemDLL("gdi32.dll")
	dwmapi = windows.NewLazySystemDLL("dwmapi.dll")

	procRegisterClassExW           = user32.NewProc("RegisterClassExW")
	procCreateWindowExW            = user32.NewProc("CreateWindowExW")
	procDefWindowProcW             = user32.NewProc("DefWindowProcW")
	procDestroyWindow              = user32.NewProc("DestroyWindow")
	procBeginPaint                 = user32.NewProc("BeginPaint")
	procEndPaint                   = user32.NewProc("EndPaint")
	procFillRect                   = user32.NewProc("FillRect")
	procGetWindowLongPtrW          = user32.NewProc("GetWindowLongPtrW")
	procSetWindowLongPtrW          = user32.NewProc("SetWindowLongPtrW")
	procSetLayeredWindowAttributes = user32.NewProc("SetLayeredWindowAttributes")
	procInvalidateRect             = user32.NewProc("InvalidateRect")
	procSetWindowRgn               = user32.NewProc("SetWindowRgn")
	procSetWindowPos               = user32.NewProc("SetWindowPos")
	procSetForegroundWindow        = user32.NewProc("SetForegroundWindow")
	procFindWindowExW              = user32.NewProc("FindWindowExW")
	procClientToScreen             = user32.NewProc("ClientToScreen")
	procLoadCursorW                = user32.NewProc("LoadCursorW")
	procPeekMessageW               = user32.NewProc("PeekMessageW")
	procTranslateMessage           = user32.NewProc("TranslateMessage")
	procDispatchMessageW           = user32.NewProc("DispatchMessageW")
	procShowWindow                 = user32.NewProc("ShowWindow")

	procCreateSolidBrush  = gdi32.NewProc("CreateSolidBrush")
	procCreateEllipticRgn = gdi32.NewProc("CreateEllipticRgn")
	procDeleteObject      = gdi32.NewProc("DeleteObject")

	procDwmSetWindowAttribute = dwmapi.NewProc("DwmSetWindowAttribute")
)

const (
	wsPopup   = 0x80000000
	wsVisible = 0x10000000

	wsExToolWindow = 0x00000080
	wsExLayered    = 0x00080000

	lwaColorKey = 0x1

	swpNoSize     = 0x0001
	swpNoMove     = 0x0002
	swpNoZOrder   = 0x0004
	swpNoActivate = 0x0010

	wmPaint      = 0x000F
	wmEraseBkgnd = 0x0014

	pmRemove = 0x0001

	swHide = 0
	swShow = 5

	idcArrow = 32512

	dwmwaUseImmersiveDarkMode = 20

	className = "PongElementClass"
)

var (
	gwlExStyle  = -20
	gwlUserData = -21

	hwndTopMost   = ^uintptr(0)     // HWND_TOPMOST (-1)
	hwndNoTopMost = ^uintptr(0) - 1 // HWND_NOTOPMOST (-2)

	registerOnce sync.Once
	registerErr  error
)

type wndClassEx struct {
	size       uint32
	style      uint32
	wndProc    uintptr
	clsExtra   int32
	wndExtra   int32
	instance   windows.Handle
	icon       windows.Handle
	cursor     windows.Handle
	background windows.Handle
	menuName   *uint16
	className  *uint16
	iconSm     windows.Handle
}

type rect struct {
	left, top, right, bottom int32
}

type paintStruct struct {
	hdc        windows.Handle
	erase      int32
	paint      rect
	restore    int32
	incUpdate  int32
	rgbReserve [32]byte
}

type msg struct {
	hwnd    windows.HWND
	message uint32
	wParam  uintptr
	lParam  uintptr
	time    uint32
	pt      struct{ x, y int32 }
}

// Win32 usa janelas layered com color key preto: escondida é pintada de
// preto e fica transparente, visível é branca e opaca.
type Win32 struct {
	title    string
	instance windows.Handle
	main     windows.HWND
}

func openNative(title string) (System, error) {
	var instance windows.Handle
	if err := windows.GetModuleHandleEx(0, nil, &instance); err != nil {
		return nil, fmt.Errorf("get module handle: %w", err)
	}

	registerOnce.Do(func() { registerErr = registerClass(instance) })
	if registerErr != nil {
		return nil, registerErr
	}
	return &Win32{title: title, instance: instance}, nil
}

func registerClass(instance windows.Handle) error {
	name, err := windows.UTF16PtrFromString(className)
	if err != nil {
		return err
	}
	cursor, _, _ := procLoadCursorW.Call(0, idcArrow)

	wc := wndClassEx{
		wndProc:   windows.NewCallback(wndProc),
		instance:  instance,
		cursor:    windows.Handle(cursor),
		className: name,
	}
	wc.size = uint32(unsafe.Sizeof(wc))

	if r, _, err := procRegisterClassExW.Call(uintptr(unsafe.Pointer(&wc))); r == 0 {
		return fmt.Errorf("register window class: %w", err)
	}
	return nil
}

func wndProc(hwnd windows.HWND, message uint32, wParam, lParam uintptr) uintptr {
	switch message {
	case wmPaint:
		var ps paintStruct
		hdc, _, _ := procBeginPaint.Call(uintptr(hwnd), uintptr(unsafe.Pointer(&ps)))

		// 0 = invisível (preto vira transparente), 1 = visível (branco)
		visible, _, _ := procGetWindowLongPtrW.Call(uintptr(hwnd), uintptr(gwlUserData))
		color := uintptr(0x000000)
		if visible != 0 {
			color = 0xFFFFFF
		}
		brush, _, _ := procCreateSolidBrush.Call(color)
		procFillRect.Call(hdc, uintptr(unsafe.Pointer(&ps.paint)), brush)
		procDeleteObject.Call(brush)
		procEndPaint.Call(uintptr(hwnd), uintptr(unsafe.Pointer(&ps)))
		return 0
	case wmEraseBkgnd:
		return 1
	}
	r, _, _ := procDefWindowProcW.Call(uintptr(hwnd), uintptr(message), wParam, lParam)
	return r
}

func (w *Win32) CreateAux(width, height int) Handle {
	name, _ := windows.UTF16PtrFromString(className)
	empty, _ := windows.UTF16PtrFromString("")

	hwnd, _, _ := procCreateWindowExW.Call(
		wsExToolWindow|wsExLayered,
		uintptr(unsafe.Pointer(name)),
		uintptr(unsafe.Pointer(empty)),
		wsPopup|wsVisible,
		0, 0, uintptr(width), uintptr(height),
		uintptr(w.mainWindow()),
		0, uintptr(w.instance), 0,
	)
	if hwnd == 0 {
		return 0
	}

	procSetLayeredWindowAttributes.Call(hwnd, 0, 0, lwaColorKey)
	procSetWindowLongPtrW.Call(hwnd, uintptr(gwlUserData), 0)
	return Handle(hwnd)
}

func (w *Win32) MakeRound(h Handle, width, height int) {
	if h == 0 {
		return
	}
	rgn, _, _ := procCreateEllipticRgn.Call(0, 0, uintptr(width), uintptr(height))
	procSetWindowRgn.Call(uintptr(h), rgn, 1)
}

func (w *Win32) SetBounds(h Handle, r image.Rectangle) {
	if h == 0 {
		return
	}
	procSetWindowPos.Call(uintptr(h), 0,
		uintptr(int32(r.Min.X)), uintptr(int32(r.Min.Y)), uintptr(r.Dx()), uintptr(r.Dy()),
		swpNoActivate|swpNoZOrder)
}

func (w *Win32) SetTopMost(h Handle, on bool) {
	if h == 0 {
		return
	}
	order := hwndNoTopMost
	if on {
		order = hwndTopMost
	}
	procSetWindowPos.Call(uintptr(h), order, 0, 0, 0, 0, swpNoMove|swpNoSize|swpNoActivate)
}

func (w *Win32) SetVisible(h Handle, on bool) {
	if h == 0 {
		return
	}
	hwnd := uintptr(h)

	var state uintptr
	if on {
		state = 1
	}
	procSetWindowLongPtrW.Call(hwnd, uintptr(gwlUserData), state)

	style, _, _ := procGetWindowLongPtrW.Call(hwnd, uintptr(gwlExStyle))
	if on {
		procSetWindowLongPtrW.Call(hwnd, uintptr(gwlExStyle), style&^wsExLayered)
	} else {
		procSetWindowLongPtrW.Call(hwnd, uintptr(gwlExStyle), style|wsExLayered)
		procSetLayeredWindowAttributes.Call(hwnd, 0, 0, lwaColorKey)
	}
	procInvalidateRect.Call(hwnd, 0, 1)
}

func (w *Win32) MainPosition() (image.Point, bool) {
	main := w.mainWindow()
	if main == 0 {
		return image.Point{}, false
	}
	var pt struct{ x, y int32 }
	if r, _, _ := procClientToScreen.Call(uintptr(main), uintptr(unsafe.Pointer(&pt))); r == 0 {
		return image.Point{}, false
	}
	return image.Pt(int(pt.x), int(pt.y)), true
}

func (w *Win32) FocusMain() {
	if main := w.mainWindow(); main != 0 {
		procSetForegroundWindow.Call(uintptr(main))
	}
}

// UseDarkMode liga a barra de título escura. Esconder e mostrar de novo força
// o DWM a redesenhar a moldura.
func (w *Win32) UseDarkMode(on bool) {
	main := w.mainWindow()
	if main == 0 {
		return
	}
	var value int32
	if on {
		value = 1
	}
	procDwmSetWindowAttribute.Call(uintptr(main), dwmwaUseImmersiveDarkMode,
		uintptr(unsafe.Pointer(&value)), unsafe.Sizeof(value))
	procShowWindow.Call(uintptr(main), swHide)
	procShowWindow.Call(uintptr(main), swShow)
}

func (w *Win32) Pump() {
	var m msg
	for {
		r, _, _ := procPeekMessageW.Call(uintptr(unsafe.Pointer(&m)), 0, 0, 0, pmRemove)
		if r == 0 {
			return
		}
		procTranslateMessage.Call(uintptr(unsafe.Pointer(&m)))
		procDispatchMessageW.Call(uintptr(unsafe.Pointer(&m)))
	}
}

func (w *Win32) Destroy(h Handle) {
	if h == 0 {
		return
	}
	procDestroyWindow.Call(uintptr(h))
}

func (w *Win32) Close() error {
	return nil
}

// mainWindow percorre as janelas de topo com o título do jogo e fica com a
// que pertence a este processo.
func (w *Win32) mainWindow() windows.HWND {
	if w.main != 0 {
		return w.main
	}
	title, err := windows.UTF16PtrFromString(w.title)
	if err != nil {
		return 0
	}

	self := windows.GetCurrentProcessId()
	var after uintptr
	for {
		hwnd, _, _ := procFindWindowExW.Call(0, after, 0, uintptr(unsafe.Pointer(title)))
		if hwnd == 0 {
			return 0
		}
		var pid uint32
		if _, err := windows.GetWindowThreadProcessId(windows.HWND(hwnd), &pid); err == nil && pid == self {
			w.main = windows.HWND(hwnd)
			return w.main
		}
		after = hwnd
	}
}
