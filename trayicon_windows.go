//go:build windows

package main

import (
	_ "embed"
	"sync/atomic"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

//go:embed build/windows/icon.ico
var trayIconICO []byte

// trayIcon returns the ICO-format icon bytes for Windows systray.
func trayIcon() []byte {
	return trayIconICO
}

var (
	user32dll          = windows.NewLazySystemDLL("User32.dll")
	pFindWindowW       = user32dll.NewProc("FindWindowW")
	pGetCursorPos      = user32dll.NewProc("GetCursorPos")
	pGetSystemMetrics  = user32dll.NewProc("GetSystemMetrics")
	pCallWindowProcW   = user32dll.NewProc("CallWindowProcW")
	pSetWindowLongPtrW = user32dll.NewProc("SetWindowLongPtrW") // 64-bit
	pSetWindowLongW    = user32dll.NewProc("SetWindowLongW")    // 32-bit fallback
)

const (
	wmUser          = 0x0400
	wmSystrayMsg    = wmUser + 1 // must match systray-on-wails initInstance (WM_USER+1)
	wmLButtonUp     = 0x0202
	wmLButtonDblClk = 0x0203
	wmRButtonUp     = 0x0205

	smCxSmIcon = 49
	smCySmIcon = 50
)

// Set from the systray onReady goroutine, read on the window thread.
var (
	origWndProc atomic.Uintptr
	postTray    atomic.Pointer[func(TrayEvent)]
)

// traySubclassProc is the replacement window procedure for the systray hidden window.
// It reports icon clicks to the router and then forwards every message to the
// original handler, so the context menu keeps working.
func traySubclassProc(hWnd uintptr, msg uint32, wParam, lParam uintptr) uintptr {
	if msg == wmSystrayMsg {
		reportTrayClick(lParam)
	}
	ret, _, _ := pCallWindowProcW.Call(origWndProc.Load(), hWnd, uintptr(msg), wParam, lParam)
	return ret
}

// reportTrayClick posts the click described by a tray notification's lParam.
func reportTrayClick(lParam uintptr) {
	post := postTray.Load()
	if post == nil {
		return
	}
	switch lParam {
	case wmLButtonUp:
		(*post)(trayClick(LeftClick))
	case wmRButtonUp:
		(*post)(trayClick(RightClick))
	case wmLButtonDblClk:
		(*post)(trayClick(DoubleClick))
	}
}

func trayClick(kind EventKind) TrayEvent {
	var pt struct{ X, Y int32 }
	pGetCursorPos.Call(uintptr(unsafe.Pointer(&pt)))
	w, _, _ := pGetSystemMetrics.Call(smCxSmIcon)
	h, _, _ := pGetSystemMetrics.Call(smCySmIcon)
	return TrayEvent{
		Kind:     kind,
		Position: Point{X: int(pt.X), Y: int(pt.Y)},
		Size:     Size{Width: int(w), Height: int(h)},
	}
}

// subclassSystray finds the systray hidden window (class "SystrayClass" created by
// the systray-on-wails library) and replaces its wndProc to intercept click events.
// Must be called from the systray onReady callback (after the window exists).
func subclassSystray(post func(TrayEvent)) {
	postTray.Store(&post)

	className, _ := windows.UTF16PtrFromString("SystrayClass")
	hwnd, _, _ := pFindWindowW.Call(uintptr(unsafe.Pointer(className)), 0)
	if hwnd == 0 {
		Log.Warn("systray window not found, icon clicks will not be reported")
		return
	}

	cb := syscall.NewCallback(traySubclassProc)
	// GWLP_WNDPROC = -4, represented as ^uintptr(3) for unsigned conversion
	origWndProc.Store(callSetWindowLongPtr(hwnd, ^uintptr(3), cb))
}

// callSetWindowLongPtr calls SetWindowLongPtrW (64-bit) or SetWindowLongW (32-bit).
// SetWindowLongPtrW does not exist in 32-bit user32.dll.
func callSetWindowLongPtr(hwnd, index, newLong uintptr) uintptr {
	if pSetWindowLongPtrW.Find() == nil {
		ret, _, _ := pSetWindowLongPtrW.Call(hwnd, index, newLong)
		return ret
	}
	ret, _, _ := pSetWindowLongW.Call(hwnd, index, newLong)
	return ret
}
