//go:build windows

package main

import (
	"fmt"
	"os"
	"syscall"
	"unsafe"
)

var (
	kernel32        = syscall.NewLazyDLL("kernel32.dll")
	procCreateMutex = kernel32.NewProc("CreateMutexW")
	procShowWindow  = user32dll.NewProc("ShowWindow")
	procSetFGWindow = user32dll.NewProc("SetForegroundWindow")
)

// ensureSingleInstance checks that no other Pomotray instance is running.
// Returns a cleanup function to call on exit. If another instance holds the
// mutex, its window is brought to the front and this process exits.
func ensureSingleInstance() func() {
	mutexName, _ := syscall.UTF16PtrFromString("Local\\Pomotray_SingleInstance")

	handle, _, err := procCreateMutex.Call(0, 0, uintptr(unsafe.Pointer(mutexName)))
	if handle == 0 {
		fmt.Println("create mutex failed:", err)
		os.Exit(1)
	}

	if err == syscall.ERROR_ALREADY_EXISTS {
		fmt.Println("Pomotray is already running")
		bringExistingWindowToFront()
		os.Exit(0)
	}

	return func() {
		syscall.CloseHandle(syscall.Handle(handle))
	}
}

func bringExistingWindowToFront() {
	title, _ := syscall.UTF16PtrFromString(AppName)
	hwnd, _, _ := pFindWindowW.Call(0, uintptr(unsafe.Pointer(title)))
	if hwnd != 0 {
		const swRestore = 9
		procShowWindow.Call(hwnd, swRestore)
		procSetFGWindow.Call(hwnd)
	}
}
