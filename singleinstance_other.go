//go:build !windows

package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"syscall"
)

// ensureSingleInstance checks that no other Pomotray instance is running.
// Returns a cleanup function to call on exit, or exits the process if another instance is found.
// A lock file left behind by a crashed or force-quit process is taken over.
func ensureSingleInstance() func() {
	lockPath := DataPath("pomotray.lock")

	if data, err := os.ReadFile(lockPath); err == nil {
		if pid, err := strconv.Atoi(strings.TrimSpace(string(data))); err == nil && pid != os.Getpid() {
			if process, err := os.FindProcess(pid); err == nil {
				// On Unix, FindProcess always succeeds; check if process is alive
				if err := process.Signal(syscall.Signal(0)); err == nil {
					fmt.Println("Pomotray is already running")
					os.Exit(0)
				}
			}
		}
	}

	if err := os.WriteFile(lockPath, []byte(strconv.Itoa(os.Getpid())), 0644); err != nil {
		Log.Warn("write lock file failed", "path", lockPath, "error", err)
	}

	return func() {
		os.Remove(lockPath)
	}
}
