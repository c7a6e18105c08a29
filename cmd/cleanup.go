package cmd

import (
	"sync"
	"time"
)

// cleanupTimeout bounds how long Cleanup waits for a single cleanup function.
const cleanupTimeout = 2 * time.Second

var (
	cleanupMu    sync.Mutex
	cleanupFuncs []func()
)

// RegisterCleanup adds f to the functions run by Cleanup.
func RegisterCleanup(f func()) {
	cleanupMu.Lock()
	defer cleanupMu.Unlock()
	cleanupFuncs = append(cleanupFuncs, f)
}

// Cleanup runs the registered cleanup functions, newest first, and forgets
// them. It is called on normal exit and from the signal handler.
func Cleanup() {
	cleanupMu.Lock()
	funcs := cleanupFuncs
	cleanupFuncs = nil
	cleanupMu.Unlock()

	for i := len(funcs) - 1; i >= 0; i-- {
		funcs[i]()
	}
	closeLogger()
}
