package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"
)

// CrashHook restores the presentation layer (terminal raw mode, window) before the crash report is printed
type CrashHook func()

var (
	crashMu   sync.Mutex
	crashHook CrashHook

	// Replaced in tests
	crashOut  io.Writer = os.Stderr
	crashExit           = os.Exit
)

// SetCrashHook registers the cleanup run by HandleCrash, nil clears it
func SetCrashHook(hook CrashHook) {
	crashMu.Lock()
	defer crashMu.Unlock()
	crashHook = hook
}

// HandleCrash is the unified panic handler that restores the display and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	hook := crashHook
	crashMu.Unlock()

	if hook != nil {
		hook()
	}

	// \r\n keeps the report readable if the terminal is still in raw mode
	fmt.Fprintf(crashOut, "\r\n\x1b[31mROBOT-SOCCER CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(crashOut, "Stack Trace:\r\n%s\r\n", debug.Stack())

	crashExit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure display cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
