//go:build darwin

package cmd

import "golang.design/x/hotkey/mainthread"

// runEventLoop pins the calling goroutine's duties to a worker while the
// main OS thread services the Carbon event loop. Hotkey registration on
// macOS fails without it.
func runEventLoop(fn func()) {
	mainthread.Init(fn)
}
