//go:build !darwin

package cmd

// runEventLoop needs no OS event loop outside macOS
func runEventLoop(fn func()) {
	fn()
}
