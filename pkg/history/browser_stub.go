//go:build !js || !wasm

package history

// Stub for non-WASM builds so code referencing Browser compiles in
// tests and tooling. The real implementation is in browser_js.go.

// Browser returns a detached Memory window outside the browser.
func Browser() Window {
	return NewMemory("http://localhost/")
}
