//go:build js && wasm

package history

import "syscall/js"

// browserWindow is the Window backed by the real browser via syscall/js.
type browserWindow struct{}

// Browser returns the Window for the current browser tab.
func Browser() Window {
	return browserWindow{}
}

func (browserWindow) Href() string {
	return js.Global().Get("location").Get("href").String()
}

func (browserWindow) PushState(href string) {
	js.Global().Get("history").Call("pushState", js.Null(), "", href)
}

func (browserWindow) ReplaceState(href string) {
	js.Global().Get("history").Call("replaceState", js.Null(), "", href)
}

func (browserWindow) OnHashChange(fn func()) func() {
	return addListener("hashchange", fn)
}

func (browserWindow) OnPopState(fn func()) func() {
	return addListener("popstate", fn)
}

// addListener attaches fn for the named window event. The js.Func is
// retained so removeEventListener sees the identical callback value,
// and released once detached.
func addListener(event string, fn func()) func() {
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		fn()
		return nil
	})
	js.Global().Call("addEventListener", event, cb)

	detached := false
	return func() {
		if detached {
			return
		}
		detached = true
		js.Global().Call("removeEventListener", event, cb)
		cb.Release()
	}
}
