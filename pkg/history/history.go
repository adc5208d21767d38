// Package history abstracts the browser location and history primitives
// hashnav depends on.
//
// The Window interface covers exactly what the route store needs: read
// the current href, commit a new href by pushing or replacing a history
// entry, and observe the two navigation event classes (fragment changes
// and history traversal). The js/wasm build provides a Window backed by
// the real browser; Memory provides an in-process Window with a real
// entry stack for tests and server-side use.
package history

// Window is the browser surface hashnav navigates against.
//
// Implementations must guarantee that PushState and ReplaceState do not
// fire either event class; the browser's pushState/replaceState have
// the same silence, and the route store compensates for it.
type Window interface {
	// Href returns the full current URL.
	Href() string

	// PushState commits href as a new history entry.
	PushState(href string)

	// ReplaceState overwrites the current history entry with href.
	ReplaceState(href string)

	// OnHashChange registers fn for fragment-change events. The
	// returned detach function removes exactly this registration and
	// is safe to call more than once.
	OnHashChange(fn func()) (detach func())

	// OnPopState registers fn for history-traversal (back/forward)
	// events, with the same detach contract as OnHashChange.
	OnPopState(fn func()) (detach func())
}
