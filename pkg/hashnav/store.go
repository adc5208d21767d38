package hashnav

import (
	"log/slog"
	"sync"

	"github.com/vango-dev/hashnav/pkg/history"
)

// Store is the single source of truth for the current route state: the
// ordered path segments decoded from the URL fragment and the flat
// parameter map decoded from the query string.
//
// The store attaches to the window's hashchange and popstate events at
// construction and recomputes both values on every navigation. The
// imperative mutators (PushParam, ReplaceParam) commit the URL change
// through the history API and merge the parameter into the in-memory
// map synchronously, because programmatic history mutation fires no
// event the store could observe.
type Store struct {
	window history.Window
	logger *slog.Logger

	mu       sync.RWMutex
	segments []string
	params   map[string]string
	onChange func()

	detachHash func()
	detachPop  func()
	closed     bool
}

// NewStore creates a store bound to the given window and computes the
// initial route state from its current URL. A nil window binds to the
// browser (or a detached in-memory window outside wasm).
func NewStore(window history.Window) *Store {
	if window == nil {
		window = history.Browser()
	}

	s := &Store{
		window: window,
		logger: slog.Default().With("component", "hashnav"),
		params: make(map[string]string),
	}

	s.recompute()
	s.detachHash = window.OnHashChange(s.recompute)
	s.detachPop = window.OnPopState(s.recompute)
	return s
}

// Segments returns the current path segments. The returned slice is a
// copy; the store never mutates a slice it has handed out.
func (s *Store) Segments() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	segments := make([]string, len(s.segments))
	copy(segments, s.segments)
	return segments
}

// Segment returns the segment at the given depth, or "" and false when
// the depth is past the end of the path.
func (s *Store) Segment(depth int) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if depth < 0 || depth >= len(s.segments) {
		return "", false
	}
	return s.segments[depth], true
}

// Params returns a copy of the current parameter map. Never nil.
func (s *Store) Params() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	params := make(map[string]string, len(s.params))
	for k, v := range s.params {
		params[k] = v
	}
	return params
}

// Param returns the value for key, or "" when absent.
func (s *Store) Param(key string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.params[key]
}

// PushParam sets key=value in the URL query and commits the change as
// a new history entry, so back-navigation restores the prior value.
// The in-memory map reflects the change before PushParam returns.
func (s *Store) PushParam(key, value string) {
	s.setParam(key, value, false)
}

// ReplaceParam sets key=value in the URL query, overwriting the
// current history entry instead of pushing a new one. The in-memory
// map reflects the change before ReplaceParam returns.
func (s *Store) ReplaceParam(key, value string) {
	s.setParam(key, value, true)
}

// OnChange registers fn to run after every route state change, both
// event-driven recomputes and imperative parameter merges. A host
// render loop hooks its re-render here. Passing nil clears it.
func (s *Store) OnChange(fn func()) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

// Close detaches the navigation listeners. The store keeps its last
// derived state but no longer tracks the URL. Safe to call twice.
func (s *Store) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	detachHash, detachPop := s.detachHash, s.detachPop
	s.mu.Unlock()

	if detachHash != nil {
		detachHash()
	}
	if detachPop != nil {
		detachPop()
	}
}

// recompute derives segments and params from the window's current URL.
// It is idempotent; redundant navigation events are harmless.
func (s *Store) recompute() {
	parts := parseHref(s.window.Href())
	segments := splitSegments(parts.fragPath)
	params := parseQuery(parts.effectiveQuery())

	s.mu.Lock()
	s.segments = segments
	s.params = params
	onChange := s.onChange
	s.mu.Unlock()

	if onChange != nil {
		onChange()
	}
}

// setParam commits the URL change and merges the pair into the live
// map. The merge is what makes the new value readable immediately:
// pushState and replaceState fire neither hashchange nor popstate.
func (s *Store) setParam(key, value string, replace bool) {
	href := parseHref(s.window.Href()).setParam(key, value).String()
	if replace {
		s.window.ReplaceState(href)
	} else {
		s.window.PushState(href)
	}

	s.mu.Lock()
	s.params[key] = value
	onChange := s.onChange
	s.mu.Unlock()

	if onChange != nil {
		onChange()
	}
}
