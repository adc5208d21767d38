package history

import "sync"

// Memory is an in-process Window with a real history entry stack.
//
// Push/replace semantics mirror the browser: PushState truncates any
// forward entries and appends, ReplaceState overwrites in place, and
// neither fires a listener. Back and Forward move the cursor and fire
// the popstate listeners; Navigate simulates a user-driven fragment
// change and fires the hashchange listeners.
type Memory struct {
	mu      sync.Mutex
	entries []string
	index   int

	nextID int
	hash   map[int]func()
	pop    map[int]func()
}

// NewMemory creates a memory window positioned at href.
func NewMemory(href string) *Memory {
	return &Memory{
		entries: []string{href},
		hash:    make(map[int]func()),
		pop:     make(map[int]func()),
	}
}

// Href returns the entry under the cursor.
func (m *Memory) Href() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.entries[m.index]
}

// PushState appends a new entry, dropping any forward history.
func (m *Memory) PushState(href string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries[:m.index+1], href)
	m.index++
}

// ReplaceState overwrites the current entry in place.
func (m *Memory) ReplaceState(href string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[m.index] = href
}

// Navigate pushes a new entry the way a user-driven hash navigation
// would, then fires the hashchange listeners.
func (m *Memory) Navigate(href string) {
	m.mu.Lock()
	m.entries = append(m.entries[:m.index+1], href)
	m.index++
	fns := m.snapshot(m.hash)
	m.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Back moves the cursor one entry back and fires the popstate
// listeners. At the oldest entry it is a no-op, like the browser.
func (m *Memory) Back() {
	m.mu.Lock()
	if m.index == 0 {
		m.mu.Unlock()
		return
	}
	m.index--
	fns := m.snapshot(m.pop)
	m.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Forward moves the cursor one entry forward and fires the popstate
// listeners. At the newest entry it is a no-op.
func (m *Memory) Forward() {
	m.mu.Lock()
	if m.index >= len(m.entries)-1 {
		m.mu.Unlock()
		return
	}
	m.index++
	fns := m.snapshot(m.pop)
	m.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Length returns the number of history entries.
func (m *Memory) Length() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// OnHashChange implements Window.
func (m *Memory) OnHashChange(fn func()) func() {
	return m.register(m.hash, fn)
}

// OnPopState implements Window.
func (m *Memory) OnPopState(fn func()) func() {
	return m.register(m.pop, fn)
}

// ListenerCount reports the total registered listeners across both
// event classes. Tests use it to verify balanced attach/detach.
func (m *Memory) ListenerCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.hash) + len(m.pop)
}

func (m *Memory) register(class map[int]func(), fn func()) func() {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	class[id] = fn
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(class, id)
		m.mu.Unlock()
	}
}

// snapshot copies a listener set so callbacks run without the lock.
func (m *Memory) snapshot(class map[int]func()) []func() {
	fns := make([]func(), 0, len(class))
	for _, fn := range class {
		fns = append(fns, fn)
	}
	return fns
}
