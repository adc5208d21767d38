package history

import "testing"

func TestMemoryPushTruncatesForward(t *testing.T) {
	m := NewMemory("http://app.test/#/a")
	m.PushState("http://app.test/#/b")
	m.PushState("http://app.test/#/c")

	m.Back()
	if m.Href() != "http://app.test/#/b" {
		t.Fatalf("Expected '#/b' after back, got %s", m.Href())
	}

	// Pushing from the middle drops the forward entry.
	m.PushState("http://app.test/#/d")
	if m.Length() != 3 {
		t.Errorf("Expected 3 entries after mid-stack push, got %d", m.Length())
	}
	m.Forward() // no-op at newest entry
	if m.Href() != "http://app.test/#/d" {
		t.Errorf("Expected '#/d', got %s", m.Href())
	}
}

func TestMemoryReplaceKeepsLength(t *testing.T) {
	m := NewMemory("http://app.test/#/a")
	m.ReplaceState("http://app.test/#/b")

	if m.Length() != 1 {
		t.Errorf("Expected 1 entry after replace, got %d", m.Length())
	}
	if m.Href() != "http://app.test/#/b" {
		t.Errorf("Expected '#/b', got %s", m.Href())
	}

	m.Back() // no-op at oldest entry
	if m.Href() != "http://app.test/#/b" {
		t.Errorf("Back at oldest entry moved the cursor: %s", m.Href())
	}
}

func TestMemoryListenersFire(t *testing.T) {
	m := NewMemory("http://app.test/#/a")

	hashFired := 0
	popFired := 0
	detachHash := m.OnHashChange(func() { hashFired++ })
	detachPop := m.OnPopState(func() { popFired++ })

	// Programmatic mutation is silent.
	m.PushState("http://app.test/#/b")
	if hashFired != 0 || popFired != 0 {
		t.Fatalf("PushState fired listeners: hash=%d pop=%d", hashFired, popFired)
	}

	m.Navigate("http://app.test/#/c")
	if hashFired != 1 {
		t.Errorf("Expected 1 hashchange, got %d", hashFired)
	}

	m.Back()
	m.Forward()
	if popFired != 2 {
		t.Errorf("Expected 2 popstate events, got %d", popFired)
	}

	detachHash()
	detachPop()
	m.Navigate("http://app.test/#/d")
	m.Back()
	if hashFired != 1 || popFired != 2 {
		t.Errorf("Detached listeners still fired: hash=%d pop=%d", hashFired, popFired)
	}
	if m.ListenerCount() != 0 {
		t.Errorf("Expected 0 listeners, got %d", m.ListenerCount())
	}
}

func TestMemoryDetachIsIdempotent(t *testing.T) {
	m := NewMemory("http://app.test/")

	detach := m.OnPopState(func() {})
	other := m.OnPopState(func() {})

	detach()
	detach()

	if m.ListenerCount() != 1 {
		t.Errorf("Double detach removed the wrong listener, count=%d", m.ListenerCount())
	}
	other()
}
