package hashnav

import (
	"reflect"
	"testing"

	"github.com/vango-dev/hashnav/pkg/history"
)

func newTestStore(t *testing.T, href string) (*Store, *history.Memory) {
	t.Helper()
	window := history.NewMemory(href)
	store := NewStore(window)
	t.Cleanup(store.Close)
	return store, window
}

func TestStoreInitialState(t *testing.T) {
	store, _ := newTestStore(t, "http://app.test/page#/a/b/c")

	if got := store.Segments(); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("Segments = %v, want [a b c]", got)
	}
	if got := store.Params(); len(got) != 0 {
		t.Errorf("Params should be empty, got %v", got)
	}
}

func TestStoreEmptyFragment(t *testing.T) {
	for _, href := range []string{
		"http://app.test/page",
		"http://app.test/page#",
		"http://app.test/page#/",
	} {
		store, _ := newTestStore(t, href)
		if got := store.Segments(); len(got) != 0 {
			t.Errorf("Segments for %q = %v, want empty", href, got)
		}
		if store.Params() == nil {
			t.Errorf("Params must never be nil")
		}
	}
}

func TestStoreScenario(t *testing.T) {
	// The canonical scenario: path and params both inside the hash.
	store, _ := newTestStore(t, "http://app.test/page#/users/42?tab=profile")

	if got := store.Segments(); !reflect.DeepEqual(got, []string{"users", "42"}) {
		t.Errorf("Segments = %v, want [users 42]", got)
	}
	if got := store.Params(); !reflect.DeepEqual(got, map[string]string{"tab": "profile"}) {
		t.Errorf("Params = %v, want map[tab:profile]", got)
	}
}

func TestStoreQueryBeforeFragment(t *testing.T) {
	store, _ := newTestStore(t, "http://app.test/page?x=1&y=2#/a")

	want := map[string]string{"x": "1", "y": "2"}
	if got := store.Params(); !reflect.DeepEqual(got, want) {
		t.Errorf("Params = %v, want %v", got, want)
	}
}

func TestStoreTracksNavigation(t *testing.T) {
	store, window := newTestStore(t, "http://app.test/#/home")

	window.Navigate("http://app.test/#/users/7?tab=posts")

	if got := store.Segments(); !reflect.DeepEqual(got, []string{"users", "7"}) {
		t.Errorf("Segments = %v, want [users 7]", got)
	}
	if got := store.Param("tab"); got != "posts" {
		t.Errorf("Param(tab) = %q, want posts", got)
	}
}

func TestStoreRecomputeIdempotent(t *testing.T) {
	store, window := newTestStore(t, "http://app.test/#/a/b?x=1")

	seg1, par1 := store.Segments(), store.Params()
	// A redundant event with no URL change must not alter the state.
	window.Navigate(window.Href())
	seg2, par2 := store.Segments(), store.Params()

	if !reflect.DeepEqual(seg1, seg2) || !reflect.DeepEqual(par1, par2) {
		t.Errorf("Idempotence violated: %v/%v then %v/%v", seg1, par1, seg2, par2)
	}
}

func TestPushParamImmediateRead(t *testing.T) {
	store, window := newTestStore(t, "http://app.test/#/search")

	store.PushParam("q", "golang")

	// Readable without any event having fired.
	if got := store.Param("q"); got != "golang" {
		t.Errorf("Param(q) = %q, want golang", got)
	}
	if got := parseQuery(parseHref(window.Href()).effectiveQuery()); got["q"] != "golang" {
		t.Errorf("URL not updated: %s", window.Href())
	}
}

func TestPushParamHistorySemantics(t *testing.T) {
	store, window := newTestStore(t, "http://app.test/#/search?q=old")

	store.PushParam("q", "new")
	if window.Length() != 2 {
		t.Fatalf("Expected 2 history entries after push, got %d", window.Length())
	}

	// Back-navigation restores the prior value via popstate recompute.
	window.Back()
	if got := store.Param("q"); got != "old" {
		t.Errorf("Param(q) after back = %q, want old", got)
	}
}

func TestReplaceParamHistorySemantics(t *testing.T) {
	store, window := newTestStore(t, "http://app.test/#/search?q=old")

	store.ReplaceParam("q", "new")
	if window.Length() != 1 {
		t.Fatalf("Expected 1 history entry after replace, got %d", window.Length())
	}
	if got := store.Param("q"); got != "new" {
		t.Errorf("Param(q) = %q, want new", got)
	}

	// Nothing to go back to; the old value is gone.
	window.Back()
	if got := store.Param("q"); got != "new" {
		t.Errorf("Replace left a back stop: %q", got)
	}
}

func TestParamOverwrite(t *testing.T) {
	store, _ := newTestStore(t, "http://app.test/#/x?a=1")

	store.PushParam("a", "2")
	store.PushParam("b", "3")

	want := map[string]string{"a": "2", "b": "3"}
	if got := store.Params(); !reflect.DeepEqual(got, want) {
		t.Errorf("Params = %v, want %v", got, want)
	}
}

func TestStoreOnChange(t *testing.T) {
	store, window := newTestStore(t, "http://app.test/#/a")

	changes := 0
	store.OnChange(func() { changes++ })

	window.Navigate("http://app.test/#/b") // event-driven recompute
	store.PushParam("x", "1")              // imperative merge
	store.ReplaceParam("x", "2")

	if changes != 3 {
		t.Errorf("Expected 3 change notifications, got %d", changes)
	}
}

func TestStoreCloseDetaches(t *testing.T) {
	window := history.NewMemory("http://app.test/#/a")
	store := NewStore(window)

	if window.ListenerCount() != 2 {
		t.Fatalf("Expected 2 listeners attached, got %d", window.ListenerCount())
	}

	store.Close()
	store.Close() // idempotent

	if window.ListenerCount() != 0 {
		t.Errorf("Expected 0 listeners after close, got %d", window.ListenerCount())
	}

	// A closed store keeps its last state but stops tracking.
	window.Navigate("http://app.test/#/b")
	if got := store.Segments(); !reflect.DeepEqual(got, []string{"a"}) {
		t.Errorf("Closed store recomputed: %v", got)
	}
}

func TestStoreMountUnmountBalance(t *testing.T) {
	window := history.NewMemory("http://app.test/#/a")

	// Repeated mount/unmount cycles must not leak listeners.
	for i := 0; i < 5; i++ {
		store := NewStore(window)
		store.Close()
	}
	if window.ListenerCount() != 0 {
		t.Errorf("Leaked %d listeners across mount/unmount cycles", window.ListenerCount())
	}
}

func TestStoreSegmentOutOfRange(t *testing.T) {
	store, _ := newTestStore(t, "http://app.test/#/a")

	if _, ok := store.Segment(1); ok {
		t.Error("Segment(1) past the end should report !ok")
	}
	if _, ok := store.Segment(-1); ok {
		t.Error("Segment(-1) should report !ok")
	}
	if seg, ok := store.Segment(0); !ok || seg != "a" {
		t.Errorf("Segment(0) = %q,%v, want a,true", seg, ok)
	}
}

func TestStoreSegmentsCopy(t *testing.T) {
	store, _ := newTestStore(t, "http://app.test/#/a/b")

	segments := store.Segments()
	segments[0] = "mutated"
	if got := store.Segments(); got[0] != "a" {
		t.Errorf("Caller mutation leaked into store: %v", got)
	}

	params := store.Params()
	params["k"] = "v"
	if got := store.Params(); len(got) != 0 {
		t.Errorf("Caller mutation leaked into params: %v", got)
	}
}
