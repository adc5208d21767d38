package hashnav

import (
	"strings"

	"github.com/vango-dev/hashnav/pkg/vdom"
)

// Link creates an anchor navigating to the given hash path. The path
// is the fragment without the leading '#', e.g. "/users/42".
func Link(path string, children ...any) *vdom.VNode {
	args := make([]any, 0, len(children)+1)
	args = append(args, vdom.Href(hashHref(path)))
	args = append(args, children...)
	return vdom.A(args...)
}

// ActiveLink creates a link that carries activeClass while the store's
// current path matches the target. With exactMatch the whole path must
// match; otherwise a segment-prefix match is enough, so "/users" stays
// active on "#/users/42".
func ActiveLink(store *Store, path, activeClass string, exactMatch bool, children ...any) *vdom.VNode {
	active := false
	if store != nil {
		active = pathMatches(store.Segments(), path, exactMatch)
	}

	args := make([]any, 0, len(children)+2)
	args = append(args, vdom.Href(hashHref(path)))
	args = append(args, vdom.ClassIf(active, activeClass))
	args = append(args, children...)
	return vdom.A(args...)
}

// NavLink is ActiveLink with the common defaults: class "active" on an
// exact match.
func NavLink(store *Store, path string, children ...any) *vdom.VNode {
	return ActiveLink(store, path, "active", true, children...)
}

func hashHref(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return "#" + path
}

// pathMatches compares a target path against the current segments,
// exactly or as a prefix. Any query suffix on the path is ignored.
func pathMatches(segments []string, path string, exact bool) bool {
	if i := strings.Index(path, "?"); i >= 0 {
		path = path[:i]
	}
	target := splitSegments(path)
	if exact && len(target) != len(segments) {
		return false
	}
	if len(target) > len(segments) {
		return false
	}
	for i, seg := range target {
		if segments[i] != seg {
			return false
		}
	}
	return true
}
