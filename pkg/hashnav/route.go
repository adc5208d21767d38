package hashnav

import (
	"log/slog"

	"github.com/vango-dev/hashnav/pkg/vdom"
)

// Route is a declarative matcher gating a subtree on one segment of
// the current path. A route at depth 0 matches the first segment, and
// every *Route found among its immediate children is re-rendered at
// depth+1, so structural nesting maps directly onto path nesting:
//
//	users := &hashnav.Route{Store: store, Path: "users",
//	    Element:  vdom.Section(vdom.Class("users")),
//	    Children: []*vdom.VNode{
//	        vdom.Comp(&hashnav.Route{Path: "42",
//	            Children: []*vdom.VNode{vdom.Text("profile")},
//	        }),
//	    },
//	}
//
// renders the profile text only for "#/users/42". Application code
// never sets Depth on nested routes; the parent injects it.
//
// A Route holds no state of its own. Each Render is a pure function of
// the configuration and the store's current segments.
type Route struct {
	// Store supplies the segment sequence. Nested routes inherit the
	// parent's store when theirs is nil.
	Store *Store

	// Path is the segment this route matches, compared for exact
	// string equality. Required; a route without a path renders
	// nothing and logs a warning.
	Path string

	// Depth is the zero-based segment position this route gates on.
	// Leave it at 0; parents assign it to nested routes.
	Depth int

	// Element, when set, wraps the children. Rendered alone when
	// there are no children.
	Element *vdom.VNode

	// Children are rendered when the route matches. Rendered as a
	// fragment when Element is nil.
	Children []*vdom.VNode
}

// Render implements vdom.Component.
func (r *Route) Render() *vdom.VNode {
	if r.Path == "" {
		routeLogger().Warn("route has no path, rendering nothing", "depth", r.Depth)
		return nil
	}
	if r.Store == nil {
		routeLogger().Warn("route has no store, rendering nothing", "path", r.Path)
		return nil
	}

	segment, ok := r.Store.Segment(r.Depth)
	if !ok || segment != r.Path {
		return nil
	}

	children := r.adoptChildren()
	switch {
	case r.Element != nil && len(children) > 0:
		return vdom.WithChildren(r.Element, children)
	case r.Element != nil:
		return vdom.Clone(r.Element)
	case len(children) > 0:
		return vdom.Fragment(children)
	default:
		return nil
	}
}

// adoptChildren prepares the child list for rendering: immediate route
// children get a copy with this route's depth+1 and, when they carry
// none, this route's store. Everything else passes through untouched.
func (r *Route) adoptChildren() []*vdom.VNode {
	if len(r.Children) == 0 {
		return nil
	}

	out := make([]*vdom.VNode, 0, len(r.Children))
	for _, child := range r.Children {
		if child == nil {
			continue
		}
		out = append(out, r.adopt(child))
	}
	return out
}

func (r *Route) adopt(n *vdom.VNode) *vdom.VNode {
	if n.Kind != vdom.KindComponent {
		return n
	}
	nested, ok := n.Comp.(*Route)
	if !ok {
		return n
	}

	adopted := *nested
	adopted.Depth = r.Depth + 1
	if adopted.Store == nil {
		adopted.Store = r.Store
	}
	return vdom.Comp(&adopted)
}

func routeLogger() *slog.Logger {
	return slog.Default().With("component", "hashnav")
}
