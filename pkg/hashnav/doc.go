// Package hashnav derives client-side routing state from the URL
// fragment and query string and renders route-gated subtrees.
//
// # Store
//
// Store owns two derived values: the segment sequence ("#/users/42"
// yields ["users", "42"]) and the parameter map decoded from the query
// string. Both are recomputed on every hashchange and popstate event
// for the store's lifetime:
//
//	store := hashnav.NewStore(history.Browser())
//	defer store.Close()
//
//	store.Segments() // ["users", "42"]
//	store.Param("tab")
//
// PushParam and ReplaceParam update the query string through the
// history API (push creates a back-navigation stop, replace does not)
// and both are readable from the store immediately, without waiting
// for any browser event.
//
// # Route
//
// Route gates a subtree on one path segment. Routes nest: each route
// hands its immediate route children depth+1, so a tree of routes
// mirrors the path "#/a/b/c" segment by segment. See Route.
//
// # Links
//
// Link, ActiveLink, and NavLink build anchor nodes with hash hrefs, so
// plain anchors drive navigation and the browser fires hashchange.
package hashnav
