// Package vdom provides the virtual node tree hashnav components render
// into.
//
// VNode is the fundamental building block representing elements, text,
// fragments, and components. Props holds attributes; Attr values are
// used to build Props.
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Div(Class("card"), ID("main"),
//	    H1(Text("Title")),
//	    P(Text("Content")),
//	)
//
// # Composition
//
// Fragment groups children without introducing a wrapper element. Clone,
// WithChildren, and WithProp are the injection primitives: they produce
// copies safe to modify when a configured node is shared across renders,
// which is how hashnav threads route depth through nested matchers.
//
// This package deliberately stops at tree construction. Diffing,
// patching, and DOM binding belong to the host renderer.
package vdom
