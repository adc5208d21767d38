package vdom

// Clone returns a shallow copy of the node with its own Props map and
// Children slice. The children themselves are shared, so mutating a
// grandchild through the clone is visible through the original. Use
// Clone before injecting props or children into a node that may be
// shared across renders.
func Clone(n *VNode) *VNode {
	if n == nil {
		return nil
	}

	c := *n

	if n.Props != nil {
		c.Props = make(Props, len(n.Props))
		for k, v := range n.Props {
			c.Props[k] = v
		}
	}

	if n.Children != nil {
		c.Children = make([]*VNode, len(n.Children))
		copy(c.Children, n.Children)
	}

	return &c
}

// WithChildren returns a clone of the node whose child list is replaced
// by the given children. For fragments and elements this is the content
// injection primitive; other kinds are returned cloned but unchanged.
func WithChildren(n *VNode, children []*VNode) *VNode {
	if n == nil {
		return nil
	}

	c := Clone(n)
	if c.Kind == KindElement || c.Kind == KindFragment {
		c.Children = children
	}
	return c
}

// WithProp returns a clone of the node with a single prop set.
func WithProp(n *VNode, key string, value any) *VNode {
	if n == nil {
		return nil
	}

	c := Clone(n)
	if c.Props == nil {
		c.Props = make(Props, 1)
	}
	c.Props[key] = value
	return c
}
