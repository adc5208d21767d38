package vdom

// Resolve expands component nodes by rendering them, yielding a tree of
// elements, text, and fragments only. Components rendering nil (and
// component nodes without a component) dissolve to nothing. The input
// tree is not modified.
func Resolve(n *VNode) *VNode {
	if n == nil {
		return nil
	}

	if n.Kind == KindComponent {
		if n.Comp == nil {
			return nil
		}
		return Resolve(n.Comp.Render())
	}

	if len(n.Children) == 0 {
		return n
	}

	c := Clone(n)
	resolved := make([]*VNode, 0, len(c.Children))
	for _, child := range c.Children {
		if r := Resolve(child); r != nil {
			resolved = append(resolved, r)
		}
	}
	c.Children = resolved
	return c
}
