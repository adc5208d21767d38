package vdom

import "testing"

func TestCloneIsolatesPropsAndChildren(t *testing.T) {
	orig := Div(Class("panel"), Text("hello"))
	c := Clone(orig)

	c.Props["class"] = "changed"
	c.Children[0] = Text("replaced")

	if orig.Props["class"] != "panel" {
		t.Errorf("Clone mutated original props: %v", orig.Props["class"])
	}
	if orig.Children[0].Text != "hello" {
		t.Errorf("Clone mutated original child list: %s", orig.Children[0].Text)
	}
}

func TestCloneNil(t *testing.T) {
	if Clone(nil) != nil {
		t.Error("Clone(nil) should be nil")
	}
	if WithChildren(nil, nil) != nil {
		t.Error("WithChildren(nil) should be nil")
	}
}

func TestWithChildren(t *testing.T) {
	wrapper := Div(Class("layout"), Text("placeholder"))
	content := []*VNode{Text("a"), Text("b")}

	injected := WithChildren(wrapper, content)

	if len(injected.Children) != 2 {
		t.Fatalf("Expected 2 children, got %d", len(injected.Children))
	}
	if len(wrapper.Children) != 1 {
		t.Errorf("Original wrapper was mutated, has %d children", len(wrapper.Children))
	}
	if injected.Props["class"] != "layout" {
		t.Errorf("Props lost on injection: %v", injected.Props)
	}
}

func TestWithProp(t *testing.T) {
	n := Span()
	p := WithProp(n, "data-active", "true")

	if p.Props["data-active"] != "true" {
		t.Errorf("Expected prop set, got %v", p.Props)
	}
	if _, ok := n.Props["data-active"]; ok {
		t.Error("WithProp mutated the original node")
	}
}
