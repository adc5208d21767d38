package vdom

import "testing"

func TestCreateElement(t *testing.T) {
	node := Div(
		ID("main"),
		Class("card", "wide"),
		H1(Text("Title")),
		"plain text",
		nil,
	)

	if node.Kind != KindElement {
		t.Fatalf("Expected KindElement, got %v", node.Kind)
	}
	if node.Tag != "div" {
		t.Errorf("Expected tag 'div', got '%s'", node.Tag)
	}
	if node.Props["id"] != "main" {
		t.Errorf("Expected id 'main', got '%v'", node.Props["id"])
	}
	if node.Props["class"] != "card wide" {
		t.Errorf("Expected class 'card wide', got '%v'", node.Props["class"])
	}
	if len(node.Children) != 2 {
		t.Fatalf("Expected 2 children, got %d", len(node.Children))
	}
	if node.Children[1].Kind != KindText || node.Children[1].Text != "plain text" {
		t.Errorf("Expected trailing text child, got %+v", node.Children[1])
	}
}

func TestCreateElementAttrSlice(t *testing.T) {
	attrs := []Attr{Href("/docs"), Title("Docs"), Key("k1")}
	node := A(attrs)

	if node.Props["href"] != "/docs" {
		t.Errorf("Expected href '/docs', got '%v'", node.Props["href"])
	}
	if node.Key != "k1" {
		t.Errorf("Expected key 'k1', got '%s'", node.Key)
	}
}

func TestClassIf(t *testing.T) {
	if got := ClassIf(false, "active"); !got.IsEmpty() {
		t.Errorf("Expected empty attr, got %+v", got)
	}

	node := Span(ClassIf(true, "active"))
	if node.Props["class"] != "active" {
		t.Errorf("Expected class 'active', got '%v'", node.Props["class"])
	}

	// Empty attrs must not leave a "" prop behind.
	node = Span(ClassIf(false, "active"))
	if _, ok := node.Props[""]; ok {
		t.Error("Empty attr leaked into props")
	}
}

func TestFragmentNormalization(t *testing.T) {
	comp := Func(func() *VNode { return Text("from comp") })

	frag := Fragment(
		Text("a"),
		nil,
		[]*VNode{Text("b"), nil, Text("c")},
		"d",
		comp,
	)

	if frag.Kind != KindFragment {
		t.Fatalf("Expected KindFragment, got %v", frag.Kind)
	}
	if len(frag.Children) != 5 {
		t.Fatalf("Expected 5 children, got %d", len(frag.Children))
	}
	if frag.Children[4].Kind != KindComponent {
		t.Errorf("Expected component child, got %v", frag.Children[4].Kind)
	}
}

func TestIfWhen(t *testing.T) {
	if If(false, Text("x")) != nil {
		t.Error("If(false) should return nil")
	}
	if If(true, nil) != nil {
		t.Error("If(true, nil) should return nil")
	}

	called := false
	node := When(false, func() *VNode {
		called = true
		return Text("x")
	})
	if node != nil || called {
		t.Error("When(false) must not invoke the function")
	}
}

func TestRange(t *testing.T) {
	items := []string{"a", "b", "c"}
	nodes := Range(items, func(item string, i int) *VNode {
		if item == "b" {
			return nil
		}
		return Li(Text(item))
	})

	if len(nodes) != 2 {
		t.Fatalf("Expected 2 nodes, got %d", len(nodes))
	}
	if nodes[1].Children[0].Text != "c" {
		t.Errorf("Expected 'c', got '%s'", nodes[1].Children[0].Text)
	}
}
