package poche

import "testing"

func TestSelection(t *testing.T) {
	m := NewMesh()
	a := m.AddVertex(Pt3(0, 0, 0))
	b := m.AddVertex(Pt3(1, 0, 0))

	sel := m.Selection()
	sel.Select(KindVertex, string(a))
	sel.Select(KindVertex, string(b))
	sel.Select(KindVertex, string(b)) // re-selecting is idempotent

	if !sel.IsSelected(KindVertex, string(a)) {
		t.Error("a not selected")
	}
	if got := sel.Selected(); len(got) != 2 {
		t.Fatalf("got %d selected, want 2", len(got))
	}

	sel.Deselect(KindVertex, string(a))
	if sel.IsSelected(KindVertex, string(a)) {
		t.Error("a still selected after deselect")
	}
}

func TestHover(t *testing.T) {
	m := NewMesh()
	a := m.AddVertex(Pt3(0, 0, 0))

	sel := m.Selection()
	if _, ok := sel.Hovered(); ok {
		t.Error("fresh selection has a hover")
	}
	sel.Hover(KindVertex, string(a))
	ref, ok := sel.Hovered()
	if !ok || ref.ID != string(a) || ref.Kind != KindVertex {
		t.Fatalf("hover state: %+v (%v)", ref, ok)
	}

	// Deleting the hovered entity clears the hover.
	m.DeleteVertex(a)
	if _, ok := sel.Hovered(); ok {
		t.Error("hover survived the entity's deletion")
	}
}

func TestSelectionClear(t *testing.T) {
	m := NewMesh()
	a := m.AddVertex(Pt3(0, 0, 0))
	sel := m.Selection()
	sel.Select(KindVertex, string(a))
	sel.Hover(KindVertex, string(a))

	sel.Clear()
	if len(sel.Selected()) != 0 {
		t.Error("selection not empty after clear")
	}
	if _, ok := sel.Hovered(); ok {
		t.Error("hover not cleared")
	}
}

func TestSelectionOrdering(t *testing.T) {
	sel := newSelection()
	sel.Select(KindFace, "zzz")
	sel.Select(KindEdge, "mmm")
	sel.Select(KindEdge, "aaa")

	got := sel.Selected()
	want := []MemberRef{
		{Kind: KindEdge, ID: "aaa"},
		{Kind: KindEdge, ID: "mmm"},
		{Kind: KindFace, ID: "zzz"},
	}
	diff(t, want, got)
}
