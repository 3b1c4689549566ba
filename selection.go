package poche

import "sort"

// Kind tags which collection a mesh entity belongs to.
type Kind string

const (
	KindVertex Kind = "vertex"
	KindEdge   Kind = "edge"
	KindFace   Kind = "face"
	KindGroup  Kind = "group"
)

// Selection is the interactive selection and hover state, kept separate
// from the geometry itself and keyed by (kind, id). The rendering layer
// reads it to highlight entities; the mesh drops entries whose entity is
// deleted.
type Selection struct {
	selected map[MemberRef]struct{}
	hovered  MemberRef
	hasHover bool
}

func newSelection() Selection {
	return Selection{selected: make(map[MemberRef]struct{})}
}

// Select adds an entity to the selection.
func (s *Selection) Select(kind Kind, id string) {
	s.selected[MemberRef{Kind: kind, ID: id}] = struct{}{}
}

// Deselect removes an entity from the selection, if present.
func (s *Selection) Deselect(kind Kind, id string) {
	delete(s.selected, MemberRef{Kind: kind, ID: id})
}

// IsSelected reports whether the entity is selected.
func (s *Selection) IsSelected(kind Kind, id string) bool {
	_, ok := s.selected[MemberRef{Kind: kind, ID: id}]
	return ok
}

// Selected returns the selected entities, ordered by kind then id.
func (s *Selection) Selected() []MemberRef {
	out := make([]MemberRef, 0, len(s.selected))
	for ref := range s.selected {
		out = append(out, ref)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Kind != out[j].Kind {
			return out[i].Kind < out[j].Kind
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// Hover sets the hovered entity, replacing any previous one.
func (s *Selection) Hover(kind Kind, id string) {
	s.hovered = MemberRef{Kind: kind, ID: id}
	s.hasHover = true
}

// Unhover clears the hover state.
func (s *Selection) Unhover() {
	s.hovered = MemberRef{}
	s.hasHover = false
}

// Hovered returns the hovered entity, if any.
func (s *Selection) Hovered() (MemberRef, bool) {
	return s.hovered, s.hasHover
}

// Clear empties both selection and hover state.
func (s *Selection) Clear() {
	clear(s.selected)
	s.Unhover()
}

// drop removes all state referring to a deleted entity.
func (s *Selection) drop(kind Kind, id string) {
	ref := MemberRef{Kind: kind, ID: id}
	delete(s.selected, ref)
	if s.hasHover && s.hovered == ref {
		s.Unhover()
	}
}
