package poche

import "slices"

// Snapshot is a full structural copy of the mesh's vertex, edge, and face
// collections. Undo/redo restores whole snapshots; there is no diff
// replay.
type Snapshot struct {
	vertices    map[VertexID]*Vertex
	vertexOrder []VertexID
	edges       map[EdgeID]*Edge
	edgeOrder   []EdgeID
	faces       map[FaceID]*Face
	faceOrder   []FaceID
}

// history is a bounded undo/redo stack of snapshots. When the undo stack
// exceeds the limit, the oldest snapshot is discarded.
type history struct {
	limit int
	undo  []*Snapshot
	redo  []*Snapshot
}

// Checkpoint records the current mesh state on the undo stack. Call it
// before a user-visible mutation. Any redo state is discarded.
func (m *Mesh) Checkpoint() {
	m.history.undo = append(m.history.undo, m.snapshot())
	if m.history.limit > 0 && len(m.history.undo) > m.history.limit {
		m.history.undo = slices.Delete(m.history.undo, 0, 1)
	}
	m.history.redo = m.history.redo[:0]
}

// Undo restores the most recent checkpoint, saving the current state for
// [Mesh.Redo]. It reports whether there was anything to undo.
func (m *Mesh) Undo() bool {
	n := len(m.history.undo)
	if n == 0 {
		return false
	}
	snap := m.history.undo[n-1]
	m.history.undo = m.history.undo[:n-1]
	m.history.redo = append(m.history.redo, m.snapshot())
	m.restore(snap)
	return true
}

// Redo reverses the most recent Undo. It reports whether there was
// anything to redo.
func (m *Mesh) Redo() bool {
	n := len(m.history.redo)
	if n == 0 {
		return false
	}
	snap := m.history.redo[n-1]
	m.history.redo = m.history.redo[:n-1]
	m.history.undo = append(m.history.undo, m.snapshot())
	m.restore(snap)
	return true
}

// CanUndo reports whether the undo stack is non-empty.
func (m *Mesh) CanUndo() bool { return len(m.history.undo) > 0 }

// CanRedo reports whether the redo stack is non-empty.
func (m *Mesh) CanRedo() bool { return len(m.history.redo) > 0 }

// snapshot deep-copies the geometry collections.
func (m *Mesh) snapshot() *Snapshot {
	s := &Snapshot{
		vertices:    make(map[VertexID]*Vertex, len(m.vertices)),
		vertexOrder: slices.Clone(m.vertexOrder),
		edges:       make(map[EdgeID]*Edge, len(m.edges)),
		edgeOrder:   slices.Clone(m.edgeOrder),
		faces:       make(map[FaceID]*Face, len(m.faces)),
		faceOrder:   slices.Clone(m.faceOrder),
	}
	for id, v := range m.vertices {
		cp := *v
		cp.Edges = slices.Clone(v.Edges)
		s.vertices[id] = &cp
	}
	for id, e := range m.edges {
		cp := *e
		cp.Faces = slices.Clone(e.Faces)
		s.edges[id] = &cp
	}
	for id, f := range m.faces {
		cp := *f
		cp.Edges = slices.Clone(f.Edges)
		s.faces[id] = &cp
	}
	return s
}

// restore replaces the geometry collections with a deep copy of the
// snapshot, so the stored snapshot stays untouched by later mutations. The
// selection is cleared: it may refer to entities that no longer exist in
// the restored state.
func (m *Mesh) restore(s *Snapshot) {
	src := Mesh{
		vertices:    s.vertices,
		vertexOrder: s.vertexOrder,
		edges:       s.edges,
		edgeOrder:   s.edgeOrder,
		faces:       s.faces,
		faceOrder:   s.faceOrder,
	}
	cp := src.snapshot()
	m.vertices = cp.vertices
	m.vertexOrder = cp.vertexOrder
	m.edges = cp.edges
	m.edgeOrder = cp.edgeOrder
	m.faces = cp.faces
	m.faceOrder = cp.faceOrder
	m.sel.Clear()
}
