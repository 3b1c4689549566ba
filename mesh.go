package poche

import (
	"iter"
	"slices"
)

// Vertex is a point of the sketch topology. Edges lists the ids of every
// edge incident to it, in insertion order.
type Vertex struct {
	ID       VertexID
	Position Point3
	Edges    []EdgeID
}

// Edge connects two distinct vertices. Faces lists the ids of the faces
// whose boundary contains the edge. Construction marks guide geometry that
// never participates in face synthesis.
type Edge struct {
	ID           EdgeID
	V1           VertexID
	V2           VertexID
	Faces        []FaceID
	Construction bool
}

// Other reports the endpoint of e opposite to v. It returns "" if v is not
// an endpoint of e.
func (e Edge) Other(v VertexID) VertexID {
	switch v {
	case e.V1:
		return e.V2
	case e.V2:
		return e.V1
	}
	return ""
}

// HasEndpoints reports whether e connects a and b, in either order.
func (e Edge) HasEndpoints(a, b VertexID) bool {
	return (e.V1 == a && e.V2 == b) || (e.V1 == b && e.V2 == a)
}

// Face is a closed planar boundary loop. Edges holds the boundary edge ids
// in loop order; Normal is the face's unit normal.
type Face struct {
	ID     FaceID
	Edges  []EdgeID
	Normal Vec3
}

// MemberRef names a mesh entity by kind and id, for group membership and
// selection.
type MemberRef struct {
	Kind Kind
	ID   string
}

// Group is a named collection of entities. Groups exist for organization
// and persistence; they carry no geometric meaning.
type Group struct {
	ID       GroupID
	Name     string
	Children []GroupID
	Members  []MemberRef
}

// Material is a named appearance record referenced by the rendering layer.
type Material struct {
	ID    MaterialID
	Name  string
	Color [3]float64
}

// Mesh is the canonical owner of all sketch topology: vertices, edges,
// faces, and the group/material records that travel with them. Every
// mutation goes through its method set, so the cross-reference invariants
// (vertex↔edge, edge↔face) hold at a single choke point. Lookups and
// iteration hand out copies; callers never hold live references into the
// collections.
//
// A Mesh is not safe for concurrent use. It is built for a single
// interactive session where each input event runs one mutation to
// completion.
type Mesh struct {
	vertices    map[VertexID]*Vertex
	vertexOrder []VertexID
	edges       map[EdgeID]*Edge
	edgeOrder   []EdgeID
	faces       map[FaceID]*Face
	faceOrder   []FaceID

	groups     map[GroupID]*Group
	rootGroups []GroupID
	materials  map[MaterialID]*Material

	sel     Selection
	history history
	opts    meshOptions
}

// NewMesh returns an empty mesh.
func NewMesh(opts ...Option) *Mesh {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Mesh{
		vertices:  make(map[VertexID]*Vertex),
		edges:     make(map[EdgeID]*Edge),
		faces:     make(map[FaceID]*Face),
		groups:    make(map[GroupID]*Group),
		materials: make(map[MaterialID]*Material),
		sel:       newSelection(),
		history:   history{limit: o.historyLimit},
		opts:      o,
	}
}

// AddVertex inserts a new vertex at the given position and returns its id.
// It always succeeds.
func (m *Mesh) AddVertex(pos Point3) VertexID {
	v := &Vertex{ID: newVertexID(), Position: pos}
	m.vertices[v.ID] = v
	m.vertexOrder = append(m.vertexOrder, v.ID)
	return v.ID
}

// Vertex returns a copy of the vertex with the given id.
func (m *Mesh) Vertex(id VertexID) (Vertex, bool) {
	v, ok := m.vertices[id]
	if !ok {
		return Vertex{}, false
	}
	out := *v
	out.Edges = slices.Clone(v.Edges)
	return out, true
}

// Edge returns a copy of the edge with the given id.
func (m *Mesh) Edge(id EdgeID) (Edge, bool) {
	e, ok := m.edges[id]
	if !ok {
		return Edge{}, false
	}
	out := *e
	out.Faces = slices.Clone(e.Faces)
	return out, true
}

// Face returns a copy of the face with the given id.
func (m *Mesh) Face(id FaceID) (Face, bool) {
	f, ok := m.faces[id]
	if !ok {
		return Face{}, false
	}
	out := *f
	out.Edges = slices.Clone(f.Edges)
	return out, true
}

// Vertices iterates over all vertices in insertion order, yielding copies.
func (m *Mesh) Vertices() iter.Seq[Vertex] {
	return func(yield func(Vertex) bool) {
		for _, id := range m.vertexOrder {
			v, _ := m.Vertex(id)
			if !yield(v) {
				return
			}
		}
	}
}

// Edges iterates over all edges in insertion order, yielding copies.
func (m *Mesh) Edges() iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		for _, id := range m.edgeOrder {
			e, _ := m.Edge(id)
			if !yield(e) {
				return
			}
		}
	}
}

// Faces iterates over all faces in insertion order, yielding copies.
func (m *Mesh) Faces() iter.Seq[Face] {
	return func(yield func(Face) bool) {
		for _, id := range m.faceOrder {
			f, _ := m.Face(id)
			if !yield(f) {
				return
			}
		}
	}
}

func (m *Mesh) NumVertices() int { return len(m.vertices) }
func (m *Mesh) NumEdges() int    { return len(m.edges) }
func (m *Mesh) NumFaces() int    { return len(m.faces) }

// IncidentEdges returns the ids of the edges incident to the given vertex,
// in insertion order. It returns nil for an unknown vertex.
func (m *Mesh) IncidentEdges(id VertexID) []EdgeID {
	v, ok := m.vertices[id]
	if !ok {
		return nil
	}
	return slices.Clone(v.Edges)
}

// FindNearbyVertex returns the id of the vertex closest to pos within
// threshold. A threshold of 0 or less uses the mesh's configured default.
// Ties resolve to the earliest-inserted vertex.
func (m *Mesh) FindNearbyVertex(pos Point3, threshold float64) (VertexID, bool) {
	if threshold <= 0 {
		threshold = m.opts.nearbyThreshold
	}
	var (
		best   VertexID
		bestSq = threshold * threshold
		found  bool
	)
	for _, id := range m.vertexOrder {
		d := m.vertices[id].Position.DistanceSquared(pos)
		if d < bestSq || (!found && d == bestSq) {
			best, bestSq, found = id, d, true
		}
	}
	return best, found
}

// UpdateVertexPosition moves a vertex. Unknown ids are a silent no-op.
// Normals of faces that contain the vertex are not recomputed; callers that
// need fresh normals recompute them.
func (m *Mesh) UpdateVertexPosition(id VertexID, pos Point3) {
	v, ok := m.vertices[id]
	if !ok {
		return
	}
	v.Position = pos
}

// DeleteVertex removes a vertex, deleting every incident edge first, and
// drops the vertex from any active selection. Unknown ids are a silent
// no-op.
func (m *Mesh) DeleteVertex(id VertexID) {
	v, ok := m.vertices[id]
	if !ok {
		return
	}
	for _, eid := range slices.Clone(v.Edges) {
		m.DeleteEdge(eid)
	}
	delete(m.vertices, id)
	m.vertexOrder = removeID(m.vertexOrder, id)
	m.sel.drop(KindVertex, string(id))
}

// DeleteEdge removes an edge, detaching it from both endpoint vertices and
// from any active selection. Unknown ids are a silent no-op.
//
// Faces whose boundary references the edge are left in place with the stale
// id. This matches the interactive tool's behavior, where face cleanup
// after an explicit edge erase is deferred; see also DeleteVertex, which
// inherits it.
func (m *Mesh) DeleteEdge(id EdgeID) {
	e, ok := m.edges[id]
	if !ok {
		return
	}
	m.detachEdgeFromVertices(e)
	delete(m.edges, id)
	m.edgeOrder = removeID(m.edgeOrder, id)
	m.sel.drop(KindEdge, string(id))
}

// AddFace constructs a face directly from an ordered vertex loop,
// bypassing cycle detection. For each consecutive vertex pair an existing
// edge is reused, or a new one created without the insertion protocol.
//
// The normal is the cross product of the first two boundary vectors, not
// Newell's method. AddFace is meant for programmatic, known-convex input
// such as boxes and terrain cells; faces found by cycle detection use
// [NewellNormal].
//
// It returns "" if fewer than 3 vertices are given, any id is unknown, or
// a vertex id repeats within the loop. If a face over the same edge set
// already exists, its id is returned and nothing is created.
func (m *Mesh) AddFace(loop []VertexID) FaceID {
	if len(loop) < 3 {
		return ""
	}
	seen := make(map[VertexID]struct{}, len(loop))
	pts := make([]Point3, len(loop))
	for i, vid := range loop {
		v, ok := m.vertices[vid]
		if !ok {
			return ""
		}
		if _, dup := seen[vid]; dup {
			return ""
		}
		seen[vid] = struct{}{}
		pts[i] = v.Position
	}

	edges := make([]EdgeID, len(loop))
	for i := range loop {
		a, b := loop[i], loop[(i+1)%len(loop)]
		if eid, ok := m.edgeBetween(a, b); ok {
			edges[i] = eid
		} else {
			edges[i] = m.addEdgeRecord(a, b, false).ID
		}
	}

	if fid, ok := m.faceWithEdgeSet(edges); ok {
		return fid
	}

	n := pts[1].Sub(pts[0]).Cross(pts[2].Sub(pts[1]))
	if n.Hypot() < 1e-9 {
		n = V3(0, 1, 0)
	} else {
		n = n.Normalize()
	}
	return m.addFaceRecord(edges, n)
}

// AddGroup creates a root-level group and returns its id.
func (m *Mesh) AddGroup(name string, members ...MemberRef) GroupID {
	g := &Group{ID: newGroupID(), Name: name, Members: members}
	m.groups[g.ID] = g
	m.rootGroups = append(m.rootGroups, g.ID)
	return g.ID
}

// AddSubgroup creates a group nested under parent. It returns "" if parent
// is unknown.
func (m *Mesh) AddSubgroup(parent GroupID, name string, members ...MemberRef) GroupID {
	p, ok := m.groups[parent]
	if !ok {
		return ""
	}
	g := &Group{ID: newGroupID(), Name: name, Members: members}
	m.groups[g.ID] = g
	p.Children = append(p.Children, g.ID)
	return g.ID
}

// Group returns a copy of the group with the given id.
func (m *Mesh) Group(id GroupID) (Group, bool) {
	g, ok := m.groups[id]
	if !ok {
		return Group{}, false
	}
	out := *g
	out.Children = slices.Clone(g.Children)
	out.Members = slices.Clone(g.Members)
	return out, true
}

// RootGroups returns the ids of the top-level groups.
func (m *Mesh) RootGroups() []GroupID {
	return slices.Clone(m.rootGroups)
}

// AddMaterial registers a material and returns its id.
func (m *Mesh) AddMaterial(name string, color [3]float64) MaterialID {
	mat := &Material{ID: newMaterialID(), Name: name, Color: color}
	m.materials[mat.ID] = mat
	return mat.ID
}

// Material returns a copy of the material with the given id.
func (m *Mesh) Material(id MaterialID) (Material, bool) {
	mat, ok := m.materials[id]
	if !ok {
		return Material{}, false
	}
	return *mat, true
}

// Selection returns the mesh's selection state. The mesh keeps it
// consistent with deletions.
func (m *Mesh) Selection() *Selection {
	return &m.sel
}

// edgeBetween returns the id of the edge connecting a and b, if any.
func (m *Mesh) edgeBetween(a, b VertexID) (EdgeID, bool) {
	va, ok := m.vertices[a]
	if !ok {
		return "", false
	}
	for _, eid := range va.Edges {
		if m.edges[eid].HasEndpoints(a, b) {
			return eid, true
		}
	}
	return "", false
}

// addEdgeRecord creates the edge record and wires both endpoint back
// references. Callers are responsible for validity checks.
func (m *Mesh) addEdgeRecord(a, b VertexID, construction bool) *Edge {
	e := &Edge{ID: newEdgeID(), V1: a, V2: b, Construction: construction}
	m.edges[e.ID] = e
	m.edgeOrder = append(m.edgeOrder, e.ID)
	m.vertices[a].Edges = append(m.vertices[a].Edges, e.ID)
	m.vertices[b].Edges = append(m.vertices[b].Edges, e.ID)
	return e
}

func (m *Mesh) detachEdgeFromVertices(e *Edge) {
	if v, ok := m.vertices[e.V1]; ok {
		v.Edges = removeID(v.Edges, e.ID)
	}
	if v, ok := m.vertices[e.V2]; ok {
		v.Edges = removeID(v.Edges, e.ID)
	}
}

// addFaceRecord creates the face record and appends its id to every
// boundary edge's face list.
func (m *Mesh) addFaceRecord(edges []EdgeID, normal Vec3) FaceID {
	f := &Face{ID: newFaceID(), Edges: slices.Clone(edges), Normal: normal}
	m.faces[f.ID] = f
	m.faceOrder = append(m.faceOrder, f.ID)
	for _, eid := range edges {
		e := m.edges[eid]
		e.Faces = append(e.Faces, f.ID)
	}
	return f.ID
}

// deleteFaceRecord removes a face and detaches it from its boundary edges
// and the selection.
func (m *Mesh) deleteFaceRecord(id FaceID) {
	f, ok := m.faces[id]
	if !ok {
		return
	}
	for _, eid := range f.Edges {
		if e, ok := m.edges[eid]; ok {
			e.Faces = removeID(e.Faces, id)
		}
	}
	delete(m.faces, id)
	m.faceOrder = removeID(m.faceOrder, id)
	m.sel.drop(KindFace, string(id))
}

// faceWithEdgeSet returns the id of the face whose boundary uses exactly
// the given edges, in any order.
func (m *Mesh) faceWithEdgeSet(edges []EdgeID) (FaceID, bool) {
	want := make(map[EdgeID]struct{}, len(edges))
	for _, eid := range edges {
		want[eid] = struct{}{}
	}
	for _, fid := range m.faceOrder {
		f := m.faces[fid]
		if len(f.Edges) != len(want) {
			continue
		}
		match := true
		for _, eid := range f.Edges {
			if _, ok := want[eid]; !ok {
				match = false
				break
			}
		}
		if match {
			return fid, true
		}
	}
	return "", false
}

// faceVertexSet collects the endpoint ids of a face's boundary edges.
func (m *Mesh) faceVertexSet(f *Face) map[VertexID]struct{} {
	set := make(map[VertexID]struct{}, len(f.Edges))
	for _, eid := range f.Edges {
		if e, ok := m.edges[eid]; ok {
			set[e.V1] = struct{}{}
			set[e.V2] = struct{}{}
		}
	}
	return set
}

// position returns the position of a known vertex.
func (m *Mesh) position(id VertexID) Point3 {
	return m.vertices[id].Position
}

func removeID[T comparable](s []T, id T) []T {
	for i, v := range s {
		if v == id {
			return slices.Delete(s, i, i+1)
		}
	}
	return s
}
