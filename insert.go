package poche

import "sort"

// AddEdge connects two vertices, maintaining planar-graph correctness: if
// the new segment crosses existing edges, shared vertices are introduced at
// the crossing points and all involved edges are split there. Every edge
// that results from the insertion is run through cycle detection, so closed
// planar loops materialize as faces immediately.
//
// It returns the ids of the edges it created: one for a plain insertion,
// several when the segment was split at crossings, and nil when nothing
// happened. Unknown vertex ids, v1 == v2, and an already existing edge
// between the pair are silent no-ops.
func (m *Mesh) AddEdge(v1, v2 VertexID) []EdgeID {
	return m.insertEdge(v1, v2, false)
}

// AddConstructionEdge adds a guide edge between two vertices. Construction
// edges bypass the insertion protocol entirely: they are not checked for
// crossings, never invalidate faces, and never close loops. They are
// themselves split when a later solid edge crosses them, with the flag
// carried onto both remnants.
//
// The same silent no-op rules as [Mesh.AddEdge] apply.
func (m *Mesh) AddConstructionEdge(v1, v2 VertexID) []EdgeID {
	return m.insertEdge(v1, v2, true)
}

type crossing struct {
	edge EdgeID
	pt   Point3
	t    float64
}

func (m *Mesh) insertEdge(v1, v2 VertexID, construction bool) []EdgeID {
	if v1 == v2 {
		return nil
	}
	if _, ok := m.vertices[v1]; !ok {
		return nil
	}
	if _, ok := m.vertices[v2]; !ok {
		return nil
	}
	if _, ok := m.edgeBetween(v1, v2); ok {
		return nil
	}

	if construction {
		e := m.addEdgeRecord(v1, v2, true)
		return []EdgeID{e.ID}
	}

	cand := Seg(m.position(v1), m.position(v2))
	var crossings []crossing
	for _, eid := range m.edgeOrder {
		e := m.edges[eid]
		if pt, t, ok := cand.Intersect(Seg(m.position(e.V1), m.position(e.V2))); ok {
			crossings = append(crossings, crossing{edge: eid, pt: pt, t: t})
		}
	}

	if len(crossings) == 0 {
		e := m.addEdgeRecord(v1, v2, false)
		m.invalidateChordedFaces(e)
		m.detectFaces(e)
		return []EdgeID{e.ID}
	}

	sort.Slice(crossings, func(i, j int) bool {
		return crossings[i].t < crossings[j].t
	})

	// Split every crossed edge at a fresh vertex, then connect the chain
	// from v1 through the crossing vertices to v2 in parametric order.
	replaced := make(map[EdgeID][2]EdgeID)
	chain := make([]VertexID, 0, len(crossings)+2)
	chain = append(chain, v1)
	for _, c := range crossings {
		vid := m.AddVertex(c.pt)
		m.splitEdgeAt(c.edge, vid, replaced)
		chain = append(chain, vid)
	}
	chain = append(chain, v2)

	ids := make([]EdgeID, 0, len(chain)-1)
	for i := 0; i+1 < len(chain); i++ {
		ids = append(ids, m.addEdgeRecord(chain[i], chain[i+1], false).ID)
	}
	Logger().Debug("edge insertion split at crossings",
		"crossings", len(crossings), "segments", len(ids))

	for _, eid := range ids {
		m.detectFaces(m.edges[eid])
	}
	return ids
}

// splitEdgeAt replaces the edge with two edges meeting at vid. The
// construction flag carries over to both remnants. The old edge is detached
// from its endpoint vertices and its id is removed from the boundary of any
// face that referenced it; those faces are not rebuilt.
//
// When several crossings land on one original edge, later splits resolve
// through the replaced map to whichever remnant contains the point.
func (m *Mesh) splitEdgeAt(id EdgeID, vid VertexID, replaced map[EdgeID][2]EdgeID) {
	pt := m.position(vid)
	e := m.resolveSplitTarget(id, pt, replaced)
	if e == nil {
		return
	}
	old := *e

	m.detachEdgeFromVertices(e)
	delete(m.edges, old.ID)
	m.edgeOrder = removeID(m.edgeOrder, old.ID)
	m.sel.drop(KindEdge, string(old.ID))
	for _, fid := range old.Faces {
		if f, ok := m.faces[fid]; ok {
			f.Edges = removeID(f.Edges, old.ID)
		}
	}

	a := m.addEdgeRecord(old.V1, vid, old.Construction)
	b := m.addEdgeRecord(vid, old.V2, old.Construction)
	replaced[old.ID] = [2]EdgeID{a.ID, b.ID}
	Logger().Debug("split edge", "edge", old.ID, "at", pt)
}

// resolveSplitTarget walks replacement chains until it lands on a live edge
// whose segment contains pt.
func (m *Mesh) resolveSplitTarget(id EdgeID, pt Point3, replaced map[EdgeID][2]EdgeID) *Edge {
	for {
		if e, ok := m.edges[id]; ok {
			return e
		}
		pair, ok := replaced[id]
		if !ok {
			return nil
		}
		id = pair[0]
		if a, ok := m.edges[pair[0]]; ok {
			if b, ok := m.edges[pair[1]]; ok {
				da, _ := Seg(m.position(a.V1), m.position(a.V2)).Nearest(pt)
				db, _ := Seg(m.position(b.V1), m.position(b.V2)).Nearest(pt)
				if db < da {
					id = pair[1]
				}
			}
		}
	}
}

// invalidateChordedFaces deletes every face that the new edge cuts across:
// both endpoints lie in the face's vertex set but no boundary edge of the
// face connects them. Such a face must be re-synthesized as smaller faces
// by the cycle detection that follows the insertion.
func (m *Mesh) invalidateChordedFaces(e *Edge) {
	var doomed []FaceID
	for _, fid := range m.faceOrder {
		f := m.faces[fid]
		vs := m.faceVertexSet(f)
		if _, ok := vs[e.V1]; !ok {
			continue
		}
		if _, ok := vs[e.V2]; !ok {
			continue
		}
		adjacent := false
		for _, eid := range f.Edges {
			if be, ok := m.edges[eid]; ok && be.HasEndpoints(e.V1, e.V2) {
				adjacent = true
				break
			}
		}
		if !adjacent {
			doomed = append(doomed, fid)
		}
	}
	for _, fid := range doomed {
		Logger().Debug("chord invalidates face", "face", fid, "edge", e.ID)
		m.deleteFaceRecord(fid)
	}
}
