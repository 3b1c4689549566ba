package poche

import "slices"

// maxCycleVertices caps the length of paths explored during face
// detection. Sketches rarely close loops over more than eight vertices,
// and the cap keeps the path enumeration responsive on dense meshes.
const maxCycleVertices = 8

// detectFaces finds every minimal cycle that the new edge closes and
// materializes the coplanar ones as faces.
func (m *Mesh) detectFaces(e *Edge) {
	if e.Construction {
		return
	}
	created := 0
	for _, cycle := range m.findCycles(e) {
		if !m.cycleIsMinimal(cycle) {
			continue
		}
		pts := make([]Point3, len(cycle))
		for i, vid := range cycle {
			pts[i] = m.position(vid)
		}
		if !Coplanar(pts, CoplanarTolerance) {
			continue
		}
		boundary, ok := m.boundaryEdges(cycle)
		if !ok {
			// Topology inconsistency; leave this cycle alone.
			continue
		}
		if _, ok := m.faceWithEdgeSet(boundary); ok {
			continue
		}
		m.addFaceRecord(boundary, NewellNormal(pts))
		created++
	}
	if created > 0 {
		Logger().Debug("synthesized faces", "edge", e.ID, "faces", created)
	}
}

// findCycles enumerates the simple paths from e.V1 to e.V2 that avoid e
// itself, each of which e closes into a cycle. Paths are capped at
// maxCycleVertices vertices; construction edges are never traversed.
func (m *Mesh) findCycles(e *Edge) [][]VertexID {
	var cycles [][]VertexID
	visited := map[VertexID]bool{e.V1: true}

	var walk func(cur VertexID, path []VertexID)
	walk = func(cur VertexID, path []VertexID) {
		if cur == e.V2 {
			if len(path) >= 3 {
				cycles = append(cycles, slices.Clone(path))
			}
			return
		}
		if len(path) >= maxCycleVertices {
			return
		}
		for _, eid := range m.vertices[cur].Edges {
			next := m.edges[eid]
			if eid == e.ID || next.Construction {
				continue
			}
			nv := next.Other(cur)
			if visited[nv] {
				continue
			}
			visited[nv] = true
			walk(nv, append(path[:len(path):len(path)], nv))
			delete(visited, nv)
		}
	}
	walk(e.V1, []VertexID{e.V1})
	return cycles
}

// cycleIsMinimal reports whether no two non-adjacent vertices of the cycle
// are directly connected by a solid edge. Such a chord means the cycle
// encloses more than one face and must not be materialized itself.
func (m *Mesh) cycleIsMinimal(cycle []VertexID) bool {
	n := len(cycle)
	for i := 0; i < n; i++ {
		for j := i + 2; j < n; j++ {
			if i == 0 && j == n-1 {
				// Adjacent around the wrap.
				continue
			}
			if eid, ok := m.edgeBetween(cycle[i], cycle[j]); ok && !m.edges[eid].Construction {
				return false
			}
		}
	}
	return true
}

// boundaryEdges reconstructs the ordered edge loop for a vertex cycle. It
// reports false if any consecutive pair has no connecting edge.
func (m *Mesh) boundaryEdges(cycle []VertexID) ([]EdgeID, bool) {
	boundary := make([]EdgeID, len(cycle))
	for i := range cycle {
		eid, ok := m.edgeBetween(cycle[i], cycle[(i+1)%len(cycle)])
		if !ok {
			return nil, false
		}
		boundary[i] = eid
	}
	return boundary, true
}
