package poche

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"sort"
)

// DocumentVersion is the current serialization format version.
const DocumentVersion = 1

// Document is the persistence form of a mesh: id-keyed record collections
// for every entity kind, the root group ids, and a format version. It is
// what save/load, the backend, and the generator CLI exchange.
type Document struct {
	Version    int                           `json:"version"`
	Vertices   map[VertexID]VertexRecord     `json:"vertices"`
	Edges      map[EdgeID]EdgeRecord         `json:"edges"`
	Faces      map[FaceID]FaceRecord         `json:"faces"`
	Groups     map[GroupID]GroupRecord       `json:"groups"`
	Materials  map[MaterialID]MaterialRecord `json:"materials"`
	RootGroups []GroupID                     `json:"rootGroups"`
}

type VertexRecord struct {
	ID       VertexID   `json:"id"`
	Position [3]float64 `json:"position"`
	Edges    []EdgeID   `json:"edges,omitempty"`
}

type EdgeRecord struct {
	ID           EdgeID   `json:"id"`
	V1           VertexID `json:"v1"`
	V2           VertexID `json:"v2"`
	Faces        []FaceID `json:"faces,omitempty"`
	Construction bool     `json:"construction,omitempty"`
}

type FaceRecord struct {
	ID     FaceID     `json:"id"`
	Edges  []EdgeID   `json:"edges"`
	Normal [3]float64 `json:"normal"`
}

type GroupRecord struct {
	ID       GroupID        `json:"id"`
	Name     string         `json:"name"`
	Children []GroupID      `json:"children,omitempty"`
	Members  []MemberRecord `json:"members,omitempty"`
}

type MemberRecord struct {
	Kind Kind   `json:"kind"`
	ID   string `json:"id"`
}

type MaterialRecord struct {
	ID    MaterialID `json:"id"`
	Name  string     `json:"name"`
	Color [3]float64 `json:"color"`
}

// Document captures the mesh as a serializable document.
func (m *Mesh) Document() Document {
	doc := Document{
		Version:    DocumentVersion,
		Vertices:   make(map[VertexID]VertexRecord, len(m.vertices)),
		Edges:      make(map[EdgeID]EdgeRecord, len(m.edges)),
		Faces:      make(map[FaceID]FaceRecord, len(m.faces)),
		Groups:     make(map[GroupID]GroupRecord, len(m.groups)),
		Materials:  make(map[MaterialID]MaterialRecord, len(m.materials)),
		RootGroups: slices.Clone(m.rootGroups),
	}
	for id, v := range m.vertices {
		doc.Vertices[id] = VertexRecord{
			ID:       id,
			Position: [3]float64{v.Position.X, v.Position.Y, v.Position.Z},
			Edges:    slices.Clone(v.Edges),
		}
	}
	for id, e := range m.edges {
		doc.Edges[id] = EdgeRecord{
			ID:           id,
			V1:           e.V1,
			V2:           e.V2,
			Faces:        slices.Clone(e.Faces),
			Construction: e.Construction,
		}
	}
	for id, f := range m.faces {
		doc.Faces[id] = FaceRecord{
			ID:     id,
			Edges:  slices.Clone(f.Edges),
			Normal: [3]float64{f.Normal.X, f.Normal.Y, f.Normal.Z},
		}
	}
	for id, g := range m.groups {
		members := make([]MemberRecord, len(g.Members))
		for i, ref := range g.Members {
			members[i] = MemberRecord{Kind: ref.Kind, ID: ref.ID}
		}
		doc.Groups[id] = GroupRecord{
			ID:       id,
			Name:     g.Name,
			Children: slices.Clone(g.Children),
			Members:  members,
		}
	}
	for id, mat := range m.materials {
		doc.Materials[id] = MaterialRecord{ID: id, Name: mat.Name, Color: mat.Color}
	}
	return doc
}

// FromDocument rebuilds a mesh from a document. The vertex↔edge back
// references are reconstructed from the edge records, not trusted from the
// vertex records. Iteration order after a load is sorted by id: the
// original insertion order is not part of the format.
func FromDocument(doc Document, opts ...Option) (*Mesh, error) {
	if doc.Version != DocumentVersion {
		return nil, fmt.Errorf("unsupported document version %d", doc.Version)
	}
	m := NewMesh(opts...)

	for id, rec := range doc.Vertices {
		m.vertices[id] = &Vertex{
			ID:       id,
			Position: Pt3(rec.Position[0], rec.Position[1], rec.Position[2]),
		}
		m.vertexOrder = append(m.vertexOrder, id)
	}
	sortIDs(m.vertexOrder)

	for id, rec := range doc.Edges {
		if _, ok := m.vertices[rec.V1]; !ok {
			return nil, fmt.Errorf("edge %s references unknown vertex %s", id, rec.V1)
		}
		if _, ok := m.vertices[rec.V2]; !ok {
			return nil, fmt.Errorf("edge %s references unknown vertex %s", id, rec.V2)
		}
		m.edges[id] = &Edge{ID: id, V1: rec.V1, V2: rec.V2, Construction: rec.Construction}
		m.edgeOrder = append(m.edgeOrder, id)
	}
	sortIDs(m.edgeOrder)
	for _, id := range m.edgeOrder {
		e := m.edges[id]
		m.vertices[e.V1].Edges = append(m.vertices[e.V1].Edges, id)
		m.vertices[e.V2].Edges = append(m.vertices[e.V2].Edges, id)
	}

	for id, rec := range doc.Faces {
		for _, eid := range rec.Edges {
			if _, ok := m.edges[eid]; !ok {
				return nil, fmt.Errorf("face %s references unknown edge %s", id, eid)
			}
		}
		m.faces[id] = &Face{
			ID:     id,
			Edges:  slices.Clone(rec.Edges),
			Normal: V3(rec.Normal[0], rec.Normal[1], rec.Normal[2]),
		}
		m.faceOrder = append(m.faceOrder, id)
	}
	sortIDs(m.faceOrder)
	for _, id := range m.faceOrder {
		for _, eid := range m.faces[id].Edges {
			e := m.edges[eid]
			e.Faces = append(e.Faces, id)
		}
	}

	for id, rec := range doc.Groups {
		members := make([]MemberRef, len(rec.Members))
		for i, mr := range rec.Members {
			members[i] = MemberRef{Kind: mr.Kind, ID: mr.ID}
		}
		m.groups[id] = &Group{
			ID:       id,
			Name:     rec.Name,
			Children: slices.Clone(rec.Children),
			Members:  members,
		}
	}
	m.rootGroups = slices.Clone(doc.RootGroups)

	for id, rec := range doc.Materials {
		m.materials[id] = &Material{ID: id, Name: rec.Name, Color: rec.Color}
	}
	return m, nil
}

// EncodeDocument writes the document as indented JSON.
func EncodeDocument(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}
	return nil
}

// DecodeDocument reads a JSON document and checks its version.
func DecodeDocument(r io.Reader) (Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("decoding document: %w", err)
	}
	if doc.Version != DocumentVersion {
		return Document{}, fmt.Errorf("unsupported document version %d", doc.Version)
	}
	return doc, nil
}

func sortIDs[T ~string](ids []T) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
