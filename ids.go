package poche

import "github.com/google/uuid"

// Entity ids are opaque strings, stable for the lifetime of a document.
// They are minted once and never reused, which keeps snapshots, selections,
// and serialized documents trivially consistent with each other.
type (
	VertexID   string
	EdgeID     string
	FaceID     string
	GroupID    string
	MaterialID string
)

func newVertexID() VertexID     { return VertexID(uuid.NewString()) }
func newEdgeID() EdgeID         { return EdgeID(uuid.NewString()) }
func newFaceID() FaceID         { return FaceID(uuid.NewString()) }
func newGroupID() GroupID       { return GroupID(uuid.NewString()) }
func newMaterialID() MaterialID { return MaterialID(uuid.NewString()) }
