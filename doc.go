// Package poche is an interactive geometry kernel for sketch-based CAD
// drawing. It maintains a topological mesh of vertices, edges, and faces
// built incrementally from user-drawn line segments: closed planar loops
// are detected automatically and materialized as faces, crossing edges are
// split at shared vertices, and faces cut by new chord edges are
// invalidated so cycle detection can re-synthesize the smaller pieces.
//
// # The mesh store
//
// [Mesh] is the exclusive owner of the vertex, edge, and face collections.
// Every mutation goes through its method set ([Mesh.AddVertex],
// [Mesh.AddEdge], [Mesh.DeleteVertex], [Mesh.AddFace], and friends) so the
// cross-reference invariants (each vertex knows its incident edges, each
// edge knows its faces) hold at a single choke point. Lookups and the
// iterator methods hand out copies; no caller ever holds a live reference
// into the collections. Adjacency is stored as id lists on arena records
// rather than object pointers, which keeps snapshotting for undo/redo a
// plain structural copy.
//
// The kernel is single-threaded on purpose: it is driven by user input
// events, each mutation runs atomically to completion, and nothing inside
// it blocks or suspends.
//
// # Edge insertion and face synthesis
//
// [Mesh.AddEdge] is where the topology maintenance happens. A new segment
// is tested against every existing edge; crossings introduce shared
// vertices, splitting both edges ([Segment.Intersect], with an endpoint
// margin so touches don't count). Each resulting edge is then run through
// cycle detection: a bounded depth-first search enumerates the minimal
// cycles the edge closes, coplanar ones (see [Coplanar]) become faces with
// a Newell normal (see [NewellNormal]), and duplicates are suppressed by
// edge set. An edge chording across an existing face deletes that face
// first, so the subsequent detection pass can rebuild the two halves.
//
// In keeping with its interactive callers, the kernel favors silent no-ops
// over errors: unknown ids, duplicate edges, and degenerate shapes simply
// do nothing, and the numerically unstable paths degrade to "no result"
// rather than produce NaNs.
//
// # Drawing support
//
// The snapping engine resolves where a drawn point should land:
// [Mesh.ResolveSnap] prefers an existing vertex, then an axis lock while
// drawing (see [InferAxis] and its pointer-ray variant [InferAxisRay]),
// then the grid (see [SnapToGrid]). [Selection] carries the selection and
// hover state for the rendering layer, keyed by entity kind and id and kept
// consistent with deletions.
//
// [Mesh.Checkpoint], [Mesh.Undo], and [Mesh.Redo] implement undo/redo as a
// bounded stack of full snapshots.
//
// # Interchange
//
// [Document] is the persistence form: id-keyed record collections plus a
// format version, encoded as JSON. [Box] and [Terrain] build programmatic
// shapes through the public mutation API only; they are what a command
// translator (such as an AI assistant) calls.
//
// Rendering, camera control, and the chat assistant live outside this
// package; they call the mutation API and read the collections back.
package poche
