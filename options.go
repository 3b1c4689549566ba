package poche

// Option configures a [Mesh] during creation.
type Option func(*meshOptions)

type meshOptions struct {
	nearbyThreshold  float64
	vertexSnapRadius float64
	gridSize         float64
	historyLimit     int
}

func defaultOptions() meshOptions {
	return meshOptions{
		nearbyThreshold:  0.3,
		vertexSnapRadius: 1.5,
		gridSize:         1.0,
		historyLimit:     50,
	}
}

// WithNearbyThreshold sets the default search radius of
// [Mesh.FindNearbyVertex].
func WithNearbyThreshold(r float64) Option {
	return func(o *meshOptions) {
		o.nearbyThreshold = r
	}
}

// WithVertexSnapRadius sets the radius within which [Mesh.ResolveSnap]
// snaps to an existing vertex.
func WithVertexSnapRadius(r float64) Option {
	return func(o *meshOptions) {
		o.vertexSnapRadius = r
	}
}

// WithGridSize sets the grid spacing used for grid snapping.
func WithGridSize(g float64) Option {
	return func(o *meshOptions) {
		o.gridSize = g
	}
}

// WithHistoryLimit sets the maximum number of undo snapshots kept. The
// oldest snapshot is discarded when the limit is exceeded.
func WithHistoryLimit(n int) Option {
	return func(o *meshOptions) {
		o.historyLimit = n
	}
}
