package poche

import (
	"math"
	"math/rand"
)

// Programmatic shape builders. They are the declarative entry point used by
// command translators: everything goes through [Mesh.AddVertex] and
// [Mesh.AddFace], never through the collections directly.

// Box adds an axis-aligned box with its minimum corner at origin and the
// given extents. It returns the six face ids, or nil if any extent is not
// positive.
func Box(m *Mesh, origin Point3, size Vec3) []FaceID {
	if size.X <= 0 || size.Y <= 0 || size.Z <= 0 {
		return nil
	}
	x, y, z := size.Splat()
	corners := [8]Point3{
		origin,
		origin.Translate(V3(x, 0, 0)),
		origin.Translate(V3(x, 0, z)),
		origin.Translate(V3(0, 0, z)),
		origin.Translate(V3(0, y, 0)),
		origin.Translate(V3(x, y, 0)),
		origin.Translate(V3(x, y, z)),
		origin.Translate(V3(0, y, z)),
	}
	var vids [8]VertexID
	for i, c := range corners {
		vids[i] = m.AddVertex(c)
	}
	// Outward winding per face.
	loops := [6][4]int{
		{0, 1, 2, 3}, // bottom
		{4, 7, 6, 5}, // top
		{0, 4, 5, 1}, // front
		{1, 5, 6, 2}, // right
		{2, 6, 7, 3}, // back
		{3, 7, 4, 0}, // left
	}
	faces := make([]FaceID, 0, 6)
	for _, loop := range loops {
		faces = append(faces, m.AddFace([]VertexID{
			vids[loop[0]], vids[loop[1]], vids[loop[2]], vids[loop[3]],
		}))
	}
	return faces
}

// TerrainProfile names the height function of a generated terrain grid.
type TerrainProfile string

const (
	// ProfileFlat is a level grid.
	ProfileFlat TerrainProfile = "flat"
	// ProfileHills uses gradient noise for rolling bumps.
	ProfileHills TerrainProfile = "hills"
	// ProfileRidge peaks along the grid's center line.
	ProfileRidge TerrainProfile = "ridge"
	// ProfileBowl dips toward the grid's center.
	ProfileBowl TerrainProfile = "bowl"
)

// TerrainParams describes a terrain grid declaratively.
type TerrainParams struct {
	// Origin is the grid's minimum corner.
	Origin Point3
	// Size is the side length of the square grid.
	Size float64
	// Resolution is the number of cells per side.
	Resolution int
	// Height is the profile's amplitude.
	Height float64
	// Profile selects the height function; the zero value is ProfileFlat.
	Profile TerrainProfile
	// Seed drives the hills noise; equal seeds give equal terrain.
	Seed int64
}

// Terrain adds a square grid of quad cells whose vertex heights follow the
// chosen profile. It returns the cell face ids in row-major order, or nil
// for non-positive size or resolution, or an unknown profile.
func Terrain(m *Mesh, p TerrainParams) []FaceID {
	if p.Size <= 0 || p.Resolution < 1 {
		return nil
	}
	if p.Profile == "" {
		p.Profile = ProfileFlat
	}
	switch p.Profile {
	case ProfileFlat, ProfileHills, ProfileRidge, ProfileBowl:
	default:
		return nil
	}

	res := p.Resolution
	cell := p.Size / float64(res)

	var noise perlinField
	if p.Profile == ProfileHills {
		// Sample the noise over a few lattice cells so a grid of any
		// resolution gets a handful of bumps.
		noise = newPerlinField(0, 0, terrainNoiseSpan, terrainNoiseSpan,
			rand.New(rand.NewSource(p.Seed)))
	}

	height := func(i, j int) float64 {
		u := float64(i) / float64(res)
		w := float64(j) / float64(res)
		switch p.Profile {
		case ProfileHills:
			return p.Height * noise.sample(u*terrainNoiseSpan, w*terrainNoiseSpan)
		case ProfileRidge:
			return p.Height * (1 - math.Abs(2*u-1))
		case ProfileBowl:
			du, dw := 2*u-1, 2*w-1
			return p.Height * (du*du + dw*dw) / 2
		}
		return 0
	}

	verts := make([][]VertexID, res+1)
	for i := range verts {
		verts[i] = make([]VertexID, res+1)
		for j := range verts[i] {
			verts[i][j] = m.AddVertex(p.Origin.Translate(V3(
				float64(i)*cell,
				height(i, j),
				float64(j)*cell,
			)))
		}
	}

	faces := make([]FaceID, 0, res*res)
	for i := 0; i < res; i++ {
		for j := 0; j < res; j++ {
			faces = append(faces, m.AddFace([]VertexID{
				verts[i][j],
				verts[i+1][j],
				verts[i+1][j+1],
				verts[i][j+1],
			}))
		}
	}
	return faces
}

const terrainNoiseSpan = 4.0
