package poche

import (
	"math"
	"math/rand"
)

// perlinField generates gradient noise over a rectangle of the ground
// plane. It backs the hills terrain profile.
type perlinField struct {
	gradients [][][2]float64
	originX   int
	originZ   int
}

// newPerlinField creates a field covering x ∈ [minX, maxX], z ∈ [minZ,
// maxZ], with one random unit gradient per integer lattice point.
func newPerlinField(minX, minZ, maxX, maxZ float64, rnd *rand.Rand) perlinField {
	x0 := int(math.Floor(minX)) - 1
	z0 := int(math.Floor(minZ)) - 1
	x1 := int(math.Ceil(maxX)) + 1
	z1 := int(math.Ceil(maxZ)) + 1

	gradients := make([][][2]float64, x1-x0+1)
	for i := range gradients {
		gradients[i] = make([][2]float64, z1-z0+1)
		for j := range gradients[i] {
			angle := rnd.Float64() * math.Pi * 2
			gradients[i][j] = [2]float64{math.Sin(angle), math.Cos(angle)}
		}
	}
	return perlinField{
		gradients: gradients,
		originX:   x0,
		originZ:   z0,
	}
}

// sample returns the noise value at (x, z), roughly in [-1, 1].
func (p perlinField) sample(x, z float64) float64 {
	x0 := int(x) - p.originX
	x1 := x0 + 1
	z0 := int(z) - p.originZ
	z1 := z0 + 1

	n0 := p.dotGridGradient(x0, z0, x, z)
	n1 := p.dotGridGradient(x1, z0, x, z)
	n2 := p.dotGridGradient(x0, z1, x, z)
	n3 := p.dotGridGradient(x1, z1, x, z)

	sx := x - float64(x0+p.originX)
	sz := z - float64(z0+p.originZ)

	lerp := func(a, b, w float64) float64 {
		return (1-w)*a + w*b
	}
	return lerp(lerp(n0, n1, sx), lerp(n2, n3, sx), sz)
}

func (p perlinField) dotGridGradient(i, j int, x, z float64) float64 {
	dx := x - float64(i+p.originX)
	dz := z - float64(j+p.originZ)
	g := p.gradients[i][j]
	return dx*g[0] + dz*g[1]
}
