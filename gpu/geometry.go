// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import (
	"fmt"
)

// Geometry holds the vertex and index arrays of a mesh. Positions have
// 3 components and texture coordinates 2 per vertex.
type Geometry struct {
	Positions []float32
	TexCoords []float32
	Indices   []uint32
}

const (
	positionSize = 3
	texCoordSize = 2
)

var (
	quadPositions = [...]float32{
		1.0, 1.0, 0.0,
		1.0, -1.0, 0.0,
		-1.0, -1.0, 0.0,
		-1.0, 1.0, 0.0,
	}
	quadTexCoords = [...]float32{
		1.0, 1.0,
		1.0, 0.0,
		0.0, 0.0,
		0.0, 1.0,
	}
	// Two triangles split along the top-right to bottom-left diagonal.
	quadIndices = [...]uint32{0, 1, 3, 1, 2, 3}
)

// Quad returns the geometry of a quad covering the whole viewport in
// normalized device coordinates. Each call returns fresh slices.
func Quad() Geometry {
	g := Geometry{
		Positions: make([]float32, len(quadPositions)),
		TexCoords: make([]float32, len(quadTexCoords)),
		Indices:   make([]uint32, len(quadIndices)),
	}
	copy(g.Positions, quadPositions[:])
	copy(g.TexCoords, quadTexCoords[:])
	copy(g.Indices, quadIndices[:])
	return g
}

// VertexCount returns the number of vertices described by Positions.
func (g Geometry) VertexCount() int {
	return len(g.Positions) / positionSize
}

// Validate checks that the arrays describe whole vertices and
// triangles, and that every index refers to an existing vertex.
func (g Geometry) Validate() error {
	if len(g.Positions) == 0 || len(g.Positions)%positionSize != 0 {
		return fmt.Errorf("gpu: %d position components is not a multiple of %d", len(g.Positions), positionSize)
	}
	n := g.VertexCount()
	if exp := n * texCoordSize; len(g.TexCoords) != exp {
		return fmt.Errorf("gpu: got %d texture coordinate components, expected %d", len(g.TexCoords), exp)
	}
	if len(g.Indices) == 0 || len(g.Indices)%3 != 0 {
		return fmt.Errorf("gpu: %d indices do not form whole triangles", len(g.Indices))
	}
	for i, idx := range g.Indices {
		if int(idx) >= n {
			return fmt.Errorf("gpu: index %d at %d out of range for %d vertices", idx, i, n)
		}
	}
	return nil
}
