// This file is part of Embr.
//
// Embr is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Embr is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Embr.  If not, see <https://www.gnu.org/licenses/>.

// Package mesh builds simple geometry as vbo.Vbo instances.
//
// Attribute locations are as reported by the program the mesh is drawn
// with. A negative location means that the program does not use the
// attribute.
package mesh

import (
	"github.com/jetsetilly/embr/gpu"
	"github.com/jetsetilly/embr/vbo"
)

// PlaneData returns the vertex positions and texture coordinates of a plane
// in the z=0 plane with corners (x1, y1) and (x2, y2). The vertices are in
// triangle strip order.
func PlaneData(x1, y1, x2, y2 float32) (vertices []float32, texcoords []float32) {
	vertices = []float32{
		x1, y1, 0,
		x1, y2, 0,
		x2, y1, 0,
		x2, y2, 0,
	}
	texcoords = []float32{
		0, 0,
		0, 1,
		1, 0,
		1, 1,
	}
	return vertices, texcoords
}

// Plane creates a Vbo for the plane described by PlaneData(). It is drawn as
// a triangle strip of four vertices.
func Plane(ctx gpu.Context, x1, y1, x2, y2 float32, locVertex int32, locTexCoord int32) *vbo.Vbo {
	vertices, texcoords := PlaneData(x1, y1, x2, y2)
	return vbo.New(ctx, gpu.TRIANGLE_STRIP, gpu.STATIC_DRAW, []vbo.Attribute{
		{Data: vertices, Size: 3, Location: locVertex},
		{Data: texcoords, Size: 2, Location: locTexCoord},
	}, nil)
}

// CubeData returns the geometry of a cube centered on the origin and
// extending sx, sy and sz in each direction along the respective axis.
//
// Each face has its own four vertices so that normals and texture
// coordinates are per face. Faces are in the order +X, +Y, +Z, -X, -Y, -Z.
func CubeData(sx, sy, sz float32) (vertices []float32, normals []float32, texcoords []float32, indices []uint16) {
	vertices = []float32{
		sx, sy, sz, sx, -sy, sz, sx, -sy, -sz, sx, sy, -sz, // +X
		sx, sy, sz, sx, sy, -sz, -sx, sy, -sz, -sx, sy, sz, // +Y
		sx, sy, sz, -sx, sy, sz, -sx, -sy, sz, sx, -sy, sz, // +Z
		-sx, sy, sz, -sx, sy, -sz, -sx, -sy, -sz, -sx, -sy, sz, // -X
		-sx, -sy, -sz, sx, -sy, -sz, sx, -sy, sz, -sx, -sy, sz, // -Y
		sx, -sy, -sz, -sx, -sy, -sz, -sx, sy, -sz, sx, sy, -sz, // -Z
	}

	normals = make([]float32, 0, len(vertices))
	for _, n := range [6][3]float32{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
		{-1, 0, 0},
		{0, -1, 0},
		{0, 0, -1},
	} {
		for i := 0; i < 4; i++ {
			normals = append(normals, n[:]...)
		}
	}

	texcoords = []float32{
		0, 1, 1, 1, 1, 0, 0, 0,
		1, 1, 1, 0, 0, 0, 0, 1,
		0, 1, 1, 1, 1, 0, 0, 0,
		1, 1, 1, 0, 0, 0, 0, 1,
		1, 0, 0, 0, 0, 1, 1, 1,
		1, 0, 0, 0, 0, 1, 1, 1,
	}

	// two triangles per face
	indices = make([]uint16, 0, 36)
	for f := uint16(0); f < 6; f++ {
		i := f * 4
		indices = append(indices, i, i+1, i+2, i, i+2, i+3)
	}

	return vertices, normals, texcoords, indices
}

// Cube creates a Vbo for the cube described by CubeData(). It is drawn as
// indexed triangles.
func Cube(ctx gpu.Context, sx, sy, sz float32, locVertex int32, locNormal int32, locTexCoord int32) *vbo.Vbo {
	vertices, normals, texcoords, indices := CubeData(sx, sy, sz)
	return vbo.New(ctx, gpu.TRIANGLES, gpu.STATIC_DRAW, []vbo.Attribute{
		{Data: vertices, Size: 3, Location: locVertex},
		{Data: normals, Size: 3, Location: locNormal},
		{Data: texcoords, Size: 2, Location: locTexCoord},
	}, indices)
}
