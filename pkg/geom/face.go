package geom

import (
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// up is the reference direction for orientation classification.
var up = v3.Vec{X: 0, Y: 0, Z: 1}

// Normal computes the unit normal of the face from its first three
// vertices. Faces with fewer than three vertices, or whose first three
// vertices are collinear within cfg.Epsilon, get the canonical up
// vector instead of an error; callers tolerate the skew this gives
// degenerate faces.
func (f *Face) Normal(vertices []Vertex, cfg Config) v3.Vec {
	if len(f.VertexIDs) < 3 {
		return up
	}

	p0 := vertices[f.VertexIDs[0]].Pos
	p1 := vertices[f.VertexIDs[1]].Pos
	p2 := vertices[f.VertexIDs[2]].Pos

	n := p1.Sub(p0).Cross(p2.Sub(p0))
	if n.Length() < cfg.Epsilon {
		return up
	}
	return n.Normalize()
}

// ZRange returns the minimum and maximum Z over the face's vertices,
// or (0, 0) for a face with no vertices.
func (f *Face) ZRange(vertices []Vertex) (minZ, maxZ float64) {
	if len(f.VertexIDs) == 0 {
		return 0, 0
	}

	minZ = vertices[f.VertexIDs[0]].Pos.Z
	maxZ = minZ
	for _, id := range f.VertexIDs {
		z := vertices[id].Pos.Z
		if z < minZ {
			minZ = z
		}
		if z > maxZ {
			maxZ = z
		}
	}
	return minZ, maxZ
}

// Height returns the vertical extent of the face (maxZ - minZ).
func (f *Face) Height(vertices []Vertex) float64 {
	minZ, maxZ := f.ZRange(vertices)
	return maxZ - minZ
}

// ProjectedArea returns the area of the face projected onto the XY
// plane. Polygons beyond triangles are fan-triangulated from vertex 0,
// which is exact only for convex near-planar rings in consistent
// winding; non-convex footprints may partially cancel.
func (f *Face) ProjectedArea(vertices []Vertex) float64 {
	if len(f.VertexIDs) < 3 {
		return 0
	}

	p0 := vertices[f.VertexIDs[0]].Pos
	total := 0.0
	for i := 1; i < len(f.VertexIDs)-1; i++ {
		p1 := vertices[f.VertexIDs[i]].Pos
		p2 := vertices[f.VertexIDs[i+1]].Pos

		// Flatten both edge vectors onto z=0 before the cross product.
		e1 := v3.Vec{X: p1.X - p0.X, Y: p1.Y - p0.Y}
		e2 := v3.Vec{X: p2.X - p0.X, Y: p2.Y - p0.Y}
		total += e1.Cross(e2).Length() * 0.5
	}
	return total
}

// IsAdjacentTo reports whether the two faces share at least two vertex
// ids. This is an edge-sharing heuristic: two faces sharing two
// non-consecutive vertices still count as adjacent.
func (f *Face) IsAdjacentTo(other *Face) bool {
	shared := 0
	for _, id := range f.VertexIDs {
		for _, otherID := range other.VertexIDs {
			if id == otherID {
				shared++
				break
			}
		}
		if shared >= 2 {
			return true
		}
	}
	return false
}
