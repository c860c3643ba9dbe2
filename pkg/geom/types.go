package geom

import (
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// SurfaceType classifies the orientation role of a face.
type SurfaceType int

const (
	// SurfaceUnknown is the zero value; every face starts here and
	// leaves it exactly once during classification.
	SurfaceUnknown SurfaceType = iota
	SurfaceGround
	SurfaceWall
	SurfaceRoof
)

// String returns a human-readable surface type name.
func (s SurfaceType) String() string {
	switch s {
	case SurfaceGround:
		return "ground"
	case SurfaceWall:
		return "wall"
	case SurfaceRoof:
		return "roof"
	default:
		return "unknown"
	}
}

// Vertex is a point in the model. IDs are dense, 0-based and unique
// within a Model; they double as indices into Model.Vertices.
type Vertex struct {
	ID  int
	Pos v3.Vec
}

// Face is a planar (or near-planar) polygon referencing vertices by id.
// Winding order matters only for the orientation sign of the normal.
type Face struct {
	VertexIDs []int
	Surface   SurfaceType
	Adjacent  []int // indices of adjacent faces in the owning Model
}

// NewFace creates an unclassified face from vertex ids.
func NewFace(vertexIDs []int) Face {
	return Face{VertexIDs: vertexIDs, Surface: SurfaceUnknown}
}

// Model owns a vertex list and a face list. Faces refer to vertices
// only by id, never by pointer, so the two lists can be rebuilt
// independently during pruning and extrusion.
type Model struct {
	Vertices []Vertex
	Faces    []Face
}

// NewModel builds a model from vertices and faces and computes the
// initial face adjacency.
func NewModel(vertices []Vertex, faces []Face) *Model {
	m := &Model{Vertices: vertices, Faces: faces}
	m.BuildAdjacency()
	return m
}

// CountBySurface returns the number of faces carrying the given label.
func (m *Model) CountBySurface(s SurfaceType) int {
	n := 0
	for i := range m.Faces {
		if m.Faces[i].Surface == s {
			n++
		}
	}
	return n
}
