package geom

import "fmt"

// BuildAdjacency recomputes the adjacency lists of every face with an
// all-pairs scan. O(F²) in face count, which is acceptable for single
// building meshes. Must be called again after any structural change to
// the face list (pruning, extrusion); adjacency entries are indices
// into Model.Faces and go stale otherwise.
func (m *Model) BuildAdjacency() {
	for i := range m.Faces {
		m.Faces[i].Adjacent = nil
	}
	for i := range m.Faces {
		for j := range m.Faces {
			if i != j && m.Faces[i].IsAdjacentTo(&m.Faces[j]) {
				m.Faces[i].Adjacent = append(m.Faces[i].Adjacent, j)
			}
		}
	}
}

// Validate checks the referential invariant: every vertex id used by
// every face indexes an existing vertex, every vertex carries its own
// index as id, and every face has at least three vertices.
func (m *Model) Validate() error {
	for i, v := range m.Vertices {
		if v.ID != i {
			return fmt.Errorf("vertex at index %d has id %d", i, v.ID)
		}
	}
	for i := range m.Faces {
		f := &m.Faces[i]
		if len(f.VertexIDs) < 3 {
			return fmt.Errorf("face %d has %d vertices, need at least 3", i, len(f.VertexIDs))
		}
		for _, id := range f.VertexIDs {
			if id < 0 || id >= len(m.Vertices) {
				return fmt.Errorf("face %d references vertex %d, model has %d vertices", i, id, len(m.Vertices))
			}
		}
	}
	return nil
}
