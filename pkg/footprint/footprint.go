// Package footprint reduces a classified model to its ground
// footprint and recovers the ordered boundary loop(s) of that
// footprint from the unordered boundary edge set.
package footprint

import (
	"sort"

	log "github.com/sirupsen/logrus"

	"github.com/chazu/lodconv/pkg/geom"
)

// Edge is an undirected edge between two vertex ids, normalized so
// that A < B.
type Edge struct {
	A, B int
}

// NewEdge returns the normalized form of the edge (v1, v2).
func NewEdge(v1, v2 int) Edge {
	if v1 < v2 {
		return Edge{A: v1, B: v2}
	}
	return Edge{A: v2, B: v1}
}

// Prune drops every face that is not ground and compacts the vertex
// list to the vertices still referenced, remapping ids contiguously in
// ascending old-id order. The result satisfies the same referential
// invariant as a freshly loaded model, and pruning an already pruned
// model is a no-op.
func Prune(m *geom.Model) {
	kept := m.Faces[:0]
	for _, f := range m.Faces {
		if f.Surface == geom.SurfaceGround {
			kept = append(kept, f)
		}
	}
	m.Faces = kept

	used := make(map[int]bool)
	for i := range m.Faces {
		for _, id := range m.Faces[i].VertexIDs {
			used[id] = true
		}
	}

	oldIDs := make([]int, 0, len(used))
	for id := range used {
		oldIDs = append(oldIDs, id)
	}
	sort.Ints(oldIDs)

	remap := make(map[int]int, len(oldIDs))
	newVertices := make([]geom.Vertex, 0, len(oldIDs))
	for newID, oldID := range oldIDs {
		remap[oldID] = newID
		newVertices = append(newVertices, geom.Vertex{ID: newID, Pos: m.Vertices[oldID].Pos})
	}

	for i := range m.Faces {
		f := &m.Faces[i]
		for j, oldID := range f.VertexIDs {
			f.VertexIDs[j] = remap[oldID]
		}
	}
	m.Vertices = newVertices

	// The face list changed structurally, so the old adjacency indices
	// point at deleted faces.
	m.BuildAdjacency()

	log.Debugf("pruned to footprint: %d faces, %d vertices", len(m.Faces), len(m.Vertices))
}

// BoundaryEdges walks the vertex ring of every ground face as cyclic
// edges and returns the edges seen exactly once. Interior edges are
// shared by two faces and seen twice; an edge seen more than twice
// means a non-manifold footprint and gets no special handling. The
// result is sorted for determinism.
func BoundaryEdges(m *geom.Model) []Edge {
	count := make(map[Edge]int)

	for i := range m.Faces {
		f := &m.Faces[i]
		if f.Surface != geom.SurfaceGround {
			continue
		}
		n := len(f.VertexIDs)
		for j := 0; j < n; j++ {
			count[NewEdge(f.VertexIDs[j], f.VertexIDs[(j+1)%n])]++
		}
	}

	var boundary []Edge
	for e, c := range count {
		if c == 1 {
			boundary = append(boundary, e)
		}
	}
	sort.Slice(boundary, func(i, j int) bool {
		if boundary[i].A != boundary[j].A {
			return boundary[i].A < boundary[j].A
		}
		return boundary[i].B < boundary[j].B
	})
	return boundary
}

// Loops stitches boundary edges into ordered vertex loops, one loop
// per connected boundary component. Stitching is greedy: starting from
// an arbitrary edge, the loop is extended from its last vertex by
// consuming any remaining edge incident to it, in either orientation.
// When no continuing edge exists the current loop is closed and a new
// one starts from the next unconsumed edge; unrelated components are
// never spliced together. Within a loop, duplicate vertices are
// dropped preserving first-seen order, so each loop is a simple
// implicitly-closed ring.
func Loops(edges []Edge) [][]int {
	remaining := make([]Edge, len(edges))
	copy(remaining, edges)

	var loops [][]int
	for len(remaining) > 0 {
		first := remaining[0]
		remaining = remaining[1:]
		loop := []int{first.A, first.B}

		for {
			last := loop[len(loop)-1]
			found := false
			for i, e := range remaining {
				switch last {
				case e.A:
					loop = append(loop, e.B)
				case e.B:
					loop = append(loop, e.A)
				default:
					continue
				}
				remaining = append(remaining[:i], remaining[i+1:]...)
				found = true
				break
			}
			if !found {
				break
			}
		}

		loops = append(loops, dedupe(loop))
	}

	if len(loops) > 1 {
		log.Warnf("footprint boundary has %d disconnected components", len(loops))
	}
	return loops
}

// dedupe removes duplicate vertex occurrences preserving first-seen
// order. For a closed loop this strips the final return to the start.
func dedupe(loop []int) []int {
	seen := make(map[int]bool, len(loop))
	out := loop[:0]
	for _, v := range loop {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
