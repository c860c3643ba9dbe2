package footprint_test

import (
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/google/go-cmp/cmp"

	"github.com/chazu/lodconv/pkg/footprint"
	"github.com/chazu/lodconv/pkg/geom"
)

func groundFace(ids ...int) geom.Face {
	f := geom.NewFace(ids)
	f.Surface = geom.SurfaceGround
	return f
}

// classifiedBox is a 1x1 box with labeled ground, walls and roof.
func classifiedBox() *geom.Model {
	pts := [][3]float64{
		{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
		{0, 0, 2}, {1, 0, 2}, {1, 1, 2}, {0, 1, 2},
	}
	vs := make([]geom.Vertex, len(pts))
	for i, p := range pts {
		vs[i] = geom.Vertex{ID: i, Pos: v3.Vec{X: p[0], Y: p[1], Z: p[2]}}
	}
	wall := func(ids ...int) geom.Face {
		f := geom.NewFace(ids)
		f.Surface = geom.SurfaceWall
		return f
	}
	roof := geom.NewFace([]int{4, 5, 6, 7})
	roof.Surface = geom.SurfaceRoof

	faces := []geom.Face{
		groundFace(0, 3, 2, 1),
		wall(0, 1, 5, 4), wall(1, 2, 6, 5), wall(2, 3, 7, 6), wall(3, 0, 4, 7),
		roof,
	}
	return geom.NewModel(vs, faces)
}

func TestPrune(t *testing.T) {
	m := classifiedBox()
	footprint.Prune(m)

	if len(m.Faces) != 1 {
		t.Fatalf("face count after prune = %d, want 1", len(m.Faces))
	}
	if len(m.Vertices) != 4 {
		t.Fatalf("vertex count after prune = %d, want 4", len(m.Vertices))
	}
	if err := m.Validate(); err != nil {
		t.Fatalf("pruned model invalid: %v", err)
	}

	// Remapping is ascending old-id order, so the ground ring 0,3,2,1
	// keeps its ids.
	if diff := cmp.Diff([]int{0, 3, 2, 1}, m.Faces[0].VertexIDs); diff != "" {
		t.Errorf("remapped ring mismatch (-want +got):\n%s", diff)
	}
}

func TestPruneRebuildsAdjacency(t *testing.T) {
	// Before pruning, the ground face of the box is adjacent to all
	// four walls. Those face indices die with the walls, so every
	// surviving Adjacent entry must index into the new face list.
	m := classifiedBox()
	if len(m.Faces[0].Adjacent) != 4 {
		t.Fatalf("ground adjacency before prune = %v, want 4 walls", m.Faces[0].Adjacent)
	}

	footprint.Prune(m)
	for i := range m.Faces {
		for _, j := range m.Faces[i].Adjacent {
			if j < 0 || j >= len(m.Faces) {
				t.Errorf("face %d adjacency %v references face %d, model has %d face(s)",
					i, m.Faces[i].Adjacent, j, len(m.Faces))
			}
		}
	}
	// The lone ground face has nothing left to be adjacent to.
	if len(m.Faces[0].Adjacent) != 0 {
		t.Errorf("ground adjacency after prune = %v, want none", m.Faces[0].Adjacent)
	}
}

func TestPruneKeepsAdjacencyBetweenGroundFaces(t *testing.T) {
	// Two ground quads sharing an edge plus a wall: after pruning the
	// wall, the quads stay adjacent to each other under their new
	// indices.
	pts := [][3]float64{
		{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
		{2, 0, 0}, {2, 1, 0},
		{0, 0, 2}, {1, 0, 2},
	}
	vs := make([]geom.Vertex, len(pts))
	for i, p := range pts {
		vs[i] = geom.Vertex{ID: i, Pos: v3.Vec{X: p[0], Y: p[1], Z: p[2]}}
	}
	wall := geom.NewFace([]int{0, 1, 7, 6})
	wall.Surface = geom.SurfaceWall
	m := geom.NewModel(vs, []geom.Face{
		wall,
		groundFace(0, 1, 2, 3),
		groundFace(1, 4, 5, 2),
	})

	footprint.Prune(m)
	if len(m.Faces) != 2 {
		t.Fatalf("face count after prune = %d, want 2", len(m.Faces))
	}
	if diff := cmp.Diff([]int{1}, m.Faces[0].Adjacent); diff != "" {
		t.Errorf("face 0 adjacency mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{0}, m.Faces[1].Adjacent); diff != "" {
		t.Errorf("face 1 adjacency mismatch (-want +got):\n%s", diff)
	}
}

func TestPruneIdempotent(t *testing.T) {
	m := classifiedBox()
	footprint.Prune(m)
	wantV, wantF := len(m.Vertices), len(m.Faces)

	footprint.Prune(m)
	if len(m.Vertices) != wantV || len(m.Faces) != wantF {
		t.Errorf("second prune changed counts: %d/%d -> %d/%d",
			wantV, wantF, len(m.Vertices), len(m.Faces))
	}
	if err := m.Validate(); err != nil {
		t.Errorf("model invalid after double prune: %v", err)
	}
}

func TestPruneRemapsHighIDs(t *testing.T) {
	// Ground face referencing sparse surviving ids 2, 5, 7.
	pts := [][3]float64{
		{9, 9, 9}, {9, 9, 9}, {0, 0, 0}, {9, 9, 9},
		{9, 9, 9}, {1, 0, 0}, {9, 9, 9}, {0, 1, 0},
	}
	vs := make([]geom.Vertex, len(pts))
	for i, p := range pts {
		vs[i] = geom.Vertex{ID: i, Pos: v3.Vec{X: p[0], Y: p[1], Z: p[2]}}
	}
	m := geom.NewModel(vs, []geom.Face{groundFace(2, 5, 7)})

	footprint.Prune(m)
	if diff := cmp.Diff([]int{0, 1, 2}, m.Faces[0].VertexIDs); diff != "" {
		t.Errorf("remap mismatch (-want +got):\n%s", diff)
	}
	if m.Vertices[1].Pos.X != 1 {
		t.Errorf("vertex order not preserved by remap: %+v", m.Vertices)
	}
}

func TestBoundaryEdgesSingleQuad(t *testing.T) {
	m := classifiedBox()
	footprint.Prune(m)

	edges := footprint.BoundaryEdges(m)
	want := []footprint.Edge{{A: 0, B: 1}, {A: 0, B: 3}, {A: 1, B: 2}, {A: 2, B: 3}}
	if diff := cmp.Diff(want, edges); diff != "" {
		t.Errorf("boundary edges mismatch (-want +got):\n%s", diff)
	}
}

func TestBoundaryEdgesSharedEdgeInterior(t *testing.T) {
	// Two quads sharing edge (1,2): the shared edge is interior.
	pts := [][3]float64{
		{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
		{2, 0, 0}, {2, 1, 0},
	}
	vs := make([]geom.Vertex, len(pts))
	for i, p := range pts {
		vs[i] = geom.Vertex{ID: i, Pos: v3.Vec{X: p[0], Y: p[1], Z: p[2]}}
	}
	m := geom.NewModel(vs, []geom.Face{
		groundFace(0, 1, 2, 3),
		groundFace(1, 4, 5, 2),
	})

	edges := footprint.BoundaryEdges(m)
	if len(edges) != 6 {
		t.Fatalf("boundary edge count = %d, want 6", len(edges))
	}
	for _, e := range edges {
		if e == (footprint.Edge{A: 1, B: 2}) {
			t.Error("interior edge (1,2) reported as boundary")
		}
	}
}

func TestLoopsSingleRing(t *testing.T) {
	edges := []footprint.Edge{
		{A: 0, B: 1}, {A: 0, B: 3}, {A: 1, B: 2}, {A: 2, B: 3},
	}
	loops := footprint.Loops(edges)
	if len(loops) != 1 {
		t.Fatalf("loop count = %d, want 1", len(loops))
	}

	loop := loops[0]
	if len(loop) != 4 {
		t.Fatalf("loop length = %d, want 4", len(loop))
	}
	seen := make(map[int]bool)
	for _, v := range loop {
		if seen[v] {
			t.Errorf("vertex %d repeated in loop %v", v, loop)
		}
		seen[v] = true
	}
	for v := 0; v < 4; v++ {
		if !seen[v] {
			t.Errorf("vertex %d missing from loop %v", v, loop)
		}
	}

	// Consecutive loop vertices (including closure) must be joined by
	// an input edge.
	edgeSet := make(map[footprint.Edge]bool)
	for _, e := range edges {
		edgeSet[e] = true
	}
	for i := range loop {
		e := footprint.NewEdge(loop[i], loop[(i+1)%len(loop)])
		if !edgeSet[e] {
			t.Errorf("loop step %v-%v is not an input edge", loop[i], loop[(i+1)%len(loop)])
		}
	}
}

func TestLoopsDisconnectedComponents(t *testing.T) {
	// Two disjoint triangles must come back as two loops, not one
	// spliced ring.
	edges := []footprint.Edge{
		{A: 0, B: 1}, {A: 1, B: 2}, {A: 0, B: 2},
		{A: 10, B: 11}, {A: 11, B: 12}, {A: 10, B: 12},
	}
	loops := footprint.Loops(edges)
	if len(loops) != 2 {
		t.Fatalf("loop count = %d, want 2", len(loops))
	}
	for _, loop := range loops {
		if len(loop) != 3 {
			t.Errorf("component loop length = %d, want 3 (%v)", len(loop), loop)
		}
		low := loop[0] < 10
		for _, v := range loop {
			if (v < 10) != low {
				t.Errorf("loop %v mixes vertices from both components", loop)
			}
		}
	}
}

func TestLoopsEmpty(t *testing.T) {
	if loops := footprint.Loops(nil); loops != nil {
		t.Errorf("Loops(nil) = %v, want nil", loops)
	}
}
