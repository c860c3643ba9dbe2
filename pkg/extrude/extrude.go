// Package extrude lifts ordered footprint boundary loops to a target
// elevation, generating the wall ring and flat roof cap of the
// prismatic output model.
package extrude

import (
	v3 "github.com/deadsy/sdfx/vec/v3"
	log "github.com/sirupsen/logrus"

	"github.com/chazu/lodconv/pkg/geom"
)

// Loops extrudes each boundary loop of the pruned ground model to
// targetHeight. For every boundary vertex a top vertex is appended at
// (x, y, targetHeight); each consecutive loop pair gets one wall quad
// [bottom_i, bottom_i+1, top_i+1, top_i], and each loop gets one roof
// cap over its full top ring. Adjacency is rebuilt before returning,
// so the model leaves in a structurally consistent state.
func Loops(m *geom.Model, loops [][]int, targetHeight float64) {
	for _, loop := range loops {
		// A loop needs at least a triangle; shorter fragments (a lone
		// boundary edge from non-manifold input) would extrude into
		// degenerate walls and an invalid 2-vertex cap.
		if len(loop) < 3 {
			log.Warnf("skipping boundary fragment of %d vertices", len(loop))
			continue
		}

		topIDs := make([]int, len(loop))
		for i, bottomID := range loop {
			bottom := m.Vertices[bottomID].Pos
			id := len(m.Vertices)
			m.Vertices = append(m.Vertices, geom.Vertex{
				ID:  id,
				Pos: v3.Vec{X: bottom.X, Y: bottom.Y, Z: targetHeight},
			})
			topIDs[i] = id
		}

		for i := range loop {
			next := (i + 1) % len(loop)
			wall := geom.NewFace([]int{loop[i], loop[next], topIDs[next], topIDs[i]})
			wall.Surface = geom.SurfaceWall
			m.Faces = append(m.Faces, wall)
		}

		roof := geom.NewFace(topIDs)
		roof.Surface = geom.SurfaceRoof
		m.Faces = append(m.Faces, roof)
	}

	m.BuildAdjacency()
	log.Debugf("extruded %d loop(s) to height %g: %d faces, %d vertices",
		len(loops), targetHeight, len(m.Faces), len(m.Vertices))
}
