// Package classify labels every face of a model as ground, wall or
// roof from its orientation and elevation. Classification runs in two
// passes: ground first (so the wall/roof pass only sees the
// remainder), and each face is labeled exactly once.
package classify

import (
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"
	log "github.com/sirupsen/logrus"

	"github.com/chazu/lodconv/pkg/geom"
)

var up = v3.Vec{X: 0, Y: 0, Z: 1}

// Surfaces classifies every face in the model. After it returns no
// face is left SurfaceUnknown. The model's vertex and face lists are
// not restructured, only the Surface labels change.
func Surfaces(m *geom.Model, cfg geom.Config) {
	markGround(m, cfg)

	for i := range m.Faces {
		f := &m.Faces[i]
		if f.Surface != geom.SurfaceUnknown {
			continue
		}

		dot := math.Abs(f.Normal(m.Vertices, cfg).Dot(up))
		if dot < cfg.WallAngleThreshold {
			// Normal nearly perpendicular to up: the face itself is
			// vertical, hence a wall.
			f.Surface = geom.SurfaceWall
		} else {
			f.Surface = geom.SurfaceRoof
		}
	}

	log.Debugf("classified surfaces: %d ground, %d wall, %d roof",
		m.CountBySurface(geom.SurfaceGround),
		m.CountBySurface(geom.SurfaceWall),
		m.CountBySurface(geom.SurfaceRoof))
}

// markGround labels the ground faces: near-horizontal faces whose
// lowest vertex sits within cfg.GroundHeightThreshold of the global
// minimum Z. The band assumption breaks down for terraced ground; that
// is a known heuristic limit, not a bug to patch here.
func markGround(m *geom.Model, cfg geom.Config) {
	if len(m.Faces) == 0 {
		return
	}

	minZ, _ := m.Faces[0].ZRange(m.Vertices)
	for i := range m.Faces {
		if z, _ := m.Faces[i].ZRange(m.Vertices); z < minZ {
			minZ = z
		}
	}
	log.Debugf("global minimum z: %g", minZ)

	for i := range m.Faces {
		f := &m.Faces[i]
		dot := math.Abs(f.Normal(m.Vertices, cfg).Dot(up))
		faceMinZ, _ := f.ZRange(m.Vertices)

		if dot > 1-cfg.WallAngleThreshold && math.Abs(faceMinZ-minZ) < cfg.GroundHeightThreshold {
			f.Surface = geom.SurfaceGround
		}
	}
}
