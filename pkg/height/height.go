// Package height reduces the roof faces of a classified model to one
// representative target elevation for the flat-roof extrusion.
//
// Two estimator contracts are supported. The default is the projected
// area weighted mean of roof z-midpoints. The alternative is an area
// weighted percentile of the same midpoints (p=0.7 by default,
// following the 3DBAG convention), for callers that want the roof of a
// gabled building biased toward the ridge rather than split down the
// middle.
package height

import (
	"sort"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat"

	"github.com/chazu/lodconv/pkg/geom"
)

// Mode selects the estimator contract.
type Mode int

const (
	// ModeWeightedMean is the area-weighted mean of roof z-midpoints.
	ModeWeightedMean Mode = iota
	// ModePercentile is the area-weighted percentile
	// (cfg.RoofHeightPercentile) of roof z-midpoints.
	ModePercentile
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	if m == ModePercentile {
		return "percentile"
	}
	return "weighted-mean"
}

// Estimate computes the target elevation from the classified model.
// Pure query: the model is never mutated. When the total projected
// roof area is below cfg.Epsilon (no roof faces, or all degenerate)
// it falls back to the maximum Z over all faces. A non-positive
// result signals an unusable mesh and must be treated as fatal by the
// caller.
func Estimate(m *geom.Model, cfg geom.Config, mode Mode) float64 {
	var mids, areas []float64
	totalArea := 0.0

	for i := range m.Faces {
		f := &m.Faces[i]
		if f.Surface != geom.SurfaceRoof {
			continue
		}
		area := f.ProjectedArea(m.Vertices)
		minZ, maxZ := f.ZRange(m.Vertices)

		mids = append(mids, (minZ+maxZ)/2)
		areas = append(areas, area)
		totalArea += area
	}
	log.Debugf("height estimate (%s): %d roof faces, total projected area %g", mode, len(mids), totalArea)

	if totalArea <= cfg.Epsilon {
		return maxElevation(m)
	}

	if mode == ModePercentile {
		return weightedQuantile(cfg.RoofHeightPercentile, mids, areas)
	}

	sum := 0.0
	for i, mid := range mids {
		sum += areas[i] * mid
	}
	return sum / totalArea
}

// maxElevation returns the highest Z reached by any face, or 0 for a
// model without faces.
func maxElevation(m *geom.Model) float64 {
	maxH := 0.0
	for i := range m.Faces {
		if _, maxZ := m.Faces[i].ZRange(m.Vertices); maxZ > maxH {
			maxH = maxZ
		}
	}
	return maxH
}

// weightedQuantile sorts the midpoints (keeping weights aligned) and
// evaluates the empirical weighted quantile.
func weightedQuantile(p float64, mids, areas []float64) float64 {
	idx := make([]int, len(mids))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return mids[idx[a]] < mids[idx[b]] })

	sorted := make([]float64, len(mids))
	weights := make([]float64, len(mids))
	for i, j := range idx {
		sorted[i] = mids[j]
		weights[i] = areas[j]
	}
	return stat.Quantile(p, stat.Empirical, sorted, weights)
}
