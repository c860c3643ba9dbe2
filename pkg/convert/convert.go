// Package convert composes the lodconv pipeline: classify the
// surfaces of a LoD2.2 model, estimate one representative roof
// height, prune to the ground footprint and extrude it back into a
// flat-roofed LoD1.2 solid.
package convert

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/chazu/lodconv/pkg/classify"
	"github.com/chazu/lodconv/pkg/extrude"
	"github.com/chazu/lodconv/pkg/footprint"
	"github.com/chazu/lodconv/pkg/geom"
	"github.com/chazu/lodconv/pkg/height"
	"github.com/chazu/lodconv/pkg/obj"
)

// Domain errors. Both abort the conversion before any mutation of the
// face list, so a failed Run leaves the classified model intact.
var (
	// ErrNoGround means classification found no ground face to
	// extract a footprint from.
	ErrNoGround = errors.New("no ground surfaces found")
	// ErrNoHeight means the height estimate was non-positive: an
	// empty or degenerate mesh, or no usable elevation signal.
	ErrNoHeight = errors.New("no usable target height")
)

// Visualizer receives model snapshots at pipeline checkpoints. It is a
// pure side channel: render failures are logged and never influence
// the conversion result or status.
type Visualizer interface {
	Render(m *geom.Model, label string) error
}

// Options tunes a conversion run beyond the geometry thresholds.
type Options struct {
	// HeightMode selects the roof height estimator contract.
	HeightMode height.Mode
	// Visualizer, when non-nil, gets a snapshot after classification,
	// after pruning and after extrusion.
	Visualizer Visualizer
}

// Run transforms the model in place from LoD2.2 to LoD1.2. The model
// is trusted between stages; the only validation gates are the two
// domain assertions (ground exists, height positive).
func Run(m *geom.Model, cfg geom.Config, opts Options) error {
	log.Debugf("converting model: %d faces, %d vertices", len(m.Faces), len(m.Vertices))

	classify.Surfaces(m, cfg)
	snapshot(opts.Visualizer, m, "classified")

	if m.CountBySurface(geom.SurfaceGround) == 0 {
		return ErrNoGround
	}

	target := height.Estimate(m, cfg, opts.HeightMode)
	if target <= 0 {
		return fmt.Errorf("%w: estimate %g", ErrNoHeight, target)
	}
	log.Debugf("target height: %g", target)

	footprint.Prune(m)
	snapshot(opts.Visualizer, m, "footprint")

	loops := footprint.Loops(footprint.BoundaryEdges(m))
	extrude.Loops(m, loops, target)
	snapshot(opts.Visualizer, m, "extruded")

	log.Debugf("converted model: %d faces, %d vertices", len(m.Faces), len(m.Vertices))
	return nil
}

// File converts input to output on disk: load, run, save.
func File(inputPath, outputPath string, cfg geom.Config, opts Options) error {
	m, err := obj.Load(inputPath)
	if err != nil {
		return err
	}
	if err := Run(m, cfg, opts); err != nil {
		return fmt.Errorf("convert %s: %w", inputPath, err)
	}
	return obj.Save(m, outputPath, cfg)
}

func snapshot(v Visualizer, m *geom.Model, label string) {
	if v == nil {
		return
	}
	if err := v.Render(m, label); err != nil {
		log.Warnf("visualizer %q: %v", label, err)
	}
}
