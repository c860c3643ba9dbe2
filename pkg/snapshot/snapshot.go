// Package snapshot implements the convert.Visualizer interface by
// dumping pipeline checkpoints as STL files, one per checkpoint label.
// The snapshots are a debugging side channel only; the conversion
// output never depends on them.
package snapshot

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"

	"github.com/chazu/lodconv/pkg/convert"
	"github.com/chazu/lodconv/pkg/geom"
)

// Compile-time interface check.
var _ convert.Visualizer = (*STL)(nil)

// STL writes one binary STL file per rendered checkpoint into Dir.
type STL struct {
	Dir string
}

// New returns an STL visualizer writing into dir, creating it if
// needed.
func New(dir string) (*STL, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("snapshot dir %s: %w", dir, err)
	}
	return &STL{Dir: dir}, nil
}

// Render fan-triangulates every face of the model into a triangle
// soup and saves it as <label>.stl in the snapshot directory.
func (s *STL) Render(m *geom.Model, label string) error {
	var triangles []*sdf.Triangle3

	for i := range m.Faces {
		ids := m.Faces[i].VertexIDs
		for j := 1; j < len(ids)-1; j++ {
			triangles = append(triangles, &sdf.Triangle3{
				m.Vertices[ids[0]].Pos,
				m.Vertices[ids[j]].Pos,
				m.Vertices[ids[j+1]].Pos,
			})
		}
	}

	path := filepath.Join(s.Dir, fileName(label))
	if err := render.SaveSTL(path, triangles); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func fileName(label string) string {
	return strings.ReplaceAll(strings.ToLower(label), " ", "_") + ".stl"
}
