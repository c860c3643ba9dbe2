// Package obj reads and writes the line-oriented OBJ text mesh format
// used by lodconv. Only `v` and `f` records are interpreted; comments,
// blank lines and any other leading token (normals, texcoords, groups)
// are skipped for forward compatibility.
package obj

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	v3 "github.com/deadsy/sdfx/vec/v3"
	log "github.com/sirupsen/logrus"

	"github.com/chazu/lodconv/pkg/geom"
)

// ParseError reports a malformed OBJ record with its 1-based line
// number.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// Load reads an OBJ file into a model.
func Load(path string) (*geom.Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	m, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return m, nil
}

// Read parses OBJ text into a model and builds the initial adjacency.
func Read(r io.Reader) (*geom.Model, error) {
	var vertices []geom.Vertex
	var faces []geom.Face

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			v, err := parseVertex(fields, lineNo, len(vertices))
			if err != nil {
				return nil, err
			}
			vertices = append(vertices, v)
		case "f":
			f, err := parseFace(fields, lineNo, len(vertices))
			if err != nil {
				return nil, err
			}
			faces = append(faces, f)
		default:
			// Normals, texcoords, groups and friends.
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}

	log.Debugf("parsed %d vertices and %d faces", len(vertices), len(faces))
	return geom.NewModel(vertices, faces), nil
}

func parseVertex(fields []string, lineNo, id int) (geom.Vertex, error) {
	if len(fields) < 4 {
		return geom.Vertex{}, &ParseError{Line: lineNo, Msg: "vertex needs 3 coordinates"}
	}

	var coords [3]float64
	for i := 0; i < 3; i++ {
		c, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return geom.Vertex{}, &ParseError{
				Line: lineNo,
				Msg:  fmt.Sprintf("invalid %c coordinate %q", "xyz"[i], fields[i+1]),
			}
		}
		coords[i] = c
	}
	return geom.Vertex{ID: id, Pos: v3.Vec{X: coords[0], Y: coords[1], Z: coords[2]}}, nil
}

func parseFace(fields []string, lineNo, vertexCount int) (geom.Face, error) {
	if len(fields) < 4 {
		return geom.Face{}, &ParseError{Line: lineNo, Msg: "face needs at least 3 vertices"}
	}

	ids := make([]int, 0, len(fields)-1)
	for _, field := range fields[1:] {
		// Strip any /texture/normal suffix.
		idxStr, _, _ := strings.Cut(field, "/")
		idx, err := strconv.Atoi(idxStr)
		if err != nil {
			return geom.Face{}, &ParseError{
				Line: lineNo,
				Msg:  fmt.Sprintf("invalid vertex index %q", idxStr),
			}
		}
		// OBJ indices are 1-based.
		if idx < 1 || idx > vertexCount {
			return geom.Face{}, &ParseError{
				Line: lineNo,
				Msg:  fmt.Sprintf("vertex index %d out of range [1, %d]", idx, vertexCount),
			}
		}
		ids = append(ids, idx-1)
	}
	return geom.NewFace(ids), nil
}

// Save writes the model to an OBJ file. No atomic-rename discipline:
// a failure mid-write can leave a truncated file behind.
func Save(m *geom.Model, path string, cfg geom.Config) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := Write(w, m, cfg); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// Write serializes the model as OBJ text. Vertices closer than
// cfg.Epsilon on every axis are merged into one output vertex, so the
// block is deduplicated; faces are rewritten against the merged ids,
// 1-based. The scan is O(V²), fine for single-building footprints.
func Write(w io.Writer, m *geom.Model, cfg geom.Config) error {
	if _, err := fmt.Fprintln(w, "# Converted LoD1.2 model"); err != nil {
		return err
	}

	var outVerts []v3.Vec
	var outFaces [][]int

	for i := range m.Faces {
		face := make([]int, 0, len(m.Faces[i].VertexIDs))
		for _, id := range m.Faces[i].VertexIDs {
			if id < 0 || id >= len(m.Vertices) {
				return errors.New("face references missing vertex")
			}
			p := m.Vertices[id].Pos
			idx := -1
			for j, existing := range outVerts {
				if near(existing.X, p.X, cfg.Epsilon) &&
					near(existing.Y, p.Y, cfg.Epsilon) &&
					near(existing.Z, p.Z, cfg.Epsilon) {
					idx = j
					break
				}
			}
			if idx < 0 {
				idx = len(outVerts)
				outVerts = append(outVerts, p)
			}
			face = append(face, idx)
		}
		outFaces = append(outFaces, face)
	}

	for _, v := range outVerts {
		if _, err := fmt.Fprintf(w, "v %g %g %g\n", v.X, v.Y, v.Z); err != nil {
			return err
		}
	}
	for _, face := range outFaces {
		if _, err := fmt.Fprint(w, "f"); err != nil {
			return err
		}
		for _, idx := range face {
			if _, err := fmt.Fprintf(w, " %d", idx+1); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

func near(a, b, eps float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < eps
}
