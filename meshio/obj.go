// Package meshio reads and writes memhost meshes as Wavefront OBJ.
//
// Supported records: o (object name), v (position; a fourth weight is
// ignored), f (polygon; v, v/vt, v//vn and v/vt/vn forms, 1-based or negative
// relative indices). Everything else (g, vt, vn, usemtl, s, mtllib, ...) is
// skipped. Only the first object of a file is kept. OBJ carries no object
// transform, so WriteOBJ can bake it into the positions.
package meshio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/rerapony/Nuke-KeenTools-sub003/host/memhost"
)

// ErrSyntax indicates a malformed OBJ record.
var ErrSyntax = errors.New("meshio: malformed OBJ")

type decoder struct {
	mesh    *memhost.Mesh
	line    int
	objects int
	done    bool
}

// ReadOBJ decodes the first object of an OBJ stream.
func ReadOBJ(r io.Reader) (*memhost.Mesh, error) {
	dec := &decoder{mesh: &memhost.Mesh{}}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		dec.line++
		if err := dec.parseLine(sc.Text()); err != nil {
			return nil, err
		}
		if dec.done {
			break
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("meshio: read: %w", err)
	}
	if err := dec.mesh.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}

	return dec.mesh, nil
}

func (dec *decoder) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrSyntax, dec.line, fmt.Sprintf(format, args...))
}

func (dec *decoder) parseLine(line string) error {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	switch fields[0] {
	case "o":
		// A second named object ends the first one.
		if dec.objects > 0 && (len(dec.mesh.Points) > 0 || len(dec.mesh.Faces) > 0) {
			dec.done = true
			return nil
		}
		dec.objects++
		if len(fields) > 1 {
			dec.mesh.Name = strings.Join(fields[1:], " ")
		}
	case "v":
		return dec.parseVertex(fields[1:])
	case "f":
		return dec.parseFace(fields[1:])
	}

	return nil
}

func (dec *decoder) parseVertex(fields []string) error {
	if len(fields) < 3 {
		return dec.errorf("vertex needs 3 coordinates, got %d", len(fields))
	}
	var c [3]float64
	for i := range c {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return dec.errorf("vertex coordinate %q", fields[i])
		}
		c[i] = v
	}
	dec.mesh.Points = append(dec.mesh.Points, r3.Vec{X: c[0], Y: c[1], Z: c[2]})

	return nil
}

func (dec *decoder) parseFace(fields []string) error {
	if len(fields) < 3 {
		return dec.errorf("face needs 3 vertices, got %d", len(fields))
	}
	face := make([]int, len(fields))
	n := len(dec.mesh.Points)
	for i, f := range fields {
		ref, _, _ := strings.Cut(f, "/")
		idx, err := strconv.Atoi(ref)
		if err != nil || idx == 0 {
			return dec.errorf("face index %q", f)
		}
		if idx < 0 {
			idx += n
		} else {
			idx--
		}
		if idx < 0 || idx >= n {
			return dec.errorf("face index %q out of range 1..%d", f, n)
		}
		face[i] = idx
	}
	dec.mesh.Faces = append(dec.mesh.Faces, face)

	return nil
}

// WriteOBJ encodes m as a single OBJ object. With bake the points are written
// in world space (through m.Transform); otherwise as stored.
func WriteOBJ(w io.Writer, m *memhost.Mesh, bake bool) error {
	bw := bufio.NewWriter(w)
	if m.Name != "" {
		fmt.Fprintf(bw, "o %s\n", m.Name)
	}
	pts := m.Points
	if bake {
		pts = m.WorldPoints()
	}
	for _, p := range pts {
		fmt.Fprintf(bw, "v %s %s %s\n", formatFloat(p.X), formatFloat(p.Y), formatFloat(p.Z))
	}
	for _, face := range m.Faces {
		bw.WriteString("f")
		for _, idx := range face {
			bw.WriteByte(' ')
			bw.WriteString(strconv.Itoa(idx + 1))
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// formatFloat prints the shortest representation that round-trips.
func formatFloat(v float64) string {
	if v == 0 {
		v = 0 // no "-0"
	}

	return strconv.FormatFloat(v, 'g', -1, 64)
}

// ReadFile reads the first object of the OBJ file at path. An unnamed object
// is named after the file.
func ReadFile(path string) (*memhost.Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := ReadOBJ(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if m.Name == "" {
		base := filepath.Base(path)
		m.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	return m, nil
}

// WriteFile writes m to path, creating or truncating it.
func WriteFile(path string, m *memhost.Mesh, bake bool) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return WriteOBJ(f, m, bake)
}
