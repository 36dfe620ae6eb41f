// Package memhost is an in-memory host for geometry nodes: meshes with
// faces, attributes and a 4×4 transform, geometry lists, an xxhash-backed
// rolling hash, a knob table and an error sink. It backs the tests and the
// pcageo command.
package memhost

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/rerapony/Nuke-KeenTools-sub003/host"
)

// Sentinel errors.
var (
	// ErrPointCount indicates SetPoints with a length different from NumPoints.
	ErrPointCount = errors.New("memhost: point count mismatch")

	// ErrForeignObject indicates a template object not created by this package.
	ErrForeignObject = errors.New("memhost: object does not belong to memhost")

	// ErrBadTransform indicates a transform that is not 4×4.
	ErrBadTransform = errors.New("memhost: transform must be 4x4")

	// ErrUnknownKnob indicates Set on a knob name that was never registered.
	ErrUnknownKnob = errors.New("memhost: unknown knob")

	// ErrKnobType indicates Set with a value of the wrong kind.
	ErrKnobType = errors.New("memhost: wrong knob value type")
)

// Scope tells whether an attribute has one tuple per point or per face.
type Scope int

const (
	PointScope Scope = iota
	FaceScope
)

// Attribute is a named, fixed-width float tuple per point or per face.
type Attribute struct {
	Name   string
	Scope  Scope
	Width  int
	Values []float64 // len == Width × (points or faces)
}

// Mesh is a polygon mesh: points, faces indexing into points, attributes and
// an object transform (nil means identity).
type Mesh struct {
	Name       string
	Points     []r3.Vec
	Faces      [][]int
	Attributes []Attribute
	Transform  *mat.Dense
}

// Clone returns a deep copy of m.
func (m *Mesh) Clone() *Mesh {
	out := &Mesh{Name: m.Name, Points: append([]r3.Vec(nil), m.Points...)}
	out.Faces = cloneFaces(m.Faces)
	out.Attributes = cloneAttributes(m.Attributes)
	if m.Transform != nil {
		out.Transform = mat.DenseCopyOf(m.Transform)
	}

	return out
}

// WorldPoints returns the points mapped through the object transform.
func (m *Mesh) WorldPoints() []r3.Vec {
	out := make([]r3.Vec, len(m.Points))
	for i, p := range m.Points {
		if m.Transform == nil {
			out[i] = p
			continue
		}
		out[i] = host.Apply4(m.Transform, p)
	}

	return out
}

// Validate checks face indices and attribute lengths.
func (m *Mesh) Validate() error {
	for f, face := range m.Faces {
		for _, idx := range face {
			if idx < 0 || idx >= len(m.Points) {
				return fmt.Errorf("memhost: face %d references point %d of %d", f, idx, len(m.Points))
			}
		}
	}
	for _, a := range m.Attributes {
		n := len(m.Points)
		if a.Scope == FaceScope {
			n = len(m.Faces)
		}
		if a.Width <= 0 || len(a.Values) != a.Width*n {
			return fmt.Errorf("memhost: attribute %q has %d values, want %d×%d", a.Name, len(a.Values), a.Width, n)
		}
	}

	return nil
}

// AppendHash appends points, faces, attributes and transform to h.
func (m *Mesh) AppendHash(h host.Hash) {
	h.AppendInt(len(m.Points))
	for _, p := range m.Points {
		h.AppendFloat(p.X)
		h.AppendFloat(p.Y)
		h.AppendFloat(p.Z)
	}
	h.AppendInt(len(m.Faces))
	for _, face := range m.Faces {
		h.AppendInt(len(face))
		for _, idx := range face {
			h.AppendInt(idx)
		}
	}
	h.AppendInt(len(m.Attributes))
	for _, a := range m.Attributes {
		h.AppendUint64(stringHash(a.Name))
		h.AppendInt(int(a.Scope))
		h.AppendInt(a.Width)
		for _, v := range a.Values {
			h.AppendFloat(v)
		}
	}
	h.AppendBool(m.Transform != nil)
	if m.Transform != nil {
		for _, v := range m.Transform.RawMatrix().Data {
			h.AppendFloat(v)
		}
	}
}

func cloneFaces(faces [][]int) [][]int {
	if faces == nil {
		return nil
	}
	out := make([][]int, len(faces))
	for i, f := range faces {
		out[i] = append([]int(nil), f...)
	}

	return out
}

func cloneAttributes(attrs []Attribute) []Attribute {
	if attrs == nil {
		return nil
	}
	out := make([]Attribute, len(attrs))
	for i, a := range attrs {
		out[i] = a
		out[i].Values = append([]float64(nil), a.Values...)
	}

	return out
}
