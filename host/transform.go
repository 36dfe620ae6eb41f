package host

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Identity4 returns a fresh 4×4 identity transform.
func Identity4() *mat.Dense {
	m := mat.NewDense(4, 4, nil)
	for i := 0; i < 4; i++ {
		m.Set(i, i, 1)
	}

	return m
}

// Translation4 returns the 4×4 column-vector transform translating by (x, y, z).
func Translation4(x, y, z float64) *mat.Dense {
	m := Identity4()
	m.Set(0, 3, x)
	m.Set(1, 3, y)
	m.Set(2, 3, z)

	return m
}

// PostTranslate returns t × Translation4(x, y, z): the translation is applied
// in the object's local frame, before t.
func PostTranslate(t mat.Matrix, x, y, z float64) *mat.Dense {
	var out mat.Dense
	out.Mul(t, Translation4(x, y, z))

	return &out
}

// Apply4 maps a point through a 4×4 column-vector transform (w = 1).
func Apply4(t mat.Matrix, v r3.Vec) r3.Vec {
	p := mat.NewVecDense(4, []float64{v.X, v.Y, v.Z, 1})
	var q mat.VecDense
	q.MulVec(t, p)
	w := q.AtVec(3)
	if w == 0 {
		w = 1
	}

	return r3.Vec{X: q.AtVec(0) / w, Y: q.AtVec(1) / w, Z: q.AtVec(2) / w}
}
