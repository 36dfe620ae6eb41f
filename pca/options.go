// SPDX-License-Identifier: MIT

package pca

import "math"

// ---------- Defaults (single source of truth) ----------

// DefaultEpsilon is the relative rank cut-off: λⱼ must exceed ε·λ₁ to count.
const DefaultEpsilon = 1e-6

const panicEpsilonInvalid = "pca: WithEpsilon: eps must be finite and in [0, 1)"

// Option mutates fit options. Safe to apply repeatedly (last writer wins).
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	eps    float64 // relative rank cut-off
	solver Solver  // eigensolver for the Gram matrix
}

// WithEpsilon sets the relative rank cut-off ε.
// Panics when eps is NaN, ±Inf, negative or ≥ 1.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 || eps >= 1 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithSolver selects the eigensolver. A nil solver restores the default.
func WithSolver(s Solver) Option {
	return func(o *Options) {
		if s == nil {
			s = GonumSolver{}
		}
		o.solver = s
	}
}

// gatherOptions applies user setters on top of the defaults.
func gatherOptions(user ...Option) Options {
	o := Options{eps: DefaultEpsilon, solver: GonumSolver{}}
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
