// SPDX-License-Identifier: MIT

package pcageo

import (
	"github.com/rs/zerolog"

	"github.com/rerapony/Nuke-KeenTools-sub003/pca"
)

// Option configures a Node at construction. Safe to apply repeatedly (last writer wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	knobs  Knobs
	logger zerolog.Logger
	fit    []pca.Option
}

// WithKnobs sets the initial knob values (clamped).
func WithKnobs(k Knobs) Option {
	return func(o *Options) { o.knobs = k.Clamp() }
}

// WithLogger sets the node logger. The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// WithSolver selects the eigensolver used by the fit; nil keeps the default.
func WithSolver(s pca.Solver) Option {
	return func(o *Options) { o.fit = append(o.fit, pca.WithSolver(s)) }
}

// WithRankEpsilon sets the relative rank cut-off ε (default pca.DefaultEpsilon).
// Panics like pca.WithEpsilon when eps is outside [0, 1).
func WithRankEpsilon(eps float64) Option {
	fo := pca.WithEpsilon(eps)

	return func(o *Options) { o.fit = append(o.fit, fo) }
}

func gatherOptions(user ...Option) Options {
	o := Options{knobs: DefaultKnobs(), logger: zerolog.Nop()}
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
