// SPDX-License-Identifier: MIT

package pcageo

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/rerapony/Nuke-KeenTools-sub003/host"
	"github.com/rerapony/Nuke-KeenTools-sub003/pca"
)

// Node registration.
const (
	ClassName = "PCAGeo"
	MinInputs = 2
	MaxInputs = 10
)

// Node is one PCAGeo instance bound to a host. All state is per instance;
// separate nodes may run concurrently.
type Node struct {
	mu       sync.Mutex
	inputs   host.Inputs
	reporter host.ErrorReporter
	knobs    Knobs
	log      zerolog.Logger
	fit      []pca.Option
	live     int // connected inputs seen by the last Validate
}

// Analysis is the numeric result of one run, before any geometry is written.
type Analysis struct {
	Slots  []int      // contributing input slots, one per sample
	Points int        // V
	Model  *pca.Model // fitted model
	K      int        // selected extreme count
	Knobs  Knobs      // knob values used
}

// New returns a node reading from inputs and reporting to reporter.
// reporter may be nil when the caller only wants returned errors.
func New(inputs host.Inputs, reporter host.ErrorReporter, opts ...Option) *Node {
	o := gatherOptions(opts...)

	return &Node{
		inputs:   inputs,
		reporter: reporter,
		knobs:    o.knobs,
		log:      o.logger.With().Str("node", ClassName).Logger(),
		fit:      o.fit,
	}
}

// Class returns the registered class name.
func (n *Node) Class() string { return ClassName }

// MinInputs returns the minimum input count advertised to the host.
func (n *Node) MinInputs() int { return MinInputs }

// MaxInputs returns the maximum input count advertised to the host.
func (n *Node) MaxInputs() int { return MaxInputs }

// Knobs returns the current knob values, clamped.
func (n *Node) Knobs() Knobs {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.knobs.Clamp()
}

// SetKnobs replaces every knob value (clamped).
func (n *Node) SetKnobs(k Knobs) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.knobs = k.Clamp()
}

// RegisterKnobs binds the knob fields to host controls. The host writes user
// edits directly into the node under the node's lock; Knobs() and the engine
// clamp on read.
func (n *Node) RegisterKnobs(r host.KnobRegistrar) {
	r.Guard(&n.mu)
	r.Int(KnobMinComponents, &n.knobs.MinComponents, MinComponentsLo, MinComponentsHi)
	r.Float(KnobVarianceThreshold, &n.knobs.VarianceThreshold, 0, 1)
	r.Bool(KnobPrettyShow, &n.knobs.PrettyShow)
	r.Float(KnobDeltaX, &n.knobs.DeltaX, 0, maxDeltaX)
}

// Inputs returns the number of connected inputs seen by the last Validate.
func (n *Node) Inputs() int {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.live
}

// Validate re-counts connected inputs, validates each of them and appends to
// h everything the output depends on: the contributing slots with their
// upstream hashes, then n_pca, variance_threshold, pretty_show and delta_x.
// No other state reaches the hash.
//
// Errors: *UpstreamError (reported to the host).
func (n *Node) Validate(ctx context.Context, h host.Hash) error {
	slots := connected(n.inputs)
	n.mu.Lock()
	n.live = len(slots)
	knobs := n.knobs.Clamp()
	n.mu.Unlock()

	for _, s := range slots {
		if err := n.inputs.Input(s).Validate(ctx); err != nil {
			return n.fail(nodeErrorf(opValidate, &UpstreamError{Slot: s, Err: err}))
		}
	}

	h.AppendInt(len(slots))
	for _, s := range slots {
		h.AppendInt(s)
		n.inputs.Input(s).AppendHash(h)
	}
	knobs.AppendHash(h)

	return nil
}

// Analyze runs collect, fit and select without writing geometry.
// Errors are returned but not reported to the host.
func (n *Node) Analyze(ctx context.Context) (*Analysis, error) {
	a, _, err := n.analyze(ctx)

	return a, err
}

func (n *Node) analyze(ctx context.Context) (*Analysis, host.Object, error) {
	knobs := n.Knobs()

	s, err := collect(ctx, n.inputs)
	if err != nil {
		return nil, nil, nodeErrorf(opCollect, err)
	}
	n.log.Debug().Int("inputs", len(s.slots)).Int("points", s.points).Msg("collected samples")

	m, err := pca.Fit(s.x, n.fit...)
	if err != nil {
		if pca.IsNumerical(err) {
			err = errors.Join(ErrNumericalFailure, err)
		}
		return nil, nil, nodeErrorf(opFit, err)
	}

	k := pca.SelectCount(m.Proportions(), knobs.MinComponents, knobs.VarianceThreshold, m.Rank())
	n.log.Debug().
		Int("rank", m.Rank()).
		Floats64("variances", m.Variances()).
		Int("k", k).
		Msg("fitted components")

	return &Analysis{Slots: s.slots, Points: s.points, Model: m, K: k, Knobs: knobs}, s.template, nil
}

// Engine writes the K+1 output objects into out. On any error out is left
// empty, the message goes to the host's error channel and the error is returned.
func (n *Node) Engine(ctx context.Context, out host.GeometryList) error {
	a, template, err := n.analyze(ctx)
	if err != nil {
		out.Clear()
		return n.fail(err)
	}
	if err = write(out, template, a.Model, a.K, a.Knobs); err != nil {
		out.Clear()
		return n.fail(nodeErrorf(opWrite, err))
	}
	n.log.Debug().Int("objects", out.Len()).Bool("pretty_show", a.Knobs.PrettyShow).Msg("wrote outputs")

	return nil
}

func (n *Node) fail(err error) error {
	n.log.Error().Err(err).Msg("node errored")
	if n.reporter != nil {
		n.reporter.Error(err.Error())
	}

	return err
}
