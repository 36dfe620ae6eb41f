// SPDX-License-Identifier: MIT

// Package pcageo implements the PCAGeo node: a geometry blender that treats
// each connected input mesh as one sample in point-coordinate space, fits a
// principal component model over the samples and emits the mean mesh followed
// by one "extreme" mesh per selected component.
//
// Pipeline (one Engine call):
//
//	collect  → N×3V sample matrix from input slots, in slot order   (C1)
//	pca.Fit  → mean, components by decreasing variance, rank r       (C2)
//	select   → K = pca.SelectCount(p, n_pca, variance_threshold, r)  (C3)
//	write    → K+1 objects sharing input 0's topology and attributes (C4)
//
// Node wires the stages to a host (package host): knob registration, the
// validate/engine lifecycle, hashing and error reporting (C5).
//
// Outputs:
//   - object 0: the mean mesh μ.
//   - object j (1 ≤ j ≤ K): μ + √λⱼ·vⱼ, one standard deviation along component j.
//   - with pretty_show, object k is post-translated by ((⌊K/2⌋−k)·delta_x, 0, 0).
//
// Errors surface as ErrInsufficientInputs, ErrTopologyMismatch,
// ErrUpstreamFailure or ErrNumericalFailure; on any error the output list is
// left empty and the message is sent to the host's error channel.
package pcageo
