// SPDX-License-Identifier: MIT

package pca

import (
	"errors"
	"fmt"
)

// Sentinel errors for model fitting and evaluation.
var (
	// ErrEmptyData indicates a nil or empty sample matrix.
	ErrEmptyData = errors.New("pca: empty sample matrix")

	// ErrTooFewSamples indicates fewer than two samples; sample covariance is undefined.
	ErrTooFewSamples = errors.New("pca: at least two samples are required")

	// ErrNonFinite indicates NaN/Inf in the samples or in a solver result.
	ErrNonFinite = errors.New("pca: NaN or Inf encountered")

	// ErrSolverFailed indicates the eigensolver reported failure (e.g. non-convergence).
	ErrSolverFailed = errors.New("pca: eigen decomposition failed")

	// ErrComponentRange indicates a component index outside [0, Rank()).
	ErrComponentRange = errors.New("pca: component index out of range")

	// ErrLength indicates a vector whose length does not match the model.
	ErrLength = errors.New("pca: vector length mismatch")
)

// Operation tags used in wrapped errors.
const (
	opFit         = "Fit"
	opExtreme     = "Extreme"
	opProject     = "Project"
	opReconstruct = "Reconstruct"
)

// pcaErrorf wraps err with an operation tag, preserving it for errors.Is.
func pcaErrorf(op string, err error) error {
	return fmt.Errorf("pca.%s: %w", op, err)
}

// IsNumerical reports whether err stems from the numeric pipeline
// (non-finite values or a failed eigensolver) rather than from bad arguments.
func IsNumerical(err error) bool {
	return errors.Is(err, ErrNonFinite) || errors.Is(err, ErrSolverFailed)
}
