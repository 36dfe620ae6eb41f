// SPDX-License-Identifier: MIT

package pcageo

import (
	"errors"
	"fmt"
)

// Sentinel errors, one per failure kind the node reports to the host.
var (
	// ErrInsufficientInputs indicates fewer than MinInputs connected inputs.
	ErrInsufficientInputs = errors.New("pcageo: at least two inputs are required")

	// ErrTopologyMismatch indicates an empty input mesh or inputs with differing vertex counts.
	ErrTopologyMismatch = errors.New("pcageo: topology mismatch")

	// ErrUpstreamFailure indicates a connected input that failed to validate or deliver geometry.
	ErrUpstreamFailure = errors.New("pcageo: upstream input failed")

	// ErrNumericalFailure indicates non-finite data or a failed eigen decomposition.
	ErrNumericalFailure = errors.New("pcageo: numerical failure")

	// ErrOutput indicates the host refused an output object or point write.
	ErrOutput = errors.New("pcageo: cannot write output geometry")
)

// Operation tags used in wrapped errors.
const (
	opValidate = "Validate"
	opCollect  = "collect"
	opFit      = "fit"
	opWrite    = "write"
)

func nodeErrorf(op string, err error) error {
	return fmt.Errorf("%s.%s: %w", ClassName, op, err)
}

// TopologyError names the input slot whose mesh disagrees with the first
// collected input. Got == 0 means the slot delivered no points at all.
type TopologyError struct {
	Slot int
	Want int // points of the reference input; 0 when Slot is the reference
	Got  int
}

func (e *TopologyError) Error() string {
	if e.Got == 0 {
		return fmt.Sprintf("pcageo: input %d has no points", e.Slot)
	}

	return fmt.Sprintf("pcageo: input %d has %d points, expected %d", e.Slot, e.Got, e.Want)
}

// Unwrap lets errors.Is match ErrTopologyMismatch.
func (e *TopologyError) Unwrap() error { return ErrTopologyMismatch }

// UpstreamError carries an input's own failure unchanged.
// errors.Is matches both ErrUpstreamFailure and the original cause.
type UpstreamError struct {
	Slot int
	Err  error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("pcageo: input %d: %v", e.Slot, e.Err)
}

// Unwrap implements the multi-error form of errors.Unwrap.
func (e *UpstreamError) Unwrap() []error { return []error{ErrUpstreamFailure, e.Err} }
