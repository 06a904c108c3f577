package builder

import "errors"

var (
	// ErrTooFewVertices indicates a size parameter (n, rows, cols) below its minimum.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrInvalidProbability indicates a probability outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource indicates a stochastic constructor ran without an RNG.
	ErrNeedRandSource = errors.New("builder: rng is required")

	// ErrConstructFailed indicates BuildGraph could not apply a constructor.
	ErrConstructFailed = errors.New("builder: construction failed")
)
