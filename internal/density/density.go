// Package density wraps github.com/axiomhq/hyperloglog to give grid nodes a
// streaming approximate distinct-count over the hashed cell indices they
// insert. Grid nodes call Hash64 then Estimator.Add — they never see the
// underlying sketch type.
package density

import "github.com/axiomhq/hyperloglog"

// Estimator is a HyperLogLog sketch seeded with a fixed register precision.
type Estimator struct {
	sketch *hyperloglog.Sketch
}

// New returns an estimator. precision follows the spec's HLLPrecision knob
// (registers = 2^precision); the underlying library only distinguishes a
// "default" (14-bit) and "wide" (16-bit) sketch, so any precision below 16
// maps to the default and anything else maps to the wide sketch — plenty of
// headroom over the default configuration's 2^9 registers.
func New(precision uint8) *Estimator {
	if precision >= 16 {
		return &Estimator{sketch: hyperloglog.New16()}
	}
	return &Estimator{sketch: hyperloglog.New()}
}

// Add records one observation of the already-mixed hash h (see Hash64).
func (e *Estimator) Add(h uint64) {
	e.sketch.InsertHash(h)
}

// Estimate returns the current approximate distinct count.
func (e *Estimator) Estimate() uint64 {
	return e.sketch.Estimate()
}
