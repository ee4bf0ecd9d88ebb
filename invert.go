package obukhov

import "math"

// Convergence classifies how an inversion terminated. IterationLimit and
// Stalled are reported conditions, not errors: the Solution still carries
// the best-effort ζ, and the caller decides whether to accept it, retry
// with a different guess, or reject it.
type Convergence int

const (
	Converged Convergence = iota
	IterationLimit
	Stalled
)

func (c Convergence) String() string {
	switch c {
	case Converged:
		return "converged"
	case IterationLimit:
		return "iteration-limit"
	case Stalled:
		return "stalled-derivative"
	}
	return "unknown"
}

// Solution is the result of a Richardson inversion.
type Solution struct {
	Zeta       float64
	Status     Convergence
	Iterations int
	Residual   float64 // forward(Zeta) - target at termination
}

// derivativeFloor is the underflow threshold for the numerical derivative.
const derivativeFloor = 1e-15

// ZetaFromRiG inverts a gradient Richardson number back to ζ.
//
// The forward map is smooth and monotone within each stability branch, so
// Newton's method converges quadratically from a guess on the same side of
// neutral as the target: small positive for target ≥ 0, small negative for
// target < 0. It is not globally monotone across the sign crossing, which
// is why the guess matters.
func ZetaFromRiG(target float64, p Profile, guess float64, par Params) Solution {
	return newtonInvert(func(z float64) float64 { return RiG(z, p) }, target, guess, par)
}

// ZetaFromRiB inverts a bulk Richardson number back to ζ using
// par.LogZOverZ0 for the layer. The neutral and degenerate guards of RiB
// apply inside every forward evaluation, so the iterate never sees a
// near-infinite value.
func ZetaFromRiB(target float64, p Profile, guess float64, par Params) Solution {
	forward := func(z float64) float64 {
		rib, _ := RiB(z, p, par)
		return rib
	}
	return newtonInvert(forward, target, guess, par)
}

// newtonInvert runs bounded Newton-Raphson with a central-difference
// derivative. The central difference avoids maintaining closed-form
// derivatives for every profile, and the position clamp keeps the iterate
// inside the physically meaningful ζ range.
func newtonInvert(forward func(float64) float64, target, guess float64, par Params) Solution {
	zeta := clamp(guess, par.ZetaMin, par.ZetaMax)
	h := par.DerivativeStep

	for i := 0; i < par.NewtonMaxIter; i++ {
		f := forward(zeta) - target
		if math.Abs(f) < par.NewtonTolerance {
			return Solution{Zeta: zeta, Status: Converged, Iterations: i, Residual: f}
		}
		deriv := (forward(zeta+h) - forward(zeta-h)) / (2 * h)
		if math.Abs(deriv) < derivativeFloor {
			return Solution{Zeta: zeta, Status: Stalled, Iterations: i, Residual: f}
		}
		zeta = clamp(zeta-f/deriv, par.ZetaMin, par.ZetaMax)
	}

	return Solution{
		Zeta:       zeta,
		Status:     IterationLimit,
		Iterations: par.NewtonMaxIter,
		Residual:   forward(zeta) - target,
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
