package obukhov

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

// AssertionConfig contains tolerances for the profile property helpers.
type AssertionConfig struct {
	// NeutralTolerance bounds |φ(0) - 1|; the neutral values are exact
	// by construction, so this stays at machine scale.
	NeutralTolerance float64

	// RoundTripTolerance bounds |ζ_recovered - ζ| after inverting the
	// forward map.
	RoundTripTolerance float64

	// MonotonicStep is the ζ increment used when checking stable-branch
	// monotonicity.
	MonotonicStep float64
}

// DefaultAssertionConfig returns conservative tolerances.
func DefaultAssertionConfig() AssertionConfig {
	return AssertionConfig{
		NeutralTolerance:   1e-12,
		RoundTripTolerance: 1e-6,
		MonotonicStep:      0.1,
	}
}

// AssertNeutralLimits verifies the continuity properties at ζ = 0:
// φ_m = φ_h = 1, ψ_m = ψ_h = 0, Ri_g = 0, and Ri_b takes the guard path.
func AssertNeutralLimits(t *testing.T, p Profile, par Params) {
	t.Helper()
	cfg := DefaultAssertionConfig()

	if !scalar.EqualWithinAbs(PhiM(0, p), 1, cfg.NeutralTolerance) {
		t.Errorf("%s: φ_m(0) = %g, want 1", p.Name, PhiM(0, p))
	}
	if !scalar.EqualWithinAbs(PhiH(0, p), 1, cfg.NeutralTolerance) {
		t.Errorf("%s: φ_h(0) = %g, want 1", p.Name, PhiH(0, p))
	}
	if psi := PsiM(0, p, par); psi != 0 {
		t.Errorf("%s: ψ_m(0) = %g, want exactly 0", p.Name, psi)
	}
	if psi := PsiH(0, p, par); psi != 0 {
		t.Errorf("%s: ψ_h(0) = %g, want exactly 0", p.Name, psi)
	}
	if rig := RiG(0, p); rig != 0 {
		t.Errorf("%s: Ri_g(0) = %g, want 0", p.Name, rig)
	}
	rib, status := RiB(0, p, par)
	if rib != 0 || status != BulkNeutral {
		t.Errorf("%s: Ri_b(0) = (%g, %v), want (0, %v)", p.Name, rib, status, BulkNeutral)
	}
}

// AssertSignConsistency verifies sign(Ri_g(ζ)) = sign(ζ) for ζ ≠ 0 across
// the supported range.
func AssertSignConsistency(t *testing.T, p Profile) {
	t.Helper()

	for zeta := -10.0; zeta <= 10.0; zeta += 0.25 {
		if zeta == 0 {
			continue
		}
		rig := RiG(zeta, p)
		if math.Signbit(rig) != math.Signbit(zeta) {
			t.Errorf("%s: Ri_g(%g) = %g has the wrong sign", p.Name, zeta, rig)
		}
	}
}

// AssertMonotonicStablePhi verifies φ_m and φ_h are non-decreasing on the
// stable branch ζ ≥ 0, and strictly positive everywhere in range.
func AssertMonotonicStablePhi(t *testing.T, p Profile) {
	t.Helper()
	cfg := DefaultAssertionConfig()

	prevM, prevH := PhiM(0, p), PhiH(0, p)
	for zeta := cfg.MonotonicStep; zeta <= 10.0; zeta += cfg.MonotonicStep {
		m, h := PhiM(zeta, p), PhiH(zeta, p)
		if m < prevM {
			t.Errorf("%s: φ_m decreased on stable branch at ζ=%g: %g < %g", p.Name, zeta, m, prevM)
		}
		if h < prevH {
			t.Errorf("%s: φ_h decreased on stable branch at ζ=%g: %g < %g", p.Name, zeta, h, prevH)
		}
		prevM, prevH = m, h
	}

	for zeta := -10.0; zeta <= 10.0; zeta += cfg.MonotonicStep {
		if PhiM(zeta, p) <= 0 || PhiH(zeta, p) <= 0 {
			t.Errorf("%s: φ not strictly positive at ζ=%g", p.Name, zeta)
		}
	}
}

// AssertRoundTrip verifies ζ → Ri_g → ζ recovery through the Newton
// inverter, seeding the solver with the true ζ so only the forward map and
// the convergence test are under trial, not the choice of guess.
func AssertRoundTrip(t *testing.T, p Profile, par Params, zetas []float64) {
	t.Helper()
	cfg := DefaultAssertionConfig()

	for _, zeta := range zetas {
		target := RiG(zeta, p)
		sol := ZetaFromRiG(target, p, zeta, par)
		if sol.Status != Converged {
			t.Errorf("%s: inversion of Ri_g(%g)=%g did not converge: %v",
				p.Name, zeta, target, sol.Status)
			continue
		}
		if !scalar.EqualWithinAbs(sol.Zeta, zeta, cfg.RoundTripTolerance) {
			t.Errorf("%s: round trip ζ=%g → Ri_g=%g → ζ=%g (|Δ| = %.2e)",
				p.Name, zeta, target, sol.Zeta, math.Abs(sol.Zeta-zeta))
		}
	}
}

// AssertBoundedInversion verifies the solver never escapes the ζ clamp,
// however extreme the target.
func AssertBoundedInversion(t *testing.T, p Profile, par Params, targets []float64) {
	t.Helper()

	for _, target := range targets {
		guess := 0.1
		if target < 0 {
			guess = -0.1
		}
		for _, sol := range []Solution{
			ZetaFromRiG(target, p, guess, par),
			ZetaFromRiB(target, p, guess, par),
		} {
			if sol.Zeta < par.ZetaMin || sol.Zeta > par.ZetaMax {
				t.Errorf("%s: inverting target %g escaped bounds: ζ=%g", p.Name, target, sol.Zeta)
			}
		}
	}
}
