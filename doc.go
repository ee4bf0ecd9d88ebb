// Package obukhov computes and inverts the dimensionless stability
// relationships of Monin-Obukhov Similarity Theory (MOST).
//
// # Overview
//
// Surface-layer turbulence is organized by a single stability parameter,
// the dimensionless height ζ = z/L (measurement height over Obukhov length).
// This package evaluates the flux-gradient profile functions φ_m(ζ), φ_h(ζ)
// and their integral forms ψ_m(ζ), ψ_h(ζ) under several literature-defined
// coefficient sets, converts ζ to gradient and bulk Richardson numbers, and
// inverts those Richardson numbers back to ζ with a bounded Newton-Raphson
// solver.
//
// # The profile functions
//
// Unstable stratification (ζ < 0):
//
//	φ_m = (1 - a_m·ζ)^(-b_m)
//	φ_h = (1 - a_h·ζ)^(-b_h)
//
// Stable stratification (ζ ≥ 0):
//
//	φ_m = 1 + b_m·ζ [+ c_m·ζ²]
//	φ_h = 1 + b_h·ζ [+ c_h·ζ²]
//
// The quadratic correction applies only to profiles that define it. The
// integral forms ψ = ∫₀^ζ (1/φ - 1) dz' use the Paulson closed forms on the
// unstable side and composite rectangle quadrature on the stable side.
//
// # Richardson numbers
//
// The gradient Richardson number is local:
//
//	Ri_g = ζ·φ_h / φ_m²
//
// The bulk Richardson number integrates over a finite layer and needs the
// log of the height-to-roughness ratio Λ = ln(z/z₀):
//
//	Ri_b = ζ·(Λ - ψ_h) / (Λ - ψ_m)²
//
// # Quick Start
//
// Convert a ζ value to a gradient Richardson number and back:
//
//	p, err := obukhov.GetProfile("BD71")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	par := obukhov.DefaultParams()
//	rig := obukhov.RiG(-0.5, p)
//
//	sol := obukhov.ZetaFromRiG(rig, p, -0.1, par)
//	if sol.Status != obukhov.Converged {
//	    log.Printf("low confidence: %v after %d iterations", sol.Status, sol.Iterations)
//	}
//	fmt.Printf("ζ = %.6f\n", sol.Zeta)
//
// Sweep a reference table and export it:
//
//	rows := obukhov.Sweep(p, obukhov.RegimeFull, par)
//	obukhov.WriteCSV(os.Stdout, rows, 6)
//
// # Profiles
//
// Registered coefficient sets:
//
//   - BD71  — Businger & Dyer (1971), the classic 1-16ζ unstable forms with
//     the Dyer (1974) linear stable correction.
//   - HOG88 — Högström (1988) re-evaluated coefficients.
//   - CB05  — Cheng & Brutsaert (2005), with a quadratic stable correction.
//
// All registered profiles use the exponents b_m = 1/4 and b_h = 1/2 on the
// unstable branch; the closed-form ψ expressions rely on this.
//
// # Inversion
//
// ZetaFromRiG and ZetaFromRiB run bounded Newton-Raphson with a numerically
// estimated central-difference derivative. The iterate is clamped to the
// physical ζ range [-10, 10], the iteration budget is the only safety valve
// against non-convergence, and the returned Solution carries a Convergence
// status the caller must inspect: IterationLimit and Stalled results are
// best-effort values, not errors.
//
// Pick an initial guess on the same side of neutral as the target: the
// forward maps are monotone within each stability branch but not globally.
//
// # Testing
//
// Property helpers validate a profile's physics:
//
//	func TestMyProfile(t *testing.T) {
//	    p, _ := obukhov.GetProfile("BD71")
//	    par := obukhov.DefaultParams()
//
//	    obukhov.AssertNeutralLimits(t, p, par)
//	    obukhov.AssertSignConsistency(t, p)
//	    obukhov.AssertMonotonicStablePhi(t, p)
//	    obukhov.AssertRoundTrip(t, p, par, []float64{-5, -1, -0.1, 0.1, 1, 5})
//	}
//
// # Purity
//
// Every function here is a pure computation: no I/O, no goroutines, no
// shared mutable state. Profiles and Params are values, immutable once
// constructed, so independent calls are trivially reentrant.
package obukhov
