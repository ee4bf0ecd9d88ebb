package obukhov

import "math"

// PsiM evaluates the integral momentum stability function
//
//	ψ_m(ζ) = ∫₀^ζ (1/φ_m(z') - 1) dz'
//
// The unstable branch uses the Paulson (1970) closed form with
// x = (1 - a_m·ζ)^¼:
//
//	ψ_m = 2·ln((1+x)/2) + ln((1+x²)/2) - 2·atan(x) + π/2
//
// valid because every registered profile has b_m = 1/4. The stable branch
// integrates numerically with PsiSteps right-endpoint rectangles, a
// first-order scheme: accuracy there is bounded by Δζ = ζ/PsiSteps, and
// callers needing tighter than ~1e-4 raise Params.PsiSteps.
//
// Neutral guard: |ζ| below Params.SingularityTolerance returns exactly 0.
func PsiM(zeta float64, p Profile, par Params) float64 {
	if math.Abs(zeta) < par.SingularityTolerance {
		return 0
	}
	if zeta < 0 {
		x := math.Pow(1-p.Unstable.AM*zeta, 0.25)
		return 2*math.Log((1+x)/2) + math.Log((1+x*x)/2) - 2*math.Atan(x) + math.Pi/2
	}
	return integratePsi(zeta, par.PsiSteps, func(z float64) float64 { return PhiM(z, p) })
}

// PsiH evaluates the integral heat stability function ψ_h(ζ), with the
// closed unstable form (y = (1 - a_h·ζ)^½, valid with b_h = 1/2):
//
//	ψ_h = 2·ln((1+y)/2)
//
// and the same stable-branch quadrature and neutral guard as PsiM.
func PsiH(zeta float64, p Profile, par Params) float64 {
	if math.Abs(zeta) < par.SingularityTolerance {
		return 0
	}
	if zeta < 0 {
		y := math.Sqrt(1 - p.Unstable.AH*zeta)
		return 2 * math.Log((1+y)/2)
	}
	return integratePsi(zeta, par.PsiSteps, func(z float64) float64 { return PhiH(z, p) })
}

// integratePsi sums (1/φ(z_i) - 1)·Δz over right endpoints z_i = i·Δz.
// φ is smooth and monotone over the supported range, so the composite
// rectangle rule converges linearly in steps.
func integratePsi(zeta float64, steps int, phi func(float64) float64) float64 {
	dz := zeta / float64(steps)
	var sum float64
	for i := 1; i <= steps; i++ {
		z := float64(i) * dz
		sum += (1/phi(z) - 1) * dz
	}
	return sum
}
