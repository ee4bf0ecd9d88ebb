package obukhov

import "math"

// BulkStatus reports how a bulk Richardson evaluation resolved. Neutral and
// Degenerate results carry a safe value of 0; Degenerate additionally means
// the denominator (Λ - ψ_m)² collapsed, which indicates LogZOverZ0 is too
// small relative to ψ_m, and the caller should flag the result as low
// confidence rather than trust it.
type BulkStatus int

const (
	BulkOK BulkStatus = iota
	BulkNeutral
	BulkDegenerate
)

func (s BulkStatus) String() string {
	switch s {
	case BulkOK:
		return "ok"
	case BulkNeutral:
		return "neutral"
	case BulkDegenerate:
		return "degenerate-denominator"
	}
	return "unknown"
}

// denominatorFloor is the collapse threshold for (Λ - ψ_m)².
const denominatorFloor = 1e-15

// RiG converts ζ to the gradient Richardson number:
//
//	Ri_g = ζ·φ_h / φ_m²
//
// Total on the supported range; the sign of Ri_g matches the sign of ζ.
func RiG(zeta float64, p Profile) float64 {
	phiM := PhiM(zeta, p)
	return zeta * PhiH(zeta, p) / (phiM * phiM)
}

// RiB converts ζ to the bulk Richardson number over a layer with
// Λ = ln(z/z₀) taken from par.LogZOverZ0:
//
//	Ri_b = ζ·(Λ - ψ_h) / (Λ - ψ_m)²
//
// Near neutral (|ζ| < SingularityTolerance) the bulk form has no well-posed
// limit here and returns 0 with BulkNeutral. A collapsed denominator
// returns 0 with BulkDegenerate instead of a near-infinite value.
func RiB(zeta float64, p Profile, par Params) (float64, BulkStatus) {
	if math.Abs(zeta) < par.SingularityTolerance {
		return 0, BulkNeutral
	}
	den := par.LogZOverZ0 - PsiM(zeta, p, par)
	if den*den < denominatorFloor {
		return 0, BulkDegenerate
	}
	return zeta * (par.LogZOverZ0 - PsiH(zeta, p, par)) / (den * den), BulkOK
}
