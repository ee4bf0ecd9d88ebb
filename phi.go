package obukhov

import "math"

// PhiM evaluates the dimensionless momentum profile function φ_m(ζ).
//
// Unstable side per Businger-Dyer power laws, stable side per the linear
// (Dyer, 1974) or quadratic (Cheng & Brutsaert, 2005) correction, depending
// on the profile. Total on ζ ∈ [-10, 10] and strictly positive, which the
// Richardson conversions rely on for their reciprocals.
func PhiM(zeta float64, p Profile) float64 {
	if zeta < 0 {
		return math.Pow(1-p.Unstable.AM*zeta, -p.Unstable.BM)
	}
	return 1 + p.Stable.BM*zeta + p.Stable.CM*zeta*zeta
}

// PhiH evaluates the dimensionless heat profile function φ_h(ζ).
func PhiH(zeta float64, p Profile) float64 {
	if zeta < 0 {
		return math.Pow(1-p.Unstable.AH*zeta, -p.Unstable.BH)
	}
	return 1 + p.Stable.BH*zeta + p.Stable.CH*zeta*zeta
}
