package obukhov

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownProfile is returned by GetProfile for names that are not in the
// registry. Callers must surface it; there is no default profile.
var ErrUnknownProfile = errors.New("unknown stability profile")

// UnstableCoeff holds the unstable-branch (ζ < 0) coefficients:
//
//	φ = (1 - A·ζ)^(-B)
type UnstableCoeff struct {
	AM float64 // momentum slope a_m
	AH float64 // heat slope a_h
	BM float64 // momentum exponent b_m
	BH float64 // heat exponent b_h
}

// StableCoeff holds the stable-branch (ζ ≥ 0) coefficients:
//
//	φ = 1 + B·ζ + C·ζ²
//
// CM and CH are zero for profiles without a quadratic correction.
type StableCoeff struct {
	BM float64
	BH float64
	CM float64
	CH float64
}

// Profile is a named, immutable coefficient set defining one φ/ψ
// parameterization. All coefficients are positive; with ζ < 0 this keeps
// the base 1-a·ζ above 1, so the fractional powers on the unstable branch
// are always defined.
//
// Every registered profile uses b_m = 1/4 and b_h = 1/2 on the unstable
// branch, which the closed-form ψ expressions in PsiM and PsiH assume.
type Profile struct {
	Name     string // registry key and citation tag
	Citation string
	Unstable UnstableCoeff
	Stable   StableCoeff
}

// HasQuadraticStable reports whether the profile defines the ζ² stable
// correction.
func (p Profile) HasQuadraticStable() bool {
	return p.Stable.CM != 0 || p.Stable.CH != 0
}

var profiles = map[string]Profile{
	"BD71": {
		Name:     "BD71",
		Citation: "Businger et al. (1971); Dyer (1974)",
		Unstable: UnstableCoeff{AM: 16, AH: 16, BM: 0.25, BH: 0.5},
		Stable:   StableCoeff{BM: 5, BH: 5},
	},
	"HOG88": {
		Name:     "HOG88",
		Citation: "Högström (1988)",
		Unstable: UnstableCoeff{AM: 19.3, AH: 12, BM: 0.25, BH: 0.5},
		Stable:   StableCoeff{BM: 4.8, BH: 7.8},
	},
	"CB05": {
		Name:     "CB05",
		Citation: "Cheng & Brutsaert (2005)",
		Unstable: UnstableCoeff{AM: 16, AH: 16, BM: 0.25, BH: 0.5},
		Stable:   StableCoeff{BM: 6.1, BH: 5.3, CM: 2.5, CH: 1.1},
	},
}

// GetProfile looks up a registered coefficient set by name.
func GetProfile(name string) (Profile, error) {
	p, ok := profiles[name]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %q (have %v)", ErrUnknownProfile, name, ProfileNames())
	}
	return p, nil
}

// ProfileNames returns the registered profile keys in sorted order.
func ProfileNames() []string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
