package obukhov

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrInvalidInput is returned when a raw numeric string from a caller
// cannot be parsed as a floating-point value.
var ErrInvalidInput = errors.New("invalid numeric input")

// Params holds the numerical configuration shared by the ψ quadrature, the
// Richardson conversions, and the Newton solver. A Params value is loaded
// once at startup and never mutated; every function takes it by value, so
// there is no hidden process-wide state.
type Params struct {
	// PsiSteps is the number of quadrature subintervals for the stable
	// ψ branch. Precision trades linearly against runtime.
	PsiSteps int `toml:"psi_steps"`

	// NewtonTolerance is the residual threshold for convergence.
	NewtonTolerance float64 `toml:"newton_tolerance"`

	// NewtonMaxIter is the iteration budget, the sole safety valve
	// against non-convergence.
	NewtonMaxIter int `toml:"newton_max_iterations"`

	// DerivativeStep is the central-difference step h.
	DerivativeStep float64 `toml:"derivative_step"`

	// SingularityTolerance defines the neutral window |ζ| within which
	// ψ and Ri_b short-circuit to 0.
	SingularityTolerance float64 `toml:"singularity_tolerance"`

	// ZetaMin and ZetaMax clamp every solved or generated ζ to the
	// physically meaningful range.
	ZetaMin float64 `toml:"zeta_min"`
	ZetaMax float64 `toml:"zeta_max"`

	// LogZOverZ0 is Λ = ln(z/z₀), the natural log of measurement height
	// over surface roughness length, required by the bulk Richardson
	// formula. Must be strictly positive.
	LogZOverZ0 float64 `toml:"log_z_over_z0"`
}

// DefaultParams returns the standard configuration. The default Λ
// corresponds to a 10 m mast over 1 cm roughness, ln(10/0.01) ≈ 6.91.
func DefaultParams() Params {
	return Params{
		PsiSteps:             100,
		NewtonTolerance:      1e-10,
		NewtonMaxIter:        100,
		DerivativeStep:       1e-8,
		SingularityTolerance: 1e-10,
		ZetaMin:              -10,
		ZetaMax:              10,
		LogZOverZ0:           math.Log(10 / 0.01),
	}
}

// Validate rejects configurations the numerics cannot support.
func (p Params) Validate() error {
	if p.PsiSteps < 1 {
		return fmt.Errorf("psi_steps must be at least 1, got %d", p.PsiSteps)
	}
	if p.NewtonTolerance <= 0 {
		return fmt.Errorf("newton_tolerance must be positive, got %g", p.NewtonTolerance)
	}
	if p.NewtonMaxIter < 1 {
		return fmt.Errorf("newton_max_iterations must be at least 1, got %d", p.NewtonMaxIter)
	}
	if p.DerivativeStep <= 0 {
		return fmt.Errorf("derivative_step must be positive, got %g", p.DerivativeStep)
	}
	if p.SingularityTolerance <= 0 {
		return fmt.Errorf("singularity_tolerance must be positive, got %g", p.SingularityTolerance)
	}
	if p.ZetaMin >= p.ZetaMax {
		return fmt.Errorf("zeta bounds inverted: [%g, %g]", p.ZetaMin, p.ZetaMax)
	}
	if p.LogZOverZ0 <= 0 {
		return fmt.Errorf("log_z_over_z0 must be strictly positive, got %g", p.LogZOverZ0)
	}
	return nil
}

// LoadParams reads TOML overrides on top of DefaultParams. Keys absent from
// the file keep their defaults.
func LoadParams(path string) (Params, error) {
	p := DefaultParams()
	if _, err := toml.DecodeFile(path, &p); err != nil {
		return Params{}, fmt.Errorf("loading params from %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return Params{}, fmt.Errorf("params from %s: %w", path, err)
	}
	return p, nil
}

// ParseValue parses a raw numeric string supplied by a hosting UI or CLI,
// failing with ErrInvalidInput for empty or non-numeric text.
func ParseValue(s string) (float64, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, fmt.Errorf("%w: empty string", ErrInvalidInput)
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidInput, s)
	}
	return v, nil
}
