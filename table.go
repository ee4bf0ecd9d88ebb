package obukhov

import (
	"fmt"
	"iter"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Regime selects the ζ grid for a reference-table sweep.
type Regime int

const (
	RegimeUnstable Regime = iota // [ZetaMin, 0], 101 points
	RegimeStable                 // [0, ZetaMax], 101 points
	RegimeFull                   // [ZetaMin, ZetaMax], 201 points
)

func (r Regime) String() string {
	switch r {
	case RegimeUnstable:
		return "unstable"
	case RegimeStable:
		return "stable"
	case RegimeFull:
		return "full"
	}
	return "unknown"
}

// ParseRegime maps a regime name to its Regime value.
func ParseRegime(s string) (Regime, error) {
	switch s {
	case "unstable":
		return RegimeUnstable, nil
	case "stable":
		return RegimeStable, nil
	case "full":
		return RegimeFull, nil
	}
	return 0, fmt.Errorf("%w: regime %q (want unstable, stable or full)", ErrInvalidInput, s)
}

// SampleRow is one grid point of a reference table: ζ and its four derived
// quantities. Rows are values, immutable once produced, owned by the caller.
type SampleRow struct {
	Zeta float64
	PhiM float64
	PhiH float64
	RiG  float64
	RiB  float64
}

// bulkColumnEpsilon is the |ζ| window inside which the Ri_b column is
// reported as 0, matching the neutral policy of RiB.
const bulkColumnEpsilon = 1e-5

// Sweep produces the reference table for a profile and regime as a lazy,
// restartable sequence. The grid covers the regime's ζ range at step 0.1;
// φ_m, φ_h and Ri_g are computed at every point, Ri_b only outside the
// neutral window. Output is deterministic: identical arguments yield
// bit-identical rows on every ranging.
func Sweep(p Profile, regime Regime, par Params) iter.Seq[SampleRow] {
	grid := sweepGrid(regime, par)
	return func(yield func(SampleRow) bool) {
		for _, z := range grid {
			row := SampleRow{
				Zeta: z,
				PhiM: PhiM(z, p),
				PhiH: PhiH(z, p),
				RiG:  RiG(z, p),
			}
			if math.Abs(z) > bulkColumnEpsilon {
				row.RiB, _ = RiB(z, p, par)
			}
			if !yield(row) {
				return
			}
		}
	}
}

// SweepRows collects a full sweep into a slice.
func SweepRows(p Profile, regime Regime, par Params) []SampleRow {
	var rows []SampleRow
	for row := range Sweep(p, regime, par) {
		rows = append(rows, row)
	}
	return rows
}

// sweepGrid builds the ζ grid. The full grid is the unstable and stable
// spans joined at their shared endpoint, so the neutral point is exactly 0.
func sweepGrid(regime Regime, par Params) []float64 {
	switch regime {
	case RegimeUnstable:
		return floats.Span(make([]float64, 101), par.ZetaMin, 0)
	case RegimeStable:
		return floats.Span(make([]float64, 101), 0, par.ZetaMax)
	default:
		unstable := floats.Span(make([]float64, 101), par.ZetaMin, 0)
		stable := floats.Span(make([]float64, 101), 0, par.ZetaMax)
		return append(unstable, stable[1:]...)
	}
}
