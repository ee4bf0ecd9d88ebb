package obukhov

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

var roundTripGrid = []float64{-5, -1, -0.1, 0.1, 1, 5}

func TestZetaFromRiG_RoundTrip(t *testing.T) {
	par := DefaultParams()
	for _, p := range allProfiles(t) {
		AssertRoundTrip(t, p, par, roundTripGrid)
	}
}

// TestZetaFromRiG_ConcreteScenario reproduces the reference case: inverting
// Ri_g = 0.01 for BD71 from a small positive guess, then re-substituting.
// The stable BD71 form ζ/(1+5ζ) gives the analytic answer 0.01/0.95.
func TestZetaFromRiG_ConcreteScenario(t *testing.T) {
	p, _ := GetProfile("BD71")
	par := DefaultParams()

	sol := ZetaFromRiG(0.01, p, 0.1, par)
	if sol.Status != Converged {
		t.Fatalf("inversion did not converge: %+v", sol)
	}

	if resub := RiG(sol.Zeta, p); !scalar.EqualWithinAbs(resub, 0.01, 1e-8) {
		t.Errorf("re-substitution Ri_g(%g) = %.12f, want 0.01", sol.Zeta, resub)
	}

	analytic := 0.01 / (1 - 5*0.01)
	if !scalar.EqualWithinAbs(sol.Zeta, analytic, 1e-8) {
		t.Errorf("ζ = %.12f, analytic %.12f", sol.Zeta, analytic)
	}
	t.Logf("converged in %d iterations, residual %.2e", sol.Iterations, sol.Residual)
}

func TestZetaFromRiG_SmallGuessConvergence(t *testing.T) {
	par := DefaultParams()
	for _, p := range allProfiles(t) {
		for _, zeta := range []float64{-2, -0.5, 0.05, 0.1} {
			target := RiG(zeta, p)
			guess := 0.1
			if target < 0 {
				guess = -0.1
			}
			sol := ZetaFromRiG(target, p, guess, par)
			if sol.Status != Converged {
				t.Errorf("%s: target %g from guess %g: %v after %d iterations",
					p.Name, target, guess, sol.Status, sol.Iterations)
				continue
			}
			if resub := RiG(sol.Zeta, p); !scalar.EqualWithinAbs(resub, target, 1e-8) {
				t.Errorf("%s: re-substitution drifted: Ri_g(%g) = %g, want %g",
					p.Name, sol.Zeta, resub, target)
			}
		}
	}
}

func TestZetaFromRiB_RoundTrip(t *testing.T) {
	par := DefaultParams()
	for _, p := range allProfiles(t) {
		for _, zeta := range []float64{-2, -0.5, 0.2, 1} {
			target, status := RiB(zeta, p, par)
			if status != BulkOK {
				t.Fatalf("%s: forward Ri_b(%g) status %v", p.Name, zeta, status)
			}
			sol := ZetaFromRiB(target, p, zeta, par)
			if sol.Status != Converged {
				t.Errorf("%s: bulk inversion of %g: %v", p.Name, target, sol.Status)
				continue
			}
			if !scalar.EqualWithinAbs(sol.Zeta, zeta, 1e-6) {
				t.Errorf("%s: bulk round trip ζ=%g → %g", p.Name, zeta, sol.Zeta)
			}
		}
	}
}

// Targets far outside the attainable range must exhaust the budget at a
// clamped ζ rather than diverge.
func TestInversion_BoundedOutput(t *testing.T) {
	par := DefaultParams()
	for _, p := range allProfiles(t) {
		AssertBoundedInversion(t, p, par, []float64{-1e6, -100, 100, 1e6})
	}
}

// BD71 stable Ri_g saturates at 1/5, so a target of 10 is unattainable:
// the solver should report IterationLimit with a best-effort ζ, not fail.
func TestInversion_ReportsNonConvergence(t *testing.T) {
	p, _ := GetProfile("BD71")
	par := DefaultParams()

	sol := ZetaFromRiG(10, p, 0.1, par)
	if sol.Status == Converged {
		t.Fatalf("impossible target reported convergence: %+v", sol)
	}
	if sol.Zeta < par.ZetaMin || sol.Zeta > par.ZetaMax {
		t.Errorf("best-effort ζ = %g escaped bounds", sol.Zeta)
	}
	if sol.Status == IterationLimit && sol.Iterations != par.NewtonMaxIter {
		t.Errorf("IterationLimit after %d iterations, budget %d",
			sol.Iterations, par.NewtonMaxIter)
	}
	t.Logf("unattainable target: status=%v ζ=%g residual=%.3g",
		sol.Status, sol.Zeta, sol.Residual)
}

// A tight budget turns an otherwise-solvable target into a reported
// IterationLimit, never a wrong "converged".
func TestInversion_BudgetExhaustion(t *testing.T) {
	p, _ := GetProfile("CB05")
	par := DefaultParams()
	par.NewtonMaxIter = 1
	par.NewtonTolerance = 1e-14

	target := RiG(3, p)
	sol := ZetaFromRiG(target, p, 0.1, par)
	if sol.Status == Converged && math.Abs(sol.Residual) >= par.NewtonTolerance {
		t.Errorf("claimed convergence with residual %g", sol.Residual)
	}
}

func TestConvergence_String(t *testing.T) {
	cases := map[Convergence]string{
		Converged:       "converged",
		IterationLimit:  "iteration-limit",
		Stalled:         "stalled-derivative",
		Convergence(42): "unknown",
	}
	for status, want := range cases {
		if got := status.String(); got != want {
			t.Errorf("Convergence(%d).String() = %q, want %q", status, got, want)
		}
	}
}
