package obukhov

import (
	"errors"
	"testing"
)

func TestGetProfile_RegisteredKeys(t *testing.T) {
	for _, name := range []string{"BD71", "HOG88", "CB05"} {
		p, err := GetProfile(name)
		if err != nil {
			t.Fatalf("GetProfile(%q) failed: %v", name, err)
		}
		if p.Name != name {
			t.Errorf("profile %q reports name %q", name, p.Name)
		}
	}
}

func TestGetProfile_Unknown(t *testing.T) {
	_, err := GetProfile("XX99")
	if err == nil {
		t.Fatal("GetProfile(\"XX99\") succeeded, want ErrUnknownProfile")
	}
	if !errors.Is(err, ErrUnknownProfile) {
		t.Errorf("error %v is not ErrUnknownProfile", err)
	}
}

func TestProfileNames_Sorted(t *testing.T) {
	names := ProfileNames()
	want := []string{"BD71", "CB05", "HOG88"}
	if len(names) != len(want) {
		t.Fatalf("ProfileNames() = %v, want %v", names, want)
	}
	for i, name := range want {
		if names[i] != name {
			t.Errorf("ProfileNames()[%d] = %q, want %q", i, names[i], name)
		}
	}
}

// TestProfile_CoefficientInvariants checks the registry-wide invariants the
// numerics depend on: positive coefficients and the ¼/½ unstable exponents
// assumed by the closed-form ψ branches.
func TestProfile_CoefficientInvariants(t *testing.T) {
	for _, name := range ProfileNames() {
		p, err := GetProfile(name)
		if err != nil {
			t.Fatal(err)
		}

		u := p.Unstable
		if u.AM <= 0 || u.AH <= 0 || u.BM <= 0 || u.BH <= 0 {
			t.Errorf("%s: non-positive unstable coefficient: %+v", name, u)
		}
		if u.BM != 0.25 {
			t.Errorf("%s: b_m = %g, closed-form ψ_m requires 0.25", name, u.BM)
		}
		if u.BH != 0.5 {
			t.Errorf("%s: b_h = %g, closed-form ψ_h requires 0.5", name, u.BH)
		}

		s := p.Stable
		if s.BM <= 0 || s.BH <= 0 {
			t.Errorf("%s: non-positive stable slope: %+v", name, s)
		}
		if s.CM < 0 || s.CH < 0 {
			t.Errorf("%s: negative quadratic correction: %+v", name, s)
		}
	}
}

func TestProfile_QuadraticStable(t *testing.T) {
	cb05, _ := GetProfile("CB05")
	if !cb05.HasQuadraticStable() {
		t.Error("CB05 should carry a quadratic stable correction")
	}
	bd71, _ := GetProfile("BD71")
	if bd71.HasQuadraticStable() {
		t.Error("BD71 should not carry a quadratic stable correction")
	}
}
