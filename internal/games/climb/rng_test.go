package climb

import "testing"

func TestRandHelpers(t *testing.T) {
	r := scripted(0, 0.25, 0.5, 0.999999)

	tests := []struct {
		name string
		got  func() float64
		want float64
	}{
		{"uniform low", func() float64 { return r.Uniform(-2, 2) }, -2},
		{"uniform quarter", func() float64 { return r.Uniform(-2, 2) }, -1},
		{"sign at half", r.Sign, 1},
		{"intn top", func() float64 { return float64(r.Intn(4)) }, 3},
	}
	for _, tt := range tests {
		if got := tt.got(); got != tt.want {
			t.Errorf("%s = %v, expected %v", tt.name, got, tt.want)
		}
	}
}

func TestIntnBounds(t *testing.T) {
	r := scripted(0.9999999999)
	if got := r.Intn(0); got != 0 {
		t.Errorf("Intn(0) = %d", got)
	}
	if got := r.Intn(-3); got != 0 {
		t.Errorf("Intn(-3) = %d", got)
	}
	if got := r.Intn(10); got != 9 {
		t.Errorf("Intn(10) = %d, expected 9", got)
	}
}

func TestChance(t *testing.T) {
	r := scripted(0.3)
	if r.Chance(0.3) {
		t.Error("Chance(0.3) with a draw of 0.3 = true")
	}
	if !r.Chance(0.31) {
		t.Error("Chance(0.31) with a draw of 0.3 = false")
	}
}

func TestPick(t *testing.T) {
	r := scripted(0.5)
	if got := Pick(r, []string{"a", "b", "c", "d"}); got != "c" {
		t.Errorf("Pick = %q, expected c", got)
	}
	if got := Pick[string](r, nil); got != "" {
		t.Errorf("Pick on empty pool = %q", got)
	}
}

func TestSeededRandIsDeterministic(t *testing.T) {
	a, b := NewRand(7), NewRand(7)
	for i := range 100 {
		if x, y := a.Float64(), b.Float64(); x != y {
			t.Fatalf("draw %d differs: %v vs %v", i, x, y)
		}
	}
}
