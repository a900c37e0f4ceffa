package common

import "testing"

func TestClamp(t *testing.T) {
	cases := []struct {
		name string
		in   float64
		want float64
	}{
		{"above", 5, 1},
		{"below", -1, 0},
		{"inside", 0.5, 0.5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Clamp(c.in, 0, 1); got != c.want {
				t.Fatalf("Clamp(%v) = %v, want %v", c.in, got, c.want)
			}
		})
	}
}

func TestApprox(t *testing.T) {
	if !Approx(0.1+0.2, 0.3, 1e-9) {
		t.Fatalf("sum not approx equal")
	}
	if Approx(1, 1.1, 1e-3) {
		t.Fatalf("distant values reported equal")
	}
}
