package script

import (
	"errors"
	"testing"
)

func TestBundledComboScript(t *testing.T) {
	f, err := LoadDamageFormula("combo_damage.tengo", []float64{1, 1.2, 1.5})
	if err != nil {
		t.Fatalf("LoadDamageFormula: %v", err)
	}

	cases := []struct {
		step  int
		heavy bool
		want  float64
	}{
		{1, false, 10},
		{2, false, 12},
		{3, false, 15},
		{9, false, 15},
		{0, false, 10},
		{1, true, 15},
	}
	for _, c := range cases {
		got, err := f.Damage(10, c.step, c.heavy)
		if err != nil {
			t.Fatalf("step %d heavy %v: %v", c.step, c.heavy, err)
		}
		if got != c.want {
			t.Fatalf("step %d heavy %v: damage = %v, want %v", c.step, c.heavy, got, c.want)
		}
	}
}

func TestScriptWithoutDamage(t *testing.T) {
	_, err := NewDamageFormula([]byte(`x := 1`), nil)
	if !errors.Is(err, ErrNoDamage) {
		t.Fatalf("err = %v, want ErrNoDamage", err)
	}
}

func TestScriptCompileError(t *testing.T) {
	if _, err := NewDamageFormula([]byte(`damage := (`), nil); err == nil {
		t.Fatalf("expected compile error")
	}
}

func TestNegativeDamageRejected(t *testing.T) {
	f, err := NewDamageFormula([]byte(`damage := -base`), nil)
	if err != nil {
		t.Fatalf("NewDamageFormula: %v", err)
	}
	if _, err := f.Damage(5, 1, false); err == nil {
		t.Fatalf("negative damage accepted")
	}
}

func TestMissingScript(t *testing.T) {
	if _, err := LoadDamageFormula("nope.tengo", nil); err == nil {
		t.Fatalf("expected load error")
	}
}

func TestScriptDividingByStepCompiles(t *testing.T) {
	f, err := NewDamageFormula([]byte(`damage := base / step`), nil)
	if err != nil {
		t.Fatalf("NewDamageFormula: %v", err)
	}
	got, err := f.Damage(12, 3, false)
	if err != nil {
		t.Fatalf("Damage: %v", err)
	}
	if got != 4 {
		t.Fatalf("damage = %v, want 4", got)
	}
}
