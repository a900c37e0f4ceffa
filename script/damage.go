package script

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/actioncore/prefabs"
)

var ErrNoDamage = errors.New("script: damage not defined")

// DamageFormula evaluates a tengo script to compute swing damage.
//
// The script sees the globals base, step, heavy and multipliers and must
// assign damage.
type DamageFormula struct {
	Path        string
	Multipliers []float64

	mu       sync.Mutex
	compiled *tengo.Compiled
}

// LoadDamageFormula compiles the named script from the prefab scripts.
func LoadDamageFormula(path string, multipliers []float64) (*DamageFormula, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("script: empty path")
	}
	src, err := prefabs.LoadScript(path)
	if err != nil {
		return nil, fmt.Errorf("script: load %s: %w", path, err)
	}
	f, err := NewDamageFormula(src, multipliers)
	if err != nil {
		return nil, fmt.Errorf("script: %s: %w", path, err)
	}
	f.Path = path
	return f, nil
}

func NewDamageFormula(src []byte, multipliers []float64) (*DamageFormula, error) {
	s := tengo.NewScript(src)
	_ = s.Add("base", 0.0)
	_ = s.Add("step", 1)
	_ = s.Add("heavy", false)
	_ = s.Add("multipliers", toArray(multipliers))

	s.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := s.Compile()
	if err != nil {
		return nil, err
	}
	// globals only hold values after a run
	if err := compiled.Run(); err != nil {
		return nil, fmt.Errorf("script: run: %w", err)
	}
	if !compiled.IsDefined("damage") {
		return nil, ErrNoDamage
	}

	return &DamageFormula{
		Multipliers: append([]float64(nil), multipliers...),
		compiled:    compiled,
	}, nil
}

func (f *DamageFormula) Damage(base float64, comboStep int, heavy bool) (float64, error) {
	if f == nil || f.compiled == nil {
		return 0, fmt.Errorf("script: nil formula")
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.compiled.Set("base", base); err != nil {
		return 0, err
	}
	if err := f.compiled.Set("step", comboStep); err != nil {
		return 0, err
	}
	if err := f.compiled.Set("heavy", heavy); err != nil {
		return 0, err
	}
	if err := f.compiled.Set("multipliers", toArray(f.Multipliers)); err != nil {
		return 0, err
	}
	if err := f.compiled.Run(); err != nil {
		return 0, fmt.Errorf("script: run: %w", err)
	}

	v := f.compiled.Get("damage")
	if v == nil || v.IsUndefined() {
		return 0, ErrNoDamage
	}
	dmg := v.Float()
	if math.IsNaN(dmg) || math.IsInf(dmg, 0) || dmg < 0 {
		return 0, fmt.Errorf("script: invalid damage %v", v.Value())
	}
	return dmg, nil
}

func toArray(values []float64) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
