package component

import "testing"

func TestActionKinds(t *testing.T) {
	seen := map[string]bool{}
	for _, k := range ActionKinds() {
		if !k.Valid() {
			t.Fatalf("%v listed but not valid", k)
		}
		if seen[k.String()] {
			t.Fatalf("duplicate name %q", k.String())
		}
		seen[k.String()] = true
	}
	if ActionNone.Valid() || ActionKind(99).Valid() {
		t.Fatalf("none or out-of-range kind reported valid")
	}
	if got := ActionKind(99).String(); got != "action(99)" {
		t.Fatalf("out-of-range String = %q", got)
	}
}
