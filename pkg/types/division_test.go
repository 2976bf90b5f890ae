package types

import "testing"

func TestDivisionsReturnsCopy(t *testing.T) {
	first := Divisions()
	first[0].Name = "mutated"

	second := Divisions()
	if second[0].Name == "mutated" {
		t.Fatal("Divisions must return a fresh copy, not the static table")
	}
}

func TestDivisionsOrder(t *testing.T) {
	divs := Divisions()
	if len(divs) != 3 {
		t.Fatalf("expected 3 divisions, got %d", len(divs))
	}
	for i, d := range divs {
		if d.SortOrder != i+1 {
			t.Fatalf("division %d has sort order %d", i, d.SortOrder)
		}
	}
}

func TestDivisionByID(t *testing.T) {
	t.Run("known division", func(t *testing.T) {
		d, ok := DivisionByID(DivisionCapitalMarkets)
		if !ok {
			t.Fatal("expected division to be found")
		}
		if d.Name != "Capital Markets" {
			t.Fatalf("unexpected name %q", d.Name)
		}
	})

	t.Run("unknown division is not an error", func(t *testing.T) {
		_, ok := DivisionByID("div-nope")
		if ok {
			t.Fatal("expected no match for unknown ID")
		}
	})
}
