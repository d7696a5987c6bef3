package configurator

import (
	"reflect"
	"testing"
)

func TestPrimaryGroupSelectionRequired(t *testing.T) {
	e := New(pizzaSnapshot())

	res := e.Validate()
	if res.IsValid {
		t.Fatalf("expected invalid without a primary selection")
	}
	if res.Errors[0] != "Please select a Size" {
		t.Fatalf("unexpected message: %q", res.Errors[0])
	}

	// other selections never compensate for a missing primary pick
	e.SelectVariant(11, 110)
	e.ToggleComboProduct(30, 2, 300, 0)
	if e.Validate().IsValid {
		t.Fatalf("still invalid without a primary selection")
	}

	e.SelectVariant(10, 100)
	if res := e.Validate(); !res.IsValid {
		t.Fatalf("expected valid, got %v", res.Errors)
	}
}

func TestAddonGroupMinimum(t *testing.T) {
	e := New(toppingsSnapshot())

	res := e.Validate()
	if res.IsValid {
		t.Fatalf("expected invalid with no topping selected")
	}
	found := false
	for _, msg := range res.Errors {
		if msg == "Please select at least 1 Toppings" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a Toppings minimum error, got %v", res.Errors)
	}

	before := e.TotalPrice(FulfillmentPickup)
	e.ToggleAddon(5001, 1) // Cheese, 50
	if res := e.Validate(); !res.IsValid {
		t.Fatalf("expected valid after selecting one topping, got %v", res.Errors)
	}
	if got := e.TotalPrice(FulfillmentPickup); got != before+50 {
		t.Fatalf("expected total to rise by 50, got %d -> %d", before, got)
	}
}

// Addons invisible under the current primary context do not count toward the
// group minimum.
func TestAddonCountingRespectsVisibility(t *testing.T) {
	snap := pizzaSnapshot()
	snap.AddonGroups[0].Min = 1
	e := New(snap)

	e.SelectVariant(10, 100)
	e.ToggleAddon(2002, 1) // Olives, priced only under Small
	if res := e.Validate(); !res.IsValid {
		t.Fatalf("expected valid under Small, got %v", res.Errors)
	}

	e.SelectVariant(10, 101)
	res := e.Validate()
	if res.IsValid {
		t.Fatalf("expected invalid: the only selected addon is invisible under Large")
	}
	if res.Errors[0] != "Please select at least 1 Toppings" {
		t.Fatalf("unexpected message: %q", res.Errors[0])
	}
}

func TestComboGroupBounds(t *testing.T) {
	snap := pizzaSnapshot()
	snap.ComboGroups[0].MinSelection = 1
	snap.ComboGroups[0].MaxSelection = 1
	e := New(snap)
	e.SelectVariant(10, 100)

	res := e.Validate()
	if res.IsValid {
		t.Fatalf("expected invalid with no side selected")
	}
	if res.Errors[0] != "Please select 1-1 items for Sides" {
		t.Fatalf("unexpected message: %q", res.Errors[0])
	}

	e.ToggleComboProduct(30, 2, 300, 0)
	if res := e.Validate(); !res.IsValid {
		t.Fatalf("expected valid with one side, got %v", res.Errors)
	}
	if got := len(e.ComboSelections(30)); got != 1 {
		t.Fatalf("expected one selection, got %d", got)
	}
}

func TestAllViolationsCollectedInOrder(t *testing.T) {
	snap := pizzaSnapshot()
	snap.AddonGroups[0].Min = 1
	e := New(snap)

	res := e.Validate()
	want := []string{
		"Please select a Size",
		"Please select at least 1 Toppings",
		"Please select 1-2 items for Sides",
	}
	if !reflect.DeepEqual(res.Errors, want) {
		t.Fatalf("expected %v, got %v", want, res.Errors)
	}
}

func TestValidateIsIdempotent(t *testing.T) {
	e := New(pizzaSnapshot())
	e.SelectVariant(11, 110)

	first := e.Validate()
	second := e.Validate()
	if first.IsValid != second.IsValid || !reflect.DeepEqual(first.Errors, second.Errors) {
		t.Fatalf("repeated validation diverged: %v vs %v", first, second)
	}
}
