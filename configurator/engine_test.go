package configurator

import (
	"strings"
	"testing"
)

func TestSelectVariantUnknownIDsNoOp(t *testing.T) {
	e := New(pizzaSnapshot())

	e.SelectVariant(999, 100)
	e.SelectVariant(10, 999)
	if _, ok := e.SelectedVariant(10); ok {
		t.Fatalf("expected no selection after invalid mutations")
	}
}

func TestSelectVariantRejectsForeignGroup(t *testing.T) {
	e := New(pizzaSnapshot())

	// 110 belongs to the Crust group, not Size
	e.SelectVariant(10, 110)
	if _, ok := e.SelectedVariant(10); ok {
		t.Fatalf("variant of another group must not be accepted")
	}
}

func TestSelectVariantReplacesGroupSelection(t *testing.T) {
	e := New(pizzaSnapshot())

	e.SelectVariant(10, 100)
	e.SelectVariant(10, 101)
	got, ok := e.SelectedVariant(10)
	if !ok || got != 101 {
		t.Fatalf("expected 101, got %d ok=%v", got, ok)
	}
}

func TestToggleAddonClampsQuantityToGroupMax(t *testing.T) {
	e := New(pizzaSnapshot())
	e.SelectVariant(10, 100)

	e.ToggleAddon(2001, 10)
	if got := e.AddonQuantity(200); got != 3 {
		t.Fatalf("expected clamp to group max 3, got %d", got)
	}
}

func TestToggleAddonSingleQuantityGroup(t *testing.T) {
	e := New(toppingsSnapshot())

	e.ToggleAddon(5001, 5)
	if got := e.AddonQuantity(500); got != 1 {
		t.Fatalf("AllowMulti=false must clamp quantity to 1, got %d", got)
	}
}

func TestToggleAddonZeroRemoves(t *testing.T) {
	e := New(pizzaSnapshot())
	e.SelectVariant(10, 100)

	e.ToggleAddon(2001, 2)
	e.ToggleAddon(2001, 0)
	if got := e.AddonQuantity(200); got != 0 {
		t.Fatalf("expected removal, got quantity %d", got)
	}
}

func TestToggleAddonRefusesNewAddonAtGroupMax(t *testing.T) {
	e := New(pizzaSnapshot())
	e.SelectVariant(10, 100)

	e.ToggleAddon(2001, 1) // Cheese
	e.ToggleAddon(2002, 1) // Olives
	e.ToggleAddon(2004, 1) // Jalapeno
	e.ToggleAddon(2005, 1) // Paneer, 4th in a max=3 group
	if got := e.AddonQuantity(203); got != 0 {
		t.Fatalf("4th addon must be refused, got quantity %d", got)
	}

	// bumping an already selected addon is still allowed
	e.ToggleAddon(2001, 2)
	if got := e.AddonQuantity(200); got != 2 {
		t.Fatalf("expected quantity update on selected addon, got %d", got)
	}
}

func TestToggleAddonUnknownPricingEntryNoOp(t *testing.T) {
	e := New(pizzaSnapshot())
	e.SelectVariant(10, 100)

	e.ToggleAddon(999999, 1)
	for _, a := range e.Snapshot().Addons {
		if e.AddonQuantity(a.ID) != 0 {
			t.Fatalf("unexpected selection for addon %d", a.ID)
		}
	}
}

func TestToggleAddonRejectsVariantRow(t *testing.T) {
	e := New(pizzaSnapshot())
	e.SelectVariant(10, 100)

	// 1001 is a variant pricing row, not an addon row
	e.ToggleAddon(1001, 1)
	if got := e.AddonQuantity(200); got != 0 {
		t.Fatalf("variant row must not select an addon, got %d", got)
	}
}

func TestSetQuantityClamps(t *testing.T) {
	e := New(pizzaSnapshot())

	e.SetQuantity(0)
	if e.Quantity() != 1 {
		t.Fatalf("expected clamp to 1, got %d", e.Quantity())
	}
	e.SetQuantity(1000)
	if e.Quantity() != MaxQuantity {
		t.Fatalf("expected clamp to %d, got %d", MaxQuantity, e.Quantity())
	}
	e.SetQuantity(7)
	if e.Quantity() != 7 {
		t.Fatalf("expected 7, got %d", e.Quantity())
	}
}

func TestSetCookingNoteTruncates(t *testing.T) {
	e := New(pizzaSnapshot())

	long := strings.Repeat("x", MaxCookingNote+50)
	e.SetCookingNote(long)
	if got := len([]rune(e.CookingNote())); got != MaxCookingNote {
		t.Fatalf("expected %d chars, got %d", MaxCookingNote, got)
	}

	e.SetCookingNote("less spicy please")
	if e.CookingNote() != "less spicy please" {
		t.Fatalf("short note must be stored verbatim")
	}
}

func TestToggleComboProductAddAndRemove(t *testing.T) {
	e := New(pizzaSnapshot())

	e.ToggleComboProduct(30, 2, 300, 0)
	sels := e.ComboSelections(30)
	if len(sels) != 1 || sels[0].ProductID != 2 || sels[0].Customized {
		t.Fatalf("unexpected selections: %+v", sels)
	}
	if len(sels[0].Pricing) != 0 {
		t.Fatalf("fresh selection must have empty pricing")
	}

	e.ToggleComboProduct(30, 2, 300, 0)
	if len(e.ComboSelections(30)) != 0 {
		t.Fatalf("second toggle must remove the pick")
	}
}

func TestToggleComboProductRefusesBeyondMax(t *testing.T) {
	e := New(pizzaSnapshot())

	e.ToggleComboProduct(30, 2, 300, 0)
	e.ToggleComboProduct(30, 3, 301, 0)
	e.ToggleComboProduct(30, 4, 302, 0) // max_selection = 2
	if got := len(e.ComboSelections(30)); got != 2 {
		t.Fatalf("expected 2 selections, got %d", got)
	}
}

func TestToggleComboProductUnknownGroupNoOp(t *testing.T) {
	e := New(pizzaSnapshot())

	e.ToggleComboProduct(999, 2, 300, 0)
	if len(e.ComboSelections(999)) != 0 {
		t.Fatalf("unknown group must not gain selections")
	}
}

func TestUpdateComboItemPricingSetsCustomized(t *testing.T) {
	e := New(pizzaSnapshot())
	e.ToggleComboProduct(30, 2, 300, 0)

	e.UpdateComboItemPricing(30, 0, []ComboPricing{{PricingEntryID: 4001, Quantity: 1, Price: 60}})
	sel := e.ComboSelections(30)[0]
	if !sel.Customized || len(sel.Pricing) != 1 {
		t.Fatalf("expected customized selection, got %+v", sel)
	}

	e.UpdateComboItemPricing(30, 0, nil)
	sel = e.ComboSelections(30)[0]
	if sel.Customized || len(sel.Pricing) != 0 {
		t.Fatalf("empty pricing must clear the customized flag, got %+v", sel)
	}
}

func TestUpdateComboItemPricingOutOfRangeNoOp(t *testing.T) {
	e := New(pizzaSnapshot())
	e.ToggleComboProduct(30, 2, 300, 0)

	e.UpdateComboItemPricing(30, 5, []ComboPricing{{PricingEntryID: 4001, Quantity: 1, Price: 60}})
	if e.ComboSelections(30)[0].Customized {
		t.Fatalf("out-of-range index must not touch selections")
	}
}
