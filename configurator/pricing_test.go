package configurator

import "testing"

// Selecting Large (800) with quantity 2 and delivery off prices at 1600.
func TestPrimaryVariantTimesQuantity(t *testing.T) {
	snap := &CatalogSnapshot{
		Product: Product{ID: 1, Name: "Pizza", BasePrice: 400},
		VariantGroups: []VariantGroup{
			{ID: 10, Label: "Size", IsPrimary: true},
		},
		Variants: []Variant{
			{ID: 100, GroupID: 10, Label: "Small", Price: 500},
			{ID: 101, GroupID: 10, Label: "Large", Price: 800},
		},
	}
	e := New(snap)
	e.SelectVariant(10, 101)
	e.SetQuantity(2)

	if got := e.TotalPrice(FulfillmentPickup); got != 1600 {
		t.Fatalf("expected 1600, got %d", got)
	}
}

func TestBasePriceWithoutPrimaryGroup(t *testing.T) {
	e := New(toppingsSnapshot())

	if got := e.TotalPrice(FulfillmentPickup); got != 300 {
		t.Fatalf("expected product base price 300, got %d", got)
	}
}

func TestPackagingChargedOnDeliveryOnly(t *testing.T) {
	e := New(pizzaSnapshot())
	e.SelectVariant(10, 101)

	if got := e.TotalPrice(FulfillmentPickup); got != 800 {
		t.Fatalf("pickup must not include packaging, got %d", got)
	}
	if got := e.TotalPrice(FulfillmentDineIn); got != 800 {
		t.Fatalf("dine-in must not include packaging, got %d", got)
	}
	// variant-level packaging once a primary variant is selected
	if got := e.TotalPrice(FulfillmentDelivery); got != 815 {
		t.Fatalf("expected 800+15 on delivery, got %d", got)
	}
}

func TestPackagingFallsBackToProduct(t *testing.T) {
	e := New(pizzaSnapshot())

	// no primary selection: product packaging applies on top of base price
	want := uint64(400 + 20)
	if got := e.TotalPrice(FulfillmentDelivery); got != want {
		t.Fatalf("expected %d, got %d", want, got)
	}
}

func TestSubVariantPricedByPrimaryContext(t *testing.T) {
	e := New(pizzaSnapshot())
	e.SelectVariant(11, 111) // Cheese Burst

	e.SelectVariant(10, 100)
	if got := e.TotalPrice(FulfillmentPickup); got != 600 {
		t.Fatalf("expected 500+100 under Small, got %d", got)
	}

	e.SelectVariant(10, 101)
	if got := e.TotalPrice(FulfillmentPickup); got != 950 {
		t.Fatalf("expected 800+150 under Large, got %d", got)
	}
}

func TestAddonPriceTimesAddonQuantity(t *testing.T) {
	e := New(pizzaSnapshot())
	e.SelectVariant(10, 100)
	e.ToggleAddon(2001, 2) // Cheese, 50 each under Small

	if got := e.TotalPrice(FulfillmentPickup); got != 600 {
		t.Fatalf("expected 500+2*50, got %d", got)
	}
}

// Selections with no pricing row under the current primary context contribute
// nothing, and revive if the context switches back.
func TestInvisibleSelectionsExcluded(t *testing.T) {
	e := New(pizzaSnapshot())
	e.SelectVariant(10, 100)
	e.ToggleAddon(2002, 1) // Olives, priced only under Small

	if got := e.TotalPrice(FulfillmentPickup); got != 530 {
		t.Fatalf("expected 530 under Small, got %d", got)
	}

	e.SelectVariant(10, 101)
	if got := e.TotalPrice(FulfillmentPickup); got != 800 {
		t.Fatalf("invisible addon must not price under Large, got %d", got)
	}

	e.SelectVariant(10, 100)
	if got := e.TotalPrice(FulfillmentPickup); got != 530 {
		t.Fatalf("selection must revive when context returns, got %d", got)
	}
}

func TestComboPricingSummedIntoTotal(t *testing.T) {
	e := New(pizzaSnapshot())
	e.SelectVariant(10, 100)
	e.ToggleComboProduct(30, 2, 300, 0)
	e.ToggleComboProduct(30, 3, 301, 0)
	e.UpdateComboItemPricing(30, 0, []ComboPricing{
		{PricingEntryID: 4001, Quantity: 2, Price: 60},
		{PricingEntryID: 4002, Quantity: 1, Price: 40},
	})

	// 500 + 2*60 + 40; the uncustomized second pick contributes nothing
	if got := e.TotalPrice(FulfillmentPickup); got != 660 {
		t.Fatalf("expected 660, got %d", got)
	}
}

// Bumping quantity by one raises the total by exactly the per-unit price.
func TestPriceMonotonicInQuantity(t *testing.T) {
	e := New(pizzaSnapshot())
	e.SelectVariant(10, 101)
	e.SelectVariant(11, 111)
	e.ToggleAddon(2003, 2)

	perUnit := e.Price(FulfillmentDelivery).PerUnit
	for q := 1; q <= 5; q++ {
		e.SetQuantity(q)
		want := uint64(perUnit) * uint64(q)
		if got := e.TotalPrice(FulfillmentDelivery); got != want {
			t.Fatalf("quantity %d: expected %d, got %d", q, want, got)
		}
	}
}

func TestPriceBreakdownComposition(t *testing.T) {
	e := New(pizzaSnapshot())
	e.SelectVariant(10, 100)
	e.SelectVariant(11, 111)
	e.ToggleAddon(2001, 1)
	e.SetQuantity(3)

	b := e.Price(FulfillmentDelivery)
	if b.Base != 500 || b.Packaging != 10 || b.Variants != 100 || b.Addons != 50 || b.Combos != 0 {
		t.Fatalf("unexpected breakdown: %+v", b)
	}
	if b.PerUnit != 660 || b.Total != 1980 {
		t.Fatalf("unexpected totals: %+v", b)
	}
}
