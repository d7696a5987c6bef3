package configurator

// pizzaSnapshot is the shared fixture: a pizza with a primary Size group,
// a secondary Crust group, a Toppings addon group and a Sides combo group.
// Crust and topping prices differ between the Small and Large contexts, and
// Olives is only priced under Small.
func pizzaSnapshot() *CatalogSnapshot {
	return &CatalogSnapshot{
		Product: Product{ID: 1, Name: "Margherita", BasePrice: 400, PackagingCharges: 20, DietType: "veg"},
		VariantGroups: []VariantGroup{
			{ID: 10, Label: "Size", IsPrimary: true},
			{ID: 11, Label: "Crust"},
		},
		Variants: []Variant{
			{ID: 100, GroupID: 10, Label: "Small", Price: 500, PackagingCharges: 10},
			{ID: 101, GroupID: 10, Label: "Large", Price: 800, PackagingCharges: 15},
			{ID: 110, GroupID: 11, Label: "Thin"},
			{ID: 111, GroupID: 11, Label: "Cheese Burst"},
		},
		AddonGroups: []AddonGroup{
			{ID: 20, Label: "Toppings", AllowMulti: true, Min: 0, Max: 3},
		},
		Addons: []Addon{
			{ID: 200, GroupID: 20, Label: "Cheese"},
			{ID: 201, GroupID: 20, Label: "Olives"},
			{ID: 202, GroupID: 20, Label: "Jalapeno"},
			{ID: 203, GroupID: 20, Label: "Paneer"},
		},
		ComboGroups: []ComboGroup{
			{ID: 30, Label: "Sides", MinSelection: 1, MaxSelection: 2, AllowCustomization: true},
		},
		ComboGroupProducts: []ComboGroupProduct{
			{ID: 300, ComboGroupID: 30, ProductID: 2, DefaultVariantID: 0},
			{ID: 301, ComboGroupID: 30, ProductID: 3, DefaultVariantID: 0},
			{ID: 302, ComboGroupID: 30, ProductID: 4, DefaultVariantID: 0},
		},
		Pricing: []PricingEntry{
			{ID: 1001, Type: PricingTypeVariant, VariantID: 100, RefID: 111, Price: 100},
			{ID: 1002, Type: PricingTypeVariant, VariantID: 101, RefID: 111, Price: 150},
			{ID: 1003, Type: PricingTypeVariant, VariantID: 100, RefID: 110, Price: 0},
			{ID: 1004, Type: PricingTypeVariant, VariantID: 101, RefID: 110, Price: 0},
			{ID: 2001, Type: PricingTypeAddon, VariantID: 100, RefID: 200, Price: 50},
			{ID: 2002, Type: PricingTypeAddon, VariantID: 100, RefID: 201, Price: 30},
			{ID: 2003, Type: PricingTypeAddon, VariantID: 101, RefID: 200, Price: 70},
			{ID: 2004, Type: PricingTypeAddon, VariantID: 100, RefID: 202, Price: 40},
			{ID: 2005, Type: PricingTypeAddon, VariantID: 100, RefID: 203, Price: 80},
			{ID: 2006, Type: PricingTypeAddon, VariantID: 101, RefID: 202, Price: 45},
		},
	}
}

// sideSnapshot is the nested catalog for the Garlic Bread combo pick: no
// primary group, one Dips addon group priced in the empty context.
func sideSnapshot() *CatalogSnapshot {
	return &CatalogSnapshot{
		Product: Product{ID: 2, Name: "Garlic Bread", BasePrice: 150, PackagingCharges: 5},
		AddonGroups: []AddonGroup{
			{ID: 40, Label: "Dips", AllowMulti: true, Min: 0, Max: 2},
		},
		Addons: []Addon{
			{ID: 400, GroupID: 40, Label: "Cheesy Dip"},
			{ID: 401, GroupID: 40, Label: "Garlic Aioli"},
		},
		Pricing: []PricingEntry{
			{ID: 4001, Type: PricingTypeAddon, VariantID: 0, RefID: 400, Price: 60},
			{ID: 4002, Type: PricingTypeAddon, VariantID: 0, RefID: 401, Price: 40},
		},
	}
}

// toppingsSnapshot is the Scenario B shape: no variant groups, one
// single-quantity Toppings group with min 1.
func toppingsSnapshot() *CatalogSnapshot {
	return &CatalogSnapshot{
		Product: Product{ID: 5, Name: "Plain Pizza", BasePrice: 300},
		AddonGroups: []AddonGroup{
			{ID: 50, Label: "Toppings", AllowMulti: false, Min: 1, Max: 2},
		},
		Addons: []Addon{
			{ID: 500, GroupID: 50, Label: "Cheese"},
			{ID: 501, GroupID: 50, Label: "Olives"},
		},
		Pricing: []PricingEntry{
			{ID: 5001, Type: PricingTypeAddon, VariantID: 0, RefID: 500, Price: 50},
			{ID: 5002, Type: PricingTypeAddon, VariantID: 0, RefID: 501, Price: 30},
		},
	}
}
