package configurator

// PriceBreakdown is the per-unit composition of the current selection price.
// All amounts are minor units; no rounding or formatting happens here.
type PriceBreakdown struct {
	Base      uint32 `json:"base"`
	Packaging uint32 `json:"packaging"`
	Variants  uint32 `json:"variants"`
	Addons    uint32 `json:"addons"`
	Combos    uint32 `json:"combos"`
	PerUnit   uint32 `json:"per_unit"`
	Quantity  int    `json:"quantity"`
	Total     uint64 `json:"total"`
}

// Price derives the current price from scratch. Packaging charges only apply
// on delivery: variant-level charges when a primary variant is selected, the
// product's own otherwise. Sub-variant and addon rows are absolute amounts
// under the current primary context; rows missing for that context are
// skipped. Combo picks contribute only their folded customization pricing.
func (e *Engine) Price(mode Fulfillment) PriceBreakdown {
	b := PriceBreakdown{Quantity: e.quantity}
	primaryID := e.primaryVariantID()

	b.Base = e.snapshot.Product.BasePrice
	var primary *Variant
	if primaryID != 0 {
		if v, ok := e.snapshot.VariantByID(primaryID); ok {
			primary = v
			b.Base = v.Price
		}
	}

	if mode == FulfillmentDelivery {
		if primary != nil {
			b.Packaging = primary.PackagingCharges
		} else {
			b.Packaging = e.snapshot.Product.PackagingCharges
		}
	}

	for _, g := range e.snapshot.VariantGroups {
		if g.IsPrimary {
			continue
		}
		variantID, ok := e.selectedVariants[g.ID]
		if !ok {
			continue
		}
		if entry, ok := e.snapshot.PricingFor(PricingTypeVariant, primaryID, variantID); ok {
			b.Variants += entry.Price
		}
	}

	for _, a := range e.snapshot.Addons {
		qty := e.selectedAddons[a.ID]
		if qty <= 0 {
			continue
		}
		if entry, ok := e.snapshot.PricingFor(PricingTypeAddon, primaryID, a.ID); ok {
			b.Addons += entry.Price * uint32(qty)
		}
	}

	for _, g := range e.snapshot.ComboGroups {
		for _, sel := range e.comboSelections[g.ID] {
			for _, p := range sel.Pricing {
				b.Combos += p.Price * uint32(p.Quantity)
			}
		}
	}

	b.PerUnit = b.Base + b.Packaging + b.Variants + b.Addons + b.Combos
	b.Total = uint64(b.PerUnit) * uint64(e.quantity)
	return b
}

// TotalPrice is the line total for the current selections.
func (e *Engine) TotalPrice(mode Fulfillment) uint64 {
	return e.Price(mode).Total
}
