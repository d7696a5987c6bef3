package configurator

// NewSub builds the nested engine for one combo pick. The pick's variant
// seeds the nested primary group; previously folded pricing rows are
// converted back into nested selections so reopening a customization shows
// what was saved.
func NewSub(snapshot *CatalogSnapshot, defaultVariantID uint64, seed []ComboPricing) *Engine {
	e := New(snapshot)

	if v, ok := snapshot.VariantByID(defaultVariantID); ok {
		e.selectedVariants[v.GroupID] = v.ID
	}

	for _, p := range seed {
		entry, ok := snapshot.PricingByID(p.PricingEntryID)
		if !ok {
			continue
		}
		switch entry.Type {
		case PricingTypeAddon:
			if addon, ok := snapshot.AddonByID(entry.RefID); ok {
				qty := p.Quantity
				if qty < 1 {
					qty = 1
				}
				e.selectedAddons[addon.ID] = qty
			}
		case PricingTypeVariant:
			if v, ok := snapshot.VariantByID(entry.RefID); ok {
				e.selectedVariants[v.GroupID] = v.ID
			}
		}
	}
	return e
}

// SelectedPricing resolves the current non-primary variant and addon
// selections into priced rows for folding back into the parent selection.
// Rows invisible under the current primary context are dropped. Order is
// deterministic: variants in group order, then addons in catalog order.
func (e *Engine) SelectedPricing() []ComboPricing {
	primaryID := e.primaryVariantID()
	out := make([]ComboPricing, 0)

	for _, g := range e.snapshot.VariantGroups {
		if g.IsPrimary {
			continue
		}
		variantID, ok := e.selectedVariants[g.ID]
		if !ok {
			continue
		}
		if entry, ok := e.snapshot.PricingFor(PricingTypeVariant, primaryID, variantID); ok {
			out = append(out, ComboPricing{PricingEntryID: entry.ID, Quantity: 1, Price: entry.Price})
		}
	}

	for _, a := range e.snapshot.Addons {
		qty := e.selectedAddons[a.ID]
		if qty <= 0 {
			continue
		}
		if entry, ok := e.snapshot.PricingFor(PricingTypeAddon, primaryID, a.ID); ok {
			out = append(out, ComboPricing{PricingEntryID: entry.ID, Quantity: qty, Price: entry.Price})
		}
	}
	return out
}
