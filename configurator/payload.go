package configurator

// PayloadVariant is one chosen variant as handed to the cart. Price is the
// variant's absolute price (primary) or its pricing-row amount (others).
type PayloadVariant struct {
	GroupID   uint64 `json:"group_id"`
	VariantID uint64 `json:"variant_id"`
	Price     uint32 `json:"price"`
}

type PayloadAddon struct {
	AddonID    uint64 `json:"addon_id"`
	GroupID    uint64 `json:"group_id"`
	Quantity   int    `json:"quantity"`
	UnitPrice  uint32 `json:"unit_price"`
	TotalPrice uint32 `json:"total_price"`
}

type PayloadCombo struct {
	ComboGroupID uint64           `json:"combo_group_id"`
	Selections   []ComboSelection `json:"selections"`
}

// CartPayload is the engine's only durable artifact, handed to the cart on
// add-to-cart.
type CartPayload struct {
	ProductID        uint64           `json:"product_id"`
	Quantity         int              `json:"quantity"`
	SelectedVariants []PayloadVariant `json:"selected_variants"`
	SelectedAddons   []PayloadAddon   `json:"selected_addons"`
	ComboSelections  []PayloadCombo   `json:"combo_selections"`
	TotalPrice       uint64           `json:"total_price"`
	CookingNote      string           `json:"cooking_note"`
}

// BuildCartPayload flattens the current selections into the cart shape.
// Selections invisible under the current primary context are dropped, the
// same filtering the resolver applies.
func (e *Engine) BuildCartPayload(mode Fulfillment) CartPayload {
	primaryID := e.primaryVariantID()
	p := CartPayload{
		ProductID:        e.snapshot.Product.ID,
		Quantity:         e.quantity,
		SelectedVariants: make([]PayloadVariant, 0),
		SelectedAddons:   make([]PayloadAddon, 0),
		ComboSelections:  make([]PayloadCombo, 0),
		TotalPrice:       e.TotalPrice(mode),
		CookingNote:      e.cookingNote,
	}

	for _, g := range e.snapshot.VariantGroups {
		variantID, ok := e.selectedVariants[g.ID]
		if !ok {
			continue
		}
		if g.IsPrimary {
			if v, ok := e.snapshot.VariantByID(variantID); ok {
				p.SelectedVariants = append(p.SelectedVariants, PayloadVariant{
					GroupID: g.ID, VariantID: variantID, Price: v.Price,
				})
			}
			continue
		}
		if entry, ok := e.snapshot.PricingFor(PricingTypeVariant, primaryID, variantID); ok {
			p.SelectedVariants = append(p.SelectedVariants, PayloadVariant{
				GroupID: g.ID, VariantID: variantID, Price: entry.Price,
			})
		}
	}

	for _, a := range e.snapshot.Addons {
		qty := e.selectedAddons[a.ID]
		if qty <= 0 {
			continue
		}
		if entry, ok := e.snapshot.PricingFor(PricingTypeAddon, primaryID, a.ID); ok {
			p.SelectedAddons = append(p.SelectedAddons, PayloadAddon{
				AddonID:    a.ID,
				GroupID:    a.GroupID,
				Quantity:   qty,
				UnitPrice:  entry.Price,
				TotalPrice: entry.Price * uint32(qty),
			})
		}
	}

	for _, g := range e.snapshot.ComboGroups {
		selections := e.comboSelections[g.ID]
		if len(selections) == 0 {
			continue
		}
		p.ComboSelections = append(p.ComboSelections, PayloadCombo{
			ComboGroupID: g.ID,
			Selections:   selections,
		})
	}
	return p
}
