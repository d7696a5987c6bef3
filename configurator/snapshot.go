package configurator

// Pricing row discriminators, matching the type column of pricing_entries.
const (
	PricingTypeVariant = "variant"
	PricingTypeAddon   = "addon"
)

// Fulfillment is consulted only for packaging charges.
type Fulfillment string

const (
	FulfillmentDelivery Fulfillment = "delivery"
	FulfillmentPickup   Fulfillment = "pickup"
	FulfillmentDineIn   Fulfillment = "dine_in"
)

type Product struct {
	ID               uint64 `json:"id"`
	Name             string `json:"name"`
	BasePrice        uint32 `json:"base_price"`        // minor currency units
	PackagingCharges uint32 `json:"packaging_charges"` // charged on delivery only
	DietType         string `json:"diet_type"`         // veg / non_veg / vegan
	Description      string `json:"description"`
}

type VariantGroup struct {
	ID        uint64 `json:"id"`
	Label     string `json:"label"`
	IsPrimary bool   `json:"is_primary"` // the primary group drives base pricing
}

type Variant struct {
	ID               uint64 `json:"id"`
	GroupID          uint64 `json:"group_id"`
	Label            string `json:"label"`
	Price            uint32 `json:"price"` // absolute, meaningful on primary-group variants
	PackagingCharges uint32 `json:"packaging_charges"`
}

type AddonGroup struct {
	ID         uint64 `json:"id"`
	Label      string `json:"label"`
	AllowMulti bool   `json:"allow_multi"` // quantity > 1 per addon
	Min        int    `json:"min"`
	Max        int    `json:"max"`
}

type Addon struct {
	ID      uint64 `json:"id"`
	GroupID uint64 `json:"group_id"`
	Label   string `json:"label"`
}

// PricingEntry is one row of the flat pricing table. VariantID is the primary
// variant the row applies under; RefID is the sub-variant or addon being priced.
// A sub-variant/addon with no row for the current primary variant is invisible.
type PricingEntry struct {
	ID        uint64 `json:"id"`
	Type      string `json:"type"`
	VariantID uint64 `json:"variant_id"`
	RefID     uint64 `json:"ref_id"`
	Price     uint32 `json:"price"`
}

type ComboGroup struct {
	ID                 uint64 `json:"id"`
	Label              string `json:"label"`
	MinSelection       int    `json:"min_selection"`
	MaxSelection       int    `json:"max_selection"`
	AllowCustomization bool   `json:"allow_customization"`
}

type ComboGroupProduct struct {
	ID               uint64   `json:"id"`
	ComboGroupID     uint64   `json:"combo_group_id"`
	ProductID        uint64   `json:"product_id"`
	DefaultVariantID uint64   `json:"default_variant_id"`
	Product          *Product `json:"product,omitempty"`
}

// CatalogSnapshot is everything an editing session needs about one product.
// Immutable once handed to an Engine.
type CatalogSnapshot struct {
	Product            Product             `json:"product"`
	VariantGroups      []VariantGroup      `json:"variant_groups"`
	Variants           []Variant           `json:"variants"`
	AddonGroups        []AddonGroup        `json:"addon_groups"`
	Addons             []Addon             `json:"addons"`
	ComboGroups        []ComboGroup        `json:"combo_groups,omitempty"`
	ComboGroupProducts []ComboGroupProduct `json:"combo_group_products,omitempty"`
	Pricing            []PricingEntry      `json:"pricing"`
}

// PrimaryGroup returns the primary variant group, if the product has one.
func (s *CatalogSnapshot) PrimaryGroup() (*VariantGroup, bool) {
	for i := range s.VariantGroups {
		if s.VariantGroups[i].IsPrimary {
			return &s.VariantGroups[i], true
		}
	}
	return nil, false
}

func (s *CatalogSnapshot) VariantGroupByID(id uint64) (*VariantGroup, bool) {
	for i := range s.VariantGroups {
		if s.VariantGroups[i].ID == id {
			return &s.VariantGroups[i], true
		}
	}
	return nil, false
}

func (s *CatalogSnapshot) VariantByID(id uint64) (*Variant, bool) {
	for i := range s.Variants {
		if s.Variants[i].ID == id {
			return &s.Variants[i], true
		}
	}
	return nil, false
}

func (s *CatalogSnapshot) AddonByID(id uint64) (*Addon, bool) {
	for i := range s.Addons {
		if s.Addons[i].ID == id {
			return &s.Addons[i], true
		}
	}
	return nil, false
}

func (s *CatalogSnapshot) AddonGroupByID(id uint64) (*AddonGroup, bool) {
	for i := range s.AddonGroups {
		if s.AddonGroups[i].ID == id {
			return &s.AddonGroups[i], true
		}
	}
	return nil, false
}

func (s *CatalogSnapshot) ComboGroupByID(id uint64) (*ComboGroup, bool) {
	for i := range s.ComboGroups {
		if s.ComboGroups[i].ID == id {
			return &s.ComboGroups[i], true
		}
	}
	return nil, false
}

// PricingByID looks a row up by primary key.
func (s *CatalogSnapshot) PricingByID(id uint64) (*PricingEntry, bool) {
	for i := range s.Pricing {
		if s.Pricing[i].ID == id {
			return &s.Pricing[i], true
		}
	}
	return nil, false
}

// PricingFor resolves the row for refID (sub-variant or addon) under the given
// primary variant context. ok=false means "not applicable" for that context.
func (s *CatalogSnapshot) PricingFor(kind string, primaryVariantID, refID uint64) (*PricingEntry, bool) {
	for i := range s.Pricing {
		e := &s.Pricing[i]
		if e.Type == kind && e.VariantID == primaryVariantID && e.RefID == refID {
			return e, true
		}
	}
	return nil, false
}
