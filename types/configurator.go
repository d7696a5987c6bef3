package types

import "github.com/vrajpatel2451/pizzaspaceweb-sub000/configurator"

type StartSessionRequest struct {
	ProductID   uint64 `json:"product_id" binding:"required"` // product being configured
	Fulfillment string `json:"fulfillment"`                   // delivery / pickup / dine_in, defaults to delivery
}

type SelectVariantRequest struct {
	GroupID   uint64 `json:"group_id" binding:"required"`
	VariantID uint64 `json:"variant_id" binding:"required"`
}

type ToggleAddonRequest struct {
	PricingEntryID uint64 `json:"pricing_entry_id" binding:"required"`
	Quantity       int    `json:"quantity"` // <= 0 unselects
}

type SetQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

type CookingNoteRequest struct {
	Note string `json:"note"`
}

type ToggleComboRequest struct {
	ComboGroupID        uint64 `json:"combo_group_id" binding:"required"`
	ProductID           uint64 `json:"product_id" binding:"required"`
	ComboGroupProductID uint64 `json:"combo_group_product_id" binding:"required"`
	DefaultVariantID    uint64 `json:"default_variant_id"`
}

type OpenCustomizationRequest struct {
	ComboGroupID uint64 `json:"combo_group_id" binding:"required"`
	Index        int    `json:"index"` // position inside the group's selections
}

type SelectedVariant struct {
	GroupID   uint64 `json:"group_id"`
	VariantID uint64 `json:"variant_id"`
}

type SelectedAddon struct {
	AddonID  uint64 `json:"addon_id"`
	Quantity int    `json:"quantity"`
}

type ComboGroupSelections struct {
	ComboGroupID uint64                        `json:"combo_group_id"`
	Selections   []configurator.ComboSelection `json:"selections"`
}

// CustomizationState mirrors the nested sub-session for the UI. Loaded is
// false while the nested catalog fetch is outstanding or failed.
type CustomizationState struct {
	ComboGroupID     uint64                       `json:"combo_group_id"`
	Index            int                          `json:"index"`
	Loaded           bool                         `json:"loaded"`
	Snapshot         *configurator.CatalogSnapshot `json:"snapshot,omitempty"`
	SelectedVariants []SelectedVariant            `json:"selected_variants,omitempty"`
	SelectedAddons   []SelectedAddon              `json:"selected_addons,omitempty"`
	IsValid          bool                         `json:"is_valid"`
	Errors           []string                     `json:"errors,omitempty"`
	Price            configurator.PriceBreakdown  `json:"price"`
}

// SessionState is the full derived state the UI renders after every mutation.
type SessionState struct {
	SessionID        string                      `json:"session_id"`
	ProductID        uint64                      `json:"product_id"`
	ProductName      string                      `json:"product_name"`
	Fulfillment      string                      `json:"fulfillment"`
	SelectedVariants []SelectedVariant           `json:"selected_variants"`
	SelectedAddons   []SelectedAddon             `json:"selected_addons"`
	ComboSelections  []ComboGroupSelections      `json:"combo_selections"`
	Quantity         int                         `json:"quantity"`
	CookingNote      string                      `json:"cooking_note"`
	IsValid          bool                        `json:"is_valid"`
	Errors           []string                    `json:"errors"`
	Price            configurator.PriceBreakdown `json:"price"`
	Customization    *CustomizationState         `json:"customization,omitempty"`
}
