package configurator

const (
	MaxQuantity      = 99
	MaxCookingNote   = 200
	defaultQuantity  = 1
	singleSelectOnly = 1
)

// ComboPricing is one priced line folded back from a combo customization.
type ComboPricing struct {
	PricingEntryID uint64 `json:"pricing_entry_id"`
	Quantity       int    `json:"quantity"`
	Price          uint32 `json:"price"`
}

// ComboSelection is one product picked inside a combo group.
type ComboSelection struct {
	ProductID           uint64         `json:"product_id"`
	ComboGroupProductID uint64         `json:"combo_group_product_id"`
	VariantID           uint64         `json:"variant_id"`
	Customized          bool           `json:"customized"`
	Pricing             []ComboPricing `json:"pricing"`
}

// CustomizationTarget identifies the single combo pick being customized.
type CustomizationTarget struct {
	ComboGroupID uint64 `json:"combo_group_id"`
	Index        int    `json:"index"`
}

// Engine owns the mutable selection state for one product editing session.
// All mutations are synchronous and perform no I/O; unknown ids no-op so the
// UI stays resilient to stale references after catalog changes.
type Engine struct {
	snapshot *CatalogSnapshot

	selectedVariants map[uint64]uint64 // group id -> variant id
	selectedAddons   map[uint64]int    // addon id -> quantity, 0 means unselected
	comboSelections  map[uint64][]ComboSelection
	quantity         int
	cookingNote      string
	active           *CustomizationTarget
}

func New(snapshot *CatalogSnapshot) *Engine {
	return &Engine{
		snapshot:         snapshot,
		selectedVariants: make(map[uint64]uint64),
		selectedAddons:   make(map[uint64]int),
		comboSelections:  make(map[uint64][]ComboSelection),
		quantity:         defaultQuantity,
	}
}

func (e *Engine) Snapshot() *CatalogSnapshot {
	return e.snapshot
}

// primaryVariantID is the pricing context for all sub-variant/addon lookups.
// Zero until the primary group has a selection (or the product has none).
func (e *Engine) primaryVariantID() uint64 {
	pg, ok := e.snapshot.PrimaryGroup()
	if !ok {
		return 0
	}
	return e.selectedVariants[pg.ID]
}

// SelectVariant sets the single selection of a variant group. Selections that
// become invisible under a new primary context are kept; pricing and
// validation filter them out at derivation time.
func (e *Engine) SelectVariant(groupID, variantID uint64) {
	if _, ok := e.snapshot.VariantGroupByID(groupID); !ok {
		return
	}
	v, ok := e.snapshot.VariantByID(variantID)
	if !ok || v.GroupID != groupID {
		return
	}
	e.selectedVariants[groupID] = variantID
}

// SelectedVariant reports the current selection of a variant group.
func (e *Engine) SelectedVariant(groupID uint64) (uint64, bool) {
	id, ok := e.selectedVariants[groupID]
	return id, ok
}

// ToggleAddon sets an addon quantity via its pricing row. quantity <= 0
// unselects. Quantity is clamped to the group bound (1 when the group is
// single-quantity), and a new addon is refused once the group already has
// max addons selected.
func (e *Engine) ToggleAddon(pricingEntryID uint64, quantity int) {
	entry, ok := e.snapshot.PricingByID(pricingEntryID)
	if !ok || entry.Type != PricingTypeAddon {
		return
	}
	addon, ok := e.snapshot.AddonByID(entry.RefID)
	if !ok {
		return
	}
	group, ok := e.snapshot.AddonGroupByID(addon.GroupID)
	if !ok {
		return
	}

	if quantity <= 0 {
		delete(e.selectedAddons, addon.ID)
		return
	}

	if _, selected := e.selectedAddons[addon.ID]; !selected {
		if e.selectedCountInGroup(group.ID) >= group.Max {
			return
		}
	}

	limit := singleSelectOnly
	if group.AllowMulti {
		limit = group.Max
	}
	if quantity > limit {
		quantity = limit
	}
	e.selectedAddons[addon.ID] = quantity
}

// AddonQuantity reports the selected quantity for an addon, 0 when unselected.
func (e *Engine) AddonQuantity(addonID uint64) int {
	return e.selectedAddons[addonID]
}

func (e *Engine) selectedCountInGroup(groupID uint64) int {
	count := 0
	for _, a := range e.snapshot.Addons {
		if a.GroupID == groupID && e.selectedAddons[a.ID] > 0 {
			count++
		}
	}
	return count
}

// addonVisible reports whether an addon is priced under the current primary
// variant context.
func (e *Engine) addonVisible(addonID uint64) bool {
	_, ok := e.snapshot.PricingFor(PricingTypeAddon, e.primaryVariantID(), addonID)
	return ok
}

func (e *Engine) SetQuantity(n int) {
	if n < 1 {
		n = 1
	}
	if n > MaxQuantity {
		n = MaxQuantity
	}
	e.quantity = n
}

func (e *Engine) Quantity() int {
	return e.quantity
}

func (e *Engine) SetCookingNote(text string) {
	if r := []rune(text); len(r) > MaxCookingNote {
		text = string(r[:MaxCookingNote])
	}
	e.cookingNote = text
}

func (e *Engine) CookingNote() string {
	return e.cookingNote
}

// ToggleComboProduct removes the product if already picked in the group,
// otherwise appends a fresh selection with the default variant. Adding past
// MaxSelection is silently refused; the validator reports group bounds.
func (e *Engine) ToggleComboProduct(comboGroupID, productID, comboGroupProductID, defaultVariantID uint64) {
	group, ok := e.snapshot.ComboGroupByID(comboGroupID)
	if !ok {
		return
	}

	selections := e.comboSelections[comboGroupID]
	for i, sel := range selections {
		if sel.ProductID == productID {
			e.comboSelections[comboGroupID] = append(selections[:i], selections[i+1:]...)
			if e.active != nil && e.active.ComboGroupID == comboGroupID {
				// the customization target index is no longer trustworthy
				e.active = nil
			}
			return
		}
	}

	if len(selections) >= group.MaxSelection {
		return
	}
	e.comboSelections[comboGroupID] = append(selections, ComboSelection{
		ProductID:           productID,
		ComboGroupProductID: comboGroupProductID,
		VariantID:           defaultVariantID,
		Customized:          false,
		Pricing:             []ComboPricing{},
	})
}

// ComboSelections reports the current picks of a combo group.
func (e *Engine) ComboSelections(comboGroupID uint64) []ComboSelection {
	return e.comboSelections[comboGroupID]
}

// OpenComboCustomization marks one combo pick as the active customization
// target. Opening while another target is active replaces it.
func (e *Engine) OpenComboCustomization(comboGroupID uint64, index int) bool {
	group, ok := e.snapshot.ComboGroupByID(comboGroupID)
	if !ok || !group.AllowCustomization {
		return false
	}
	if index < 0 || index >= len(e.comboSelections[comboGroupID]) {
		return false
	}
	e.active = &CustomizationTarget{ComboGroupID: comboGroupID, Index: index}
	return true
}

func (e *Engine) CloseComboCustomization() {
	e.active = nil
}

// ActiveCustomization reports the current sub-session target, if any.
func (e *Engine) ActiveCustomization() (CustomizationTarget, bool) {
	if e.active == nil {
		return CustomizationTarget{}, false
	}
	return *e.active, true
}

// UpdateComboItemPricing replaces one pick's folded pricing list. A non-empty
// list marks the pick customized.
func (e *Engine) UpdateComboItemPricing(comboGroupID uint64, index int, pricing []ComboPricing) {
	selections := e.comboSelections[comboGroupID]
	if index < 0 || index >= len(selections) {
		return
	}
	if pricing == nil {
		pricing = []ComboPricing{}
	}
	selections[index].Pricing = pricing
	selections[index].Customized = len(pricing) > 0
}

// SetComboItemVariant syncs one pick's variant choice after a customization
// save changed it in the nested session.
func (e *Engine) SetComboItemVariant(comboGroupID uint64, index int, variantID uint64) {
	selections := e.comboSelections[comboGroupID]
	if index < 0 || index >= len(selections) || variantID == 0 {
		return
	}
	selections[index].VariantID = variantID
}
