package configurator

import "fmt"

// ValidationResult is data, never an error. Recomputed from scratch on every
// call; all violations are collected, not short-circuited.
type ValidationResult struct {
	IsValid bool     `json:"is_valid"`
	Errors  []string `json:"errors"`
}

// Validate checks the selection set in group-declaration order: variant
// groups, then addon groups, then combo groups. Addon counting only sees
// addons visible under the current primary variant; over-max never appears
// here because the store clamps it.
func (e *Engine) Validate() ValidationResult {
	errs := make([]string, 0)

	for _, g := range e.snapshot.VariantGroups {
		if !g.IsPrimary {
			continue
		}
		if _, ok := e.selectedVariants[g.ID]; !ok {
			errs = append(errs, fmt.Sprintf("Please select a %s", g.Label))
		}
	}

	for _, g := range e.snapshot.AddonGroups {
		count := 0
		for _, a := range e.snapshot.Addons {
			if a.GroupID != g.ID {
				continue
			}
			if e.selectedAddons[a.ID] > 0 && e.addonVisible(a.ID) {
				count++
			}
		}
		if count < g.Min {
			errs = append(errs, fmt.Sprintf("Please select at least %d %s", g.Min, g.Label))
		}
	}

	for _, g := range e.snapshot.ComboGroups {
		n := len(e.comboSelections[g.ID])
		if n < g.MinSelection || n > g.MaxSelection {
			errs = append(errs, fmt.Sprintf("Please select %d-%d items for %s", g.MinSelection, g.MaxSelection, g.Label))
		}
	}

	return ValidationResult{IsValid: len(errs) == 0, Errors: errs}
}
