//go:build wireinject

package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewProduct,
	NewVariantGroup,
	NewVariant,
	NewAddonGroup,
	NewAddon,
	NewPricing,
	NewComboGroup,
	NewComboGroupProduct,
	NewCart,
	NewCartItem,
)
