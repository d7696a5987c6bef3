package dao

import (
	"context"

	"github.com/vrajpatel2451/pizzaspaceweb-sub000/models"
	"gorm.io/gorm"
)

type Pricing struct {
	Repo[models.PricingEntry]
}

func NewPricing(db *gorm.DB) *Pricing {
	return &Pricing{Repo: NewRepo[models.PricingEntry](db)}
}

func (d *Pricing) FindByProduct(ctx context.Context, productID uint64) ([]*models.PricingEntry, error) {
	var entries []*models.PricingEntry
	err := d.Db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("id asc").
		Find(&entries).Error
	return entries, err
}
