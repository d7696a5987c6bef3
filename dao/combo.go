package dao

import (
	"context"

	"github.com/vrajpatel2451/pizzaspaceweb-sub000/models"
	"gorm.io/gorm"
)

type ComboGroup struct {
	Repo[models.ComboGroup]
}

func NewComboGroup(db *gorm.DB) *ComboGroup {
	return &ComboGroup{Repo: NewRepo[models.ComboGroup](db)}
}

func (d *ComboGroup) FindByProduct(ctx context.Context, productID uint64) ([]*models.ComboGroup, error) {
	var groups []*models.ComboGroup
	err := d.Db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("sort_order asc, id asc").
		Find(&groups).Error
	return groups, err
}

type ComboGroupProduct struct {
	Repo[models.ComboGroupProduct]
}

func NewComboGroupProduct(db *gorm.DB) *ComboGroupProduct {
	return &ComboGroupProduct{Repo: NewRepo[models.ComboGroupProduct](db)}
}

// FindByGroupIds preloads the nested product so the configurator can show
// the pick without another round trip.
func (d *ComboGroupProduct) FindByGroupIds(ctx context.Context, groupIDs []uint64) ([]*models.ComboGroupProduct, error) {
	if len(groupIDs) == 0 {
		return []*models.ComboGroupProduct{}, nil
	}
	var picks []*models.ComboGroupProduct
	err := d.Db.WithContext(ctx).
		Preload("Product").
		Where("combo_group_id IN ?", groupIDs).
		Order("sort_order asc, id asc").
		Find(&picks).Error
	return picks, err
}
