package dao

import (
	"context"

	"github.com/vrajpatel2451/pizzaspaceweb-sub000/models"
	"gorm.io/gorm"
)

type VariantGroup struct {
	Repo[models.VariantGroup]
}

func NewVariantGroup(db *gorm.DB) *VariantGroup {
	return &VariantGroup{Repo: NewRepo[models.VariantGroup](db)}
}

func (d *VariantGroup) FindByProduct(ctx context.Context, productID uint64) ([]*models.VariantGroup, error) {
	var groups []*models.VariantGroup
	err := d.Db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("sort_order asc, id asc").
		Find(&groups).Error
	return groups, err
}

type Variant struct {
	Repo[models.Variant]
}

func NewVariant(db *gorm.DB) *Variant {
	return &Variant{Repo: NewRepo[models.Variant](db)}
}

func (d *Variant) FindByGroupIds(ctx context.Context, groupIDs []uint64) ([]*models.Variant, error) {
	if len(groupIDs) == 0 {
		return []*models.Variant{}, nil
	}
	var variants []*models.Variant
	err := d.Db.WithContext(ctx).
		Where("group_id IN ?", groupIDs).
		Order("sort_order asc, id asc").
		Find(&variants).Error
	return variants, err
}
