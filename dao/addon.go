package dao

import (
	"context"

	"github.com/vrajpatel2451/pizzaspaceweb-sub000/models"
	"gorm.io/gorm"
)

type AddonGroup struct {
	Repo[models.AddonGroup]
}

func NewAddonGroup(db *gorm.DB) *AddonGroup {
	return &AddonGroup{Repo: NewRepo[models.AddonGroup](db)}
}

func (d *AddonGroup) FindByProduct(ctx context.Context, productID uint64) ([]*models.AddonGroup, error) {
	var groups []*models.AddonGroup
	err := d.Db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("sort_order asc, id asc").
		Find(&groups).Error
	return groups, err
}

type Addon struct {
	Repo[models.Addon]
}

func NewAddon(db *gorm.DB) *Addon {
	return &Addon{Repo: NewRepo[models.Addon](db)}
}

func (d *Addon) FindByGroupIds(ctx context.Context, groupIDs []uint64) ([]*models.Addon, error) {
	if len(groupIDs) == 0 {
		return []*models.Addon{}, nil
	}
	var addons []*models.Addon
	err := d.Db.WithContext(ctx).
		Where("group_id IN ?", groupIDs).
		Order("sort_order asc, id asc").
		Find(&addons).Error
	return addons, err
}
