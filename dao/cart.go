package dao

import (
	"context"

	"github.com/vrajpatel2451/pizzaspaceweb-sub000/models"
	"gorm.io/gorm"
)

const (
	CartStatusOpen       = 1
	CartStatusCheckedOut = 2
)

type Cart struct {
	Repo[models.Cart]
}

func NewCart(db *gorm.DB) *Cart {
	return &Cart{Repo: NewRepo[models.Cart](db)}
}

// FindOpenByUser returns the user's open cart, if any.
func (d *Cart) FindOpenByUser(ctx context.Context, userID int64) (*models.Cart, error) {
	return d.FindByWhere(ctx, "user_id = ? AND status = ?", userID, CartStatusOpen)
}

type CartItem struct {
	Repo[models.CartItem]
}

func NewCartItem(db *gorm.DB) *CartItem {
	return &CartItem{Repo: NewRepo[models.CartItem](db)}
}

func (d *CartItem) FindByCart(ctx context.Context, cartID uint64) ([]*models.CartItem, error) {
	var items []*models.CartItem
	err := d.Db.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Order("created_at asc").
		Find(&items).Error
	return items, err
}
