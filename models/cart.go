package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Cart is one user's open cart. Closed on checkout by the (out-of-scope)
// order flow.
type Cart struct {
	ID          uint64         `gorm:"primaryKey;column:id" json:"id"` // snowflake, not auto increment
	UserID      int64          `gorm:"not null;index:idx_carts_user;column:user_id" json:"user_id"`
	Fulfillment string         `gorm:"size:16;not null;default:'delivery';column:fulfillment" json:"fulfillment"`
	Status      int8           `gorm:"default:1;not null;column:status" json:"status"` // 1 open, 2 checked out
	CreatedAt   time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Cart) TableName() string {
	return "carts"
}

// CartItem is one configured line. Name and prices are denormalized so the
// line survives catalog edits; the selection snapshots are stored as JSON.
type CartItem struct {
	ID               uint64         `gorm:"primaryKey;column:id" json:"id"` // snowflake
	CartID           uint64         `gorm:"not null;index:idx_cart_items_cart;column:cart_id" json:"cart_id"`
	LineKey          string         `gorm:"size:36;not null;uniqueIndex:idx_cart_items_line_key;column:line_key" json:"line_key"` // uuid
	ProductID        uint64         `gorm:"not null;index:idx_cart_items_product;column:product_id" json:"product_id"`
	ProductName      string         `gorm:"size:255;not null;column:product_name" json:"product_name"`
	Quantity         int            `gorm:"default:1;not null;column:quantity" json:"quantity"`
	UnitPrice        uint32         `gorm:"not null;column:unit_price" json:"unit_price"`
	TotalPrice       uint64         `gorm:"not null;column:total_price" json:"total_price"`
	CookingNote      string         `gorm:"size:200;default:'';column:cooking_note" json:"cooking_note"`
	SelectedVariants datatypes.JSON `gorm:"column:selected_variants" json:"selected_variants"`
	SelectedAddons   datatypes.JSON `gorm:"column:selected_addons" json:"selected_addons"`
	ComboSelections  datatypes.JSON `gorm:"column:combo_selections" json:"combo_selections"`
	CreatedAt        time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (CartItem) TableName() string {
	return "cart_items"
}
