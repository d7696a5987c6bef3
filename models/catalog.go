package models

import (
	"time"

	"gorm.io/gorm"
)

// Product maps the products table. Prices are minor units.
type Product struct {
	ID               uint64         `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name             string         `gorm:"size:255;not null;column:name" json:"name"`
	BasePrice        uint32         `gorm:"not null;column:base_price" json:"base_price"`
	PackagingCharges uint32         `gorm:"default:0;not null;column:packaging_charges" json:"packaging_charges"`
	DietType         string         `gorm:"size:16;default:'veg';column:diet_type" json:"diet_type"` // veg / non_veg / vegan
	Description      string         `gorm:"type:text;column:description" json:"description"`
	CoverImage       string         `gorm:"size:512;default:'';column:cover_image" json:"cover_image"`
	Status           int8           `gorm:"default:1;not null;index:idx_products_status;column:status" json:"status"` // 1 live, 0 delisted
	CreatedAt        time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index:idx_products_deleted_at;column:deleted_at" json:"-"`
}

func (Product) TableName() string {
	return "products"
}

// VariantGroup is one selectable dimension of a product (Size, Crust...).
// Exactly one group per product is primary and drives base pricing.
type VariantGroup struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	ProductID uint64    `gorm:"not null;index:idx_variant_groups_product;column:product_id" json:"product_id"`
	Label     string    `gorm:"size:128;not null;column:label" json:"label"`
	IsPrimary bool      `gorm:"default:false;not null;column:is_primary" json:"is_primary"`
	SortOrder int       `gorm:"default:0;column:sort_order" json:"sort_order"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (VariantGroup) TableName() string {
	return "variant_groups"
}

type Variant struct {
	ID               uint64    `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	GroupID          uint64    `gorm:"not null;index:idx_variants_group;column:group_id" json:"group_id"`
	Label            string    `gorm:"size:128;not null;column:label" json:"label"`
	Price            uint32    `gorm:"default:0;not null;column:price" json:"price"` // absolute, primary-group variants only
	PackagingCharges uint32    `gorm:"default:0;not null;column:packaging_charges" json:"packaging_charges"`
	SortOrder        int       `gorm:"default:0;column:sort_order" json:"sort_order"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Variant) TableName() string {
	return "variants"
}

type AddonGroup struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	ProductID  uint64    `gorm:"not null;index:idx_addon_groups_product;column:product_id" json:"product_id"`
	Label      string    `gorm:"size:128;not null;column:label" json:"label"`
	AllowMulti bool      `gorm:"default:false;not null;column:allow_multi" json:"allow_multi"`
	MinSelect  int       `gorm:"default:0;not null;column:min_select" json:"min_select"`
	MaxSelect  int       `gorm:"default:1;not null;column:max_select" json:"max_select"`
	SortOrder  int       `gorm:"default:0;column:sort_order" json:"sort_order"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (AddonGroup) TableName() string {
	return "addon_groups"
}

type Addon struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	GroupID   uint64    `gorm:"not null;index:idx_addons_group;column:group_id" json:"group_id"`
	Label     string    `gorm:"size:128;not null;column:label" json:"label"`
	SortOrder int       `gorm:"default:0;column:sort_order" json:"sort_order"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Addon) TableName() string {
	return "addons"
}

// PricingEntry is one row of the flat pricing table: the price of a
// sub-variant or addon (ref_id) under one primary variant (variant_id).
type PricingEntry struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	ProductID uint64    `gorm:"not null;index:idx_pricing_product;column:product_id" json:"product_id"`
	Type      string    `gorm:"size:16;not null;column:type" json:"type"` // variant | addon
	VariantID uint64    `gorm:"not null;index:idx_pricing_variant;column:variant_id" json:"variant_id"`
	RefID     uint64    `gorm:"not null;column:ref_id" json:"ref_id"`
	Price     uint32    `gorm:"not null;column:price" json:"price"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (PricingEntry) TableName() string {
	return "pricing_entries"
}

type ComboGroup struct {
	ID                 uint64    `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	ProductID          uint64    `gorm:"not null;index:idx_combo_groups_product;column:product_id" json:"product_id"`
	Label              string    `gorm:"size:128;not null;column:label" json:"label"`
	MinSelection       int       `gorm:"default:0;not null;column:min_selection" json:"min_selection"`
	MaxSelection       int       `gorm:"default:1;not null;column:max_selection" json:"max_selection"`
	AllowCustomization bool      `gorm:"default:false;not null;column:allow_customization" json:"allow_customization"`
	SortOrder          int       `gorm:"default:0;column:sort_order" json:"sort_order"`
	CreatedAt          time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ComboGroup) TableName() string {
	return "combo_groups"
}

type ComboGroupProduct struct {
	ID               uint64    `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	ComboGroupID     uint64    `gorm:"not null;index:idx_combo_group_products_group;column:combo_group_id" json:"combo_group_id"`
	ProductID        uint64    `gorm:"not null;column:product_id" json:"product_id"`
	DefaultVariantID uint64    `gorm:"default:0;column:default_variant_id" json:"default_variant_id"`
	SortOrder        int       `gorm:"default:0;column:sort_order" json:"sort_order"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

func (ComboGroupProduct) TableName() string {
	return "combo_group_products"
}
