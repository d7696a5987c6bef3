package dao

import (
	"context"

	"github.com/vrajpatel2451/pizzaspaceweb-sub000/models"
	"gorm.io/gorm"
)

type Product struct {
	Repo[models.Product]
}

func NewProduct(db *gorm.DB) *Product {
	return &Product{
		Repo: NewRepo[models.Product](db),
	}
}

// FindLiveById only returns products in live status.
func (p *Product) FindLiveById(ctx context.Context, productID uint64) (*models.Product, error) {
	return p.FindByWhere(ctx, "id = ? AND status = 1", productID)
}
