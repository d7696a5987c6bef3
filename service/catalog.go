package service

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
	"github.com/vrajpatel2451/pizzaspaceweb-sub000/config"
	"github.com/vrajpatel2451/pizzaspaceweb-sub000/configurator"
	"github.com/vrajpatel2451/pizzaspaceweb-sub000/dao"
	"github.com/vrajpatel2451/pizzaspaceweb-sub000/dao/cache"
	"github.com/vrajpatel2451/pizzaspaceweb-sub000/models"
	"github.com/vrajpatel2451/pizzaspaceweb-sub000/pkg/log"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

var ErrProductNotFound = errors.New("product not found")

type CatalogService struct {
	Config               *config.Config
	DB                   *gorm.DB
	Redis                *redis.Client
	Cache                *cache.CatalogCache
	ProductDAO           *dao.Product
	VariantGroupDAO      *dao.VariantGroup
	VariantDAO           *dao.Variant
	AddonGroupDAO        *dao.AddonGroup
	AddonDAO             *dao.Addon
	PricingDAO           *dao.Pricing
	ComboGroupDAO        *dao.ComboGroup
	ComboGroupProductDAO *dao.ComboGroupProduct
}

var _ ICatalogService = (*CatalogService)(nil)

type ICatalogService interface {
	// GetSnapshot assembles everything one editing session needs about a
	// product: variant groups, addons, combo groups and the pricing table.
	GetSnapshot(ctx context.Context, productID uint64) (*configurator.CatalogSnapshot, error)
}

func (s *CatalogService) GetSnapshot(ctx context.Context, productID uint64) (*configurator.CatalogSnapshot, error) {
	cached, err := s.Cache.Get(ctx, productID)
	if err != nil {
		// cache trouble falls back to the database
		log.L.Warn("catalog cache read failed", zap.Uint64("product_id", productID), zap.Error(err))
	}
	if cached != nil {
		return cached, nil
	}

	product, err := s.ProductDAO.FindLiveById(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	snapshot := &configurator.CatalogSnapshot{
		Product: configurator.Product{
			ID:               product.ID,
			Name:             product.Name,
			BasePrice:        product.BasePrice,
			PackagingCharges: product.PackagingCharges,
			DietType:         product.DietType,
			Description:      product.Description,
		},
	}

	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		groups, err := s.VariantGroupDAO.FindByProduct(egCtx, productID)
		if err != nil {
			return err
		}
		ids := make([]uint64, 0, len(groups))
		for _, g := range groups {
			snapshot.VariantGroups = append(snapshot.VariantGroups, configurator.VariantGroup{
				ID: g.ID, Label: g.Label, IsPrimary: g.IsPrimary,
			})
			ids = append(ids, g.ID)
		}
		variants, err := s.VariantDAO.FindByGroupIds(egCtx, ids)
		if err != nil {
			return err
		}
		for _, v := range variants {
			snapshot.Variants = append(snapshot.Variants, configurator.Variant{
				ID: v.ID, GroupID: v.GroupID, Label: v.Label,
				Price: v.Price, PackagingCharges: v.PackagingCharges,
			})
		}
		return nil
	})

	eg.Go(func() error {
		groups, err := s.AddonGroupDAO.FindByProduct(egCtx, productID)
		if err != nil {
			return err
		}
		ids := make([]uint64, 0, len(groups))
		for _, g := range groups {
			snapshot.AddonGroups = append(snapshot.AddonGroups, configurator.AddonGroup{
				ID: g.ID, Label: g.Label, AllowMulti: g.AllowMulti,
				Min: g.MinSelect, Max: g.MaxSelect,
			})
			ids = append(ids, g.ID)
		}
		addons, err := s.AddonDAO.FindByGroupIds(egCtx, ids)
		if err != nil {
			return err
		}
		for _, a := range addons {
			snapshot.Addons = append(snapshot.Addons, configurator.Addon{
				ID: a.ID, GroupID: a.GroupID, Label: a.Label,
			})
		}
		return nil
	})

	eg.Go(func() error {
		entries, err := s.PricingDAO.FindByProduct(egCtx, productID)
		if err != nil {
			return err
		}
		for _, e := range entries {
			snapshot.Pricing = append(snapshot.Pricing, configurator.PricingEntry{
				ID: e.ID, Type: e.Type, VariantID: e.VariantID,
				RefID: e.RefID, Price: e.Price,
			})
		}
		return nil
	})

	eg.Go(func() error {
		groups, err := s.ComboGroupDAO.FindByProduct(egCtx, productID)
		if err != nil {
			return err
		}
		ids := make([]uint64, 0, len(groups))
		for _, g := range groups {
			snapshot.ComboGroups = append(snapshot.ComboGroups, configurator.ComboGroup{
				ID: g.ID, Label: g.Label,
				MinSelection: g.MinSelection, MaxSelection: g.MaxSelection,
				AllowCustomization: g.AllowCustomization,
			})
			ids = append(ids, g.ID)
		}
		picks, err := s.ComboGroupProductDAO.FindByGroupIds(egCtx, ids)
		if err != nil {
			return err
		}
		for _, p := range picks {
			snapshot.ComboGroupProducts = append(snapshot.ComboGroupProducts, configurator.ComboGroupProduct{
				ID:               p.ID,
				ComboGroupID:     p.ComboGroupID,
				ProductID:        p.ProductID,
				DefaultVariantID: p.DefaultVariantID,
				Product:          toSnapshotProduct(p.Product),
			})
		}
		return nil
	})

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	if err := s.Cache.Set(ctx, productID, snapshot); err != nil {
		log.L.Warn("catalog cache write failed", zap.Uint64("product_id", productID), zap.Error(err))
	}
	return snapshot, nil
}

func toSnapshotProduct(p *models.Product) *configurator.Product {
	if p == nil {
		return nil
	}
	return &configurator.Product{
		ID:               p.ID,
		Name:             p.Name,
		BasePrice:        p.BasePrice,
		PackagingCharges: p.PackagingCharges,
		DietType:         p.DietType,
		Description:      p.Description,
	}
}
