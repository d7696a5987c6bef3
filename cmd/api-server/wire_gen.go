// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package main

import (
	"github.com/vrajpatel2451/pizzaspaceweb-sub000/config"
	"github.com/vrajpatel2451/pizzaspaceweb-sub000/dao"
	"github.com/vrajpatel2451/pizzaspaceweb-sub000/dao/cache"
	"github.com/vrajpatel2451/pizzaspaceweb-sub000/handler"
	"github.com/vrajpatel2451/pizzaspaceweb-sub000/pkg/client"
	"github.com/vrajpatel2451/pizzaspaceweb-sub000/pkg/database"
	"github.com/vrajpatel2451/pizzaspaceweb-sub000/pkg/server"
	"github.com/vrajpatel2451/pizzaspaceweb-sub000/service"
)

// Injectors from wire.go:

func InitServer(cfg *config.Config) *server.AppProvider {
	db := database.NewDB(cfg)
	redisClient := client.NewRedisClient(cfg)
	catalogCache := cache.NewCatalogCache(redisClient, cfg)
	product := dao.NewProduct(db)
	variantGroup := dao.NewVariantGroup(db)
	variant := dao.NewVariant(db)
	addonGroup := dao.NewAddonGroup(db)
	addon := dao.NewAddon(db)
	pricing := dao.NewPricing(db)
	comboGroup := dao.NewComboGroup(db)
	comboGroupProduct := dao.NewComboGroupProduct(db)
	catalogService := &service.CatalogService{
		Config:               cfg,
		DB:                   db,
		Redis:                redisClient,
		Cache:                catalogCache,
		ProductDAO:           product,
		VariantGroupDAO:      variantGroup,
		VariantDAO:           variant,
		AddonGroupDAO:        addonGroup,
		AddonDAO:             addon,
		PricingDAO:           pricing,
		ComboGroupDAO:        comboGroup,
		ComboGroupProductDAO: comboGroupProduct,
	}
	productHandler := &handler.ProductHandler{
		Config:         cfg,
		CatalogService: catalogService,
	}
	sessionService := service.NewSessionService(catalogService)
	configuratorHandler := &handler.ConfiguratorHandler{
		Config:   cfg,
		Sessions: sessionService,
	}
	cart := dao.NewCart(db)
	cartItem := dao.NewCartItem(db)
	cartService := &service.CartService{
		Config:      cfg,
		DB:          db,
		CartDAO:     cart,
		CartItemDAO: cartItem,
		Sessions:    sessionService,
	}
	cartHandler := &handler.CartHandler{
		Config:      cfg,
		CartService: cartService,
	}
	handlers := &server.Handlers{
		Product:      productHandler,
		Configurator: configuratorHandler,
		Cart:         cartHandler,
	}
	engine := server.NewGinEngine(handlers)
	appProvider := &server.AppProvider{
		Config: cfg,
		Engine: engine,
	}
	return appProvider
}
