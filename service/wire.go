package service

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(CatalogService), "*"),
	wire.Bind(new(ICatalogService), new(*CatalogService)),

	NewSessionService,
	wire.Bind(new(ISessionService), new(*SessionService)),

	wire.Struct(new(CartService), "*"),
	wire.Bind(new(ICartService), new(*CartService)),
)
