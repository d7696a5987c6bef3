//go:build wireinject
// +build wireinject

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

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(

		client.NewRedisClient,
		server.NewGinEngine,
		cache.ProviderSet,

		wire.Struct(new(handler.ProductHandler), "*"),
		wire.Struct(new(handler.ConfiguratorHandler), "*"),
		wire.Struct(new(handler.CartHandler), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,

		service.ProviderSet,
		database.NewDB,
	)
	return nil
}
