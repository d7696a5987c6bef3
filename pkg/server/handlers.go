package server

import (
	"github.com/vrajpatel2451/pizzaspaceweb-sub000/handler"
)

type Handlers struct {
	Product      *handler.ProductHandler
	Configurator *handler.ConfiguratorHandler
	Cart         *handler.CartHandler
}
