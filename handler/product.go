package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vrajpatel2451/pizzaspaceweb-sub000/config"
	"github.com/vrajpatel2451/pizzaspaceweb-sub000/pkg/context"
	"github.com/vrajpatel2451/pizzaspaceweb-sub000/pkg/response"
	"github.com/vrajpatel2451/pizzaspaceweb-sub000/service"
)

type ProductHandler struct {
	Config         *config.Config
	CatalogService service.ICatalogService
}

func (p *ProductHandler) RegisterRouter(r gin.IRouter) {
	products := r.Group("/v1/products")
	products.GET("/:id/details", context.Wrap(p.GetDetails))
}

// GetDetails returns the assembled catalog snapshot the product-details view
// renders: variant groups, addon groups, combo groups and the pricing table.
func (p *ProductHandler) GetDetails(c *gin.Context) error {
	productID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "invalid product id")
	}

	snapshot, err := p.CatalogService.GetSnapshot(c.Request.Context(), productID)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			return response.NewError(http.StatusNotFound, "product not found")
		}
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
	response.Success(c, snapshot)
	return nil
}
