package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vrajpatel2451/pizzaspaceweb-sub000/config"
	"github.com/vrajpatel2451/pizzaspaceweb-sub000/middleware"
	"github.com/vrajpatel2451/pizzaspaceweb-sub000/pkg/context"
	"github.com/vrajpatel2451/pizzaspaceweb-sub000/pkg/response"
	"github.com/vrajpatel2451/pizzaspaceweb-sub000/service"
	"github.com/vrajpatel2451/pizzaspaceweb-sub000/types"
)

type CartHandler struct {
	Config      *config.Config
	CartService service.ICartService
}

func (h *CartHandler) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	cart := r.Group("/v1/cart")
	cart.Use(authorize)
	cart.POST("/items", context.Wrap(h.AddItem))
}

// AddItem flattens a configuration session into a cart line. The session is
// preserved on failure so the caller can fix the selection and retry.
func (h *CartHandler) AddItem(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}

	var req types.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	item, err := h.CartService.AddItem(c.Request.Context(), userID, req.SessionID)
	if err != nil {
		var invalid *service.InvalidSelectionError
		if errors.As(err, &invalid) {
			return response.NewError(http.StatusUnprocessableEntity, invalid.Error())
		}
		if errors.Is(err, service.ErrSessionNotFound) {
			return response.NewError(http.StatusNotFound, err.Error())
		}
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
	response.Success(c, item)
	return nil
}
