package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vrajpatel2451/pizzaspaceweb-sub000/config"
	"github.com/vrajpatel2451/pizzaspaceweb-sub000/pkg/context"
	"github.com/vrajpatel2451/pizzaspaceweb-sub000/pkg/response"
	"github.com/vrajpatel2451/pizzaspaceweb-sub000/service"
	"github.com/vrajpatel2451/pizzaspaceweb-sub000/types"
)

// ConfiguratorHandler exposes the product configuration sessions: one per
// open product-details view, mutated on every user action.
type ConfiguratorHandler struct {
	Config   *config.Config
	Sessions service.ISessionService
}

func (h *ConfiguratorHandler) RegisterRouter(r gin.IRouter) {
	sessions := r.Group("/v1/configurator/sessions")
	sessions.POST("", context.Wrap(h.Start))
	sessions.GET("/:sid", context.Wrap(h.Get))
	sessions.DELETE("/:sid", context.Wrap(h.End))

	sessions.POST("/:sid/variant", context.Wrap(h.SelectVariant))
	sessions.POST("/:sid/addon", context.Wrap(h.ToggleAddon))
	sessions.POST("/:sid/quantity", context.Wrap(h.SetQuantity))
	sessions.POST("/:sid/note", context.Wrap(h.SetCookingNote))
	sessions.POST("/:sid/combo", context.Wrap(h.ToggleCombo))

	sessions.POST("/:sid/customize/open", context.Wrap(h.OpenCustomization))
	sessions.POST("/:sid/customize/variant", context.Wrap(h.SubSelectVariant))
	sessions.POST("/:sid/customize/addon", context.Wrap(h.SubToggleAddon))
	sessions.POST("/:sid/customize/save", context.Wrap(h.SaveCustomization))
	sessions.POST("/:sid/customize/cancel", context.Wrap(h.CancelCustomization))
}

func (h *ConfiguratorHandler) Start(c *gin.Context) error {
	var req types.StartSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	state, err := h.Sessions.Start(c.Request.Context(), req.ProductID, req.Fulfillment)
	if err != nil {
		return sessionError(err)
	}
	response.Success(c, state)
	return nil
}

func (h *ConfiguratorHandler) Get(c *gin.Context) error {
	state, err := h.Sessions.Get(c.Param("sid"))
	if err != nil {
		return sessionError(err)
	}
	response.Success(c, state)
	return nil
}

func (h *ConfiguratorHandler) End(c *gin.Context) error {
	h.Sessions.End(c.Param("sid"))
	response.Success(c, nil)
	return nil
}

func (h *ConfiguratorHandler) SelectVariant(c *gin.Context) error {
	var req types.SelectVariantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	state, err := h.Sessions.SelectVariant(c.Param("sid"), req.GroupID, req.VariantID)
	if err != nil {
		return sessionError(err)
	}
	response.Success(c, state)
	return nil
}

func (h *ConfiguratorHandler) ToggleAddon(c *gin.Context) error {
	var req types.ToggleAddonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	state, err := h.Sessions.ToggleAddon(c.Param("sid"), req.PricingEntryID, req.Quantity)
	if err != nil {
		return sessionError(err)
	}
	response.Success(c, state)
	return nil
}

func (h *ConfiguratorHandler) SetQuantity(c *gin.Context) error {
	var req types.SetQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	state, err := h.Sessions.SetQuantity(c.Param("sid"), req.Quantity)
	if err != nil {
		return sessionError(err)
	}
	response.Success(c, state)
	return nil
}

func (h *ConfiguratorHandler) SetCookingNote(c *gin.Context) error {
	var req types.CookingNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	state, err := h.Sessions.SetCookingNote(c.Param("sid"), req.Note)
	if err != nil {
		return sessionError(err)
	}
	response.Success(c, state)
	return nil
}

func (h *ConfiguratorHandler) ToggleCombo(c *gin.Context) error {
	var req types.ToggleComboRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	state, err := h.Sessions.ToggleComboProduct(
		c.Param("sid"),
		req.ComboGroupID, req.ProductID, req.ComboGroupProductID, req.DefaultVariantID,
	)
	if err != nil {
		return sessionError(err)
	}
	response.Success(c, state)
	return nil
}

func (h *ConfiguratorHandler) OpenCustomization(c *gin.Context) error {
	var req types.OpenCustomizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	state, err := h.Sessions.OpenCustomization(c.Request.Context(), c.Param("sid"), req.ComboGroupID, req.Index)
	if err != nil {
		return sessionError(err)
	}
	response.Success(c, state)
	return nil
}

func (h *ConfiguratorHandler) SubSelectVariant(c *gin.Context) error {
	var req types.SelectVariantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	state, err := h.Sessions.SubSelectVariant(c.Param("sid"), req.GroupID, req.VariantID)
	if err != nil {
		return sessionError(err)
	}
	response.Success(c, state)
	return nil
}

func (h *ConfiguratorHandler) SubToggleAddon(c *gin.Context) error {
	var req types.ToggleAddonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	state, err := h.Sessions.SubToggleAddon(c.Param("sid"), req.PricingEntryID, req.Quantity)
	if err != nil {
		return sessionError(err)
	}
	response.Success(c, state)
	return nil
}

func (h *ConfiguratorHandler) SaveCustomization(c *gin.Context) error {
	state, err := h.Sessions.SaveCustomization(c.Param("sid"))
	if err != nil {
		return sessionError(err)
	}
	response.Success(c, state)
	return nil
}

func (h *ConfiguratorHandler) CancelCustomization(c *gin.Context) error {
	state, err := h.Sessions.CancelCustomization(c.Param("sid"))
	if err != nil {
		return sessionError(err)
	}
	response.Success(c, state)
	return nil
}

func sessionError(err error) error {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		return response.NewError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrProductNotFound):
		return response.NewError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrCustomizationUnavailable),
		errors.Is(err, service.ErrNoActiveCustomization):
		return response.NewError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrCustomizationSuperseded):
		return response.NewError(http.StatusConflict, err.Error())
	default:
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
}
