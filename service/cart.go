package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/vrajpatel2451/pizzaspaceweb-sub000/config"
	"github.com/vrajpatel2451/pizzaspaceweb-sub000/dao"
	"github.com/vrajpatel2451/pizzaspaceweb-sub000/models"
	"github.com/vrajpatel2451/pizzaspaceweb-sub000/pkg/log"
	"github.com/vrajpatel2451/pizzaspaceweb-sub000/pkg/snowflake"
	"github.com/vrajpatel2451/pizzaspaceweb-sub000/types"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CartService struct {
	Config      *config.Config
	DB          *gorm.DB
	CartDAO     *dao.Cart
	CartItemDAO *dao.CartItem
	Sessions    ISessionService
}

var _ ICartService = (*CartService)(nil)

type ICartService interface {
	// AddItem turns a valid configuration session into a stored cart line.
	// The session is left untouched on failure so the user can retry.
	AddItem(ctx context.Context, userID int64, sessionID string) (*types.CartItemResponse, error)
}

func (s *CartService) AddItem(ctx context.Context, userID int64, sessionID string) (*types.CartItemResponse, error) {
	payload, productName, fulfillment, err := s.Sessions.Checkout(sessionID)
	if err != nil {
		return nil, err
	}

	cart, err := s.CartDAO.FindOpenByUser(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cart = &models.Cart{
			ID:          uint64(snowflake.GenID()),
			UserID:      userID,
			Fulfillment: fulfillment,
			Status:      dao.CartStatusOpen,
		}
		if err := s.CartDAO.Create(ctx, cart); err != nil {
			return nil, fmt.Errorf("create cart: %w", err)
		}
	} else if err != nil {
		return nil, err
	}

	variantsJSON, err := json.Marshal(payload.SelectedVariants)
	if err != nil {
		return nil, err
	}
	addonsJSON, err := json.Marshal(payload.SelectedAddons)
	if err != nil {
		return nil, err
	}
	combosJSON, err := json.Marshal(payload.ComboSelections)
	if err != nil {
		return nil, err
	}

	item := &models.CartItem{
		ID:               uint64(snowflake.GenID()),
		CartID:           cart.ID,
		LineKey:          uuid.NewString(),
		ProductID:        payload.ProductID,
		ProductName:      productName,
		Quantity:         payload.Quantity,
		UnitPrice:        uint32(payload.TotalPrice / uint64(payload.Quantity)),
		TotalPrice:       payload.TotalPrice,
		CookingNote:      payload.CookingNote,
		SelectedVariants: variantsJSON,
		SelectedAddons:   addonsJSON,
		ComboSelections:  combosJSON,
	}
	if err := s.CartItemDAO.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create cart item: %w", err)
	}

	log.L.Info("cart item added",
		zap.Int64("user_id", userID),
		zap.Uint64("cart_id", cart.ID),
		zap.Uint64("product_id", payload.ProductID),
		zap.Uint64("total_price", payload.TotalPrice),
	)

	return &types.CartItemResponse{
		ID:          item.ID,
		CartID:      item.CartID,
		LineKey:     item.LineKey,
		ProductID:   item.ProductID,
		ProductName: item.ProductName,
		Quantity:    item.Quantity,
		UnitPrice:   item.UnitPrice,
		TotalPrice:  item.TotalPrice,
		CookingNote: item.CookingNote,
		CreatedAt:   item.CreatedAt,
	}, nil
}
