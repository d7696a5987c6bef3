package types

import "time"

type AddCartItemRequest struct {
	SessionID string `json:"session_id" binding:"required"`
}

type CartItemResponse struct {
	ID          uint64    `json:"id,string"` // snowflake id as string to avoid precision loss
	CartID      uint64    `json:"cart_id,string"`
	LineKey     string    `json:"line_key"`
	ProductID   uint64    `json:"product_id"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	UnitPrice   uint32    `json:"unit_price"`
	TotalPrice  uint64    `json:"total_price"`
	CookingNote string    `json:"cooking_note"`
	CreatedAt   time.Time `json:"created_at"`
}
