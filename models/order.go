package models

import "time"

const (
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
)

type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
}

// DeliveryOption is a flat-fee delivery destination. Fee is in minor
// currency units, EstimatedDays is always positive.
type DeliveryOption struct {
	City          string `json:"city"`
	State         string `json:"state"`
	Fee           int    `json:"fee"`
	EstimatedDays int    `json:"estimated_days"`
}

// PricingBreakdown is derived from a cart and a delivery option. It is
// recomputed on every read and never stored.
type PricingBreakdown struct {
	Subtotal    int `json:"subtotal"`
	DeliveryFee int `json:"delivery_fee"`
	Total       int `json:"total"`
}

type OrderItem struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Price     int    `json:"price"`
	Quantity  int    `json:"quantity"`
	Image     string `json:"image,omitempty"`
}

// Order is immutable after creation. Items is a value snapshot of the cart
// at checkout time; UserID is empty for guest checkouts.
type Order struct {
	ID                string      `json:"id"`
	UserID            string      `json:"user_id,omitempty"`
	Items             []OrderItem `json:"items"`
	TotalAmount       int         `json:"total_amount"`
	Subtotal          int         `json:"subtotal"`
	DeliveryFee       int         `json:"delivery_fee"`
	DeliveryAddress   Address     `json:"delivery_address"`
	PaymentMethod     string      `json:"payment_method"`
	Status            string      `json:"status"`
	CreatedAt         time.Time   `json:"created_at"`
	EstimatedDelivery time.Time   `json:"estimated_delivery"`
}
