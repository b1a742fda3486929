package models

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required,min=3"`
	Phone    string `json:"phone" binding:"omitempty"`
}

// LoginRequest carries either a provider name (mock OAuth flow) or an
// email/password pair.
type LoginRequest struct {
	Provider string `json:"provider" binding:"omitempty,oneof=google facebook"`
	Email    string `json:"email" binding:"omitempty,email"`
	Password string `json:"password"`
}

type AddCartItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

type QuoteRequest struct {
	City string `json:"city" binding:"required"`
}

type CheckoutRequest struct {
	Street        string `json:"street"`
	City          string `json:"city" binding:"required"`
	PostalCode    string `json:"postal_code"`
	PaymentMethod string `json:"payment_method"`
	Email         string `json:"email"`
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

type MetaData struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

type PaginationResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
	Meta    MetaData    `json:"meta"`
}
