package transport

import "github.com/Skotchmaster/restaurant/internal/models"

// Password fields keep the wire name the web client already sends. The value
// is the plaintext password and is hashed server side.

type CreateCustomerRequest struct {
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	Email       *string `json:"email"`
	PhoneNumber *string `json:"phone_number"`
	Password    *string `json:"_password_hash"`
	Address     *string `json:"address"`
}

type PatchCustomerRequest struct {
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	Email       *string `json:"email"`
	PhoneNumber *string `json:"phone_number"`
	Address     *string `json:"address"`
}

type CreateOrderRequest struct {
	Total      *float64 `json:"total"`
	Notes      *string  `json:"notes"`
	CustomerID *uint    `json:"customer_id"`
}

type CreateOrderItemRequest struct {
	OrderID    *uint `json:"order_id"`
	MenuItemID *uint `json:"menu_item_id"`
	Quantity   *int  `json:"quantity"`
}

type SignupRequest struct {
	Email       string `json:"email"`
	Password    string `json:"_password_hash"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type SuccessResponse struct {
	Success string `json:"success"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type CancelOrderResponse struct {
	Success      string `json:"success"`
	OrderID      uint   `json:"order_id"`
	ItemsDeleted int    `json:"items_deleted"`
}

type MenuSearchResponse struct {
	Total int64             `json:"total"`
	Items []models.MenuItem `json:"items"`
}
