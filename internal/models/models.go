package models

import "time"

type Customer struct {
	ID           uint    `gorm:"primaryKey;autoIncrement"  json:"id"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	Email        string  `gorm:"uniqueIndex;not null"      json:"email"`
	Username     string  `gorm:"index"                     json:"username"`
	PhoneNumber  string  `json:"phone_number"`
	Address      string  `json:"address"`
	PasswordHash string  `gorm:"not null"                  json:"-"`
	Orders       []Order `gorm:"constraint:OnDelete:RESTRICT" json:"-"`
}

type MenuItem struct {
	ID          uint        `gorm:"primaryKey;autoIncrement"  json:"id"`
	Name        string      `gorm:"not null"                  json:"name"       yaml:"name"`
	Description string      `json:"description"               yaml:"description"`
	Price       float64     `gorm:"not null"                  json:"price"      yaml:"price"`
	Image       string      `json:"image"                     yaml:"image"`
	OrderItems  []OrderItem `gorm:"constraint:OnDelete:RESTRICT" json:"-"  yaml:"-"`
}

type Order struct {
	ID         uint        `gorm:"primaryKey;autoIncrement"  json:"id"`
	Total      float64     `gorm:"not null"                  json:"total"`
	Notes      string      `json:"notes"`
	CustomerID uint        `gorm:"index;not null"            json:"customer_id"`
	CreatedAt  time.Time   `json:"created_at"`
	OrderItems []OrderItem `gorm:"constraint:OnDelete:RESTRICT" json:"-"`
}

type OrderItem struct {
	ID         uint `gorm:"primaryKey;autoIncrement"    json:"id"`
	OrderID    uint `gorm:"index;not null"              json:"order_id"`
	MenuItemID uint `gorm:"index;not null"              json:"menu_item_id"`
	Quantity   int  `gorm:"not null;default:1"          json:"quantity"`
}

// All lists the schema in dependency order for AutoMigrate.
func All() []any {
	return []any{&Customer{}, &MenuItem{}, &Order{}, &OrderItem{}}
}
