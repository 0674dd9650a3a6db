package models

import (
	"time"
)

type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string `gorm:"unique;not null"          json:"username"`
	PasswordHash string `gorm:"not null"                 json:"-"`
	IsAdmin      bool   `gorm:"not null;default:false"   json:"is_admin"`
}

type Product struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"not null"                 json:"name"`
	Description string    `json:"description"`
	Price       float64   `gorm:"not null"                 json:"price"`
	ImageURL    string    `json:"image_url"`
	SKU         string    `gorm:"column:sku"               json:"sku"`
	Category    string    `json:"category"`
	Stock       uint      `gorm:"default:0"                json:"stock"`
	Status      bool      `gorm:"default:true"             json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Order struct {
	ID          uint      `gorm:"primaryKey"     json:"id"`
	TotalAmount float64   `gorm:"not null"       json:"total_amount"`
	CreatedAt   time.Time `gorm:"index;not null" json:"created_at"`
}

type OrderItem struct {
	ID        uint    `gorm:"primaryKey"     json:"id"`
	OrderID   uint    `gorm:"index;not null" json:"order_id"`
	ProductID uint    `gorm:"index;not null" json:"product_id"`
	Quantity  uint    `gorm:"default:1"      json:"quantity"`
	Price     float64 `gorm:"not null"       json:"price"`
}
