package models

import "time"

// OrderItem is an immutable snapshot of a cart line taken at order creation.
// Later catalog changes never alter it.
type OrderItem struct {
	ProductID   int    `json:"productId" bson:"productId"`
	ProductName string `json:"productName" bson:"productName"`
	Unit        string `json:"unit" bson:"unit"`
	Quantity    int    `json:"quantity" bson:"quantity"`
	Price       int64  `json:"price" bson:"price"`
	Image       string `json:"image" bson:"image"`
}

type Order struct {
	ID            string      `json:"id" bson:"id"`
	UserID        int         `json:"userId" bson:"userId"`
	Items         []OrderItem `json:"items" bson:"items"`
	RecipientName string      `json:"recipientName" bson:"recipientName"`
	Phone         string      `json:"phone" bson:"phone"`
	Address       string      `json:"address" bson:"address"`
	PaymentMethod string      `json:"paymentMethod" bson:"paymentMethod"` // "cod" or "bank_transfer"
	Subtotal      int64       `json:"subtotal" bson:"subtotal"`
	ShippingCost  int64       `json:"shippingCost" bson:"shippingCost"`
	Discount      int64       `json:"discount" bson:"discount"`
	TotalPrice    int64       `json:"totalPrice" bson:"totalPrice"`
	Status        string      `json:"status" bson:"status"`
	PaymentStatus string      `json:"paymentStatus" bson:"paymentStatus"`
	CreatedAt     time.Time   `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt" bson:"updatedAt"`
}
