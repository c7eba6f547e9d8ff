package models

import "time"

// CartLine is one (product, unit) entry in a user's cart. Price is the unit
// price resolved from the catalog at add time; client-supplied prices are
// never persisted.
type CartLine struct {
	ID        string    `json:"id" bson:"id"`
	UserID    int       `json:"-" bson:"userId"`
	ProductID int       `json:"productId" bson:"productId"`
	Unit      string    `json:"unit" bson:"unit"`
	Quantity  int       `json:"quantity" bson:"quantity"`
	Price     int64     `json:"price" bson:"price"`
	AddedAt   time.Time `json:"addedAt" bson:"addedAt"`
}

// EnrichedCartLine joins a cart line with current catalog display fields.
type EnrichedCartLine struct {
	CartLine
	ProductName string `json:"productName"`
	Image       string `json:"image"`
	Category    string `json:"category"`
}
