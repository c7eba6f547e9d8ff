package models

// Address is a shipping address owned by a user. At most one address per
// user has IsDefault set.
type Address struct {
	ID             string `json:"id" bson:"id"`
	UserID         int    `json:"userId" bson:"userId"`
	RecipientName  string `json:"recipientName" bson:"recipientName"`
	RecipientPhone string `json:"recipientPhone" bson:"recipientPhone"`
	FullAddress    string `json:"fullAddress" bson:"fullAddress"`
	IsDefault      bool   `json:"isDefault" bson:"isDefault"`
}
