package models

type Staff struct {
	ShopID string `json:"shop_id" bson:"shop_id"`
	Name   string `json:"name" bson:"name"`
	Role   string `json:"role" bson:"role"`
	Email  string `json:"email,omitempty" bson:"email,omitempty"`
	Phone  string `json:"phone,omitempty" bson:"phone,omitempty"`
	Active bool   `json:"active" bson:"active"`
}
