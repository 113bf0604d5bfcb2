package models

// Cliente vinculado a uma barbearia por shop_id.
type Client struct {
	ShopID string   `json:"shop_id" bson:"shop_id"`
	Name   string   `json:"name" bson:"name"`
	Email  string   `json:"email,omitempty" bson:"email,omitempty"`
	Phone  string   `json:"phone,omitempty" bson:"phone,omitempty"`
	Notes  string   `json:"notes,omitempty" bson:"notes,omitempty"`
	Tags   []string `json:"tags,omitempty" bson:"tags,omitempty"`
}
