package models

type Service struct {
	ShopID          string  `json:"shop_id" bson:"shop_id"`
	Name            string  `json:"name" bson:"name"`
	DurationMinutes int     `json:"duration_minutes" bson:"duration_minutes"`
	Price           float64 `json:"price" bson:"price"`
	Description     string  `json:"description,omitempty" bson:"description,omitempty"`
}
