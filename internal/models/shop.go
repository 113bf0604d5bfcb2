package models

// Shop is one barbershop tenant. Stored documents never carry an id field;
// the store assigns one and the API layer exposes it as "id".
type Shop struct {
	Name     string `json:"name" bson:"name"`
	Address  string `json:"address,omitempty" bson:"address,omitempty"`
	Phone    string `json:"phone,omitempty" bson:"phone,omitempty"`
	Timezone string `json:"timezone" bson:"timezone"`
}
