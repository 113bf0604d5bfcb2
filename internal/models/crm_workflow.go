package models

// CRMWorkflow describes an automated outreach rule, e.g. trigger
// "no_visit_days>60" on channel "sms" with a message template using
// {name} and {shop} placeholders.
type CRMWorkflow struct {
	ShopID          string `json:"shop_id" bson:"shop_id"`
	Name            string `json:"name" bson:"name"`
	Trigger         string `json:"trigger" bson:"trigger"`
	Channel         string `json:"channel" bson:"channel"`
	MessageTemplate string `json:"message_template" bson:"message_template"`
	Active          bool   `json:"active" bson:"active"`
}
