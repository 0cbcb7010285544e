package model

// CustomerModel is the persisted form of a customer.
type CustomerModel struct {
	ID     string `bson:"_id"`
	Name   string `bson:"name"`
	IsGold bool   `bson:"isGold"`
	Phone  string `bson:"phone"`
}
