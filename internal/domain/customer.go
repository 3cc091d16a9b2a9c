package domain

// Customer places orders.
type Customer struct {
	Document   `bson:",inline"`
	FirstName  string `json:"first_name" bson:"first_name"`
	LastName   string `json:"last_name" bson:"last_name"`
	Street     string `json:"street" bson:"street"`
	PostalCode string `json:"postal_code" bson:"postal_code"`
	Age        int    `json:"age" bson:"age"`
}
