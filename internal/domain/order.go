package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// Order links a product, the customer who bought it and the staff member who handled it.
// References are stored and serialized as identifiers; they are checked only at creation.
type Order struct {
	Document   `bson:",inline"`
	ProductID  primitive.ObjectID `json:"product_id" bson:"product_id"`
	CustomerID primitive.ObjectID `json:"customer_id" bson:"customer_id"`
	StaffID    primitive.ObjectID `json:"staff_id" bson:"staff_id"`
}

// Order document field names used in store filters.
const (
	OrderFieldProductID  = "product_id"
	OrderFieldCustomerID = "customer_id"
)
