package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Document holds the identifier and audit timestamps every entity carries.
// Entities embed it inline so the fields sit at the top level of the stored document.
type Document struct {
	ID        primitive.ObjectID `json:"id" bson:"_id"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}

// Meta returns d itself so generic code can reach the embedded fields.
func (d *Document) Meta() *Document { return d }

// Field names shared by every document.
const (
	FieldUpdatedAt = "updated_at"
)
