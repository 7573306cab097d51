package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Category is a ticket classification label. Name is unique; Type is
// a free-form grouping such as "IT" or "General".
type Category struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name string             `bson:"name" json:"name"`
	Type string             `bson:"type" json:"type"`
}

// GetID implements generic.Entity
func (c *Category) GetID() primitive.ObjectID { return c.ID }

// SetID implements generic.Entity
func (c *Category) SetID(id primitive.ObjectID) { c.ID = id }
