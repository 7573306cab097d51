package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Department is an organizational unit users may belong to. Name is
// unique.
type Department struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// GetID implements generic.Entity
func (d *Department) GetID() primitive.ObjectID { return d.ID }

// SetID implements generic.Entity
func (d *Department) SetID(id primitive.ObjectID) { d.ID = id }
