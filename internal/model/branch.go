package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Branch types
const (
	BranchTypeRetail    = "Retail"
	BranchTypeFactory   = "Factory"
	BranchTypeWholesale = "Wholesale"
)

// Branch is a servicing location. Name is unique; tickets reference
// branches by name.
type Branch struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Location  string             `bson:"location,omitempty" json:"location,omitempty"`
	Active    bool               `bson:"active" json:"active"`
	Type      string             `bson:"type,omitempty" json:"type,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// GetID implements generic.Entity
func (b *Branch) GetID() primitive.ObjectID { return b.ID }

// SetID implements generic.Entity
func (b *Branch) SetID(id primitive.ObjectID) { b.ID = id }

// IsValidBranchType reports whether t is a known branch type.
// Empty is allowed; the simple schema carries no type.
func IsValidBranchType(t string) bool {
	switch t {
	case "", BranchTypeRetail, BranchTypeFactory, BranchTypeWholesale:
		return true
	}
	return false
}
