package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OTP is a one-time passcode issued to prove control of an email
// address before signup. Multiple records may exist per email; only
// the newest unexpired one is authoritative.
type OTP struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email     string             `bson:"email" json:"email"`
	Code      string             `bson:"otp" json:"-"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
