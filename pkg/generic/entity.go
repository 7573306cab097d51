package generic

import "go.mongodb.org/mongo-driver/bson/primitive"

// Entity is implemented by models stored through the base repository
type Entity interface {
	GetID() primitive.ObjectID
	SetID(primitive.ObjectID)
}
