package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Owner is a profile document stored in the owners collection. IDOwner is the
// generated display id other documents reference; it is distinct from the
// store-assigned ObjectID.
type Owner struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	IDOwner   string             `bson:"idOwner" json:"idOwner"`
	Name      string             `bson:"name" json:"name"`
	Address   string             `bson:"address" json:"address"`
	Photo     string             `bson:"photo" json:"photo"`
	Birthday  time.Time          `bson:"birthday" json:"birthday"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
