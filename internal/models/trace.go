package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PropertyTrace is a sale-history document stored in the propertytraces
// collection. IDProperty holds the display id of the property the sale
// belongs to; the reference is by value only, nothing enforces it.
type PropertyTrace struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	IDPropertyTrace string             `bson:"idPropertyTrace" json:"idPropertyTrace"`
	DateSale        time.Time          `bson:"dateSale" json:"dateSale"`
	Name            string             `bson:"name" json:"name"`
	Value           float64            `bson:"value" json:"value"`
	Tax             float64            `bson:"tax" json:"tax"`
	IDProperty      string             `bson:"idProperty" json:"idProperty"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}
