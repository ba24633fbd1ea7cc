package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Property is a listing document stored in the properties collection.
type Property struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	IDProperty   string             `bson:"idProperty" json:"idProperty"`
	Name         string             `bson:"name" json:"name"`
	Address      string             `bson:"address" json:"address"`
	Price        float64            `bson:"price" json:"price"`
	CodeInternal string             `bson:"codeInternal" json:"codeInternal"`
	Year         int                `bson:"year" json:"year"`
	IDOwner      string             `bson:"idOwner" json:"idOwner"`
	Image        string             `bson:"image" json:"image"`
	Location     GeoLocation        `bson:"location" json:"location"`
	Images       []PropertyImage    `bson:"images" json:"images"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type GeoLocation struct {
	Lat float64 `bson:"lat" json:"lat"`
	Lng float64 `bson:"lng" json:"lng"`
}

// PropertyImage is a gallery entry. Entries keep insertion order; Enabled
// lets an image be switched off without deleting it.
type PropertyImage struct {
	File    string `bson:"file" json:"file"`
	Enabled bool   `bson:"enabled" json:"enabled"`
}

// GalleryURLs returns the enabled gallery image URLs in stored order.
func (p *Property) GalleryURLs() []string {
	urls := make([]string, 0, len(p.Images))
	for _, img := range p.Images {
		if img.Enabled {
			urls = append(urls, img.File)
		}
	}
	return urls
}
