package repository

import (
	"context"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"realestate-service/internal/models"
)

// ListFilter carries the optional property list filters. Nil pointer fields
// impose no constraint; set fields compose with logical AND.
type ListFilter struct {
	Name     string
	Address  string
	MinPrice *float64
	MaxPrice *float64
}

// PropertyRepository defines the data-access operations on the properties
// collection.
type PropertyRepository interface {
	Create(ctx context.Context, property *models.Property) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Property, error)
	List(ctx context.Context, filter ListFilter) ([]models.Property, error)
	ListInBounds(ctx context.Context, minLat, maxLat, minLng, maxLng float64) ([]models.Property, error)
	SetCover(ctx context.Context, id primitive.ObjectID, url string, at time.Time) error
	AppendGallery(ctx context.Context, id primitive.ObjectID, images []models.PropertyImage, at time.Time) error
}

// PropertyRepositoryImpl provides methods to interact with the properties
// collection in MongoDB.
type PropertyRepositoryImpl struct {
	collection *mongo.Collection
}

// NewPropertyRepository creates a new PropertyRepositoryImpl over the given
// database handle.
func NewPropertyRepository(db *mongo.Database) *PropertyRepositoryImpl {
	return &PropertyRepositoryImpl{collection: db.Collection("properties")}
}

// buildListFilter translates a ListFilter into a MongoDB filter document.
// Text filters become case-insensitive substring regexes; price bounds are
// inclusive.
func buildListFilter(filter ListFilter) bson.M {
	query := bson.M{}
	if filter.Name != "" {
		query["name"] = bson.M{"$regex": primitive.Regex{Pattern: regexp.QuoteMeta(filter.Name), Options: "i"}}
	}
	if filter.Address != "" {
		query["address"] = bson.M{"$regex": primitive.Regex{Pattern: regexp.QuoteMeta(filter.Address), Options: "i"}}
	}
	price := bson.M{}
	if filter.MinPrice != nil {
		price["$gte"] = *filter.MinPrice
	}
	if filter.MaxPrice != nil {
		price["$lte"] = *filter.MaxPrice
	}
	if len(price) > 0 {
		query["price"] = price
	}
	return query
}

// Create inserts a new property document.
func (r *PropertyRepositoryImpl) Create(ctx context.Context, property *models.Property) error {
	_, err := r.collection.InsertOne(ctx, property)
	return err
}

// GetByID retrieves a property by its store-assigned identifier.
func (r *PropertyRepositoryImpl) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Property, error) {
	var property models.Property
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&property)
	if err != nil {
		return nil, err
	}
	return &property, nil
}

// List retrieves all properties matching the filter, in natural store order.
func (r *PropertyRepositoryImpl) List(ctx context.Context, filter ListFilter) ([]models.Property, error) {
	cursor, err := r.collection.Find(ctx, buildListFilter(filter))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	properties := []models.Property{}
	if err := cursor.All(ctx, &properties); err != nil {
		return nil, err
	}
	return properties, nil
}

// ListInBounds retrieves properties whose coordinates fall inside the given
// bounding box. Callers refine the result with an exact distance check.
func (r *PropertyRepositoryImpl) ListInBounds(ctx context.Context, minLat, maxLat, minLng, maxLng float64) ([]models.Property, error) {
	query := bson.M{
		"location.lat": bson.M{"$gte": minLat, "$lte": maxLat},
		"location.lng": bson.M{"$gte": minLng, "$lte": maxLng},
	}
	cursor, err := r.collection.Find(ctx, query)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	properties := []models.Property{}
	if err := cursor.All(ctx, &properties); err != nil {
		return nil, err
	}
	return properties, nil
}

// SetCover atomically overwrites the cover image URL and the updated
// timestamp.
func (r *PropertyRepositoryImpl) SetCover(ctx context.Context, id primitive.ObjectID, url string, at time.Time) error {
	res, err := r.collection.UpdateByID(ctx, id, bson.M{
		"$set": bson.M{"image": url, "updatedAt": at},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// AppendGallery atomically appends gallery entries in the given order and
// refreshes the updated timestamp. Appending avoids the lost-update race a
// full-document replace would have.
func (r *PropertyRepositoryImpl) AppendGallery(ctx context.Context, id primitive.ObjectID, images []models.PropertyImage, at time.Time) error {
	if len(images) == 0 {
		return nil
	}
	res, err := r.collection.UpdateByID(ctx, id, bson.M{
		"$push": bson.M{"images": bson.M{"$each": images}},
		"$set":  bson.M{"updatedAt": at},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
