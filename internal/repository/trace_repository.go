package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"realestate-service/internal/models"
)

// TraceRepository defines the data-access operations on the propertytraces
// collection.
type TraceRepository interface {
	Create(ctx context.Context, trace *models.PropertyTrace) error
	List(ctx context.Context) ([]models.PropertyTrace, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.PropertyTrace, error)
	ListByPropertyID(ctx context.Context, idProperty string) ([]models.PropertyTrace, error)
}

// TraceRepositoryImpl provides methods to interact with the propertytraces
// collection in MongoDB.
type TraceRepositoryImpl struct {
	collection *mongo.Collection
}

// NewTraceRepository creates a new TraceRepositoryImpl over the given
// database handle.
func NewTraceRepository(db *mongo.Database) *TraceRepositoryImpl {
	return &TraceRepositoryImpl{collection: db.Collection("propertytraces")}
}

// Create inserts a new trace document.
func (r *TraceRepositoryImpl) Create(ctx context.Context, trace *models.PropertyTrace) error {
	_, err := r.collection.InsertOne(ctx, trace)
	return err
}

// List retrieves all traces.
func (r *TraceRepositoryImpl) List(ctx context.Context) ([]models.PropertyTrace, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	traces := []models.PropertyTrace{}
	if err := cursor.All(ctx, &traces); err != nil {
		return nil, err
	}
	return traces, nil
}

// GetByID retrieves a trace by its store-assigned identifier.
func (r *TraceRepositoryImpl) GetByID(ctx context.Context, id primitive.ObjectID) (*models.PropertyTrace, error) {
	var trace models.PropertyTrace
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&trace)
	if err != nil {
		return nil, err
	}
	return &trace, nil
}

// ListByPropertyID retrieves all traces referencing the given property
// display id. A property with no sale history yields an empty slice.
func (r *TraceRepositoryImpl) ListByPropertyID(ctx context.Context, idProperty string) ([]models.PropertyTrace, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"idProperty": idProperty})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	traces := []models.PropertyTrace{}
	if err := cursor.All(ctx, &traces); err != nil {
		return nil, err
	}
	return traces, nil
}
