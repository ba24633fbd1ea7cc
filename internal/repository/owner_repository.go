package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"realestate-service/internal/models"
)

// OwnerRepository defines the data-access operations on the owners
// collection.
type OwnerRepository interface {
	Create(ctx context.Context, owner *models.Owner) error
	List(ctx context.Context) ([]models.Owner, error)
	GetByDisplayID(ctx context.Context, idOwner string) (*models.Owner, error)
}

// OwnerRepositoryImpl provides methods to interact with the owners
// collection in MongoDB.
type OwnerRepositoryImpl struct {
	collection *mongo.Collection
}

// NewOwnerRepository creates a new OwnerRepositoryImpl over the given
// database handle.
func NewOwnerRepository(db *mongo.Database) *OwnerRepositoryImpl {
	return &OwnerRepositoryImpl{collection: db.Collection("owners")}
}

// Create inserts a new owner document.
func (r *OwnerRepositoryImpl) Create(ctx context.Context, owner *models.Owner) error {
	_, err := r.collection.InsertOne(ctx, owner)
	return err
}

// List retrieves all owners.
func (r *OwnerRepositoryImpl) List(ctx context.Context) ([]models.Owner, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	owners := []models.Owner{}
	if err := cursor.All(ctx, &owners); err != nil {
		return nil, err
	}
	return owners, nil
}

// GetByDisplayID retrieves an owner by exact equality on the generated
// display id, not the store identifier.
func (r *OwnerRepositoryImpl) GetByDisplayID(ctx context.Context, idOwner string) (*models.Owner, error) {
	var owner models.Owner
	err := r.collection.FindOne(ctx, bson.M{"idOwner": idOwner}).Decode(&owner)
	if err != nil {
		return nil, err
	}
	return &owner, nil
}
