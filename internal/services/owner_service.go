package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"realestate-service/internal/idgen"
	"realestate-service/internal/models"
	"realestate-service/internal/repository"
)

// OwnerService provides read and create operations on owner profiles.
// Owners are append-only in this system.
type OwnerService struct {
	Repo repository.OwnerRepository
	IDs  idgen.Generator

	now func() time.Time
}

// NewOwnerService creates a new OwnerService.
func NewOwnerService(repo repository.OwnerRepository, ids idgen.Generator) *OwnerService {
	return &OwnerService{Repo: repo, IDs: ids, now: time.Now}
}

// List returns all owners, unfiltered and unpaginated.
func (s *OwnerService) List(ctx context.Context) ([]models.Owner, error) {
	return s.Repo.List(ctx)
}

// GetByDisplayID returns the owner whose generated display id matches
// exactly. Absence surfaces as mongo.ErrNoDocuments.
func (s *OwnerService) GetByDisplayID(ctx context.Context, idOwner string) (*models.Owner, error) {
	return s.Repo.GetByDisplayID(ctx, idOwner)
}

// Create persists a new owner. A caller-supplied display id is kept
// verbatim; otherwise one is generated. Nothing guards against display-id
// collisions.
func (s *OwnerService) Create(ctx context.Context, input models.CreateOwnerInput) (*models.Owner, error) {
	displayID := input.IDOwner
	if displayID == "" {
		displayID = s.IDs.DisplayID("OWN")
	}

	now := s.now().UTC()
	owner := &models.Owner{
		ID:        primitive.NewObjectID(),
		IDOwner:   displayID,
		Name:      input.Name,
		Address:   input.Address,
		Photo:     input.Photo,
		Birthday:  input.Birthday,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.Create(ctx, owner); err != nil {
		return nil, err
	}
	return owner, nil
}
