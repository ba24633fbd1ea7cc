package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"realestate-service/internal/idgen"
	"realestate-service/internal/models"
	"realestate-service/internal/repository"
)

// TraceService provides read and create operations on sale-history entries.
// Traces are append-only in this system.
type TraceService struct {
	Repo repository.TraceRepository
	IDs  idgen.Generator

	now func() time.Time
}

// NewTraceService creates a new TraceService.
func NewTraceService(repo repository.TraceRepository, ids idgen.Generator) *TraceService {
	return &TraceService{Repo: repo, IDs: ids, now: time.Now}
}

// List returns all traces, unfiltered.
func (s *TraceService) List(ctx context.Context) ([]models.PropertyTrace, error) {
	return s.Repo.List(ctx)
}

// GetByID returns a single trace looked up by its store-assigned identifier.
func (s *TraceService) GetByID(ctx context.Context, id primitive.ObjectID) (*models.PropertyTrace, error) {
	return s.Repo.GetByID(ctx, id)
}

// GetByPropertyID returns all traces referencing the given property display
// id; none yields an empty slice.
func (s *TraceService) GetByPropertyID(ctx context.Context, idProperty string) ([]models.PropertyTrace, error) {
	return s.Repo.ListByPropertyID(ctx, idProperty)
}

// Create persists a new trace. The display-id policy matches owners: keep a
// caller-supplied value verbatim, generate otherwise, never check
// uniqueness. No relationship between value and tax is enforced.
func (s *TraceService) Create(ctx context.Context, input models.CreateTraceInput) (*models.PropertyTrace, error) {
	displayID := input.IDPropertyTrace
	if displayID == "" {
		displayID = s.IDs.DisplayID("TRC")
	}

	now := s.now().UTC()
	trace := &models.PropertyTrace{
		ID:              primitive.NewObjectID(),
		IDPropertyTrace: displayID,
		DateSale:        input.DateSale,
		Name:            input.Name,
		Value:           input.Value,
		Tax:             input.Tax,
		IDProperty:      input.IDProperty,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.Repo.Create(ctx, trace); err != nil {
		return nil, err
	}
	return trace, nil
}
