package services

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"realestate-service/internal/idgen"
	"realestate-service/internal/metrics"
	"realestate-service/internal/models"
	"realestate-service/internal/repository"
	"realestate-service/internal/utils"
)

// PropertyService provides all read/write operations on properties,
// including cross-entity detail assembly and image uploads.
type PropertyService struct {
	Repo     repository.PropertyRepository
	Owners   *OwnerService
	Traces   *TraceService
	Uploader Uploader
	IDs      idgen.Generator
	Metrics  *metrics.Metrics

	now func() time.Time
}

// NewPropertyService creates a new PropertyService with the given
// collaborators. metrics may be nil.
func NewPropertyService(repo repository.PropertyRepository, owners *OwnerService, traces *TraceService, uploader Uploader, ids idgen.Generator, m *metrics.Metrics) *PropertyService {
	return &PropertyService{
		Repo:     repo,
		Owners:   owners,
		Traces:   traces,
		Uploader: uploader,
		IDs:      ids,
		Metrics:  m,
		now:      time.Now,
	}
}

// List returns property summaries matching the optional filters, in natural
// store order. No match yields an empty slice, never an error.
func (s *PropertyService) List(ctx context.Context, filter repository.ListFilter) ([]models.PropertySummary, error) {
	properties, err := s.Repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return summaries(properties), nil
}

// ListNearby returns summaries of properties within radiusMeters of the
// given coordinate. The store query is a coarse bounding box; the exact
// distance check happens here.
func (s *PropertyService) ListNearby(ctx context.Context, lat, lng, radiusMeters float64) ([]models.PropertySummary, error) {
	minLat, maxLat, minLng, maxLng := utils.BoundingBox(lat, lng, radiusMeters)
	properties, err := s.Repo.ListInBounds(ctx, minLat, maxLat, minLng, maxLng)
	if err != nil {
		return nil, err
	}

	nearby := []models.Property{}
	for _, p := range properties {
		if utils.HaversineDistance(lat, lng, p.Location.Lat, p.Location.Lng) <= radiusMeters {
			nearby = append(nearby, p)
		}
	}
	return summaries(nearby), nil
}

// GetSummary returns the flat representation of a single property looked up
// by its store-assigned identifier.
func (s *PropertyService) GetSummary(ctx context.Context, id primitive.ObjectID) (*models.PropertySummary, error) {
	property, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	summary := property.Summary()
	return &summary, nil
}

// GetDetail returns the property enriched with its resolved owner and sale
// history. A missing owner or an empty trace list is not an error; traces
// are matched on the property's display id.
func (s *PropertyService) GetDetail(ctx context.Context, id primitive.ObjectID) (*models.PropertyDetail, error) {
	property, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	owner, err := s.Owners.GetByDisplayID(ctx, property.IDOwner)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	traces, err := s.Traces.GetByPropertyID(ctx, property.IDProperty)
	if err != nil {
		return nil, err
	}

	detail := property.Detail(owner, traces)
	return &detail, nil
}

// Create persists a new property. Display id and internal code are
// generated, the construction year defaults to the current UTC year, and
// gallery URLs become enabled entries in input order.
func (s *PropertyService) Create(ctx context.Context, input models.CreatePropertyInput) (*models.Property, error) {
	now := s.now().UTC()
	property := &models.Property{
		ID:           primitive.NewObjectID(),
		IDProperty:   s.IDs.DisplayID("PROP"),
		IDOwner:      input.IDOwner,
		Name:         input.Name,
		Address:      input.Address,
		Price:        input.Price,
		CodeInternal: s.IDs.InternalCode("INT"),
		Year:         now.Year(),
		Image:        input.Image,
		Location:     models.GeoLocation{Lat: input.Lat, Lng: input.Lng},
		Images:       []models.PropertyImage{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	for _, url := range input.Images {
		property.Images = append(property.Images, models.PropertyImage{File: url, Enabled: true})
	}

	if err := s.Repo.Create(ctx, property); err != nil {
		return nil, err
	}
	if s.Metrics != nil {
		s.Metrics.IncrementPropertiesCreated()
	}
	return property, nil
}

// UploadCover stores a new cover image and overwrites the property's cover
// URL. The property lookup happens before any storage call, so a missing
// property never uploads anything.
func (s *PropertyService) UploadCover(ctx context.Context, id primitive.ObjectID, fileHeader *multipart.FileHeader) (string, error) {
	if _, err := s.Repo.GetByID(ctx, id); err != nil {
		return "", err
	}

	url, err := s.uploadFile(ctx, "cover", fileHeader)
	if err != nil {
		return "", err
	}

	if err := s.Repo.SetCover(ctx, id, url, s.now().UTC()); err != nil {
		return "", err
	}
	return url, nil
}

// UploadGallery stores each file and appends the resulting URLs as enabled
// gallery entries, in input order, with a single persistence step. An empty
// file list is a no-op. If the Nth upload fails, files 1..N-1 are already in
// object storage but never reach the record; that is accepted, not rolled
// back.
func (s *PropertyService) UploadGallery(ctx context.Context, id primitive.ObjectID, fileHeaders []*multipart.FileHeader) ([]string, error) {
	if _, err := s.Repo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	if len(fileHeaders) == 0 {
		return []string{}, nil
	}

	urls := make([]string, 0, len(fileHeaders))
	entries := make([]models.PropertyImage, 0, len(fileHeaders))
	for _, fh := range fileHeaders {
		url, err := s.uploadFile(ctx, "gallery", fh)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
		entries = append(entries, models.PropertyImage{File: url, Enabled: true})
	}

	if err := s.Repo.AppendGallery(ctx, id, entries, s.now().UTC()); err != nil {
		return nil, err
	}
	return urls, nil
}

func (s *PropertyService) uploadFile(ctx context.Context, kind string, fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader == nil || fileHeader.Size == 0 {
		return "", ErrEmptyFile
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", errors.Wrap(err, "could not open uploaded file")
	}
	defer file.Close()

	start := time.Now()
	url, err := s.Uploader.Upload(ctx, file, fileHeader.Size, fileHeader.Filename, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		if s.Metrics != nil {
			s.Metrics.IncrementUploadFailures(kind)
		}
		return "", err
	}
	if s.Metrics != nil {
		s.Metrics.ObserveUpload(kind, fileHeader.Size, float64(time.Since(start).Microseconds())/1000.0)
	}
	return url, nil
}

func summaries(properties []models.Property) []models.PropertySummary {
	out := make([]models.PropertySummary, 0, len(properties))
	for i := range properties {
		out = append(out, properties[i].Summary())
	}
	return out
}
