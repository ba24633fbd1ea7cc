package handlers

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"realestate-service/internal/idgen"
	"realestate-service/internal/models"
	"realestate-service/internal/repository"
	"realestate-service/internal/services"
)

// In-memory repositories mirroring the store's matching semantics, so the
// full handler → service path can run under app.Test without a database.

type memPropertyRepo struct {
	properties []*models.Property
}

func (r *memPropertyRepo) Create(_ context.Context, property *models.Property) error {
	r.properties = append(r.properties, property)
	return nil
}

func (r *memPropertyRepo) GetByID(_ context.Context, id primitive.ObjectID) (*models.Property, error) {
	for _, p := range r.properties {
		if p.ID == id {
			clone := *p
			return &clone, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *memPropertyRepo) List(_ context.Context, filter repository.ListFilter) ([]models.Property, error) {
	out := []models.Property{}
	for _, p := range r.properties {
		if filter.Name != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(filter.Name)) {
			continue
		}
		if filter.Address != "" && !strings.Contains(strings.ToLower(p.Address), strings.ToLower(filter.Address)) {
			continue
		}
		if filter.MinPrice != nil && p.Price < *filter.MinPrice {
			continue
		}
		if filter.MaxPrice != nil && p.Price > *filter.MaxPrice {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (r *memPropertyRepo) ListInBounds(_ context.Context, minLat, maxLat, minLng, maxLng float64) ([]models.Property, error) {
	out := []models.Property{}
	for _, p := range r.properties {
		if p.Location.Lat >= minLat && p.Location.Lat <= maxLat &&
			p.Location.Lng >= minLng && p.Location.Lng <= maxLng {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *memPropertyRepo) SetCover(_ context.Context, id primitive.ObjectID, url string, at time.Time) error {
	for _, p := range r.properties {
		if p.ID == id {
			p.Image = url
			p.UpdatedAt = at
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (r *memPropertyRepo) AppendGallery(_ context.Context, id primitive.ObjectID, images []models.PropertyImage, at time.Time) error {
	for _, p := range r.properties {
		if p.ID == id {
			p.Images = append(p.Images, images...)
			p.UpdatedAt = at
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

type memOwnerRepo struct {
	owners []*models.Owner
}

func (r *memOwnerRepo) Create(_ context.Context, owner *models.Owner) error {
	r.owners = append(r.owners, owner)
	return nil
}

func (r *memOwnerRepo) List(_ context.Context) ([]models.Owner, error) {
	out := []models.Owner{}
	for _, o := range r.owners {
		out = append(out, *o)
	}
	return out, nil
}

func (r *memOwnerRepo) GetByDisplayID(_ context.Context, idOwner string) (*models.Owner, error) {
	for _, o := range r.owners {
		if o.IDOwner == idOwner {
			clone := *o
			return &clone, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

type memTraceRepo struct {
	traces []*models.PropertyTrace
}

func (r *memTraceRepo) Create(_ context.Context, trace *models.PropertyTrace) error {
	r.traces = append(r.traces, trace)
	return nil
}

func (r *memTraceRepo) List(_ context.Context) ([]models.PropertyTrace, error) {
	out := []models.PropertyTrace{}
	for _, tr := range r.traces {
		out = append(out, *tr)
	}
	return out, nil
}

func (r *memTraceRepo) GetByID(_ context.Context, id primitive.ObjectID) (*models.PropertyTrace, error) {
	for _, tr := range r.traces {
		if tr.ID == id {
			clone := *tr
			return &clone, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *memTraceRepo) ListByPropertyID(_ context.Context, idProperty string) ([]models.PropertyTrace, error) {
	out := []models.PropertyTrace{}
	for _, tr := range r.traces {
		if tr.IDProperty == idProperty {
			out = append(out, *tr)
		}
	}
	return out, nil
}

type memUploader struct {
	calls int
}

func (u *memUploader) Upload(_ context.Context, reader io.Reader, size int64, fileName, _ string) (string, error) {
	if reader == nil || size == 0 {
		return "", services.ErrEmptyFile
	}
	u.calls++
	return fmt.Sprintf("https://img.test/%d_%s", u.calls, fileName), nil
}

type testEnv struct {
	app      *fiber.App
	props    *memPropertyRepo
	owners   *memOwnerRepo
	traces   *memTraceRepo
	uploader *memUploader
}

// newTestApp wires the handlers over in-memory collaborators with the same
// routes main registers.
func newTestApp(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		props:    &memPropertyRepo{},
		owners:   &memOwnerRepo{},
		traces:   &memTraceRepo{},
		uploader: &memUploader{},
	}

	ids := idgen.NewRandom()
	ownerService := services.NewOwnerService(env.owners, ids)
	traceService := services.NewTraceService(env.traces, ids)
	propertyService := services.NewPropertyService(env.props, ownerService, traceService, env.uploader, ids, nil)

	app := fiber.New()
	ph := NewPropertyHandler(propertyService)
	oh := NewOwnerHandler(ownerService)
	th := NewTraceHandler(traceService)

	api := app.Group("/api")
	api.Get("/properties", ph.ListProperties)
	api.Get("/properties/nearby", ph.ListNearbyProperties)
	api.Get("/properties/:id", ph.GetProperty)
	api.Get("/properties/:id/detail", ph.GetPropertyDetail)
	api.Post("/properties", ph.CreateProperty)
	api.Post("/properties/:id/cover", ph.UploadCover)
	api.Post("/properties/:id/gallery", ph.UploadGallery)
	api.Get("/owners", oh.ListOwners)
	api.Post("/owners", oh.CreateOwner)
	api.Get("/propertytraces", th.ListTraces)
	api.Get("/propertytraces/:id", th.GetTrace)
	api.Post("/propertytraces", th.CreateTrace)

	env.app = app
	return env
}

// multipartBody builds a multipart request body with one part per file
// under the given field name, preserving order.
func multipartBody(t *testing.T, field string, files [][2]string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for _, f := range files {
		part, err := writer.CreateFormFile(field, f[0])
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := part.Write([]byte(f[1])); err != nil {
			t.Fatalf("write form file: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return body, writer.FormDataContentType()
}
