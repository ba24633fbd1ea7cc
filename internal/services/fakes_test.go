package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"strings"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"realestate-service/internal/models"
	"realestate-service/internal/repository"
)

// fakePropertyRepo is an in-memory stand-in for the properties collection.
// List mirrors the store's filter semantics: case-insensitive substring
// text match and inclusive price bounds.
type fakePropertyRepo struct {
	properties []*models.Property
}

func (r *fakePropertyRepo) Create(_ context.Context, property *models.Property) error {
	r.properties = append(r.properties, property)
	return nil
}

func (r *fakePropertyRepo) GetByID(_ context.Context, id primitive.ObjectID) (*models.Property, error) {
	for _, p := range r.properties {
		if p.ID == id {
			clone := *p
			return &clone, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakePropertyRepo) List(_ context.Context, filter repository.ListFilter) ([]models.Property, error) {
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

func (r *fakePropertyRepo) ListInBounds(_ context.Context, minLat, maxLat, minLng, maxLng float64) ([]models.Property, error) {
	out := []models.Property{}
	for _, p := range r.properties {
		if p.Location.Lat >= minLat && p.Location.Lat <= maxLat &&
			p.Location.Lng >= minLng && p.Location.Lng <= maxLng {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakePropertyRepo) SetCover(_ context.Context, id primitive.ObjectID, url string, at time.Time) error {
	for _, p := range r.properties {
		if p.ID == id {
			p.Image = url
			p.UpdatedAt = at
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (r *fakePropertyRepo) AppendGallery(_ context.Context, id primitive.ObjectID, images []models.PropertyImage, at time.Time) error {
	for _, p := range r.properties {
		if p.ID == id {
			p.Images = append(p.Images, images...)
			p.UpdatedAt = at
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

type fakeOwnerRepo struct {
	owners []*models.Owner
}

func (r *fakeOwnerRepo) Create(_ context.Context, owner *models.Owner) error {
	r.owners = append(r.owners, owner)
	return nil
}

func (r *fakeOwnerRepo) List(_ context.Context) ([]models.Owner, error) {
	out := []models.Owner{}
	for _, o := range r.owners {
		out = append(out, *o)
	}
	return out, nil
}

func (r *fakeOwnerRepo) GetByDisplayID(_ context.Context, idOwner string) (*models.Owner, error) {
	for _, o := range r.owners {
		if o.IDOwner == idOwner {
			clone := *o
			return &clone, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

type fakeTraceRepo struct {
	traces []*models.PropertyTrace
}

func (r *fakeTraceRepo) Create(_ context.Context, trace *models.PropertyTrace) error {
	r.traces = append(r.traces, trace)
	return nil
}

func (r *fakeTraceRepo) List(_ context.Context) ([]models.PropertyTrace, error) {
	out := []models.PropertyTrace{}
	for _, tr := range r.traces {
		out = append(out, *tr)
	}
	return out, nil
}

func (r *fakeTraceRepo) GetByID(_ context.Context, id primitive.ObjectID) (*models.PropertyTrace, error) {
	for _, tr := range r.traces {
		if tr.ID == id {
			clone := *tr
			return &clone, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeTraceRepo) ListByPropertyID(_ context.Context, idProperty string) ([]models.PropertyTrace, error) {
	out := []models.PropertyTrace{}
	for _, tr := range r.traces {
		if tr.IDProperty == idProperty {
			out = append(out, *tr)
		}
	}
	return out, nil
}

// fakeUploader returns deterministic URLs and counts calls so tests can
// assert that no upload happens on error paths.
type fakeUploader struct {
	calls int
	err   error
}

func (u *fakeUploader) Upload(_ context.Context, reader io.Reader, size int64, fileName, _ string) (string, error) {
	if reader == nil || size == 0 {
		return "", ErrEmptyFile
	}
	if u.err != nil {
		return "", u.err
	}
	u.calls++
	return fmt.Sprintf("https://img.test/%d_%s", u.calls, fileName), nil
}

func newTestService(repo *fakePropertyRepo, owners *fakeOwnerRepo, traces *fakeTraceRepo, uploader Uploader) *PropertyService {
	ids := testIDGen()
	ownerService := NewOwnerService(owners, ids)
	traceService := NewTraceService(traces, ids)
	return NewPropertyService(repo, ownerService, traceService, uploader, ids, nil)
}

func testIDGen() idGenerator { return idGenerator{} }

// idGenerator is a deterministic-date Generator for tests.
type idGenerator struct{}

func (idGenerator) DisplayID(prefix string) string {
	return prefix + time.Now().UTC().Format("20060102") + "1234"
}

func (idGenerator) InternalCode(prefix string) string {
	return prefix + time.Now().UTC().Format("20060102") + "123"
}

type testFile struct {
	name    string
	content string
}

// makeFileHeader builds a real multipart.FileHeader whose Open method
// serves the given content.
func makeFileHeader(t *testing.T, field, name, content string) *multipart.FileHeader {
	t.Helper()
	return makeFileHeaders(t, field, []testFile{{name, content}})[0]
}

// makeFileHeaders builds file headers in the given order.
func makeFileHeaders(t *testing.T, field string, files []testFile) []*multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for _, f := range files {
		part, err := writer.CreateFormFile(field, f.name)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := part.Write([]byte(f.content)); err != nil {
			t.Fatalf("write form file: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	reader := multipart.NewReader(&body, writer.Boundary())
	form, err := reader.ReadForm(1 << 20)
	if err != nil {
		t.Fatalf("read form: %v", err)
	}
	return form.File[field]
}
