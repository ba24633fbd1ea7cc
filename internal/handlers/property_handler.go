package handlers

import (
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"realestate-service/internal/models"
	"realestate-service/internal/repository"
	"realestate-service/internal/services"
)

const InvalidIDError = "invalid property id"
const PropertyNotFoundError = "property not found"

// PropertyHandler defines handlers for the property catalog resources.
type PropertyHandler struct {
	Service *services.PropertyService
}

// NewPropertyHandler creates a new PropertyHandler with the given
// PropertyService.
func NewPropertyHandler(service *services.PropertyService) *PropertyHandler {
	return &PropertyHandler{Service: service}
}

// ListProperties handles GET /properties with optional filter query params.
// @Summary List properties
// @Description Lists property summaries, optionally filtered by name, address and price bounds
// @Tags properties
// @Accept json
// @Produce json
// @Param name query string false "Case-insensitive name substring"
// @Param address query string false "Case-insensitive address substring"
// @Param minPrice query number false "Inclusive lower price bound"
// @Param maxPrice query number false "Inclusive upper price bound"
// @Success 200 {array} models.PropertySummary "Matching property summaries"
// @Failure 400 {object} map[string]interface{} "Invalid price bound"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /properties [get]
func (h *PropertyHandler) ListProperties(c *fiber.Ctx) error {
	filter := repository.ListFilter{
		Name:    c.Query("name"),
		Address: c.Query("address"),
	}
	if raw := c.Query("minPrice"); raw != "" {
		val, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": true, "message": "invalid minPrice",
			})
		}
		filter.MinPrice = &val
	}
	if raw := c.Query("maxPrice"); raw != "" {
		val, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": true, "message": "invalid maxPrice",
			})
		}
		filter.MaxPrice = &val
	}

	properties, err := h.Service.List(c.Context(), filter)
	if err != nil {
		log.Printf("Error listing properties: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": err.Error(),
		})
	}
	log.Printf("Successfully listed %d properties", len(properties))
	return c.JSON(properties)
}

// ListNearbyProperties handles GET /properties/nearby for the map view.
// @Summary List properties near a coordinate
// @Description Lists property summaries within a radius of the given coordinate
// @Tags properties
// @Accept json
// @Produce json
// @Param lat query number true "Latitude of the center"
// @Param lng query number true "Longitude of the center"
// @Param radius query number true "Radius in meters"
// @Success 200 {array} models.PropertySummary "Properties within the radius"
// @Failure 400 {object} map[string]interface{} "Missing or invalid coordinate"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /properties/nearby [get]
func (h *PropertyHandler) ListNearbyProperties(c *fiber.Ctx) error {
	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lng, errLng := strconv.ParseFloat(c.Query("lng"), 64)
	radius, errRadius := strconv.ParseFloat(c.Query("radius"), 64)
	if errLat != nil || errLng != nil || errRadius != nil || radius <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "lat, lng and a positive radius are required",
		})
	}

	properties, err := h.Service.ListNearby(c.Context(), lat, lng, radius)
	if err != nil {
		log.Printf("Error listing nearby properties: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": err.Error(),
		})
	}
	return c.JSON(properties)
}

// GetProperty handles GET /properties/:id to retrieve a single summary.
// @Summary Get a property by ID
// @Description Gets the flat summary of a single property
// @Tags properties
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} models.PropertySummary "Property found"
// @Failure 400 {object} map[string]interface{} "Invalid property id"
// @Failure 404 {object} map[string]interface{} "Property not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /properties/{id} [get]
func (h *PropertyHandler) GetProperty(c *fiber.Ctx) error {
	idStr := c.Params("id")
	propertyID, err := primitive.ObjectIDFromHex(idStr)
	if err != nil {
		log.Printf("Invalid property id format: %s - Error: %v", idStr, err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": InvalidIDError,
		})
	}

	summary, err := h.Service.GetSummary(c.Context(), propertyID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			log.Printf("Property not found: ID=%s", propertyID.Hex())
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": true, "message": PropertyNotFoundError,
			})
		}
		log.Printf("Error fetching property: ID=%s, Error=%v", propertyID.Hex(), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": err.Error(),
		})
	}
	return c.JSON(summary)
}

// GetPropertyDetail handles GET /properties/:id/detail to retrieve the
// enriched representation.
// @Summary Get a property detail by ID
// @Description Gets the property enriched with its resolved owner and sale history
// @Tags properties
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} models.PropertyDetail "Property detail found"
// @Failure 400 {object} map[string]interface{} "Invalid property id"
// @Failure 404 {object} map[string]interface{} "Property not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /properties/{id}/detail [get]
func (h *PropertyHandler) GetPropertyDetail(c *fiber.Ctx) error {
	idStr := c.Params("id")
	propertyID, err := primitive.ObjectIDFromHex(idStr)
	if err != nil {
		log.Printf("Invalid property id format: %s - Error: %v", idStr, err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": InvalidIDError,
		})
	}

	detail, err := h.Service.GetDetail(c.Context(), propertyID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			log.Printf("Property not found for detail: ID=%s", propertyID.Hex())
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": true, "message": PropertyNotFoundError,
			})
		}
		log.Printf("Error fetching property detail: ID=%s, Error=%v", propertyID.Hex(), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": err.Error(),
		})
	}
	return c.JSON(detail)
}

// CreateProperty handles POST /properties to create a new listing.
// @Summary Create a property
// @Description Creates a new property listing with generated display id and internal code
// @Tags properties
// @Accept json
// @Produce json
// @Param property body models.CreatePropertyInput true "Property data"
// @Success 201 {object} models.PropertySummary "Property successfully created"
// @Failure 400 {object} map[string]interface{} "Bad request - invalid body"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /properties [post]
func (h *PropertyHandler) CreateProperty(c *fiber.Ctx) error {
	var input models.CreatePropertyInput
	if err := c.BodyParser(&input); err != nil {
		log.Printf("Error parsing property data: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "Invalid request format",
		})
	}

	property, err := h.Service.Create(c.Context(), input)
	if err != nil {
		log.Printf("Error creating property: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": err.Error(),
		})
	}

	log.Printf("Successfully created property: ID=%s, IdProperty=%s", property.ID.Hex(), property.IDProperty)
	return c.Status(fiber.StatusCreated).JSON(property.Summary())
}

// UploadCover handles POST /properties/:id/cover (multipart, single file).
// @Summary Upload a cover image
// @Description Uploads a cover image and overwrites the property's cover URL
// @Tags properties
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Property ID"
// @Param file formData file true "Cover image file"
// @Success 200 {object} map[string]interface{} "Cover URL and property id"
// @Failure 400 {object} map[string]interface{} "Missing or empty file"
// @Failure 404 {object} map[string]interface{} "Property not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /properties/{id}/cover [post]
func (h *PropertyHandler) UploadCover(c *fiber.Ctx) error {
	idStr := c.Params("id")
	propertyID, err := primitive.ObjectIDFromHex(idStr)
	if err != nil {
		log.Printf("Invalid property id format for cover upload: %s - Error: %v", idStr, err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": InvalidIDError,
		})
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		log.Printf("Failed to read cover file: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "no file provided",
		})
	}

	url, err := h.Service.UploadCover(c.Context(), propertyID, fileHeader)
	if err != nil {
		return h.uploadError(c, propertyID, "cover", err)
	}

	log.Printf("Successfully uploaded cover: ID=%s, URL=%s", propertyID.Hex(), url)
	return c.JSON(fiber.Map{"coverUrl": url, "propertyId": propertyID.Hex()})
}

// UploadGallery handles POST /properties/:id/gallery (multipart, multiple
// files under the "files" field).
// @Summary Upload gallery images
// @Description Uploads gallery images and appends their URLs in upload order
// @Tags properties
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Property ID"
// @Param files formData file true "Gallery image files"
// @Success 200 {object} map[string]interface{} "Added URLs and property id"
// @Failure 400 {object} map[string]interface{} "Missing or empty files"
// @Failure 404 {object} map[string]interface{} "Property not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /properties/{id}/gallery [post]
func (h *PropertyHandler) UploadGallery(c *fiber.Ctx) error {
	idStr := c.Params("id")
	propertyID, err := primitive.ObjectIDFromHex(idStr)
	if err != nil {
		log.Printf("Invalid property id format for gallery upload: %s - Error: %v", idStr, err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": InvalidIDError,
		})
	}

	form, err := c.MultipartForm()
	if err != nil {
		log.Printf("Failed to read multipart form: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "invalid multipart form",
		})
	}
	files := form.File["files"]
	if len(files) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "no files provided",
		})
	}

	urls, err := h.Service.UploadGallery(c.Context(), propertyID, files)
	if err != nil {
		return h.uploadError(c, propertyID, "gallery", err)
	}

	log.Printf("Successfully uploaded %d gallery images: ID=%s", len(urls), propertyID.Hex())
	return c.JSON(fiber.Map{"addedUrls": urls, "propertyId": propertyID.Hex()})
}

func (h *PropertyHandler) uploadError(c *fiber.Ctx, propertyID primitive.ObjectID, kind string, err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		log.Printf("Property not found for %s upload: ID=%s", kind, propertyID.Hex())
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": true, "message": PropertyNotFoundError,
		})
	}
	if errors.Is(err, services.ErrEmptyFile) {
		log.Printf("Empty %s file rejected: ID=%s", kind, propertyID.Hex())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": services.ErrEmptyFile.Error(),
		})
	}
	log.Printf("Error uploading %s: ID=%s, Error=%v", kind, propertyID.Hex(), err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": true, "message": err.Error(),
	})
}
