package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"realestate-service/internal/models"
	"realestate-service/internal/services"
)

const TraceNotFoundError = "trace not found"

// TraceHandler defines handlers for sale-history resources.
type TraceHandler struct {
	Service *services.TraceService
}

// NewTraceHandler creates a new TraceHandler with the given TraceService.
func NewTraceHandler(service *services.TraceService) *TraceHandler {
	return &TraceHandler{Service: service}
}

// ListTraces handles GET /propertytraces to retrieve all sale-history
// entries.
// @Summary List all property traces
// @Description Gets all sale-history entries, unfiltered
// @Tags traces
// @Accept json
// @Produce json
// @Success 200 {array} models.PropertyTrace "List of all traces"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /propertytraces [get]
func (h *TraceHandler) ListTraces(c *fiber.Ctx) error {
	traces, err := h.Service.List(c.Context())
	if err != nil {
		log.Printf("Error listing traces: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": err.Error(),
		})
	}
	log.Printf("Successfully listed %d traces", len(traces))
	return c.JSON(traces)
}

// GetTrace handles GET /propertytraces/:id to retrieve a single entry.
// @Summary Get a property trace by ID
// @Description Gets a single sale-history entry by its store identifier
// @Tags traces
// @Accept json
// @Produce json
// @Param id path string true "Trace ID"
// @Success 200 {object} models.PropertyTrace "Trace found"
// @Failure 400 {object} map[string]interface{} "Invalid trace id"
// @Failure 404 {object} map[string]interface{} "Trace not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /propertytraces/{id} [get]
func (h *TraceHandler) GetTrace(c *fiber.Ctx) error {
	idStr := c.Params("id")
	traceID, err := primitive.ObjectIDFromHex(idStr)
	if err != nil {
		log.Printf("Invalid trace id format: %s - Error: %v", idStr, err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "invalid trace id",
		})
	}

	trace, err := h.Service.GetByID(c.Context(), traceID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			log.Printf("Trace not found: ID=%s", traceID.Hex())
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": true, "message": TraceNotFoundError,
			})
		}
		log.Printf("Error fetching trace: ID=%s, Error=%v", traceID.Hex(), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": err.Error(),
		})
	}
	return c.JSON(trace)
}

// CreateTrace handles POST /propertytraces to record a sale.
// @Summary Create a property trace
// @Description Records a sale-history entry referencing a property display id
// @Tags traces
// @Accept json
// @Produce json
// @Param trace body models.CreateTraceInput true "Trace data"
// @Success 200 {object} models.PropertyTrace "Trace successfully created"
// @Failure 400 {object} map[string]interface{} "Bad request - invalid body"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /propertytraces [post]
func (h *TraceHandler) CreateTrace(c *fiber.Ctx) error {
	var input models.CreateTraceInput
	if err := c.BodyParser(&input); err != nil {
		log.Printf("Error parsing trace data: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "Invalid request format",
		})
	}

	trace, err := h.Service.Create(c.Context(), input)
	if err != nil {
		log.Printf("Error creating trace: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": err.Error(),
		})
	}

	log.Printf("Successfully created trace: ID=%s, IdPropertyTrace=%s", trace.ID.Hex(), trace.IDPropertyTrace)
	return c.JSON(trace)
}
