package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"realestate-service/internal/models"
	"realestate-service/internal/services"
)

// OwnerHandler defines handlers for owner profile resources.
type OwnerHandler struct {
	Service *services.OwnerService
}

// NewOwnerHandler creates a new OwnerHandler with the given OwnerService.
func NewOwnerHandler(service *services.OwnerService) *OwnerHandler {
	return &OwnerHandler{Service: service}
}

// ListOwners handles GET /owners to retrieve all owner profiles.
// @Summary List all owners
// @Description Gets all owner profiles, unfiltered
// @Tags owners
// @Accept json
// @Produce json
// @Success 200 {array} models.Owner "List of all owners"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /owners [get]
func (h *OwnerHandler) ListOwners(c *fiber.Ctx) error {
	owners, err := h.Service.List(c.Context())
	if err != nil {
		log.Printf("Error listing owners: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": err.Error(),
		})
	}
	log.Printf("Successfully listed %d owners", len(owners))
	return c.JSON(owners)
}

// CreateOwner handles POST /owners to create a new owner profile.
// @Summary Create an owner
// @Description Creates an owner profile; the display id is generated when omitted
// @Tags owners
// @Accept json
// @Produce json
// @Param owner body models.CreateOwnerInput true "Owner data"
// @Success 200 {object} models.Owner "Owner successfully created"
// @Failure 400 {object} map[string]interface{} "Bad request - invalid body"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /owners [post]
func (h *OwnerHandler) CreateOwner(c *fiber.Ctx) error {
	var input models.CreateOwnerInput
	if err := c.BodyParser(&input); err != nil {
		log.Printf("Error parsing owner data: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "Invalid request format",
		})
	}

	owner, err := h.Service.Create(c.Context(), input)
	if err != nil {
		log.Printf("Error creating owner: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": err.Error(),
		})
	}

	log.Printf("Successfully created owner: ID=%s, IdOwner=%s", owner.ID.Hex(), owner.IDOwner)
	return c.JSON(owner)
}
