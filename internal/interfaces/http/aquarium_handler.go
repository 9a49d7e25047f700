package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/aquafarm-pro/aquafarm-api/internal/application/aquarium"
	"github.com/aquafarm-pro/aquafarm-api/internal/application/dto"
	"github.com/aquafarm-pro/aquafarm-api/internal/domain"
)

// AquariumHandler handles tank CRUD and farm settings (protected).
type AquariumHandler struct {
	uc *aquarium.UseCase
}

// NewAquariumHandler builds the handler.
func NewAquariumHandler(uc *aquarium.UseCase) *AquariumHandler {
	return &AquariumHandler{uc: uc}
}

// Create godoc
// @Summary      Create aquarium
// @Tags         aquariums
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAquariumRequest  true  "Tank data"
// @Success      201   {object}  dto.AquariumResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/aquariums [post]
func (h *AquariumHandler) Create(c *fiber.Ctx) error {
	farmID := GetFarmID(c)
	if farmID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "farm_id required"})
	}
	var in dto.CreateAquariumRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	out, err := h.uc.Create(farmID, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "tank number already exists on this farm"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Get aquarium by ID
// @Tags         aquariums
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Tank ID"
// @Success      200  {object}  dto.AquariumResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/aquariums/{id} [get]
func (h *AquariumHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "tank not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Update aquarium
// @Tags         aquariums
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "Tank ID"
// @Param        body  body  dto.UpdateAquariumRequest  true  "Fields to update"
// @Success      200   {object}  dto.AquariumResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/aquariums/{id} [put]
func (h *AquariumHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateAquariumRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "tank not found"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      List aquariums
// @Tags         aquariums
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int     false  "Limit"   default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Param        room    query  string  false  "Filter by room"
// @Success      200     {object}  dto.AquariumListResponse
// @Router       /api/aquariums [get]
func (h *AquariumHandler) List(c *fiber.Ctx) error {
	farmID := GetFarmID(c)
	if farmID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "farm_id required"})
	}
	if room := c.Query("room"); room != "" {
		items, err := h.uc.ListByRoom(farmID, room)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		return c.JSON(dto.AquariumListResponse{Items: items, Page: dto.PageResponse{Limit: len(items)}})
	}
	page := pageFromQuery(c)
	out, err := h.uc.List(farmID, page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Delete aquarium
// @Tags         aquariums
// @Security     Bearer
// @Param        id  path  string  true  "Tank ID"
// @Success      204
// @Router       /api/aquariums/{id} [delete]
func (h *AquariumHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetSettings godoc
// @Summary      Get farm room/status vocabularies
// @Tags         settings
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.FarmSettingsResponse
// @Router       /api/settings [get]
func (h *AquariumHandler) GetSettings(c *fiber.Ctx) error {
	farmID := GetFarmID(c)
	if farmID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "farm_id required"})
	}
	out, err := h.uc.GetSettings(farmID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// SaveSettings godoc
// @Summary      Replace farm room/status vocabularies
// @Tags         settings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.FarmSettingsRequest  true  "Rooms and statuses"
// @Success      200   {object}  dto.FarmSettingsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/settings [put]
func (h *AquariumHandler) SaveSettings(c *fiber.Ctx) error {
	farmID := GetFarmID(c)
	if farmID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "farm_id required"})
	}
	var in dto.FarmSettingsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	out, err := h.uc.SaveSettings(farmID, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// pageFromQuery reads limit/offset with the shared defaults and bounds.
func pageFromQuery(c *fiber.Ctx) dto.PageRequest {
	page := dto.PageRequest{
		Limit:  c.QueryInt("limit", 20),
		Offset: c.QueryInt("offset", 0),
	}
	page.DefaultPage()
	if page.Limit > 100 {
		page.Limit = 100
	}
	return page
}
