package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/aquafarm-pro/aquafarm-api/internal/application/dto"
	"github.com/aquafarm-pro/aquafarm-api/internal/application/shipment"
	"github.com/aquafarm-pro/aquafarm-api/internal/domain"
)

// ShipmentHandler handles atomic shipment imports and shipment reads.
type ShipmentHandler struct {
	importUC *shipment.ImportUseCase
	queryUC  *shipment.QueryUseCase
}

// NewShipmentHandler builds the handler.
func NewShipmentHandler(importUC *shipment.ImportUseCase, queryUC *shipment.QueryUseCase) *ShipmentHandler {
	return &ShipmentHandler{importUC: importUC, queryUC: queryUC}
}

// Import godoc
// @Summary      Import a shipment
// @Description  Creates the shipment and every fish instance in one transaction. Rejects the whole batch when any row is invalid.
// @Tags         shipments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ImportShipmentRequest  true  "Shipment metadata and confirmed rows"
// @Success      201   {object}  dto.ImportShipmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/shipments/import [post]
func (h *ShipmentHandler) Import(c *fiber.Ctx) error {
	userID := GetUserID(c)
	farmID := GetFarmID(c)
	var in dto.ImportShipmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	out, err := h.importUC.Import(c.UserContext(), userID, farmID, in.Metadata, in.Items)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnauthenticated):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "authentication required"})
		case errors.Is(err, domain.ErrMissingFarm), errors.Is(err, domain.ErrEmptyImport):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INVALID_ROWS", Message: err.Error()})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "FARM_NOT_FOUND", Message: "farm does not exist"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      List shipments
// @Tags         shipments
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limit"   default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.ShipmentListResponse
// @Router       /api/shipments [get]
func (h *ShipmentHandler) List(c *fiber.Ctx) error {
	farmID := GetFarmID(c)
	if farmID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "farm_id required"})
	}
	page := pageFromQuery(c)
	out, err := h.queryUC.List(farmID, page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Get shipment by ID
// @Tags         shipments
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Shipment ID"
// @Success      200  {object}  dto.ShipmentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/shipments/{id} [get]
func (h *ShipmentHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.queryUC.Get(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "shipment not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Instances godoc
// @Summary      List fish instances of a shipment
// @Tags         shipments
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Shipment ID"
// @Success      200  {array}  entity.FishInstance
// @Router       /api/shipments/{id}/instances [get]
func (h *ShipmentHandler) Instances(c *fiber.Ctx) error {
	out, err := h.queryUC.Instances(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
