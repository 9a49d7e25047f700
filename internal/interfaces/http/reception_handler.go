package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/aquafarm-pro/aquafarm-api/internal/application/dto"
	"github.com/aquafarm-pro/aquafarm-api/internal/application/reception"
	"github.com/aquafarm-pro/aquafarm-api/internal/domain"
)

// ReceptionHandler handles reception plans, their items and the printable
// worksheet.
type ReceptionHandler struct {
	uc *reception.UseCase
}

// NewReceptionHandler builds the handler.
func NewReceptionHandler(uc *reception.UseCase) *ReceptionHandler {
	return &ReceptionHandler{uc: uc}
}

// receptionError maps domain sentinels to HTTP responses shared by every
// plan/item endpoint.
func receptionError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrPlanLocked):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "PLAN_LOCKED", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidTransition):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INVALID_TRANSITION", Message: err.Error()})
	case errors.Is(err, domain.ErrItemAlreadyReceived):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALREADY_RECEIVED", Message: err.Error()})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

// CreatePlan godoc
// @Summary      Create reception plan
// @Tags         reception
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePlanRequest  true  "Plan data"
// @Success      201   {object}  dto.PlanResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/reception/plans [post]
func (h *ReceptionHandler) CreatePlan(c *fiber.Ctx) error {
	farmID := GetFarmID(c)
	userID := GetUserID(c)
	if farmID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "farm_id required"})
	}
	var in dto.CreatePlanRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	out, err := h.uc.CreatePlan(farmID, userID, in)
	if err != nil {
		return receptionError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListPlans godoc
// @Summary      List reception plans
// @Tags         reception
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limit"   default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.PlanListResponse
// @Router       /api/reception/plans [get]
func (h *ReceptionHandler) ListPlans(c *fiber.Ctx) error {
	farmID := GetFarmID(c)
	if farmID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "farm_id required"})
	}
	page := pageFromQuery(c)
	out, err := h.uc.ListPlans(farmID, page.Limit, page.Offset)
	if err != nil {
		return receptionError(c, err)
	}
	return c.JSON(out)
}

// GetPlan godoc
// @Summary      Get reception plan by ID
// @Tags         reception
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Plan ID"
// @Success      200  {object}  dto.PlanResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reception/plans/{id} [get]
func (h *ReceptionHandler) GetPlan(c *fiber.Ctx) error {
	out, err := h.uc.GetPlan(c.Params("id"))
	if err != nil {
		return receptionError(c, err)
	}
	return c.JSON(out)
}

// Transition godoc
// @Summary      Move a plan to another status
// @Tags         reception
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "Plan ID"
// @Param        body  body  dto.TransitionRequest  true  "Target status"
// @Success      200   {object}  dto.PlanResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/reception/plans/{id}/transition [post]
func (h *ReceptionHandler) Transition(c *fiber.Ctx) error {
	var in dto.TransitionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	if in.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status is required"})
	}
	out, err := h.uc.Transition(c.Params("id"), in.Status)
	if err != nil {
		return receptionError(c, err)
	}
	return c.JSON(out)
}

// ListItems godoc
// @Summary      List items of a plan
// @Tags         reception
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Plan ID"
// @Success      200  {array}  dto.ItemResponse
// @Router       /api/reception/plans/{id}/items [get]
func (h *ReceptionHandler) ListItems(c *fiber.Ctx) error {
	out, err := h.uc.ListItems(c.Params("id"))
	if err != nil {
		return receptionError(c, err)
	}
	return c.JSON(out)
}

// AddItem godoc
// @Summary      Add an item to a plan
// @Tags         reception
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string              true  "Plan ID"
// @Param        body  body  dto.AddItemRequest  true  "Item data"
// @Success      201   {object}  dto.ItemResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/reception/plans/{id}/items [post]
func (h *ReceptionHandler) AddItem(c *fiber.Ctx) error {
	var in dto.AddItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	out, err := h.uc.AddItem(c.Params("id"), in)
	if err != nil {
		return receptionError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// AttachCandidates godoc
// @Summary      Attach extracted document rows to a plan
// @Description  Rows whose validation verdict failed are skipped, not rejected.
// @Tags         reception
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                       true  "Plan ID"
// @Param        body  body  dto.AttachCandidatesRequest  true  "Extracted rows"
// @Success      200   {object}  dto.AttachCandidatesResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/reception/plans/{id}/items/attach [post]
func (h *ReceptionHandler) AttachCandidates(c *fiber.Ctx) error {
	var in dto.AttachCandidatesRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	if len(in.Records) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "records are required"})
	}
	attached, err := h.uc.AttachCandidates(c.Params("id"), in.Records)
	if err != nil {
		return receptionError(c, err)
	}
	return c.JSON(dto.AttachCandidatesResponse{Attached: attached, Skipped: len(in.Records) - attached})
}

// AssignAquarium godoc
// @Summary      Assign a destination tank to an item
// @Tags         reception
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "Item ID"
// @Param        body  body  dto.AssignAquariumRequest  true  "Tank assignment"
// @Success      200   {object}  dto.ItemResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/reception/items/{id}/aquarium [patch]
func (h *ReceptionHandler) AssignAquarium(c *fiber.Ctx) error {
	var in dto.AssignAquariumRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	if in.AquariumID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "aquarium_id is required"})
	}
	out, err := h.uc.AssignAquarium(c.Params("id"), in.AquariumID, in.AquariumNumber)
	if err != nil {
		return receptionError(c, err)
	}
	return c.JSON(out)
}

// ReceiveItem godoc
// @Summary      Mark an item as physically received
// @Tags         reception
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Item ID"
// @Success      200  {object}  dto.ItemResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/reception/items/{id}/receive [post]
func (h *ReceptionHandler) ReceiveItem(c *fiber.Ctx) error {
	out, err := h.uc.ReceiveItem(c.Params("id"))
	if err != nil {
		return receptionError(c, err)
	}
	return c.JSON(out)
}

// CancelItem godoc
// @Summary      Cancel an item
// @Tags         reception
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Item ID"
// @Success      200  {object}  dto.ItemResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/reception/items/{id}/cancel [post]
func (h *ReceptionHandler) CancelItem(c *fiber.Ctx) error {
	out, err := h.uc.CancelItem(c.Params("id"))
	if err != nil {
		return receptionError(c, err)
	}
	return c.JSON(out)
}

// WorkRequirements godoc
// @Summary      Aggregate preparation workload of a plan
// @Tags         reception
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Plan ID"
// @Success      200
// @Router       /api/reception/plans/{id}/work-requirements [get]
func (h *ReceptionHandler) WorkRequirements(c *fiber.Ctx) error {
	out, err := h.uc.WorkRequirements(c.Params("id"))
	if err != nil {
		return receptionError(c, err)
	}
	return c.JSON(out)
}

// Worksheet godoc
// @Summary      Download the printable reception worksheet
// @Tags         reception
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "Plan ID"
// @Success      200  {file}  binary
// @Router       /api/reception/plans/{id}/worksheet [get]
func (h *ReceptionHandler) Worksheet(c *fiber.Ctx) error {
	data, err := h.uc.Worksheet(c.Params("id"))
	if err != nil {
		return receptionError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="reception-%s.pdf"`, c.Params("id")))
	return c.Send(data)
}
