package http

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/aquafarm-pro/aquafarm-api/internal/application/dto"
	"github.com/aquafarm-pro/aquafarm-api/internal/application/extraction"
)

// maxUploadBytes caps document uploads at 20 MB, matching the oracle's
// own request limit.
const maxUploadBytes = 20 << 20

// ExtractionHandler exposes the document extraction pipeline.
//
// Pipeline failures (oracle down, unusable response, zero rows) are reported
// in-band: a 200 with Success=false and Error set, so the client can show
// the reason next to the upload widget instead of a generic error page.
type ExtractionHandler struct {
	uc *extraction.UseCase
}

// NewExtractionHandler builds the handler.
func NewExtractionHandler(uc *extraction.UseCase) *ExtractionHandler {
	return &ExtractionHandler{uc: uc}
}

// ExtractText godoc
// @Summary      Extract records from pasted text
// @Tags         extraction
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ExtractTextRequest  true  "Free-form invoice text"
// @Success      200   {object}  dto.ExtractionResult
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/extract/text [post]
func (h *ExtractionHandler) ExtractText(c *fiber.Ctx) error {
	var in dto.ExtractTextRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	if in.Text == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "text is required"})
	}
	result := h.uc.ExtractFromText(c.UserContext(), in.Text)
	return c.JSON(result)
}

// ExtractFile godoc
// @Summary      Extract records from an uploaded document
// @Description  Accepts PDF, image or spreadsheet files under the "file" form field.
// @Tags         extraction
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Invoice document"
// @Success      200   {object}  dto.ExtractionResult
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      413   {object}  dto.ErrorResponse
// @Router       /api/extract/file [post]
func (h *ExtractionHandler) ExtractFile(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "multipart field 'file' is required"})
	}
	if fh.Size > maxUploadBytes {
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(dto.ErrorResponse{Code: "FILE_TOO_LARGE", Message: "document exceeds the 20 MB upload limit"})
	}
	f, err := fh.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "could not open uploaded file"})
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "could not read uploaded file"})
	}
	result := h.uc.ExtractFromFile(c.UserContext(), fh.Filename, data)
	return c.JSON(result)
}
