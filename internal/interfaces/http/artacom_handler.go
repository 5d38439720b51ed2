package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/application/artacom"
	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/application/dto"
)

// ArtacomHandler HTTP surface for the partner sync (protected).
type ArtacomHandler struct {
	uc *artacom.SyncUseCase
}

// NewArtacomHandler builds the handler.
func NewArtacomHandler(uc *artacom.SyncUseCase) *ArtacomHandler {
	return &ArtacomHandler{uc: uc}
}

// Sync godoc
// @Summary      Trigger one sync pass against the partner API
// @Tags         artacom
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SyncRunResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/artacom/sync [post]
func (h *ArtacomHandler) Sync(c *fiber.Ctx) error {
	out, err := h.uc.Run(c.UserContext())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Status godoc
// @Summary      Latest sync run
// @Tags         artacom
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SyncRunResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/artacom/status [get]
func (h *ArtacomHandler) Status(c *fiber.Ctx) error {
	out, err := h.uc.Status()
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "no sync has run yet"})
	}
	return c.JSON(out)
}

// History godoc
// @Summary      Past sync runs, newest first
// @Tags         artacom
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "limit"   default(20)
// @Param        offset  query  int  false  "offset"  default(0)
// @Success      200  {object}  dto.SyncRunListResponse
// @Router       /api/artacom/history [get]
func (h *ArtacomHandler) History(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "invalid query"})
	}
	page.DefaultPage()
	out, err := h.uc.History(page.Limit, page.Offset)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Inventory godoc
// @Summary      Preview partner inventory without applying it
// @Tags         artacom
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ArtacomInventoryResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/artacom/inventory [get]
func (h *ArtacomHandler) Inventory(c *fiber.Ctx) error {
	out, err := h.uc.Inventory(c.UserContext())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
