package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/application/dto"
	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/application/usecase"
)

// AuditHandler read-only HTTP surface for the audit trail (protected).
type AuditHandler struct {
	uc *usecase.AuditLogUseCase
}

// NewAuditHandler builds the handler.
func NewAuditHandler(uc *usecase.AuditLogUseCase) *AuditHandler {
	return &AuditHandler{uc: uc}
}

// List godoc
// @Summary      Audit entries, newest first
// @Tags         audit
// @Security     Bearer
// @Produce      json
// @Param        entity_type  query  string  false  "filter: entity type (with entity_id)"
// @Param        entity_id    query  string  false  "filter: entity ID (with entity_type)"
// @Param        limit        query  int     false  "limit"   default(20)
// @Param        offset       query  int     false  "offset"  default(0)
// @Success      200  {object}  dto.AuditLogListResponse
// @Router       /api/audit-logs [get]
func (h *AuditHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "invalid query"})
	}
	page.DefaultPage()
	out, err := h.uc.List(c.Query("entity_type"), c.Query("entity_id"), page.Limit, page.Offset)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
