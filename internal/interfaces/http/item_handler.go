package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/application/dto"
	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/application/inventory"
	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/domain/repository"
)

// ItemHandler HTTP surface for serialized items (protected).
type ItemHandler struct {
	uc *inventory.ItemUseCase
}

// NewItemHandler builds the handler.
func NewItemHandler(uc *inventory.ItemUseCase) *ItemHandler {
	return &ItemHandler{uc: uc}
}

// Create godoc
// @Summary      Register serialized item
// @Tags         items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateItemRequest  true  "item data"
// @Success      201   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/items [post]
func (h *ItemHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.Create(c.UserContext(), GetActor(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Get item by ID
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "item ID"
// @Success      200  {object}  dto.ItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{id} [get]
func (h *ItemHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "item not found"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      List items
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Param        product_id    query  string  false  "filter by product"
// @Param        warehouse_id  query  string  false  "filter by warehouse"
// @Param        status        query  string  false  "filter by status"
// @Param        deleted       query  bool    false  "include soft-deleted items"
// @Param        limit         query  int     false  "limit"   default(20)
// @Param        offset        query  int     false  "offset"  default(0)
// @Success      200  {object}  dto.ItemListResponse
// @Router       /api/items [get]
func (h *ItemHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "invalid query"})
	}
	page.DefaultPage()
	filter := repository.ItemFilter{
		ProductID:      c.Query("product_id"),
		WarehouseID:    c.Query("warehouse_id"),
		Status:         c.Query("status"),
		IncludeDeleted: c.QueryBool("deleted", false),
		Limit:          page.Limit,
		Offset:         page.Offset,
	}
	out, err := h.uc.List(filter)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Edit item fields (SN/MAC/notes)
// @Tags         items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "item ID"
// @Param        body  body  dto.UpdateItemRequest  true  "fields to update"
// @Success      200   {object}  dto.ItemResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/items/{id} [put]
func (h *ItemHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.Update(c.UserContext(), GetActor(c), c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Move godoc
// @Summary      Move item to another warehouse
// @Tags         items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "item ID"
// @Param        body  body  dto.MoveItemRequest  true  "target warehouse"
// @Success      200   {object}  dto.ItemResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/items/{id}/move [post]
func (h *ItemHandler) Move(c *fiber.Ctx) error {
	var in dto.MoveItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.Move(c.UserContext(), GetActor(c), c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Change item status (GUDANG/TEKNISI/TERPASANG)
// @Tags         items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "item ID"
// @Param        body  body  dto.UpdateItemStatusRequest  true  "new status"
// @Success      200   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/items/{id}/status [put]
func (h *ItemHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateItemStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.UpdateStatus(c.UserContext(), GetActor(c), c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Soft-delete item
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "item ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/items/{id} [delete]
func (h *ItemHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), GetActor(c), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Restore godoc
// @Summary      Restore a soft-deleted item
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "item ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/items/{id}/restore [post]
func (h *ItemHandler) Restore(c *fiber.Ctx) error {
	if err := h.uc.Restore(c.UserContext(), GetActor(c), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// History godoc
// @Summary      Item change timeline, newest first
// @Tags         histories
// @Security     Bearer
// @Produce      json
// @Param        itemId  path   string  true   "item ID"
// @Param        limit   query  int     false  "limit"   default(20)
// @Param        offset  query  int     false  "offset"  default(0)
// @Success      200  {object}  dto.ItemHistoryListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/histories/items/{itemId}/history [get]
func (h *ItemHandler) History(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "invalid query"})
	}
	page.DefaultPage()
	out, err := h.uc.History(c.Params("itemId"), page.Limit, page.Offset)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
