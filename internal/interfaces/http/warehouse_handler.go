package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/retail-stock/internal/application/catalog"
	"github.com/tu-usuario/retail-stock/internal/application/dto"
)

// WarehouseHandler maneja las peticiones HTTP para Warehouse.
type WarehouseHandler struct {
	uc *catalog.WarehouseUseCase
}

// NewWarehouseHandler construye el handler.
func NewWarehouseHandler(uc *catalog.WarehouseUseCase) *WarehouseHandler {
	return &WarehouseHandler{uc: uc}
}

// Create crea una bodega.
func (h *WarehouseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateWarehouseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListByCompany lista las bodegas de una empresa.
func (h *WarehouseHandler) ListByCompany(c *fiber.Ctx) error {
	companyID, err := c.ParamsInt("company_id")
	if err != nil || companyID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "company_id inválido"})
	}
	items, err := h.uc.ListByCompany(c.Context(), int64(companyID))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(fiber.Map{"items": items})
}
