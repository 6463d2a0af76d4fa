package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/retail-stock/internal/application/dto"
	"github.com/tu-usuario/retail-stock/internal/application/stock"
)

// StockHandler maneja los ajustes de inventario.
type StockHandler struct {
	adjustUC *stock.AdjustUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(adjustUC *stock.AdjustUseCase) *StockHandler {
	return &StockHandler{adjustUC: adjustUC}
}

// Adjust aplica un cambio con signo al stock de un producto en una bodega.
func (h *StockHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ProductID <= 0 || in.WarehouseID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id y warehouse_id son requeridos"})
	}
	newQty, err := h.adjustUC.Adjust(c.Context(), stock.AdjustInput{
		ProductID:   in.ProductID,
		WarehouseID: in.WarehouseID,
		Change:      in.Change,
		Reason:      in.Reason,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(dto.AdjustStockResponse{
		ProductID:   in.ProductID,
		WarehouseID: in.WarehouseID,
		NewQuantity: newQty,
	})
}
