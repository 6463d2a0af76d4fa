package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/retail-stock/internal/application/alerts"
	"github.com/tu-usuario/retail-stock/internal/application/dto"
)

// AlertsHandler maneja el reporte de alertas de stock bajo.
type AlertsHandler struct {
	lowStock *alerts.LowStockUseCase
	pdfUC    *alerts.PDFUseCase
}

// NewAlertsHandler construye el handler.
func NewAlertsHandler(lowStock *alerts.LowStockUseCase, pdfUC *alerts.PDFUseCase) *AlertsHandler {
	return &AlertsHandler{lowStock: lowStock, pdfUC: pdfUC}
}

// LowStock devuelve las alertas de stock bajo de una empresa.
func (h *AlertsHandler) LowStock(c *fiber.Ctx) error {
	companyID, err := c.ParamsInt("company_id")
	if err != nil || companyID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "company_id inválido"})
	}
	report, err := h.lowStock.Compute(c.Context(), int64(companyID), time.Now().UTC())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(report)
}

// LowStockPDF devuelve el mismo reporte renderizado a PDF.
func (h *AlertsHandler) LowStockPDF(c *fiber.Ctx) error {
	companyID, err := c.ParamsInt("company_id")
	if err != nil || companyID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "company_id inválido"})
	}
	doc, err := h.pdfUC.Generate(c.Context(), int64(companyID), time.Now().UTC())
	if err != nil {
		return writeDomainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="low-stock-report.pdf"`)
	return c.Send(doc)
}
