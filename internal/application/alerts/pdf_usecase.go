package alerts

import (
	"context"
	"time"

	"github.com/tu-usuario/retail-stock/internal/application/dto"
)

// ReportRenderer puerto de render del reporte de alertas (infraestructura PDF).
type ReportRenderer interface {
	Render(report *dto.LowStockReport, companyID int64, generatedAt time.Time) ([]byte, error)
}

// PDFUseCase genera la versión PDF del reporte de stock bajo.
type PDFUseCase struct {
	lowStock *LowStockUseCase
	renderer ReportRenderer
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(lowStock *LowStockUseCase, renderer ReportRenderer) *PDFUseCase {
	return &PDFUseCase{lowStock: lowStock, renderer: renderer}
}

// Generate calcula el reporte y lo renderiza a PDF.
func (uc *PDFUseCase) Generate(ctx context.Context, companyID int64, now time.Time) ([]byte, error) {
	report, err := uc.lowStock.Compute(ctx, companyID, now)
	if err != nil {
		return nil, err
	}
	return uc.renderer.Render(report, companyID, now)
}
