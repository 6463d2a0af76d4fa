// Package pdf renderiza el reporte de alertas de stock bajo con Maroto v2.
package pdf

import (
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/tu-usuario/retail-stock/internal/application/alerts"
	"github.com/tu-usuario/retail-stock/internal/application/dto"
)

var (
	colorPrimary = &props.Color{Red: 178, Green: 34, Blue: 34}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Ensure MarotoReportRenderer implements alerts.ReportRenderer.
var _ alerts.ReportRenderer = (*MarotoReportRenderer)(nil)

// MarotoReportRenderer genera el PDF del reporte de stock bajo.
type MarotoReportRenderer struct{}

// NewMarotoReportRenderer construye el renderer.
func NewMarotoReportRenderer() *MarotoReportRenderer { return &MarotoReportRenderer{} }

// Render genera el PDF y devuelve sus bytes.
func (g *MarotoReportRenderer) Render(report *dto.LowStockReport, companyID int64, generatedAt time.Time) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de stock bajo", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(companyID, generatedAt, report.TotalAlerts))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, a := range report.Alerts {
		m.AddRows(alertRow(a))
	}
	if report.TotalAlerts == 0 {
		m.AddRows(row.New(8).Add(
			col.New(12).Add(text.New("Sin alertas: todo el stock está sobre su umbral.", props.Text{
				Size: 9, Color: colorGray, Align: align.Center, Top: 2,
			})),
		))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título (izq) y empresa + fecha de generación (der).
func headerRow(companyID int64, generatedAt time.Time, total int) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New("Alertas de stock bajo", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Total: %d", total), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(fmt.Sprintf("Empresa #%d", companyID), props.Text{
				Size: 9, Align: align.Right, Top: 1,
			}),
			text.New(generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 9, Align: align.Right, Top: 6, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := func(size int, label string) core.Col {
		return col.New(size).Add(text.New(label, props.Text{Style: fontstyle.Bold, Size: 8, Top: 1}))
	}
	return row.New(6).Add(
		header(2, "SKU"),
		header(3, "Producto"),
		header(2, "Bodega"),
		header(1, "Stock"),
		header(1, "Umbral"),
		header(1, "Días"),
		header(2, "Proveedor"),
	)
}

func alertRow(a dto.LowStockAlert) core.Row {
	cell := func(size int, value string) core.Col {
		return col.New(size).Add(text.New(value, props.Text{Size: 8, Top: 1}))
	}
	supplier := "—"
	if a.Supplier != nil {
		supplier = a.Supplier.Name
	}
	return row.New(5).Add(
		cell(2, a.SKU),
		cell(3, a.ProductName),
		cell(2, a.WarehouseName),
		cell(1, strconv.FormatInt(a.CurrentStock, 10)),
		cell(1, strconv.FormatInt(a.Threshold, 10)),
		cell(1, strconv.FormatInt(a.DaysUntilStockout, 10)),
		cell(2, supplier),
	)
}
