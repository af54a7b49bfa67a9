// Package pdf renderiza los reportes del libro de caja en PDF A4 con Maroto v2.
//
// Layout de la página:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: LedgerFlow Report / Generated on / Period          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TÍTULO de la sección según el tipo de reporte              │
//	│  TABLA: pendientes | métricas + transacciones | historial   │
//	│                                                             │
//	│  FOOTER: Page n of m                                        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

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

	domainreport "github.com/jhoicas/ledgerflow-api/internal/domain/report"
	"github.com/jhoicas/ledgerflow-api/internal/infrastructure/format"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 67, Green: 56, Blue: 202}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

const (
	emptyOutstanding  = "No outstanding amounts found."
	emptyTransactions = "No transactions found in the selected date range."
)

// ── Renderer ──────────────────────────────────────────────────────────────────

// MarotoReportRenderer implementa report.Renderer para el formato pdf.
type MarotoReportRenderer struct {
	fmt    *format.Formatter
	author string
}

// NewMarotoReportRenderer construye el renderer. f nil usa format.Default().
func NewMarotoReportRenderer(f *format.Formatter, author string) *MarotoReportRenderer {
	if f == nil {
		f = format.Default()
	}
	return &MarotoReportRenderer{fmt: f, author: author}
}

// Format "pdf".
func (r *MarotoReportRenderer) Format() string { return "pdf" }

// ContentType "application/pdf".
func (r *MarotoReportRenderer) ContentType() string { return "application/pdf" }

// Render genera el PDF y devuelve sus bytes.
func (r *MarotoReportRenderer) Render(ctx context.Context, doc *domainreport.Document) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("LedgerFlow Report", true).
		WithAuthor(r.author, true).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.Bottom,
			Size:    8,
			Color:   colorGray,
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRows(r.headerRows(doc)...)
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(sectionTitle(doc.Kind.Title(), 16))

	switch doc.Kind {
	case domainreport.KindOutstanding:
		m.AddRows(r.outstandingRows(doc.Outstanding)...)
	case domainreport.KindSummary:
		m.AddRows(r.summaryRows(doc)...)
	case domainreport.KindTransactions:
		m.AddRows(r.historyRows(doc.Transactions)...)
	default:
		return nil, fmt.Errorf("pdf: tipo de reporte %q", doc.Kind)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (r *MarotoReportRenderer) headerRows(doc *domainreport.Document) []core.Row {
	start := "Beginning"
	if !doc.StartDate.IsZero() {
		start = format.Date(doc.StartDate)
	}
	centered := func(s string, size float64, style fontstyle.Type, c *props.Color) core.Row {
		return text.NewRow(7, s, props.Text{Size: size, Style: style, Align: align.Center, Color: c, Top: 1})
	}
	return []core.Row{
		centered("LedgerFlow Report", 18, fontstyle.Bold, colorPrimary),
		row.New(3),
		centered("Generated on: "+format.Date(doc.GeneratedAt), 10, fontstyle.Normal, colorGray),
		centered(fmt.Sprintf("Period: %s - %s", start, format.Date(doc.EndDate)), 10, fontstyle.Normal, colorGray),
	}
}

func sectionTitle(s string, size float64) core.Row {
	return text.NewRow(12, s, props.Text{Style: fontstyle.Bold, Size: size, Top: 4})
}

func emptyLine(s string) core.Row {
	return text.NewRow(10, s, props.Text{Size: 12, Top: 2})
}

// column define una columna de tabla: etiqueta, ancho en la grilla de 12 y alineación.
type column struct {
	label string
	size  int
	align align.Type
}

// tableHeaderRow cabecera con fondo del color primario.
func tableHeaderRow(cols []column) core.Row {
	cells := make([]core.Col, 0, len(cols))
	for _, c := range cols {
		cells = append(cells, col.New(c.size).Add(text.New(c.label, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: c.align,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		})))
	}
	return row.New(8).Add(cells...).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

// tableRow una fila de datos con los mismos anchos que la cabecera.
func tableRow(cols []column, values ...string) core.Row {
	cells := make([]core.Col, 0, len(cols))
	for i, c := range cols {
		cells = append(cells, col.New(c.size).Add(text.New(values[i], props.Text{
			Size: 8.5, Align: c.align, Top: 1.5, Left: 1, Right: 1,
		})))
	}
	return row.New(7).Add(cells...)
}

func (r *MarotoReportRenderer) outstandingRows(rows []domainreport.OutstandingRow) []core.Row {
	if len(rows) == 0 {
		return []core.Row{emptyLine(emptyOutstanding)}
	}
	cols := []column{
		{"Customer Name", 4, align.Left},
		{"Phone", 3, align.Left},
		{"Amount", 3, align.Right},
		{"Status", 2, align.Center},
	}
	out := []core.Row{tableHeaderRow(cols)}
	for _, o := range rows {
		out = append(out, tableRow(cols, o.Name, o.Phone, r.fmt.Money(o.Amount), o.Status))
	}
	return out
}

func (r *MarotoReportRenderer) summaryRows(doc *domainreport.Document) []core.Row {
	t := doc.Summary
	cols := []column{{"Metric", 6, align.Left}, {"Value", 6, align.Right}}
	out := []core.Row{
		tableHeaderRow(cols),
		tableRow(cols, "Total Customers", r.fmt.Count(t.CustomerCount)),
		tableRow(cols, "Outstanding Customers", r.fmt.Count(t.OutstandingCount)),
		tableRow(cols, "Total to Receive", r.fmt.Money(t.TotalToReceive)),
		tableRow(cols, "Total to Pay", r.fmt.Money(t.TotalToPay)),
		tableRow(cols, "Net Balance", r.fmt.Money(t.NetBalance.Abs())),
		tableRow(cols, "Net Status", t.NetStatus()),
	}
	if len(doc.Transactions) == 0 {
		return out
	}

	out = append(out, row.New(6), sectionTitle("Transactions in Period", 14))
	txCols := []column{
		{"Date", 2, align.Left},
		{"Customer", 3, align.Left},
		{"Description", 4, align.Left},
		{"Type", 1, align.Center},
		{"Amount", 2, align.Right},
	}
	out = append(out, tableHeaderRow(txCols))
	for _, tx := range doc.Transactions {
		out = append(out, tableRow(txCols,
			format.Date(tx.Date), tx.CustomerName, tx.Description, tx.Sign(), r.fmt.Money(tx.Amount)))
	}
	return out
}

func (r *MarotoReportRenderer) historyRows(rows []domainreport.TransactionRow) []core.Row {
	if len(rows) == 0 {
		return []core.Row{emptyLine(emptyTransactions)}
	}
	cols := []column{
		{"Date", 2, align.Left},
		{"Customer", 2, align.Left},
		{"Description", 3, align.Left},
		{"Type", 1, align.Center},
		{"Amount", 2, align.Right},
		{"Running Balance", 2, align.Right},
	}
	out := []core.Row{tableHeaderRow(cols)}
	for _, tx := range rows {
		out = append(out, tableRow(cols,
			format.Date(tx.Date), tx.CustomerName, tx.Description, tx.TypeLabel(),
			r.fmt.Money(tx.Amount), r.fmt.Money(tx.RunningBalance)))
	}
	return out
}
