// Package pdf implementa la generación del extracto de cuenta de un cliente.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del cliente + "Extracto de cuenta"           │
//	│  Documento / Teléfono                                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Tipo | Monto | Descripción | Medio de pago   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Total pagos / Total cargos / Neto (verde o rojo)   │
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
	"github.com/shopspring/decimal"

	"github.com/jhoicas/cartera-api/internal/application/usecase"
	"github.com/jhoicas/cartera-api/internal/domain/entity"
	"github.com/jhoicas/cartera-api/internal/domain/ledger"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorGreen   = &props.Color{Red: 76, Green: 175, Blue: 80}
	colorRed     = &props.Color{Red: 244, Green: 67, Blue: 54}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoStatementGenerator implementa usecase.StatementPDFGenerator usando Maroto v2.
type MarotoStatementGenerator struct{}

var _ usecase.StatementPDFGenerator = (*MarotoStatementGenerator)(nil)

// NewMarotoStatementGenerator construye el generador.
func NewMarotoStatementGenerator() *MarotoStatementGenerator { return &MarotoStatementGenerator{} }

// GenerateStatementPDF genera el extracto y devuelve sus bytes.
func (g *MarotoStatementGenerator) GenerateStatementPDF(
	_ context.Context,
	customer *entity.Customer,
	transactions []*entity.Transaction,
	stats ledger.Stats,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Extracto de cuenta", true).
		WithAuthor(customer.FullName(), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(customer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(transactions) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(stats))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del cliente (izq) y título + datos de contacto (der).
func headerRow(customer *entity.Customer) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(customer.FullName(), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Documento: %s   |   Tel: %s",
				nonEmpty(customer.NationalID, "—"),
				nonEmpty(customer.Phone, "—"),
			), props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("EXTRACTO DE CUENTA", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de movimientos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 3, align.Left),
		h("Tipo", 2, align.Center),
		h("Monto", 2, align.Right),
		h("Descripción", 3, align.Left),
		h("Medio", 2, align.Center),
	)
}

// tableRows: una fila por movimiento; pagos en verde, cargos en rojo.
func tableRows(transactions []*entity.Transaction) []core.Row {
	result := make([]core.Row, 0, len(transactions))
	for _, t := range transactions {
		kindLabel, kindColor := "Cargo", colorRed
		if t.Kind == entity.KindIncome {
			kindLabel, kindColor = "Pago", colorGreen
		}
		payLabel := "Tarjeta"
		if t.PaymentMethod == entity.PaymentCash {
			payLabel = "Efectivo"
		}
		result = append(result, row.New(7).Add(
			col.New(3).Add(text.New(
				t.Date,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				kindLabel,
				props.Text{Size: 8, Align: align.Center, Top: 1, Color: kindColor},
			)),
			col.New(2).Add(text.New(
				"$"+t.Amount.Abs().StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1, Color: kindColor},
			)),
			col.New(3).Add(text.New(
				t.Description,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				payLabel,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
		))
	}
	return result
}

// totalsRow: bloque de totales alineado a la derecha; el neto se colorea según signo.
func totalsRow(stats ledger.Stats) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}

	netColor := colorGreen
	netLabel := "a favor"
	if stats.Net.LessThan(decimal.Zero) {
		netColor = colorRed
		netLabel = "en deuda"
	}
	netText := fmt.Sprintf("$%s (%s)", stats.Net.Abs().StringFixed(2), netLabel)

	return row.New(26).Add(
		col.New(3),
		col.New(4).Add(
			label("Total pagos:"),
			label("Total cargos:"),
			text.New("NETO:", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: netColor, Right: 2,
			}),
		),
		col.New(4).Add(
			value("$"+stats.TotalIncome.StringFixed(2)),
			value("$"+stats.TotalExpense.StringFixed(2)),
			text.New(netText, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: netColor, Right: 1,
			}),
		),
		col.New(1),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
