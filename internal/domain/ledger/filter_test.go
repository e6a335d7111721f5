package ledger_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cartera-api/internal/domain/entity"
	"github.com/jhoicas/cartera-api/internal/domain/ledger"
)

func tx(id, date, kind, payment string) *entity.Transaction {
	return &entity.Transaction{
		ID:            id,
		CustomerID:    "c1",
		Amount:        decimal.NewFromInt(10),
		Kind:          kind,
		PaymentMethod: payment,
		Date:          date,
	}
}

func ids(list []*entity.Transaction) []string {
	out := make([]string, 0, len(list))
	for _, t := range list {
		out = append(out, t.ID)
	}
	return out
}

func TestFilter_SinCriteriosDevuelveTodoOrdenado(t *testing.T) {
	list := []*entity.Transaction{
		tx("viejo", "2026-01-01 09:00:00", entity.KindIncome, entity.PaymentCash),
		tx("nuevo", "2026-06-01 09:00:00", entity.KindExpense, entity.PaymentCard),
		tx("medio", "2026-03-01 09:00:00", entity.KindIncome, entity.PaymentCash),
	}
	var f ledger.Filter
	require.True(t, f.IsZero())

	got := f.Apply(list)
	assert.Equal(t, []string{"nuevo", "medio", "viejo"}, ids(got),
		"sin criterios debe devolver todo en orden fecha descendente")
}

func TestFilter_PorTipo(t *testing.T) {
	list := []*entity.Transaction{
		tx("pago", "2026-06-01 09:00:00", entity.KindIncome, entity.PaymentCash),
		tx("cargo", "2026-06-02 09:00:00", entity.KindExpense, entity.PaymentCash),
	}
	f := ledger.Filter{Kind: entity.KindIncome}

	assert.Equal(t, []string{"pago"}, ids(f.Apply(list)))
}

func TestFilter_PorMedioDePago(t *testing.T) {
	list := []*entity.Transaction{
		tx("efectivo", "2026-06-01 09:00:00", entity.KindIncome, entity.PaymentCash),
		tx("tarjeta", "2026-06-02 09:00:00", entity.KindIncome, entity.PaymentCard),
	}
	f := ledger.Filter{PaymentMethod: entity.PaymentCard}

	assert.Equal(t, []string{"tarjeta"}, ids(f.Apply(list)))
}

// Los criterios activos se combinan con AND: cada uno reduce el resultado.
func TestFilter_CriteriosConjuntivos(t *testing.T) {
	list := []*entity.Transaction{
		tx("a", "2026-06-01 09:00:00", entity.KindIncome, entity.PaymentCash),
		tx("b", "2026-06-01 09:00:00", entity.KindIncome, entity.PaymentCard),
		tx("c", "2026-06-01 09:00:00", entity.KindExpense, entity.PaymentCash),
	}
	f := ledger.Filter{Kind: entity.KindIncome, PaymentMethod: entity.PaymentCash}

	assert.Equal(t, []string{"a"}, ids(f.Apply(list)))
}

// El rango es inclusivo a granularidad de día: un movimiento de las 23:59 del
// día de borde sigue adentro aunque la cota del rango sea medianoche.
func TestFilter_RangoInclusivoPorDia(t *testing.T) {
	from := time.Date(2026, 6, 1, 0, 0, 0, 0, time.Local)
	to := time.Date(2026, 6, 30, 0, 0, 0, 0, time.Local)
	list := []*entity.Transaction{
		tx("borde-inferior", "2026-06-01 00:00:00", entity.KindIncome, entity.PaymentCash),
		tx("borde-superior", "2026-06-30 23:59:59", entity.KindIncome, entity.PaymentCash),
		tx("antes", "2026-05-31 23:59:59", entity.KindIncome, entity.PaymentCash),
		tx("despues", "2026-07-01 00:00:00", entity.KindIncome, entity.PaymentCash),
	}
	f := ledger.Filter{From: &from, To: &to}

	got := ids(f.Apply(list))
	assert.Contains(t, got, "borde-inferior")
	assert.Contains(t, got, "borde-superior",
		"un movimiento a las 23:59 del último día del rango debe quedar adentro")
	assert.NotContains(t, got, "antes")
	assert.NotContains(t, got, "despues")
}

// Con rango activo, un movimiento cuya fecha no parsea queda fuera. Sin rango,
// los filtros de tipo/medio no lo excluyen.
func TestFilter_FechaNoParseableConRango(t *testing.T) {
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.Local)
	list := []*entity.Transaction{
		tx("ok", "2026-06-01 09:00:00", entity.KindIncome, entity.PaymentCash),
		tx("roto", "sin-fecha", entity.KindIncome, entity.PaymentCash),
	}

	conRango := ledger.Filter{From: &from}
	assert.Equal(t, []string{"ok"}, ids(conRango.Apply(list)),
		"con rango activo la fecha no parseable queda fuera")

	sinRango := ledger.Filter{Kind: entity.KindIncome}
	assert.Len(t, sinRango.Apply(list), 2,
		"sin rango el filtro de tipo no excluye fechas no parseables")
}

func TestFilter_SoloDesde(t *testing.T) {
	from := time.Date(2026, 6, 15, 13, 45, 0, 0, time.Local) // la hora de la cota no importa
	list := []*entity.Transaction{
		tx("dentro", "2026-06-15 08:00:00", entity.KindIncome, entity.PaymentCash),
		tx("fuera", "2026-06-14 23:00:00", entity.KindIncome, entity.PaymentCash),
	}
	f := ledger.Filter{From: &from}

	assert.Equal(t, []string{"dentro"}, ids(f.Apply(list)))
}
