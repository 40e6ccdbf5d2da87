package service_test

import (
	"context"
	"testing"
	"time"

	"frenotaller/internal/apierror"
	"frenotaller/internal/dto"
	"frenotaller/internal/model"
	"frenotaller/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProductoRepo struct {
	bajoStock []model.Producto
}

func (r *stubProductoRepo) Create(context.Context, *model.Producto) error { return nil }
func (r *stubProductoRepo) FindByID(context.Context, uuid.UUID) (*model.Producto, error) {
	return nil, nil
}
func (r *stubProductoRepo) List(context.Context, string) ([]model.Producto, error) { return nil, nil }
func (r *stubProductoRepo) Update(context.Context, *model.Producto) error          { return nil }
func (r *stubProductoRepo) Delete(context.Context, uuid.UUID) error                { return nil }
func (r *stubProductoRepo) ListBajoStock(context.Context) ([]model.Producto, error) {
	return r.bajoStock, nil
}

type stubOrdenRepo struct {
	total decimal.Decimal
	count int64
}

func (r *stubOrdenRepo) Create(context.Context, *model.OrdenTrabajo) error { return nil }
func (r *stubOrdenRepo) FindByID(context.Context, uuid.UUID) (*model.OrdenTrabajo, error) {
	return nil, nil
}
func (r *stubOrdenRepo) List(context.Context, string) ([]model.OrdenTrabajo, error) {
	return nil, nil
}
func (r *stubOrdenRepo) Update(context.Context, *model.OrdenTrabajo) error { return nil }
func (r *stubOrdenRepo) Delete(context.Context, uuid.UUID) error           { return nil }
func (r *stubOrdenRepo) TotalesPorFecha(context.Context, time.Time) (decimal.Decimal, int64, error) {
	return r.total, r.count, nil
}

type stubVentaRepo struct {
	creadas []model.VentaMostrador
	total   decimal.Decimal
	count   int64
}

func (r *stubVentaRepo) Create(_ context.Context, v *model.VentaMostrador) error {
	v.ID = uuid.New()
	v.Fecha = time.Now()
	r.creadas = append(r.creadas, *v)
	return nil
}

func (r *stubVentaRepo) List(context.Context, string) ([]model.VentaMostrador, error) {
	return r.creadas, nil
}

func (r *stubVentaRepo) TotalesPorFecha(context.Context, time.Time) (decimal.Decimal, int64, error) {
	return r.total, r.count, nil
}

func TestCajaDiaria_SumaTallerYMeson(t *testing.T) {
	svc := service.NewReporteService(
		&stubProductoRepo{},
		&stubOrdenRepo{total: decimal.NewFromInt(120000), count: 3},
		&stubVentaRepo{total: decimal.NewFromInt(45990), count: 2},
	)

	resp, err := svc.CajaDiaria(context.Background(), "2026-08-30")
	require.NoError(t, err)

	assert.Equal(t, "2026-08-30", resp.Fecha)
	assert.True(t, resp.TotalTaller.Equal(decimal.NewFromInt(120000)))
	assert.Equal(t, int64(3), resp.CantidadOrdenes)
	assert.True(t, resp.TotalMeson.Equal(decimal.NewFromInt(45990)))
	assert.Equal(t, int64(2), resp.CantidadVentasMeson)
	assert.True(t, resp.TotalFinal.Equal(decimal.NewFromInt(165990)))
}

func TestCajaDiaria_FechaInvalida(t *testing.T) {
	svc := service.NewReporteService(&stubProductoRepo{}, &stubOrdenRepo{}, &stubVentaRepo{})

	for _, fecha := range []string{"30-08-2026", "no-es-fecha", "2026-13-40"} {
		_, err := svc.CajaDiaria(context.Background(), fecha)
		assert.ErrorIs(t, err, apierror.ErrFechaInvalida, fecha)
	}
}

func TestCajaDiaria_FechaVaciaEsHoy(t *testing.T) {
	svc := service.NewReporteService(&stubProductoRepo{}, &stubOrdenRepo{}, &stubVentaRepo{})

	resp, err := svc.CajaDiaria(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, time.Now().Format("2006-01-02"), resp.Fecha)
}

func TestBajoStock_CalculaDiferencia(t *testing.T) {
	svc := service.NewReporteService(
		&stubProductoRepo{bajoStock: []model.Producto{{
			ID:          uuid.New(),
			PartNumber:  "LOW-001",
			Stock:       2,
			StockMinimo: 5,
			PrecioVenta: decimal.NewFromInt(19990),
		}}},
		&stubOrdenRepo{},
		&stubVentaRepo{},
	)

	resp, err := svc.BajoStock(context.Background())
	require.NoError(t, err)

	require.Equal(t, 1, resp.TotalAlertas)
	assert.Equal(t, "LOW-001", resp.Productos[0].PartNumber)
	assert.Equal(t, 3, resp.Productos[0].Diferencia)
}

func TestVentaCrear_TotalCalculadoEnServidor(t *testing.T) {
	repo := &stubVentaRepo{}
	svc := service.NewVentaService(repo)

	resp, err := svc.Crear(context.Background(), dto.CrearVentaRequest{
		TipoMovimiento: model.MovimientoVenta,
		Items: []dto.VentaItem{
			{Sku: "BRK-001", Cantidad: 2, PrecioVenta: decimal.NewFromInt(45990)},
			{Sku: "DSC-002", Cantidad: 1, PrecioVenta: decimal.NewFromInt(30000)},
		},
	})
	require.NoError(t, err)

	assert.True(t, resp.TotalVenta.Equal(decimal.NewFromInt(121980)))
	require.Len(t, resp.Items, 2)
}

func TestVentaCrear_PerdidaNoSuma(t *testing.T) {
	repo := &stubVentaRepo{}
	svc := service.NewVentaService(repo)

	resp, err := svc.Crear(context.Background(), dto.CrearVentaRequest{
		TipoMovimiento: model.MovimientoPerdida,
		Items: []dto.VentaItem{
			{Sku: "BRK-001", Cantidad: 4, PrecioVenta: decimal.NewFromInt(45990)},
		},
	})
	require.NoError(t, err)

	assert.True(t, resp.TotalVenta.IsZero())
}
