package billing_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sran4/invoice-manager/internal/application/billing"
	"github.com/sran4/invoice-manager/internal/application/dto"
	"github.com/sran4/invoice-manager/internal/domain/entity"
)

// buildListFixture crea un usecase con un cliente y n facturas del usuario,
// numeradas INV-0001..INV-n y con created_at creciente.
func buildListFixture(t *testing.T, userID string, n int) (*billing.InvoiceUseCase, *fakeInvoiceRepo, *fakeCustomerRepo, string) {
	t.Helper()
	invoiceRepo := newFakeInvoiceRepo()
	customerRepo := newFakeCustomerRepo()

	customerID := uuid.New().String()
	require.NoError(t, customerRepo.Create(&entity.Customer{
		ID:     customerID,
		UserID: userID,
		Name:   "Acme Corp",
		Email:  "facturas@acme.test",
		Phone:  "555-0100",
	}))

	base := time.Now().Add(-time.Duration(n) * time.Minute)
	for i := 1; i <= n; i++ {
		require.NoError(t, invoiceRepo.Create(&entity.Invoice{
			ID:            uuid.New().String(),
			UserID:        userID,
			CustomerID:    customerID,
			InvoiceNumber: fmt.Sprintf("INV-%04d", i),
			IssueDate:     time.Now(),
			Total:         decimal.NewFromInt(int64(i * 100)),
			Status:        entity.StatusDraft,
			CreatedAt:     base.Add(time.Duration(i) * time.Minute),
			UpdatedAt:     base.Add(time.Duration(i) * time.Minute),
		}))
	}

	uc := billing.NewInvoiceUseCase(&fakeTxRunner{repo: invoiceRepo}, invoiceRepo, customerRepo)
	return uc, invoiceRepo, customerRepo, customerID
}

// Caso 1: sin parámetros → página 1 con límite 10 y metadatos correctos.
func TestListInvoices_DefaultsDePaginacion(t *testing.T) {
	uc, _, _, _ := buildListFixture(t, "user-1", 25)

	invoices, pagination, err := uc.List("user-1", dto.ListInvoicesQuery{})
	require.NoError(t, err)

	assert.Len(t, invoices, 10)
	assert.Equal(t, 1, pagination.CurrentPage)
	assert.Equal(t, 3, pagination.TotalPages)
	assert.Equal(t, 25, pagination.TotalCount)
	assert.Equal(t, 10, pagination.Limit)
	assert.True(t, pagination.HasNextPage)
	assert.False(t, pagination.HasPrevPage)

	// Orden: created_at descendente → la más reciente primero.
	assert.Equal(t, "INV-0025", invoices[0].InvoiceNumber)
}

// Caso 2: última página parcial.
func TestListInvoices_UltimaPagina(t *testing.T) {
	uc, _, _, _ := buildListFixture(t, "user-1", 25)

	invoices, pagination, err := uc.List("user-1", dto.ListInvoicesQuery{Page: 3})
	require.NoError(t, err)

	assert.Len(t, invoices, 5)
	assert.False(t, pagination.HasNextPage)
	assert.True(t, pagination.HasPrevPage)
}

// Caso 3: page fuera de rango (0 o negativo) cae al default, no falla.
func TestListInvoices_PageInvalidaCaeADefault(t *testing.T) {
	uc, _, _, _ := buildListFixture(t, "user-1", 5)

	_, pagination, err := uc.List("user-1", dto.ListInvoicesQuery{Page: -3})
	require.NoError(t, err)
	assert.Equal(t, 1, pagination.CurrentPage)
}

// Caso 4: búsqueda en dos fases — el texto matchea el nombre del cliente,
// no el número, y aún así trae las facturas de ese cliente.
func TestListInvoices_BusquedaPorNombreDeCliente(t *testing.T) {
	uc, invoiceRepo, customerRepo, _ := buildListFixture(t, "user-1", 3)

	// Otro cliente con una factura que NO debe aparecer.
	otherID := uuid.New().String()
	require.NoError(t, customerRepo.Create(&entity.Customer{
		ID: otherID, UserID: "user-1", Name: "Globex", Email: "pagos@globex.test", Phone: "555-0200",
	}))
	require.NoError(t, invoiceRepo.Create(&entity.Invoice{
		ID: uuid.New().String(), UserID: "user-1", CustomerID: otherID,
		InvoiceNumber: "INV-9999", IssueDate: time.Now(), Status: entity.StatusDraft,
		CreatedAt: time.Now(), UpdatedAt: time.Now(),
	}))

	invoices, pagination, err := uc.List("user-1", dto.ListInvoicesQuery{Search: "acme"})
	require.NoError(t, err)

	assert.Equal(t, 3, pagination.TotalCount)
	for _, inv := range invoices {
		assert.NotEqual(t, "INV-9999", inv.InvoiceNumber)
	}
}

// Caso 5: búsqueda por número de factura (substring, case-insensitive).
func TestListInvoices_BusquedaPorNumero(t *testing.T) {
	uc, _, _, _ := buildListFixture(t, "user-1", 12)

	_, pagination, err := uc.List("user-1", dto.ListInvoicesQuery{Search: "inv-0012"})
	require.NoError(t, err)
	assert.Equal(t, 1, pagination.TotalCount)
}

// Caso 6: filtro por estado; "all" equivale a no filtrar.
func TestListInvoices_FiltroPorEstado(t *testing.T) {
	uc, invoiceRepo, _, customerID := buildListFixture(t, "user-1", 4)

	require.NoError(t, invoiceRepo.Create(&entity.Invoice{
		ID: uuid.New().String(), UserID: "user-1", CustomerID: customerID,
		InvoiceNumber: "INV-PAID", IssueDate: time.Now(), Status: entity.StatusPaid,
		CreatedAt: time.Now(), UpdatedAt: time.Now(),
	}))

	_, paidPag, err := uc.List("user-1", dto.ListInvoicesQuery{Status: entity.StatusPaid})
	require.NoError(t, err)
	assert.Equal(t, 1, paidPag.TotalCount)

	_, allPag, err := uc.List("user-1", dto.ListInvoicesQuery{Status: "all"})
	require.NoError(t, err)
	assert.Equal(t, 5, allPag.TotalCount)
}

// Caso 7: el totalCount es de la vista filtrada y nunca incluye otros tenants.
func TestListInvoices_AisladoPorUsuario(t *testing.T) {
	uc, invoiceRepo, _, _ := buildListFixture(t, "user-1", 2)

	require.NoError(t, invoiceRepo.Create(&entity.Invoice{
		ID: uuid.New().String(), UserID: "user-2", CustomerID: uuid.New().String(),
		InvoiceNumber: "INV-0001", IssueDate: time.Now(), Status: entity.StatusDraft,
		CreatedAt: time.Now(), UpdatedAt: time.Now(),
	}))

	_, pagination, err := uc.List("user-1", dto.ListInvoicesQuery{})
	require.NoError(t, err)
	assert.Equal(t, 2, pagination.TotalCount)
}
