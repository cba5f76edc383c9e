package billing

import (
	"strings"

	"github.com/sran4/invoice-manager/internal/application/dto"
	"github.com/sran4/invoice-manager/internal/domain/repository"
)

// Valores por defecto del listado paginado.
const (
	defaultPage  = 1
	defaultLimit = 10
)

// List responde la vista paginada, filtrada y buscada de las facturas del
// usuario, ordenada por fecha de creación descendente.
//
// Búsqueda en dos fases: primero se resuelven los IDs de clientes del tenant
// cuyo nombre o email contiene el texto; después una sola consulta de
// facturas con el predicado OR (número propio O cliente matcheado). Las dos
// lecturas son secuenciales; son independientes y fallan hacia afuera sin
// reintentos.
func (uc *InvoiceUseCase) List(userID string, q dto.ListInvoicesQuery) ([]dto.InvoiceDTO, dto.PaginationDTO, error) {
	page := q.Page
	if page < 1 {
		page = defaultPage
	}
	limit := q.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	status := q.Status
	if status == "all" {
		status = ""
	}

	search := strings.TrimSpace(q.Search)
	var customerIDs []string
	if search != "" {
		ids, err := uc.customerRepo.SearchIDs(userID, search)
		if err != nil {
			return nil, dto.PaginationDTO{}, err
		}
		customerIDs = ids
	}

	list, total, err := uc.invoiceRepo.List(userID, repository.InvoiceFilter{
		Status:      status,
		Search:      search,
		CustomerIDs: customerIDs,
		Limit:       limit,
		Offset:      (page - 1) * limit,
	})
	if err != nil {
		return nil, dto.PaginationDTO{}, err
	}

	totalPages := (total + limit - 1) / limit
	pagination := dto.PaginationDTO{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalCount:  total,
		Limit:       limit,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}

	out := make([]dto.InvoiceDTO, 0, len(list))
	for _, inv := range list {
		out = append(out, toInvoiceDTO(inv))
	}
	return out, pagination, nil
}
