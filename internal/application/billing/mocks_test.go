package billing_test

import (
	"context"
	"sort"
	"strings"

	"github.com/sran4/invoice-manager/internal/domain"
	"github.com/sran4/invoice-manager/internal/domain/entity"
	"github.com/sran4/invoice-manager/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los repositorios. Replican el contrato de los adaptadores
// de postgres: scoping por (userID, id) en cada operación e índices únicos
// (user_id, email) y (user_id, invoice_number).
// ──────────────────────────────────────────────────────────────────────────────

type fakeCustomerRepo struct {
	customers map[string]*entity.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[string]*entity.Customer)}
}

func (f *fakeCustomerRepo) Create(c *entity.Customer) error {
	for _, existing := range f.customers {
		if existing.UserID == c.UserID && existing.Email == c.Email {
			return domain.ErrDuplicate
		}
	}
	cp := *c
	f.customers[c.ID] = &cp
	return nil
}

func (f *fakeCustomerRepo) GetByID(userID, id string) (*entity.Customer, error) {
	c, ok := f.customers[id]
	if !ok || c.UserID != userID {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCustomerRepo) ListByUser(userID string, limit, offset int) ([]*entity.Customer, error) {
	var list []*entity.Customer
	for _, c := range f.customers {
		if c.UserID == userID {
			cp := *c
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	if offset >= len(list) {
		return nil, nil
	}
	list = list[offset:]
	if limit < len(list) {
		list = list[:limit]
	}
	return list, nil
}

func (f *fakeCustomerRepo) SearchIDs(userID, text string) ([]string, error) {
	needle := strings.ToLower(text)
	var ids []string
	for _, c := range f.customers {
		if c.UserID != userID {
			continue
		}
		if strings.Contains(strings.ToLower(c.Name), needle) ||
			strings.Contains(strings.ToLower(c.Email), needle) {
			ids = append(ids, c.ID)
		}
	}
	return ids, nil
}

func (f *fakeCustomerRepo) Update(c *entity.Customer) (bool, error) {
	existing, ok := f.customers[c.ID]
	if !ok || existing.UserID != c.UserID {
		return false, nil
	}
	for _, other := range f.customers {
		if other.ID != c.ID && other.UserID == c.UserID && other.Email == c.Email {
			return false, domain.ErrDuplicate
		}
	}
	cp := *c
	f.customers[c.ID] = &cp
	return true, nil
}

func (f *fakeCustomerRepo) Delete(userID, id string) (bool, error) {
	c, ok := f.customers[id]
	if !ok || c.UserID != userID {
		return false, nil
	}
	delete(f.customers, id)
	return true, nil
}

// ──────────────────────────────────────────────────────────────────────────────

type fakeInvoiceRepo struct {
	invoices []*entity.Invoice
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{}
}

func (f *fakeInvoiceRepo) Create(inv *entity.Invoice) error {
	for _, existing := range f.invoices {
		if existing.UserID == inv.UserID && existing.InvoiceNumber == inv.InvoiceNumber {
			return domain.ErrDuplicate
		}
	}
	cp := *inv
	cp.Items = append([]entity.InvoiceItem(nil), inv.Items...)
	f.invoices = append(f.invoices, &cp)
	return nil
}

func (f *fakeInvoiceRepo) GetByID(userID, id string) (*entity.Invoice, error) {
	for _, inv := range f.invoices {
		if inv.ID == id && inv.UserID == userID {
			cp := *inv
			cp.Items = append([]entity.InvoiceItem(nil), inv.Items...)
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeInvoiceRepo) List(userID string, flt repository.InvoiceFilter) ([]*entity.Invoice, int, error) {
	var matched []*entity.Invoice
	for _, inv := range f.invoices {
		if inv.UserID != userID {
			continue
		}
		if flt.Status != "" && inv.Status != flt.Status {
			continue
		}
		if flt.Search != "" {
			byNumber := strings.Contains(strings.ToLower(inv.InvoiceNumber), strings.ToLower(flt.Search))
			byCustomer := false
			for _, cid := range flt.CustomerIDs {
				if cid == inv.CustomerID {
					byCustomer = true
					break
				}
			}
			if !byNumber && !byCustomer {
				continue
			}
		}
		matched = append(matched, inv)
	}
	// created_at descendente
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	total := len(matched)
	if flt.Offset >= len(matched) {
		return nil, total, nil
	}
	matched = matched[flt.Offset:]
	if flt.Limit < len(matched) {
		matched = matched[:flt.Limit]
	}
	out := make([]*entity.Invoice, 0, len(matched))
	for _, inv := range matched {
		cp := *inv
		cp.Items = append([]entity.InvoiceItem(nil), inv.Items...)
		out = append(out, &cp)
	}
	return out, total, nil
}

func (f *fakeInvoiceRepo) LastNumberWithPrefix(userID, prefix string) (string, error) {
	last := ""
	for _, inv := range f.invoices {
		if inv.UserID != userID || !strings.HasPrefix(inv.InvoiceNumber, prefix) {
			continue
		}
		if inv.InvoiceNumber > last {
			last = inv.InvoiceNumber
		}
	}
	return last, nil
}

func (f *fakeInvoiceRepo) UpdateFields(userID, id string, status, notes *string) (*entity.Invoice, error) {
	for _, inv := range f.invoices {
		if inv.ID != id || inv.UserID != userID {
			continue
		}
		if status != nil {
			inv.Status = *status
		}
		if notes != nil {
			inv.Notes = *notes
		}
		cp := *inv
		cp.Items = append([]entity.InvoiceItem(nil), inv.Items...)
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeInvoiceRepo) Delete(userID, id string) (bool, error) {
	for i, inv := range f.invoices {
		if inv.ID == id && inv.UserID == userID {
			f.invoices = append(f.invoices[:i], f.invoices[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// ──────────────────────────────────────────────────────────────────────────────

type fakeWorkDescriptionRepo struct {
	items map[string]*entity.WorkDescription
}

func newFakeWorkDescriptionRepo() *fakeWorkDescriptionRepo {
	return &fakeWorkDescriptionRepo{items: make(map[string]*entity.WorkDescription)}
}

func (f *fakeWorkDescriptionRepo) Create(wd *entity.WorkDescription) error {
	cp := *wd
	f.items[wd.ID] = &cp
	return nil
}

func (f *fakeWorkDescriptionRepo) GetByID(userID, id string) (*entity.WorkDescription, error) {
	wd, ok := f.items[id]
	if !ok || wd.UserID != userID {
		return nil, nil
	}
	cp := *wd
	return &cp, nil
}

func (f *fakeWorkDescriptionRepo) ListByUser(userID string, limit, offset int) ([]*entity.WorkDescription, error) {
	var list []*entity.WorkDescription
	for _, wd := range f.items {
		if wd.UserID == userID {
			cp := *wd
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Title < list[j].Title })
	if offset >= len(list) {
		return nil, nil
	}
	list = list[offset:]
	if limit < len(list) {
		list = list[:limit]
	}
	return list, nil
}

func (f *fakeWorkDescriptionRepo) Update(wd *entity.WorkDescription) (bool, error) {
	existing, ok := f.items[wd.ID]
	if !ok || existing.UserID != wd.UserID {
		return false, nil
	}
	cp := *wd
	f.items[wd.ID] = &cp
	return true, nil
}

func (f *fakeWorkDescriptionRepo) Delete(userID, id string) (bool, error) {
	wd, ok := f.items[id]
	if !ok || wd.UserID != userID {
		return false, nil
	}
	delete(f.items, id)
	return true, nil
}

// ──────────────────────────────────────────────────────────────────────────────

// fakeTxRunner ejecuta fn directamente contra el repo en memoria, sin tx real.
type fakeTxRunner struct {
	repo repository.InvoiceRepository
}

func (f *fakeTxRunner) RunInvoices(_ context.Context, fn func(repository.InvoiceRepository) error) error {
	return fn(f.repo)
}
