package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/sran4/invoice-manager/internal/domain"
	"github.com/sran4/invoice-manager/internal/domain/entity"
	"github.com/sran4/invoice-manager/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

const invoiceColumns = `id, user_id, customer_id, invoice_number, issue_date, due_date,
	subtotal, tax, discount, total, status, notes, template, created_at, updated_at`

// Create persiste cabecera y líneas. Para atomicidad real debe ejecutarse
// sobre una tx (ver TxRunner.RunInvoices). El índice único
// (user_id, invoice_number) convierte el duplicado en domain.ErrDuplicate,
// también cuando dos creaciones concurrentes traen el mismo número.
func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	query := `
		INSERT INTO invoices (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		invoice.ID, invoice.UserID, invoice.CustomerID, invoice.InvoiceNumber,
		invoice.IssueDate, invoice.DueDate,
		invoice.Subtotal, invoice.Tax, invoice.Discount, invoice.Total,
		invoice.Status, invoice.Notes, invoice.Template,
		invoice.CreatedAt, invoice.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	for _, item := range invoice.Items {
		itemQuery := `
			INSERT INTO invoice_items (id, invoice_id, position, description, quantity, rate, amount)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`
		_, err := r.q.Exec(context.Background(), itemQuery,
			item.ID, item.InvoiceID, item.Position, item.Description,
			item.Quantity, item.Rate, item.Amount,
		)
		if err != nil {
			return fmt.Errorf("insert invoice item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una factura completa (con líneas) del usuario.
func (r *InvoiceRepo) GetByID(userID, id string) (*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1 AND user_id = $2`
	inv, err := scanInvoice(r.q.QueryRow(context.Background(), query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	if err := r.loadItems([]*entity.Invoice{inv}); err != nil {
		return nil, err
	}
	return inv, nil
}

// List devuelve la página filtrada de facturas del usuario (con líneas),
// ordenada por created_at DESC, y el total de la vista filtrada.
func (r *InvoiceRepo) List(userID string, f repository.InvoiceFilter) ([]*entity.Invoice, int, error) {
	where := []string{"user_id = $1"}
	args := []any{userID}

	if f.Status != "" {
		args = append(args, f.Status)
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		numArg := len(args)
		if len(f.CustomerIDs) > 0 {
			args = append(args, f.CustomerIDs)
			where = append(where, fmt.Sprintf("(invoice_number ILIKE $%d OR customer_id = ANY($%d))", numArg, len(args)))
		} else {
			where = append(where, fmt.Sprintf("invoice_number ILIKE $%d", numArg))
		}
	}
	cond := strings.Join(where, " AND ")

	var total int
	countQuery := `SELECT COUNT(*) FROM invoices WHERE ` + cond
	if err := r.q.QueryRow(context.Background(), countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count invoices: %w", err)
	}

	args = append(args, f.Limit, f.Offset)
	pageQuery := fmt.Sprintf(`SELECT `+invoiceColumns+`
		FROM invoices WHERE `+cond+`
		ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, len(args)-1, len(args))
	rows, err := r.q.Query(context.Background(), pageQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	var list []*entity.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	if err := r.loadItems(list); err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// LastNumberWithPrefix devuelve el invoice_number más alto (lexicográfico)
// del usuario que empiece por prefix, o "" si no hay.
func (r *InvoiceRepo) LastNumberWithPrefix(userID, prefix string) (string, error) {
	query := `
		SELECT invoice_number FROM invoices
		WHERE user_id = $1 AND invoice_number LIKE $2 || '%'
		ORDER BY invoice_number DESC LIMIT 1`
	var number string
	err := r.q.QueryRow(context.Background(), query, userID, prefix).Scan(&number)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("last invoice number: %w", err)
	}
	return number, nil
}

// UpdateFields fusiona solo los campos provistos (nil deja el valor actual,
// vía COALESCE) y devuelve la factura actualizada, o nil si no hubo match.
func (r *InvoiceRepo) UpdateFields(userID, id string, status, notes *string) (*entity.Invoice, error) {
	query := `
		UPDATE invoices
		SET status     = COALESCE($3, status),
		    notes      = COALESCE($4, notes),
		    updated_at = now()
		WHERE id = $1 AND user_id = $2
		RETURNING ` + invoiceColumns
	inv, err := scanInvoice(r.q.QueryRow(context.Background(), query, id, userID, status, notes))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update invoice: %w", err)
	}
	if err := r.loadItems([]*entity.Invoice{inv}); err != nil {
		return nil, err
	}
	return inv, nil
}

// Delete elimina una factura del usuario; las líneas caen por ON DELETE CASCADE.
func (r *InvoiceRepo) Delete(userID, id string) (bool, error) {
	tag, err := r.q.Exec(context.Background(),
		`DELETE FROM invoices WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return false, fmt.Errorf("delete invoice: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// loadItems carga las líneas de todas las facturas dadas en una sola consulta.
func (r *InvoiceRepo) loadItems(invoices []*entity.Invoice) error {
	if len(invoices) == 0 {
		return nil
	}
	byID := make(map[string]*entity.Invoice, len(invoices))
	ids := make([]string, 0, len(invoices))
	for _, inv := range invoices {
		byID[inv.ID] = inv
		ids = append(ids, inv.ID)
	}
	query := `
		SELECT id, invoice_id, position, description, quantity, rate, amount
		FROM invoice_items WHERE invoice_id = ANY($1) ORDER BY invoice_id, position`
	rows, err := r.q.Query(context.Background(), query, ids)
	if err != nil {
		return fmt.Errorf("list invoice items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var it entity.InvoiceItem
		if err := rows.Scan(&it.ID, &it.InvoiceID, &it.Position, &it.Description, &it.Quantity, &it.Rate, &it.Amount); err != nil {
			return fmt.Errorf("scan invoice item: %w", err)
		}
		if inv, ok := byID[it.InvoiceID]; ok {
			inv.Items = append(inv.Items, it)
		}
	}
	return rows.Err()
}

func scanInvoice(row pgx.Row) (*entity.Invoice, error) {
	var inv entity.Invoice
	err := row.Scan(
		&inv.ID, &inv.UserID, &inv.CustomerID, &inv.InvoiceNumber,
		&inv.IssueDate, &inv.DueDate,
		&inv.Subtotal, &inv.Tax, &inv.Discount, &inv.Total,
		&inv.Status, &inv.Notes, &inv.Template,
		&inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}
