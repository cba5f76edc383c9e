package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/sran4/invoice-manager/internal/domain"
	"github.com/sran4/invoice-manager/internal/domain/entity"
	"github.com/sran4/invoice-manager/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
// Toda consulta incluye user_id en el WHERE: el aislamiento entre tenants
// vive aquí y no puede olvidarse en los call sites.
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

const customerColumns = `id, user_id, name, email, phone, fax, company_name,
	address_street, address_city, address_state, address_zip, created_at, updated_at`

// Create persiste un nuevo cliente. El índice único (user_id, email) detecta
// duplicados incluso entre creaciones concurrentes.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	query := `
		INSERT INTO customers (` + customerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		customer.ID, customer.UserID, customer.Name, customer.Email, customer.Phone,
		customer.Fax, customer.CompanyName,
		customer.Address.Street, customer.Address.City, customer.Address.State, customer.Address.ZipCode,
		customer.CreatedAt, customer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente del usuario por ID.
func (r *CustomerRepo) GetByID(userID, id string) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1 AND user_id = $2`
	c, err := scanCustomer(r.q.QueryRow(context.Background(), query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return c, nil
}

// ListByUser lista clientes del usuario con paginación.
func (r *CustomerRepo) ListByUser(userID string, limit, offset int) ([]*entity.Customer, error) {
	query := `SELECT ` + customerColumns + `
		FROM customers WHERE user_id = $1 ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// SearchIDs devuelve los IDs de clientes del usuario cuyo nombre o email
// contiene text (case-insensitive). Primera fase de la búsqueda de facturas.
func (r *CustomerRepo) SearchIDs(userID, text string) ([]string, error) {
	query := `
		SELECT id FROM customers
		WHERE user_id = $1 AND (name ILIKE '%' || $2 || '%' OR email ILIKE '%' || $2 || '%')`
	rows, err := r.q.Query(context.Background(), query, userID, text)
	if err != nil {
		return nil, fmt.Errorf("search customers: %w", err)
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan customer id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Update actualiza un cliente del usuario; false si no hubo match.
func (r *CustomerRepo) Update(customer *entity.Customer) (bool, error) {
	query := `
		UPDATE customers
		SET name = $3, email = $4, phone = $5, fax = $6, company_name = $7,
		    address_street = $8, address_city = $9, address_state = $10, address_zip = $11,
		    updated_at = $12
		WHERE id = $1 AND user_id = $2`
	tag, err := r.q.Exec(context.Background(), query,
		customer.ID, customer.UserID,
		customer.Name, customer.Email, customer.Phone, customer.Fax, customer.CompanyName,
		customer.Address.Street, customer.Address.City, customer.Address.State, customer.Address.ZipCode,
		customer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return false, domain.ErrDuplicate
		}
		return false, fmt.Errorf("update customer: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Delete elimina un cliente del usuario; true si se borró una fila.
// Las facturas que lo referencian no se tocan (sin cascada).
func (r *CustomerRepo) Delete(userID, id string) (bool, error) {
	tag, err := r.q.Exec(context.Background(),
		`DELETE FROM customers WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return false, fmt.Errorf("delete customer: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func scanCustomer(row pgx.Row) (*entity.Customer, error) {
	var c entity.Customer
	err := row.Scan(
		&c.ID, &c.UserID, &c.Name, &c.Email, &c.Phone, &c.Fax, &c.CompanyName,
		&c.Address.Street, &c.Address.City, &c.Address.State, &c.Address.ZipCode,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
