package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/sran4/invoice-manager/internal/domain/entity"
	"github.com/sran4/invoice-manager/internal/domain/repository"
)

var _ repository.WorkDescriptionRepository = (*WorkDescriptionRepo)(nil)

// WorkDescriptionRepo implementación de WorkDescriptionRepository (usable con pool o tx).
type WorkDescriptionRepo struct {
	q Querier
}

// NewWorkDescriptionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewWorkDescriptionRepository(q Querier) *WorkDescriptionRepo {
	return &WorkDescriptionRepo{q: q}
}

// Create persiste una nueva descripción de trabajo.
func (r *WorkDescriptionRepo) Create(wd *entity.WorkDescription) error {
	query := `
		INSERT INTO work_descriptions (id, user_id, title, description, rate, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		wd.ID, wd.UserID, wd.Title, wd.Description, wd.Rate, wd.CreatedAt, wd.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert work description: %w", err)
	}
	return nil
}

// GetByID obtiene una descripción de trabajo del usuario por ID.
func (r *WorkDescriptionRepo) GetByID(userID, id string) (*entity.WorkDescription, error) {
	query := `
		SELECT id, user_id, title, description, rate, created_at, updated_at
		FROM work_descriptions WHERE id = $1 AND user_id = $2`
	var wd entity.WorkDescription
	err := r.q.QueryRow(context.Background(), query, id, userID).Scan(
		&wd.ID, &wd.UserID, &wd.Title, &wd.Description, &wd.Rate, &wd.CreatedAt, &wd.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get work description: %w", err)
	}
	return &wd, nil
}

// ListByUser lista descripciones de trabajo del usuario con paginación.
func (r *WorkDescriptionRepo) ListByUser(userID string, limit, offset int) ([]*entity.WorkDescription, error) {
	query := `
		SELECT id, user_id, title, description, rate, created_at, updated_at
		FROM work_descriptions WHERE user_id = $1 ORDER BY title LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list work descriptions: %w", err)
	}
	defer rows.Close()
	var list []*entity.WorkDescription
	for rows.Next() {
		var wd entity.WorkDescription
		if err := rows.Scan(&wd.ID, &wd.UserID, &wd.Title, &wd.Description, &wd.Rate, &wd.CreatedAt, &wd.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan work description: %w", err)
		}
		list = append(list, &wd)
	}
	return list, rows.Err()
}

// Update actualiza una descripción de trabajo del usuario; false si no hubo match.
func (r *WorkDescriptionRepo) Update(wd *entity.WorkDescription) (bool, error) {
	query := `
		UPDATE work_descriptions SET title = $3, description = $4, rate = $5, updated_at = $6
		WHERE id = $1 AND user_id = $2`
	tag, err := r.q.Exec(context.Background(), query,
		wd.ID, wd.UserID, wd.Title, wd.Description, wd.Rate, wd.UpdatedAt,
	)
	if err != nil {
		return false, fmt.Errorf("update work description: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Delete elimina una descripción de trabajo del usuario.
func (r *WorkDescriptionRepo) Delete(userID, id string) (bool, error) {
	tag, err := r.q.Exec(context.Background(),
		`DELETE FROM work_descriptions WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return false, fmt.Errorf("delete work description: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
