package billing

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sran4/invoice-manager/internal/application/dto"
	"github.com/sran4/invoice-manager/internal/domain"
	"github.com/sran4/invoice-manager/internal/domain/entity"
	"github.com/sran4/invoice-manager/internal/domain/repository"
)

// WorkDescriptionUseCase casos de uso de descripciones de trabajo reutilizables.
type WorkDescriptionUseCase struct {
	repo repository.WorkDescriptionRepository
}

// NewWorkDescriptionUseCase construye el caso de uso.
func NewWorkDescriptionUseCase(repo repository.WorkDescriptionRepository) *WorkDescriptionUseCase {
	return &WorkDescriptionUseCase{repo: repo}
}

// Create crea una descripción de trabajo. Rate sin especificar queda en 0.
func (uc *WorkDescriptionUseCase) Create(userID string, in dto.WorkDescriptionRequest) (*dto.WorkDescriptionDTO, error) {
	if in.Title == "" {
		return nil, fmt.Errorf("%w: title es requerido", domain.ErrInvalidInput)
	}
	now := time.Now()
	wd := &entity.WorkDescription{
		ID:          uuid.New().String(),
		UserID:      userID,
		Title:       in.Title,
		Description: in.Description,
		Rate:        in.Rate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(wd); err != nil {
		return nil, err
	}
	out := toWorkDescriptionDTO(wd)
	return &out, nil
}

// Get obtiene una descripción de trabajo del usuario.
func (uc *WorkDescriptionUseCase) Get(userID, id string) (*dto.WorkDescriptionDTO, error) {
	wd, err := uc.repo.GetByID(userID, id)
	if err != nil {
		return nil, err
	}
	if wd == nil {
		return nil, domain.ErrNotFound
	}
	out := toWorkDescriptionDTO(wd)
	return &out, nil
}

// List lista las descripciones de trabajo del usuario.
func (uc *WorkDescriptionUseCase) List(userID string, limit, offset int) ([]dto.WorkDescriptionDTO, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.repo.ListByUser(userID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.WorkDescriptionDTO, 0, len(list))
	for _, wd := range list {
		out = append(out, toWorkDescriptionDTO(wd))
	}
	return out, nil
}

// Update reemplaza los campos con la misma forma del create.
func (uc *WorkDescriptionUseCase) Update(userID, id string, in dto.WorkDescriptionRequest) (*dto.WorkDescriptionDTO, error) {
	if in.Title == "" {
		return nil, fmt.Errorf("%w: title es requerido", domain.ErrInvalidInput)
	}
	wd, err := uc.repo.GetByID(userID, id)
	if err != nil {
		return nil, err
	}
	if wd == nil {
		return nil, domain.ErrNotFound
	}
	wd.Title = in.Title
	wd.Description = in.Description
	wd.Rate = in.Rate
	wd.UpdatedAt = time.Now()

	ok, err := uc.repo.Update(wd)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := toWorkDescriptionDTO(wd)
	return &out, nil
}

// Delete elimina la descripción de trabajo.
func (uc *WorkDescriptionUseCase) Delete(userID, id string) error {
	ok, err := uc.repo.Delete(userID, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}
