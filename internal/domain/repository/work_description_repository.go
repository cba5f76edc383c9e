package repository

import "github.com/sran4/invoice-manager/internal/domain/entity"

// WorkDescriptionRepository define el puerto de persistencia para WorkDescription.
type WorkDescriptionRepository interface {
	Create(wd *entity.WorkDescription) error
	GetByID(userID, id string) (*entity.WorkDescription, error)
	ListByUser(userID string, limit, offset int) ([]*entity.WorkDescription, error)
	Update(wd *entity.WorkDescription) (bool, error)
	Delete(userID, id string) (bool, error)
}
