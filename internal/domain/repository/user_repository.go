package repository

import "github.com/sran4/invoice-manager/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (raíz del tenant).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
}
