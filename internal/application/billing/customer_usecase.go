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

// CustomerUseCase casos de uso de clientes, siempre en el scope del usuario.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create crea un cliente. El email debe ser único entre los clientes del
// usuario (el mismo email bajo otro usuario es válido); el índice único
// (user_id, email) detecta el duplicado y el repo retorna ErrDuplicate.
func (uc *CustomerUseCase) Create(userID string, in dto.CustomerRequest) (*dto.CustomerDTO, error) {
	if in.Name == "" || in.Email == "" || in.Phone == "" {
		return nil, fmt.Errorf("%w: name, email y phone son requeridos", domain.ErrInvalidInput)
	}
	now := time.Now()
	customer := &entity.Customer{
		ID:          uuid.New().String(),
		UserID:      userID,
		Name:        in.Name,
		Email:       in.Email,
		Phone:       in.Phone,
		Fax:         in.Fax,
		CompanyName: in.CompanyName,
		Address: entity.Address{
			Street:  in.Address.Street,
			City:    in.Address.City,
			State:   in.Address.State,
			ZipCode: in.Address.ZipCode,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	out := toCustomerDTO(customer)
	return &out, nil
}

// Get obtiene un cliente del usuario.
func (uc *CustomerUseCase) Get(userID, id string) (*dto.CustomerDTO, error) {
	customer, err := uc.repo.GetByID(userID, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	out := toCustomerDTO(customer)
	return &out, nil
}

// List lista los clientes del usuario.
func (uc *CustomerUseCase) List(userID string, limit, offset int) ([]dto.CustomerDTO, error) {
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
	out := make([]dto.CustomerDTO, 0, len(list))
	for _, c := range list {
		out = append(out, toCustomerDTO(c))
	}
	return out, nil
}

// Update reemplaza los campos del cliente con la misma forma del create.
// Cambiar el email a uno ya usado por otro cliente del usuario retorna
// ErrDuplicate (índice único).
func (uc *CustomerUseCase) Update(userID, id string, in dto.CustomerRequest) (*dto.CustomerDTO, error) {
	if in.Name == "" || in.Email == "" || in.Phone == "" {
		return nil, fmt.Errorf("%w: name, email y phone son requeridos", domain.ErrInvalidInput)
	}
	customer, err := uc.repo.GetByID(userID, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	customer.Name = in.Name
	customer.Email = in.Email
	customer.Phone = in.Phone
	customer.Fax = in.Fax
	customer.CompanyName = in.CompanyName
	customer.Address = entity.Address{
		Street:  in.Address.Street,
		City:    in.Address.City,
		State:   in.Address.State,
		ZipCode: in.Address.ZipCode,
	}
	customer.UpdatedAt = time.Now()

	ok, err := uc.repo.Update(customer)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := toCustomerDTO(customer)
	return &out, nil
}

// Delete elimina el cliente. Las facturas que lo referencian no se tocan:
// la referencia queda colgante y el export de esas facturas responde 404.
func (uc *CustomerUseCase) Delete(userID, id string) error {
	ok, err := uc.repo.Delete(userID, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}
