package repository

import "github.com/sran4/invoice-manager/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer.
// Toda operación de lectura/escritura está parametrizada por el usuario dueño:
// el adaptador conjuga siempre user_id = $n en el filtro, de modo que un
// registro de otro tenant es indistinguible de uno inexistente.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(userID, id string) (*entity.Customer, error)
	ListByUser(userID string, limit, offset int) ([]*entity.Customer, error)
	// SearchIDs devuelve los IDs de clientes del usuario cuyo nombre o email
	// contiene text (case-insensitive). Primera fase de la búsqueda de facturas.
	SearchIDs(userID, text string) ([]string, error)
	// Update actualiza por (customer.UserID, customer.ID); false si no hubo match.
	Update(customer *entity.Customer) (bool, error)
	// Delete elimina por (userID, id); true si se borró una fila.
	Delete(userID, id string) (bool, error)
}
