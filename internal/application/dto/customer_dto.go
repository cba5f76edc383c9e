package dto

import "time"

// AddressDTO dirección estructurada en el wire.
type AddressDTO struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
}

// CustomerRequest body para POST y PUT /api/customers (misma forma).
type CustomerRequest struct {
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone"`
	Fax         string     `json:"fax,omitempty"`
	CompanyName string     `json:"companyName,omitempty"`
	Address     AddressDTO `json:"address"`
}

// CustomerDTO cliente en respuestas.
type CustomerDTO struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone"`
	Fax         string     `json:"fax,omitempty"`
	CompanyName string     `json:"companyName,omitempty"`
	Address     AddressDTO `json:"address"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// CustomerEnvelope respuesta con un cliente.
type CustomerEnvelope struct {
	Success  bool        `json:"success"`
	Customer CustomerDTO `json:"customer"`
}

// CustomerListResponse respuesta de GET /api/customers.
type CustomerListResponse struct {
	Success   bool          `json:"success"`
	Customers []CustomerDTO `json:"customers"`
}
