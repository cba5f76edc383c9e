package entity

import "time"

// Address dirección estructurada del cliente.
type Address struct {
	Street  string
	City    string
	State   string
	ZipCode string
}

// Customer representa un cliente facturable de un usuario.
// El email es único dentro del scope del usuario dueño, no global.
type Customer struct {
	ID          string
	UserID      string
	Name        string
	Email       string
	Phone       string
	Fax         string
	CompanyName string
	Address     Address
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
