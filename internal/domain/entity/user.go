package entity

import "time"

// User es la raíz del tenant: todo Customer, WorkDescription e Invoice
// pertenece a exactamente un usuario.
type User struct {
	ID           string
	Email        string // clave de identidad, única global
	PasswordHash string
	Name         string
	Settings     map[string]any // blob opaco: datos de la empresa, preferencias
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
