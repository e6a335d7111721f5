package entity

import "time"

// User usuario operador de la aplicación (login con email + password).
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
