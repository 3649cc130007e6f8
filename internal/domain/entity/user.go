package entity

import "time"

// User usuario de la aplicación. PasswordHash es bcrypt, nunca se expone.
type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	Role         string // "admin" | "operador"
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
