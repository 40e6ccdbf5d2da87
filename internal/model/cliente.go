package model

import (
	"time"

	"github.com/google/uuid"
)

// Cliente is a shop customer, keyed by normalized RUT like Usuario.
type Cliente struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Rut       string    `gorm:"uniqueIndex;not null"`
	Nombre    string    `gorm:"not null"`
	Telefono  *string
	Email     *string
	Direccion *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
