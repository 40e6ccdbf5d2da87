package model

import (
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
)

// Rol is the canonical two-value role enum. Older databases carry the legacy
// spellings "administrador" / "mecanico"; those are collapsed by NormalizarRol
// on the read path and must never reach an authorization check.
type Rol string

const (
	RolAdmin  Rol = "ADMIN"
	RolWorker Rol = "WORKER"
)

// NormalizarRol maps any known spelling (canonical or legacy, any case) to the
// canonical enum. The second return is false for unknown values.
func NormalizarRol(raw string) (Rol, bool) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "ADMIN", "ADMINISTRADOR":
		return RolAdmin, true
	case "WORKER", "MECANICO", "MECÁNICO":
		return RolWorker, true
	}
	return "", false
}

// NormalizarRut strips cosmetic formatting from a Chilean RUT so that
// "11.111.111-1", "11111111-1" and "111111111" all compare equal.
// The verification digit K is uppercased.
func NormalizarRut(rut string) string {
	var b strings.Builder
	b.Grow(len(rut))
	for _, r := range rut {
		switch r {
		case '.', '-', ' ':
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

// Usuario stores system users with role-based access. Rut is the natural login
// key and is persisted in normalized form (see NormalizarRut).
type Usuario struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Rut          string    `gorm:"uniqueIndex;not null"`
	Nombre       string    `gorm:"not null"`
	PasswordHash string    `gorm:"not null"`
	Rol          Rol       `gorm:"type:varchar(20);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
