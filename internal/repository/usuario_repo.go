package repository

import (
	"context"
	"errors"
	"fmt"

	"frenotaller/internal/apierror"
	"frenotaller/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UsuarioRepository is the credential store. Implementations must normalize
// the RUT on both sides of the lookup and collapse legacy role spellings
// before returning a record, so callers only ever see canonical values.
type UsuarioRepository interface {
	Create(ctx context.Context, u *model.Usuario) error
	FindByRut(ctx context.Context, rut string) (*model.Usuario, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Usuario, error)
	List(ctx context.Context) ([]model.Usuario, error)
}

type usuarioRepo struct{ db *gorm.DB }

func NewUsuarioRepository(db *gorm.DB) UsuarioRepository { return &usuarioRepo{db: db} }

func (r *usuarioRepo) Create(ctx context.Context, u *model.Usuario) error {
	u.Rut = model.NormalizarRut(u.Rut)
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apierror.ErrRutDuplicado
		}
		return err
	}
	return nil
}

func (r *usuarioRepo) FindByRut(ctx context.Context, rut string) (*model.Usuario, error) {
	var u model.Usuario
	// Legacy rows may still carry formatted RUTs, so normalize the stored
	// column too instead of trusting it.
	err := r.db.WithContext(ctx).
		Where("REPLACE(REPLACE(UPPER(rut), '.', ''), '-', '') = ?", model.NormalizarRut(rut)).
		First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.ErrNoEncontrado
		}
		return nil, err
	}
	if err := normalizarUsuario(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *usuarioRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.ErrNoEncontrado
		}
		return nil, err
	}
	if err := normalizarUsuario(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *usuarioRepo) List(ctx context.Context) ([]model.Usuario, error) {
	var users []model.Usuario
	if err := r.db.WithContext(ctx).Order("created_at").Find(&users).Error; err != nil {
		return nil, err
	}
	for i := range users {
		if err := normalizarUsuario(&users[i]); err != nil {
			return nil, err
		}
	}
	return users, nil
}

// normalizarUsuario collapses legacy role spellings at the read boundary.
// An unknown role is a data corruption, not an auth decision: fail loudly.
func normalizarUsuario(u *model.Usuario) error {
	rol, ok := model.NormalizarRol(string(u.Rol))
	if !ok {
		return fmt.Errorf("usuario %s tiene rol desconocido %q", u.ID, u.Rol)
	}
	u.Rol = rol
	return nil
}
