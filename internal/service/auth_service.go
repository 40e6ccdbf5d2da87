package service

import (
	"context"
	"errors"
	"time"

	"frenotaller/internal/apierror"
	"frenotaller/internal/dto"
	"frenotaller/internal/model"
	"frenotaller/internal/repository"
	"frenotaller/internal/session"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context, token string) error
	Registrar(ctx context.Context, req dto.RegistrarRequest) (*dto.UsuarioResponse, error)
}

type authService struct {
	repo     repository.UsuarioRepository
	sessions *session.Manager
}

func NewAuthService(repo repository.UsuarioRepository, sessions *session.Manager) AuthService {
	return &authService{repo: repo, sessions: sessions}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.repo.FindByRut(ctx, req.Rut)
	if err != nil {
		if errors.Is(err, apierror.ErrNoEncontrado) {
			// Same error as a wrong password: responses must not reveal
			// whether the RUT exists.
			return nil, apierror.ErrCredencialesInvalidas
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apierror.ErrCredencialesInvalidas
	}

	token, rec, err := s.sessions.Issue(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		ID:          user.ID.String(),
		Rut:         user.Rut,
		Nombre:      user.Nombre,
		Rol:         string(user.Rol),
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int(time.Until(rec.ExpiresAt).Seconds()),
	}, nil
}

// Logout always succeeds from the caller's point of view: a failed store
// revoke is logged and swallowed so the client can drop its token either way.
// No asynchronous retry — the session dies on its own at ExpiresAt.
func (s *authService) Logout(ctx context.Context, token string) error {
	if err := s.sessions.Revoke(ctx, token); err != nil {
		log.Warn().Err(err).Msg("revocacion de sesion fallida, expira por TTL")
	}
	return nil
}

func (s *authService) Registrar(ctx context.Context, req dto.RegistrarRequest) (*dto.UsuarioResponse, error) {
	rol := model.RolWorker
	if req.Rol != "" {
		r, ok := model.NormalizarRol(req.Rol)
		if !ok {
			return nil, apierror.ErrRolInvalido
		}
		rol = r
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &model.Usuario{
		Rut:          req.Rut,
		Nombre:       req.Nombre,
		PasswordHash: string(hash),
		Rol:          rol,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return &dto.UsuarioResponse{
		ID:     user.ID.String(),
		Rut:    user.Rut,
		Nombre: user.Nombre,
		Rol:    string(user.Rol),
	}, nil
}
