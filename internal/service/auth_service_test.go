package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"frenotaller/internal/apierror"
	"frenotaller/internal/dto"
	"frenotaller/internal/model"
	"frenotaller/internal/service"
	"frenotaller/internal/session"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// ── In-memory Repository Stub ─────────────────────────────────────────────────

type stubUsuarioRepo struct {
	users map[string]*model.Usuario // keyed by normalized RUT
}

func newStubRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{users: make(map[string]*model.Usuario)}
}

func (r *stubUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	u.Rut = model.NormalizarRut(u.Rut)
	if _, ok := r.users[u.Rut]; ok {
		return apierror.ErrRutDuplicado
	}
	u.ID = uuid.New()
	r.users[u.Rut] = u
	return nil
}

func (r *stubUsuarioRepo) FindByRut(_ context.Context, rut string) (*model.Usuario, error) {
	u, ok := r.users[model.NormalizarRut(rut)]
	if !ok {
		return nil, apierror.ErrNoEncontrado
	}
	return u, nil
}

func (r *stubUsuarioRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Usuario, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, apierror.ErrNoEncontrado
}

func (r *stubUsuarioRepo) List(_ context.Context) ([]model.Usuario, error) {
	users := make([]model.Usuario, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, *u)
	}
	return users, nil
}

// failingStore always errors on Delete, to exercise best-effort logout.
type failingStore struct{ session.Store }

func (failingStore) Delete(context.Context, string) error {
	return errors.New("redis caido")
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func newAuthService(repo *stubUsuarioRepo) (service.AuthService, *session.Manager) {
	mgr := session.NewManager(session.NewMemoryStore(), 24*time.Hour)
	return service.NewAuthService(repo, mgr), mgr
}

func seedUser(t *testing.T, repo *stubUsuarioRepo, rut, password string, rol model.Rol) *model.Usuario {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u := &model.Usuario{
		ID:           uuid.New(),
		Rut:          model.NormalizarRut(rut),
		Nombre:       "Usuario de Prueba",
		PasswordHash: string(hash),
		Rol:          rol,
	}
	repo.users[u.Rut] = u
	return u
}

// ── Tests: Login ──────────────────────────────────────────────────────────────

func TestLogin_Exitoso(t *testing.T) {
	repo := newStubRepo()
	u := seedUser(t, repo, "11.111.111-1", "admin123", model.RolAdmin)
	svc, mgr := newAuthService(repo)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{Rut: "11.111.111-1", Password: "admin123"})
	require.NoError(t, err)

	assert.Equal(t, u.ID.String(), resp.ID)
	assert.Equal(t, "ADMIN", resp.Rol)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.NotEmpty(t, resp.AccessToken)
	assert.InDelta(t, 24*3600, resp.ExpiresIn, 5)

	// The returned token resolves back to the same user.
	userID, err := mgr.Validate(context.Background(), resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, u.ID, userID)
}

func TestLogin_RutConFormatoDistinto(t *testing.T) {
	repo := newStubRepo()
	seedUser(t, repo, "11.111.111-1", "admin123", model.RolAdmin)
	svc, _ := newAuthService(repo)

	// Same RUT, no punctuation: must still match.
	resp, err := svc.Login(context.Background(), dto.LoginRequest{Rut: "111111111", Password: "admin123"})
	require.NoError(t, err)
	assert.Equal(t, "ADMIN", resp.Rol)
}

func TestLogin_MensajeIdenticoParaRutYPassword(t *testing.T) {
	repo := newStubRepo()
	seedUser(t, repo, "22.222.222-2", "worker123", model.RolWorker)
	svc, _ := newAuthService(repo)

	// Unknown RUT and wrong password must be indistinguishable.
	_, errRut := svc.Login(context.Background(), dto.LoginRequest{Rut: "99.999.999-9", Password: "worker123"})
	_, errPass := svc.Login(context.Background(), dto.LoginRequest{Rut: "22.222.222-2", Password: "wrongpass"})

	assert.ErrorIs(t, errRut, apierror.ErrCredencialesInvalidas)
	assert.ErrorIs(t, errPass, apierror.ErrCredencialesInvalidas)
	assert.Equal(t, errRut.Error(), errPass.Error())
}

func TestLogin_PasswordIncorrecto_NoEmiteSesion(t *testing.T) {
	repo := newStubRepo()
	seedUser(t, repo, "22.222.222-2", "worker123", model.RolWorker)

	store := session.NewMemoryStore()
	mgr := session.NewManager(store, 24*time.Hour)
	svc := service.NewAuthService(repo, mgr)

	_, err := svc.Login(context.Background(), dto.LoginRequest{Rut: "22.222.222-2", Password: "wrongpass"})
	assert.ErrorIs(t, err, apierror.ErrCredencialesInvalidas)
}

func TestLogin_SesionesConcurrentesPermitidas(t *testing.T) {
	repo := newStubRepo()
	seedUser(t, repo, "11.111.111-1", "admin123", model.RolAdmin)
	svc, mgr := newAuthService(repo)

	r1, err := svc.Login(context.Background(), dto.LoginRequest{Rut: "11.111.111-1", Password: "admin123"})
	require.NoError(t, err)
	r2, err := svc.Login(context.Background(), dto.LoginRequest{Rut: "11.111.111-1", Password: "admin123"})
	require.NoError(t, err)

	// Both sessions stay valid; a second login does not invalidate the first.
	assert.NotEqual(t, r1.AccessToken, r2.AccessToken)
	_, err = mgr.Validate(context.Background(), r1.AccessToken)
	assert.NoError(t, err)
	_, err = mgr.Validate(context.Background(), r2.AccessToken)
	assert.NoError(t, err)
}

// ── Tests: Logout ─────────────────────────────────────────────────────────────

func TestLogout_RevocaLaSesion(t *testing.T) {
	repo := newStubRepo()
	seedUser(t, repo, "11.111.111-1", "admin123", model.RolAdmin)
	svc, mgr := newAuthService(repo)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{Rut: "11.111.111-1", Password: "admin123"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), resp.AccessToken))
	_, err = mgr.Validate(context.Background(), resp.AccessToken)
	assert.ErrorIs(t, err, session.ErrInvalida)
}

func TestLogout_SiempreExitosoAunqueElStoreFalle(t *testing.T) {
	repo := newStubRepo()
	mgr := session.NewManager(failingStore{session.NewMemoryStore()}, 24*time.Hour)
	svc := service.NewAuthService(repo, mgr)

	assert.NoError(t, svc.Logout(context.Background(), "cualquier-token"))
}

// ── Tests: Registrar ──────────────────────────────────────────────────────────

func TestRegistrar_Exitoso(t *testing.T) {
	repo := newStubRepo()
	svc, _ := newAuthService(repo)

	resp, err := svc.Registrar(context.Background(), dto.RegistrarRequest{
		Rut: "33.333.333-3", Nombre: "Nuevo Mecánico", Password: "secreto1", Rol: "WORKER",
	})
	require.NoError(t, err)
	assert.Equal(t, "WORKER", resp.Rol)
	assert.NotEmpty(t, resp.ID)

	// Stored hash must verify against the plaintext and never equal it.
	stored := repo.users["333333333"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreto1", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreto1")))
}

func TestRegistrar_RolLegadoSeNormaliza(t *testing.T) {
	repo := newStubRepo()
	svc, _ := newAuthService(repo)

	resp, err := svc.Registrar(context.Background(), dto.RegistrarRequest{
		Rut: "44.444.444-4", Nombre: "Admin Legado", Password: "secreto1", Rol: "administrador",
	})
	require.NoError(t, err)
	assert.Equal(t, "ADMIN", resp.Rol)
}

func TestRegistrar_RolVacioEsWorker(t *testing.T) {
	repo := newStubRepo()
	svc, _ := newAuthService(repo)

	resp, err := svc.Registrar(context.Background(), dto.RegistrarRequest{
		Rut: "55.555.555-5", Nombre: "Sin Rol", Password: "secreto1",
	})
	require.NoError(t, err)
	assert.Equal(t, "WORKER", resp.Rol)
}

func TestRegistrar_RolDesconocido(t *testing.T) {
	repo := newStubRepo()
	svc, _ := newAuthService(repo)

	_, err := svc.Registrar(context.Background(), dto.RegistrarRequest{
		Rut: "66.666.666-6", Nombre: "Rol Malo", Password: "secreto1", Rol: "supervisor",
	})
	assert.ErrorIs(t, err, apierror.ErrRolInvalido)
}

func TestRegistrar_RutDuplicado(t *testing.T) {
	repo := newStubRepo()
	seedUser(t, repo, "11.111.111-1", "admin123", model.RolAdmin)
	svc, _ := newAuthService(repo)

	// Different formatting, same identity.
	_, err := svc.Registrar(context.Background(), dto.RegistrarRequest{
		Rut: "111111111", Nombre: "Duplicado", Password: "secreto1",
	})
	assert.ErrorIs(t, err, apierror.ErrRutDuplicado)
}
