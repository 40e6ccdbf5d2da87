package handler

import (
	"net/http"

	"frenotaller/internal/apierror"
	"frenotaller/internal/dto"
	"frenotaller/internal/middleware"
	"frenotaller/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

// Login godoc
// @Summary Login de usuario
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "Credenciales"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} apierror.APIError
// @Failure 401 {object} apierror.APIError
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalido: "+err.Error()))
		return
	}
	// Field-presence errors keep their own messages; everything after this
	// point collapses into the one generic credentials error.
	if req.Rut == "" {
		c.JSON(http.StatusBadRequest, apierror.New("RUT es requerido"))
		return
	}
	if req.Password == "" {
		c.JSON(http.StatusBadRequest, apierror.New("Contraseña es requerida"))
		return
	}

	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Logout godoc
// @Summary Cierra la sesion actual
// @Tags auth
// @Produce json
// @Success 200 {object} dto.MensajeResponse
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	// Best-effort revoke; the handler never reports failure so the client
	// always ends up logged out.
	_ = h.svc.Logout(c.Request.Context(), middleware.BearerToken(c))
	c.JSON(http.StatusOK, dto.MensajeResponse{Mensaje: "Sesión cerrada exitosamente"})
}

// Me godoc
// @Summary Perfil del usuario autenticado
// @Tags auth
// @Produce json
// @Success 200 {object} dto.UsuarioResponse
// @Failure 401 {object} apierror.APIError
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user := middleware.GetUsuario(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, apierror.New("No autenticado"))
		return
	}
	c.JSON(http.StatusOK, dto.UsuarioResponse{
		ID:     user.ID.String(),
		Rut:    user.Rut,
		Nombre: user.Nombre,
		Rol:    string(user.Rol),
	})
}

// Registrar godoc
// @Summary Crea un nuevo usuario (solo administradores)
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.RegistrarRequest true "Usuario"
// @Success 201 {object} dto.UsuarioResponse
// @Failure 400 {object} apierror.APIError
// @Router /api/auth/register [post]
func (h *AuthHandler) Registrar(c *gin.Context) {
	var req dto.RegistrarRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Registrar(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}
