package middleware

import (
	"errors"
	"net/http"
	"strings"

	"frenotaller/internal/apierror"
	"frenotaller/internal/model"
	"frenotaller/internal/repository"
	"frenotaller/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const UsuarioKey = "usuario"

// BearerToken extracts the session token from the Authorization header.
// Empty string when the header is absent or not a bearer scheme.
func BearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

// RequireAuth validates the bearer session on every protected route and
// attaches the resolved user to the request context. Any token problem is a
// uniform 401; only a broken session store or DB surfaces as 500.
func RequireAuth(sessions *session.Manager, usuarios repository.UsuarioRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := sessions.Validate(c.Request.Context(), BearerToken(c))
		if err != nil {
			if errors.Is(err, session.ErrInvalida) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("No autenticado"))
				return
			}
			log.Error().Err(err).Msg("validacion de sesion fallida")
			c.AbortWithStatusJSON(http.StatusInternalServerError, apierror.New("Error interno del servidor"))
			return
		}

		user, err := usuarios.FindByID(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, apierror.ErrNoEncontrado) {
				// Session outlived its user; treat as no session.
				c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("No autenticado"))
				return
			}
			log.Error().Err(err).Msg("carga de usuario de sesion fallida")
			c.AbortWithStatusJSON(http.StatusInternalServerError, apierror.New("Error interno del servidor"))
			return
		}

		c.Set(UsuarioKey, user)
		c.Next()
	}
}

// RequireRole rejects requests whose resolved user is not in the allowed set.
// Comparison is on the canonical enum only — the repository guarantees legacy
// spellings never reach this point.
func RequireRole(roles ...model.Rol) gin.HandlerFunc {
	allowed := make(map[model.Rol]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	msg := "Acceso denegado. Se requiere rol de mecánico o administrador"
	if len(roles) == 1 && roles[0] == model.RolAdmin {
		msg = "Acceso denegado. Se requiere rol de administrador"
	}
	return func(c *gin.Context) {
		user := GetUsuario(c)
		if user == nil || !allowed[user.Rol] {
			c.AbortWithStatusJSON(http.StatusForbidden, apierror.New(msg))
			return
		}
		c.Next()
	}
}

// GetUsuario retrieves the authenticated user placed by RequireAuth.
func GetUsuario(c *gin.Context) *model.Usuario {
	u, _ := c.Value(UsuarioKey).(*model.Usuario)
	return u
}
