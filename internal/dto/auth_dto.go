package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

// LoginRequest carries the login form. Presence is checked by the handler
// (not validator tags) so each missing field gets its own 400 message.
type LoginRequest struct {
	Rut      string `json:"rut"`
	Password string `json:"password"`
}

type RegistrarRequest struct {
	Rut      string `json:"rut"      validate:"required,min=1,max=12"`
	Nombre   string `json:"nombre"   validate:"required,min=2,max=100"`
	Password string `json:"password" validate:"required,min=6"`
	// Rol accepts canonical or legacy spellings; empty defaults to WORKER.
	Rol string `json:"role" validate:"omitempty"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// UsuarioResponse is the public profile: never carries the password hash.
type UsuarioResponse struct {
	ID     string `json:"id"`
	Rut    string `json:"rut"`
	Nombre string `json:"nombre"`
	Rol    string `json:"role"`
}

type LoginResponse struct {
	ID          string `json:"id"`
	Rut         string `json:"rut"`
	Nombre      string `json:"nombre"`
	Rol         string `json:"role"`
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"` // seconds
}

type MensajeResponse struct {
	Mensaje string `json:"message"`
}
