// Package session implements server-side bearer sessions: opaque random
// tokens mapped to a user, with a fixed lifetime, explicit revocation on
// logout and automatic expiry. Tokens carry no claims; everything lives on
// the server, which is what makes logout actually revoke access.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrInvalida covers every way a token can fail validation: malformed,
// unknown, revoked or expired. Callers must not be able to tell these apart.
var ErrInvalida = errors.New("sesion invalida o expirada")

// Record is one active session. A token past ExpiresAt is dead even if the
// backing store has not evicted it yet.
type Record struct {
	UserID    uuid.UUID `json:"user_id"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Store persists session records keyed by token. Save must be atomic: a
// record is either fully visible or absent, never half-written. Find returns
// (nil, nil) for unknown tokens; Delete of an unknown token is a no-op.
type Store interface {
	Save(ctx context.Context, token string, rec *Record) error
	Find(ctx context.Context, token string) (*Record, error)
	Delete(ctx context.Context, token string) error
}
