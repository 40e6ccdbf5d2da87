package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const tokenBytes = 32

// Manager issues, validates and revokes sessions against a Store.
type Manager struct {
	store Store
	ttl   time.Duration
	now   func() time.Time
}

func NewManager(store Store, ttl time.Duration) *Manager {
	return &Manager{store: store, ttl: ttl, now: time.Now}
}

// Issue mints a fresh unpredictable token bound to userID. The store write is
// the single side effect: if it fails, no session exists and the error
// propagates — never a half-issued session.
func (m *Manager) Issue(ctx context.Context, userID uuid.UUID) (string, *Record, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", nil, fmt.Errorf("generar token: %w", err)
	}
	token := base64.RawURLEncoding.EncodeToString(buf)

	issued := m.now()
	rec := &Record{UserID: userID, IssuedAt: issued, ExpiresAt: issued.Add(m.ttl)}
	if err := m.store.Save(ctx, token, rec); err != nil {
		return "", nil, err
	}
	return token, rec, nil
}

// Validate resolves a token to its user. Malformed, unknown, revoked and
// expired tokens all fail with ErrInvalida; store failures propagate as-is so
// the caller can distinguish "no session" from "infrastructure down".
func (m *Manager) Validate(ctx context.Context, token string) (uuid.UUID, error) {
	if token == "" {
		return uuid.Nil, ErrInvalida
	}
	rec, err := m.store.Find(ctx, token)
	if err != nil {
		return uuid.Nil, err
	}
	if rec == nil || m.now().After(rec.ExpiresAt) {
		return uuid.Nil, ErrInvalida
	}
	return rec.UserID, nil
}

// Revoke destroys a session. Idempotent: revoking an already-revoked or
// unknown token succeeds.
func (m *Manager) Revoke(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return m.store.Delete(ctx, token)
}
