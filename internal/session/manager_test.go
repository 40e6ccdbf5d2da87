package session

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(ttl time.Duration) *Manager {
	return NewManager(NewMemoryStore(), ttl)
}

func TestIssueValidate_RoundTrip(t *testing.T) {
	m := newTestManager(24 * time.Hour)
	userID := uuid.New()

	token, rec, err := m.Issue(context.Background(), userID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, userID, rec.UserID)
	assert.Equal(t, rec.IssuedAt.Add(24*time.Hour), rec.ExpiresAt)

	got, err := m.Validate(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestIssue_TokensAreUnique(t *testing.T) {
	m := newTestManager(time.Hour)
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, _, err := m.Issue(context.Background(), uuid.New())
		require.NoError(t, err)
		assert.False(t, seen[token])
		seen[token] = true
	}
}

func TestValidate_TokenDesconocido(t *testing.T) {
	m := newTestManager(time.Hour)

	_, err := m.Validate(context.Background(), "no-existe")
	assert.ErrorIs(t, err, ErrInvalida)

	_, err = m.Validate(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalida)
}

func TestValidate_LimiteDeExpiracion(t *testing.T) {
	m := newTestManager(time.Hour)
	userID := uuid.New()

	token, rec, err := m.Issue(context.Background(), userID)
	require.NoError(t, err)

	// 1ms before expiry: still valid
	m.now = func() time.Time { return rec.ExpiresAt.Add(-time.Millisecond) }
	got, err := m.Validate(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)

	// 1ms past expiry: dead
	m.now = func() time.Time { return rec.ExpiresAt.Add(time.Millisecond) }
	_, err = m.Validate(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalida)
}

func TestRevoke_Idempotente(t *testing.T) {
	m := newTestManager(time.Hour)

	token, _, err := m.Issue(context.Background(), uuid.New())
	require.NoError(t, err)

	require.NoError(t, m.Revoke(context.Background(), token))
	_, err = m.Validate(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalida)

	// Second revoke of the same token must not error; neither must an
	// unknown one.
	assert.NoError(t, m.Revoke(context.Background(), token))
	assert.NoError(t, m.Revoke(context.Background(), "jamas-existio"))
}

func TestRevoke_NoResucita(t *testing.T) {
	m := newTestManager(time.Hour)
	userID := uuid.New()

	token1, _, err := m.Issue(context.Background(), userID)
	require.NoError(t, err)
	require.NoError(t, m.Revoke(context.Background(), token1))

	// A fresh login mints a new token; the revoked one stays dead.
	token2, _, err := m.Issue(context.Background(), userID)
	require.NoError(t, err)
	assert.NotEqual(t, token1, token2)

	_, err = m.Validate(context.Background(), token1)
	assert.ErrorIs(t, err, ErrInvalida)
	got, err := m.Validate(context.Background(), token2)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}
