package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTer(ttl time.Duration) *JWTer {
	return &JWTer{Secret: []byte("test-secret"), Issuer: "test", TTL: ttl}
}

func TestIssueAndParse(t *testing.T) {
	j := newTestJWTer(time.Hour)

	tok, err := j.Issue("u-1", "a@x.com", RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := j.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UID)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, RoleAdmin, claims.Role)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	j := newTestJWTer(time.Hour)
	tok, err := j.Issue("u-1", "a@x.com", RoleUser)
	require.NoError(t, err)

	other := &JWTer{Secret: []byte("different"), Issuer: "test", TTL: time.Hour}
	_, err = other.Parse(tok)
	assert.Error(t, err)
}

func TestParseRejectsExpired(t *testing.T) {
	// beyond the 60s parse leeway
	j := newTestJWTer(-2 * time.Minute)
	tok, err := j.Issue("u-1", "a@x.com", RoleUser)
	require.NoError(t, err)

	_, err = j.Parse(tok)
	assert.Error(t, err)
}

func TestIsAdmin(t *testing.T) {
	assert.True(t, IsAdmin(&Claims{Role: RoleAdmin}))
	assert.False(t, IsAdmin(&Claims{Role: RoleUser}))
	assert.False(t, IsAdmin(nil))
}
