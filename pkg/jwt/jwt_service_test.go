package jwt

import (
	"RecipeShare-Backend/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	service := NewJWTService()

	token, err := service.GenerateToken("auth0|ada", "ada@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := service.GetSubjectByToken(token)
	require.NoError(t, err)
	assert.Equal(t, "auth0|ada", subject)
}

func TestTokenRejectsTampering(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	service := NewJWTService()

	token, err := service.GenerateToken("auth0|ada", "ada@example.com")
	require.NoError(t, err)

	_, err = service.GetSubjectByToken(token + "x")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)

	_, err = service.GetSubjectByToken("not-a-token")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}
