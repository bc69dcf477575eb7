package utils_test

import (
	"testing"
	"time"

	"github.com/fxdesk/currency_exchange_app/internal/core/domain"
	"github.com/fxdesk/currency_exchange_app/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	user := &domain.User{UserID: uuid.NewString(), Role: domain.RoleAdmin}

	token, expiresAt, err := utils.GenerateJWT(user, "secret", time.Hour, "issuer")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := utils.ParseAndValidateJWT(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, user.UserID, claims.Subject)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
	assert.Equal(t, "issuer", claims.Issuer)
}

func TestParseAndValidateJWT_WrongSecret(t *testing.T) {
	user := &domain.User{UserID: uuid.NewString(), Role: domain.RoleUser}

	token, _, err := utils.GenerateJWT(user, "secret", time.Hour, "issuer")
	require.NoError(t, err)

	claims, err := utils.ParseAndValidateJWT(token, "other-secret")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestParseAndValidateJWT_Expired(t *testing.T) {
	user := &domain.User{UserID: uuid.NewString(), Role: domain.RoleUser}

	token, _, err := utils.GenerateJWT(user, "secret", -time.Minute, "issuer")
	require.NoError(t, err)

	claims, err := utils.ParseAndValidateJWT(token, "secret")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := utils.HashPassword("Sup3rSecret!")
	require.NoError(t, err)
	assert.NotEqual(t, "Sup3rSecret!", hash)

	assert.True(t, utils.CheckPasswordHash("Sup3rSecret!", hash))
	assert.False(t, utils.CheckPasswordHash("wrong", hash))
}
