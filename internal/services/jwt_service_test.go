package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/propertyhub/listings-api/internal/models"
)

func TestJWTRoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret")
	user := &models.User{ID: uuid.New(), Username: "maria", Role: models.RoleUser}

	token, err := svc.GenerateToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	require.Equal(t, user.ID, claims.UserID)
	require.Equal(t, "maria", claims.Username)
	require.Equal(t, models.RoleUser, claims.Role)
}

func TestJWTRejectsWrongSecret(t *testing.T) {
	user := &models.User{ID: uuid.New(), Username: "maria", Role: models.RoleUser}

	token, err := NewJWTService("secret-a").GenerateToken(user)
	require.NoError(t, err)

	_, err = NewJWTService("secret-b").ValidateToken(token)
	require.Error(t, err)
}

func TestJWTRejectsGarbage(t *testing.T) {
	svc := NewJWTService("test-secret")

	_, err := svc.ValidateToken("not.a.token")
	require.Error(t, err)

	_, err = svc.ValidateToken("")
	require.Error(t, err)
}
