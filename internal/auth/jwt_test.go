package auth

import (
	"testing"
	"time"

	"helpdesk/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestTokenRoundTrip(t *testing.T) {
	user := &model.User{
		ID:       primitive.NewObjectID(),
		Username: "staff@b.com",
		Role:     model.RoleStaff,
		Branch:   "Chennai",
	}

	token, err := GenerateToken("secret", time.Hour, user)
	require.NoError(t, err)

	claims, err := ParseToken("secret", token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.Hex(), claims.UserID)
	assert.Equal(t, "staff@b.com", claims.Username)
	assert.Equal(t, model.RoleStaff, claims.Role)
	assert.Equal(t, "Chennai", claims.Branch)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	user := &model.User{ID: primitive.NewObjectID(), Username: "a@b.com", Role: model.RoleAdmin}

	token, err := GenerateToken("secret", time.Hour, user)
	require.NoError(t, err)

	_, err = ParseToken("other-secret", token)
	require.Error(t, err)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	user := &model.User{ID: primitive.NewObjectID(), Username: "a@b.com", Role: model.RoleAdmin}

	token, err := GenerateToken("secret", -time.Minute, user)
	require.NoError(t, err)

	_, err = ParseToken("secret", token)
	require.Error(t, err)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := ParseToken("secret", "not-a-token")
	require.Error(t, err)
}
