package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(UserInfo{UserId: 42, Role: 1}, 60)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	userID, role, err := GetUserIDFromToken(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), userID)
	assert.Equal(t, 1, role)

	onlyID, err := GetIDFromToken(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), onlyID)
}

func TestGetUserIDFromTokenInvalid(t *testing.T) {
	t.Run("bukan jwt", func(t *testing.T) {
		_, _, err := GetUserIDFromToken("abc")
		assert.Error(t, err)
	})

	t.Run("payload bukan base64", func(t *testing.T) {
		_, _, err := GetUserIDFromToken("a.!!!.c")
		assert.Error(t, err)
	})
}
