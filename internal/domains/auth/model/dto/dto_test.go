package dto_test

import (
	"agendador/infras/jwt"
	"agendador/internal/domains/auth/model/dto"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTokenResponse_FromToken(t *testing.T) {
	token := &jwt.Token{
		AccessToken: "signed",
		TokenType:   "Bearer",
		ExpiresAt:   time.Date(2025, 9, 15, 12, 0, 0, 0, time.UTC),
	}

	var res dto.TokenResponse
	res.FromToken(token, "user-1", "admin")

	assert.Equal(t, "signed", res.AccessToken)
	assert.Equal(t, "Bearer", res.TokenType)
	assert.Equal(t, "user-1", res.UserID)
	assert.Equal(t, "admin", res.Role)
	assert.NotEmpty(t, res.ExpiresAt)
}
