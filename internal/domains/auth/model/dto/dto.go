package dto

import (
	"agendador/infras/jwt"
	"agendador/shared/constant"
	"agendador/shared/timezone"
)

type IssueTokenRequest struct {
	UserID string `json:"user_id" validate:"required,notblank"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresAt   string `json:"expires_at"`
	UserID      string `json:"user_id"`
	Role        string `json:"role"`
}

func (r *TokenResponse) FromToken(token *jwt.Token, userID, role string) {
	r.AccessToken = token.AccessToken
	r.TokenType = token.TokenType
	r.ExpiresAt = timezone.Format(token.ExpiresAt, constant.DateFormat)
	r.UserID = userID
	r.Role = role
}
