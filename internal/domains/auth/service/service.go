package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"agendador/config"
	"agendador/infras/jwt"
	"agendador/infras/otel"
	"agendador/internal/domains/auth/model/dto"
	userModel "agendador/internal/domains/user/model"
	userRepo "agendador/internal/domains/user/repository"
	"agendador/shared"
	"agendador/shared/constant"
	"agendador/shared/failure"
	gModel "agendador/shared/model"
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

const (
	msgInvalidToken  = "invalid token"
	msgExpiredToken  = "token has expired"
	msgUnknownUser   = "user not found or inactive"
	msgMissingUserID = "user_id is required"
)

// Auth is the access-control gate. It resolves credentials to callers and
// mints tokens for known users.
type Auth interface {
	Authenticate(ctx context.Context, credential string) (gModel.Caller, error)
	IssueToken(ctx context.Context, req dto.IssueTokenRequest) (dto.TokenResponse, error)
}

type serviceImpl struct {
	userRepo   userRepo.User
	cfg        *config.Config
	otel       otel.Otel
	jwtService jwt.JWT
}

func New(userRepo userRepo.User, cfg *config.Config, otel otel.Otel, jwt jwt.JWT) Auth {
	return &serviceImpl{
		userRepo:   userRepo,
		cfg:        cfg,
		otel:       otel,
		jwtService: jwt,
	}
}

// Authenticate verifies the token and reloads the user so that role changes
// and deactivation take effect before the token expires.
func (s *serviceImpl) Authenticate(ctx context.Context, credential string) (res gModel.Caller, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Authenticate")
	defer scope.End()
	defer scope.TraceIfError(&err)

	claims, err := s.jwtService.ValidateToken(credential)
	if err != nil {
		log.Warn().Err(err).Msg("rejected access token")

		if errors.Is(err, jwt.ErrExpiredToken) {
			return res, failure.Unauthorized(msgExpiredToken) // nolint:wrapcheck
		}

		return res, failure.Unauthorized(msgInvalidToken) // nolint:wrapcheck
	}

	user, err := s.activeUser(ctx, claims.UserID)
	if err != nil {
		return res, err
	}

	return gModel.Caller{
		ID:    user.ID,
		Email: user.Email,
		Role:  user.Role,
	}, nil
}

func (s *serviceImpl) IssueToken(ctx context.Context, req dto.IssueTokenRequest) (res dto.TokenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".IssueToken")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if req.UserID == constant.Empty {
		return res, failure.BadRequestFromString(msgMissingUserID) // nolint:wrapcheck
	}

	user, err := s.activeUser(ctx, req.UserID)
	if err != nil {
		return res, err
	}

	token, err := s.jwtService.GenerateAccessToken(user.ID, user.Email, user.Role)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate token")

		return res, fmt.Errorf("failed to generate token: %w", err)
	}

	res.FromToken(token, user.ID, user.Role)

	return res, nil
}

func (s *serviceImpl) activeUser(ctx context.Context, id string) (userModel.User, error) {
	user, err := s.userRepo.Get(ctx, shared.FilterByID(id, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return user, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty || !user.Active {
		log.Warn().Str("user_id", id).Msg("token for unknown or inactive user")

		return user, failure.Unauthorized(msgUnknownUser) // nolint:wrapcheck
	}

	return user, nil
}
