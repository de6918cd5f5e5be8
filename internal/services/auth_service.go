package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"climate-repair/internal/dto"
	"climate-repair/internal/repositories"
	"climate-repair/pkg/config"
	apperrors "climate-repair/pkg/errors"
	"climate-repair/pkg/service"
	"climate-repair/pkg/utils"
)

type AuthServiceInterface interface {
	Login(ctx context.Context, payload dto.LoginDTO) (*dto.LoginResponseDTO, error)
	Me(ctx context.Context, userID uint64) (*dto.AuthUserDTO, error)
}

type authService struct {
	userRepo   repositories.UserRepositoryInterface
	jwtService service.JWTService
	jwtConfig  config.JWTConfig
	logger     *zap.Logger
}

func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	jwtService service.JWTService,
	jwtConfig config.JWTConfig,
	logger *zap.Logger,
) AuthServiceInterface {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
		jwtConfig:  jwtConfig,
		logger:     logger,
	}
}

func (s *authService) Login(ctx context.Context, payload dto.LoginDTO) (*dto.LoginResponseDTO, error) {
	user, err := s.userRepo.FindByLogin(ctx, payload.Login)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}
	if !utils.CheckPasswordHash(payload.Password, user.PasswordHash) {
		s.logger.Warn("Неудачная попытка входа", zap.String("login", payload.Login))
		return nil, apperrors.ErrInvalidCredentials
	}

	access, refresh, err := s.jwtService.GenerateTokens(user.ID, user.Role, s.jwtConfig.AccessTokenTTL, s.jwtConfig.RefreshTokenTTL)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Пользователь вошёл в систему", zap.Uint64("user_id", user.ID), zap.String("role", user.Role))
	return &dto.LoginResponseDTO{
		User: dto.AuthUserDTO{
			ID:       user.ID,
			FullName: user.FullName,
			Role:     user.Role,
		},
		Tokens: dto.TokenPairDTO{
			AccessToken:  access,
			RefreshToken: refresh,
		},
	}, nil
}

func (s *authService) Me(ctx context.Context, userID uint64) (*dto.AuthUserDTO, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &dto.AuthUserDTO{
		ID:       user.ID,
		FullName: user.FullName,
		Role:     user.Role,
	}, nil
}
