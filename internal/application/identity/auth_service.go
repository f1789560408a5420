package identity

import (
	"context"
	"errors"

	"github.com/ainotes/backend/internal/domain/identity"
	"github.com/ainotes/backend/internal/domain/shared"
	"github.com/ainotes/backend/internal/infrastructure/auth"
	"go.uber.org/zap"
)

// AuthService handles signup, login and session operations
type AuthService struct {
	userRepo   identity.UserRepository
	jwtService *auth.JWTService
	blacklist  auth.TokenBlacklist
	logger     *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(
	userRepo identity.UserRepository,
	jwtService *auth.JWTService,
	blacklist auth.TokenBlacklist,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
		blacklist:  blacklist,
		logger:     logger,
	}
}

// Signup registers a new user account
func (s *AuthService) Signup(ctx context.Context, input SignupInput) (*SignupResult, error) {
	s.logger.Info("Signup attempt", zap.String("email", input.Email))

	exists, err := s.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		s.logger.Error("Failed to check email availability", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create user")
	}
	if exists {
		s.logger.Warn("Signup with already registered email", zap.String("email", input.Email))
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Email is already registered")
	}

	user, err := identity.NewUser(input.Name, input.Email, input.Password)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		s.logger.Error("Failed to create user", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create user")
	}

	s.logger.Info("User created",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	return &SignupResult{User: toUserInfo(user)}, nil
}

// Login authenticates a user and returns an access token
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	s.logger.Info("Login attempt", zap.String("email", input.Email))

	user, err := s.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			s.logger.Warn("User not found during login", zap.String("email", input.Email))
			return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
		}
		s.logger.Error("Failed to look up user during login", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to log in")
	}

	if !user.VerifyPassword(input.Password) {
		s.logger.Warn("Invalid password attempt", zap.String("email", input.Email))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
	}

	token, err := s.jwtService.GenerateAccessToken(auth.GenerateTokenInput{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
	})
	if err != nil {
		s.logger.Error("Failed to generate access token", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to generate authentication token")
	}

	s.logger.Info("User logged in",
		zap.String("email", user.Email),
		zap.String("user_id", user.ID.String()))

	return &LoginResult{
		AccessToken: token.Token,
		ExpiresAt:   token.ExpiresAt,
		TokenType:   token.TokenType,
		User:        toUserInfo(user),
	}, nil
}

// GetCurrentUser returns the user behind the current session
func (s *AuthService) GetCurrentUser(ctx context.Context, input GetCurrentUserInput) (*GetCurrentUserResult, error) {
	user, err := s.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	return &GetCurrentUserResult{User: toUserInfo(user)}, nil
}

// ChangePassword changes the current user's password
func (s *AuthService) ChangePassword(ctx context.Context, input ChangePasswordInput) error {
	user, err := s.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return err
	}

	if err := user.ChangePassword(input.OldPassword, input.NewPassword); err != nil {
		return err
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		s.logger.Error("Failed to persist password change", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to change password")
	}

	s.logger.Info("Password changed", zap.String("user_id", user.ID.String()))
	return nil
}

// Logout revokes the current access token
func (s *AuthService) Logout(ctx context.Context, input LogoutInput) error {
	if input.TokenJTI == "" {
		return nil
	}

	if err := s.blacklist.AddToBlacklist(ctx, input.TokenJTI, input.TokenTTL); err != nil {
		s.logger.Error("Failed to blacklist token",
			zap.String("user_id", input.UserID.String()),
			zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to log out")
	}

	s.logger.Info("User logged out", zap.String("user_id", input.UserID.String()))
	return nil
}

func toUserInfo(user *identity.User) UserInfo {
	return UserInfo{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}
