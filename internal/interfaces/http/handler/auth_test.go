package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	appidentity "github.com/ainotes/backend/internal/application/identity"
	"github.com/ainotes/backend/internal/domain/identity"
	"github.com/ainotes/backend/internal/infrastructure/auth"
	"github.com/ainotes/backend/internal/infrastructure/config"
	"github.com/ainotes/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// testJWTConfig returns a default JWT config for tests
func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:                "test-secret-key-32-characters-long",
		AccessTokenExpiration: 15 * time.Minute,
		Issuer:                "test-issuer",
	}
}

// MockUserRepository is a mock implementation of identity.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

// authTestEnv bundles the pieces an auth handler test needs
type authTestEnv struct {
	router     *gin.Engine
	repo       *MockUserRepository
	jwtService *auth.JWTService
	blacklist  *auth.InMemoryTokenBlacklist
}

func newAuthTestEnv(t *testing.T) *authTestEnv {
	t.Helper()

	repo := new(MockUserRepository)
	jwtService := auth.NewJWTService(testJWTConfig())
	blacklist := auth.NewInMemoryTokenBlacklist()
	service := appidentity.NewAuthService(repo, jwtService, blacklist, zap.NewNop())
	authHandler := NewAuthHandler(service)

	jwtCfg := middleware.DefaultJWTConfig(jwtService)
	jwtCfg.TokenBlacklist = blacklist

	router := gin.New()
	router.Use(middleware.JWTAuthMiddlewareWithConfig(jwtCfg))
	api := router.Group("/api")
	authHandler.RegisterRoutes(api)

	return &authTestEnv{
		router:     router,
		repo:       repo,
		jwtService: jwtService,
		blacklist:  blacklist,
	}
}

func (e *authTestEnv) request(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func TestAuthHandler_Signup(t *testing.T) {
	t.Run("creates user and returns 201", func(t *testing.T) {
		env := newAuthTestEnv(t)
		env.repo.On("ExistsByEmail", mock.Anything, "alice@example.com").Return(false, nil)
		env.repo.On("Create", mock.Anything, mock.AnythingOfType("*identity.User")).Return(nil)

		rec := env.request(t, http.MethodPost, "/api/signup", SignupRequest{
			Name:     "Alice",
			Email:    "alice@example.com",
			Password: "password123",
		}, "")

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), "alice@example.com")
		assert.NotContains(t, rec.Body.String(), "password")
		env.repo.AssertExpectations(t)
	})

	t.Run("returns 409 for duplicate email", func(t *testing.T) {
		env := newAuthTestEnv(t)
		env.repo.On("ExistsByEmail", mock.Anything, "alice@example.com").Return(true, nil)

		rec := env.request(t, http.MethodPost, "/api/signup", SignupRequest{
			Name:     "Alice",
			Email:    "alice@example.com",
			Password: "password123",
		}, "")

		assert.Equal(t, http.StatusConflict, rec.Code)
		env.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("returns 400 for invalid body", func(t *testing.T) {
		env := newAuthTestEnv(t)

		rec := env.request(t, http.MethodPost, "/api/signup", SignupRequest{
			Name:     "Alice",
			Email:    "not-an-email",
			Password: "password123",
		}, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("returns 400 for short password", func(t *testing.T) {
		env := newAuthTestEnv(t)

		rec := env.request(t, http.MethodPost, "/api/signup", SignupRequest{
			Name:     "Alice",
			Email:    "alice@example.com",
			Password: "short",
		}, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("returns token and user for valid credentials", func(t *testing.T) {
		env := newAuthTestEnv(t)
		user, err := identity.NewUser("Alice", "alice@example.com", "password123")
		require.NoError(t, err)
		env.repo.On("FindByEmail", mock.Anything, "alice@example.com").Return(user, nil)

		rec := env.request(t, http.MethodPost, "/api/login", LoginRequest{
			Email:    "alice@example.com",
			Password: "password123",
		}, "")

		assert.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Success bool          `json:"success"`
			Data    LoginResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.True(t, body.Success)
		assert.NotEmpty(t, body.Data.Token.AccessToken)
		assert.Equal(t, "Bearer", body.Data.Token.TokenType)
		assert.Equal(t, "alice@example.com", body.Data.User.Email)
	})

	t.Run("returns 401 for wrong password", func(t *testing.T) {
		env := newAuthTestEnv(t)
		user, err := identity.NewUser("Alice", "alice@example.com", "password123")
		require.NoError(t, err)
		env.repo.On("FindByEmail", mock.Anything, "alice@example.com").Return(user, nil)

		rec := env.request(t, http.MethodPost, "/api/login", LoginRequest{
			Email:    "alice@example.com",
			Password: "wrong-password",
		}, "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAuthHandler_GetCurrentUser(t *testing.T) {
	t.Run("returns session user", func(t *testing.T) {
		env := newAuthTestEnv(t)
		user, err := identity.NewUser("Alice", "alice@example.com", "password123")
		require.NoError(t, err)
		env.repo.On("FindByID", mock.Anything, user.ID).Return(user, nil)

		token, err := env.jwtService.GenerateAccessToken(auth.GenerateTokenInput{
			UserID: user.ID,
			Email:  user.Email,
			Name:   user.Name,
		})
		require.NoError(t, err)

		rec := env.request(t, http.MethodGet, "/api/auth/me", nil, token.Token)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "alice@example.com")
	})

	t.Run("returns 401 without token", func(t *testing.T) {
		env := newAuthTestEnv(t)

		rec := env.request(t, http.MethodGet, "/api/auth/me", nil, "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	t.Run("revokes the current token", func(t *testing.T) {
		env := newAuthTestEnv(t)
		userID := uuid.New()

		token, err := env.jwtService.GenerateAccessToken(auth.GenerateTokenInput{
			UserID: userID,
			Email:  "alice@example.com",
		})
		require.NoError(t, err)

		rec := env.request(t, http.MethodPost, "/api/auth/logout", nil, token.Token)
		assert.Equal(t, http.StatusOK, rec.Code)

		// The same token must be rejected afterwards
		rec = env.request(t, http.MethodGet, "/api/auth/me", nil, token.Token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
