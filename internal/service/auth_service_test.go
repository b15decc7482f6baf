package service_test

import (
	"context"
	"testing"

	"github.com/garagem-inteligente/server/internal/domain"
	"github.com/garagem-inteligente/server/internal/repository/postgres"
	"github.com/garagem-inteligente/server/internal/service"
	"github.com/garagem-inteligente/server/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Register(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	authService := service.NewAuthService(repos.User, cfg)
	ctx := context.Background()

	tests := []struct {
		name    string
		input   service.RegisterInput
		setup   func(t *testing.T)
		wantErr error
	}{
		{
			name:  "successful registration",
			input: service.RegisterInput{Email: "new@test.com", Password: "secret1"},
		},
		{
			name:  "email normalized before storing",
			input: service.RegisterInput{Email: "  UPPER@Test.Com  ", Password: "secret1"},
		},
		{
			name:  "duplicate email",
			input: service.RegisterInput{Email: "taken@test.com", Password: "secret1"},
			setup: func(t *testing.T) {
				testutil.NewUserBuilder().WithEmail("taken@test.com").Build(t, testDB.DB)
			},
			wantErr: service.ErrEmailExists,
		},
		{
			name:  "duplicate email with case and whitespace variants",
			input: service.RegisterInput{Email: "  TAKEN@TEST.com ", Password: "secret1"},
			setup: func(t *testing.T) {
				testutil.NewUserBuilder().WithEmail("taken@test.com").Build(t, testDB.DB)
			},
			wantErr: service.ErrEmailExists,
		},
		{
			name:    "invalid email format",
			input:   service.RegisterInput{Email: "not-an-email", Password: "secret1"},
			wantErr: domain.ErrValidation,
		},
		{
			name:    "password too short",
			input:   service.RegisterInput{Email: "short@test.com", Password: "12345"},
			wantErr: domain.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testDB.Truncate(t)

			if tt.setup != nil {
				tt.setup(t)
			}

			user, err := authService.Register(ctx, tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, domain.NormalizeEmail(tt.input.Email), user.Email)
			assert.NotEqual(t, tt.input.Password, user.PasswordHash)
			assert.NotEmpty(t, user.PasswordHash)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	authService := service.NewAuthService(repos.User, cfg)
	ctx := context.Background()

	user, rawPassword := testutil.NewUserBuilder().
		WithEmail("login@test.com").
		WithPassword("correctpassword").
		Build(t, testDB.DB)

	tests := []struct {
		name    string
		input   service.LoginInput
		wantErr error
	}{
		{
			name:  "successful login",
			input: service.LoginInput{Email: user.Email, Password: rawPassword},
		},
		{
			name:  "email case insensitive",
			input: service.LoginInput{Email: "LOGIN@TEST.COM", Password: rawPassword},
		},
		{
			name:    "wrong password",
			input:   service.LoginInput{Email: user.Email, Password: "wrongpassword"},
			wantErr: service.ErrInvalidCredentials,
		},
		{
			name:    "non-existent user",
			input:   service.LoginInput{Email: "nobody@test.com", Password: "anypassword"},
			wantErr: service.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := authService.Login(ctx, tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, user.ID, result.User.ID)
			assert.NotEmpty(t, result.Token)
		})
	}
}

func TestAuthService_ValidateToken(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	authService := service.NewAuthService(repos.User, cfg)
	ctx := context.Background()

	user, rawPassword := testutil.NewUserBuilder().
		WithEmail("claims@test.com").
		Build(t, testDB.DB)

	result, err := authService.Login(ctx, service.LoginInput{Email: user.Email, Password: rawPassword})
	require.NoError(t, err)

	t.Run("fresh token verifies", func(t *testing.T) {
		claims, err := authService.ValidateToken(result.Token)
		require.NoError(t, err)
		assert.Equal(t, user.ID, claims.UserID)
		assert.Equal(t, user.Email, claims.Email)
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		_, err := authService.ValidateToken("not.a.token")
		assert.ErrorIs(t, err, service.ErrInvalidToken)
	})

	t.Run("token signed with another secret rejected", func(t *testing.T) {
		otherCfg := testutil.TestConfig()
		otherCfg.JWTSecret = "a-completely-different-secret"
		otherService := service.NewAuthService(repos.User, otherCfg)

		_, err := otherService.ValidateToken(result.Token)
		assert.ErrorIs(t, err, service.ErrInvalidToken)
	})

	t.Run("expired token rejected", func(t *testing.T) {
		expiredCfg := testutil.TestConfig()
		expiredCfg.JWTExpirationHours = -1
		expiredService := service.NewAuthService(repos.User, expiredCfg)

		expired, err := expiredService.Login(ctx, service.LoginInput{Email: user.Email, Password: rawPassword})
		require.NoError(t, err)

		_, err = expiredService.ValidateToken(expired.Token)
		assert.ErrorIs(t, err, service.ErrInvalidToken)
	})
}
