package impl

import (
	"context"
	"testing"

	"editais/config"
	domainerrors "editais/internal/domain/errors"
	"editais/internal/infra/auth"
	"editais/internal/infra/persistence/memory"
	"editais/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserService(t *testing.T) usecase.UserUsecase {
	t.Helper()
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 4}}
	cfg.SecretKey.Access = "test-access"
	cfg.SecretKey.Refresh = "test-refresh"

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	return NewUserService(UserServiceParams{
		UserRepo: memory.NewUserRepository(memory.NewStore()),
		Hasher:   auth.NewBcryptHasher(cfg),
		Tokens:   tokens,
	})
}

func TestRegister_ReturnsLoggedInUser(t *testing.T) {
	svc := newUserService(t)

	out, err := svc.Register(context.Background(), usecase.RegisterInput{
		Name:     "Ana",
		Email:    "Ana@Example.com",
		Password: "s3cret-password",
	})
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", out.User.Email)
	assert.NotEmpty(t, out.AccessToken)
	assert.NotEmpty(t, out.RefreshToken)
	assert.NotEqual(t, "s3cret-password", out.User.PasswordHash)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, usecase.RegisterInput{
		Name: "Ana", Email: "ana@example.com", Password: "s3cret-password",
	})
	require.NoError(t, err)

	_, err = svc.Register(ctx, usecase.RegisterInput{
		Name: "Outra Ana", Email: "ANA@example.com", Password: "outra-senha",
	})
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestLogin_Succeeds(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, usecase.RegisterInput{
		Name: "Ana", Email: "ana@example.com", Password: "s3cret-password",
	})
	require.NoError(t, err)

	out, err := svc.Login(ctx, usecase.LoginInput{
		Email: "ana@example.com", Password: "s3cret-password",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.AccessToken)
}

func TestLogin_WrongPasswordOrUnknownUser(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, usecase.RegisterInput{
		Name: "Ana", Email: "ana@example.com", Password: "s3cret-password",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, usecase.LoginInput{Email: "ana@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	_, err = svc.Login(ctx, usecase.LoginInput{Email: "nobody@example.com", Password: "x"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}
