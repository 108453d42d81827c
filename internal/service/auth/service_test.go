package auth

import (
	"context"
	"testing"

	"github.com/emscorp/ems-backend-go/internal/domain/auth"
	"github.com/emscorp/ems-backend-go/internal/domain/user"
	"github.com/emscorp/ems-backend-go/internal/pkg/jwt"
	"github.com/emscorp/ems-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	testSecret     = "test-secret-key-for-jwt"
	testAccessExp  = "1h"
	testRefreshExp = "24h"
)

// stubUserRepo keeps users in a map keyed by ID.
type stubUserRepo struct {
	users  map[string]user.User
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]user.User)}
}

func (r *stubUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (r *stubUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (r *stubUserRepo) Create(ctx context.Context, newUser user.User) (user.User, error) {
	for _, u := range r.users {
		if u.Email == newUser.Email {
			return user.User{}, user.ErrEmailExists
		}
	}
	r.nextID++
	newUser.ID = string(rune('a' + r.nextID))
	r.users[newUser.ID] = newUser
	return newUser, nil
}

func newTestService(repo user.UserRepository) (auth.AuthService, jwt.Service) {
	jwtService := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp)
	return NewAuthService(repo, jwtService), jwtService
}

func registerTestUser(t *testing.T, svc auth.AuthService) auth.UserResponse {
	created, err := svc.Register(context.Background(), auth.RegisterRequest{
		Email:     "ada@example.com",
		Password:  "password123",
		FirstName: "Ada",
		LastName:  "Lovelace",
	})
	require.NoError(t, err)
	return created
}

func TestRegister(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newTestService(repo)

	created := registerTestUser(t, svc)
	assert.Equal(t, "ada@example.com", created.Email)
	assert.Equal(t, "Ada", created.FirstName)
	assert.False(t, created.IsAdmin)

	stored := repo.users[created.ID]
	assert.NotEqual(t, "password123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("password123")))
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := newTestService(newStubUserRepo())

	_, err := svc.Register(context.Background(), auth.RegisterRequest{
		Email:    "not-an-email",
		Password: "short",
	})
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	fields := verrs.ToMap()
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "password")
	assert.Contains(t, fields, "first_name")
	assert.Contains(t, fields, "last_name")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newTestService(newStubUserRepo())
	registerTestUser(t, svc)

	_, err := svc.Register(context.Background(), auth.RegisterRequest{
		Email:     "ada@example.com",
		Password:  "password123",
		FirstName: "Ada",
		LastName:  "Lovelace",
	})
	assert.ErrorIs(t, err, user.ErrEmailExists)
}

func TestLogin(t *testing.T) {
	svc, _ := newTestService(newStubUserRepo())
	created := registerTestUser(t, svc)

	tokens, loggedIn, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "ada@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, loggedIn.ID)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	assert.Greater(t, tokens.RefreshTokenExpiresAt, tokens.AccessTokenExpiresAt)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newTestService(newStubUserRepo())
	registerTestUser(t, svc)

	_, _, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "ada@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

// An unknown email must be indistinguishable from a wrong password.
func TestLoginUnknownEmail(t *testing.T) {
	svc, _ := newTestService(newStubUserRepo())

	_, _, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestRefreshRotatesToken(t *testing.T) {
	svc, jwtService := newTestService(newStubUserRepo())
	registerTestUser(t, svc)

	tokens, _, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "ada@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	rotated, err := svc.Refresh(context.Background(), tokens.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, rotated.AccessToken)
	assert.True(t, jwtService.IsTokenRevoked(tokens.RefreshToken))

	// The spent token cannot be exchanged again.
	_, err = svc.Refresh(context.Background(), tokens.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrTokenRevoked)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	svc, _ := newTestService(newStubUserRepo())
	registerTestUser(t, svc)

	tokens, _, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "ada@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), tokens.AccessToken)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestLogoutRevokesBothTokens(t *testing.T) {
	svc, jwtService := newTestService(newStubUserRepo())
	registerTestUser(t, svc)

	tokens, _, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "ada@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), tokens.AccessToken, tokens.RefreshToken))
	assert.True(t, jwtService.IsTokenRevoked(tokens.AccessToken))
	assert.True(t, jwtService.IsTokenRevoked(tokens.RefreshToken))
}
