package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"shop/internal/domain/model"
	"shop/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newLoginUC(userRepo *MockUserRepository, issuer *MockTokenIssuer) *LoginUsecase {
	return NewLoginUsecase(userRepo, fakeVerifier{}, issuer, fixedClock(testNow))
}

func TestLogin_Success(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)
	issuer := new(MockTokenIssuer)
	exp := testNow.Add(time.Hour)

	user := &model.User{UUID: "u1", Email: "a@example.com", PasswordHash: "hashed:secret123", IsAdmin: true, TokenVersion: 3}
	userRepo.On("FindByEmail", ctx, "a@example.com").Return(user, nil).Once()
	issuer.On("Issue", "u1", true, 3, testNow).Return("signed", exp, nil).Once()

	out, err := newLoginUC(userRepo, issuer).Execute(ctx, LoginInput{Email: " a@example.com ", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "signed", out.Token)
	assert.Equal(t, "u1", out.User.UUID)
	issuer.AssertExpectations(t)
}

func TestLogin_Failures(t *testing.T) {
	ctx := context.Background()

	t.Run("missing", func(t *testing.T) {
		_, err := newLoginUC(new(MockUserRepository), new(MockTokenIssuer)).Execute(ctx, LoginInput{Email: "a@example.com"})
		assert.ErrorIs(t, err, ErrMissingCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("FindByEmail", ctx, "a@example.com").Return(nil, repository.ErrNotFound).Once()

		_, err := newLoginUC(userRepo, new(MockTokenIssuer)).Execute(ctx, LoginInput{Email: "a@example.com", Password: "x"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		issuer := new(MockTokenIssuer)
		userRepo.On("FindByEmail", ctx, "a@example.com").Return(&model.User{PasswordHash: "hashed:right"}, nil).Once()

		_, err := newLoginUC(userRepo, issuer).Execute(ctx, LoginInput{Email: "a@example.com", Password: "wrong"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		issuer.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("db error", func(t *testing.T) {
		boom := errors.New("boom")
		userRepo := new(MockUserRepository)
		userRepo.On("FindByEmail", ctx, "a@example.com").Return(nil, boom).Once()

		_, err := newLoginUC(userRepo, new(MockTokenIssuer)).Execute(ctx, LoginInput{Email: "a@example.com", Password: "x"})
		assert.ErrorIs(t, err, boom)
	})
}

func TestBcrypt_RoundTrip(t *testing.T) {
	h := NewBcryptPasswordHasher(4)
	hashed, err := h.Hash("password123")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hashed)

	v := NewBcryptPasswordVerifier()
	assert.True(t, v.Verify("password123", hashed))
	assert.False(t, v.Verify("password124", hashed))
}
