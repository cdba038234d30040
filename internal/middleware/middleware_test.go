package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"shop/internal/domain/model"
	"shop/internal/repository"
	auth "shop/internal/usecase/auth_usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// =====================
// Mock: UserRepository（middleware用）
// =====================

type MockUserRepoForMiddleware struct {
	mock.Mock
}

func (m *MockUserRepoForMiddleware) Create(ctx context.Context, user *model.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepoForMiddleware) FindByUUID(ctx context.Context, uuid string) (*model.User, error) {
	args := m.Called(ctx, uuid)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *MockUserRepoForMiddleware) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *MockUserRepoForMiddleware) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *MockUserRepoForMiddleware) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	u, _ := args.Get(0).([]model.User)
	return u, args.Error(1)
}

func (m *MockUserRepoForMiddleware) Update(ctx context.Context, user *model.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepoForMiddleware) IncrementTokenVersion(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockUserRepoForMiddleware) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

var _ repository.UserRepository = (*MockUserRepoForMiddleware)(nil)

// トークン文字列→Claims の表
type stubVerifier map[string]auth.Claims

func (s stubVerifier) Verify(token string) (auth.Claims, error) {
	c, ok := s[token]
	if !ok {
		return auth.Claims{}, auth.ErrInvalidToken
	}
	return c, nil
}

type stubOwners map[string]string

func (s stubOwners) FindOwnerUUID(ctx context.Context, orderUUID string) (string, error) {
	if orderUUID == "broken" {
		return "", errors.New("db down")
	}
	owner, ok := s[orderUUID]
	if !ok {
		return "", repository.ErrNotFound
	}
	return owner, nil
}

// =====================
// helper
// =====================

var verifier = stubVerifier{
	"user-token":  {UserID: "u1", TokenVersion: 0},
	"admin-token": {UserID: "admin", IsAdmin: true, TokenVersion: 2},
	"stale-token": {UserID: "u1", TokenVersion: 5},
}

func okHandler(c echo.Context) error {
	p, _ := PrincipalFrom(c)
	return c.JSON(http.StatusOK, map[string]any{"user_id": p.UserID, "is_admin": p.IsAdmin})
}

func serve(t *testing.T, method, path, route, token string, mw ...echo.MiddlewareFunc) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	e.Add(method, route, okHandler, mw...)

	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeErr(t *testing.T, rec *httptest.ResponseRecorder) errorResponse {
	t.Helper()
	var body errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

// =====================
// AuthJWT
// =====================

func TestAuthJWT(t *testing.T) {
	cases := []struct {
		name   string
		header string
		status int
	}{
		{"no header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"unknown token", "Bearer nope", http.StatusUnauthorized},
		{"lowercase scheme", "bearer user-token", http.StatusOK},
		{"valid", "Bearer user-token", http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			e.GET("/x", okHandler, AuthJWT(verifier))
			req := httptest.NewRequest(http.MethodGet, "/x", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tc.status, rec.Code)
			if tc.status == http.StatusUnauthorized {
				body := decodeErr(t, rec)
				assert.Equal(t, "Invalid token", body.Error)
				assert.Equal(t, http.StatusUnauthorized, body.Status)
			}
		})
	}
}

// =====================
// TokenVersionGuard
// =====================

func TestTokenVersionGuard(t *testing.T) {
	userRepo := new(MockUserRepoForMiddleware)
	userRepo.On("FindByUUID", mock.Anything, "u1").Return(&model.User{UUID: "u1", TokenVersion: 0}, nil)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mw := []echo.MiddlewareFunc{AuthJWT(verifier), TokenVersionGuard(userRepo, logger)}

	rec := serve(t, http.MethodGet, "/x", "/x", "user-token", mw...)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(t, http.MethodGet, "/x", "/x", "stale-token", mw...)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestTokenVersionGuard_DeletedUser(t *testing.T) {
	userRepo := new(MockUserRepoForMiddleware)
	userRepo.On("FindByUUID", mock.Anything, "u1").Return(nil, repository.ErrNotFound)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	rec := serve(t, http.MethodGet, "/x", "/x", "user-token", AuthJWT(verifier), TokenVersionGuard(userRepo, logger))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// DBが落ちているときはトークンのせいにしない
func TestTokenVersionGuard_LookupFails(t *testing.T) {
	userRepo := new(MockUserRepoForMiddleware)
	userRepo.On("FindByUUID", mock.Anything, "u1").Return(nil, errors.New("db down"))

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	rec := serve(t, http.MethodGet, "/x", "/x", "user-token", AuthJWT(verifier), TokenVersionGuard(userRepo, logger))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeErr(t, rec)
	assert.Equal(t, "A problem has occurred with the server.", body.Error)
	assert.Contains(t, buf.String(), "db down")
	assert.Contains(t, buf.String(), "token version lookup failed")
}

// =====================
// AdminRoleGuard / SelfOrAdmin
// =====================

func TestAdminRoleGuard(t *testing.T) {
	rec := serve(t, http.MethodGet, "/x", "/x", "user-token", AuthJWT(verifier), AdminRoleGuard())
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Administrator permissions are required to perform this action.", decodeErr(t, rec).Error)

	rec = serve(t, http.MethodGet, "/x", "/x", "admin-token", AuthJWT(verifier), AdminRoleGuard())
	assert.Equal(t, http.StatusOK, rec.Code)

	// AuthJWTが無いと通さない
	rec = serve(t, http.MethodGet, "/x", "/x", "", AdminRoleGuard())
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSelfOrAdmin(t *testing.T) {
	mw := []echo.MiddlewareFunc{AuthJWT(verifier), SelfOrAdmin("id")}

	assert.Equal(t, http.StatusOK, serve(t, http.MethodGet, "/user/u1", "/user/:id", "user-token", mw...).Code)
	assert.Equal(t, http.StatusForbidden, serve(t, http.MethodGet, "/user/u2", "/user/:id", "user-token", mw...).Code)
	assert.Equal(t, http.StatusOK, serve(t, http.MethodGet, "/user/u2", "/user/:id", "admin-token", mw...).Code)
}

// =====================
// OrderOwnerOrAdmin
// =====================

func TestOrderOwnerOrAdmin(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	owners := stubOwners{"o1": "u1", "o2": "someone-else"}
	mw := []echo.MiddlewareFunc{AuthJWT(verifier), OrderOwnerOrAdmin("id", owners, logger)}

	cases := []struct {
		name   string
		path   string
		token  string
		status int
	}{
		{"owner", "/order/o1", "user-token", http.StatusOK},
		{"not owner", "/order/o2", "user-token", http.StatusForbidden},
		{"missing", "/order/o9", "user-token", http.StatusNotFound},
		{"lookup fails", "/order/broken", "user-token", http.StatusInternalServerError},
		{"admin skips lookup", "/order/broken", "admin-token", http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := serve(t, http.MethodGet, tc.path, "/order/:id", tc.token, mw...)
			assert.Equal(t, tc.status, rec.Code)
		})
	}
}

// =====================
// RequestLogger
// =====================

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	e := echo.New()
	e.GET("/x", func(c echo.Context) error { return c.NoContent(http.StatusTeapot) }, RequestLogger(logger))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x?a=1", nil))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "http request", entry["msg"])
	assert.Equal(t, "WARN", entry["level"])
	assert.EqualValues(t, http.StatusTeapot, entry["status"])
	assert.Equal(t, "a=1", entry["query"])
}
