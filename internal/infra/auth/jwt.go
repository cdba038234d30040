package auth

import (
	"time"

	authuc "shop/internal/usecase/auth_usecase"

	"github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"
)

// トークンに入れる中身
type tokenClaims struct {
	UserID       string `json:"id"`
	IsAdmin      bool   `json:"is_admin"`
	TokenVersion int    `json:"tv"`
	jwt.RegisteredClaims
}

// HS256のJWTを発行・検証する
type JWTService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTService(secret string, ttl time.Duration) *JWTService {
	return &JWTService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (s *JWTService) Issue(userID string, isAdmin bool, tokenVersion int, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(s.ttl)

	claims := tokenClaims{
		UserID:       userID,
		IsAdmin:      isAdmin,
		TokenVersion: tokenVersion,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "sign token")
	}
	return signed, expiresAt, nil
}

// 署名・アルゴリズム・期限を確認する
func (s *JWTService) Verify(raw string) (authuc.Claims, error) {
	if raw == "" {
		return authuc.Claims{}, authuc.ErrInvalidToken
	}

	var claims tokenClaims
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	token, err := parser.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil || token == nil || !token.Valid {
		return authuc.Claims{}, authuc.ErrInvalidToken
	}

	//期限のないトークンは受け付けない
	if claims.ExpiresAt == nil || !claims.ExpiresAt.After(s.now()) {
		return authuc.Claims{}, authuc.ErrInvalidToken
	}
	if claims.UserID == "" || claims.TokenVersion < 0 {
		return authuc.Claims{}, authuc.ErrInvalidToken
	}

	return authuc.Claims{
		UserID:       claims.UserID,
		IsAdmin:      claims.IsAdmin,
		TokenVersion: claims.TokenVersion,
	}, nil
}
