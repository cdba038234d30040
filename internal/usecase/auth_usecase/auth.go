package auth

import (
	"errors"
	"time"
)

// トークンが無い・壊れている・期限切れ・署名が違う
var ErrInvalidToken = errors.New("invalid token")

// トークンの中身
type Claims struct {
	UserID       string
	IsAdmin      bool
	TokenVersion int
}

// JWTを発行する約束
type TokenIssuer interface {
	Issue(userID string, isAdmin bool, tokenVersion int, now time.Time) (token string, expiresAt time.Time, err error)
}

// JWTを検証する約束（失敗はErrInvalidToken）
type TokenVerifier interface {
	Verify(token string) (Claims, error)
}

// 平文パスワードからハッシュへ。
type PasswordHasher interface {
	Hash(plain string) (string, error)
}

// 入力パスワードと保存したハッシュを比べる約束
type PasswordVerifier interface {
	Verify(plain string, hashed string) bool
}

// UUID 等のIDを作る約束
type IDGenerator interface {
	NewID() string
}

// 現在の時間
type Clock interface {
	Now() time.Time
}
