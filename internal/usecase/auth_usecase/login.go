package auth

import (
	"context"
	"errors"
	"strings"

	"shop/internal/repository"
)

// handlerからusecaseに渡す入力
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// メールかパスワードが空
var ErrMissingCredentials = errors.New("missing credentials")

// メールまたはパスワードが違う（どちらが違うかは区別しない）
var ErrInvalidCredentials = errors.New("invalid credentials")

type LoginUsecase struct {
	userRepo repository.UserRepository
	verifier PasswordVerifier
	issuer   TokenIssuer
	clock    Clock
}

func NewLoginUsecase(
	userRepo repository.UserRepository,
	verifier PasswordVerifier,
	issuer TokenIssuer,
	clock Clock,
) *LoginUsecase {
	return &LoginUsecase{
		userRepo: userRepo,
		verifier: verifier,
		issuer:   issuer,
		clock:    clock,
	}
}

// ログイン処理を実行する
func (u *LoginUsecase) Execute(ctx context.Context, in LoginInput) (AuthOutput, error) {
	var out AuthOutput

	email := strings.TrimSpace(in.Email)
	if email == "" || in.Password == "" {
		return out, ErrMissingCredentials
	}

	//emailでユーザー取得
	user, err := u.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return out, ErrInvalidCredentials
		}
		return out, err
	}

	//パスワード照合
	if ok := u.verifier.Verify(in.Password, user.PasswordHash); !ok {
		return out, ErrInvalidCredentials
	}

	//AccessToken発行
	now := u.clock.Now()
	token, exp, err := u.issuer.Issue(user.UUID, user.IsAdmin, user.TokenVersion, now)
	if err != nil {
		return out, err
	}

	out.Token = token
	out.ExpiresAt = exp
	out.User = *user
	return out, nil
}
