package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"shop/internal/domain/model"
	"shop/internal/repository"
	"shop/internal/validator"
)

// 会員登録の入力
// is_adminは受け取らない（管理者はCLIで作る）
type RegisterUserInput struct {
	Username string `json:"username" validate:"required,min=6,max=100"`
	Name     string `json:"name" validate:"required,min=1,max=100"`
	LastName string `json:"last_name" validate:"max=100"`
	Email    string `json:"email" validate:"required,min=6,max=100,email"`
	Phone    string `json:"phone" validate:"required,min=6,max=25"`
	Address  string `json:"address" validate:"required,min=6,max=200"`
	Password string `json:"password" validate:"required,min=8,max=200"`
}

// 会員登録・ログインの出力
// handlerがJSONにして返す
type AuthOutput struct {
	Token     string     `json:"token"`
	ExpiresAt time.Time  `json:"expires_at"`
	User      model.User `json:"result"`
}

const msgPasswordTooLong = "The password must be at most 200 characters long."

var (
	// 競合
	ErrUsernameAlreadyExists = errors.New("username already exists")
	ErrEmailAlreadyExists    = errors.New("email already exists")
	// 保存時の一意制約違反（同時登録など）
	ErrUserAlreadyExists = errors.New("user already exists")
)

// RegisterUserUsecaseは会員登録の処理。
type RegisterUserUsecase struct {
	userRepo repository.UserRepository
	hasher   PasswordHasher
	issuer   TokenIssuer
	idGen    IDGenerator
	clock    Clock
}

// DI
func NewRegisterUserUsecase(
	userRepo repository.UserRepository,
	hasher PasswordHasher,
	issuer TokenIssuer,
	idGen IDGenerator,
	clock Clock,
) *RegisterUserUsecase {
	return &RegisterUserUsecase{
		userRepo: userRepo,
		hasher:   hasher,
		issuer:   issuer,
		idGen:    idGen,
		clock:    clock,
	}
}

// 会員登録実行
func (u *RegisterUserUsecase) Execute(ctx context.Context, in RegisterUserInput) (AuthOutput, error) {
	var out AuthOutput

	user, err := u.create(ctx, in, false)
	if err != nil {
		return out, err
	}

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

// 管理者を作る（api create-adminから呼ぶ）
func (u *RegisterUserUsecase) CreateAdmin(ctx context.Context, in RegisterUserInput) (model.User, error) {
	user, err := u.create(ctx, in, true)
	if err != nil {
		return model.User{}, err
	}
	return *user, nil
}

func (u *RegisterUserUsecase) create(ctx context.Context, in RegisterUserInput, isAdmin bool) (*model.User, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)

	//形式・長さのチェック
	if err := validator.Struct(in); err != nil {
		return nil, err
	}

	//重複チェック（最後は一意制約でも守る）
	if _, err := u.userRepo.FindByUsername(ctx, in.Username); err == nil {
		return nil, ErrUsernameAlreadyExists
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if _, err := u.userRepo.FindByEmail(ctx, in.Email); err == nil {
		return nil, ErrEmailAlreadyExists
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	// パスワードをハッシュ化
	hashed, err := u.hasher.Hash(in.Password)
	if errors.Is(err, ErrPasswordTooLong) {
		return nil, &validator.Error{Field: "password", Message: msgPasswordTooLong}
	}
	if err != nil {
		return nil, err
	}

	user := &model.User{
		UUID:         u.idGen.NewID(),
		Username:     in.Username,
		Name:         in.Name,
		LastName:     in.LastName,
		Email:        in.Email,
		Phone:        in.Phone,
		Address:      in.Address,
		PasswordHash: hashed, // ハッシュを保存（平文は保存しない）
		IsAdmin:      isAdmin,
	}

	// DBへ保存
	if err := u.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, ErrUserAlreadyExists
		}
		return nil, err
	}
	return user, nil
}
