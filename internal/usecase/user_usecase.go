package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"shop/internal/domain/model"
	repo "shop/internal/repository"
	auth "shop/internal/usecase/auth_usecase"
	"shop/internal/validator"
)

const msgUserTaken = "The username or email is already registered."

type UserUsecase struct {
	users  repo.UserRepository
	tx     repo.TransactionManager
	hasher auth.PasswordHasher
}

func NewUserUsecase(users repo.UserRepository, tx repo.TransactionManager, hasher auth.PasswordHasher) *UserUsecase {
	return &UserUsecase{users: users, tx: tx, hasher: hasher}
}

// nilの項目は変えない
// is_adminは管理者だけが変えられる
type UpdateUserInput struct {
	Username *string `json:"username" validate:"omitempty,min=6,max=100"`
	Name     *string `json:"name" validate:"omitempty,min=1,max=100"`
	LastName *string `json:"last_name" validate:"omitempty,max=100"`
	Email    *string `json:"email" validate:"omitempty,min=6,max=100,email"`
	Phone    *string `json:"phone" validate:"omitempty,min=6,max=25"`
	Address  *string `json:"address" validate:"omitempty,min=6,max=200"`
	Password *string `json:"password" validate:"omitempty,min=8,max=200"`
	IsAdmin  *bool   `json:"is_admin"`
}

func (u *UserUsecase) ListUsers(ctx context.Context) ([]model.User, error) {
	users, err := u.users.List(ctx)
	if err != nil {
		return nil, internal(err)
	}
	return users, nil
}

func (u *UserUsecase) GetUser(ctx context.Context, uuid string) (model.User, error) {
	user, err := u.users.FindByUUID(ctx, uuid)
	if errors.Is(err, repo.ErrNotFound) {
		return model.User{}, notFound(MsgUserNotFound)
	}
	if err != nil {
		return model.User{}, internal(err)
	}
	return *user, nil
}

// パスワードか権限が変わったらtoken_versionを上げて古いトークンを無効にする
func (u *UserUsecase) UpdateUser(ctx context.Context, actor model.Principal, uuid string, in UpdateUserInput) (model.User, error) {
	//長さチェックの前に空白を落とす
	if in.Username != nil {
		v := strings.TrimSpace(*in.Username)
		in.Username = &v
	}
	if in.Email != nil {
		v := strings.TrimSpace(*in.Email)
		in.Email = &v
	}
	if err := validator.Struct(in); err != nil {
		return model.User{}, invalidInput(err)
	}
	if in.IsAdmin != nil && !actor.IsAdmin {
		return model.User{}, NewHTTPError(http.StatusForbidden, MsgAdminRequired)
	}

	var hashed string
	if in.Password != nil {
		h, err := u.hasher.Hash(*in.Password)
		if errors.Is(err, auth.ErrPasswordTooLong) {
			return model.User{}, badRequest("The password must be at most 200 characters long.")
		}
		if err != nil {
			return model.User{}, internal(err)
		}
		hashed = h
	}

	var out model.User
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		user, err := r.Users().FindByUUID(ctx, uuid)
		if errors.Is(err, repo.ErrNotFound) {
			return notFound(MsgUserNotFound)
		}
		if err != nil {
			return internal(err)
		}

		bump := false
		if in.Username != nil {
			user.Username = *in.Username
		}
		if in.Name != nil {
			user.Name = *in.Name
		}
		if in.LastName != nil {
			user.LastName = *in.LastName
		}
		if in.Email != nil {
			user.Email = *in.Email
		}
		if in.Phone != nil {
			user.Phone = *in.Phone
		}
		if in.Address != nil {
			user.Address = *in.Address
		}
		if hashed != "" {
			user.PasswordHash = hashed
			bump = true
		}
		if in.IsAdmin != nil && *in.IsAdmin != user.IsAdmin {
			user.IsAdmin = *in.IsAdmin
			bump = true
		}

		if err := r.Users().Update(ctx, user); err != nil {
			if errors.Is(err, repo.ErrConflict) {
				return conflict(msgUserTaken)
			}
			return internal(err)
		}
		if bump {
			if err := r.Users().IncrementTokenVersion(ctx, user.ID); err != nil {
				return internal(err)
			}
		}

		updated, err := r.Users().FindByUUID(ctx, uuid)
		if err != nil {
			return internal(err)
		}
		out = *updated
		return nil
	})
	if err != nil {
		return model.User{}, err
	}
	return out, nil
}

// 論理削除。注文は残る
func (u *UserUsecase) DeleteUser(ctx context.Context, actor model.Principal, uuid string) error {
	return u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		user, err := r.Users().FindByUUID(ctx, uuid)
		if errors.Is(err, repo.ErrNotFound) {
			return notFound(MsgUserNotFound)
		}
		if err != nil {
			return internal(err)
		}

		//削除後は見えなくなるので先に上げる
		if err := r.Users().IncrementTokenVersion(ctx, user.ID); err != nil {
			return internal(err)
		}
		if err := r.Users().Delete(ctx, user.ID); err != nil {
			return internal(err)
		}

		if actor.UserID == user.UUID {
			return nil
		}
		return writeAudit(ctx, r, actor, model.AuditActionDeleteUser, model.AuditResourceUser, user.UUID, user, nil)
	})
}
