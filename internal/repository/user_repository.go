package repository

import (
	"context"

	"shop/internal/domain/model"
)

// 保存・取得を約束
// 見つからないときはErrNotFound、一意制約違反はErrConflictを返す
type UserRepository interface {
	//新規ユーザー作成
	Create(ctx context.Context, user *model.User) error
	//uuidからユーザーを1件取得する。
	FindByUUID(ctx context.Context, uuid string) (*model.User, error)
	//メールからユーザーを一件取得する。
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	//全件（管理者用）
	List(ctx context.Context) ([]model.User, error)
	//ユーザー情報の更新
	Update(ctx context.Context, user *model.User) error
	//トークンのバージョンを＋１
	IncrementTokenVersion(ctx context.Context, id int64) error
	//論理削除
	Delete(ctx context.Context, id int64) error
}
