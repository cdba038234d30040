package repository

import (
	"context"

	"shop/internal/domain/model"
)

// 一覧検索
// 両方あるときは category OR name の部分一致
type ProductListQuery struct {
	Category string
	Query    string
}

// 商品の永続化（保存・取得）だけを約束。
type ProductRepository interface {
	List(ctx context.Context, q ProductListQuery) ([]model.Product, error)
	//画像も一緒に返す
	FindByUUID(ctx context.Context, uuid string) (model.Product, error)

	Create(ctx context.Context, p *model.Product) error
	Update(ctx context.Context, p model.Product) error
	Delete(ctx context.Context, id int64) error
}
