package repository

import (
	"context"

	"shop/internal/domain/model"
)

type ImageRepository interface {
	CreateBulk(ctx context.Context, productID int64, images []model.Image) error
	FindByUUID(ctx context.Context, uuid string) (model.Image, error)
	UpdatePath(ctx context.Context, id int64, path string) error
	Delete(ctx context.Context, id int64) error

	//商品から切り離す（product_id = NULL）
	DetachByProductID(ctx context.Context, productID int64) error
	//product_idがNULLの画像を消して件数を返す
	DeleteOrphans(ctx context.Context) (int64, error)
}
