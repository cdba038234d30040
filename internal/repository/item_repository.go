package repository

import (
	"context"

	"shop/internal/domain/model"
)

type ItemRepository interface {
	CreateBulk(ctx context.Context, orderID int64, items []model.Item) error
	ListByOrderID(ctx context.Context, orderID int64) ([]model.Item, error)
	//商品も一緒に返す（商品が消えていればProductはnil）
	FindByUUID(ctx context.Context, uuid string) (model.Item, error)
	UpdateAmount(ctx context.Context, id int64, amount int, totalItem float64) error
	Delete(ctx context.Context, id int64) error
	DeleteByOrderID(ctx context.Context, orderID int64) error

	//商品削除時に明細から商品を外す（価格のスナップショットは残る）
	DetachProduct(ctx context.Context, productID int64) error
	//親の注文が無い明細を消して件数を返す
	DeleteOrphans(ctx context.Context) (int64, error)
}
