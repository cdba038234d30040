package repository

import (
	"context"

	"shop/internal/domain/model"
)

type AdminOrderListFilter struct {
	//部分一致
	Status string
}

type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error

	//明細→商品→画像、ユーザーまで読み込む
	FindByUUID(ctx context.Context, uuid string) (model.Order, error)
	//行ロック（SELECT ... FOR UPDATE）して取る。Tx内で使う
	LockByUUID(ctx context.Context, uuid string) (model.Order, error)
	LockByID(ctx context.Context, id int64) (model.Order, error)
	//注文の持ち主のuuid
	FindOwnerUUID(ctx context.Context, orderUUID string) (string, error)

	ListByUserID(ctx context.Context, userID int64) ([]model.Order, error)
	//管理者用の注文一覧
	ListAdmin(ctx context.Context, f AdminOrderListFilter) ([]model.Order, error)

	//status / send_to / payment_type
	UpdateFields(ctx context.Context, order model.Order) error
	UpdateTotal(ctx context.Context, id int64, total float64) error
	Delete(ctx context.Context, id int64) error
}
