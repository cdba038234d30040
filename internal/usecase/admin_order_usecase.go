package usecase

import (
	"context"
	"errors"

	"shop/internal/domain/model"
	repo "shop/internal/repository"
	auth "shop/internal/usecase/auth_usecase"
	"shop/internal/validator"
)

// 管理者の注文操作
// 明細を触る処理は必ず注文の行ロックを取ってから合計を計算し直す
type AdminOrderUsecase struct {
	tx      repo.TransactionManager
	orders  repo.OrderRepository
	idGen   auth.IDGenerator
	sweeper OrphanSweeper
}

func NewAdminOrderUsecase(tx repo.TransactionManager, orders repo.OrderRepository, idGen auth.IDGenerator, sweeper OrphanSweeper) *AdminOrderUsecase {
	return &AdminOrderUsecase{tx: tx, orders: orders, idGen: idGen, sweeper: sweeper}
}

type UpdateOrderInput struct {
	Status      *string          `json:"status" validate:"omitempty,order_status"`
	SendTo      *string          `json:"send_to" validate:"omitempty,min=1,max=200"`
	PaymentType *string          `json:"payment_type" validate:"omitempty,payment_type"`
	Items       []OrderItemInput `json:"items" validate:"omitempty,dive"`
}

type UpdateItemInput struct {
	Amount *int `json:"amount" validate:"required,min=1,max=10000"`
}

// 注文一覧（statusは部分一致）
func (u *AdminOrderUsecase) List(ctx context.Context, f repo.AdminOrderListFilter) ([]model.Order, error) {
	if len(f.Status) > 20 {
		return nil, badRequest(MsgInvalidRequest)
	}
	orders, err := u.orders.ListAdmin(ctx, f)
	if err != nil {
		return nil, internal(err)
	}
	return orders, nil
}

// ステータス・配送先・支払い方法の更新と明細の追加
// 状態遷移の制限は無い（管理者が自由に直せる）
func (u *AdminOrderUsecase) UpdateOrder(ctx context.Context, actor model.Principal, uuid string, in UpdateOrderInput) (model.Order, error) {
	if err := validator.Struct(in); err != nil {
		return model.Order{}, invalidInput(err)
	}

	var out model.Order
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().LockByUUID(ctx, uuid)
		if errors.Is(err, repo.ErrNotFound) {
			return notFound(MsgOrderNotFound)
		}
		if err != nil {
			return internal(err)
		}
		before := orderSnapshot(o)

		if in.Status != nil {
			o.Status = model.OrderStatus(*in.Status)
		}
		if in.SendTo != nil {
			o.SendTo = *in.SendTo
		}
		if in.PaymentType != nil {
			o.PaymentType = model.PaymentType(*in.PaymentType)
		}
		if err := r.Orders().UpdateFields(ctx, o); err != nil {
			return internal(err)
		}

		//追加分は今の価格
		added, err := priceItems(ctx, r, u.idGen, in.Items)
		if err != nil {
			return err
		}
		if err := r.Items().CreateBulk(ctx, o.ID, added); err != nil {
			return internal(err)
		}

		total, err := recomputeOrderTotal(ctx, r, o.ID)
		if err != nil {
			return err
		}
		o.Total = total

		if err := writeAudit(ctx, r, actor, model.AuditActionUpdateOrder, model.AuditResourceOrder, o.UUID, before, orderSnapshot(o)); err != nil {
			return err
		}

		updated, err := r.Orders().FindByUUID(ctx, uuid)
		if err != nil {
			return internal(err)
		}
		out = updated
		return nil
	})
	if err != nil {
		return model.Order{}, err
	}
	return out, nil
}

// 数量の変更。商品が消えていたら404
func (u *AdminOrderUsecase) UpdateItem(ctx context.Context, actor model.Principal, uuid string, in UpdateItemInput) (model.Item, error) {
	if err := validator.Struct(in); err != nil {
		return model.Item{}, invalidInput(err)
	}
	amount := *in.Amount

	var out model.Item
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		it, err := r.Items().FindByUUID(ctx, uuid)
		if errors.Is(err, repo.ErrNotFound) {
			return notFound(MsgItemNotFound)
		}
		if err != nil {
			return internal(err)
		}
		if it.Product == nil {
			return notFound(MsgProductNotFound)
		}

		if _, err := lockOrder(ctx, r, it.OrderID); err != nil {
			return err
		}

		before := itemSnapshot(it)
		it.Amount = amount
		totalItem, err := model.ItemTotal(it.Product.Price, amount)
		if err != nil {
			return totalError(err)
		}
		it.TotalItem = totalItem
		if err := r.Items().UpdateAmount(ctx, it.ID, it.Amount, it.TotalItem); err != nil {
			return internal(err)
		}

		if _, err := recomputeOrderTotal(ctx, r, it.OrderID); err != nil {
			return err
		}

		if err := writeAudit(ctx, r, actor, model.AuditActionUpdateItem, model.AuditResourceItem, it.UUID, before, itemSnapshot(it)); err != nil {
			return err
		}

		updated, err := r.Items().FindByUUID(ctx, uuid)
		if err != nil {
			return internal(err)
		}
		out = updated
		return nil
	})
	if err != nil {
		return model.Item{}, err
	}
	return out, nil
}

func (u *AdminOrderUsecase) DeleteItem(ctx context.Context, actor model.Principal, uuid string) error {
	return u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		it, err := r.Items().FindByUUID(ctx, uuid)
		if errors.Is(err, repo.ErrNotFound) {
			return notFound(MsgItemNotFound)
		}
		if err != nil {
			return internal(err)
		}

		if _, err := lockOrder(ctx, r, it.OrderID); err != nil {
			return err
		}

		if err := r.Items().Delete(ctx, it.ID); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return notFound(MsgItemNotFound)
			}
			return internal(err)
		}
		if _, err := recomputeOrderTotal(ctx, r, it.OrderID); err != nil {
			return err
		}

		return writeAudit(ctx, r, actor, model.AuditActionDeleteItem, model.AuditResourceItem, it.UUID, itemSnapshot(it), nil)
	})
}

// 明細ごと消す。残った明細があればあとで掃除する
func (u *AdminOrderUsecase) DeleteOrder(ctx context.Context, actor model.Principal, uuid string) error {
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().LockByUUID(ctx, uuid)
		if errors.Is(err, repo.ErrNotFound) {
			return notFound(MsgOrderNotFound)
		}
		if err != nil {
			return internal(err)
		}

		if err := r.Items().DeleteByOrderID(ctx, o.ID); err != nil {
			return internal(err)
		}
		if err := r.Orders().Delete(ctx, o.ID); err != nil {
			return internal(err)
		}

		return writeAudit(ctx, r, actor, model.AuditActionDeleteOrder, model.AuditResourceOrder, o.UUID, orderSnapshot(o), nil)
	})
	if err != nil {
		return err
	}

	u.sweeper.SweepItems()
	return nil
}

func lockOrder(ctx context.Context, r repo.TxRepos, orderID int64) (model.Order, error) {
	o, err := r.Orders().LockByID(ctx, orderID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Order{}, notFound(MsgOrderNotFound)
	}
	if err != nil {
		return model.Order{}, internal(err)
	}
	return o, nil
}

// 今ぶら下がっている明細から合計を出して保存する
func recomputeOrderTotal(ctx context.Context, r repo.TxRepos, orderID int64) (float64, error) {
	items, err := r.Items().ListByOrderID(ctx, orderID)
	if err != nil {
		return 0, internal(err)
	}
	total, err := model.RecomputeTotal(items)
	if err != nil {
		return 0, totalError(err)
	}
	if err := r.Orders().UpdateTotal(ctx, orderID, total); err != nil {
		return 0, internal(err)
	}
	return total, nil
}

type orderAudit struct {
	Status      model.OrderStatus `json:"status"`
	SendTo      string            `json:"send_to"`
	PaymentType model.PaymentType `json:"payment_type"`
	Total       float64           `json:"total"`
}

func orderSnapshot(o model.Order) orderAudit {
	return orderAudit{Status: o.Status, SendTo: o.SendTo, PaymentType: o.PaymentType, Total: o.Total}
}

type itemAudit struct {
	Amount    int     `json:"amount"`
	TotalItem float64 `json:"total_item"`
}

func itemSnapshot(it model.Item) itemAudit {
	return itemAudit{Amount: it.Amount, TotalItem: it.TotalItem}
}
