package usecase

import (
	"context"
	"errors"
	"fmt"

	"shop/internal/domain/model"
	"shop/internal/metrics"
	repo "shop/internal/repository"
	auth "shop/internal/usecase/auth_usecase"
	"shop/internal/validator"
)

type OrderUsecase struct {
	tx     repo.TransactionManager
	orders repo.OrderRepository
	users  repo.UserRepository
	idGen  auth.IDGenerator
}

func NewOrderUsecase(tx repo.TransactionManager, orders repo.OrderRepository, users repo.UserRepository, idGen auth.IDGenerator) *OrderUsecase {
	return &OrderUsecase{tx: tx, orders: orders, users: users, idGen: idGen}
}

// amountが無ければ1
type OrderItemInput struct {
	ProductID string `json:"product_id" validate:"required"`
	Amount    *int   `json:"amount" validate:"omitempty,min=1,max=10000"`
}

type CreateOrderInput struct {
	Items       []OrderItemInput `json:"items" validate:"required,min=1,dive"`
	SendTo      *string          `json:"send_to" validate:"omitempty,min=1,max=200"`
	PaymentType *string          `json:"payment_type" validate:"omitempty,payment_type"`
}

// GET /user/:id/order
type UserWithOrders struct {
	model.User
	Orders []model.Order `json:"orders"`
}

// 注文作成
// 商品を全部確認してから書き込む。合計は明細を作ったあとに一度だけ計算する
func (u *OrderUsecase) CreateOrder(ctx context.Context, actor model.Principal, in CreateOrderInput) (model.Order, error) {
	if err := validator.Struct(in); err != nil {
		return model.Order{}, invalidInput(err)
	}

	var out model.Order
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		user, err := r.Users().FindByUUID(ctx, actor.UserID)
		if errors.Is(err, repo.ErrNotFound) {
			return notFound(MsgUserNotFound)
		}
		if err != nil {
			return internal(err)
		}

		//書き込む前に商品を全部そろえる
		items, err := priceItems(ctx, r, u.idGen, in.Items)
		if err != nil {
			return err
		}
		total, err := model.RecomputeTotal(items)
		if err != nil {
			return totalError(err)
		}

		order := model.Order{
			UUID:        u.idGen.NewID(),
			UserID:      user.ID,
			Status:      model.OrderStatusNew,
			SendTo:      user.Address,
			PaymentType: model.PaymentCash,
		}
		if in.SendTo != nil {
			order.SendTo = *in.SendTo
		}
		if in.PaymentType != nil {
			order.PaymentType = model.PaymentType(*in.PaymentType)
		}

		if err := r.Orders().Create(ctx, &order); err != nil {
			return internal(err)
		}
		if err := r.Items().CreateBulk(ctx, order.ID, items); err != nil {
			return internal(err)
		}
		if err := r.Orders().UpdateTotal(ctx, order.ID, total); err != nil {
			return internal(err)
		}

		created, err := r.Orders().FindByUUID(ctx, order.UUID)
		if err != nil {
			return internal(err)
		}
		out = created
		return nil
	})
	if err != nil {
		return model.Order{}, err
	}

	metrics.OrdersCreated.Inc()
	return out, nil
}

// 注文の持ち主チェックはmiddlewareで済んでいる
func (u *OrderUsecase) GetOrder(ctx context.Context, uuid string) (model.Order, error) {
	o, err := u.orders.FindByUUID(ctx, uuid)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Order{}, notFound(MsgOrderNotFound)
	}
	if err != nil {
		return model.Order{}, internal(err)
	}
	return o, nil
}

func (u *OrderUsecase) ListUserOrders(ctx context.Context, userUUID string) (UserWithOrders, error) {
	user, err := u.users.FindByUUID(ctx, userUUID)
	if errors.Is(err, repo.ErrNotFound) {
		return UserWithOrders{}, notFound(MsgUserNotFound)
	}
	if err != nil {
		return UserWithOrders{}, internal(err)
	}

	orders, err := u.orders.ListByUserID(ctx, user.ID)
	if err != nil {
		return UserWithOrders{}, internal(err)
	}
	return UserWithOrders{User: *user, Orders: orders}, nil
}

// 今の価格で明細を作る（保存はしない）
// 無い商品は404、販売停止中は400
func priceItems(ctx context.Context, r repo.TxRepos, idGen auth.IDGenerator, in []OrderItemInput) ([]model.Item, error) {
	items := make([]model.Item, 0, len(in))
	for _, it := range in {
		p, err := r.Products().FindByUUID(ctx, it.ProductID)
		if errors.Is(err, repo.ErrNotFound) {
			return nil, notFound(MsgProductNotFound)
		}
		if err != nil {
			return nil, internal(err)
		}
		if !p.Available {
			return nil, badRequest(fmt.Sprintf("The product %s is not available.", p.ShortName))
		}

		amount := 1
		if it.Amount != nil {
			amount = *it.Amount
		}
		if amount < 1 {
			return nil, badRequest("The amount must be at least 1.")
		}
		if amount > model.MaxItemAmount {
			return nil, badRequest(fmt.Sprintf("The amount must be at most %d.", model.MaxItemAmount))
		}
		totalItem, err := model.ItemTotal(p.Price, amount)
		if err != nil {
			return nil, totalError(err)
		}

		pid := p.ID
		items = append(items, model.Item{
			UUID:      idGen.NewID(),
			ProductID: &pid,
			Amount:    amount,
			TotalItem: totalItem,
		})
	}
	return items, nil
}
