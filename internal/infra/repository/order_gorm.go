package repository

import (
	"context"
	"strings"

	"shop/internal/domain/model"
	repo "shop/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

// 明細→商品→画像、ユーザー
func withOrderGraph(db *gorm.DB) *gorm.DB {
	return db.
		Preload("User").
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("items.id asc") }).
		Preload("Items.Product").
		Preload("Items.Product.Images", imagesByID)
}

func (r *OrderGormRepository) Create(ctx context.Context, order *model.Order) error {
	return mapErr(r.db.WithContext(ctx).Omit(clause.Associations).Create(order).Error, "create order")
}

func (r *OrderGormRepository) FindByUUID(ctx context.Context, uuid string) (model.Order, error) {
	var o model.Order
	err := withOrderGraph(r.db.WithContext(ctx)).Where("uuid = ?", uuid).First(&o).Error
	if err != nil {
		return model.Order{}, mapErr(err, "find order")
	}
	return o, nil
}

// 行ロックで取得（SELECT ... FOR UPDATE）
func (r *OrderGormRepository) LockByUUID(ctx context.Context, uuid string) (model.Order, error) {
	return r.lock(ctx, "uuid = ?", uuid)
}

func (r *OrderGormRepository) LockByID(ctx context.Context, id int64) (model.Order, error) {
	return r.lock(ctx, "id = ?", id)
}

func (r *OrderGormRepository) lock(ctx context.Context, cond string, arg any) (model.Order, error) {
	var o model.Order
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(cond, arg).
		First(&o).Error
	if err != nil {
		return model.Order{}, mapErr(err, "lock order")
	}
	return o, nil
}

// 注文の持ち主のuuid（持ち主が論理削除されていても返す）
func (r *OrderGormRepository) FindOwnerUUID(ctx context.Context, orderUUID string) (string, error) {
	var owners []string
	err := r.db.WithContext(ctx).
		Table("orders").
		Joins("JOIN users ON users.id = orders.user_id").
		Where("orders.uuid = ?", orderUUID).
		Limit(1).
		Pluck("users.uuid", &owners).Error
	if err != nil {
		return "", mapErr(err, "find order owner")
	}
	if len(owners) == 0 {
		return "", repo.ErrNotFound
	}
	return owners[0], nil
}

func (r *OrderGormRepository) ListByUserID(ctx context.Context, userID int64) ([]model.Order, error) {
	orders := []model.Order{}
	err := withOrderGraph(r.db.WithContext(ctx)).
		Where("user_id = ?", userID).
		Order("id asc").
		Find(&orders).Error
	if err != nil {
		return nil, mapErr(err, "list user orders")
	}
	return orders, nil
}

func (r *OrderGormRepository) ListAdmin(ctx context.Context, f repo.AdminOrderListFilter) ([]model.Order, error) {
	q := withOrderGraph(r.db.WithContext(ctx)).Model(&model.Order{})

	//status 部分一致
	if s := strings.ToLower(strings.TrimSpace(f.Status)); s != "" {
		q = q.Where(`LOWER(status) LIKE ? ESCAPE '\'`, containsPattern(s))
	}

	orders := []model.Order{}
	if err := q.Order("id asc").Find(&orders).Error; err != nil {
		return nil, mapErr(err, "list orders")
	}
	return orders, nil
}

func (r *OrderGormRepository) UpdateFields(ctx context.Context, order model.Order) error {
	res := r.db.WithContext(ctx).Model(&model.Order{}).Where("id = ?", order.ID).Updates(map[string]interface{}{
		"status":       order.Status,
		"send_to":      order.SendTo,
		"payment_type": order.PaymentType,
	})
	if res.Error != nil {
		return mapErr(res.Error, "update order")
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *OrderGormRepository) UpdateTotal(ctx context.Context, id int64, total float64) error {
	res := r.db.WithContext(ctx).Model(&model.Order{}).Where("id = ?", id).Update("total", total)
	if res.Error != nil {
		return mapErr(res.Error, "update order total")
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *OrderGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Order{}, id)
	if res.Error != nil {
		return mapErr(res.Error, "delete order")
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
