package repository

import (
	"context"

	"shop/internal/domain/model"
	repo "shop/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ItemGormRepository struct {
	db *gorm.DB
}

func NewItemGormRepository(db *gorm.DB) *ItemGormRepository {
	return &ItemGormRepository{db: db}
}

func (r *ItemGormRepository) CreateBulk(ctx context.Context, orderID int64, items []model.Item) error {
	if len(items) == 0 {
		return nil
	}
	for i := range items {
		items[i].OrderID = orderID
	}
	return mapErr(r.db.WithContext(ctx).Omit(clause.Associations).Create(&items).Error, "create items")
}

func (r *ItemGormRepository) ListByOrderID(ctx context.Context, orderID int64) ([]model.Item, error) {
	items := []model.Item{}
	err := r.db.WithContext(ctx).Where("order_id = ?", orderID).Order("id asc").Find(&items).Error
	if err != nil {
		return nil, mapErr(err, "list items")
	}
	return items, nil
}

func (r *ItemGormRepository) FindByUUID(ctx context.Context, uuid string) (model.Item, error) {
	var it model.Item
	if err := r.db.WithContext(ctx).Preload("Product").Where("uuid = ?", uuid).First(&it).Error; err != nil {
		return model.Item{}, mapErr(err, "find item")
	}
	return it, nil
}

func (r *ItemGormRepository) UpdateAmount(ctx context.Context, id int64, amount int, totalItem float64) error {
	res := r.db.WithContext(ctx).Model(&model.Item{}).Where("id = ?", id).Updates(map[string]interface{}{
		"amount":     amount,
		"total_item": totalItem,
	})
	if res.Error != nil {
		return mapErr(res.Error, "update item")
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *ItemGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Item{}, id)
	if res.Error != nil {
		return mapErr(res.Error, "delete item")
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *ItemGormRepository) DeleteByOrderID(ctx context.Context, orderID int64) error {
	return mapErr(r.db.WithContext(ctx).Where("order_id = ?", orderID).Delete(&model.Item{}).Error, "delete items")
}

func (r *ItemGormRepository) DetachProduct(ctx context.Context, productID int64) error {
	err := r.db.WithContext(ctx).Model(&model.Item{}).
		Where("product_id = ?", productID).
		Update("product_id", nil).Error
	return mapErr(err, "detach items")
}

// 親の注文が消えた明細
func (r *ItemGormRepository) DeleteOrphans(ctx context.Context) (int64, error) {
	db := r.db.WithContext(ctx)
	res := db.Where("order_id NOT IN (?)", db.Model(&model.Order{}).Select("id")).Delete(&model.Item{})
	if res.Error != nil {
		return 0, mapErr(res.Error, "delete orphan items")
	}
	return res.RowsAffected, nil
}
