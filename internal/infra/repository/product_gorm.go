package repository

import (
	"context"
	"strings"

	"shop/internal/domain/model"
	repo "shop/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

// 画像は古い順
func imagesByID(db *gorm.DB) *gorm.DB {
	return db.Order("images.id asc")
}

// category / name の部分一致（大文字小文字は区別しない）
// 両方あるときはOR、どちらも無ければ全件
func (r *ProductGormRepository) List(ctx context.Context, q repo.ProductListQuery) ([]model.Product, error) {
	products := []model.Product{}

	tx := r.db.WithContext(ctx).Model(&model.Product{}).Preload("Images", imagesByID)

	category := strings.ToLower(strings.TrimSpace(q.Category))
	name := strings.ToLower(strings.TrimSpace(q.Query))
	switch {
	case category != "" && name != "":
		tx = tx.Where(`LOWER(category) LIKE ? ESCAPE '\' OR LOWER(name) LIKE ? ESCAPE '\'`, containsPattern(category), containsPattern(name))
	case category != "":
		tx = tx.Where(`LOWER(category) LIKE ? ESCAPE '\'`, containsPattern(category))
	case name != "":
		tx = tx.Where(`LOWER(name) LIKE ? ESCAPE '\'`, containsPattern(name))
	}

	if err := tx.Order("id asc").Find(&products).Error; err != nil {
		return nil, mapErr(err, "list products")
	}
	return products, nil
}

// uuidで商品を取得
func (r *ProductGormRepository) FindByUUID(ctx context.Context, uuid string) (model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).Preload("Images", imagesByID).Where("uuid = ?", uuid).First(&p).Error
	if err != nil {
		return model.Product{}, mapErr(err, "find product")
	}
	return p, nil
}

// 商品の作成（画像はImageRepositoryで別に作る）
func (r *ProductGormRepository) Create(ctx context.Context, p *model.Product) error {
	return mapErr(r.db.WithContext(ctx).Omit(clause.Associations).Create(p).Error, "create product")
}

// 商品の更新
func (r *ProductGormRepository) Update(ctx context.Context, p model.Product) error {
	res := r.db.WithContext(ctx).Model(&model.Product{}).Where("id = ?", p.ID).Updates(map[string]interface{}{
		"short_name":  p.ShortName,
		"name":        p.Name,
		"description": p.Description,
		"category":    p.Category,
		"price":       p.Price,
		"available":   p.Available,
	})
	if res.Error != nil {
		return mapErr(res.Error, "update product")
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 商品削除
func (r *ProductGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Product{}, id)
	if res.Error != nil {
		return mapErr(res.Error, "delete product")
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
