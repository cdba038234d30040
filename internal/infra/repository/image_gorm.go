package repository

import (
	"context"

	"shop/internal/domain/model"
	repo "shop/internal/repository"

	"gorm.io/gorm"
)

type ImageGormRepository struct {
	db *gorm.DB
}

func NewImageGormRepository(db *gorm.DB) *ImageGormRepository {
	return &ImageGormRepository{db: db}
}

func (r *ImageGormRepository) CreateBulk(ctx context.Context, productID int64, images []model.Image) error {
	if len(images) == 0 {
		return nil
	}
	for i := range images {
		pid := productID
		images[i].ProductID = &pid
	}
	return mapErr(r.db.WithContext(ctx).Create(&images).Error, "create images")
}

func (r *ImageGormRepository) FindByUUID(ctx context.Context, uuid string) (model.Image, error) {
	var img model.Image
	if err := r.db.WithContext(ctx).Where("uuid = ?", uuid).First(&img).Error; err != nil {
		return model.Image{}, mapErr(err, "find image")
	}
	return img, nil
}

func (r *ImageGormRepository) UpdatePath(ctx context.Context, id int64, path string) error {
	res := r.db.WithContext(ctx).Model(&model.Image{}).Where("id = ?", id).Update("path", path)
	if res.Error != nil {
		return mapErr(res.Error, "update image")
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *ImageGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Image{}, id)
	if res.Error != nil {
		return mapErr(res.Error, "delete image")
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *ImageGormRepository) DetachByProductID(ctx context.Context, productID int64) error {
	err := r.db.WithContext(ctx).Model(&model.Image{}).
		Where("product_id = ?", productID).
		Update("product_id", nil).Error
	return mapErr(err, "detach images")
}

func (r *ImageGormRepository) DeleteOrphans(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).Where("product_id IS NULL").Delete(&model.Image{})
	if res.Error != nil {
		return 0, mapErr(res.Error, "delete orphan images")
	}
	return res.RowsAffected, nil
}
