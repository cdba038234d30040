package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"shop/internal/domain/model"
	repo "shop/internal/repository"
	auth "shop/internal/usecase/auth_usecase"
	"shop/internal/validator"
)

const msgShortNameTaken = "A product with that short_name already exists."

type ProductUsecase struct {
	productRepo repo.ProductRepository
	imageRepo   repo.ImageRepository
	tx          repo.TransactionManager
	idGen       auth.IDGenerator
	sweeper     OrphanSweeper
}

// DI
func NewProductUsecase(
	productRepo repo.ProductRepository,
	imageRepo repo.ImageRepository,
	tx repo.TransactionManager,
	idGen auth.IDGenerator,
	sweeper OrphanSweeper,
) *ProductUsecase {
	return &ProductUsecase{
		productRepo: productRepo,
		imageRepo:   imageRepo,
		tx:          tx,
		idGen:       idGen,
		sweeper:     sweeper,
	}
}

type ImageInput struct {
	Path string `json:"path" validate:"required,min=1,max=100"`
}

type CreateProductInput struct {
	ShortName   string       `json:"short_name" validate:"required,min=1,max=50"`
	Name        string       `json:"name" validate:"required,min=1,max=200"`
	Description string       `json:"description" validate:"max=300"`
	Category    string       `json:"category" validate:"required,min=1,max=100"`
	Price       float64      `json:"price" validate:"gte=1,max=99999999.99"`
	Available   *bool        `json:"available"`
	Images      []ImageInput `json:"images" validate:"omitempty,dive"`
}

// nilの項目は変えない。imagesは追加
type UpdateProductInput struct {
	ShortName   *string      `json:"short_name" validate:"omitempty,min=1,max=50"`
	Name        *string      `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string      `json:"description" validate:"omitempty,max=300"`
	Category    *string      `json:"category" validate:"omitempty,min=1,max=100"`
	Price       *float64     `json:"price" validate:"omitempty,gte=1,max=99999999.99"`
	Available   *bool        `json:"available"`
	Images      []ImageInput `json:"images" validate:"omitempty,dive"`
}

// GET /product?category=&query=
func (u *ProductUsecase) ListProducts(ctx context.Context, q repo.ProductListQuery) ([]model.Product, error) {
	if len(q.Category) > 100 || len(q.Query) > 200 {
		return nil, badRequest(MsgInvalidRequest)
	}
	items, err := u.productRepo.List(ctx, q)
	if err != nil {
		return nil, internal(err)
	}
	return items, nil
}

func (u *ProductUsecase) GetProduct(ctx context.Context, uuid string) (model.Product, error) {
	p, err := u.productRepo.FindByUUID(ctx, uuid)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, notFound(MsgProductNotFound)
	}
	if err != nil {
		return model.Product{}, internal(err)
	}
	return p, nil
}

// 商品と画像を1つのトランザクションで作る
func (u *ProductUsecase) CreateProduct(ctx context.Context, in CreateProductInput) (model.Product, error) {
	in.ShortName = strings.TrimSpace(in.ShortName)
	if err := validator.Struct(in); err != nil {
		return model.Product{}, invalidInput(err)
	}

	available := true
	if in.Available != nil {
		available = *in.Available
	}

	p := model.Product{
		UUID:        u.idGen.NewID(),
		ShortName:   in.ShortName,
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		Price:       in.Price,
		Available:   available,
	}

	var out model.Product
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if err := r.Products().Create(ctx, &p); err != nil {
			if errors.Is(err, repo.ErrConflict) {
				return conflict(msgShortNameTaken)
			}
			return internal(err)
		}
		if err := r.Images().CreateBulk(ctx, p.ID, u.newImages(in.Images)); err != nil {
			return internal(err)
		}

		created, err := r.Products().FindByUUID(ctx, p.UUID)
		if err != nil {
			return internal(err)
		}
		out = created
		return nil
	})
	if err != nil {
		return model.Product{}, err
	}
	return out, nil
}

func (u *ProductUsecase) UpdateProduct(ctx context.Context, uuid string, in UpdateProductInput) (model.Product, error) {
	if in.ShortName != nil {
		v := strings.TrimSpace(*in.ShortName)
		in.ShortName = &v
	}
	if err := validator.Struct(in); err != nil {
		return model.Product{}, invalidInput(err)
	}

	var out model.Product
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		p, err := r.Products().FindByUUID(ctx, uuid)
		if errors.Is(err, repo.ErrNotFound) {
			return notFound(MsgProductNotFound)
		}
		if err != nil {
			return internal(err)
		}

		if in.ShortName != nil {
			p.ShortName = *in.ShortName
		}
		if in.Name != nil {
			p.Name = *in.Name
		}
		if in.Description != nil {
			p.Description = *in.Description
		}
		if in.Category != nil {
			p.Category = *in.Category
		}
		if in.Price != nil {
			p.Price = *in.Price
		}
		if in.Available != nil {
			p.Available = *in.Available
		}

		if err := r.Products().Update(ctx, p); err != nil {
			if errors.Is(err, repo.ErrConflict) {
				return conflict(msgShortNameTaken)
			}
			if errors.Is(err, repo.ErrNotFound) {
				return notFound(MsgProductNotFound)
			}
			return internal(err)
		}
		if err := r.Images().CreateBulk(ctx, p.ID, u.newImages(in.Images)); err != nil {
			return internal(err)
		}

		updated, err := r.Products().FindByUUID(ctx, uuid)
		if err != nil {
			return internal(err)
		}
		out = updated
		return nil
	})
	if err != nil {
		return model.Product{}, err
	}
	return out, nil
}

// 画像と明細を切り離してから消す。画像はあとで掃除する
func (u *ProductUsecase) DeleteProduct(ctx context.Context, actor model.Principal, uuid string) error {
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		p, err := r.Products().FindByUUID(ctx, uuid)
		if errors.Is(err, repo.ErrNotFound) {
			return notFound(MsgProductNotFound)
		}
		if err != nil {
			return internal(err)
		}

		if err := r.Images().DetachByProductID(ctx, p.ID); err != nil {
			return internal(err)
		}
		if err := r.Items().DetachProduct(ctx, p.ID); err != nil {
			return internal(err)
		}
		if err := r.Products().Delete(ctx, p.ID); err != nil {
			return internal(err)
		}

		return writeAudit(ctx, r, actor, model.AuditActionDeleteProduct, model.AuditResourceProduct, p.UUID, p, nil)
	})
	if err != nil {
		return err
	}

	u.sweeper.SweepImages()
	return nil
}

type UpdateImageInput struct {
	Path string `json:"path" validate:"required,min=1,max=100"`
}

func (u *ProductUsecase) UpdateImage(ctx context.Context, uuid string, in UpdateImageInput) (model.Image, error) {
	if err := validator.Struct(in); err != nil {
		return model.Image{}, invalidInput(err)
	}

	img, err := u.findImage(ctx, uuid)
	if err != nil {
		return model.Image{}, err
	}

	if err := u.imageRepo.UpdatePath(ctx, img.ID, in.Path); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return model.Image{}, notFound(MsgImageNotFound)
		}
		return model.Image{}, internal(err)
	}
	img.Path = in.Path
	img.UpdatedAt = time.Now()
	return img, nil
}

func (u *ProductUsecase) DeleteImage(ctx context.Context, uuid string) error {
	img, err := u.findImage(ctx, uuid)
	if err != nil {
		return err
	}
	if err := u.imageRepo.Delete(ctx, img.ID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return notFound(MsgImageNotFound)
		}
		return internal(err)
	}
	return nil
}

func (u *ProductUsecase) findImage(ctx context.Context, uuid string) (model.Image, error) {
	img, err := u.imageRepo.FindByUUID(ctx, uuid)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Image{}, notFound(MsgImageNotFound)
	}
	if err != nil {
		return model.Image{}, internal(err)
	}
	return img, nil
}

func (u *ProductUsecase) newImages(in []ImageInput) []model.Image {
	images := make([]model.Image, 0, len(in))
	for _, img := range in {
		images = append(images, model.Image{UUID: u.idGen.NewID(), Path: img.Path})
	}
	return images
}
