package usecase_test

import (
	"context"
	"sync"
	"testing"

	"shop/internal/domain/model"
	infraAuth "shop/internal/infra/auth"
	"shop/internal/infra/db/dbtest"
	infraRepo "shop/internal/infra/repository"
	repo "shop/internal/repository"
	"shop/internal/usecase"
	auth "shop/internal/usecase/auth_usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// 呼ばれた回数だけ数える
type fakeSweeper struct {
	mu     sync.Mutex
	images int
	items  int
}

func (s *fakeSweeper) SweepImages() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.images++
}

func (s *fakeSweeper) SweepItems() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items++
}

type testEnv struct {
	users    repo.UserRepository
	orders   repo.OrderRepository
	images   repo.ImageRepository
	items    repo.ItemRepository
	auditLog repo.AuditLogRepository
	sweeper  *fakeSweeper

	productUC    *usecase.ProductUsecase
	orderUC      *usecase.OrderUsecase
	adminOrderUC *usecase.AdminOrderUsecase
	userUC       *usecase.UserUsecase
	auditUC      *usecase.AuditUsecase
}

func newEnv(t *testing.T) testEnv {
	t.Helper()
	gormDB := dbtest.New(t)

	users := infraRepo.NewUserGormRepository(gormDB)
	products := infraRepo.NewProductGormRepository(gormDB)
	images := infraRepo.NewImageGormRepository(gormDB)
	items := infraRepo.NewItemGormRepository(gormDB)
	orders := infraRepo.NewOrderGormRepository(gormDB)
	auditLog := infraRepo.NewAuditLogGormRepository(gormDB)
	txm := infraRepo.NewTxManagerGorm(gormDB)
	idGen := infraAuth.UUIDGenerator{}
	sweeper := &fakeSweeper{}

	return testEnv{
		users:    users,
		orders:   orders,
		images:   images,
		items:    items,
		auditLog: auditLog,
		sweeper:  sweeper,

		productUC:    usecase.NewProductUsecase(products, images, txm, idGen, sweeper),
		orderUC:      usecase.NewOrderUsecase(txm, orders, users, idGen),
		adminOrderUC: usecase.NewAdminOrderUsecase(txm, orders, idGen, sweeper),
		userUC:       usecase.NewUserUsecase(users, txm, auth.NewBcryptPasswordHasher(bcrypt.MinCost)),
		auditUC:      usecase.NewAuditUsecase(auditLog),
	}
}

func (e testEnv) seedUser(t *testing.T, username string, isAdmin bool) model.User {
	t.Helper()
	u := &model.User{
		UUID:         infraAuth.UUIDGenerator{}.NewID(),
		Username:     username,
		Name:         "Test",
		Email:        username + "@example.com",
		Phone:        "5551234567",
		Address:      "1 Main Street",
		PasswordHash: "hash",
		IsAdmin:      isAdmin,
	}
	require.NoError(t, e.users.Create(context.Background(), u))
	return *u
}

func (e testEnv) seedProduct(t *testing.T, shortName string, price float64, available bool, paths ...string) model.Product {
	t.Helper()
	in := usecase.CreateProductInput{
		ShortName: shortName,
		Name:      "Product " + shortName,
		Category:  "general",
		Price:     price,
		Available: &available,
	}
	for _, p := range paths {
		in.Images = append(in.Images, usecase.ImageInput{Path: p})
	}
	p, err := e.productUC.CreateProduct(context.Background(), in)
	require.NoError(t, err)
	return p
}

func principalOf(u model.User) model.Principal {
	return model.Principal{UserID: u.UUID, IsAdmin: u.IsAdmin, TokenVersion: u.TokenVersion}
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func requireStatus(t *testing.T, err error, status int) *usecase.HTTPError {
	t.Helper()
	require.Error(t, err)
	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok, "want HTTPError, got %v", err)
	assert.Equal(t, status, he.Status)
	return he
}
