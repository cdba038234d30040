package app

import (
	"context"
	"log/slog"

	"shop/internal/config"
	"shop/internal/handler"
	infraAuth "shop/internal/infra/auth"
	infraRepo "shop/internal/infra/repository"
	"shop/internal/infra/worker"
	"shop/internal/server"
	"shop/internal/usecase"
	auth "shop/internal/usecase/auth_usecase"

	"gorm.io/gorm"
)

// 組み立て済みのアプリ
type App struct {
	Server   *server.Server
	Register *auth.RegisterUserUsecase
	Sweeper  *worker.Sweeper
}

// Repository → Usecase → Handler → Server の順に組み立てる
func New(cfg config.Config, logger *slog.Logger, gormDB *gorm.DB) *App {
	//Repository（GORM実装）
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	imageRepo := infraRepo.NewImageGormRepository(gormDB)
	itemRepo := infraRepo.NewItemGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	auditRepo := infraRepo.NewAuditLogGormRepository(gormDB)
	txm := infraRepo.NewTxManagerGorm(gormDB)

	//usecaseに渡す部品
	idGen := infraAuth.UUIDGenerator{}
	clock := infraAuth.RealClock{}
	hasher := auth.NewBcryptPasswordHasher(cfg.BcryptCost)
	verifier := auth.NewBcryptPasswordVerifier()
	jwtSvc := infraAuth.NewJWTService(cfg.JWTSecret, cfg.TokenTTL)

	sweeper := worker.NewSweeper(cfg.SweeperWorkers, imageRepo, itemRepo, logger)

	//Usecase
	registerUC := auth.NewRegisterUserUsecase(userRepo, hasher, jwtSvc, idGen, clock)
	loginUC := auth.NewLoginUsecase(userRepo, verifier, jwtSvc, clock)
	userUC := usecase.NewUserUsecase(userRepo, txm, hasher)
	productUC := usecase.NewProductUsecase(productRepo, imageRepo, txm, idGen, sweeper)
	orderUC := usecase.NewOrderUsecase(txm, orderRepo, userRepo, idGen)
	adminOrderUC := usecase.NewAdminOrderUsecase(txm, orderRepo, idGen, sweeper)
	auditUC := usecase.NewAuditUsecase(auditRepo)

	//Handler
	h := server.Handlers{
		Auth:         handler.NewAuthHandler(registerUC, loginUC),
		User:         handler.NewUserHandler(userUC, orderUC),
		AdminUser:    handler.NewAdminUserHandler(userUC),
		Product:      handler.NewProductHandler(productUC),
		AdminProduct: handler.NewAdminProductHandler(productUC),
		Order:        handler.NewOrderHandler(orderUC),
		AdminOrder:   handler.NewAdminOrderHandler(adminOrderUC),
		Audit:        handler.NewAuditHandler(auditUC),
	}

	d := server.Deps{
		Verifier: jwtSvc,
		Users:    userRepo,
		Orders:   orderRepo,
		Logger:   logger,
		Ping: func(ctx context.Context) error {
			sqlDB, err := gormDB.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}

	return &App{
		Server:   server.New(cfg, logger, d, h),
		Register: registerUC,
		Sweeper:  sweeper,
	}
}
