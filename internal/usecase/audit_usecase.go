package usecase

import (
	"context"

	"shop/internal/domain/model"
	repo "shop/internal/repository"
)

type AuditUsecase struct {
	logs repo.AuditLogRepository
}

func NewAuditUsecase(logs repo.AuditLogRepository) *AuditUsecase {
	return &AuditUsecase{logs: logs}
}

func (u *AuditUsecase) List(ctx context.Context, f repo.AuditLogFilter) ([]model.AuditLog, error) {
	if f.Limit < 0 || f.Offset < 0 {
		return nil, badRequest(MsgInvalidRequest)
	}
	logs, err := u.logs.List(ctx, f)
	if err != nil {
		return nil, internal(err)
	}
	return logs, nil
}
