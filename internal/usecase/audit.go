package usecase

import (
	"context"
	"time"

	"shop/internal/domain/model"
	repo "shop/internal/repository"
)

// 監査ログを同じトランザクションで書く
// 「誰が」「何を」「どの対象に」「どう変えたか」を残す
func writeAudit(
	ctx context.Context,
	r repo.TxRepos,
	actor model.Principal,
	action model.AuditAction,
	resourceType model.AuditResourceType,
	resourceID string,
	before any,
	after any,
) error {
	log := model.AuditLog{
		ActorUserID:  actor.UserID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		CreatedAt:    time.Now(),
	}
	if before != nil {
		log.BeforeJSON = toJSON(before)
	}
	if after != nil {
		log.AfterJSON = toJSON(after)
	}
	if err := r.AuditLogs().Create(ctx, log); err != nil {
		return internal(err)
	}
	return nil
}
