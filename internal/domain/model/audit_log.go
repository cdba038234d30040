package model

import "time"

// 管理者操作の種類
type AuditAction string

const (
	//注文の更新（ステータス・配送先・支払い方法・明細追加）
	AuditActionUpdateOrder AuditAction = "UPDATE_ORDER"
	//注文の削除
	AuditActionDeleteOrder AuditAction = "DELETE_ORDER"
	//明細の数量変更
	AuditActionUpdateItem AuditAction = "UPDATE_ITEM"
	//明細の削除
	AuditActionDeleteItem AuditAction = "DELETE_ITEM"
	//商品の削除
	AuditActionDeleteProduct AuditAction = "DELETE_PRODUCT"
	//ユーザーの削除
	AuditActionDeleteUser AuditAction = "DELETE_USER"
)

// 何に対する操作か
type AuditResourceType string

const (
	AuditResourceProduct AuditResourceType = "product"
	AuditResourceOrder   AuditResourceType = "order"
	AuditResourceItem    AuditResourceType = "item"
	AuditResourceUser    AuditResourceType = "user"
)

// 監査ログ（管理者操作ログ）。
// 「誰が」「何を」「どの対象に」「どう変えたか」を残す。
type AuditLog struct {
	ID int64 `gorm:"primaryKey;autoIncrement" json:"id"`

	//操作したユーザーのuuid
	ActorUserID string `gorm:"type:varchar(36);not null;index" json:"actor_user_id"`

	Action AuditAction `gorm:"type:varchar(50);not null;index" json:"action"`

	ResourceType AuditResourceType `gorm:"type:varchar(50);not null;index" json:"resource_type"`

	//対象のuuid
	ResourceID string `gorm:"type:varchar(36);not null;index" json:"resource_id"`

	//JSON文字列で保存する。
	BeforeJSON string `gorm:"type:text" json:"before_json"`
	AfterJSON  string `gorm:"type:text" json:"after_json"`

	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
}
