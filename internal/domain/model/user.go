package model

import (
	"time"

	"gorm.io/gorm"
)

// 会員
// 内部ID(id)は外に出さず、APIではuuidを使う
type User struct {
	ID       int64  `gorm:"primaryKey;autoIncrement" json:"-"`
	UUID     string `gorm:"column:uuid;type:varchar(36);uniqueIndex;not null" json:"uuid"`
	Username string `gorm:"type:varchar(100);uniqueIndex;not null" json:"username"`
	Name     string `gorm:"type:varchar(100);not null" json:"name"`
	LastName string `gorm:"type:varchar(100)" json:"last_name"`
	Email    string `gorm:"type:varchar(100);uniqueIndex;not null" json:"email"`
	Phone    string `gorm:"type:varchar(25);not null" json:"phone"`
	Address  string `gorm:"type:varchar(200);not null" json:"address"`

	//bcryptハッシュ（平文は保存しない）
	PasswordHash string `gorm:"column:password;not null" json:"-"`

	IsAdmin bool `gorm:"not null;default:false" json:"is_admin"`

	//パスワード変更・権限変更・削除で+1（古いトークンを無効にする）
	TokenVersion int `gorm:"not null;default:0" json:"-"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
