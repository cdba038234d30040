package model

import (
	"errors"
	"math"
	"time"
)

type OrderStatus string

const (
	OrderStatusNew       OrderStatus = "new"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusSending   OrderStatus = "sending"
	OrderStatusDelivered OrderStatus = "delivered"
)

// 遷移ルールは無し（許可された値かどうかだけ見る）
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusNew, OrderStatusConfirmed, OrderStatusPreparing, OrderStatusSending, OrderStatusDelivered:
		return true
	}
	return false
}

type PaymentType string

const (
	PaymentCash       PaymentType = "cash"
	PaymentCreditCard PaymentType = "credit card"
	PaymentDebit      PaymentType = "debit"
)

func (p PaymentType) IsValid() bool {
	switch p {
	case PaymentCash, PaymentCreditCard, PaymentDebit:
		return true
	}
	return false
}

// totalは明細から計算する値。クライアントから直接は受け取らない
type Order struct {
	ID          int64       `gorm:"primaryKey;autoIncrement" json:"-"`
	UUID        string      `gorm:"column:uuid;type:varchar(36);uniqueIndex;not null" json:"uuid"`
	UserID      int64       `gorm:"not null;index" json:"-"`
	User        *User       `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Status      OrderStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	Total       float64     `gorm:"type:numeric(10,2);not null;default:0" json:"total"`
	SendTo      string      `gorm:"type:varchar(200);not null" json:"send_to"`
	PaymentType PaymentType `gorm:"type:varchar(50);not null" json:"payment_type"`
	Items       []Item      `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// 注文明細
// total_itemは価格を決めた時点の 単価×数量
type Item struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"-"`
	UUID      string    `gorm:"column:uuid;type:varchar(36);uniqueIndex;not null" json:"uuid"`
	OrderID   int64     `gorm:"not null;index" json:"-"`
	ProductID *int64    `gorm:"index" json:"-"`
	Product   *Product  `gorm:"foreignKey:ProductID;constraint:OnDelete:SET NULL" json:"product,omitempty"`
	Amount    int       `gorm:"not null;default:1" json:"amount"`
	TotalItem float64   `gorm:"type:numeric(10,2);not null" json:"total_item"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// 1明細の数量の上限
const MaxItemAmount = 10000

// numeric(10,2) に入る最大値（セント）
const maxCents int64 = 9_999_999_999

// 金額がnumeric(10,2)に収まらない
var ErrTotalTooLarge = errors.New("total exceeds numeric(10,2)")

// 単価×数量（セント単位で丸める）
func ItemTotal(price float64, amount int) (float64, error) {
	if amount < 0 || !(price >= 0 && price <= fromCents(maxCents)) {
		return 0, ErrTotalTooLarge
	}
	p := toCents(price)
	if amount > 0 && p > maxCents/int64(amount) {
		return 0, ErrTotalTooLarge
	}
	return fromCents(p * int64(amount)), nil
}

// 注文合計は「今ぶら下がっている明細の合計」。
// セントの整数で足すので、明細の順番で結果が変わらない。
func RecomputeTotal(items []Item) (float64, error) {
	var cents int64
	for _, it := range items {
		c := toCents(it.TotalItem)
		if c < 0 || c > maxCents-cents {
			return 0, ErrTotalTooLarge
		}
		cents += c
	}
	return fromCents(cents), nil
}

func toCents(v float64) int64 {
	return int64(math.Round(v * 100))
}

func fromCents(c int64) float64 {
	return float64(c) / 100
}
