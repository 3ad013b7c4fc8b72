package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// User пользователь системы. Referrer хранит id пригласившего пользователя (nullable FK на users).
// Password наружу не сериализуется, ответы формируются на уровне transport.
type User struct {
	ID           int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
	Username     string
	Password     string
	ReferralCode string
	Referrer     *int64
	Earnings     decimal.Decimal
}

// Purchase покупка пользователя. User заполняется только при выборке со связью.
type Purchase struct {
	ID        int64
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
	UserID    int64
	Amount    decimal.Decimal
	User      *User
}
