package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-referral/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type PasswordHasher interface {
	HashPassword(password string) (string, error)
	ComparePassword(password string, hashedPassword string) bool
}

// ReferralUsers операции юзер-сервиса, которыми пользуется начисление реферальных
// процентов. Реализуется UserService.
type ReferralUsers interface {
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindReferrer(ctx context.Context, referrer int64) (*domain.User, error)
	UpdateEarning(ctx context.Context, userID int64, earnings decimal.Decimal) (bool, error)
}

// UserDirectory операции юзер-сервиса, которыми пользуется аутентификация.
// Реализуется UserService.
type UserDirectory interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, args CreateUserArgs) (*domain.User, error)
}
