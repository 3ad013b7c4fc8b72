package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/groph-referral/internal/domain"
	"github.com/fsdevblog/groph-referral/internal/service"
	"github.com/fsdevblog/groph-referral/pkg/pagination"
)

// AuthServicer интерфейс исключительно для моков.
type AuthServicer interface {
	ValidateUser(ctx context.Context, username, password string) (*domain.User, error)
	Login(user *domain.User) (*service.LoginResult, error)
	LoginByRefreshToken(ctx context.Context, refreshToken string) (*service.LoginResult, error)
	Register(ctx context.Context, args service.RegisterArgs) (*domain.User, error)
}

type UserServicer interface {
	FindAll(ctx context.Context, args service.FindAllUsersArgs) (*pagination.Page[domain.User], error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	UpdateByID(ctx context.Context, id int64, args service.UpdateUserArgs) (*domain.User, error)
	RemoveByID(ctx context.Context, id int64) (*domain.User, error)
	IsUsernameExist(ctx context.Context, username string, excludedID *int64) (bool, error)
	FindByReferralCode(ctx context.Context, referralCode string) (*domain.User, error)
}

type PurchaseServicer interface {
	Create(ctx context.Context, args service.CreatePurchaseArgs) (*domain.Purchase, error)
	FindAll(ctx context.Context, args service.FindAllPurchasesArgs) (*pagination.Page[domain.Purchase], error)
	FindByID(ctx context.Context, id int64) (*domain.Purchase, error)
	RemoveByID(ctx context.Context, id int64) (*domain.Purchase, error)
}
