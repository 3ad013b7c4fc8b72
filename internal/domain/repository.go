package domain

//go:generate mockgen -source=repository.go -destination=mocks/mocks.go -package=mocks
import (
	"context"

	"github.com/fsdevblog/groph-referral/internal/repository/repoargs"
)

// Repository общий контракт хранилища для любой сущности. Удаление всегда мягкое:
// запись помечается deleted_at и перестает попадать в выборки (кроме запросов с WithDeleted).
type Repository[E any] interface {
	Save(ctx context.Context, entity E) (*E, error)
	FindOne(ctx context.Context, q repoargs.Query) (*E, error)
	FindAndCount(ctx context.Context, q repoargs.Query) ([]E, int64, error)
	Update(ctx context.Context, id int64, patch repoargs.Patch) (int64, error)
	SoftDelete(ctx context.Context, id int64) (int64, error)
	Exists(ctx context.Context, q repoargs.Query) (bool, error)
}

type UserRepository interface {
	Repository[User]
}

type PurchaseRepository interface {
	Repository[Purchase]
}
