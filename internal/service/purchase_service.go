package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-referral/internal/domain"
	"github.com/fsdevblog/groph-referral/internal/repository/repoargs"
	"github.com/fsdevblog/groph-referral/pkg/uow"
)

// maxReferralLevel награждаются ровно два уровня пригласивших, глубже обход не идет.
const maxReferralLevel = 2

var (
	tier1Rate = decimal.NewFromFloat(0.10)
	tier2Rate = decimal.NewFromFloat(0.05)
)

type PurchaseService struct {
	*CRUD[domain.Purchase, CreatePurchaseArgs, UpdatePurchaseArgs, FindAllPurchasesArgs]

	users ReferralUsers
}

func NewPurchaseService(u uow.UOW, users ReferralUsers) (*PurchaseService, error) {
	purchaseRepo, repoErr := uow.GetRepositoryAs[domain.PurchaseRepository](
		u, uow.RepositoryName(repoargs.PurchaseRepoName),
	)
	if repoErr != nil {
		return nil, repoErr //nolint:wrapcheck
	}

	return &PurchaseService{
		CRUD: NewCRUD[domain.Purchase, CreatePurchaseArgs, UpdatePurchaseArgs, FindAllPurchasesArgs](
			purchaseRepo, PurchaseMapper{},
		),
		users: users,
	}, nil
}

// Create сохраняет покупку и начисляет реферальные проценты. Начисление идет после
// коммита вставки и общей транзакцией не обернуто: при ошибке начисления вызов
// вернет ошибку, хотя покупка уже записана. Поведение исходной системы сохранено
// намеренно, выбор зафиксирован в DESIGN.md.
func (s *PurchaseService) Create(ctx context.Context, args CreatePurchaseArgs) (*domain.Purchase, error) {
	purchase, createErr := s.CRUD.Create(ctx, args)
	if createErr != nil {
		return nil, fmt.Errorf("creating purchase: %w", createErr)
	}

	if propErr := s.processReferralEarning(ctx, purchase.UserID, purchase.Amount, 1); propErr != nil {
		return nil, fmt.Errorf("processing referral earning: %w", propErr)
	}
	return purchase, nil
}

// processReferralEarning поднимается по цепочке пригласивших максимум на два уровня:
// 10% суммы покупки первому уровню, 5% второму. Процент всегда считается от исходной
// суммы покупки, не от чужих начислений. Отсутствие пригласившего или оборванная
// ссылка на него завершают обход без ошибки и без начислений.
func (s *PurchaseService) processReferralEarning(
	ctx context.Context,
	userID int64,
	amount decimal.Decimal,
	level int,
) error {
	if level > maxReferralLevel {
		return nil
	}

	user, userErr := s.users.FindByID(ctx, userID)
	if userErr != nil {
		return userErr //nolint:wrapcheck
	}
	if user.Referrer == nil {
		return nil
	}

	referrer, refErr := s.users.FindReferrer(ctx, *user.Referrer)
	if refErr != nil {
		return refErr //nolint:wrapcheck
	}
	if referrer == nil {
		return nil
	}

	rate := tier1Rate
	if level == maxReferralLevel {
		rate = tier2Rate
	}
	earnings := referrer.Earnings.Add(amount.Mul(rate))

	// абсолютная перезапись, не инкремент: read-compute-write как в исходной системе
	if _, updErr := s.users.UpdateEarning(ctx, referrer.ID, earnings); updErr != nil {
		return updErr //nolint:wrapcheck
	}

	return s.processReferralEarning(ctx, referrer.ID, amount, level+1)
}
