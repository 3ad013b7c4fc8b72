package service

import (
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-referral/internal/domain"
	"github.com/fsdevblog/groph-referral/internal/repository/repoargs"
)

type CreatePurchaseArgs struct {
	UserID int64
	Amount decimal.Decimal
}

type UpdatePurchaseArgs struct {
	Amount *decimal.Decimal
}

type FindAllPurchasesArgs struct {
	Page             uint
	Limit            uint
	UserID           *int64
	StartRangeAmount *decimal.Decimal
	EndRangeAmount   *decimal.Decimal
}

// PurchaseMapper строит запросы репозитория покупок.
type PurchaseMapper struct{}

func (PurchaseMapper) ToCreatePayload(args CreatePurchaseArgs) domain.Purchase {
	return domain.Purchase{
		UserID: args.UserID,
		Amount: args.Amount,
	}
}

func (PurchaseMapper) ToUpdatePayload(args UpdatePurchaseArgs) repoargs.Patch {
	patch := repoargs.Patch{}
	if args.Amount != nil {
		patch["amount"] = *args.Amount
	}
	return patch
}

// ToFindAllQuery фильтры списка: точный покупатель и диапазон сумм. Обе границы
// вместе дают BETWEEN, одиночная граница - одностороннее сравнение.
func (PurchaseMapper) ToFindAllQuery(args FindAllPurchasesArgs) FindAllQuery {
	page, limit := normalizePageLimit(args.Page, args.Limit)

	q := repoargs.Query{
		Skip: (page - 1) * limit,
		Take: limit,
	}
	if args.UserID != nil {
		q.Where = append(q.Where, repoargs.Cond{Column: "user_id", Op: repoargs.OpEq, Value: *args.UserID})
	}

	switch {
	case args.StartRangeAmount != nil && args.EndRangeAmount != nil:
		q.Where = append(q.Where, repoargs.Cond{
			Column:     "amount",
			Op:         repoargs.OpBetween,
			Value:      *args.StartRangeAmount,
			UpperValue: *args.EndRangeAmount,
		})
	case args.StartRangeAmount != nil:
		q.Where = append(q.Where, repoargs.Cond{Column: "amount", Op: repoargs.OpGte, Value: *args.StartRangeAmount})
	case args.EndRangeAmount != nil:
		q.Where = append(q.Where, repoargs.Cond{Column: "amount", Op: repoargs.OpLte, Value: *args.EndRangeAmount})
	}

	return FindAllQuery{Query: q, Page: page, Limit: limit}
}

// ToFindOneQuery точечная выборка подгружает покупателя.
func (PurchaseMapper) ToFindOneQuery(id int64) repoargs.Query {
	return repoargs.Query{
		Where:    []repoargs.Cond{{Column: "purchase_id", Op: repoargs.OpEq, Value: id}},
		WithUser: true,
	}
}
