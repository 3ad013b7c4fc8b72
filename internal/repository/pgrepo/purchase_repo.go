package pgrepo

import (
	"context"
	"fmt"

	"github.com/fsdevblog/groph-referral/internal/domain"
	"github.com/fsdevblog/groph-referral/internal/repository/repoargs"
	"github.com/fsdevblog/groph-referral/pkg/uow"
)

var purchaseColumns = map[string]string{
	"purchase_id": "p.purchase_id",
	"amount":      "p.amount",
	"user_id":     "p.user_id",
}

var purchasePatchColumns = map[string]string{
	"amount": "amount",
}

const purchaseSelectColumns = "p.purchase_id, p.created_at, p.updated_at, p.deleted_at, p.user_id, p.amount"

type PurchaseRepository struct {
	db uow.DBTX
}

func NewPurchaseRepository(db uow.DBTX) *PurchaseRepository {
	return &PurchaseRepository{db: db}
}

// Save создает покупку. Нарушение FK на юзера придет как domain.ErrUnknown,
// так как покупка создается только для существующего юзера.
func (p *PurchaseRepository) Save(ctx context.Context, purchase domain.Purchase) (*domain.Purchase, error) {
	row := p.db.QueryRow(ctx,
		`INSERT INTO purchases (user_id, amount)
		 VALUES ($1, $2)
		 RETURNING purchase_id, created_at, updated_at, deleted_at, user_id, amount`,
		purchase.UserID, purchase.Amount,
	)

	saved, err := scanPurchase(row)
	if err != nil {
		return nil, convertErr(err, "creating purchase")
	}
	return saved, nil
}

// FindOne ищет покупку по условиям запроса. С флагом WithUser подгружает покупателя.
func (p *PurchaseRepository) FindOne(ctx context.Context, q repoargs.Query) (*domain.Purchase, error) {
	where, args, sqlErr := p.buildPurchaseWhere(q, nil)
	if sqlErr != nil {
		return nil, convertErr(sqlErr, "finding purchase")
	}

	if q.WithUser {
		row := p.db.QueryRow(ctx, fmt.Sprintf(
			`SELECT %s, %s FROM purchases p JOIN users u ON u.user_id = p.user_id WHERE %s LIMIT 1`,
			purchaseSelectColumns, userSelectColumns, where,
		), args...)

		purchase, err := scanPurchaseWithUser(row)
		if err != nil {
			return nil, convertErr(err, "finding purchase")
		}
		return purchase, nil
	}

	row := p.db.QueryRow(ctx, fmt.Sprintf(
		`SELECT %s FROM purchases p WHERE %s LIMIT 1`, purchaseSelectColumns, where,
	), args...)

	purchase, err := scanPurchase(row)
	if err != nil {
		return nil, convertErr(err, "finding purchase")
	}
	return purchase, nil
}

// FindAndCount возвращает страницу покупок и общее число записей под те же условия.
func (p *PurchaseRepository) FindAndCount(ctx context.Context, q repoargs.Query) ([]domain.Purchase, int64, error) {
	where, args, sqlErr := p.buildPurchaseWhere(q, nil)
	if sqlErr != nil {
		return nil, 0, convertErr(sqlErr, "listing purchases")
	}

	var total int64
	countRow := p.db.QueryRow(ctx, fmt.Sprintf(
		`SELECT count(*) FROM purchases p WHERE %s`, where,
	), args...)
	if err := countRow.Scan(&total); err != nil {
		return nil, 0, convertErr(err, "counting purchases")
	}

	listArgs := append(args, q.Take, q.Skip)
	rows, queryErr := p.db.Query(ctx, fmt.Sprintf(
		`SELECT %s FROM purchases p WHERE %s ORDER BY p.purchase_id LIMIT $%d OFFSET $%d`,
		purchaseSelectColumns, where, len(listArgs)-1, len(listArgs),
	), listArgs...)
	if queryErr != nil {
		return nil, 0, convertErr(queryErr, "listing purchases")
	}
	defer rows.Close()

	var purchases []domain.Purchase
	for rows.Next() {
		purchase, scanErr := scanPurchase(rows)
		if scanErr != nil {
			return nil, 0, convertErr(scanErr, "listing purchases")
		}
		purchases = append(purchases, *purchase)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, 0, convertErr(rowsErr, "listing purchases")
	}
	return purchases, total, nil
}

// Update применяет частичное обновление и возвращает число затронутых строк.
func (p *PurchaseRepository) Update(ctx context.Context, id int64, patch repoargs.Patch) (int64, error) {
	sets, args, sqlErr := buildPatch(patch, purchasePatchColumns, nil)
	if sqlErr != nil {
		return 0, convertErr(sqlErr, "updating purchase %d", id)
	}

	args = append(args, id)
	tag, err := p.db.Exec(ctx, fmt.Sprintf(
		`UPDATE purchases SET %s, updated_at = now() WHERE purchase_id = $%d AND deleted_at IS NULL`,
		sets, len(args),
	), args...)
	if err != nil {
		return 0, convertErr(err, "updating purchase %d", id)
	}
	return tag.RowsAffected(), nil
}

// SoftDelete помечает покупку удаленной.
func (p *PurchaseRepository) SoftDelete(ctx context.Context, id int64) (int64, error) {
	tag, err := p.db.Exec(ctx,
		`UPDATE purchases SET deleted_at = now(), updated_at = now() WHERE purchase_id = $1 AND deleted_at IS NULL`,
		id,
	)
	if err != nil {
		return 0, convertErr(err, "soft deleting purchase %d", id)
	}
	return tag.RowsAffected(), nil
}

// Exists проверяет наличие покупки под условиями запроса.
func (p *PurchaseRepository) Exists(ctx context.Context, q repoargs.Query) (bool, error) {
	where, args, sqlErr := p.buildPurchaseWhere(q, nil)
	if sqlErr != nil {
		return false, convertErr(sqlErr, "checking purchase existence")
	}

	var exists bool
	row := p.db.QueryRow(ctx, fmt.Sprintf(
		`SELECT EXISTS (SELECT 1 FROM purchases p WHERE %s)`, where,
	), args...)
	if err := row.Scan(&exists); err != nil {
		return false, convertErr(err, "checking purchase existence")
	}
	return exists, nil
}

func (p *PurchaseRepository) buildPurchaseWhere(q repoargs.Query, args []any) (string, []any, error) {
	where, args, err := buildWhere(q.Where, purchaseColumns, args)
	if err != nil {
		return "", nil, err
	}
	if !q.WithDeleted {
		where = appendCondition(where, "p.deleted_at IS NULL")
	}
	if where == "" {
		where = "TRUE"
	}
	return where, args, nil
}

func scanPurchase(row interface{ Scan(dest ...any) error }) (*domain.Purchase, error) {
	var purchase domain.Purchase
	err := row.Scan(
		&purchase.ID, &purchase.CreatedAt, &purchase.UpdatedAt, &purchase.DeletedAt,
		&purchase.UserID, &purchase.Amount,
	)
	if err != nil {
		return nil, err
	}
	return &purchase, nil
}

func scanPurchaseWithUser(row interface{ Scan(dest ...any) error }) (*domain.Purchase, error) {
	var purchase domain.Purchase
	var user domain.User
	err := row.Scan(
		&purchase.ID, &purchase.CreatedAt, &purchase.UpdatedAt, &purchase.DeletedAt,
		&purchase.UserID, &purchase.Amount,
		&user.ID, &user.CreatedAt, &user.UpdatedAt, &user.DeletedAt,
		&user.Username, &user.Password, &user.ReferralCode, &user.Referrer, &user.Earnings,
	)
	if err != nil {
		return nil, err
	}
	purchase.User = &user
	return &purchase, nil
}
