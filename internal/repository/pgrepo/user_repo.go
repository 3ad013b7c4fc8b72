package pgrepo

import (
	"context"
	"fmt"

	"github.com/fsdevblog/groph-referral/internal/domain"
	"github.com/fsdevblog/groph-referral/internal/repository/repoargs"
	"github.com/fsdevblog/groph-referral/pkg/uow"
)

// userColumns белый список колонок для фильтров. referrer_username матчится по
// юзернейму пригласившего через self join.
var userColumns = map[string]string{
	"user_id":           "u.user_id",
	"username":          "u.username",
	"referral_code":     "u.referral_code",
	"referrer":          "u.referrer",
	"earnings":          "u.earnings",
	"referrer_username": "r.username",
}

// userPatchColumns белый список колонок допустимых в частичном обновлении.
var userPatchColumns = map[string]string{
	"username":      "username",
	"password":      "password",
	"referral_code": "referral_code",
	"referrer":      "referrer",
	"earnings":      "earnings",
}

const userSelectColumns = "u.user_id, u.created_at, u.updated_at, u.deleted_at, " +
	"u.username, u.password, u.referral_code, u.referrer, u.earnings"

type UserRepository struct {
	db uow.DBTX
}

func NewUserRepository(db uow.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

// Save создает юзера. При конфликте юзернейма либо реферального кода возвращает
// domain.ErrDuplicateKey, во всех других случаях - domain.ErrUnknown.
func (u *UserRepository) Save(ctx context.Context, user domain.User) (*domain.User, error) {
	row := u.db.QueryRow(ctx,
		`INSERT INTO users (username, password, referral_code, referrer, earnings)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING user_id, created_at, updated_at, deleted_at, username, password, referral_code, referrer, earnings`,
		user.Username, user.Password, user.ReferralCode, user.Referrer, user.Earnings,
	)

	saved, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "creating user")
	}
	return saved, nil
}

// FindOne ищет одного юзера по условиям запроса. Возвращает domain.ErrRecordNotFound
// если запись не найдена.
func (u *UserRepository) FindOne(ctx context.Context, q repoargs.Query) (*domain.User, error) {
	where, args, sqlErr := u.buildUserWhere(q, nil)
	if sqlErr != nil {
		return nil, convertErr(sqlErr, "finding user")
	}

	row := u.db.QueryRow(ctx, fmt.Sprintf(
		`SELECT %s FROM users u %s WHERE %s LIMIT 1`,
		userSelectColumns, u.referrerJoin(q), where,
	), args...)

	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "finding user")
	}
	return user, nil
}

// FindAndCount возвращает страницу юзеров и общее число записей под те же условия.
func (u *UserRepository) FindAndCount(ctx context.Context, q repoargs.Query) ([]domain.User, int64, error) {
	where, args, sqlErr := u.buildUserWhere(q, nil)
	if sqlErr != nil {
		return nil, 0, convertErr(sqlErr, "listing users")
	}
	join := u.referrerJoin(q)

	var total int64
	countRow := u.db.QueryRow(ctx, fmt.Sprintf(
		`SELECT count(*) FROM users u %s WHERE %s`, join, where,
	), args...)
	if err := countRow.Scan(&total); err != nil {
		return nil, 0, convertErr(err, "counting users")
	}

	listArgs := append(args, q.Take, q.Skip)
	rows, queryErr := u.db.Query(ctx, fmt.Sprintf(
		`SELECT %s FROM users u %s WHERE %s ORDER BY u.user_id LIMIT $%d OFFSET $%d`,
		userSelectColumns, join, where, len(listArgs)-1, len(listArgs),
	), listArgs...)
	if queryErr != nil {
		return nil, 0, convertErr(queryErr, "listing users")
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		user, scanErr := scanUser(rows)
		if scanErr != nil {
			return nil, 0, convertErr(scanErr, "listing users")
		}
		users = append(users, *user)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, 0, convertErr(rowsErr, "listing users")
	}
	return users, total, nil
}

// Update применяет частичное обновление и возвращает число затронутых строк.
// Мягко удаленные записи не обновляются.
func (u *UserRepository) Update(ctx context.Context, id int64, patch repoargs.Patch) (int64, error) {
	sets, args, sqlErr := buildPatch(patch, userPatchColumns, nil)
	if sqlErr != nil {
		return 0, convertErr(sqlErr, "updating user %d", id)
	}

	args = append(args, id)
	tag, err := u.db.Exec(ctx, fmt.Sprintf(
		`UPDATE users SET %s, updated_at = now() WHERE user_id = $%d AND deleted_at IS NULL`,
		sets, len(args),
	), args...)
	if err != nil {
		return 0, convertErr(err, "updating user %d", id)
	}
	return tag.RowsAffected(), nil
}

// SoftDelete помечает юзера удаленным. Запись остается в таблице и продолжает
// удерживать уникальность юзернейма и реферального кода.
func (u *UserRepository) SoftDelete(ctx context.Context, id int64) (int64, error) {
	tag, err := u.db.Exec(ctx,
		`UPDATE users SET deleted_at = now(), updated_at = now() WHERE user_id = $1 AND deleted_at IS NULL`,
		id,
	)
	if err != nil {
		return 0, convertErr(err, "soft deleting user %d", id)
	}
	return tag.RowsAffected(), nil
}

// Exists проверяет наличие записи под условиями запроса.
func (u *UserRepository) Exists(ctx context.Context, q repoargs.Query) (bool, error) {
	where, args, sqlErr := u.buildUserWhere(q, nil)
	if sqlErr != nil {
		return false, convertErr(sqlErr, "checking user existence")
	}

	var exists bool
	row := u.db.QueryRow(ctx, fmt.Sprintf(
		`SELECT EXISTS (SELECT 1 FROM users u %s WHERE %s)`, u.referrerJoin(q), where,
	), args...)
	if err := row.Scan(&exists); err != nil {
		return false, convertErr(err, "checking user existence")
	}
	return exists, nil
}

// buildUserWhere добавляет к условиям запроса фильтр мягкого удаления.
func (u *UserRepository) buildUserWhere(q repoargs.Query, args []any) (string, []any, error) {
	where, args, err := buildWhere(q.Where, userColumns, args)
	if err != nil {
		return "", nil, err
	}
	if !q.WithDeleted {
		where = appendCondition(where, "u.deleted_at IS NULL")
	}
	if where == "" {
		where = "TRUE"
	}
	return where, args, nil
}

// referrerJoin добавляет self join на пригласившего, если по нему есть условия.
func (u *UserRepository) referrerJoin(q repoargs.Query) string {
	for _, cond := range q.Where {
		if cond.Column == "referrer_username" {
			return "LEFT JOIN users r ON r.user_id = u.referrer"
		}
	}
	return ""
}

func scanUser(row interface{ Scan(dest ...any) error }) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID, &user.CreatedAt, &user.UpdatedAt, &user.DeletedAt,
		&user.Username, &user.Password, &user.ReferralCode, &user.Referrer, &user.Earnings,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
