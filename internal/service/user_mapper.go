package service

import (
	"github.com/fsdevblog/groph-referral/internal/domain"
	"github.com/fsdevblog/groph-referral/internal/repository/repoargs"
)

type CreateUserArgs struct {
	Username     string
	Password     string
	ReferralCode string
}

type UpdateUserArgs struct {
	Username string
	Password string
}

type FindAllUsersArgs struct {
	Page             uint
	Limit            uint
	Username         string
	ReferralCode     string
	ReferrerUsername string
	ReferrerID       *int64
}

// UserMapper строит запросы репозитория юзеров. Пароль и реферальный код в payload
// не трогает: хеширование и генерация кода - явные шаги UserService.
type UserMapper struct{}

func (UserMapper) ToCreatePayload(args CreateUserArgs) domain.User {
	return domain.User{
		Username: args.Username,
		Password: args.Password,
	}
}

func (UserMapper) ToUpdatePayload(args UpdateUserArgs) repoargs.Patch {
	patch := repoargs.Patch{}
	if args.Username != "" {
		patch["username"] = args.Username
	}
	if args.Password != "" {
		patch["password"] = args.Password
	}
	return patch
}

// ToFindAllQuery фильтры списка: подстрока юзернейма, точный реферальный код,
// подстрока юзернейма пригласившего (через self join), точный id пригласившего.
func (UserMapper) ToFindAllQuery(args FindAllUsersArgs) FindAllQuery {
	page, limit := normalizePageLimit(args.Page, args.Limit)

	q := repoargs.Query{
		Skip: (page - 1) * limit,
		Take: limit,
	}
	if args.Username != "" {
		q.Where = append(q.Where, repoargs.Cond{Column: "username", Op: repoargs.OpLike, Value: args.Username})
	}
	if args.ReferralCode != "" {
		q.Where = append(q.Where, repoargs.Cond{Column: "referral_code", Op: repoargs.OpEq, Value: args.ReferralCode})
	}
	if args.ReferrerUsername != "" {
		q.Where = append(q.Where, repoargs.Cond{
			Column: "referrer_username",
			Op:     repoargs.OpLike,
			Value:  args.ReferrerUsername,
		})
	}
	if args.ReferrerID != nil {
		q.Where = append(q.Where, repoargs.Cond{Column: "referrer", Op: repoargs.OpEq, Value: *args.ReferrerID})
	}

	return FindAllQuery{Query: q, Page: page, Limit: limit}
}

func (UserMapper) ToFindOneQuery(id int64) repoargs.Query {
	return repoargs.Query{
		Where: []repoargs.Cond{{Column: "user_id", Op: repoargs.OpEq, Value: id}},
	}
}

func (UserMapper) ToFindOneByUsername(username string) repoargs.Query {
	return repoargs.Query{
		Where: []repoargs.Cond{{Column: "username", Op: repoargs.OpEq, Value: username}},
	}
}

func (UserMapper) ToFindOneByReferralCode(referralCode string) repoargs.Query {
	return repoargs.Query{
		Where: []repoargs.Cond{{Column: "referral_code", Op: repoargs.OpEq, Value: referralCode}},
	}
}

// ToUsernameExistQuery проверка занятости юзернейма. Мягко удаленные записи включены:
// юзернейм из тумбстоуна остается занятым. excludedID исключает собственную запись
// при редактировании.
func (UserMapper) ToUsernameExistQuery(username string, excludedID *int64) repoargs.Query {
	q := repoargs.Query{
		Where:       []repoargs.Cond{{Column: "username", Op: repoargs.OpEq, Value: username}},
		WithDeleted: true,
	}
	if excludedID != nil {
		q.Where = append(q.Where, repoargs.Cond{Column: "user_id", Op: repoargs.OpNotEq, Value: *excludedID})
	}
	return q
}

// ToReferralCodeExistQuery проверка занятости реферального кода, тумбстоуны включены.
func (UserMapper) ToReferralCodeExistQuery(referralCode string) repoargs.Query {
	return repoargs.Query{
		Where:       []repoargs.Cond{{Column: "referral_code", Op: repoargs.OpEq, Value: referralCode}},
		WithDeleted: true,
	}
}
