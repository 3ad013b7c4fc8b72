package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-referral/internal/domain"
	"github.com/fsdevblog/groph-referral/internal/repository/repoargs"
	"github.com/fsdevblog/groph-referral/pkg/uow"
)

const (
	referralCodeLength      = 6
	maxReferralCodeAttempts = 5
)

type UserService struct {
	*CRUD[domain.User, CreateUserArgs, UpdateUserArgs, FindAllUsersArgs]

	uow      uow.UOW
	userRepo domain.UserRepository
	hasher   PasswordHasher
	mapper   UserMapper
}

func NewUserService(u uow.UOW, hasher PasswordHasher) (*UserService, error) {
	userRepo, userRepoErr := uow.GetRepositoryAs[domain.UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if userRepoErr != nil {
		return nil, userRepoErr //nolint:wrapcheck
	}

	mapper := UserMapper{}
	return &UserService{
		CRUD:     NewCRUD[domain.User, CreateUserArgs, UpdateUserArgs, FindAllUsersArgs](userRepo, mapper),
		uow:      u,
		userRepo: userRepo,
		hasher:   hasher,
		mapper:   mapper,
	}, nil
}

// Create регистрирует юзера: явно хеширует пароль, генерирует уникальный
// реферальный код и, если передан чужой код, привязывает пригласившего.
// Валидность чужого кода проверяется валидацией до сервиса; здесь несуществующий
// код - ошибка вызова (domain.ErrRecordNotFound).
func (s *UserService) Create(ctx context.Context, args CreateUserArgs) (*domain.User, error) {
	hashed, hashErr := s.hasher.HashPassword(args.Password)
	if hashErr != nil {
		return nil, fmt.Errorf("creating user: %s", hashErr.Error())
	}

	payload := s.mapper.ToCreatePayload(args)
	payload.Password = hashed

	code, codeErr := s.generateReferralCode(ctx)
	if codeErr != nil {
		return nil, fmt.Errorf("creating user: %w", codeErr)
	}
	payload.ReferralCode = code

	if args.ReferralCode != "" {
		referrer, refErr := s.FindByReferralCode(ctx, args.ReferralCode)
		if refErr != nil {
			return nil, fmt.Errorf("creating user: %w", refErr)
		}
		if referrer == nil {
			return nil, fmt.Errorf("creating user: referral code %s: %w", args.ReferralCode, domain.ErrRecordNotFound)
		}
		payload.Referrer = &referrer.ID
	}

	var user *domain.User
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repo, repoErr := uow.GetAs[domain.UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}
		var saveErr error
		user, saveErr = repo.Save(c, payload)
		return saveErr //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, fmt.Errorf("creating user: %w", txErr)
	}
	return user, nil
}

// UpdateByID хеширование перед обновлением - явный шаг: пароль хешируется
// только когда он передан, остальные поля уходят как есть.
func (s *UserService) UpdateByID(ctx context.Context, id int64, args UpdateUserArgs) (*domain.User, error) {
	if args.Password != "" {
		hashed, hashErr := s.hasher.HashPassword(args.Password)
		if hashErr != nil {
			return nil, fmt.Errorf("updating user %d: %s", id, hashErr.Error())
		}
		args.Password = hashed
	}
	return s.CRUD.UpdateByID(ctx, id, args)
}

// FindByUsername возвращает nil без ошибки, если юзер не найден.
func (s *UserService) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.findOne(ctx, s.mapper.ToFindOneByUsername(username))
}

// FindByReferralCode возвращает nil без ошибки, если владелец кода не найден.
func (s *UserService) FindByReferralCode(ctx context.Context, referralCode string) (*domain.User, error) {
	return s.findOne(ctx, s.mapper.ToFindOneByReferralCode(referralCode))
}

// FindReferrer резолвит пригласившего по id. Оборванная ссылка (удаленный юзер)
// приходит как nil без ошибки - решение за вызывающим.
func (s *UserService) FindReferrer(ctx context.Context, referrer int64) (*domain.User, error) {
	return s.findOne(ctx, s.mapper.ToFindOneQuery(referrer))
}

// UpdateEarning перезаписывает earnings абсолютным значением (не дельтой).
// Возвращает true если строка была обновлена.
func (s *UserService) UpdateEarning(ctx context.Context, userID int64, earnings decimal.Decimal) (bool, error) {
	affected, err := s.userRepo.Update(ctx, userID, repoargs.Patch{"earnings": earnings})
	if err != nil {
		return false, fmt.Errorf("updating earnings of user %d: %w", userID, err)
	}
	return affected > 0, nil
}

// IsUsernameExist проверка занятости юзернейма для валидации запросов. Тумбстоуны
// считаются: юзернейм мягко удаленного юзера переиспользовать нельзя.
func (s *UserService) IsUsernameExist(ctx context.Context, username string, excludedID *int64) (bool, error) {
	exist, err := s.userRepo.Exists(ctx, s.mapper.ToUsernameExistQuery(username, excludedID))
	if err != nil {
		return false, fmt.Errorf("checking username %s: %w", username, err)
	}
	return exist, nil
}

func (s *UserService) findOne(ctx context.Context, q repoargs.Query) (*domain.User, error) {
	user, err := s.userRepo.FindOne(ctx, q)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err //nolint:wrapcheck
	}
	return user, nil
}

// generateReferralCode подбирает свободный код с ретраями: сгенерированный код
// проверяется по уникальному индексу (включая тумбстоуны) до вставки, чтобы
// коллизия не выстрелила неотличимой от конфликта юзернейма ошибкой 23505.
func (s *UserService) generateReferralCode(ctx context.Context) (string, error) {
	for attempt := 0; attempt < maxReferralCodeAttempts; attempt++ {
		code, codeErr := randomString(referralCodeLength)
		if codeErr != nil {
			return "", codeErr
		}

		exists, existsErr := s.userRepo.Exists(ctx, s.mapper.ToReferralCodeExistQuery(code))
		if existsErr != nil {
			return "", fmt.Errorf("checking referral code: %w", existsErr)
		}
		if !exists {
			return code, nil
		}
	}
	return "", domain.ErrReferralCodeExhausted
}
