package service

import (
	"context"

	"github.com/fsdevblog/groph-referral/internal/domain"
	"github.com/fsdevblog/groph-referral/internal/repository/repoargs"
	"github.com/fsdevblog/groph-referral/pkg/pagination"
)

const (
	DefaultPage  uint = 1
	DefaultLimit uint = 25
)

// FindAllQuery результат маппинга DTO списка: условия для репозитория плюс
// нормализованные страница и лимит для пагинации.
type FindAllQuery struct {
	Query repoargs.Query
	Page  uint
	Limit uint
}

// Mapper переводит DTO в формы запросов репозитория. Подключается к CRUD как
// стратегия через композицию, своя реализация на каждую сущность.
type Mapper[E, C, U, F any] interface {
	ToCreatePayload(args C) E
	ToUpdatePayload(args U) repoargs.Patch
	ToFindAllQuery(args F) FindAllQuery
	ToFindOneQuery(id int64) repoargs.Query
}

// CRUD обобщенный сервис над парой репозиторий+маппер. Слой прозрачен для ошибок:
// всё, что вернул репозиторий, уходит наверх как есть. Единственная собственная
// семантика - пустой поиск по id приходит как domain.ErrRecordNotFound.
type CRUD[E, C, U, F any] struct {
	repo   domain.Repository[E]
	mapper Mapper[E, C, U, F]
}

func NewCRUD[E, C, U, F any](repo domain.Repository[E], mapper Mapper[E, C, U, F]) *CRUD[E, C, U, F] {
	return &CRUD[E, C, U, F]{
		repo:   repo,
		mapper: mapper,
	}
}

func (s *CRUD[E, C, U, F]) Create(ctx context.Context, args C) (*E, error) {
	payload := s.mapper.ToCreatePayload(args)
	entity, err := s.repo.Save(ctx, payload)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return entity, nil
}

func (s *CRUD[E, C, U, F]) FindAll(ctx context.Context, args F) (*pagination.Page[E], error) {
	q := s.mapper.ToFindAllQuery(args)
	entities, total, err := s.repo.FindAndCount(ctx, q.Query)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	page := pagination.Paginate(entities, total, q.Page, q.Limit)
	return &page, nil
}

func (s *CRUD[E, C, U, F]) FindByID(ctx context.Context, id int64) (*E, error) {
	entity, err := s.repo.FindOne(ctx, s.mapper.ToFindOneQuery(id))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return entity, nil
}

// UpdateByID сперва убеждается что запись существует, затем применяет частичное
// обновление и возвращает перечитанную запись.
func (s *CRUD[E, C, U, F]) UpdateByID(ctx context.Context, id int64, args U) (*E, error) {
	if _, err := s.FindByID(ctx, id); err != nil {
		return nil, err
	}

	patch := s.mapper.ToUpdatePayload(args)
	if len(patch) > 0 {
		if _, err := s.repo.Update(ctx, id, patch); err != nil {
			return nil, err //nolint:wrapcheck
		}
	}
	return s.FindByID(ctx, id)
}

// RemoveByID мягко удаляет запись и возвращает её снимок до удаления.
func (s *CRUD[E, C, U, F]) RemoveByID(ctx context.Context, id int64) (*E, error) {
	entity, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.SoftDelete(ctx, id); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return entity, nil
}

// normalizePageLimit подставляет дефолты вместо нулевых страницы и лимита.
func normalizePageLimit(page, limit uint) (uint, uint) {
	if page == 0 {
		page = DefaultPage
	}
	if limit == 0 {
		limit = DefaultLimit
	}
	return page, limit
}
