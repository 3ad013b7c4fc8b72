package service

import (
	"context"
	"fmt"
	"time"

	"github.com/fsdevblog/groph-referral/internal/domain"
	"github.com/fsdevblog/groph-referral/internal/service/tokens"
)

// TokenConfig секреты и время жизни пары токенов. Рефреш токен подписывается
// собственным секретом.
type TokenConfig struct {
	Secret        []byte
	RefreshSecret []byte
	Expire        time.Duration
	RefreshExpire time.Duration
}

// LoginResult юзер без пароля и свежая пара токенов.
type LoginResult struct {
	User         *domain.User
	AccessToken  string
	RefreshToken string
}

type RegisterArgs struct {
	Username     string
	Password     string
	ReferralCode string
}

type AuthService struct {
	users  UserDirectory
	hasher PasswordHasher
	conf   TokenConfig
}

func NewAuthService(users UserDirectory, hasher PasswordHasher, conf TokenConfig) *AuthService {
	return &AuthService{
		users:  users,
		hasher: hasher,
		conf:   conf,
	}
}

// ValidateUser проверяет пару логин/пароль. Несуществующий юзернейм приходит как
// domain.ErrRecordNotFound, неверный пароль - как domain.ErrPasswordMissMatch
// (transport мапит оба в 401). Юзер без сохраненного пароля - нерабочее состояние
// аккаунта: возвращается nil без ошибки, это не то же самое что неверные реквизиты.
func (s *AuthService) ValidateUser(ctx context.Context, username, password string) (*domain.User, error) {
	user, findErr := s.users.FindByUsername(ctx, username)
	if findErr != nil {
		return nil, fmt.Errorf("validating user: %w", findErr)
	}
	if user == nil {
		return nil, fmt.Errorf("validating user %s: %w", username, domain.ErrRecordNotFound)
	}
	if user.Password == "" {
		return nil, nil
	}
	if !s.hasher.ComparePassword(password, user.Password) {
		return nil, fmt.Errorf("validating user %s: %w", username, domain.ErrPasswordMissMatch)
	}

	sanitized := *user
	sanitized.Password = ""
	return &sanitized, nil
}

// Login выпускает пару токенов с полезной нагрузкой {userId, username, referralCode}:
// короткоживущий access и рефреш с отдельным секретом и сроком.
func (s *AuthService) Login(user *domain.User) (*LoginResult, error) {
	access, accessErr := tokens.GenerateUserJWT(user.ID, user.Username, user.ReferralCode, s.conf.Expire, s.conf.Secret)
	if accessErr != nil {
		return nil, fmt.Errorf("login: %s", accessErr.Error())
	}

	refresh, refreshErr := tokens.GenerateUserJWT(
		user.ID, user.Username, user.ReferralCode, s.conf.RefreshExpire, s.conf.RefreshSecret,
	)
	if refreshErr != nil {
		return nil, fmt.Errorf("login: %s", refreshErr.Error())
	}

	return &LoginResult{
		User:         user,
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}

// LoginByRefreshToken проверяет рефреш токен его секретом, заново резолвит юзера по
// юзернейму из клеймов и выпускает свежую пару токенов. Просроченный или битый токен
// приходит как ошибка tokens (transport мапит в 401).
func (s *AuthService) LoginByRefreshToken(ctx context.Context, refreshToken string) (*LoginResult, error) {
	claims, parseErr := tokens.ParseUserJWT(refreshToken, s.conf.RefreshSecret)
	if parseErr != nil {
		return nil, fmt.Errorf("login by refresh token: %w", parseErr)
	}

	user, findErr := s.users.FindByUsername(ctx, claims.Username)
	if findErr != nil {
		return nil, fmt.Errorf("login by refresh token: %w", findErr)
	}
	if user == nil {
		return nil, fmt.Errorf("login by refresh token: %w", domain.ErrRecordNotFound)
	}

	sanitized := *user
	sanitized.Password = ""
	return s.Login(&sanitized)
}

// Register делегирует регистрацию юзер-сервису.
func (s *AuthService) Register(ctx context.Context, args RegisterArgs) (*domain.User, error) {
	user, err := s.users.Create(ctx, CreateUserArgs{
		Username:     args.Username,
		Password:     args.Password,
		ReferralCode: args.ReferralCode,
	})
	if err != nil {
		return nil, fmt.Errorf("registering user: %w", err)
	}
	return user, nil
}
