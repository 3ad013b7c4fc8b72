package service_test

import (
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/fsdevblog/groph-referral/internal/domain"
	"github.com/fsdevblog/groph-referral/internal/service"
	"github.com/fsdevblog/groph-referral/internal/service/mocks"
	"github.com/fsdevblog/groph-referral/internal/service/tokens"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type AuthServiceTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockUsers   *mocks.MockUserDirectory
	mockPsswd   *mocks.MockPasswordHasher
	conf        service.TokenConfig
	authService *service.AuthService
}

func TestAuthServiceSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}

func (s *AuthServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUsers = mocks.NewMockUserDirectory(s.mockCtrl)
	s.mockPsswd = mocks.NewMockPasswordHasher(s.mockCtrl)

	s.conf = service.TokenConfig{
		Secret:        []byte("access secret"),
		RefreshSecret: []byte("refresh secret"),
		Expire:        time.Hour,
		RefreshExpire: 2 * time.Hour,
	}
	s.authService = service.NewAuthService(s.mockUsers, s.mockPsswd, s.conf)
}

func (s *AuthServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *AuthServiceTestSuite) TestValidateUser() {
	username := gofakeit.Username()
	password := gofakeit.Password(true, true, true, false, false, 12)
	hashedPassword := "hash ok"

	savedUser := domain.User{
		ID:           1,
		Username:     username,
		Password:     hashedPassword,
		ReferralCode: "AAA111",
	}

	s.Run("ok", func() {
		s.mockUsers.EXPECT().FindByUsername(gomock.Any(), username).Return(&savedUser, nil)
		s.mockPsswd.EXPECT().ComparePassword(password, hashedPassword).Return(true)

		user, err := s.authService.ValidateUser(s.T().Context(), username, password)
		s.Require().NoError(err)
		s.Require().NotNil(user)
		// наружу юзер уходит без пароля
		s.Empty(user.Password)
		s.Equal(savedUser.ID, user.ID)
	})

	s.Run("unknown username", func() {
		s.mockUsers.EXPECT().FindByUsername(gomock.Any(), "wrong").Return(nil, nil)

		user, err := s.authService.ValidateUser(s.T().Context(), "wrong", password)
		s.Require().ErrorIs(err, domain.ErrRecordNotFound)
		s.Nil(user)
	})

	s.Run("wrong password", func() {
		s.mockUsers.EXPECT().FindByUsername(gomock.Any(), username).Return(&savedUser, nil)
		s.mockPsswd.EXPECT().ComparePassword("wrong pass", hashedPassword).Return(false)

		user, err := s.authService.ValidateUser(s.T().Context(), username, "wrong pass")
		s.Require().ErrorIs(err, domain.ErrPasswordMissMatch)
		s.Nil(user)
	})

	s.Run("account without password", func() {
		noPass := savedUser
		noPass.Password = ""
		s.mockUsers.EXPECT().FindByUsername(gomock.Any(), username).Return(&noPass, nil)

		user, err := s.authService.ValidateUser(s.T().Context(), username, password)
		s.Require().NoError(err)
		s.Nil(user)
	})
}

func (s *AuthServiceTestSuite) TestLogin() {
	user := domain.User{
		ID:           42,
		Username:     gofakeit.Username(),
		ReferralCode: "XYZ789",
	}

	result, err := s.authService.Login(&user)
	s.Require().NoError(err)
	s.Require().NotNil(result)
	s.NotEmpty(result.AccessToken)
	s.NotEmpty(result.RefreshToken)

	// access токен подписан основным секретом
	accessClaims, accessErr := tokens.ParseUserJWT(result.AccessToken, s.conf.Secret)
	s.Require().NoError(accessErr)
	s.Equal(user.ID, accessClaims.UserID)
	s.Equal(user.Username, accessClaims.Username)
	s.Equal(user.ReferralCode, accessClaims.ReferralCode)

	// рефреш токен - отдельным
	refreshClaims, refreshErr := tokens.ParseUserJWT(result.RefreshToken, s.conf.RefreshSecret)
	s.Require().NoError(refreshErr)
	s.Equal(user.ID, refreshClaims.UserID)

	// секреты не взаимозаменяемы
	_, crossErr := tokens.ParseUserJWT(result.AccessToken, s.conf.RefreshSecret)
	s.Require().Error(crossErr)
}

func (s *AuthServiceTestSuite) TestLoginByRefreshToken() {
	user := domain.User{
		ID:           7,
		Username:     gofakeit.Username(),
		ReferralCode: "REF007",
	}

	issued, issueErr := s.authService.Login(&user)
	s.Require().NoError(issueErr)

	s.Run("ok", func() {
		s.mockUsers.EXPECT().FindByUsername(gomock.Any(), user.Username).Return(&user, nil)

		result, err := s.authService.LoginByRefreshToken(s.T().Context(), issued.RefreshToken)
		s.Require().NoError(err)
		s.Equal(user.ID, result.User.ID)
		s.NotEmpty(result.AccessToken)
		s.NotEmpty(result.RefreshToken)
	})

	s.Run("access token is not a refresh token", func() {
		_, err := s.authService.LoginByRefreshToken(s.T().Context(), issued.AccessToken)
		s.Require().Error(err)
	})

	s.Run("user deleted after token issue", func() {
		s.mockUsers.EXPECT().FindByUsername(gomock.Any(), user.Username).Return(nil, nil)

		_, err := s.authService.LoginByRefreshToken(s.T().Context(), issued.RefreshToken)
		s.Require().ErrorIs(err, domain.ErrRecordNotFound)
	})

	s.Run("expired token", func() {
		expiredConf := s.conf
		expiredConf.RefreshExpire = -time.Minute
		expiredService := service.NewAuthService(s.mockUsers, s.mockPsswd, expiredConf)

		expired, expiredErr := expiredService.Login(&user)
		s.Require().NoError(expiredErr)

		_, err := s.authService.LoginByRefreshToken(s.T().Context(), expired.RefreshToken)
		s.Require().ErrorIs(err, tokens.ErrTokenExpired)
	})
}

func (s *AuthServiceTestSuite) TestRegister() {
	args := service.RegisterArgs{
		Username:     gofakeit.Username(),
		Password:     gofakeit.Password(true, true, true, false, false, 12),
		ReferralCode: "AAA111",
	}
	created := domain.User{ID: 11, Username: args.Username}

	s.mockUsers.EXPECT().
		Create(gomock.Any(), service.CreateUserArgs{
			Username:     args.Username,
			Password:     args.Password,
			ReferralCode: args.ReferralCode,
		}).
		Return(&created, nil)

	user, err := s.authService.Register(s.T().Context(), args)
	s.Require().NoError(err)
	s.Equal(created.ID, user.ID)
}
