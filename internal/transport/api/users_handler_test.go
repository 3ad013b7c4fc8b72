package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/fsdevblog/groph-referral/internal/domain"
	"github.com/fsdevblog/groph-referral/internal/logger"
	"github.com/fsdevblog/groph-referral/internal/service"
	"github.com/fsdevblog/groph-referral/internal/service/tokens"
	"github.com/fsdevblog/groph-referral/internal/transport/api/mocks"
	"github.com/fsdevblog/groph-referral/internal/transport/api/testutils"
	"github.com/fsdevblog/groph-referral/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type UsersHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockUserService *mocks.MockUserServicer
	jwtSecret       []byte
	authToken       string
}

func TestUsersHandlerSuite(t *testing.T) {
	suite.Run(t, new(UsersHandlerTestSuite))
}

func (s *UsersHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())

	s.mockUserService = mocks.NewMockUserServicer(mockCtrl)
	s.jwtSecret = []byte("super secret key")

	token, tokenErr := tokens.GenerateUserJWT(1, "admin", "AAA111", time.Hour, s.jwtSecret)
	s.Require().NoError(tokenErr)
	s.authToken = token

	router, routerErr := New(RouterArgs{
		Logger:       logger.New(os.Stdout),
		UserService:  s.mockUserService,
		JWTSecretKey: s.jwtSecret,
	})
	s.Require().NoError(routerErr)
	s.router = router
}

func (s *UsersHandlerTestSuite) TestIndex() {
	users := []domain.User{
		{ID: 1, Username: "alpha", ReferralCode: "AAA111", Earnings: decimal.NewFromInt(10)},
		{ID: 2, Username: "beta", ReferralCode: "BBB222"},
	}
	page := pagination.Paginate(users, 27, 1, 25)

	s.mockUserService.EXPECT().
		FindAll(gomock.Any(), service.FindAllUsersArgs{Username: "a", Page: 1}).
		Return(&page, nil)

	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    RouteGroup + UsersRoute + "?username=a&page=1",
	}, testutils.WithBearerToken(s.authToken))
	s.Require().NoError(err)
	defer func() {
		s.Require().NoError(res.Body.Close())
	}()

	s.Equal(http.StatusOK, res.StatusCode)

	var response UsersPageResponse
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&response))
	s.Len(response.List, 2)
	s.Equal("alpha", response.List[0].Username)
	s.Equal(int64(27), response.Pagination.TotalData)
	s.Equal(uint(2), response.Pagination.TotalPage)
}

func (s *UsersHandlerTestSuite) TestIndexUnauthorized() {
	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    RouteGroup + UsersRoute,
	})
	s.Require().NoError(err)
	defer func() {
		s.Require().NoError(res.Body.Close())
	}()

	s.Equal(http.StatusUnauthorized, res.StatusCode)
}

func (s *UsersHandlerTestSuite) TestShow() {
	user := domain.User{ID: 3, Username: "gamma", ReferralCode: "CCC333"}

	s.mockUserService.EXPECT().FindByID(gomock.Any(), int64(3)).Return(&user, nil)
	s.mockUserService.EXPECT().FindByID(gomock.Any(), int64(404)).Return(nil, domain.ErrRecordNotFound)

	cases := []struct {
		name       string
		id         string
		wantStatus int
	}{
		{name: "ok", id: "3", wantStatus: http.StatusOK},
		{name: "not found", id: "404", wantStatus: http.StatusNotFound},
		{name: "bad id", id: "abc", wantStatus: http.StatusBadRequest},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			res, err := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodGet,
				URL:    fmt.Sprintf("%s/users/%s", RouteGroup, t.id),
			}, testutils.WithBearerToken(s.authToken))
			s.Require().NoError(err)
			defer func() {
				s.Require().NoError(res.Body.Close())
			}()

			s.Equal(t.wantStatus, res.StatusCode)

			if t.wantStatus == http.StatusOK {
				var response UserResponse
				s.Require().NoError(json.NewDecoder(res.Body).Decode(&response))
				s.Equal(user.Username, response.Username)
			}
		})
	}
}

func (s *UsersHandlerTestSuite) TestUpdate() {
	updated := domain.User{ID: 3, Username: "renamed", ReferralCode: "CCC333"}
	var excludedID int64 = 3

	s.mockUserService.EXPECT().
		IsUsernameExist(gomock.Any(), "renamed", &excludedID).
		Return(false, nil)
	s.mockUserService.EXPECT().
		UpdateByID(gomock.Any(), int64(3), service.UpdateUserArgs{Username: "renamed"}).
		Return(&updated, nil)

	s.mockUserService.EXPECT().
		IsUsernameExist(gomock.Any(), "taken", &excludedID).
		Return(true, nil)

	cases := []struct {
		name       string
		payload    UserUpdateParams
		wantStatus int
	}{
		{name: "ok", payload: UserUpdateParams{Username: "renamed"}, wantStatus: http.StatusOK},
		{name: "username taken", payload: UserUpdateParams{Username: "taken"}, wantStatus: http.StatusConflict},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			body, marshalErr := json.Marshal(t.payload)
			s.Require().NoError(marshalErr)

			res, err := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPatch,
				URL:    RouteGroup + "/users/3",
				Body:   bytes.NewReader(body),
			}, testutils.WithBearerToken(s.authToken), testutils.WithHeader("Content-Type", "application/json"))
			s.Require().NoError(err)
			defer func() {
				s.Require().NoError(res.Body.Close())
			}()

			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}

func (s *UsersHandlerTestSuite) TestDelete() {
	removed := domain.User{ID: 3, Username: "gamma"}

	s.mockUserService.EXPECT().RemoveByID(gomock.Any(), int64(3)).Return(&removed, nil)
	s.mockUserService.EXPECT().RemoveByID(gomock.Any(), int64(404)).Return(nil, domain.ErrRecordNotFound)

	cases := []struct {
		name       string
		id         string
		wantStatus int
	}{
		{name: "ok", id: "3", wantStatus: http.StatusOK},
		{name: "not found", id: "404", wantStatus: http.StatusNotFound},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			res, err := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodDelete,
				URL:    fmt.Sprintf("%s/users/%s", RouteGroup, t.id),
			}, testutils.WithBearerToken(s.authToken))
			s.Require().NoError(err)
			defer func() {
				s.Require().NoError(res.Body.Close())
			}()

			s.Equal(t.wantStatus, res.StatusCode)

			if t.wantStatus == http.StatusOK {
				var response UserResponse
				s.Require().NoError(json.NewDecoder(res.Body).Decode(&response))
				s.Equal(removed.Username, response.Username)
			}
		})
	}
}
