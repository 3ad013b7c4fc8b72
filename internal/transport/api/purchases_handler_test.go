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

type PurchasesHandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockPurchaseService *mocks.MockPurchaseServicer
	jwtSecret           []byte
	currentUserID       int64
	authToken           string
}

func TestPurchasesHandlerSuite(t *testing.T) {
	suite.Run(t, new(PurchasesHandlerTestSuite))
}

func (s *PurchasesHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())

	s.mockPurchaseService = mocks.NewMockPurchaseServicer(mockCtrl)
	s.jwtSecret = []byte("super secret key")
	s.currentUserID = 15

	token, tokenErr := tokens.GenerateUserJWT(s.currentUserID, "buyer", "AAA111", time.Hour, s.jwtSecret)
	s.Require().NoError(tokenErr)
	s.authToken = token

	router, routerErr := New(RouterArgs{
		Logger:          logger.New(os.Stdout),
		PurchaseService: s.mockPurchaseService,
		JWTSecretKey:    s.jwtSecret,
	})
	s.Require().NoError(routerErr)
	s.router = router
}

func (s *PurchasesHandlerTestSuite) TestCreate() {
	amount := decimal.NewFromFloat(99.90)
	created := domain.Purchase{ID: 1, UserID: s.currentUserID, Amount: amount}

	// покупка всегда пишется на юзера из токена
	s.mockPurchaseService.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, args service.CreatePurchaseArgs) (*domain.Purchase, error) {
			s.Equal(s.currentUserID, args.UserID)
			s.True(args.Amount.Equal(amount))
			return &created, nil
		})

	cases := []struct {
		name       string
		payload    string
		token      string
		wantStatus int
	}{
		{name: "ok", payload: `{"amount": 99.90}`, token: s.authToken, wantStatus: http.StatusCreated},
		{name: "negative amount", payload: `{"amount": -5}`, token: s.authToken, wantStatus: http.StatusUnprocessableEntity},
		{name: "zero amount", payload: `{"amount": 0}`, token: s.authToken, wantStatus: http.StatusUnprocessableEntity},
		{name: "not authorized", payload: `{"amount": 10}`, wantStatus: http.StatusUnauthorized},
		{name: "garbage payload", payload: `{"amount": "abc"`, token: s.authToken, wantStatus: http.StatusBadRequest},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			var reqOpts []func(*testutils.RequestOptions)
			if t.token != "" {
				reqOpts = append(reqOpts, testutils.WithBearerToken(t.token))
			}
			reqOpts = append(reqOpts, testutils.WithHeader("Content-Type", "application/json"))

			res, err := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    RouteGroup + PurchasesRoute,
				Body:   bytes.NewReader([]byte(t.payload)),
			}, reqOpts...)
			s.Require().NoError(err)
			defer func() {
				s.Require().NoError(res.Body.Close())
			}()

			s.Equal(t.wantStatus, res.StatusCode)

			if t.wantStatus == http.StatusCreated {
				var response PurchaseResponse
				s.Require().NoError(json.NewDecoder(res.Body).Decode(&response))
				s.Equal(created.ID, response.ID)
				s.InEpsilon(99.90, response.Amount, 0.0001)
			}
		})
	}
}

func (s *PurchasesHandlerTestSuite) TestIndex() {
	purchases := []domain.Purchase{
		{ID: 1, UserID: 15, Amount: decimal.NewFromInt(100)},
		{ID: 2, UserID: 15, Amount: decimal.NewFromInt(250)},
	}
	page := pagination.Paginate(purchases, 2, 1, 25)

	var filterUserID int64 = 15
	start := decimal.NewFromInt(50)

	s.mockPurchaseService.EXPECT().
		FindAll(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, args service.FindAllPurchasesArgs) (*pagination.Page[domain.Purchase], error) {
			s.Require().NotNil(args.UserID)
			s.Equal(filterUserID, *args.UserID)
			s.Require().NotNil(args.StartRangeAmount)
			s.True(args.StartRangeAmount.Equal(start))
			s.Nil(args.EndRangeAmount)
			return &page, nil
		})

	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    RouteGroup + PurchasesRoute + "?userId=15&startAmount=50",
	}, testutils.WithBearerToken(s.authToken))
	s.Require().NoError(err)
	defer func() {
		s.Require().NoError(res.Body.Close())
	}()

	s.Equal(http.StatusOK, res.StatusCode)

	var response PurchasesPageResponse
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&response))
	s.Len(response.List, 2)
	s.Equal(int64(2), response.Pagination.TotalData)
}

func (s *PurchasesHandlerTestSuite) TestShow() {
	buyer := domain.User{ID: 15, Username: "buyer", ReferralCode: "AAA111"}
	purchase := domain.Purchase{ID: 7, UserID: buyer.ID, Amount: decimal.NewFromInt(42), User: &buyer}

	s.mockPurchaseService.EXPECT().FindByID(gomock.Any(), int64(7)).Return(&purchase, nil)
	s.mockPurchaseService.EXPECT().FindByID(gomock.Any(), int64(404)).Return(nil, domain.ErrRecordNotFound)

	cases := []struct {
		name       string
		id         string
		wantStatus int
	}{
		{name: "ok", id: "7", wantStatus: http.StatusOK},
		{name: "not found", id: "404", wantStatus: http.StatusNotFound},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			res, err := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodGet,
				URL:    fmt.Sprintf("%s/purchases/%s", RouteGroup, t.id),
			}, testutils.WithBearerToken(s.authToken))
			s.Require().NoError(err)
			defer func() {
				s.Require().NoError(res.Body.Close())
			}()

			s.Equal(t.wantStatus, res.StatusCode)

			if t.wantStatus == http.StatusOK {
				var response PurchaseResponse
				s.Require().NoError(json.NewDecoder(res.Body).Decode(&response))
				s.Equal(purchase.ID, response.ID)
				// точечная выборка включает покупателя
				s.Require().NotNil(response.User)
				s.Equal(buyer.Username, response.User.Username)
			}
		})
	}
}

func (s *PurchasesHandlerTestSuite) TestDelete() {
	purchase := domain.Purchase{ID: 7, UserID: 15, Amount: decimal.NewFromInt(42)}

	s.mockPurchaseService.EXPECT().RemoveByID(gomock.Any(), int64(7)).Return(&purchase, nil)

	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodDelete,
		URL:    RouteGroup + "/purchases/7",
	}, testutils.WithBearerToken(s.authToken))
	s.Require().NoError(err)
	defer func() {
		s.Require().NoError(res.Body.Close())
	}()

	s.Equal(http.StatusOK, res.StatusCode)
}
