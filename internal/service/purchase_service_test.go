package service_test

import (
	"testing"

	"github.com/fsdevblog/groph-referral/internal/domain"
	repomocks "github.com/fsdevblog/groph-referral/internal/domain/mocks"
	"github.com/fsdevblog/groph-referral/internal/repository/repoargs"
	"github.com/fsdevblog/groph-referral/internal/service"
	"github.com/fsdevblog/groph-referral/internal/service/mocks"
	"github.com/fsdevblog/groph-referral/pkg/uow"
	uowmocks "github.com/fsdevblog/groph-referral/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type PurchaseServiceTestSuite struct {
	suite.Suite
	mockCtrl         *gomock.Controller
	mockUOW          *uowmocks.MockUOW
	mockPurchaseRepo *repomocks.MockPurchaseRepository
	mockUsers        *mocks.MockReferralUsers
	purchaseService  *service.PurchaseService
}

func TestPurchaseServiceSuite(t *testing.T) {
	suite.Run(t, new(PurchaseServiceTestSuite))
}

func (s *PurchaseServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockPurchaseRepo = repomocks.NewMockPurchaseRepository(s.mockCtrl)
	s.mockUsers = mocks.NewMockReferralUsers(s.mockCtrl)

	// Мок получения репозитория из uow. Выполняется в инициализации сервиса.
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.PurchaseRepoName)).
		Return(s.mockPurchaseRepo, nil).AnyTimes()

	purchaseService, servErr := service.NewPurchaseService(s.mockUOW, s.mockUsers)
	s.Require().NoError(servErr)
	s.purchaseService = purchaseService
}

func (s *PurchaseServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *PurchaseServiceTestSuite) expectSave(userID int64, amount decimal.Decimal) {
	s.mockPurchaseRepo.EXPECT().
		Save(gomock.Any(), domain.Purchase{UserID: userID, Amount: amount}).
		DoAndReturn(func(_ interface{}, payload domain.Purchase) (*domain.Purchase, error) {
			saved := payload
			saved.ID = 1
			return &saved, nil
		})
}

// Цепочка buyer -> tier1 -> tier2 -> tier3: первый уровень получает 10% суммы,
// второй 5%, до третьего обход не доходит.
func (s *PurchaseServiceTestSuite) TestCreatePropagatesTwoLevels() {
	var tier3ID int64 = 1
	tier2 := domain.User{ID: 2, Referrer: &tier3ID, Earnings: decimal.NewFromInt(100)}
	tier1 := domain.User{ID: 3, Referrer: &tier2.ID, Earnings: decimal.NewFromInt(20)}
	buyer := domain.User{ID: 4, Referrer: &tier1.ID}

	amount := decimal.NewFromInt(200)
	s.expectSave(buyer.ID, amount)

	s.mockUsers.EXPECT().FindByID(gomock.Any(), buyer.ID).Return(&buyer, nil)
	s.mockUsers.EXPECT().FindReferrer(gomock.Any(), tier1.ID).Return(&tier1, nil)
	s.mockUsers.EXPECT().FindByID(gomock.Any(), tier1.ID).Return(&tier1, nil)
	s.mockUsers.EXPECT().FindReferrer(gomock.Any(), tier2.ID).Return(&tier2, nil)

	// 10% и 5% считаются от исходной суммы покупки, не от чужих начислений.
	// Третий уровень не трогается вовсе: ровно два обновления.
	s.mockUsers.EXPECT().
		UpdateEarning(gomock.Any(), tier1.ID, gomock.Any()).
		DoAndReturn(func(_ interface{}, _ int64, earnings decimal.Decimal) (bool, error) {
			s.True(earnings.Equal(decimal.NewFromInt(40))) // 20 + 200*0.10
			return true, nil
		})
	s.mockUsers.EXPECT().
		UpdateEarning(gomock.Any(), tier2.ID, gomock.Any()).
		DoAndReturn(func(_ interface{}, _ int64, earnings decimal.Decimal) (bool, error) {
			s.True(earnings.Equal(decimal.NewFromInt(110))) // 100 + 200*0.05
			return true, nil
		})

	purchase, err := s.purchaseService.Create(s.T().Context(), service.CreatePurchaseArgs{
		UserID: buyer.ID,
		Amount: amount,
	})
	s.Require().NoError(err)
	s.True(purchase.Amount.Equal(amount))
}

func (s *PurchaseServiceTestSuite) TestCreateWithoutReferrer() {
	buyer := domain.User{ID: 5}
	amount := decimal.NewFromInt(50)

	s.expectSave(buyer.ID, amount)
	s.mockUsers.EXPECT().FindByID(gomock.Any(), buyer.ID).Return(&buyer, nil)
	// начислений нет
	s.mockUsers.EXPECT().UpdateEarning(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := s.purchaseService.Create(s.T().Context(), service.CreatePurchaseArgs{
		UserID: buyer.ID,
		Amount: amount,
	})
	s.Require().NoError(err)
}

// Ссылка на пригласившего есть, но самого юзера уже не найти: обход завершается
// тихо, без начислений и без ошибки.
func (s *PurchaseServiceTestSuite) TestCreateWithDanglingReferrer() {
	var missingID int64 = 404
	buyer := domain.User{ID: 6, Referrer: &missingID}
	amount := decimal.NewFromInt(75)

	s.expectSave(buyer.ID, amount)
	s.mockUsers.EXPECT().FindByID(gomock.Any(), buyer.ID).Return(&buyer, nil)
	s.mockUsers.EXPECT().FindReferrer(gomock.Any(), missingID).Return(nil, nil)
	s.mockUsers.EXPECT().UpdateEarning(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := s.purchaseService.Create(s.T().Context(), service.CreatePurchaseArgs{
		UserID: buyer.ID,
		Amount: amount,
	})
	s.Require().NoError(err)
}

// Одноуровневая цепочка: единственный пригласивший получает свои 10%, на втором
// уровне у него самого пригласившего нет.
func (s *PurchaseServiceTestSuite) TestCreateSingleLevel() {
	tier1 := domain.User{ID: 8, Earnings: decimal.Zero}
	buyer := domain.User{ID: 9, Referrer: &tier1.ID}
	amount := decimal.NewFromInt(120)

	s.expectSave(buyer.ID, amount)
	s.mockUsers.EXPECT().FindByID(gomock.Any(), buyer.ID).Return(&buyer, nil)
	s.mockUsers.EXPECT().FindReferrer(gomock.Any(), tier1.ID).Return(&tier1, nil)
	s.mockUsers.EXPECT().
		UpdateEarning(gomock.Any(), tier1.ID, gomock.Any()).
		DoAndReturn(func(_ interface{}, _ int64, earnings decimal.Decimal) (bool, error) {
			s.True(earnings.Equal(decimal.NewFromInt(12))) // 0 + 120*0.10
			return true, nil
		})
	s.mockUsers.EXPECT().FindByID(gomock.Any(), tier1.ID).Return(&tier1, nil)

	_, err := s.purchaseService.Create(s.T().Context(), service.CreatePurchaseArgs{
		UserID: buyer.ID,
		Amount: amount,
	})
	s.Require().NoError(err)
}
