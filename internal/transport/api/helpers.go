package api

import (
	"strconv"
	"time"

	"github.com/fsdevblog/groph-referral/internal/domain"
	"github.com/fsdevblog/groph-referral/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
)

// getUserIDFromContext берет из контекста gin ID текущего юзера. ID устанавливается в
// middlewares.AuthRequired. В случае, если значения в контексте нет или ошибка утверждения типа -
// вернется 0.
func getUserIDFromContext(c *gin.Context) int64 {
	userIDVal, exist := c.Get(middlewares.CurrentUserIDKey)
	if !exist {
		return 0
	}
	userID, ok := userIDVal.(int64)
	if !ok {
		return 0
	}
	return userID
}

// parseIDParam разбирает path параметр :id. Нечисловые и неположительные значения
// считаются невалидными.
func parseIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

type UserResponse struct {
	ID           int64     `json:"userId"`
	Username     string    `json:"username"`
	ReferralCode string    `json:"referralCode"`
	Referrer     *int64    `json:"referrer,omitempty"`
	Earnings     float64   `json:"earnings"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// newUserResponse собирает ответ без чувствительных полей: пароль наружу не отдаем.
func newUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:           user.ID,
		Username:     user.Username,
		ReferralCode: user.ReferralCode,
		Referrer:     user.Referrer,
		Earnings:     user.Earnings.InexactFloat64(),
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}

type PurchaseResponse struct {
	ID        int64         `json:"purchaseId"`
	UserID    int64         `json:"userId"`
	Amount    float64       `json:"amount"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
	User      *UserResponse `json:"user,omitempty"`
}

func newPurchaseResponse(purchase *domain.Purchase) PurchaseResponse {
	response := PurchaseResponse{
		ID:        purchase.ID,
		UserID:    purchase.UserID,
		Amount:    purchase.Amount.InexactFloat64(),
		CreatedAt: purchase.CreatedAt,
		UpdatedAt: purchase.UpdatedAt,
	}
	if purchase.User != nil {
		user := newUserResponse(purchase.User)
		response.User = &user
	}
	return response
}
