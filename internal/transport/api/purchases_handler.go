package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/fsdevblog/groph-referral/internal/domain"
	"github.com/fsdevblog/groph-referral/internal/service"
	"github.com/fsdevblog/groph-referral/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type PurchasesHandler struct {
	purchaseSvs PurchaseServicer
}

func NewPurchasesHandler(purchaseSvs PurchaseServicer) *PurchasesHandler {
	return &PurchasesHandler{
		purchaseSvs: purchaseSvs,
	}
}

type PurchaseCreateParams struct {
	Amount decimal.Decimal `binding:"required" json:"amount"`
}

// Create POST RouteGroup + PurchasesRoute. Регистрирует покупку текущего юзера и
// запускает начисление реферальных вознаграждений.
func (h *PurchasesHandler) Create(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params PurchaseCreateParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	if !params.Amount.IsPositive() {
		_ = c.AbortWithError(http.StatusUnprocessableEntity, errors.New("amount must be positive")).
			SetType(gin.ErrorTypePublic)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	purchase, createErr := h.purchaseSvs.Create(reqCtx, service.CreatePurchaseArgs{
		UserID: currentUserID,
		Amount: params.Amount,
	})
	if createErr != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, createErr).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusCreated, newPurchaseResponse(purchase))
}

type PurchasesIndexParams struct {
	Page        uint             `binding:"omitempty"         form:"page"`
	Limit       uint             `binding:"omitempty,max=100" form:"limit"`
	UserID      *int64           `binding:"omitempty,gt=0"    form:"userId"`
	StartAmount *decimal.Decimal `binding:"omitempty"         form:"startAmount"`
	EndAmount   *decimal.Decimal `binding:"omitempty"         form:"endAmount"`
}

type PurchasesPageResponse struct {
	List       []PurchaseResponse    `json:"list"`
	Pagination pagination.Pagination `json:"pagination"`
}

// Index GET RouteGroup + PurchasesRoute. Страница покупок с фильтрами по покупателю
// и диапазону сумм.
func (h *PurchasesHandler) Index(c *gin.Context) {
	var params PurchasesIndexParams
	if bindErr := c.ShouldBindQuery(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	page, err := h.purchaseSvs.FindAll(reqCtx, service.FindAllPurchasesArgs{
		Page:             params.Page,
		Limit:            params.Limit,
		UserID:           params.UserID,
		StartRangeAmount: params.StartAmount,
		EndRangeAmount:   params.EndAmount,
	})
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	list := make([]PurchaseResponse, len(page.List))
	for i := range page.List {
		list[i] = newPurchaseResponse(&page.List[i])
	}

	c.JSON(http.StatusOK, PurchasesPageResponse{
		List:       list,
		Pagination: page.Pagination,
	})
}

// Show GET RouteGroup + PurchaseRoute. Точечная выборка подгружает покупателя.
func (h *PurchasesHandler) Show(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	purchase, err := h.purchaseSvs.FindByID(reqCtx, id)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, newPurchaseResponse(purchase))
}

// Delete DELETE RouteGroup + PurchaseRoute. Мягкое удаление, начисленные вознаграждения
// не откатываются.
func (h *PurchasesHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	purchase, err := h.purchaseSvs.RemoveByID(reqCtx, id)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, newPurchaseResponse(purchase))
}
