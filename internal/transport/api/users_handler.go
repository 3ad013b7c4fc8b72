package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/fsdevblog/groph-referral/internal/domain"
	"github.com/fsdevblog/groph-referral/internal/service"
	"github.com/fsdevblog/groph-referral/pkg/pagination"
	"github.com/gin-gonic/gin"
)

type UsersHandler struct {
	userSvs UserServicer
}

func NewUsersHandler(userSvs UserServicer) *UsersHandler {
	return &UsersHandler{
		userSvs: userSvs,
	}
}

type UsersIndexParams struct {
	Page             uint   `binding:"omitempty"                       form:"page"`
	Limit            uint   `binding:"omitempty,max=100"               form:"limit"`
	Username         string `binding:"omitempty,max=20"                form:"username"`
	ReferralCode     string `binding:"omitempty,len=6,alphanum_upper"  form:"referralCode"`
	ReferrerUsername string `binding:"omitempty,max=20"                form:"referrerUsername"`
	ReferrerID       *int64 `binding:"omitempty,gt=0"                  form:"referrerId"`
}

type UsersPageResponse struct {
	List       []UserResponse        `json:"list"`
	Pagination pagination.Pagination `json:"pagination"`
}

// Index GET RouteGroup + UsersRoute. Страница юзеров с фильтрами по точным и
// подстрочным полям.
func (h *UsersHandler) Index(c *gin.Context) {
	var params UsersIndexParams
	if bindErr := c.ShouldBindQuery(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	page, err := h.userSvs.FindAll(reqCtx, service.FindAllUsersArgs{
		Page:             params.Page,
		Limit:            params.Limit,
		Username:         params.Username,
		ReferralCode:     params.ReferralCode,
		ReferrerUsername: params.ReferrerUsername,
		ReferrerID:       params.ReferrerID,
	})
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	list := make([]UserResponse, len(page.List))
	for i := range page.List {
		list[i] = newUserResponse(&page.List[i])
	}

	c.JSON(http.StatusOK, UsersPageResponse{
		List:       list,
		Pagination: page.Pagination,
	})
}

// Show GET RouteGroup + UserRoute.
func (h *UsersHandler) Show(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, err := h.userSvs.FindByID(reqCtx, id)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, newUserResponse(user))
}

type UserUpdateParams struct {
	Username string `binding:"omitempty,min=1,max=20"       json:"username"`
	Password string `binding:"omitempty,min=6,max_bytes=72" json:"password"`
}

// Update PATCH RouteGroup + UserRoute. Частичное обновление: пустые поля не трогаются.
// Новый юзернейм проверяется на занятость с исключением собственной записи.
func (h *UsersHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	var params UserUpdateParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if params.Username != "" {
		taken, existErr := h.userSvs.IsUsernameExist(reqCtx, params.Username, &id)
		if existErr != nil {
			_ = c.AbortWithError(http.StatusInternalServerError, existErr).SetType(gin.ErrorTypePrivate)
			return
		}
		if taken {
			_ = c.AbortWithError(http.StatusConflict, errors.New("user with this username already exists")).
				SetType(gin.ErrorTypePublic)
			return
		}
	}

	user, updateErr := h.userSvs.UpdateByID(reqCtx, id, service.UpdateUserArgs{
		Username: params.Username,
		Password: params.Password,
	})
	if updateErr != nil {
		switch {
		case errors.Is(updateErr, domain.ErrRecordNotFound):
			c.AbortWithStatus(http.StatusNotFound)
		case errors.Is(updateErr, domain.ErrDuplicateKey):
			_ = c.AbortWithError(http.StatusConflict, errors.New("user with this username already exists")).
				SetType(gin.ErrorTypePublic)
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, updateErr).SetType(gin.ErrorTypePrivate)
		}
		return
	}

	c.JSON(http.StatusOK, newUserResponse(user))
}

// Delete DELETE RouteGroup + UserRoute. Мягкое удаление, в ответе удаленная запись.
func (h *UsersHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, err := h.userSvs.RemoveByID(reqCtx, id)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, newUserResponse(user))
}
