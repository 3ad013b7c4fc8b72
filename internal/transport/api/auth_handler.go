package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/fsdevblog/groph-referral/internal/domain"
	"github.com/fsdevblog/groph-referral/internal/service"
	"github.com/fsdevblog/groph-referral/internal/service/tokens"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
)

type AuthHandler struct {
	authService AuthServicer
	userService UserServicer
}

func NewAuthHandler(authService AuthServicer, userService UserServicer) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		userService: userService,
	}
}

type UserRegisterParams struct {
	Username     string `binding:"required,min=1,max=20"           json:"username"`
	Password     string `binding:"required,min=6,max_bytes=72"     json:"password"`
	ReferralCode string `binding:"omitempty,len=6,alphanum_upper"  json:"referralCode"`
}

type TokenPairResponse struct {
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
}

// Register POST RouteGroup + RegisterRoute. Регистрирует пользователя и аутентифицирует его.
// Занятый юзернейм (включая мягко удаленные записи) - конфликт. Если передан реферальный
// код, он обязан указывать на существующего юзера.
func (h *AuthHandler) Register(c *gin.Context) {
	var params UserRegisterParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		var valErrs validator.ValidationErrors
		if errors.As(bindErr, &valErrs) {
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": valErrs.Error()})
			return
		}
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).
			SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	usernameTaken, existErr := h.userService.IsUsernameExist(ctx, params.Username, nil)
	if existErr != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, existErr).SetType(gin.ErrorTypePrivate)
		return
	}
	if usernameTaken {
		_ = c.AbortWithError(http.StatusConflict, errors.New("user with this username already exists")).
			SetType(gin.ErrorTypePublic)
		return
	}

	if params.ReferralCode != "" {
		referrer, refErr := h.userService.FindByReferralCode(ctx, params.ReferralCode)
		if refErr != nil {
			_ = c.AbortWithError(http.StatusInternalServerError, refErr).SetType(gin.ErrorTypePrivate)
			return
		}
		if referrer == nil {
			_ = c.AbortWithError(http.StatusUnprocessableEntity, errors.New("referral code does not exist")).
				SetType(gin.ErrorTypePublic)
			return
		}
	}

	user, createErr := h.authService.Register(ctx, service.RegisterArgs{
		Username:     params.Username,
		Password:     params.Password,
		ReferralCode: params.ReferralCode,
	})
	if createErr != nil {
		if errors.Is(createErr, domain.ErrDuplicateKey) {
			// гонка между проверкой занятости и вставкой
			_ = c.AbortWithError(http.StatusConflict, errors.New("user with this username already exists")).
				SetType(gin.ErrorTypePublic)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, createErr).
			SetType(gin.ErrorTypePrivate)
		return
	}

	result, loginErr := h.authService.Login(user)
	if loginErr != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, loginErr).SetType(gin.ErrorTypePrivate)
		return
	}

	c.Header("Authorization", "Bearer "+result.AccessToken)
	c.JSON(http.StatusCreated, TokenPairResponse{
		User:         newUserResponse(user),
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
	})
}

type UserLoginParams struct {
	Username string `binding:"required,min=1,max=20"       json:"username"`
	Password string `binding:"required,min=6,max_bytes=72" json:"password"`
}

// Login POST RouteGroup + LoginRoute. Аутентификация по паре логин/пароль.
func (h *AuthHandler) Login(c *gin.Context) {
	var params UserLoginParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).
			SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, validateErr := h.authService.ValidateUser(ctx, params.Username, params.Password)
	if validateErr != nil {
		if errors.Is(validateErr, domain.ErrRecordNotFound) || errors.Is(validateErr, domain.ErrPasswordMissMatch) {
			_ = c.Error(validateErr)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, validateErr).SetType(gin.ErrorTypePrivate)
		return
	}
	if user == nil {
		// аккаунт без пароля не может аутентифицироваться
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	result, loginErr := h.authService.Login(user)
	if loginErr != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, loginErr).SetType(gin.ErrorTypePrivate)
		return
	}

	c.Header("Authorization", "Bearer "+result.AccessToken)
	c.JSON(http.StatusOK, TokenPairResponse{
		User:         newUserResponse(user),
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
	})
}

type RefreshParams struct {
	RefreshToken string `binding:"required" json:"refreshToken"`
}

// Refresh POST RouteGroup + RefreshRoute. Обменивает действующий рефреш токен на свежую
// пару токенов.
func (h *AuthHandler) Refresh(c *gin.Context) {
	var params RefreshParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).
			SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	result, refreshErr := h.authService.LoginByRefreshToken(ctx, params.RefreshToken)
	if refreshErr != nil {
		switch {
		case errors.Is(refreshErr, tokens.ErrTokenExpired),
			errors.Is(refreshErr, tokens.ErrInvalidClaims),
			errors.Is(refreshErr, jwt.ErrTokenMalformed),
			errors.Is(refreshErr, jwt.ErrTokenSignatureInvalid),
			errors.Is(refreshErr, domain.ErrRecordNotFound):
			_ = c.Error(refreshErr)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid refresh token"})
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, refreshErr).SetType(gin.ErrorTypePrivate)
		}
		return
	}

	c.Header("Authorization", "Bearer "+result.AccessToken)
	c.JSON(http.StatusOK, TokenPairResponse{
		User:         newUserResponse(result.User),
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
	})
}
