package api

import (
	"fmt"
	"time"

	"github.com/fsdevblog/groph-referral/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	DefaultServiceTimeout = 3 * time.Second
)

const (
	RouteGroup     = "/api"
	RegisterRoute  = "/user/register"
	LoginRoute     = "/user/login"
	RefreshRoute   = "/user/refresh"
	UsersRoute     = "/users"
	UserRoute      = "/users/:id"
	PurchasesRoute = "/purchases"
	PurchaseRoute  = "/purchases/:id"
)

type RouterArgs struct {
	Logger          *logrus.Logger
	AuthService     AuthServicer
	UserService     UserServicer
	PurchaseService PurchaseServicer
	JWTSecretKey    []byte
}

func New(args RouterArgs) (*gin.Engine, error) {
	if err := registerValidators(); err != nil {
		return nil, fmt.Errorf("router: %s", err.Error())
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())

	authHandler := NewAuthHandler(args.AuthService, args.UserService)
	usersHandler := NewUsersHandler(args.UserService)
	purchasesHandler := NewPurchasesHandler(args.PurchaseService)

	api := r.Group(RouteGroup)

	api.POST(RegisterRoute, middlewares.NonAuthRequired(args.JWTSecretKey), authHandler.Register)
	api.POST(LoginRoute, middlewares.NonAuthRequired(args.JWTSecretKey), authHandler.Login)
	api.POST(RefreshRoute, authHandler.Refresh)

	api.Use(middlewares.AuthRequired(args.JWTSecretKey))
	// ниже все роуты группы требуют авторизованного пользователя.
	api.GET(UsersRoute, usersHandler.Index)
	api.GET(UserRoute, usersHandler.Show)
	api.PATCH(UserRoute, usersHandler.Update)
	api.DELETE(UserRoute, usersHandler.Delete)

	api.POST(PurchasesRoute, purchasesHandler.Create)
	api.GET(PurchasesRoute, purchasesHandler.Index)
	api.GET(PurchaseRoute, purchasesHandler.Show)
	api.DELETE(PurchaseRoute, purchasesHandler.Delete)

	return r, nil
}
