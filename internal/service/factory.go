package service

import (
	"fmt"

	"github.com/fsdevblog/groph-referral/internal/service/psswd"
	"github.com/fsdevblog/groph-referral/pkg/uow"
)

type AppServices struct {
	UserService     *UserService
	PurchaseService *PurchaseService
	AuthService     *AuthService
}

func Factory(unitOfWork uow.UOW, tokenConf TokenConfig) (*AppServices, error) {
	hasher := psswd.PasswordHash{}

	userService, userServiceErr := NewUserService(unitOfWork, hasher)
	if userServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", userServiceErr.Error())
	}

	purchaseService, purchaseServiceErr := NewPurchaseService(unitOfWork, userService)
	if purchaseServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", purchaseServiceErr.Error())
	}

	authService := NewAuthService(userService, hasher, tokenConf)

	return &AppServices{
		UserService:     userService,
		PurchaseService: purchaseService,
		AuthService:     authService,
	}, nil
}
