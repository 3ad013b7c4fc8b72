package domain

import "errors"

var (
	ErrRecordNotFound    = errors.New("record not found")
	ErrPasswordMissMatch = errors.New("password mismatch")
	ErrDuplicateKey      = errors.New("duplicate key")
	ErrUnknown           = errors.New("unknown error")

	// ErrReferralCodeExhausted возвращается когда не удалось сгенерировать уникальный
	// реферальный код за отведенное число попыток.
	ErrReferralCodeExhausted = errors.New("referral code generation exhausted")
)
