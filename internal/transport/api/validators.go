package api

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin/binding"

	"github.com/go-playground/validator/v10"
)

// validateMaxBytes в отличии от тэга max который проверяет длину рун, - проверят длину байт в поле.
// Нужен для паролей: bcrypt учитывает только первые 72 байта.
func validateMaxBytes(fl validator.FieldLevel) bool {
	param := fl.Param() // получаем значение из тега
	maxBytes, err := strconv.Atoi(param)
	if err != nil {
		return false
	}

	// нужно убедится что значение поля - строка.
	str, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	return len([]byte(str)) <= maxBytes
}

// validateAlphanumUpper проверяет алфавит реферального кода: заглавные латинские буквы и цифры.
func validateAlphanumUpper(fl validator.FieldLevel) bool {
	str, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	for _, char := range str {
		isDigit := char >= '0' && char <= '9'
		isUpper := char >= 'A' && char <= 'Z'
		if !isDigit && !isUpper {
			return false
		}
	}
	return true
}

func registerValidators() error {
	v, _ := binding.Validator.Engine().(*validator.Validate)
	if err := v.RegisterValidation("max_bytes", validateMaxBytes); err != nil {
		return fmt.Errorf("validator registration: %s", err.Error())
	}
	if err := v.RegisterValidation("alphanum_upper", validateAlphanumUpper); err != nil {
		return fmt.Errorf("validator registration: %s", err.Error())
	}
	return nil
}
