package validator

import (
	stderrors "errors"

	"github.com/go-playground/validator/v10"
	"github.com/railway-assistant/internal/pkg/errors"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate - валидация структуры
func Validate(s interface{}) error {
	return validate.Struct(s)
}

// ValidateRequest валидирует входящий запрос и переводит ошибки валидатора
// в ErrInvalidRequest с перечнем полей
func ValidateRequest(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) {
		return errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"reason": err.Error(),
		})
	}

	fields := make(map[string]interface{}, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields[fe.Namespace()] = fe.Tag()
	}
	return errors.ErrInvalidRequest.WithDetails(fields)
}

// GetValidator - получить валидатор для кастомной конфигурации
func GetValidator() *validator.Validate {
	return validate
}
