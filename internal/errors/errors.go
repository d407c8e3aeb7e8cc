package errors

import (
	"errors"
	"fmt"
)

var (
	ErrURLNotFound      = errors.New("URL not found")
	ErrShortCodeExists  = errors.New("short code already exists")
	ErrInvalidShortCode = errors.New("invalid short code")

	// ErrMissingToken - в запросе статистики нет analytics токена
	ErrMissingToken = errors.New("missing analytics token")
	// ErrInvalidToken - токен не совпадает с токеном записи
	ErrInvalidToken = errors.New("invalid analytics token")
)

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error in field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

type BusinessError struct {
	Code    string
	Message string
	Cause   error
}

func (e *BusinessError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *BusinessError) Unwrap() error {
	return e.Cause
}

func NewBusinessError(code, message string, cause error) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// ErrShortCodeGeneration - все попытки генерации попали в занятые коды.
// Это проблема ёмкости, а не ошибка клиента.
var ErrShortCodeGeneration = NewBusinessError("SHORT_CODE_GENERATION", "Could not generate unique short code", nil)

// IsValidationError проверяет является ли ошибка ошибкой валидации
func IsValidationError(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsBusinessError проверяет является ли ошибка бизнес-ошибкой
func IsBusinessError(err error) bool {
	var businessErr *BusinessError
	return errors.As(err, &businessErr)
}

func GetValidationError(err error) *ValidationError {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr
	}
	return nil
}

// GetBusinessError извлекает BusinessError из ошибки
func GetBusinessError(err error) *BusinessError {
	var businessErr *BusinessError
	if errors.As(err, &businessErr) {
		return businessErr
	}
	return nil
}
