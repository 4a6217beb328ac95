package errors

import (
	"errors"
	"fmt"
)

// ErrorCode untuk klasifikasi error aplikasi
type ErrorCode string

const (
	// Auth errors
	ErrCodeUnauthorized    ErrorCode = "UNAUTHORIZED"
	ErrCodeInvalidToken    ErrorCode = "INVALID_TOKEN"
	ErrCodeMissingToken    ErrorCode = "MISSING_TOKEN"
	ErrCodeInvalidPassword ErrorCode = "INVALID_PASSWORD"
	ErrCodeUserNotFound    ErrorCode = "USER_NOT_FOUND"
	ErrCodeUserExists      ErrorCode = "USER_EXISTS"
	ErrCodeInvalidEmail    ErrorCode = "INVALID_EMAIL"
	ErrCodeInvalidPhone    ErrorCode = "INVALID_PHONE"
	ErrCodeInvalidCode     ErrorCode = "INVALID_CODE"
	ErrCodeExpiredCode     ErrorCode = "EXPIRED_CODE"
	ErrCodeInvalidRole     ErrorCode = "INVALID_ROLE"

	// Book errors
	ErrCodeBookNotFound     ErrorCode = "BOOK_NOT_FOUND"
	ErrCodeInvalidCondition ErrorCode = "INVALID_CONDITION"
	ErrCodeOutOfStock       ErrorCode = "OUT_OF_STOCK"

	// Promo errors
	ErrCodePromoNotFound ErrorCode = "PROMO_NOT_FOUND"
	ErrCodePromoConflict ErrorCode = "PROMO_BOOK_CONFLICT"
	ErrCodeInvalidWindow ErrorCode = "INVALID_PROMO_WINDOW"

	// Order errors
	ErrCodeOrderNotFound ErrorCode = "ORDER_NOT_FOUND"
	ErrCodeEmptyCart     ErrorCode = "EMPTY_CART"

	// Database errors
	ErrCodeDBError     ErrorCode = "DB_ERROR"
	ErrCodeDBNotFound  ErrorCode = "DB_NOT_FOUND"
	ErrCodeDBDuplicate ErrorCode = "DB_DUPLICATE"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
)

// AppError error aplikasi dengan kode dan pesan
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// NewAppError membuat AppError baru
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsAppError cek apakah error merupakan AppError
func IsAppError(err error) bool {
	_, ok := err.(*AppError)
	return ok
}

// GetAppError ambil AppError dari error
func GetAppError(err error) *AppError {
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}
	return nil
}

var (
	// User errors
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrInvalidPassword   = errors.New("invalid password")
	ErrUnauthorized      = errors.New("unauthorized")

	// Book errors
	ErrBookNotFound = errors.New("book not found")
	ErrOutOfStock   = errors.New("book out of stock")

	// Promo errors
	ErrPromoNotFound = errors.New("promotion not found")
	ErrPromoConflict = errors.New("book already attached to an active promotion")

	// Order errors
	ErrOrderNotFound  = errors.New("order not found")
	ErrOrderCancelled = errors.New("order already cancelled")
	ErrOrderCompleted = errors.New("order already completed")

	// Validation errors
	ErrInvalidInput    = errors.New("invalid input")
	ErrMissingRequired = errors.New("missing required field")
	ErrInvalidFormat   = errors.New("invalid format")
)
