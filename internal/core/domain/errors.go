package domain

import (
	"errors"
	"fmt"
)

// Сентинельные ошибки доменного слоя. REST-адаптер превращает их
// в HTTP-статусы, ядро оперирует только ими.
var (
	ErrAdNotFound             = errors.New("ad not found")
	ErrSpecificationNotFound  = errors.New("specification not found")
	ErrUserNotFound           = errors.New("user not found")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrAuthServiceUnavailable = errors.New("auth service unavailable")
	ErrNotOwner               = errors.New("ad does not belong to user")
	ErrUnsupportedCategory    = errors.New("unsupported category")
)

// Правила, по которым поле спецификации может не пройти валидацию.
const (
	RuleMissing      = "missing"
	RuleOutOfRange   = "out_of_range"
	RuleInvalidValue = "invalid_value"
)

// FieldValidationError — первая (и единственная) ошибка валидации
// спецификации: проверка останавливается на первом невалидном поле.
type FieldValidationError struct {
	Category Category
	Field    string
	Rule     string
	Detail   string
}

func (e *FieldValidationError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: field %q %s (%s)", e.Category, e.Field, e.Rule, e.Detail)
	}
	return fmt.Sprintf("%s: field %q %s", e.Category, e.Field, e.Rule)
}

func NewMissingFieldError(category Category, field string) *FieldValidationError {
	return &FieldValidationError{Category: category, Field: field, Rule: RuleMissing}
}

func NewOutOfRangeError(category Category, field, detail string) *FieldValidationError {
	return &FieldValidationError{Category: category, Field: field, Rule: RuleOutOfRange, Detail: detail}
}

func NewInvalidValueError(category Category, field, detail string) *FieldValidationError {
	return &FieldValidationError{Category: category, Field: field, Rule: RuleInvalidValue, Detail: detail}
}

// SearchValidationError — невалидная комбинация параметров поиска.
type SearchValidationError struct {
	Reason string
}

func (e *SearchValidationError) Error() string {
	return "invalid search request: " + e.Reason
}

func NewSearchValidationError(reason string) *SearchValidationError {
	return &SearchValidationError{Reason: reason}
}
