package rest

import (
	"ad-service/internal/core/domain"
	"encoding/json"
	"errors"
	"net/http"
)

// WriteJSONError отправляет JSON-ответ с полем "error" и заданным статусом
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	// формируем объект ошибки
	json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	})
}

// RespondWithJSON отправляет JSON-ответ
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Failed to marshal JSON response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// WriteDomainError переводит доменную ошибку в HTTP-статус.
func WriteDomainError(w http.ResponseWriter, err error) {
	var fieldErr *domain.FieldValidationError
	var searchErr *domain.SearchValidationError

	switch {
	case errors.As(err, &fieldErr), errors.As(err, &searchErr),
		errors.Is(err, domain.ErrUnsupportedCategory):
		WriteJSONError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrAdNotFound), errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrSpecificationNotFound):
		WriteJSONError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrNotOwner):
		WriteJSONError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		WriteJSONError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrAuthServiceUnavailable):
		WriteJSONError(w, http.StatusServiceUnavailable, err.Error())
	default:
		WriteJSONError(w, http.StatusInternalServerError, "internal server error")
	}
}
