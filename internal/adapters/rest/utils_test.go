package rest

import (
	"ad-service/internal/core/domain"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteDomainError_StatusMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"FieldValidation", domain.NewMissingFieldError(domain.CategoryJetSkis, "brand"), http.StatusBadRequest},
		{"SearchValidation", domain.NewSearchValidationError("category is required"), http.StatusBadRequest},
		{"UnsupportedCategory", domain.ErrUnsupportedCategory, http.StatusBadRequest},
		{"AdNotFound", domain.ErrAdNotFound, http.StatusNotFound},
		{"UserNotFound", domain.ErrUserNotFound, http.StatusNotFound},
		{"NotOwner", domain.ErrNotOwner, http.StatusForbidden},
		{"InvalidCredentials", domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"AuthServiceUnavailable", domain.ErrAuthServiceUnavailable, http.StatusServiceUnavailable},
		{"UnknownError", errors.New("tx failed"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteDomainError(rec, tc.err)
			assert.Equal(t, tc.status, rec.Code)
			assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
		})
	}
}

// Детали хранилища не утекают наружу: неизвестная ошибка отдается
// обезличенным сообщением.
func TestWriteDomainError_InternalDetailsHidden(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteDomainError(rec, errors.New("connection refused at 10.0.0.5"))
	assert.NotContains(t, rec.Body.String(), "10.0.0.5")
}
