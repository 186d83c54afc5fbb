package authclient

import (
	"ad-service/internal/contextkeys"
	"ad-service/internal/core/domain"
	"ad-service/internal/core/port"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Таймаут на весь вызов сервиса аутентификации. Создание объявления
// не должно висеть, если auth-сервис деградировал.
const defaultTimeout = 10 * time.Second

// Client — клиент auth-service, реализует IdentityPort.
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
		timeout:    defaultTimeout,
	}
}

// ValidateUser спрашивает auth-service, существует ли пользователь.
// Сетевые сбои и 5xx транслируются в ErrAuthServiceUnavailable,
// отказ в авторизации — в ErrInvalidCredentials.
func (c *Client) ValidateUser(ctx context.Context, email, bearerToken string) (*domain.UserIdentity, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	clientLogger := logger.WithFields(port.Fields{
		"component": "AuthClient",
		"method":    "ValidateUser",
	})

	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	reqURL := fmt.Sprintf("%s/auth/validate-user?email=%s", c.baseURL, url.QueryEscape(email))
	clientLogger.Debug("Sending request to validate user", port.Fields{"url": reqURL})

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	if traceID := contextkeys.TraceIDFromContext(ctx); traceID != "" {
		req.Header.Set("X-Trace-ID", traceID)
	}
	if bearerToken != "" {
		req.Header.Set("Authorization", "Bearer "+bearerToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		clientLogger.Error("Failed to perform request to auth-service", err, nil)
		return nil, domain.ErrAuthServiceUnavailable
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 500:
		bodyBytes, _ := io.ReadAll(resp.Body)
		clientLogger.Error("Auth service returned server error", nil, port.Fields{
			"status_code": resp.StatusCode, "body": string(bodyBytes),
		})
		return nil, domain.ErrAuthServiceUnavailable
	case resp.StatusCode >= 400:
		clientLogger.Warn("Auth service rejected the request", port.Fields{"status_code": resp.StatusCode})
		return nil, domain.ErrInvalidCredentials
	}

	var identity domain.UserIdentity
	if err := json.NewDecoder(resp.Body).Decode(&identity); err != nil {
		clientLogger.Error("Failed to decode validate user response", err, nil)
		return nil, domain.ErrAuthServiceUnavailable
	}

	clientLogger.Info("Successfully validated user", port.Fields{"exists": identity.Exists})

	return &identity, nil
}
