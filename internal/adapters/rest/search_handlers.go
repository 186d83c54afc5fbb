package rest

import (
	"ad-service/internal/contextkeys"
	"ad-service/internal/core/domain"
	"ad-service/internal/core/port"
	"ad-service/internal/core/port/usecases_port"
	"encoding/json"
	"net/http"
)

type SearchHandler struct {
	searchAdsUC usecases_port.SearchAdsUseCase
}

func NewSearchHandler(searchAdsUC usecases_port.SearchAdsUseCase) *SearchHandler {
	return &SearchHandler{searchAdsUC: searchAdsUC}
}

// SearchAds обрабатывает POST /api/v1/ads/search
func (h *SearchHandler) SearchAds(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	var filter domain.SearchFilter
	if err := json.NewDecoder(r.Body).Decode(&filter); err != nil {
		logger.Warn("Invalid request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	handlerLogger := logger.WithFields(port.Fields{
		"handler":  "SearchAds",
		"category": string(filter.Category),
		"sort_by":  string(filter.SortBy),
	})
	handlerLogger.Debug("Processing search request", nil)

	results, err := h.searchAdsUC.Execute(r.Context(), filter)
	if err != nil {
		handlerLogger.Error("Use case failed", err, nil)
		WriteDomainError(w, err)
		return
	}

	handlerLogger.Info("Successfully found ads", port.Fields{"total_found": len(results)})

	RespondWithJSON(w, http.StatusOK, toSearchResponse(results))
}
