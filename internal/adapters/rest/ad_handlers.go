package rest

import (
	"ad-service/internal/contextkeys"
	"ad-service/internal/contracts"
	"ad-service/internal/core/port"
	"ad-service/internal/core/port/usecases_port"
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type AdHandler struct {
	createAdUC       usecases_port.CreateAdUseCase
	getAdByIDUC      usecases_port.GetAdByIDUseCase
	getUserAdsUC     usecases_port.GetUserAdsUseCase
	updateAdStatusUC usecases_port.UpdateAdStatusUseCase
	deleteAdUC       usecases_port.DeleteAdUseCase
	statsUC          usecases_port.GetMarketplaceStatsUseCase
}

func NewAdHandler(createAdUC usecases_port.CreateAdUseCase,
	getAdByIDUC usecases_port.GetAdByIDUseCase,
	getUserAdsUC usecases_port.GetUserAdsUseCase,
	updateAdStatusUC usecases_port.UpdateAdStatusUseCase,
	deleteAdUC usecases_port.DeleteAdUseCase,
	statsUC usecases_port.GetMarketplaceStatsUseCase) *AdHandler {
	return &AdHandler{
		createAdUC:       createAdUC,
		getAdByIDUC:      getAdByIDUC,
		getUserAdsUC:     getUserAdsUC,
		updateAdStatusUC: updateAdStatusUC,
		deleteAdUC:       deleteAdUC,
		statsUC:          statsUC,
	}
}

// CreateAd обрабатывает POST /api/v1/ads
func (h *AdHandler) CreateAd(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	body, err := io.ReadAll(r.Body)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	// Сначала схема, потом декодирование
	if err := contracts.ValidateCreateAd(body); err != nil {
		logger.Warn("Create ad payload failed schema validation", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req CreateAdRequest
	if err := json.Unmarshal(body, &req); err != nil {
		logger.Warn("Invalid request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	handlerLogger := logger.WithFields(port.Fields{
		"handler":  "CreateAd",
		"category": string(req.Category),
	})
	handlerLogger.Debug("Processing request to create ad", nil)

	newAd, err := req.ToNewAd(UserEmailFromRequest(r))
	if err != nil {
		handlerLogger.Warn("Failed to build domain ad from request", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.createAdUC.Execute(r.Context(), newAd, BearerTokenFromRequest(r))
	if err != nil {
		handlerLogger.Error("Use case failed", err, nil)
		WriteDomainError(w, err)
		return
	}

	handlerLogger.Info("Successfully created ad", port.Fields{"ad_id": result.Ad.ID.String()})

	RespondWithJSON(w, http.StatusCreated, toAdResponse(*result))
}

// GetAdByID обрабатывает GET /api/v1/ads/{adID}
func (h *AdHandler) GetAdByID(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	adIDStr := chi.URLParam(r, "adID")
	adID, err := uuid.Parse(adIDStr)
	if err != nil {
		logger.Warn("Invalid ad ID format", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid ad ID format")
		return
	}

	handlerLogger := logger.WithFields(port.Fields{
		"handler": "GetAdByID",
		"ad_id":   adIDStr,
	})
	handlerLogger.Debug("Processing request to get ad", nil)

	result, err := h.getAdByIDUC.Execute(r.Context(), adID)
	if err != nil {
		handlerLogger.Error("Use case failed", err, nil)
		WriteDomainError(w, err)
		return
	}

	handlerLogger.Info("Successfully found ad", nil)

	RespondWithJSON(w, http.StatusOK, toAdResponse(*result))
}

// GetMyAds обрабатывает GET /api/v1/my-ads
func (h *AdHandler) GetMyAds(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	userEmail := UserEmailFromRequest(r)
	handlerLogger := logger.WithFields(port.Fields{
		"handler":    "GetMyAds",
		"user_email": userEmail,
	})
	handlerLogger.Debug("Processing request to get user ads", nil)

	results, err := h.getUserAdsUC.Execute(r.Context(), userEmail)
	if err != nil {
		handlerLogger.Error("Use case failed", err, nil)
		WriteDomainError(w, err)
		return
	}

	handlerLogger.Info("Successfully found user ads", port.Fields{"total_found": len(results)})

	RespondWithJSON(w, http.StatusOK, toSearchResponse(results))
}

// UpdateAdStatus обрабатывает PATCH /api/v1/ads/{adID}/status
func (h *AdHandler) UpdateAdStatus(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	adIDStr := chi.URLParam(r, "adID")
	adID, err := uuid.Parse(adIDStr)
	if err != nil {
		logger.Warn("Invalid ad ID format", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid ad ID format")
		return
	}

	var req UpdateAdStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("Invalid request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	handlerLogger := logger.WithFields(port.Fields{
		"handler": "UpdateAdStatus",
		"ad_id":   adIDStr,
		"active":  req.Active,
	})
	handlerLogger.Debug("Processing request to update ad status", nil)

	if err := h.updateAdStatusUC.Execute(r.Context(), adID, UserEmailFromRequest(r), req.Active); err != nil {
		handlerLogger.Error("Use case failed", err, nil)
		WriteDomainError(w, err)
		return
	}

	handlerLogger.Info("Successfully updated ad status", nil)

	RespondWithJSON(w, http.StatusOK, map[string]bool{"active": req.Active})
}

// DeleteAd обрабатывает DELETE /api/v1/ads/{adID}
func (h *AdHandler) DeleteAd(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	adIDStr := chi.URLParam(r, "adID")
	adID, err := uuid.Parse(adIDStr)
	if err != nil {
		logger.Warn("Invalid ad ID format", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid ad ID format")
		return
	}

	handlerLogger := logger.WithFields(port.Fields{
		"handler": "DeleteAd",
		"ad_id":   adIDStr,
	})
	handlerLogger.Debug("Processing request to delete ad", nil)

	if err := h.deleteAdUC.Execute(r.Context(), adID, UserEmailFromRequest(r)); err != nil {
		handlerLogger.Error("Use case failed", err, nil)
		WriteDomainError(w, err)
		return
	}

	handlerLogger.Info("Successfully deleted ad", nil)

	w.WriteHeader(http.StatusNoContent)
}

// GetStats обрабатывает GET /api/v1/stats
func (h *AdHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	handlerLogger := logger.WithFields(port.Fields{"handler": "GetStats"})
	handlerLogger.Debug("Processing request to get marketplace stats", nil)

	stats, err := h.statsUC.Execute(r.Context())
	if err != nil {
		handlerLogger.Error("Use case failed", err, nil)
		WriteDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, StatsResponse{
		TotalAds:     stats.TotalAds,
		ActiveAds:    stats.ActiveAds,
		InactiveAds:  stats.InactiveAds,
		AveragePrice: stats.AveragePrice,
		MinPrice:     stats.MinPrice,
		MaxPrice:     stats.MaxPrice,
	})
}
