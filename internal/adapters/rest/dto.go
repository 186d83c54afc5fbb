package rest

import (
	"ad-service/internal/core/domain"
	"encoding/json"
	"fmt"
	"time"
)

// CreateAdRequest — тело POST /api/v1/ads. Спецификация приходит
// сырым JSON и декодируется в вариант категории после проверки схемы.
type CreateAdRequest struct {
	Title            string           `json:"title"`
	Description      string           `json:"description"`
	QuickDescription string           `json:"quickDescription"`
	Category         domain.Category  `json:"category"`
	PriceAmount      *float64         `json:"priceAmount"`
	PriceType        domain.PriceType `json:"priceType"`
	IncludingVAT     bool             `json:"includingVAT"`
	Location         string           `json:"location"`
	AdType           domain.AdType    `json:"adType"`
	Specification    json.RawMessage  `json:"specification"`
}

// ToNewAd декодирует запрос в доменную структуру. Email владельца
// берется из аутентифицированного принципала, не из тела.
func (r *CreateAdRequest) ToNewAd(userEmail string) (domain.NewAd, error) {
	spec := domain.EmptySpecificationFor(r.Category)
	if spec == nil {
		return domain.NewAd{}, domain.ErrUnsupportedCategory
	}
	if len(r.Specification) > 0 {
		if err := json.Unmarshal(r.Specification, spec); err != nil {
			return domain.NewAd{}, fmt.Errorf("failed to decode specification: %w", err)
		}
	}

	return domain.NewAd{
		Title:            r.Title,
		Description:      r.Description,
		QuickDescription: r.QuickDescription,
		Category:         r.Category,
		PriceAmount:      r.PriceAmount,
		PriceType:        r.PriceType,
		IncludingVAT:     r.IncludingVAT,
		Location:         r.Location,
		AdType:           r.AdType,
		UserEmail:        userEmail,
		Specification:    spec,
	}, nil
}

// UpdateAdStatusRequest — тело PATCH /api/v1/ads/{adID}/status.
type UpdateAdStatusRequest struct {
	Active bool `json:"active"`
}

// AdResponse — карточка объявления со спецификацией.
// Specification == null, если строка спецификации отсутствует.
type AdResponse struct {
	ID               string      `json:"id"`
	Title            string      `json:"title"`
	Description      string      `json:"description"`
	QuickDescription string      `json:"quick_description,omitempty"`
	Category         string      `json:"category"`
	PriceAmount      *float64    `json:"price_amount"`
	PriceType        string      `json:"price_type"`
	IncludingVAT     bool        `json:"including_vat"`
	Location         string      `json:"location"`
	AdType           string      `json:"ad_type"`
	UserEmail        string      `json:"user_email"`
	UserFirstName    string      `json:"user_first_name"`
	UserLastName     string      `json:"user_last_name"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        *time.Time  `json:"updated_at,omitempty"`
	Active           bool        `json:"active"`
	ViewsCount       int64       `json:"views_count"`
	Featured         bool        `json:"featured"`
	Specification    interface{} `json:"specification"`
}

func toAdResponse(item domain.AdWithSpecification) AdResponse {
	ad := item.Ad
	return AdResponse{
		ID:               ad.ID.String(),
		Title:            ad.Title,
		Description:      ad.Description,
		QuickDescription: ad.QuickDescription,
		Category:         string(ad.Category),
		PriceAmount:      ad.PriceAmount,
		PriceType:        string(ad.PriceType),
		IncludingVAT:     ad.IncludingVAT,
		Location:         ad.Location,
		AdType:           string(ad.AdType),
		UserEmail:        ad.UserEmail,
		UserFirstName:    ad.UserFirstName,
		UserLastName:     ad.UserLastName,
		CreatedAt:        ad.CreatedAt,
		UpdatedAt:        ad.UpdatedAt,
		Active:           ad.Active,
		ViewsCount:       ad.ViewsCount,
		Featured:         ad.Featured,
		Specification:    item.Specification,
	}
}

// SearchAdsResponse — выдача поиска.
type SearchAdsResponse struct {
	Total int          `json:"total"`
	Data  []AdResponse `json:"ads"`
}

func toSearchResponse(items []domain.AdWithSpecification) SearchAdsResponse {
	response := SearchAdsResponse{
		Total: len(items),
		Data:  make([]AdResponse, len(items)),
	}
	for i, item := range items {
		response.Data[i] = toAdResponse(item)
	}
	return response
}

// StatsResponse — агрегированная статистика маркетплейса.
type StatsResponse struct {
	TotalAds     int64   `json:"total_ads"`
	ActiveAds    int64   `json:"active_ads"`
	InactiveAds  int64   `json:"inactive_ads"`
	AveragePrice float64 `json:"average_price"`
	MinPrice     float64 `json:"min_price"`
	MaxPrice     float64 `json:"max_price"`
}
