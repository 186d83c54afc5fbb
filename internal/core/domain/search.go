package domain

// SortKey задает порядок выдачи поиска. Неизвестное значение трактуется
// как сортировка по умолчанию (новые первыми).
type SortKey string

const (
	SortPriceLowToHigh SortKey = "PRICE_LOW_TO_HIGH"
	SortPriceHighToLow SortKey = "PRICE_HIGH_TO_LOW"
	SortOldest         SortKey = "OLDEST"
	SortMostViewed     SortKey = "MOST_VIEWED"
	SortNewest         SortKey = "NEWEST"
)

// SearchFilter — параметры расширенного поиска. Категория обязательна:
// категорийные фильтры применяются только внутри своей категории и
// никогда не пересекают границы таблиц спецификаций.
type SearchFilter struct {
	Category Category `json:"category"`

	// Общие фильтры (работают для любой категории)
	Query     string    `json:"query,omitempty"`
	Location  string    `json:"location,omitempty"`
	AdType    AdType    `json:"adType,omitempty"`
	PriceType PriceType `json:"priceType,omitempty"`
	MinPrice  *float64  `json:"minPrice,omitempty"`
	MaxPrice  *float64  `json:"maxPrice,omitempty"`

	// Категорийные фильтры. Какие поля учитываются — решает категория.
	Brand     string        `json:"brand,omitempty"`
	Model     string        `json:"model,omitempty"`
	MinYear   *int          `json:"minYear,omitempty"`
	MaxYear   *int          `json:"maxYear,omitempty"`
	Condition ItemCondition `json:"condition,omitempty"`

	// MARINE_ELECTRONICS
	ElectronicsType ElectronicsType `json:"electronicsType,omitempty"`
	ScreenSize      ScreenSize      `json:"screenSize,omitempty"`
	GpsIntegrated   *bool           `json:"gpsIntegrated,omitempty"`

	// FISHING
	FishingType      FishingType      `json:"fishingType,omitempty"`
	FishingTechnique FishingTechnique `json:"fishingTechnique,omitempty"`
	TargetFish       TargetFish       `json:"targetFish,omitempty"`

	// PARTS
	PartType PartType `json:"partType,omitempty"`

	// SERVICES
	ServiceType       ServiceType `json:"serviceType,omitempty"`
	AuthorizedService *bool       `json:"authorizedService,omitempty"`
	SupportedBrand    string      `json:"supportedBrand,omitempty"`

	SortBy SortKey `json:"sortBy,omitempty"`
}
