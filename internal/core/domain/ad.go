package domain

import (
	"time"

	"github.com/google/uuid"
)

// Category определяет фиксированный набор разделов маркетплейса.
// Категория объявления неизменяема после создания — она определяет,
// в какой таблице лежит спецификация.
type Category string

const (
	CategoryBoatsAndYachts    Category = "BOATS_AND_YACHTS"
	CategoryJetSkis           Category = "JET_SKIS"
	CategoryTrailers          Category = "TRAILERS"
	CategoryEngines           Category = "ENGINES"
	CategoryMarineElectronics Category = "MARINE_ELECTRONICS"
	CategoryFishing           Category = "FISHING"
	CategoryParts             Category = "PARTS"
	CategoryServices          Category = "SERVICES"
)

// AllCategories перечисляет категории в порядке отображения.
func AllCategories() []Category {
	return []Category{
		CategoryBoatsAndYachts,
		CategoryJetSkis,
		CategoryTrailers,
		CategoryEngines,
		CategoryMarineElectronics,
		CategoryFishing,
		CategoryParts,
		CategoryServices,
	}
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryBoatsAndYachts, CategoryJetSkis, CategoryTrailers, CategoryEngines,
		CategoryMarineElectronics, CategoryFishing, CategoryParts, CategoryServices:
		return true
	}
	return false
}

type AdType string

const (
	AdTypeSale   AdType = "SALE"
	AdTypeRent   AdType = "RENT"
	AdTypeWanted AdType = "WANTED"
)

func (t AdType) IsValid() bool {
	return t == AdTypeSale || t == AdTypeRent || t == AdTypeWanted
}

type PriceType string

const (
	PriceTypeFixed      PriceType = "FIXED_PRICE"
	PriceTypeNegotiable PriceType = "NEGOTIABLE"
	PriceTypeOnRequest  PriceType = "PRICE_ON_REQUEST"
	PriceTypeFree       PriceType = "FREE"
)

func (t PriceType) IsValid() bool {
	return t == PriceTypeFixed || t == PriceTypeNegotiable || t == PriceTypeOnRequest || t == PriceTypeFree
}

type ItemCondition string

const (
	ConditionNew      ItemCondition = "NEW"
	ConditionUsed     ItemCondition = "USED"
	ConditionForParts ItemCondition = "FOR_PARTS"
)

// Ad — общая (категорийно-независимая) запись объявления.
// PriceAmount == nil для объявлений без фиксированной цены.
type Ad struct {
	ID               uuid.UUID  `json:"id"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	QuickDescription string     `json:"quick_description,omitempty"`
	Category         Category   `json:"category"`
	PriceAmount      *float64   `json:"price_amount"`
	PriceType        PriceType  `json:"price_type"`
	IncludingVAT     bool       `json:"including_vat"`
	Location         string     `json:"location"`
	AdType           AdType     `json:"ad_type"`
	UserEmail        string     `json:"user_email"`
	UserID           string     `json:"user_id"`
	UserFirstName    string     `json:"user_first_name"`
	UserLastName     string     `json:"user_last_name"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        *time.Time `json:"updated_at"`
	Active           bool       `json:"active"`
	ViewsCount       int64      `json:"views_count"`
	Featured         bool       `json:"featured"`
}

// NewAd — входные данные конвейера создания объявления. Поля владельца
// (UserID, имя) сюда не входят: они заполняются из ответа сервиса
// аутентификации, а не из тела запроса.
type NewAd struct {
	Title            string
	Description      string
	QuickDescription string
	Category         Category
	PriceAmount      *float64
	PriceType        PriceType
	IncludingVAT     bool
	Location         string
	AdType           AdType
	UserEmail        string
	Specification    Specification
}

// UserIdentity — ответ внешнего сервиса аутентификации.
type UserIdentity struct {
	Exists    bool   `json:"exists"`
	UserID    string `json:"userId"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// AdWithSpecification — объявление вместе со спецификацией его категории.
// Specification == nil, если строка спецификации не найдена (защитный
// вариант: ответ собирается, но отличим от заполненного).
type AdWithSpecification struct {
	Ad            Ad            `json:"ad"`
	Specification Specification `json:"specification"`
}

// MarketplaceStats — агрегированная статистика по объявлениям.
type MarketplaceStats struct {
	TotalAds     int64   `json:"total_ads"`
	ActiveAds    int64   `json:"active_ads"`
	InactiveAds  int64   `json:"inactive_ads"`
	AveragePrice float64 `json:"average_price"`
	MinPrice     float64 `json:"min_price"`
	MaxPrice     float64 `json:"max_price"`
}
