package postgres

import (
	"ad-service/internal/core/domain"
	"fmt"
	"strings"
)

type queryBuilder struct {
	joinClause strings.Builder
	conditions []string
	args       []interface{}
	argId      int
}

func newQueryBuilder() *queryBuilder {
	return &queryBuilder{
		argId:      1,
		conditions: []string{"a.active = true"},
		args:       make([]interface{}, 0),
	}
}

func (qb *queryBuilder) addCondition(condition string, fieldName string, arg interface{}) {
	qb.conditions = append(qb.conditions, fmt.Sprintf(condition, fieldName, qb.argId))
	qb.args = append(qb.args, arg)
	qb.argId++
}

func (qb *queryBuilder) addEquals(fieldName string, value string) {
	if value != "" {
		qb.addCondition("%s = $%d", fieldName, value)
	}
}

func (qb *queryBuilder) addSubstring(fieldName string, value string) {
	if value != "" {
		qb.addCondition("%s ILIKE $%d", fieldName, "%"+value+"%")
	}
}

func (qb *queryBuilder) addBool(fieldName string, value *bool) {
	if value != nil {
		qb.addCondition("%s = $%d", fieldName, *value)
	}
}

func (qb *queryBuilder) AddFloatFilter(fieldName string, min *float64, max *float64) {
	if min != nil {
		qb.addCondition("%s >= $%d", fieldName, *min)
	}
	if max != nil {
		qb.addCondition("%s <= $%d", fieldName, *max)
	}
}

func (qb *queryBuilder) AddIntFilter(fieldName string, min *int, max *int) {
	if min != nil {
		qb.addCondition("%s >= $%d", fieldName, *min)
	}
	if max != nil {
		qb.addCondition("%s <= $%d", fieldName, *max)
	}
}

// build создает финальные части запроса
func (qb *queryBuilder) build() (string, string, []interface{}) {
	whereClause := ""
	if len(qb.conditions) > 0 {
		whereClause = "WHERE " + strings.Join(qb.conditions, " AND ")
	}
	return qb.joinClause.String(), whereClause, qb.args
}

// applyFilters — главный метод, который разбирает фильтры и строит запрос.
// Общие фильтры ложатся на таблицу ads, категорийные — на JOIN с таблицей
// спецификаций своей категории, так что чужие категории они не задевают.
func applyFilters(filter domain.SearchFilter) (string, string, []interface{}) {
	qb := newQueryBuilder()

	qb.addEquals("a.category", string(filter.Category))

	// Полнотекстовый фильтр по заголовку/описанию (поиск подстроки)
	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		qb.conditions = append(qb.conditions,
			fmt.Sprintf("(a.title ILIKE $%d OR a.description ILIKE $%d)", qb.argId, qb.argId))
		qb.args = append(qb.args, pattern)
		qb.argId++
	}

	qb.addSubstring("a.location", filter.Location)
	qb.addEquals("a.ad_type", string(filter.AdType))
	qb.addEquals("a.price_type", string(filter.PriceType))

	// Ценовой диапазон имеет смысл только для фиксированной цены
	if filter.MinPrice != nil || filter.MaxPrice != nil {
		qb.conditions = append(qb.conditions, "a.price_type = 'FIXED_PRICE'")
		qb.AddFloatFilter("a.price_amount", filter.MinPrice, filter.MaxPrice)
	}

	switch filter.Category {
	case domain.CategoryBoatsAndYachts:
		qb.joinClause.WriteString(" JOIN boat_specifications s ON a.id = s.ad_id ")
		qb.addSubstring("s.brand", filter.Brand)
		qb.addSubstring("s.model", filter.Model)
		qb.AddIntFilter("s.year", filter.MinYear, filter.MaxYear)
		qb.addEquals("s.condition", string(filter.Condition))

	case domain.CategoryJetSkis:
		qb.joinClause.WriteString(" JOIN jet_ski_specifications s ON a.id = s.ad_id ")
		qb.addSubstring("s.brand", filter.Brand)
		qb.addSubstring("s.model", filter.Model)
		qb.AddIntFilter("s.year", filter.MinYear, filter.MaxYear)
		qb.addEquals("s.condition", string(filter.Condition))

	case domain.CategoryTrailers:
		qb.joinClause.WriteString(" JOIN trailer_specifications s ON a.id = s.ad_id ")
		qb.addSubstring("s.brand", filter.Brand)
		qb.addSubstring("s.model", filter.Model)
		qb.AddIntFilter("s.year", filter.MinYear, filter.MaxYear)
		qb.addEquals("s.condition", string(filter.Condition))

	case domain.CategoryEngines:
		qb.joinClause.WriteString(" JOIN engine_specifications s ON a.id = s.ad_id ")
		qb.addSubstring("s.brand", filter.Brand)
		qb.AddIntFilter("s.year", filter.MinYear, filter.MaxYear)
		qb.addEquals("s.condition", string(filter.Condition))

	case domain.CategoryMarineElectronics:
		// Год у электроники необязателен (в таблице NULL-колонка);
		// диапазон по году тут не применяется, иначе строки без года
		// выпадали бы из выборки.
		qb.joinClause.WriteString(" JOIN marine_electronics_specifications s ON a.id = s.ad_id ")
		qb.addSubstring("s.brand", filter.Brand)
		qb.addSubstring("s.model", filter.Model)
		qb.addEquals("s.electronics_type", string(filter.ElectronicsType))
		qb.addEquals("s.screen_size", string(filter.ScreenSize))
		qb.addBool("s.gps_integrated", filter.GpsIntegrated)
		qb.addEquals("s.condition", string(filter.Condition))

	case domain.CategoryFishing:
		qb.joinClause.WriteString(" JOIN fishing_specifications s ON a.id = s.ad_id ")
		qb.addSubstring("s.brand", filter.Brand)
		qb.addEquals("s.fishing_type", string(filter.FishingType))
		qb.addEquals("s.fishing_technique", string(filter.FishingTechnique))
		qb.addEquals("s.target_fish", string(filter.TargetFish))
		qb.addEquals("s.condition", string(filter.Condition))

	case domain.CategoryParts:
		qb.joinClause.WriteString(" JOIN parts_specifications s ON a.id = s.ad_id ")
		qb.addSubstring("s.brand", filter.Brand)
		qb.addEquals("s.part_type", string(filter.PartType))
		qb.addEquals("s.condition", string(filter.Condition))

	case domain.CategoryServices:
		qb.joinClause.WriteString(" JOIN services_specifications s ON a.id = s.ad_id ")
		qb.addEquals("s.service_type", string(filter.ServiceType))
		qb.addBool("s.is_authorized_service", filter.AuthorizedService)
		// Бренд ищется подстрокой по элементам массива: запрос "Mercury"
		// должен находить сервис с "Mercury Marine" в списке.
		if filter.SupportedBrand != "" {
			qb.addCondition("EXISTS (SELECT 1 FROM unnest(%s) AS brand WHERE brand ILIKE $%d)",
				"s.supported_brands", "%"+filter.SupportedBrand+"%")
		}
	}

	return qb.build()
}
