package postgres

import (
	"ad-service/internal/core/domain"
	"testing"

	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }
func boolPtr(v bool) *bool        { return &v }

func TestApplyFilters_ActiveOnlyAlways(t *testing.T) {
	join, where, args := applyFilters(domain.SearchFilter{Category: domain.CategoryParts})

	assert.Contains(t, where, "a.active = true")
	assert.Contains(t, join, "parts_specifications")
	assert.Equal(t, []interface{}{string(domain.CategoryParts)}, args)
}

func TestApplyFilters_CategoryGatesJoinTable(t *testing.T) {
	cases := []struct {
		category domain.Category
		table    string
	}{
		{domain.CategoryBoatsAndYachts, "boat_specifications"},
		{domain.CategoryJetSkis, "jet_ski_specifications"},
		{domain.CategoryTrailers, "trailer_specifications"},
		{domain.CategoryEngines, "engine_specifications"},
		{domain.CategoryMarineElectronics, "marine_electronics_specifications"},
		{domain.CategoryFishing, "fishing_specifications"},
		{domain.CategoryParts, "parts_specifications"},
		{domain.CategoryServices, "services_specifications"},
	}

	for _, tc := range cases {
		t.Run(string(tc.category), func(t *testing.T) {
			join, _, _ := applyFilters(domain.SearchFilter{Category: tc.category})
			assert.Contains(t, join, tc.table)
		})
	}
}

// Фильтр чужой категории не попадает в запрос: serviceType при поиске
// лодок игнорируется, а не превращается в условие.
func TestApplyFilters_CrossCategoryFilterNotApplied(t *testing.T) {
	_, where, args := applyFilters(domain.SearchFilter{
		Category:    domain.CategoryBoatsAndYachts,
		ServiceType: domain.ServiceRepair,
	})

	assert.NotContains(t, where, "service_type")
	assert.Len(t, args, 1) // только категория
}

func TestApplyFilters_PriceRangeForcesFixedPrice(t *testing.T) {
	_, where, args := applyFilters(domain.SearchFilter{
		Category: domain.CategoryBoatsAndYachts,
		MinPrice: floatPtr(1000),
		MaxPrice: floatPtr(50000),
	})

	assert.Contains(t, where, "a.price_type = 'FIXED_PRICE'")
	assert.Contains(t, where, "a.price_amount >= $2")
	assert.Contains(t, where, "a.price_amount <= $3")
	assert.Equal(t, []interface{}{string(domain.CategoryBoatsAndYachts), 1000.0, 50000.0}, args)
}

// Нумерация позиционных аргументов последовательна при любом наборе
// фильтров — условия и args не расходятся.
func TestApplyFilters_ArgNumberingSequential(t *testing.T) {
	_, where, args := applyFilters(domain.SearchFilter{
		Category:  domain.CategoryJetSkis,
		Query:     "yamaha",
		Location:  "Minsk",
		AdType:    domain.AdTypeSale,
		Brand:     "Yamaha",
		MinYear:   intPtr(2015),
		MaxYear:   intPtr(2022),
		Condition: domain.ConditionUsed,
	})

	assert.Len(t, args, 8)
	assert.Contains(t, where, "(a.title ILIKE $2 OR a.description ILIKE $2)")
	assert.Contains(t, where, "a.location ILIKE $3")
	assert.Contains(t, where, "a.ad_type = $4")
	assert.Contains(t, where, "s.brand ILIKE $5")
	assert.Contains(t, where, "s.year >= $6")
	assert.Contains(t, where, "s.year <= $7")
	assert.Contains(t, where, "s.condition = $8")
}

func TestApplyFilters_QuerySearchesTitleAndDescription(t *testing.T) {
	_, _, args := applyFilters(domain.SearchFilter{
		Category: domain.CategoryFishing,
		Query:    "shimano",
	})

	// один аргумент на оба поля
	assert.Equal(t, []interface{}{string(domain.CategoryFishing), "%shimano%"}, args)
}

func TestApplyFilters_ElectronicsFilters(t *testing.T) {
	_, where, args := applyFilters(domain.SearchFilter{
		Category:        domain.CategoryMarineElectronics,
		ElectronicsType: domain.ElectronicsSonar,
		ScreenSize:      domain.Screen5To7Inch,
		GpsIntegrated:   boolPtr(true),
	})

	assert.Contains(t, where, "s.electronics_type = $2")
	assert.Contains(t, where, "s.screen_size = $3")
	assert.Contains(t, where, "s.gps_integrated = $4")
	assert.Len(t, args, 4)
}

// Год у электроники — NULL-колонка, диапазон по году для этой категории
// не применяется: объявления без года не должны пропадать из выборки.
func TestApplyFilters_ElectronicsYearRangeNotApplied(t *testing.T) {
	_, where, args := applyFilters(domain.SearchFilter{
		Category: domain.CategoryMarineElectronics,
		MinYear:  intPtr(2015),
		MaxYear:  intPtr(2022),
	})

	assert.NotContains(t, where, "s.year")
	assert.Len(t, args, 1) // только категория
}

// "Mercury" должен находить сервисы с "Mercury Marine" в списке брендов:
// сравнение идет подстрокой по элементам массива, не точным равенством.
func TestApplyFilters_ServicesSupportedBrandSubstringMatch(t *testing.T) {
	_, where, args := applyFilters(domain.SearchFilter{
		Category:          domain.CategoryServices,
		ServiceType:       domain.ServiceRepair,
		AuthorizedService: boolPtr(true),
		SupportedBrand:    "Mercury",
	})

	assert.Contains(t, where, "EXISTS (SELECT 1 FROM unnest(s.supported_brands) AS brand WHERE brand ILIKE $4)")
	assert.NotContains(t, where, "= ANY(")
	assert.Equal(t, []interface{}{string(domain.CategoryServices), string(domain.ServiceRepair), true, "%Mercury%"}, args)
}
