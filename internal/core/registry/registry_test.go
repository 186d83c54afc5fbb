package registry

import (
	"ad-service/internal/core/domain"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(v bool) *bool        { return &v }
func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

// validBoatSpec — полностью заполненная спецификация лодки,
// проходящая все проверки. Тесты портят ее поля по одному.
func validBoatSpec() *domain.BoatSpecification {
	return &domain.BoatSpecification{
		Type:               domain.BoatTypeMotorBoat,
		Brand:              "Bayliner",
		Model:              "VR5",
		EngineType:         domain.BoatEngineOutboard,
		EngineIncluded:     boolPtr(true),
		Horsepower:         intPtr(250),
		Length:             floatPtr(6.2),
		Width:              floatPtr(2.3),
		MaxPeople:          intPtr(8),
		Year:               intPtr(2020),
		InWarranty:         boolPtr(false),
		Weight:             floatPtr(1500),
		FuelCapacity:       floatPtr(180),
		HasWaterTank:       boolPtr(true),
		NumberOfEngines:    intPtr(1),
		HasAuxiliaryEngine: boolPtr(false),
		ConsoleType:        domain.ConsoleCentral,
		FuelType:           domain.FuelPetrol,
		Material:           domain.MaterialFiberglass,
		IsRegistered:       boolPtr(true),
		Condition:          domain.ConditionUsed,
	}
}

func validJetSkiSpec() *domain.JetSkiSpecification {
	return &domain.JetSkiSpecification{
		Brand:           "Yamaha",
		Model:           "VX Cruiser",
		IsRegistered:    boolPtr(true),
		Horsepower:      intPtr(125),
		Year:            intPtr(2021),
		Weight:          floatPtr(340),
		FuelCapacity:    floatPtr(70),
		OperatingHours:  intPtr(120),
		FuelType:        domain.FuelPetrol,
		TrailerIncluded: boolPtr(false),
		InWarranty:      boolPtr(true),
		Condition:       domain.ConditionUsed,
	}
}

func requireFieldError(t *testing.T, err error, field, rule string) {
	t.Helper()
	var fieldErr *domain.FieldValidationError
	require.True(t, errors.As(err, &fieldErr), "expected FieldValidationError, got %v", err)
	assert.Equal(t, field, fieldErr.Field)
	assert.Equal(t, rule, fieldErr.Rule)
}

func TestValidate_ValidSpecifications(t *testing.T) {
	assert.NoError(t, Validate(domain.CategoryBoatsAndYachts, validBoatSpec()))
	assert.NoError(t, Validate(domain.CategoryJetSkis, validJetSkiSpec()))

	assert.NoError(t, Validate(domain.CategoryMarineElectronics, &domain.MarineElectronicsSpecification{
		ElectronicsType: domain.ElectronicsSonar,
		Brand:           "Garmin",
		Condition:       domain.ConditionNew,
	}))

	assert.NoError(t, Validate(domain.CategoryServices, &domain.ServicesSpecification{
		ServiceType:  domain.ServiceRepair,
		CompanyName:  "Marine Service LLC",
		ContactPhone: "+375291112233",
		ContactEmail: "service@example.com",
		Address:      "Minsk, Pobediteley 1",
	}))
}

func TestValidate_UnknownCategory(t *testing.T) {
	err := Validate(domain.Category("CARS"), validBoatSpec())
	assert.ErrorIs(t, err, domain.ErrUnsupportedCategory)
}

func TestValidate_NilSpecification(t *testing.T) {
	err := Validate(domain.CategoryBoatsAndYachts, nil)
	requireFieldError(t, err, "specification", domain.RuleMissing)
}

func TestValidate_CategoryMismatch(t *testing.T) {
	err := Validate(domain.CategoryJetSkis, validBoatSpec())
	requireFieldError(t, err, "specification", domain.RuleInvalidValue)
}

func TestValidate_MissingVsOutOfRange(t *testing.T) {
	t.Run("NilFieldIsMissing", func(t *testing.T) {
		spec := validBoatSpec()
		spec.Horsepower = nil
		err := Validate(domain.CategoryBoatsAndYachts, spec)
		requireFieldError(t, err, "horsepower", domain.RuleMissing)
	})

	t.Run("ZeroValueIsOutOfRange", func(t *testing.T) {
		spec := validBoatSpec()
		spec.Horsepower = intPtr(0)
		err := Validate(domain.CategoryBoatsAndYachts, spec)
		requireFieldError(t, err, "horsepower", domain.RuleOutOfRange)
	})

	t.Run("UnknownEnumIsInvalidValue", func(t *testing.T) {
		spec := validBoatSpec()
		spec.FuelType = domain.FuelType("PLUTONIUM")
		err := Validate(domain.CategoryBoatsAndYachts, spec)
		requireFieldError(t, err, "fuelType", domain.RuleInvalidValue)
	})
}

// Проверки идут в порядке объявления полей: при нескольких невалидных
// полях возвращается ошибка первого.
func TestValidate_FirstFailureWins(t *testing.T) {
	spec := validBoatSpec()
	spec.Brand = ""
	spec.Year = intPtr(1700)
	spec.FuelType = domain.FuelType("PLUTONIUM")

	err := Validate(domain.CategoryBoatsAndYachts, spec)
	requireFieldError(t, err, "brand", domain.RuleMissing)
}

func TestValidate_YearBounds(t *testing.T) {
	currentYear := time.Now().Year()

	t.Run("TooOld", func(t *testing.T) {
		spec := validBoatSpec()
		spec.Year = intPtr(1899)
		err := Validate(domain.CategoryBoatsAndYachts, spec)
		requireFieldError(t, err, "year", domain.RuleOutOfRange)
	})

	t.Run("LowerBoundAccepted", func(t *testing.T) {
		spec := validBoatSpec()
		spec.Year = intPtr(1900)
		assert.NoError(t, Validate(domain.CategoryBoatsAndYachts, spec))
	})

	t.Run("ModelYearAheadAccepted", func(t *testing.T) {
		spec := validBoatSpec()
		spec.Year = intPtr(currentYear + 5)
		assert.NoError(t, Validate(domain.CategoryBoatsAndYachts, spec))
	})

	t.Run("TooFarAhead", func(t *testing.T) {
		spec := validBoatSpec()
		spec.Year = intPtr(currentYear + 6)
		err := Validate(domain.CategoryBoatsAndYachts, spec)
		requireFieldError(t, err, "year", domain.RuleOutOfRange)
	})
}

// operatingHours — счетчик моточасов, ноль допустим для новой техники.
func TestValidate_ZeroOperatingHoursAllowed(t *testing.T) {
	spec := validJetSkiSpec()
	spec.OperatingHours = intPtr(0)
	assert.NoError(t, Validate(domain.CategoryJetSkis, spec))

	spec.OperatingHours = intPtr(-1)
	err := Validate(domain.CategoryJetSkis, spec)
	requireFieldError(t, err, "operatingHours", domain.RuleOutOfRange)
}

func TestSchemaFor_UnknownCategory(t *testing.T) {
	_, err := SchemaFor(domain.Category("CARS"))
	assert.ErrorIs(t, err, domain.ErrUnsupportedCategory)
}

func TestSchemaFor_CoversAllCategories(t *testing.T) {
	categories := []domain.Category{
		domain.CategoryBoatsAndYachts,
		domain.CategoryJetSkis,
		domain.CategoryTrailers,
		domain.CategoryEngines,
		domain.CategoryMarineElectronics,
		domain.CategoryFishing,
		domain.CategoryParts,
		domain.CategoryServices,
	}

	for _, cat := range categories {
		schema, err := SchemaFor(cat)
		require.NoError(t, err, cat)
		assert.Equal(t, cat, schema.Category)
		assert.NotEmpty(t, schema.Fields, cat)

		for _, f := range schema.Fields {
			if f.Kind == KindEnum || f.Kind == KindEnumList {
				assert.NotEmpty(t, f.Enum, "%s.%s has no value set", cat, f.Name)
			}
		}
	}
}

// Обязательные поля схемы перечислены в том же порядке, в котором их
// проверяет Validate.
func TestSchemaFor_BoatRequiredFieldOrder(t *testing.T) {
	schema, err := SchemaFor(domain.CategoryBoatsAndYachts)
	require.NoError(t, err)

	var requiredNames []string
	for _, f := range schema.Fields {
		if f.Required {
			requiredNames = append(requiredNames, f.Name)
		}
	}

	assert.Equal(t, []string{
		"type", "brand", "model", "engineType", "engineIncluded", "horsepower",
		"length", "width", "maxPeople", "year", "inWarranty", "weight",
		"fuelCapacity", "hasWaterTank", "numberOfEngines", "hasAuxiliaryEngine",
		"consoleType", "fuelType", "material", "isRegistered", "condition",
	}, requiredNames)
}

func TestSchemaFor_ConditionDomain(t *testing.T) {
	schema, err := SchemaFor(domain.CategoryParts)
	require.NoError(t, err)

	var condition *FieldRule
	for i := range schema.Fields {
		if schema.Fields[i].Name == "condition" {
			condition = &schema.Fields[i]
		}
	}
	require.NotNil(t, condition)
	assert.True(t, condition.Required)
	assert.ElementsMatch(t, []string{"NEW", "USED", "FOR_PARTS"}, condition.Enum)
}

// Необязательные поля описаны в схеме, но отсутствие их значений
// не делает спецификацию невалидной.
func TestSchemaFor_OptionalFieldsNotEnforced(t *testing.T) {
	schema, err := SchemaFor(domain.CategoryServices)
	require.NoError(t, err)

	var optionalNames []string
	for _, f := range schema.Fields {
		if !f.Required {
			optionalNames = append(optionalNames, f.Name)
		}
	}
	assert.Contains(t, optionalNames, "website")
	assert.Contains(t, optionalNames, "supportedBrands")

	assert.NoError(t, Validate(domain.CategoryServices, &domain.ServicesSpecification{
		ServiceType:  domain.ServiceRepair,
		CompanyName:  "Marine Service LLC",
		ContactPhone: "+375291112233",
		ContactEmail: "service@example.com",
		Address:      "Minsk, Pobediteley 1",
	}))
}

func TestValidateSearchFilter(t *testing.T) {
	t.Run("CategoryRequired", func(t *testing.T) {
		err := ValidateSearchFilter(domain.SearchFilter{})
		var searchErr *domain.SearchValidationError
		require.True(t, errors.As(err, &searchErr))
	})

	t.Run("UnknownCategory", func(t *testing.T) {
		err := ValidateSearchFilter(domain.SearchFilter{Category: "CARS"})
		assert.Error(t, err)
	})

	t.Run("PriceRangeCoherence", func(t *testing.T) {
		err := ValidateSearchFilter(domain.SearchFilter{
			Category: domain.CategoryBoatsAndYachts,
			MinPrice: floatPtr(5000),
			MaxPrice: floatPtr(1000),
		})
		assert.Error(t, err)
	})

	t.Run("NegativePriceRejected", func(t *testing.T) {
		err := ValidateSearchFilter(domain.SearchFilter{
			Category: domain.CategoryBoatsAndYachts,
			MinPrice: floatPtr(-1),
		})
		assert.Error(t, err)
	})

	t.Run("YearRangeCoherence", func(t *testing.T) {
		err := ValidateSearchFilter(domain.SearchFilter{
			Category: domain.CategoryBoatsAndYachts,
			MinYear:  intPtr(2022),
			MaxYear:  intPtr(2019),
		})
		assert.Error(t, err)
	})

	t.Run("UnknownEnumFilterRejected", func(t *testing.T) {
		err := ValidateSearchFilter(domain.SearchFilter{
			Category:        domain.CategoryMarineElectronics,
			ElectronicsType: "TOASTER",
		})
		assert.Error(t, err)
	})

	// Фильтр чужой категории не отклоняется — движок его не применит
	t.Run("CrossCategoryFilterIgnored", func(t *testing.T) {
		err := ValidateSearchFilter(domain.SearchFilter{
			Category:    domain.CategoryBoatsAndYachts,
			ServiceType: domain.ServiceRepair,
		})
		assert.NoError(t, err)
	})

	t.Run("ValidFilter", func(t *testing.T) {
		err := ValidateSearchFilter(domain.SearchFilter{
			Category: domain.CategoryBoatsAndYachts,
			MinPrice: floatPtr(1000),
			MaxPrice: floatPtr(50000),
			SortBy:   domain.SortPriceLowToHigh,
		})
		assert.NoError(t, err)
	})
}
