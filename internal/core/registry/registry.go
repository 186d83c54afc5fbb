package registry

import (
	"ad-service/internal/core/domain"
	"fmt"
	"time"
)

// Реестр спецификаций. Правила каждой категории описаны декларативной
// таблицей полей (имя, вид, обязательность, словарь значений);
// валидация идет по таблице строго в порядке объявления полей и
// останавливается на первой ошибке.

const minYear = 1900

// maxYear: модельный год может опережать календарный.
func maxYear() int {
	return time.Now().Year() + 5
}

// FieldKind — вид проверки поля спецификации.
type FieldKind string

const (
	KindString         FieldKind = "STRING"
	KindEnum           FieldKind = "ENUM"
	KindEnumList       FieldKind = "ENUM_LIST"
	KindStringList     FieldKind = "STRING_LIST"
	KindBool           FieldKind = "BOOL"
	KindPositiveInt    FieldKind = "POSITIVE_INT"
	KindNonNegativeInt FieldKind = "NON_NEGATIVE_INT"
	KindPositiveFloat  FieldKind = "POSITIVE_FLOAT"
	KindYear           FieldKind = "YEAR" // диапазон [1900, текущий год + 5]
)

// FieldRule — одно поле схемы категории. Для Kind KindEnum/KindEnumList
// Enum содержит словарь допустимых значений. Необязательные поля
// описаны в схеме, но валидацией не проверяются.
type FieldRule struct {
	Name     string
	Kind     FieldKind
	Required bool
	Enum     []string

	value func(domain.Specification) any
}

// FieldSchema — полная схема полей одной категории в порядке проверки.
type FieldSchema struct {
	Category domain.Category
	Fields   []FieldRule
}

var schemas = map[domain.Category]FieldSchema{
	domain.CategoryBoatsAndYachts:    boatSchema(),
	domain.CategoryJetSkis:           jetSkiSchema(),
	domain.CategoryTrailers:          trailerSchema(),
	domain.CategoryEngines:           engineSchema(),
	domain.CategoryMarineElectronics: electronicsSchema(),
	domain.CategoryFishing:           fishingSchema(),
	domain.CategoryParts:             partsSchema(),
	domain.CategoryServices:          servicesSchema(),
}

// SchemaFor возвращает схему полей категории.
func SchemaFor(category domain.Category) (FieldSchema, error) {
	schema, ok := schemas[category]
	if !ok {
		return FieldSchema{}, domain.ErrUnsupportedCategory
	}
	return schema, nil
}

// Validate проверяет спецификацию по схеме ее категории.
// Категория объявления обязана совпадать с категорией спецификации.
func Validate(category domain.Category, spec domain.Specification) error {
	schema, err := SchemaFor(category)
	if err != nil {
		return err
	}
	if spec == nil {
		return domain.NewMissingFieldError(category, "specification")
	}
	if spec.Category() != category {
		return domain.NewInvalidValueError(category, "specification",
			fmt.Sprintf("specification belongs to category %s", spec.Category()))
	}

	for _, rule := range schema.Fields {
		if !rule.Required {
			continue
		}
		if err := checkField(category, rule, spec); err != nil {
			return err
		}
	}
	return nil
}

func checkField(cat domain.Category, rule FieldRule, spec domain.Specification) error {
	switch rule.Kind {
	case KindString:
		return checkString(cat, rule.Name, rule.value(spec).(string))
	case KindEnum:
		return checkEnum(cat, rule.Name, rule.value(spec).(string), rule.Enum...)
	case KindBool:
		return checkBool(cat, rule.Name, rule.value(spec).(*bool))
	case KindPositiveInt:
		return checkPositiveInt(cat, rule.Name, rule.value(spec).(*int))
	case KindNonNegativeInt:
		return checkNonNegativeInt(cat, rule.Name, rule.value(spec).(*int))
	case KindPositiveFloat:
		return checkPositiveFloat(cat, rule.Name, rule.value(spec).(*float64))
	case KindYear:
		return checkYear(cat, rule.Name, rule.value(spec).(*int))
	}
	return nil
}

// --- примитивы проверок ---

func checkString(cat domain.Category, field, value string) error {
	if value == "" {
		return domain.NewMissingFieldError(cat, field)
	}
	return nil
}

func checkEnum(cat domain.Category, field, value string, allowed ...string) error {
	if value == "" {
		return domain.NewMissingFieldError(cat, field)
	}
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return domain.NewInvalidValueError(cat, field, fmt.Sprintf("unknown value %q", value))
}

func checkBool(cat domain.Category, field string, value *bool) error {
	if value == nil {
		return domain.NewMissingFieldError(cat, field)
	}
	return nil
}

func checkPositiveInt(cat domain.Category, field string, value *int) error {
	if value == nil {
		return domain.NewMissingFieldError(cat, field)
	}
	if *value <= 0 {
		return domain.NewOutOfRangeError(cat, field, "must be positive")
	}
	return nil
}

func checkNonNegativeInt(cat domain.Category, field string, value *int) error {
	if value == nil {
		return domain.NewMissingFieldError(cat, field)
	}
	if *value < 0 {
		return domain.NewOutOfRangeError(cat, field, "must not be negative")
	}
	return nil
}

func checkPositiveFloat(cat domain.Category, field string, value *float64) error {
	if value == nil {
		return domain.NewMissingFieldError(cat, field)
	}
	if *value <= 0 {
		return domain.NewOutOfRangeError(cat, field, "must be positive")
	}
	return nil
}

// checkYear: сначала отсутствие, затем диапазон — два разных правила.
func checkYear(cat domain.Category, field string, value *int) error {
	if value == nil {
		return domain.NewMissingFieldError(cat, field)
	}
	upper := maxYear()
	if *value < minYear || *value > upper {
		return domain.NewOutOfRangeError(cat, field, fmt.Sprintf("must be between %d and %d", minYear, upper))
	}
	return nil
}

// --- доступ к полям конкретных спецификаций ---

func boatField(get func(*domain.BoatSpecification) any) func(domain.Specification) any {
	return func(spec domain.Specification) any { return get(spec.(*domain.BoatSpecification)) }
}

func jetSkiField(get func(*domain.JetSkiSpecification) any) func(domain.Specification) any {
	return func(spec domain.Specification) any { return get(spec.(*domain.JetSkiSpecification)) }
}

func trailerField(get func(*domain.TrailerSpecification) any) func(domain.Specification) any {
	return func(spec domain.Specification) any { return get(spec.(*domain.TrailerSpecification)) }
}

func engineField(get func(*domain.EngineSpecification) any) func(domain.Specification) any {
	return func(spec domain.Specification) any { return get(spec.(*domain.EngineSpecification)) }
}

func electronicsField(get func(*domain.MarineElectronicsSpecification) any) func(domain.Specification) any {
	return func(spec domain.Specification) any { return get(spec.(*domain.MarineElectronicsSpecification)) }
}

func fishingField(get func(*domain.FishingSpecification) any) func(domain.Specification) any {
	return func(spec domain.Specification) any { return get(spec.(*domain.FishingSpecification)) }
}

func partsField(get func(*domain.PartsSpecification) any) func(domain.Specification) any {
	return func(spec domain.Specification) any { return get(spec.(*domain.PartsSpecification)) }
}

func servicesField(get func(*domain.ServicesSpecification) any) func(domain.Specification) any {
	return func(spec domain.Specification) any { return get(spec.(*domain.ServicesSpecification)) }
}

// --- схемы категорий ---

func boatSchema() FieldSchema {
	return FieldSchema{
		Category: domain.CategoryBoatsAndYachts,
		Fields: []FieldRule{
			{Name: "type", Kind: KindEnum, Required: true, Enum: boatTypeValues(),
				value: boatField(func(s *domain.BoatSpecification) any { return string(s.Type) })},
			{Name: "brand", Kind: KindString, Required: true,
				value: boatField(func(s *domain.BoatSpecification) any { return s.Brand })},
			{Name: "model", Kind: KindString, Required: true,
				value: boatField(func(s *domain.BoatSpecification) any { return s.Model })},
			{Name: "engineType", Kind: KindEnum, Required: true, Enum: boatEngineTypeValues(),
				value: boatField(func(s *domain.BoatSpecification) any { return string(s.EngineType) })},
			{Name: "engineIncluded", Kind: KindBool, Required: true,
				value: boatField(func(s *domain.BoatSpecification) any { return s.EngineIncluded })},
			{Name: "engineBrandModel", Kind: KindString},
			{Name: "horsepower", Kind: KindPositiveInt, Required: true,
				value: boatField(func(s *domain.BoatSpecification) any { return s.Horsepower })},
			{Name: "length", Kind: KindPositiveFloat, Required: true,
				value: boatField(func(s *domain.BoatSpecification) any { return s.Length })},
			{Name: "width", Kind: KindPositiveFloat, Required: true,
				value: boatField(func(s *domain.BoatSpecification) any { return s.Width })},
			{Name: "draft", Kind: KindPositiveFloat},
			{Name: "maxPeople", Kind: KindPositiveInt, Required: true,
				value: boatField(func(s *domain.BoatSpecification) any { return s.MaxPeople })},
			{Name: "year", Kind: KindYear, Required: true,
				value: boatField(func(s *domain.BoatSpecification) any { return s.Year })},
			{Name: "inWarranty", Kind: KindBool, Required: true,
				value: boatField(func(s *domain.BoatSpecification) any { return s.InWarranty })},
			{Name: "weight", Kind: KindPositiveFloat, Required: true,
				value: boatField(func(s *domain.BoatSpecification) any { return s.Weight })},
			{Name: "fuelCapacity", Kind: KindPositiveFloat, Required: true,
				value: boatField(func(s *domain.BoatSpecification) any { return s.FuelCapacity })},
			{Name: "hasWaterTank", Kind: KindBool, Required: true,
				value: boatField(func(s *domain.BoatSpecification) any { return s.HasWaterTank })},
			{Name: "numberOfEngines", Kind: KindPositiveInt, Required: true,
				value: boatField(func(s *domain.BoatSpecification) any { return s.NumberOfEngines })},
			{Name: "hasAuxiliaryEngine", Kind: KindBool, Required: true,
				value: boatField(func(s *domain.BoatSpecification) any { return s.HasAuxiliaryEngine })},
			{Name: "consoleType", Kind: KindEnum, Required: true, Enum: consoleTypeValues(),
				value: boatField(func(s *domain.BoatSpecification) any { return string(s.ConsoleType) })},
			{Name: "fuelType", Kind: KindEnum, Required: true, Enum: fuelTypeValues(),
				value: boatField(func(s *domain.BoatSpecification) any { return string(s.FuelType) })},
			{Name: "material", Kind: KindEnum, Required: true, Enum: materialTypeValues(),
				value: boatField(func(s *domain.BoatSpecification) any { return string(s.Material) })},
			{Name: "isRegistered", Kind: KindBool, Required: true,
				value: boatField(func(s *domain.BoatSpecification) any { return s.IsRegistered })},
			{Name: "hasCommercialFishingLicense", Kind: KindBool},
			{Name: "condition", Kind: KindEnum, Required: true, Enum: conditionValues(),
				value: boatField(func(s *domain.BoatSpecification) any { return string(s.Condition) })},
			{Name: "interiorFeatures", Kind: KindEnumList, Enum: interiorFeatureValues()},
			{Name: "exteriorFeatures", Kind: KindEnumList, Enum: exteriorFeatureValues()},
			{Name: "equipment", Kind: KindEnumList, Enum: equipmentValues()},
		},
	}
}

func jetSkiSchema() FieldSchema {
	return FieldSchema{
		Category: domain.CategoryJetSkis,
		Fields: []FieldRule{
			{Name: "brand", Kind: KindString, Required: true,
				value: jetSkiField(func(s *domain.JetSkiSpecification) any { return s.Brand })},
			{Name: "model", Kind: KindString, Required: true,
				value: jetSkiField(func(s *domain.JetSkiSpecification) any { return s.Model })},
			{Name: "modification", Kind: KindString},
			{Name: "isRegistered", Kind: KindBool, Required: true,
				value: jetSkiField(func(s *domain.JetSkiSpecification) any { return s.IsRegistered })},
			{Name: "horsepower", Kind: KindPositiveInt, Required: true,
				value: jetSkiField(func(s *domain.JetSkiSpecification) any { return s.Horsepower })},
			{Name: "year", Kind: KindYear, Required: true,
				value: jetSkiField(func(s *domain.JetSkiSpecification) any { return s.Year })},
			{Name: "weight", Kind: KindPositiveFloat, Required: true,
				value: jetSkiField(func(s *domain.JetSkiSpecification) any { return s.Weight })},
			{Name: "fuelCapacity", Kind: KindPositiveFloat, Required: true,
				value: jetSkiField(func(s *domain.JetSkiSpecification) any { return s.FuelCapacity })},
			{Name: "operatingHours", Kind: KindNonNegativeInt, Required: true,
				value: jetSkiField(func(s *domain.JetSkiSpecification) any { return s.OperatingHours })},
			{Name: "fuelType", Kind: KindEnum, Required: true, Enum: fuelTypeValues(),
				value: jetSkiField(func(s *domain.JetSkiSpecification) any { return string(s.FuelType) })},
			{Name: "trailerIncluded", Kind: KindBool, Required: true,
				value: jetSkiField(func(s *domain.JetSkiSpecification) any { return s.TrailerIncluded })},
			{Name: "inWarranty", Kind: KindBool, Required: true,
				value: jetSkiField(func(s *domain.JetSkiSpecification) any { return s.InWarranty })},
			{Name: "condition", Kind: KindEnum, Required: true, Enum: conditionValues(),
				value: jetSkiField(func(s *domain.JetSkiSpecification) any { return string(s.Condition) })},
		},
	}
}

func trailerSchema() FieldSchema {
	return FieldSchema{
		Category: domain.CategoryTrailers,
		Fields: []FieldRule{
			{Name: "trailerType", Kind: KindEnum, Required: true, Enum: trailerTypeValues(),
				value: trailerField(func(s *domain.TrailerSpecification) any { return string(s.TrailerType) })},
			{Name: "brand", Kind: KindString},
			{Name: "model", Kind: KindString},
			{Name: "axleCount", Kind: KindEnum, Required: true, Enum: axleCountValues(),
				value: trailerField(func(s *domain.TrailerSpecification) any { return string(s.AxleCount) })},
			{Name: "isRegistered", Kind: KindBool, Required: true,
				value: trailerField(func(s *domain.TrailerSpecification) any { return s.IsRegistered })},
			{Name: "ownWeight", Kind: KindPositiveFloat},
			{Name: "loadCapacity", Kind: KindPositiveFloat, Required: true,
				value: trailerField(func(s *domain.TrailerSpecification) any { return s.LoadCapacity })},
			{Name: "length", Kind: KindPositiveFloat, Required: true,
				value: trailerField(func(s *domain.TrailerSpecification) any { return s.Length })},
			{Name: "width", Kind: KindPositiveFloat, Required: true,
				value: trailerField(func(s *domain.TrailerSpecification) any { return s.Width })},
			{Name: "year", Kind: KindYear, Required: true,
				value: trailerField(func(s *domain.TrailerSpecification) any { return s.Year })},
			{Name: "suspensionType", Kind: KindEnum, Enum: suspensionTypeValues()},
			{Name: "keelRollers", Kind: KindPositiveInt},
			{Name: "inWarranty", Kind: KindBool, Required: true,
				value: trailerField(func(s *domain.TrailerSpecification) any { return s.InWarranty })},
			{Name: "condition", Kind: KindEnum, Required: true, Enum: conditionValues(),
				value: trailerField(func(s *domain.TrailerSpecification) any { return string(s.Condition) })},
		},
	}
}

func engineSchema() FieldSchema {
	return FieldSchema{
		Category: domain.CategoryEngines,
		Fields: []FieldRule{
			{Name: "engineType", Kind: KindEnum, Required: true, Enum: engineMainTypeValues(),
				value: engineField(func(s *domain.EngineSpecification) any { return string(s.EngineType) })},
			{Name: "brand", Kind: KindString},
			{Name: "modification", Kind: KindString},
			{Name: "strokeType", Kind: KindEnum, Required: true, Enum: strokeTypeValues(),
				value: engineField(func(s *domain.EngineSpecification) any { return string(s.StrokeType) })},
			{Name: "inWarranty", Kind: KindBool, Required: true,
				value: engineField(func(s *domain.EngineSpecification) any { return s.InWarranty })},
			{Name: "horsepower", Kind: KindPositiveInt, Required: true,
				value: engineField(func(s *domain.EngineSpecification) any { return s.Horsepower })},
			{Name: "operatingHours", Kind: KindNonNegativeInt, Required: true,
				value: engineField(func(s *domain.EngineSpecification) any { return s.OperatingHours })},
			{Name: "cylinders", Kind: KindPositiveInt},
			{Name: "displacementCc", Kind: KindPositiveInt},
			{Name: "rpm", Kind: KindPositiveInt},
			{Name: "weight", Kind: KindPositiveFloat},
			{Name: "year", Kind: KindYear, Required: true,
				value: engineField(func(s *domain.EngineSpecification) any { return s.Year })},
			{Name: "fuelCapacity", Kind: KindPositiveFloat, Required: true,
				value: engineField(func(s *domain.EngineSpecification) any { return s.FuelCapacity })},
			{Name: "ignitionType", Kind: KindEnum, Required: true, Enum: ignitionTypeValues(),
				value: engineField(func(s *domain.EngineSpecification) any { return string(s.IgnitionType) })},
			{Name: "controlType", Kind: KindEnum, Required: true, Enum: controlTypeValues(),
				value: engineField(func(s *domain.EngineSpecification) any { return string(s.ControlType) })},
			{Name: "shaftLength", Kind: KindEnum, Required: true, Enum: shaftLengthValues(),
				value: engineField(func(s *domain.EngineSpecification) any { return string(s.ShaftLength) })},
			{Name: "fuelType", Kind: KindEnum, Required: true, Enum: fuelTypeValues(),
				value: engineField(func(s *domain.EngineSpecification) any { return string(s.FuelType) })},
			{Name: "engineSystemType", Kind: KindEnum, Required: true, Enum: engineSystemTypeValues(),
				value: engineField(func(s *domain.EngineSpecification) any { return string(s.EngineSystemType) })},
			{Name: "condition", Kind: KindEnum, Required: true, Enum: conditionValues(),
				value: engineField(func(s *domain.EngineSpecification) any { return string(s.Condition) })},
			{Name: "color", Kind: KindEnum, Required: true, Enum: engineColorValues(),
				value: engineField(func(s *domain.EngineSpecification) any { return string(s.Color) })},
		},
	}
}

func electronicsSchema() FieldSchema {
	return FieldSchema{
		Category: domain.CategoryMarineElectronics,
		Fields: []FieldRule{
			{Name: "electronicsType", Kind: KindEnum, Required: true, Enum: electronicsTypeValues(),
				value: electronicsField(func(s *domain.MarineElectronicsSpecification) any { return string(s.ElectronicsType) })},
			{Name: "brand", Kind: KindString, Required: true,
				value: electronicsField(func(s *domain.MarineElectronicsSpecification) any { return s.Brand })},
			{Name: "model", Kind: KindString},
			{Name: "year", Kind: KindYear},
			{Name: "inWarranty", Kind: KindBool},
			{Name: "condition", Kind: KindEnum, Required: true, Enum: conditionValues(),
				value: electronicsField(func(s *domain.MarineElectronicsSpecification) any { return string(s.Condition) })},
			{Name: "workingFrequency", Kind: KindEnum, Enum: workingFrequencyValues()},
			{Name: "depthRange", Kind: KindEnum, Enum: depthRangeValues()},
			{Name: "screenSize", Kind: KindEnum, Enum: screenSizeValues()},
			{Name: "screenType", Kind: KindEnum, Enum: screenTypeValues()},
			{Name: "probeIncluded", Kind: KindBool},
			{Name: "gpsIntegrated", Kind: KindBool},
			{Name: "thrust", Kind: KindPositiveInt},
			{Name: "voltage", Kind: KindEnum, Enum: voltageValues()},
			{Name: "mounting", Kind: KindEnum, Enum: mountingTypeValues()},
		},
	}
}

func fishingSchema() FieldSchema {
	return FieldSchema{
		Category: domain.CategoryFishing,
		Fields: []FieldRule{
			{Name: "fishingType", Kind: KindEnum, Required: true, Enum: fishingTypeValues(),
				value: fishingField(func(s *domain.FishingSpecification) any { return string(s.FishingType) })},
			{Name: "brand", Kind: KindString},
			{Name: "fishingTechnique", Kind: KindEnum, Required: true, Enum: fishingTechniqueValues(),
				value: fishingField(func(s *domain.FishingSpecification) any { return string(s.FishingTechnique) })},
			{Name: "targetFish", Kind: KindEnum, Required: true, Enum: targetFishValues(),
				value: fishingField(func(s *domain.FishingSpecification) any { return string(s.TargetFish) })},
			{Name: "condition", Kind: KindEnum, Required: true, Enum: conditionValues(),
				value: fishingField(func(s *domain.FishingSpecification) any { return string(s.Condition) })},
		},
	}
}

func partsSchema() FieldSchema {
	return FieldSchema{
		Category: domain.CategoryParts,
		Fields: []FieldRule{
			{Name: "partType", Kind: KindEnum, Required: true, Enum: partTypeValues(),
				value: partsField(func(s *domain.PartsSpecification) any { return string(s.PartType) })},
			{Name: "brand", Kind: KindString},
			{Name: "condition", Kind: KindEnum, Required: true, Enum: conditionValues(),
				value: partsField(func(s *domain.PartsSpecification) any { return string(s.Condition) })},
		},
	}
}

func servicesSchema() FieldSchema {
	return FieldSchema{
		Category: domain.CategoryServices,
		Fields: []FieldRule{
			{Name: "serviceType", Kind: KindEnum, Required: true, Enum: serviceTypeValues(),
				value: servicesField(func(s *domain.ServicesSpecification) any { return string(s.ServiceType) })},
			{Name: "companyName", Kind: KindString, Required: true,
				value: servicesField(func(s *domain.ServicesSpecification) any { return s.CompanyName })},
			{Name: "isAuthorizedService", Kind: KindBool},
			{Name: "isOfficialRepresentative", Kind: KindBool},
			{Name: "description", Kind: KindString},
			{Name: "contactPhone", Kind: KindString, Required: true,
				value: servicesField(func(s *domain.ServicesSpecification) any { return s.ContactPhone })},
			{Name: "contactPhone2", Kind: KindString},
			{Name: "contactEmail", Kind: KindString, Required: true,
				value: servicesField(func(s *domain.ServicesSpecification) any { return s.ContactEmail })},
			{Name: "address", Kind: KindString, Required: true,
				value: servicesField(func(s *domain.ServicesSpecification) any { return s.Address })},
			{Name: "website", Kind: KindString},
			{Name: "supportedBrands", Kind: KindStringList},
			{Name: "supportedMaterials", Kind: KindEnumList, Enum: materialTypeValues()},
		},
	}
}

// --- словари значений, не используемые поиском ---

func conditionValues() []string {
	return []string{
		string(domain.ConditionNew),
		string(domain.ConditionUsed),
		string(domain.ConditionForParts),
	}
}

func fuelTypeValues() []string {
	return []string{
		string(domain.FuelPetrol),
		string(domain.FuelDiesel),
		string(domain.FuelLPG),
		string(domain.FuelElectric),
		string(domain.FuelHydrogen),
	}
}

func boatTypeValues() []string {
	return []string{
		string(domain.BoatTypeMotorBoat),
		string(domain.BoatTypeSailingBoat),
		string(domain.BoatTypeKayakCanoe),
	}
}

func boatEngineTypeValues() []string {
	return []string{
		string(domain.BoatEngineOutboard),
		string(domain.BoatEngineInboard),
		string(domain.BoatEngineNone),
	}
}

func consoleTypeValues() []string {
	return []string{
		string(domain.ConsoleNone),
		string(domain.ConsoleCentral),
		string(domain.ConsoleSide),
		string(domain.ConsoleCabin),
		string(domain.ConsoleFlybridge),
	}
}

func materialTypeValues() []string {
	return []string{
		string(domain.MaterialFiberglass),
		string(domain.MaterialWood),
		string(domain.MaterialAluminum),
		string(domain.MaterialPVC),
		string(domain.MaterialHypalon),
		string(domain.MaterialRubber),
	}
}

func interiorFeatureValues() []string {
	return []string{
		string(domain.InteriorCabin),
		string(domain.InteriorBerths),
		string(domain.InteriorToilet),
		string(domain.InteriorGalley),
		string(domain.InteriorShower),
		string(domain.InteriorHeating),
		string(domain.InteriorAirConditioning),
		string(domain.InteriorFridge),
	}
}

func exteriorFeatureValues() []string {
	return []string{
		string(domain.ExteriorSwimLadder),
		string(domain.ExteriorBiminiTop),
		string(domain.ExteriorBowSundeck),
		string(domain.ExteriorSternSundeck),
		string(domain.ExteriorTeakDeck),
		string(domain.ExteriorAnchorWinch),
		string(domain.ExteriorNavigationLights),
		string(domain.ExteriorTrimTabs),
	}
}

func equipmentValues() []string {
	return []string{
		string(domain.EquipmentGPS),
		string(domain.EquipmentAutopilot),
		string(domain.EquipmentFishFinder),
		string(domain.EquipmentVHFRadio),
		string(domain.EquipmentBilgePump),
		string(domain.EquipmentLifeJackets),
		string(domain.EquipmentFireExtinguisher),
		string(domain.EquipmentDepthSounder),
		string(domain.EquipmentBowThruster),
	}
}

func trailerTypeValues() []string {
	return []string{
		string(domain.TrailerBoat),
		string(domain.TrailerJetSki),
		string(domain.TrailerUniversal),
	}
}

func axleCountValues() []string {
	return []string{
		string(domain.AxleSingle),
		string(domain.AxleDouble),
		string(domain.AxleTriple),
	}
}

func suspensionTypeValues() []string {
	return []string{
		string(domain.SuspensionSpring),
		string(domain.SuspensionTorsion),
		string(domain.SuspensionNone),
	}
}

func engineMainTypeValues() []string {
	return []string{
		string(domain.EngineMainOutboard),
		string(domain.EngineMainInboard),
		string(domain.EngineMainSterndrive),
		string(domain.EngineMainElectricTrolling),
	}
}

func strokeTypeValues() []string {
	return []string{
		string(domain.StrokeTwo),
		string(domain.StrokeFour),
		string(domain.StrokeElectric),
	}
}

func ignitionTypeValues() []string {
	return []string{
		string(domain.IgnitionManual),
		string(domain.IgnitionElectric),
		string(domain.IgnitionCombined),
	}
}

func controlTypeValues() []string {
	return []string{
		string(domain.ControlTiller),
		string(domain.ControlRemote),
		string(domain.ControlBoth),
	}
}

func shaftLengthValues() []string {
	return []string{
		string(domain.ShaftShort),
		string(domain.ShaftLong),
		string(domain.ShaftExtraLong),
	}
}

func engineSystemTypeValues() []string {
	return []string{
		string(domain.EngineSystemCarburetor),
		string(domain.EngineSystemEFI),
		string(domain.EngineSystemDirectInjection),
	}
}

func engineColorValues() []string {
	return []string{
		string(domain.EngineColorWhite),
		string(domain.EngineColorBlack),
		string(domain.EngineColorGrey),
		string(domain.EngineColorBlue),
		string(domain.EngineColorOther),
	}
}

func workingFrequencyValues() []string {
	return []string{
		string(domain.FrequencySingle),
		string(domain.FrequencyDual),
		string(domain.FrequencyChirp),
	}
}

func depthRangeValues() []string {
	return []string{
		string(domain.DepthUpTo50m),
		string(domain.DepthUpTo100m),
		string(domain.DepthUpTo300m),
		string(domain.DepthOver300m),
	}
}

func screenTypeValues() []string {
	return []string{
		string(domain.ScreenColor),
		string(domain.ScreenMonochrome),
	}
}

func voltageValues() []string {
	return []string{
		string(domain.Voltage12V),
		string(domain.Voltage24V),
		string(domain.Voltage36V),
	}
}

func mountingTypeValues() []string {
	return []string{
		string(domain.MountingBow),
		string(domain.MountingTransom),
		string(domain.MountingConsole),
		string(domain.MountingPortable),
	}
}
