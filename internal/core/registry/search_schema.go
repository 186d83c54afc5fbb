package registry

import (
	"ad-service/internal/core/domain"
	"fmt"
)

// Наборы значений перечислений, общие для валидации спецификаций
// и параметров поиска.

func electronicsTypeValues() []string {
	return []string{
		string(domain.ElectronicsSonar),
		string(domain.ElectronicsProbe),
		string(domain.ElectronicsTrollingMotor),
		string(domain.ElectronicsChartplotter),
		string(domain.ElectronicsRadio),
		string(domain.ElectronicsAutopilot),
	}
}

func screenSizeValues() []string {
	return []string{
		string(domain.ScreenUpTo5Inch),
		string(domain.Screen5To7Inch),
		string(domain.Screen7To9Inch),
		string(domain.ScreenOver9Inch),
		string(domain.ScreenNoScreen),
	}
}

func fishingTypeValues() []string {
	return []string{
		string(domain.FishingRod),
		string(domain.FishingReel),
		string(domain.FishingCombo),
		string(domain.FishingLure),
		string(domain.FishingAccessories),
	}
}

func fishingTechniqueValues() []string {
	return []string{
		string(domain.TechniqueSpinning),
		string(domain.TechniqueCasting),
		string(domain.TechniqueTrolling),
		string(domain.TechniqueFlyFishing),
		string(domain.TechniqueBottomFishing),
	}
}

func targetFishValues() []string {
	return []string{
		string(domain.TargetFreshwater),
		string(domain.TargetSaltwater),
		string(domain.TargetUniversal),
	}
}

func partTypeValues() []string {
	return []string{
		string(domain.PartPropulsion),
		string(domain.PartElectrical),
		string(domain.PartHull),
		string(domain.PartSteering),
		string(domain.PartFuelSystem),
		string(domain.PartOther),
	}
}

func serviceTypeValues() []string {
	return []string{
		string(domain.ServiceRepair),
		string(domain.ServiceMaintenance),
		string(domain.ServiceTransport),
		string(domain.ServiceStorage),
		string(domain.ServiceInsurance),
		string(domain.ServiceRegistration),
	}
}

func inSet(value string, allowed []string) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}

// ValidateSearchFilter проверяет параметры расширенного поиска.
// Категория обязательна; числовые диапазоны должны быть согласованы;
// значения enum-фильтров проверяются по словарям реестра.
// Фильтры чужих категорий здесь не отклоняются — движок поиска их
// просто не применит.
func ValidateSearchFilter(f domain.SearchFilter) error {
	if f.Category == "" {
		return domain.NewSearchValidationError("category is required")
	}
	if !f.Category.IsValid() {
		return domain.NewSearchValidationError(fmt.Sprintf("unknown category %q", f.Category))
	}

	if f.MinPrice != nil && *f.MinPrice < 0 {
		return domain.NewSearchValidationError("minPrice must not be negative")
	}
	if f.MaxPrice != nil && *f.MaxPrice < 0 {
		return domain.NewSearchValidationError("maxPrice must not be negative")
	}
	if f.MinPrice != nil && f.MaxPrice != nil && *f.MinPrice > *f.MaxPrice {
		return domain.NewSearchValidationError("minPrice must not exceed maxPrice")
	}
	if f.MinYear != nil && f.MaxYear != nil && *f.MinYear > *f.MaxYear {
		return domain.NewSearchValidationError("minYear must not exceed maxYear")
	}

	if f.AdType != "" && !f.AdType.IsValid() {
		return domain.NewSearchValidationError(fmt.Sprintf("unknown adType %q", f.AdType))
	}
	if f.PriceType != "" && !f.PriceType.IsValid() {
		return domain.NewSearchValidationError(fmt.Sprintf("unknown priceType %q", f.PriceType))
	}
	if f.Condition != "" && !inSet(string(f.Condition), conditionValues()) {
		return domain.NewSearchValidationError(fmt.Sprintf("unknown condition %q", f.Condition))
	}

	if f.ElectronicsType != "" && !inSet(string(f.ElectronicsType), electronicsTypeValues()) {
		return domain.NewSearchValidationError(fmt.Sprintf("unknown electronicsType %q", f.ElectronicsType))
	}
	if f.ScreenSize != "" && !inSet(string(f.ScreenSize), screenSizeValues()) {
		return domain.NewSearchValidationError(fmt.Sprintf("unknown screenSize %q", f.ScreenSize))
	}
	if f.FishingType != "" && !inSet(string(f.FishingType), fishingTypeValues()) {
		return domain.NewSearchValidationError(fmt.Sprintf("unknown fishingType %q", f.FishingType))
	}
	if f.FishingTechnique != "" && !inSet(string(f.FishingTechnique), fishingTechniqueValues()) {
		return domain.NewSearchValidationError(fmt.Sprintf("unknown fishingTechnique %q", f.FishingTechnique))
	}
	if f.TargetFish != "" && !inSet(string(f.TargetFish), targetFishValues()) {
		return domain.NewSearchValidationError(fmt.Sprintf("unknown targetFish %q", f.TargetFish))
	}
	if f.PartType != "" && !inSet(string(f.PartType), partTypeValues()) {
		return domain.NewSearchValidationError(fmt.Sprintf("unknown partType %q", f.PartType))
	}
	if f.ServiceType != "" && !inSet(string(f.ServiceType), serviceTypeValues()) {
		return domain.NewSearchValidationError(fmt.Sprintf("unknown serviceType %q", f.ServiceType))
	}

	return nil
}
