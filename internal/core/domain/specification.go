package domain

// Specification — сумма типов по категориям. Ровно одна спецификация
// существует для объявления, в таблице его категории.
type Specification interface {
	Category() Category
}

// --- BOATS_AND_YACHTS ---

type BoatType string

const (
	BoatTypeMotorBoat   BoatType = "MOTOR_BOAT"
	BoatTypeSailingBoat BoatType = "SAILING_BOAT"
	BoatTypeKayakCanoe  BoatType = "KAYAK_CANOE"
)

type BoatEngineType string

const (
	BoatEngineOutboard BoatEngineType = "OUTBOARD"
	BoatEngineInboard  BoatEngineType = "INBOARD"
	BoatEngineNone     BoatEngineType = "NONE"
)

type ConsoleType string

const (
	ConsoleNone      ConsoleType = "NONE"
	ConsoleCentral   ConsoleType = "CENTRAL"
	ConsoleSide      ConsoleType = "SIDE"
	ConsoleCabin     ConsoleType = "CABIN"
	ConsoleFlybridge ConsoleType = "FLYBRIDGE"
)

type FuelType string

const (
	FuelPetrol   FuelType = "PETROL"
	FuelDiesel   FuelType = "DIESEL"
	FuelLPG      FuelType = "LPG"
	FuelElectric FuelType = "ELECTRIC"
	FuelHydrogen FuelType = "HYDROGEN"
)

type MaterialType string

const (
	MaterialFiberglass MaterialType = "FIBERGLASS"
	MaterialWood       MaterialType = "WOOD"
	MaterialAluminum   MaterialType = "ALUMINUM"
	MaterialPVC        MaterialType = "PVC"
	MaterialHypalon    MaterialType = "HYPALON"
	MaterialRubber     MaterialType = "RUBBER"
)

// Мультизначные признаки лодки. Хранятся отдельными строками,
// привязанными к строке спецификации.
type InteriorFeature string

const (
	InteriorCabin           InteriorFeature = "CABIN"
	InteriorBerths          InteriorFeature = "BERTHS"
	InteriorToilet          InteriorFeature = "TOILET"
	InteriorGalley          InteriorFeature = "GALLEY"
	InteriorShower          InteriorFeature = "SHOWER"
	InteriorHeating         InteriorFeature = "HEATING"
	InteriorAirConditioning InteriorFeature = "AIR_CONDITIONING"
	InteriorFridge          InteriorFeature = "FRIDGE"
)

type ExteriorFeature string

const (
	ExteriorSwimLadder       ExteriorFeature = "SWIM_LADDER"
	ExteriorBiminiTop        ExteriorFeature = "BIMINI_TOP"
	ExteriorBowSundeck       ExteriorFeature = "BOW_SUNDECK"
	ExteriorSternSundeck     ExteriorFeature = "STERN_SUNDECK"
	ExteriorTeakDeck         ExteriorFeature = "TEAK_DECK"
	ExteriorAnchorWinch      ExteriorFeature = "ANCHOR_WINCH"
	ExteriorNavigationLights ExteriorFeature = "NAVIGATION_LIGHTS"
	ExteriorTrimTabs         ExteriorFeature = "TRIM_TABS"
)

type Equipment string

const (
	EquipmentGPS              Equipment = "GPS"
	EquipmentAutopilot        Equipment = "AUTOPILOT"
	EquipmentFishFinder       Equipment = "FISH_FINDER"
	EquipmentVHFRadio         Equipment = "VHF_RADIO"
	EquipmentBilgePump        Equipment = "BILGE_PUMP"
	EquipmentLifeJackets      Equipment = "LIFE_JACKETS"
	EquipmentFireExtinguisher Equipment = "FIRE_EXTINGUISHER"
	EquipmentDepthSounder     Equipment = "DEPTH_SOUNDER"
	EquipmentBowThruster      Equipment = "BOW_THRUSTER"
)

// Указатели — чтобы отличать "не передано" от нулевого значения
// при валидации обязательных полей.
type BoatSpecification struct {
	Type                        BoatType          `json:"type"`
	Brand                       string            `json:"brand"`
	Model                       string            `json:"model"`
	EngineType                  BoatEngineType    `json:"engineType"`
	EngineIncluded              *bool             `json:"engineIncluded"`
	EngineBrandModel            string            `json:"engineBrandModel,omitempty"`
	Horsepower                  *int              `json:"horsepower"`
	Length                      *float64          `json:"length"`
	Width                       *float64          `json:"width"`
	Draft                       *float64          `json:"draft,omitempty"`
	MaxPeople                   *int              `json:"maxPeople"`
	Year                        *int              `json:"year"`
	InWarranty                  *bool             `json:"inWarranty"`
	Weight                      *float64          `json:"weight"`
	FuelCapacity                *float64          `json:"fuelCapacity"`
	HasWaterTank                *bool             `json:"hasWaterTank"`
	NumberOfEngines             *int              `json:"numberOfEngines"`
	HasAuxiliaryEngine          *bool             `json:"hasAuxiliaryEngine"`
	ConsoleType                 ConsoleType       `json:"consoleType"`
	FuelType                    FuelType          `json:"fuelType"`
	Material                    MaterialType      `json:"material"`
	IsRegistered                *bool             `json:"isRegistered"`
	HasCommercialFishingLicense *bool             `json:"hasCommercialFishingLicense,omitempty"`
	Condition                   ItemCondition     `json:"condition"`
	InteriorFeatures            []InteriorFeature `json:"interiorFeatures,omitempty"`
	ExteriorFeatures            []ExteriorFeature `json:"exteriorFeatures,omitempty"`
	Equipment                   []Equipment       `json:"equipment,omitempty"`
}

func (s *BoatSpecification) Category() Category { return CategoryBoatsAndYachts }

// --- JET_SKIS ---

type JetSkiSpecification struct {
	Brand           string        `json:"brand"`
	Model           string        `json:"model"`
	Modification    string        `json:"modification,omitempty"`
	IsRegistered    *bool         `json:"isRegistered"`
	Horsepower      *int          `json:"horsepower"`
	Year            *int          `json:"year"`
	Weight          *float64      `json:"weight"`
	FuelCapacity    *float64      `json:"fuelCapacity"`
	OperatingHours  *int          `json:"operatingHours"`
	FuelType        FuelType      `json:"fuelType"`
	TrailerIncluded *bool         `json:"trailerIncluded"`
	InWarranty      *bool         `json:"inWarranty"`
	Condition       ItemCondition `json:"condition"`
}

func (s *JetSkiSpecification) Category() Category { return CategoryJetSkis }

// --- TRAILERS ---

type TrailerType string

const (
	TrailerBoat      TrailerType = "BOAT_TRAILER"
	TrailerJetSki    TrailerType = "JET_SKI_TRAILER"
	TrailerUniversal TrailerType = "UNIVERSAL"
)

type AxleCount string

const (
	AxleSingle AxleCount = "SINGLE"
	AxleDouble AxleCount = "DOUBLE"
	AxleTriple AxleCount = "TRIPLE"
)

type SuspensionType string

const (
	SuspensionSpring  SuspensionType = "SPRING"
	SuspensionTorsion SuspensionType = "TORSION"
	SuspensionNone    SuspensionType = "NONE"
)

type TrailerSpecification struct {
	TrailerType    TrailerType    `json:"trailerType"`
	Brand          string         `json:"brand,omitempty"`
	Model          string         `json:"model,omitempty"`
	AxleCount      AxleCount      `json:"axleCount"`
	IsRegistered   *bool          `json:"isRegistered"`
	OwnWeight      *float64       `json:"ownWeight,omitempty"`
	LoadCapacity   *float64       `json:"loadCapacity"`
	Length         *float64       `json:"length"`
	Width          *float64       `json:"width"`
	Year           *int           `json:"year"`
	SuspensionType SuspensionType `json:"suspensionType,omitempty"`
	KeelRollers    *int           `json:"keelRollers,omitempty"`
	InWarranty     *bool          `json:"inWarranty"`
	Condition      ItemCondition  `json:"condition"`
}

func (s *TrailerSpecification) Category() Category { return CategoryTrailers }

// --- ENGINES ---

type EngineMainType string

const (
	EngineMainOutboard EngineMainType = "OUTBOARD"
	EngineMainInboard  EngineMainType = "INBOARD"
	EngineMainSterndrive EngineMainType = "STERNDRIVE"
	EngineMainElectricTrolling EngineMainType = "ELECTRIC_TROLLING"
)

type StrokeType string

const (
	StrokeTwo      StrokeType = "TWO_STROKE"
	StrokeFour     StrokeType = "FOUR_STROKE"
	StrokeElectric StrokeType = "ELECTRIC"
)

type IgnitionType string

const (
	IgnitionManual   IgnitionType = "MANUAL"
	IgnitionElectric IgnitionType = "ELECTRIC"
	IgnitionCombined IgnitionType = "COMBINED"
)

type ControlType string

const (
	ControlTiller ControlType = "TILLER"
	ControlRemote ControlType = "REMOTE"
	ControlBoth   ControlType = "BOTH"
)

type ShaftLength string

const (
	ShaftShort     ShaftLength = "SHORT"
	ShaftLong      ShaftLength = "LONG"
	ShaftExtraLong ShaftLength = "EXTRA_LONG"
)

type EngineSystemType string

const (
	EngineSystemCarburetor EngineSystemType = "CARBURETOR"
	EngineSystemEFI        EngineSystemType = "EFI"
	EngineSystemDirectInjection EngineSystemType = "DIRECT_INJECTION"
)

type EngineColor string

const (
	EngineColorWhite EngineColor = "WHITE"
	EngineColorBlack EngineColor = "BLACK"
	EngineColorGrey  EngineColor = "GREY"
	EngineColorBlue  EngineColor = "BLUE"
	EngineColorOther EngineColor = "OTHER"
)

type EngineSpecification struct {
	EngineType       EngineMainType   `json:"engineType"`
	Brand            string           `json:"brand,omitempty"`
	Modification     string           `json:"modification,omitempty"`
	StrokeType       StrokeType       `json:"strokeType"`
	InWarranty       *bool            `json:"inWarranty"`
	Horsepower       *int             `json:"horsepower"`
	OperatingHours   *int             `json:"operatingHours"`
	Cylinders        *int             `json:"cylinders,omitempty"`
	DisplacementCc   *int             `json:"displacementCc,omitempty"`
	RPM              *int             `json:"rpm,omitempty"`
	Weight           *float64         `json:"weight,omitempty"`
	Year             *int             `json:"year"`
	FuelCapacity     *float64         `json:"fuelCapacity"`
	IgnitionType     IgnitionType     `json:"ignitionType"`
	ControlType      ControlType      `json:"controlType"`
	ShaftLength      ShaftLength      `json:"shaftLength"`
	FuelType         FuelType         `json:"fuelType"`
	EngineSystemType EngineSystemType `json:"engineSystemType"`
	Condition        ItemCondition    `json:"condition"`
	Color            EngineColor      `json:"color"`
}

func (s *EngineSpecification) Category() Category { return CategoryEngines }

// --- MARINE_ELECTRONICS ---

type ElectronicsType string

const (
	ElectronicsSonar        ElectronicsType = "SONAR"
	ElectronicsProbe        ElectronicsType = "PROBE"
	ElectronicsTrollingMotor ElectronicsType = "TROLLING_MOTOR"
	ElectronicsChartplotter ElectronicsType = "CHARTPLOTTER"
	ElectronicsRadio        ElectronicsType = "RADIO"
	ElectronicsAutopilot    ElectronicsType = "AUTOPILOT"
)

type ScreenSize string

const (
	ScreenUpTo5Inch  ScreenSize = "UP_TO_5_INCH"
	Screen5To7Inch   ScreenSize = "FROM_5_TO_7_INCH"
	Screen7To9Inch   ScreenSize = "FROM_7_TO_9_INCH"
	ScreenOver9Inch  ScreenSize = "OVER_9_INCH"
	ScreenNoScreen   ScreenSize = "NO_SCREEN"
)

type ScreenType string

const (
	ScreenColor      ScreenType = "COLOR"
	ScreenMonochrome ScreenType = "MONOCHROME"
)

type WorkingFrequency string

const (
	FrequencySingle WorkingFrequency = "SINGLE"
	FrequencyDual   WorkingFrequency = "DUAL"
	FrequencyChirp  WorkingFrequency = "CHIRP"
)

type DepthRange string

const (
	DepthUpTo50m  DepthRange = "UP_TO_50_M"
	DepthUpTo100m DepthRange = "UP_TO_100_M"
	DepthUpTo300m DepthRange = "UP_TO_300_M"
	DepthOver300m DepthRange = "OVER_300_M"
)

type Voltage string

const (
	Voltage12V Voltage = "V_12"
	Voltage24V Voltage = "V_24"
	Voltage36V Voltage = "V_36"
)

type MountingType string

const (
	MountingBow       MountingType = "BOW"
	MountingTransom   MountingType = "TRANSOM"
	MountingConsole   MountingType = "CONSOLE"
	MountingPortable  MountingType = "PORTABLE"
)

type MarineElectronicsSpecification struct {
	ElectronicsType  ElectronicsType  `json:"electronicsType"`
	Brand            string           `json:"brand"`
	Model            string           `json:"model,omitempty"`
	Year             *int             `json:"year,omitempty"`
	InWarranty       *bool            `json:"inWarranty,omitempty"`
	Condition        ItemCondition    `json:"condition"`
	WorkingFrequency WorkingFrequency `json:"workingFrequency,omitempty"`
	DepthRange       DepthRange       `json:"depthRange,omitempty"`
	ScreenSize       ScreenSize       `json:"screenSize,omitempty"`
	ScreenType       ScreenType       `json:"screenType,omitempty"`
	ProbeIncluded    *bool            `json:"probeIncluded,omitempty"`
	GpsIntegrated    *bool            `json:"gpsIntegrated,omitempty"`
	Thrust           *int             `json:"thrust,omitempty"`
	Voltage          Voltage          `json:"voltage,omitempty"`
	Mounting         MountingType     `json:"mounting,omitempty"`
}

func (s *MarineElectronicsSpecification) Category() Category { return CategoryMarineElectronics }

// --- FISHING ---

type FishingType string

const (
	FishingRod         FishingType = "ROD"
	FishingReel        FishingType = "REEL"
	FishingCombo       FishingType = "COMBO"
	FishingLure        FishingType = "LURE"
	FishingAccessories FishingType = "ACCESSORIES"
)

type FishingTechnique string

const (
	TechniqueSpinning      FishingTechnique = "SPINNING"
	TechniqueCasting       FishingTechnique = "CASTING"
	TechniqueTrolling      FishingTechnique = "TROLLING"
	TechniqueFlyFishing    FishingTechnique = "FLY_FISHING"
	TechniqueBottomFishing FishingTechnique = "BOTTOM_FISHING"
)

type TargetFish string

const (
	TargetFreshwater TargetFish = "FRESHWATER"
	TargetSaltwater  TargetFish = "SALTWATER"
	TargetUniversal  TargetFish = "UNIVERSAL"
)

type FishingSpecification struct {
	FishingType      FishingType      `json:"fishingType"`
	Brand            string           `json:"brand,omitempty"`
	FishingTechnique FishingTechnique `json:"fishingTechnique"`
	TargetFish       TargetFish       `json:"targetFish"`
	Condition        ItemCondition    `json:"condition"`
}

func (s *FishingSpecification) Category() Category { return CategoryFishing }

// --- PARTS ---

type PartType string

const (
	PartPropulsion PartType = "PROPULSION"
	PartElectrical PartType = "ELECTRICAL"
	PartHull       PartType = "HULL"
	PartSteering   PartType = "STEERING"
	PartFuelSystem PartType = "FUEL_SYSTEM"
	PartOther      PartType = "OTHER"
)

type PartsSpecification struct {
	PartType  PartType      `json:"partType"`
	Brand     string        `json:"brand,omitempty"`
	Condition ItemCondition `json:"condition"`
}

func (s *PartsSpecification) Category() Category { return CategoryParts }

// --- SERVICES ---

type ServiceType string

const (
	ServiceRepair       ServiceType = "REPAIR"
	ServiceMaintenance  ServiceType = "MAINTENANCE"
	ServiceTransport    ServiceType = "TRANSPORT"
	ServiceStorage      ServiceType = "STORAGE"
	ServiceInsurance    ServiceType = "INSURANCE"
	ServiceRegistration ServiceType = "REGISTRATION"
)

type ServicesSpecification struct {
	ServiceType              ServiceType    `json:"serviceType"`
	CompanyName              string         `json:"companyName"`
	IsAuthorizedService      *bool          `json:"isAuthorizedService,omitempty"`
	IsOfficialRepresentative *bool          `json:"isOfficialRepresentative,omitempty"`
	Description              string         `json:"description,omitempty"`
	ContactPhone             string         `json:"contactPhone"`
	ContactPhone2            string         `json:"contactPhone2,omitempty"`
	ContactEmail             string         `json:"contactEmail"`
	Address                  string         `json:"address"`
	Website                  string         `json:"website,omitempty"`
	SupportedBrands          []string       `json:"supportedBrands,omitempty"`
	SupportedMaterials       []MaterialType `json:"supportedMaterials,omitempty"`
}

func (s *ServicesSpecification) Category() Category { return CategoryServices }

// EmptySpecificationFor возвращает нулевую спецификацию нужной категории —
// используется при декодировании из кэша и из строк БД.
func EmptySpecificationFor(c Category) Specification {
	switch c {
	case CategoryBoatsAndYachts:
		return &BoatSpecification{}
	case CategoryJetSkis:
		return &JetSkiSpecification{}
	case CategoryTrailers:
		return &TrailerSpecification{}
	case CategoryEngines:
		return &EngineSpecification{}
	case CategoryMarineElectronics:
		return &MarineElectronicsSpecification{}
	case CategoryFishing:
		return &FishingSpecification{}
	case CategoryParts:
		return &PartsSpecification{}
	case CategoryServices:
		return &ServicesSpecification{}
	}
	return nil
}
