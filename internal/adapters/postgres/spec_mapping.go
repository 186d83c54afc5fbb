package postgres

import (
	"ad-service/internal/core/domain"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Маппинг спецификаций на таблицы по категориям. Одна таблица на
// категорию, внешний ключ ad_id -> ads.id с каскадным удалением.

func saveSpecification(ctx context.Context, tx pgx.Tx, adID uuid.UUID, spec domain.Specification) error {
	switch s := spec.(type) {
	case *domain.BoatSpecification:
		return saveBoatSpecification(ctx, tx, adID, s)
	case *domain.JetSkiSpecification:
		return saveJetSkiSpecification(ctx, tx, adID, s)
	case *domain.TrailerSpecification:
		return saveTrailerSpecification(ctx, tx, adID, s)
	case *domain.EngineSpecification:
		return saveEngineSpecification(ctx, tx, adID, s)
	case *domain.MarineElectronicsSpecification:
		return saveElectronicsSpecification(ctx, tx, adID, s)
	case *domain.FishingSpecification:
		return saveFishingSpecification(ctx, tx, adID, s)
	case *domain.PartsSpecification:
		return savePartsSpecification(ctx, tx, adID, s)
	case *domain.ServicesSpecification:
		return saveServicesSpecification(ctx, tx, adID, s)
	default:
		return fmt.Errorf("save failed: unknown specification type %T", spec)
	}
}

func saveBoatSpecification(ctx context.Context, tx pgx.Tx, adID uuid.UUID, s *domain.BoatSpecification) error {
	sql := `
		INSERT INTO boat_specifications (
			ad_id, type, brand, model, engine_type, engine_included, engine_brand_model,
			horsepower, length, width, draft, max_people, year, in_warranty, weight,
			fuel_capacity, has_water_tank, number_of_engines, has_auxiliary_engine,
			console_type, fuel_type, material, is_registered, has_commercial_fishing_license, condition
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
			$14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25
		)`
	_, err := tx.Exec(ctx, sql,
		adID, s.Type, s.Brand, s.Model, s.EngineType, s.EngineIncluded, s.EngineBrandModel,
		s.Horsepower, s.Length, s.Width, s.Draft, s.MaxPeople, s.Year, s.InWarranty, s.Weight,
		s.FuelCapacity, s.HasWaterTank, s.NumberOfEngines, s.HasAuxiliaryEngine,
		s.ConsoleType, s.FuelType, s.Material, s.IsRegistered, s.HasCommercialFishingLicense, s.Condition,
	)
	if err != nil {
		return fmt.Errorf("failed to insert boat specification: %w", err)
	}

	for _, f := range s.InteriorFeatures {
		if _, err := tx.Exec(ctx,
			"INSERT INTO boat_interior_features (ad_id, feature) VALUES ($1, $2)", adID, f); err != nil {
			return fmt.Errorf("failed to insert interior feature: %w", err)
		}
	}
	for _, f := range s.ExteriorFeatures {
		if _, err := tx.Exec(ctx,
			"INSERT INTO boat_exterior_features (ad_id, feature) VALUES ($1, $2)", adID, f); err != nil {
			return fmt.Errorf("failed to insert exterior feature: %w", err)
		}
	}
	for _, e := range s.Equipment {
		if _, err := tx.Exec(ctx,
			"INSERT INTO boat_equipment (ad_id, equipment) VALUES ($1, $2)", adID, e); err != nil {
			return fmt.Errorf("failed to insert equipment: %w", err)
		}
	}

	return nil
}

func saveJetSkiSpecification(ctx context.Context, tx pgx.Tx, adID uuid.UUID, s *domain.JetSkiSpecification) error {
	sql := `
		INSERT INTO jet_ski_specifications (
			ad_id, brand, model, modification, is_registered, horsepower, year, weight,
			fuel_capacity, operating_hours, fuel_type, trailer_included, in_warranty, condition
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := tx.Exec(ctx, sql,
		adID, s.Brand, s.Model, s.Modification, s.IsRegistered, s.Horsepower, s.Year, s.Weight,
		s.FuelCapacity, s.OperatingHours, s.FuelType, s.TrailerIncluded, s.InWarranty, s.Condition,
	)
	if err != nil {
		return fmt.Errorf("failed to insert jet ski specification: %w", err)
	}
	return nil
}

func saveTrailerSpecification(ctx context.Context, tx pgx.Tx, adID uuid.UUID, s *domain.TrailerSpecification) error {
	sql := `
		INSERT INTO trailer_specifications (
			ad_id, trailer_type, brand, model, axle_count, is_registered, own_weight,
			load_capacity, length, width, year, suspension_type, keel_rollers, in_warranty, condition
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := tx.Exec(ctx, sql,
		adID, s.TrailerType, s.Brand, s.Model, s.AxleCount, s.IsRegistered, s.OwnWeight,
		s.LoadCapacity, s.Length, s.Width, s.Year, s.SuspensionType, s.KeelRollers, s.InWarranty, s.Condition,
	)
	if err != nil {
		return fmt.Errorf("failed to insert trailer specification: %w", err)
	}
	return nil
}

func saveEngineSpecification(ctx context.Context, tx pgx.Tx, adID uuid.UUID, s *domain.EngineSpecification) error {
	sql := `
		INSERT INTO engine_specifications (
			ad_id, engine_type, brand, modification, stroke_type, in_warranty, horsepower,
			operating_hours, cylinders, displacement_cc, rpm, weight, year, fuel_capacity,
			ignition_type, control_type, shaft_length, fuel_type, engine_system_type, condition, color
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11,
			$12, $13, $14, $15, $16, $17, $18, $19, $20, $21
		)`
	_, err := tx.Exec(ctx, sql,
		adID, s.EngineType, s.Brand, s.Modification, s.StrokeType, s.InWarranty, s.Horsepower,
		s.OperatingHours, s.Cylinders, s.DisplacementCc, s.RPM, s.Weight, s.Year, s.FuelCapacity,
		s.IgnitionType, s.ControlType, s.ShaftLength, s.FuelType, s.EngineSystemType, s.Condition, s.Color,
	)
	if err != nil {
		return fmt.Errorf("failed to insert engine specification: %w", err)
	}
	return nil
}

func saveElectronicsSpecification(ctx context.Context, tx pgx.Tx, adID uuid.UUID, s *domain.MarineElectronicsSpecification) error {
	sql := `
		INSERT INTO marine_electronics_specifications (
			ad_id, electronics_type, brand, model, year, in_warranty, condition,
			working_frequency, depth_range, screen_size, screen_type, probe_included,
			gps_integrated, thrust, voltage, mounting
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := tx.Exec(ctx, sql,
		adID, s.ElectronicsType, s.Brand, s.Model, s.Year, s.InWarranty, s.Condition,
		s.WorkingFrequency, s.DepthRange, s.ScreenSize, s.ScreenType, s.ProbeIncluded,
		s.GpsIntegrated, s.Thrust, s.Voltage, s.Mounting,
	)
	if err != nil {
		return fmt.Errorf("failed to insert marine electronics specification: %w", err)
	}
	return nil
}

func saveFishingSpecification(ctx context.Context, tx pgx.Tx, adID uuid.UUID, s *domain.FishingSpecification) error {
	sql := `
		INSERT INTO fishing_specifications (
			ad_id, fishing_type, brand, fishing_technique, target_fish, condition
		) VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := tx.Exec(ctx, sql, adID, s.FishingType, s.Brand, s.FishingTechnique, s.TargetFish, s.Condition)
	if err != nil {
		return fmt.Errorf("failed to insert fishing specification: %w", err)
	}
	return nil
}

func savePartsSpecification(ctx context.Context, tx pgx.Tx, adID uuid.UUID, s *domain.PartsSpecification) error {
	sql := `
		INSERT INTO parts_specifications (ad_id, part_type, brand, condition)
		VALUES ($1, $2, $3, $4)`
	_, err := tx.Exec(ctx, sql, adID, s.PartType, s.Brand, s.Condition)
	if err != nil {
		return fmt.Errorf("failed to insert parts specification: %w", err)
	}
	return nil
}

func saveServicesSpecification(ctx context.Context, tx pgx.Tx, adID uuid.UUID, s *domain.ServicesSpecification) error {
	sql := `
		INSERT INTO services_specifications (
			ad_id, service_type, company_name, is_authorized_service, is_official_representative,
			description, contact_phone, contact_phone2, contact_email, address, website,
			supported_brands, supported_materials
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := tx.Exec(ctx, sql,
		adID, s.ServiceType, s.CompanyName, s.IsAuthorizedService, s.IsOfficialRepresentative,
		s.Description, s.ContactPhone, s.ContactPhone2, s.ContactEmail, s.Address, s.Website,
		s.SupportedBrands, materialsToStrings(s.SupportedMaterials),
	)
	if err != nil {
		return fmt.Errorf("failed to insert services specification: %w", err)
	}
	return nil
}

func materialsToStrings(materials []domain.MaterialType) []string {
	out := make([]string, 0, len(materials))
	for _, m := range materials {
		out = append(out, string(m))
	}
	return out
}

// GetSpecification читает спецификацию категории для объявления.
// Отсутствие строки — (nil, nil), решение принимает сборщик ответа.
func (a *AdStorageAdapter) GetSpecification(ctx context.Context, adID uuid.UUID, category domain.Category) (domain.Specification, error) {
	switch category {
	case domain.CategoryBoatsAndYachts:
		return a.getBoatSpecification(ctx, adID)
	case domain.CategoryJetSkis:
		return a.getJetSkiSpecification(ctx, adID)
	case domain.CategoryTrailers:
		return a.getTrailerSpecification(ctx, adID)
	case domain.CategoryEngines:
		return a.getEngineSpecification(ctx, adID)
	case domain.CategoryMarineElectronics:
		return a.getElectronicsSpecification(ctx, adID)
	case domain.CategoryFishing:
		return a.getFishingSpecification(ctx, adID)
	case domain.CategoryParts:
		return a.getPartsSpecification(ctx, adID)
	case domain.CategoryServices:
		return a.getServicesSpecification(ctx, adID)
	default:
		return nil, domain.ErrUnsupportedCategory
	}
}

func (a *AdStorageAdapter) getBoatSpecification(ctx context.Context, adID uuid.UUID) (domain.Specification, error) {
	query := `
		SELECT type, brand, model, engine_type, engine_included, engine_brand_model,
			horsepower, length, width, draft, max_people, year, in_warranty, weight,
			fuel_capacity, has_water_tank, number_of_engines, has_auxiliary_engine,
			console_type, fuel_type, material, is_registered, has_commercial_fishing_license, condition
		FROM boat_specifications WHERE ad_id = $1`

	var s domain.BoatSpecification
	err := a.pool.QueryRow(ctx, query, adID).Scan(
		&s.Type, &s.Brand, &s.Model, &s.EngineType, &s.EngineIncluded, &s.EngineBrandModel,
		&s.Horsepower, &s.Length, &s.Width, &s.Draft, &s.MaxPeople, &s.Year, &s.InWarranty, &s.Weight,
		&s.FuelCapacity, &s.HasWaterTank, &s.NumberOfEngines, &s.HasAuxiliaryEngine,
		&s.ConsoleType, &s.FuelType, &s.Material, &s.IsRegistered, &s.HasCommercialFishingLicense, &s.Condition,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get boat specification: %w", err)
	}

	if err := a.loadBoatFeatures(ctx, adID, &s); err != nil {
		return nil, err
	}

	return &s, nil
}

func (a *AdStorageAdapter) loadBoatFeatures(ctx context.Context, adID uuid.UUID, s *domain.BoatSpecification) error {
	rows, err := a.pool.Query(ctx, "SELECT feature FROM boat_interior_features WHERE ad_id = $1 ORDER BY feature", adID)
	if err != nil {
		return fmt.Errorf("failed to get interior features: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var f domain.InteriorFeature
		if err := rows.Scan(&f); err != nil {
			return fmt.Errorf("failed to scan interior feature: %w", err)
		}
		s.InteriorFeatures = append(s.InteriorFeatures, f)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	rows, err = a.pool.Query(ctx, "SELECT feature FROM boat_exterior_features WHERE ad_id = $1 ORDER BY feature", adID)
	if err != nil {
		return fmt.Errorf("failed to get exterior features: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var f domain.ExteriorFeature
		if err := rows.Scan(&f); err != nil {
			return fmt.Errorf("failed to scan exterior feature: %w", err)
		}
		s.ExteriorFeatures = append(s.ExteriorFeatures, f)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	rows, err = a.pool.Query(ctx, "SELECT equipment FROM boat_equipment WHERE ad_id = $1 ORDER BY equipment", adID)
	if err != nil {
		return fmt.Errorf("failed to get equipment: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var e domain.Equipment
		if err := rows.Scan(&e); err != nil {
			return fmt.Errorf("failed to scan equipment: %w", err)
		}
		s.Equipment = append(s.Equipment, e)
	}
	return rows.Err()
}

func (a *AdStorageAdapter) getJetSkiSpecification(ctx context.Context, adID uuid.UUID) (domain.Specification, error) {
	query := `
		SELECT brand, model, modification, is_registered, horsepower, year, weight,
			fuel_capacity, operating_hours, fuel_type, trailer_included, in_warranty, condition
		FROM jet_ski_specifications WHERE ad_id = $1`

	var s domain.JetSkiSpecification
	err := a.pool.QueryRow(ctx, query, adID).Scan(
		&s.Brand, &s.Model, &s.Modification, &s.IsRegistered, &s.Horsepower, &s.Year, &s.Weight,
		&s.FuelCapacity, &s.OperatingHours, &s.FuelType, &s.TrailerIncluded, &s.InWarranty, &s.Condition,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get jet ski specification: %w", err)
	}
	return &s, nil
}

func (a *AdStorageAdapter) getTrailerSpecification(ctx context.Context, adID uuid.UUID) (domain.Specification, error) {
	query := `
		SELECT trailer_type, brand, model, axle_count, is_registered, own_weight,
			load_capacity, length, width, year, suspension_type, keel_rollers, in_warranty, condition
		FROM trailer_specifications WHERE ad_id = $1`

	var s domain.TrailerSpecification
	err := a.pool.QueryRow(ctx, query, adID).Scan(
		&s.TrailerType, &s.Brand, &s.Model, &s.AxleCount, &s.IsRegistered, &s.OwnWeight,
		&s.LoadCapacity, &s.Length, &s.Width, &s.Year, &s.SuspensionType, &s.KeelRollers, &s.InWarranty, &s.Condition,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get trailer specification: %w", err)
	}
	return &s, nil
}

func (a *AdStorageAdapter) getEngineSpecification(ctx context.Context, adID uuid.UUID) (domain.Specification, error) {
	query := `
		SELECT engine_type, brand, modification, stroke_type, in_warranty, horsepower,
			operating_hours, cylinders, displacement_cc, rpm, weight, year, fuel_capacity,
			ignition_type, control_type, shaft_length, fuel_type, engine_system_type, condition, color
		FROM engine_specifications WHERE ad_id = $1`

	var s domain.EngineSpecification
	err := a.pool.QueryRow(ctx, query, adID).Scan(
		&s.EngineType, &s.Brand, &s.Modification, &s.StrokeType, &s.InWarranty, &s.Horsepower,
		&s.OperatingHours, &s.Cylinders, &s.DisplacementCc, &s.RPM, &s.Weight, &s.Year, &s.FuelCapacity,
		&s.IgnitionType, &s.ControlType, &s.ShaftLength, &s.FuelType, &s.EngineSystemType, &s.Condition, &s.Color,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get engine specification: %w", err)
	}
	return &s, nil
}

func (a *AdStorageAdapter) getElectronicsSpecification(ctx context.Context, adID uuid.UUID) (domain.Specification, error) {
	query := `
		SELECT electronics_type, brand, model, year, in_warranty, condition,
			working_frequency, depth_range, screen_size, screen_type, probe_included,
			gps_integrated, thrust, voltage, mounting
		FROM marine_electronics_specifications WHERE ad_id = $1`

	var s domain.MarineElectronicsSpecification
	err := a.pool.QueryRow(ctx, query, adID).Scan(
		&s.ElectronicsType, &s.Brand, &s.Model, &s.Year, &s.InWarranty, &s.Condition,
		&s.WorkingFrequency, &s.DepthRange, &s.ScreenSize, &s.ScreenType, &s.ProbeIncluded,
		&s.GpsIntegrated, &s.Thrust, &s.Voltage, &s.Mounting,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get marine electronics specification: %w", err)
	}
	return &s, nil
}

func (a *AdStorageAdapter) getFishingSpecification(ctx context.Context, adID uuid.UUID) (domain.Specification, error) {
	query := `
		SELECT fishing_type, brand, fishing_technique, target_fish, condition
		FROM fishing_specifications WHERE ad_id = $1`

	var s domain.FishingSpecification
	err := a.pool.QueryRow(ctx, query, adID).Scan(
		&s.FishingType, &s.Brand, &s.FishingTechnique, &s.TargetFish, &s.Condition,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get fishing specification: %w", err)
	}
	return &s, nil
}

func (a *AdStorageAdapter) getPartsSpecification(ctx context.Context, adID uuid.UUID) (domain.Specification, error) {
	query := `SELECT part_type, brand, condition FROM parts_specifications WHERE ad_id = $1`

	var s domain.PartsSpecification
	err := a.pool.QueryRow(ctx, query, adID).Scan(&s.PartType, &s.Brand, &s.Condition)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get parts specification: %w", err)
	}
	return &s, nil
}

func (a *AdStorageAdapter) getServicesSpecification(ctx context.Context, adID uuid.UUID) (domain.Specification, error) {
	query := `
		SELECT service_type, company_name, is_authorized_service, is_official_representative,
			description, contact_phone, contact_phone2, contact_email, address, website,
			supported_brands, supported_materials
		FROM services_specifications WHERE ad_id = $1`

	var s domain.ServicesSpecification
	var materials []string
	err := a.pool.QueryRow(ctx, query, adID).Scan(
		&s.ServiceType, &s.CompanyName, &s.IsAuthorizedService, &s.IsOfficialRepresentative,
		&s.Description, &s.ContactPhone, &s.ContactPhone2, &s.ContactEmail, &s.Address, &s.Website,
		&s.SupportedBrands, &materials,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get services specification: %w", err)
	}

	for _, m := range materials {
		s.SupportedMaterials = append(s.SupportedMaterials, domain.MaterialType(m))
	}

	return &s, nil
}
