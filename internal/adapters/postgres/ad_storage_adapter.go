package postgres

import (
	"ad-service/internal/contextkeys"
	"ad-service/internal/core/domain"
	"ad-service/internal/core/port"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AdStorageAdapter реализует AdStoragePort для PostgreSQL.
type AdStorageAdapter struct {
	pool *pgxpool.Pool
}

// NewAdStorageAdapter создает новый экземпляр адаптера.
func NewAdStorageAdapter(pool *pgxpool.Pool) (*AdStorageAdapter, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &AdStorageAdapter{
		pool: pool,
	}, nil
}

const adColumns = `id, title, description, quick_description, category, price_amount, price_type,
	including_vat, location, ad_type, user_email, user_id, user_first_name, user_last_name,
	created_at, updated_at, active, views_count, featured`

func scanAd(row pgx.Row, ad *domain.Ad) error {
	return row.Scan(
		&ad.ID, &ad.Title, &ad.Description, &ad.QuickDescription, &ad.Category, &ad.PriceAmount,
		&ad.PriceType, &ad.IncludingVAT, &ad.Location, &ad.AdType, &ad.UserEmail, &ad.UserID,
		&ad.UserFirstName, &ad.UserLastName, &ad.CreatedAt, &ad.UpdatedAt, &ad.Active,
		&ad.ViewsCount, &ad.Featured,
	)
}

// CreateAd сохраняет объявление и спецификацию его категории в одной
// транзакции: частично созданных объявлений не бывает.
func (a *AdStorageAdapter) CreateAd(ctx context.Context, ad domain.Ad, spec domain.Specification) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "AdStorageAdapter",
		"method":    "CreateAd",
		"ad_id":     ad.ID.String(),
		"category":  string(ad.Category),
	})

	tx, err := a.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	sqlAd := `
		INSERT INTO ads (
			id, title, description, quick_description, category, price_amount, price_type,
			including_vat, location, ad_type, user_email, user_id, user_first_name, user_last_name,
			created_at, updated_at, active, views_count, featured
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19
		)`

	_, err = tx.Exec(ctx, sqlAd,
		ad.ID, ad.Title, ad.Description, ad.QuickDescription, ad.Category, ad.PriceAmount,
		ad.PriceType, ad.IncludingVAT, ad.Location, ad.AdType, ad.UserEmail, ad.UserID,
		ad.UserFirstName, ad.UserLastName, ad.CreatedAt, ad.UpdatedAt, ad.Active,
		ad.ViewsCount, ad.Featured,
	)
	if err != nil {
		repoLogger.Error("Failed to insert ad row", err, nil)
		return fmt.Errorf("failed to insert ad: %w", err)
	}

	if err := saveSpecification(ctx, tx, ad.ID, spec); err != nil {
		repoLogger.Error("Failed to insert specification row", err, nil)
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	repoLogger.Info("Ad saved with specification", nil)
	return nil
}

func (a *AdStorageAdapter) GetAdByID(ctx context.Context, adID uuid.UUID) (*domain.Ad, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "AdStorageAdapter",
		"method":    "GetAdByID",
		"ad_id":     adID.String(),
	})

	query := fmt.Sprintf("SELECT %s FROM ads WHERE id = $1", adColumns)

	var ad domain.Ad
	if err := scanAd(a.pool.QueryRow(ctx, query, adID), &ad); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			repoLogger.Warn("Ad not found.", nil)
			return nil, domain.ErrAdNotFound
		}
		repoLogger.Error("Failed to get ad", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to get ad: %w", err)
	}

	return &ad, nil
}

func (a *AdStorageAdapter) IncrementViews(ctx context.Context, adID uuid.UUID) error {
	tag, err := a.pool.Exec(ctx, "UPDATE ads SET views_count = views_count + 1 WHERE id = $1", adID)
	if err != nil {
		return fmt.Errorf("failed to increment views: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAdNotFound
	}
	return nil
}

// Search выполняет один SQL-запрос с категорийным JOIN и возвращает
// полную выборку. Сортировку делает ядро, здесь порядок не важен —
// но фиксируем его для стабильности отладки.
func (a *AdStorageAdapter) Search(ctx context.Context, filter domain.SearchFilter) ([]domain.Ad, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "AdStorageAdapter",
		"method":    "Search",
		"category":  string(filter.Category),
	})

	joinClause, whereClause, args := applyFilters(filter)

	query := fmt.Sprintf("SELECT %s FROM ads a %s %s ORDER BY a.created_at DESC, a.id ASC",
		adColumnsAliased("a"), joinClause, whereClause)

	rows, err := a.pool.Query(ctx, query, args...)
	if err != nil {
		repoLogger.Error("Failed to search ads", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to search ads: %w", err)
	}
	defer rows.Close()

	ads := make([]domain.Ad, 0)
	for rows.Next() {
		var ad domain.Ad
		if err := scanAd(rows, &ad); err != nil {
			repoLogger.Error("Failed to scan ad row", err, nil)
			return nil, fmt.Errorf("failed to scan ad: %w", err)
		}
		ads = append(ads, ad)
	}

	if err := rows.Err(); err != nil {
		repoLogger.Error("Error during ads rows iteration", err, nil)
		return nil, err
	}

	repoLogger.Info("Successfully found ads", port.Fields{"found_count": len(ads)})
	return ads, nil
}

func adColumnsAliased(alias string) string {
	return fmt.Sprintf(`%[1]s.id, %[1]s.title, %[1]s.description, %[1]s.quick_description, %[1]s.category,
		%[1]s.price_amount, %[1]s.price_type, %[1]s.including_vat, %[1]s.location, %[1]s.ad_type,
		%[1]s.user_email, %[1]s.user_id, %[1]s.user_first_name, %[1]s.user_last_name,
		%[1]s.created_at, %[1]s.updated_at, %[1]s.active, %[1]s.views_count, %[1]s.featured`, alias)
}

func (a *AdStorageAdapter) GetAdsByUserEmail(ctx context.Context, email string) ([]domain.Ad, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":  "AdStorageAdapter",
		"method":     "GetAdsByUserEmail",
		"user_email": email,
	})

	query := fmt.Sprintf("SELECT %s FROM ads WHERE user_email = $1 ORDER BY created_at DESC, id ASC", adColumns)

	rows, err := a.pool.Query(ctx, query, email)
	if err != nil {
		repoLogger.Error("Failed to get user ads", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to get user ads: %w", err)
	}
	defer rows.Close()

	ads := make([]domain.Ad, 0)
	for rows.Next() {
		var ad domain.Ad
		if err := scanAd(rows, &ad); err != nil {
			return nil, fmt.Errorf("failed to scan ad: %w", err)
		}
		ads = append(ads, ad)
	}

	if err := rows.Err(); err != nil {
		repoLogger.Error("Error during user ads rows iteration", err, nil)
		return nil, err
	}

	repoLogger.Info("Successfully found user ads", port.Fields{"found_count": len(ads)})
	return ads, nil
}

func (a *AdStorageAdapter) UpdateActive(ctx context.Context, adID uuid.UUID, active bool) error {
	tag, err := a.pool.Exec(ctx,
		"UPDATE ads SET active = $1, updated_at = NOW() WHERE id = $2", active, adID)
	if err != nil {
		return fmt.Errorf("failed to update ad status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAdNotFound
	}
	return nil
}

// DeleteAd удаляет объявление; спецификация и строки признаков лодки
// уходят каскадом по внешнему ключу.
func (a *AdStorageAdapter) DeleteAd(ctx context.Context, adID uuid.UUID) error {
	tag, err := a.pool.Exec(ctx, "DELETE FROM ads WHERE id = $1", adID)
	if err != nil {
		return fmt.Errorf("failed to delete ad: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAdNotFound
	}
	return nil
}

func (a *AdStorageAdapter) GetMarketplaceStats(ctx context.Context) (*domain.MarketplaceStats, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "AdStorageAdapter",
		"method":    "GetMarketplaceStats",
	})

	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE active),
			COUNT(*) FILTER (WHERE NOT active),
			COALESCE(AVG(price_amount) FILTER (WHERE price_type = 'FIXED_PRICE'), 0),
			COALESCE(MIN(price_amount) FILTER (WHERE price_type = 'FIXED_PRICE'), 0),
			COALESCE(MAX(price_amount) FILTER (WHERE price_type = 'FIXED_PRICE'), 0)
		FROM ads`

	var stats domain.MarketplaceStats
	err := a.pool.QueryRow(ctx, query).Scan(
		&stats.TotalAds, &stats.ActiveAds, &stats.InactiveAds,
		&stats.AveragePrice, &stats.MinPrice, &stats.MaxPrice,
	)
	if err != nil {
		repoLogger.Error("Failed to get marketplace stats", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to get marketplace stats: %w", err)
	}

	return &stats, nil
}
