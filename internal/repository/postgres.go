package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/monicodev/orbidi-challenge/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned when a single-row lookup matches nothing.
var ErrNotFound = errors.New("repository: not found")

// Repository implements the store interfaces on PostgreSQL.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

const businessColumns = `
	id,
	name,
	iae_code,
	rentability,
	proximity_to_urban_center_m,
	latitude,
	longitude
`

func scanBusinesses(rows pgx.Rows) ([]models.Business, error) {
	var businesses []models.Business
	for rows.Next() {
		var b models.Business
		err := rows.Scan(
			&b.ID,
			&b.Name,
			&b.IAECode,
			&b.Rentability,
			&b.ProximityToUrbanCenterM,
			&b.Latitude,
			&b.Longitude,
		)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan business: %w", err)
		}
		businesses = append(businesses, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return businesses, nil
}

// ListBusinesses returns every business in the store.
func (r *Repository) ListBusinesses(ctx context.Context) ([]models.Business, error) {
	sql := `SELECT ` + businessColumns + ` FROM businesses`

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list businesses: %w", err)
	}
	defer rows.Close()

	return scanBusinesses(rows)
}

// GetBusiness fetches a single business by its identifier.
func (r *Repository) GetBusiness(ctx context.Context, id string) (*models.Business, error) {
	sql := `SELECT ` + businessColumns + ` FROM businesses WHERE id = $1`

	var b models.Business
	err := r.db.QueryRow(ctx, sql, id).Scan(
		&b.ID,
		&b.Name,
		&b.IAECode,
		&b.Rentability,
		&b.ProximityToUrbanCenterM,
		&b.Latitude,
		&b.Longitude,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("repository: failed to get business: %w", err)
	}

	return &b, nil
}

// ListBusinessesBySectorPrefix returns every business whose IAE code starts
// with the given prefix, excluding the business with excludeID.
func (r *Repository) ListBusinessesBySectorPrefix(ctx context.Context, prefix, excludeID string) ([]models.Business, error) {
	sql := `
		SELECT ` + businessColumns + `
		FROM businesses
		WHERE iae_code LIKE $1 || '%' AND id <> $2
	`

	rows, err := r.db.Query(ctx, sql, prefix, excludeID)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list businesses by sector prefix: %w", err)
	}
	defer rows.Close()

	return scanBusinesses(rows)
}

// GetTypologies batch-fetches the typology values of the given IAE codes.
// Codes without a stored typology are absent from the returned map.
func (r *Repository) GetTypologies(ctx context.Context, codes []string) (map[string]int, error) {
	typologies := make(map[string]int, len(codes))
	if len(codes) == 0 {
		return typologies, nil
	}

	sql := `SELECT iae_code, valor_tipologia FROM iae_categories WHERE iae_code = ANY($1)`

	rows, err := r.db.Query(ctx, sql, codes)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to fetch typologies: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var code string
		var value int
		if err := rows.Scan(&code, &value); err != nil {
			return nil, fmt.Errorf("repository: failed to scan typology: %w", err)
		}
		typologies[code] = value
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return typologies, nil
}

// UpsertIAECategory inserts or updates the typology value for an IAE code
// and returns the stored row.
func (r *Repository) UpsertIAECategory(ctx context.Context, code string, value int) (*models.IAECategory, error) {
	sql := `
		INSERT INTO iae_categories (iae_code, valor_tipologia)
		VALUES ($1, $2)
		ON CONFLICT (iae_code) DO UPDATE SET valor_tipologia = EXCLUDED.valor_tipologia
		RETURNING id, iae_code, valor_tipologia
	`

	var cat models.IAECategory
	err := r.db.QueryRow(ctx, sql, code, value).Scan(&cat.ID, &cat.IAECode, &cat.ValorTipologia)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to upsert iae category: %w", err)
	}

	return &cat, nil
}
