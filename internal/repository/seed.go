package repository

import (
	"context"
	"fmt"

	"github.com/monicodev/orbidi-challenge/internal/models"
)

// Migrate creates the schema if it does not exist yet.
func (r *Repository) Migrate(ctx context.Context) error {
	sql := `
	CREATE TABLE IF NOT EXISTS businesses (
		id VARCHAR(64) PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		iae_code VARCHAR(20) NOT NULL,
		rentability DOUBLE PRECISION,
		proximity_to_urban_center_m DOUBLE PRECISION,
		latitude DOUBLE PRECISION NOT NULL,
		longitude DOUBLE PRECISION NOT NULL
	);
	CREATE INDEX IF NOT EXISTS businesses_iae_code_idx ON businesses (iae_code);

	CREATE TABLE IF NOT EXISTS iae_categories (
		id BIGSERIAL PRIMARY KEY,
		iae_code VARCHAR(20) UNIQUE NOT NULL,
		valor_tipologia INTEGER NOT NULL
	);
	`
	if _, err := r.db.Exec(ctx, sql); err != nil {
		return fmt.Errorf("repository: failed to create schema: %w", err)
	}
	return nil
}

var seedCategories = []models.IAECategory{
	{IAECode: "E471.1", ValorTipologia: 800},
	{IAECode: "G651.2", ValorTipologia: 450},
	{IAECode: "G651.3", ValorTipologia: 470},
	{IAECode: "G651.4", ValorTipologia: 490},
}

var seedBusinesses = []models.Business{
	{
		ID: "biz_001", Name: "Madrid Central Grill",
		IAECode: "E471.1", Rentability: 85,
		ProximityToUrbanCenterM: 100,
		Latitude:                40.4167, Longitude: -3.7037,
	},
	{
		ID: "biz_002", Name: "Retiro Coffee",
		IAECode: "G651.2", Rentability: 65,
		ProximityToUrbanCenterM: 200,
		Latitude:                40.4150, Longitude: -3.6850,
	},
	{
		ID: "biz_003", Name: "Madrid Central Coffee",
		IAECode: "G651.3", Rentability: 68,
		ProximityToUrbanCenterM: 190,
		Latitude:                40.4130, Longitude: -3.6810,
	},
	{
		ID: "biz_004", Name: "Sol Coffee",
		IAECode: "G651.4", Rentability: 62,
		ProximityToUrbanCenterM: 90,
		Latitude:                40.4230, Longitude: -3.6110,
	},
}

// Seed inserts the demo dataset. Existing rows are left untouched, so it is
// safe to run on every startup.
func (r *Repository) Seed(ctx context.Context) error {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM iae_categories`).Scan(&count); err != nil {
		return fmt.Errorf("repository: failed to check iae_categories: %w", err)
	}
	if count == 0 {
		for _, cat := range seedCategories {
			_, err := r.db.Exec(ctx,
				`INSERT INTO iae_categories (iae_code, valor_tipologia) VALUES ($1, $2)`,
				cat.IAECode, cat.ValorTipologia,
			)
			if err != nil {
				return fmt.Errorf("repository: failed to seed iae category %s: %w", cat.IAECode, err)
			}
		}
	}

	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM businesses`).Scan(&count); err != nil {
		return fmt.Errorf("repository: failed to check businesses: %w", err)
	}
	if count == 0 {
		for _, b := range seedBusinesses {
			_, err := r.db.Exec(ctx,
				`INSERT INTO businesses (id, name, iae_code, rentability, proximity_to_urban_center_m, latitude, longitude)
				 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
				b.ID, b.Name, b.IAECode, b.Rentability, b.ProximityToUrbanCenterM, b.Latitude, b.Longitude,
			)
			if err != nil {
				return fmt.Errorf("repository: failed to seed business %s: %w", b.ID, err)
			}
		}
	}

	return nil
}
