//go:build integration

package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/jackc/pgx/v5/pgxpool"
)

func setupTestDatabase(t *testing.T) *Repository {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_DB":       "testdb",
			"POSTGRES_USER":     "testuser",
			"POSTGRES_PASSWORD": "testpass",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections"),
	}

	postgresC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		postgresC.Terminate(ctx)
	})

	host, err := postgresC.Host(ctx)
	require.NoError(t, err)

	port, err := postgresC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	connString := "postgres://testuser:testpass@" + host + ":" + port.Port() + "/testdb?sslmode=disable"

	pool, err := pgxpool.New(ctx, connString)
	require.NoError(t, err)

	t.Cleanup(func() {
		pool.Close()
	})

	repo := NewRepository(pool)
	require.NoError(t, repo.Migrate(ctx))
	require.NoError(t, repo.Seed(ctx))

	return repo
}

func TestRepository_Businesses(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	repo := setupTestDatabase(t)
	ctx := context.Background()

	t.Run("list all", func(t *testing.T) {
		businesses, err := repo.ListBusinesses(ctx)
		require.NoError(t, err)
		assert.Len(t, businesses, 4)
	})

	t.Run("get by id", func(t *testing.T) {
		b, err := repo.GetBusiness(ctx, "biz_001")
		require.NoError(t, err)
		assert.Equal(t, "Madrid Central Grill", b.Name)
		assert.Equal(t, "E471.1", b.IAECode)
		assert.Equal(t, 85.0, b.Rentability)
	})

	t.Run("get unknown id", func(t *testing.T) {
		b, err := repo.GetBusiness(ctx, "nope")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Nil(t, b)
	})

	t.Run("list by sector prefix excludes self", func(t *testing.T) {
		businesses, err := repo.ListBusinessesBySectorPrefix(ctx, "G6", "biz_002")
		require.NoError(t, err)
		require.Len(t, businesses, 2)
		for _, b := range businesses {
			assert.NotEqual(t, "biz_002", b.ID)
			assert.Equal(t, "G6", b.IAECode[:2])
		}
	})

	t.Run("seed is idempotent", func(t *testing.T) {
		require.NoError(t, repo.Seed(ctx))
		businesses, err := repo.ListBusinesses(ctx)
		require.NoError(t, err)
		assert.Len(t, businesses, 4)
	})
}

func TestRepository_Typologies(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	repo := setupTestDatabase(t)
	ctx := context.Background()

	t.Run("batch fetch", func(t *testing.T) {
		typologies, err := repo.GetTypologies(ctx, []string{"E471.1", "G651.2", "unknown"})
		require.NoError(t, err)
		assert.Equal(t, map[string]int{"E471.1": 800, "G651.2": 450}, typologies)
	})

	t.Run("empty code set", func(t *testing.T) {
		typologies, err := repo.GetTypologies(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, typologies)
	})

	t.Run("upsert inserts then updates", func(t *testing.T) {
		created, err := repo.UpsertIAECategory(ctx, "H999.9", 123)
		require.NoError(t, err)
		assert.Equal(t, "H999.9", created.IAECode)
		assert.Equal(t, 123, created.ValorTipologia)

		updated, err := repo.UpsertIAECategory(ctx, "H999.9", 321)
		require.NoError(t, err)
		assert.Equal(t, created.ID, updated.ID)
		assert.Equal(t, 321, updated.ValorTipologia)
	})
}
