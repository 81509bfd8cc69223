package repositories

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"github.com/desertthunder/customers/internal/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates an in-memory SQLite database with migrations applied
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := shared.NewDatabase(context.Background(), ":memory:")
	require.NoError(t, err, "failed to create test database")

	if err := shared.RunMigrations(context.Background(), db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() { db.Close() })
	return db
}

func TestCustomerRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Insert", func(t *testing.T) {
		repo := NewCustomerRepository(setupTestDB(t))

		customer, err := repo.Insert(ctx, "Marie Curie")
		require.NoError(t, err)

		assert.True(t, customer.Persisted(), "customer ID should be set after insert")
		assert.Equal(t, "Marie Curie", customer.Name)
	})

	t.Run("Insert assigns increasing ids", func(t *testing.T) {
		repo := NewCustomerRepository(setupTestDB(t))

		first, err := repo.Insert(ctx, "Albert Einstein")
		require.NoError(t, err)
		second, err := repo.Insert(ctx, "Albert Einstein")
		require.NoError(t, err)

		assert.Greater(t, second.ID, first.ID)
	})

	t.Run("Insert allows duplicate names", func(t *testing.T) {
		repo := NewCustomerRepository(setupTestDB(t))

		for range 3 {
			_, err := repo.Insert(ctx, "Carl Sagan")
			require.NoError(t, err)
		}

		n, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, n)
	})

	t.Run("Insert rejects empty name", func(t *testing.T) {
		repo := NewCustomerRepository(setupTestDB(t))

		_, err := repo.Insert(ctx, "")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, shared.ErrStorageUnavailable)
	})

	t.Run("List", func(t *testing.T) {
		repo := NewCustomerRepository(setupTestDB(t))
		names := []string{"Jane Goodall", "Stephen Hawking", "Katherine Johnson"}

		for _, name := range names {
			_, err := repo.Insert(ctx, name)
			require.NoError(t, err)
		}

		customers, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, customers, len(names))

		for i, c := range customers {
			assert.Equal(t, names[i], c.Name, "list should follow insertion order")
			if i > 0 {
				assert.Greater(t, c.ID, customers[i-1].ID)
			}
		}
	})

	t.Run("List empty table", func(t *testing.T) {
		repo := NewCustomerRepository(setupTestDB(t))

		customers, err := repo.List(ctx)
		require.NoError(t, err)
		assert.NotNil(t, customers)
		assert.Empty(t, customers)
	})

	t.Run("List is read-only", func(t *testing.T) {
		repo := NewCustomerRepository(setupTestDB(t))
		_, err := repo.Insert(ctx, "Tu Youyou")
		require.NoError(t, err)

		first, err := repo.List(ctx)
		require.NoError(t, err)
		second, err := repo.List(ctx)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("Concurrent reads", func(t *testing.T) {
		repo := NewCustomerRepository(setupTestDB(t))
		for _, name := range []string{"Chien-Shiung Wu", "Neil deGrasse Tyson"} {
			_, err := repo.Insert(ctx, name)
			require.NoError(t, err)
		}

		var wg sync.WaitGroup
		errs := make(chan error, 16)
		for range 16 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				customers, err := repo.List(ctx)
				if err == nil && len(customers) != 2 {
					t.Errorf("expected 2 customers, got %d", len(customers))
				}
				errs <- err
			}()
		}
		wg.Wait()
		close(errs)

		for err := range errs {
			assert.NoError(t, err)
		}
	})
}
