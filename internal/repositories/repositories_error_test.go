package repositories

import (
	"context"
	"testing"

	"github.com/desertthunder/customers/internal/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerRepositoryErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("Closed database", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewCustomerRepository(db)
		require.NoError(t, db.Close())

		_, err := repo.Insert(ctx, "Marie Curie")
		assert.ErrorIs(t, err, shared.ErrStorageUnavailable)

		_, err = repo.List(ctx)
		assert.ErrorIs(t, err, shared.ErrStorageUnavailable)

		_, err = repo.Count(ctx)
		assert.ErrorIs(t, err, shared.ErrStorageUnavailable)
	})

	t.Run("Missing schema", func(t *testing.T) {
		db, err := shared.NewDatabase(ctx, ":memory:")
		require.NoError(t, err)
		defer db.Close()

		repo := NewCustomerRepository(db)

		_, err = repo.Insert(ctx, "Marie Curie")
		assert.ErrorIs(t, err, shared.ErrStorageUnavailable)

		_, err = repo.List(ctx)
		assert.ErrorIs(t, err, shared.ErrStorageUnavailable)
	})

	t.Run("Cancelled context", func(t *testing.T) {
		repo := NewCustomerRepository(setupTestDB(t))

		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := repo.List(cancelled)
		assert.ErrorIs(t, err, shared.ErrStorageUnavailable)
	})
}
