package seed

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/desertthunder/customers/internal/shared"
	tu "github.com/desertthunder/customers/internal/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeeder(t *testing.T) {
	ctx := context.Background()

	t.Run("inserts the fixed dataset in order", func(t *testing.T) {
		store := tu.NewMockStore()
		var buf bytes.Buffer

		report, err := NewSeeder(store, shared.NewLogger(&buf)).Run(ctx)
		require.NoError(t, err)
		assert.Empty(t, report.Failed)
		require.Len(t, report.Inserted, 10)

		customers, err := store.List(ctx)
		require.NoError(t, err)
		require.Len(t, customers, len(Names))
		for i, c := range customers {
			assert.Equal(t, Names[i], c.Name)
		}

		assert.Contains(t, buf.String(), "seeded customer")
		assert.Contains(t, buf.String(), "Tu Youyou")
	})

	t.Run("custom names", func(t *testing.T) {
		store := tu.NewMockStore()

		report, err := NewSeeder(store, shared.NewLogger(&bytes.Buffer{}), "Ada Lovelace").Run(ctx)
		require.NoError(t, err)
		require.Len(t, report.Inserted, 1)
		assert.Equal(t, "Ada Lovelace", report.Inserted[0].Name)
	})

	t.Run("continues after a failed insert", func(t *testing.T) {
		store := tu.NewMockStore("Rosalind Franklin", "Carl Sagan")
		var buf bytes.Buffer

		report, err := NewSeeder(store, shared.NewLogger(&buf)).Run(ctx)
		require.Error(t, err)
		assert.ErrorIs(t, err, shared.ErrInsertFailure)
		assert.ErrorIs(t, err, shared.ErrStorageUnavailable)

		assert.Equal(t, []string{"Rosalind Franklin", "Carl Sagan"}, report.Failed)
		assert.Len(t, report.Inserted, 8)

		n, err := store.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 8, n, "earlier inserts must not be rolled back")

		assert.Equal(t, 2, strings.Count(buf.String(), "failed to seed customer"))
	})

	t.Run("not idempotent", func(t *testing.T) {
		store := tu.NewMockStore()
		seeder := NewSeeder(store, shared.NewLogger(&bytes.Buffer{}))

		_, err := seeder.Run(ctx)
		require.NoError(t, err)
		_, err = seeder.Run(ctx)
		require.NoError(t, err)

		customers, err := store.List(ctx)
		require.NoError(t, err)
		require.Len(t, customers, 20)

		ids := map[int64]bool{}
		for _, c := range customers {
			assert.False(t, ids[c.ID], "duplicate id %d", c.ID)
			ids[c.ID] = true
		}
	})

	t.Run("stops on cancelled context", func(t *testing.T) {
		store := tu.NewMockStore()
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		report, err := NewSeeder(store, shared.NewLogger(&bytes.Buffer{})).Run(cancelled)
		assert.True(t, errors.Is(err, context.Canceled))
		assert.Empty(t, report.Inserted)
	})
}

func TestNames(t *testing.T) {
	assert.Len(t, Names, 10)

	seen := map[string]bool{}
	for _, name := range Names {
		assert.False(t, seen[name], "seed list should not contain duplicates: %s", name)
		seen[name] = true
	}
}
