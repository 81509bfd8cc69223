// package repositories provides persistence layer implementations for all model types.
package repositories

import (
	"fmt"

	"github.com/desertthunder/customers/internal/models"
	"github.com/desertthunder/customers/internal/shared"
)

// rowScanner is satisfied by both [sql.Row] and [sql.Rows].
type rowScanner interface {
	Scan(dest ...any) error
}

// scanCustomer maps a (id, name) row onto a [models.Customer].
func scanCustomer(row rowScanner) (*models.Customer, error) {
	var (
		id   int64
		name string
	)

	if err := row.Scan(&id, &name); err != nil {
		return nil, fmt.Errorf("failed to scan customer: %w", err)
	}

	return &models.Customer{ID: id, Name: name}, nil
}

// unavailable wraps a driver error as [shared.ErrStorageUnavailable].
func unavailable(action string, err error) error {
	return fmt.Errorf("%w: failed to %s: %v", shared.ErrStorageUnavailable, action, err)
}
