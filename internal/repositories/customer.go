package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/desertthunder/customers/internal/models"
)

// CustomerRepository implements [models.CustomerStore] on a SQLite customers table.
type CustomerRepository struct {
	db *sql.DB
}

// NewCustomerRepository creates a new [CustomerRepository] with the given database connection
func NewCustomerRepository(db *sql.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// Insert stores a new customer and returns it with the id assigned by the database.
func (r *CustomerRepository) Insert(ctx context.Context, name string) (*models.Customer, error) {
	customer := models.NewCustomer(name)
	if err := customer.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	result, err := r.db.ExecContext(ctx, `INSERT INTO customers (name) VALUES (?)`, customer.Name)
	if err != nil {
		return nil, unavailable("insert customer", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, unavailable("read inserted id", err)
	}

	customer.ID = id
	return customer, nil
}

// List retrieves every customer ordered by id.
//
// An empty table yields an empty, non-nil slice.
func (r *CustomerRepository) List(ctx context.Context) ([]*models.Customer, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM customers ORDER BY id ASC`)
	if err != nil {
		return nil, unavailable("query customers", err)
	}
	defer rows.Close()

	customers := []*models.Customer{}
	for rows.Next() {
		customer, err := scanCustomer(rows)
		if err != nil {
			return nil, unavailable("read customers", err)
		}
		customers = append(customers, customer)
	}

	if err := rows.Err(); err != nil {
		return nil, unavailable("iterate customers", err)
	}

	return customers, nil
}

// Count returns the number of stored customers.
func (r *CustomerRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM customers`).Scan(&n); err != nil {
		return 0, unavailable("count customers", err)
	}
	return n, nil
}
