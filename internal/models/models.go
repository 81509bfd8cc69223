// package models defines the data model for the customers service
package models

import (
	"context"
	"fmt"
	"strings"
)

// Customer is the sole persisted entity: an integer id assigned by the store and a free-form name.
type Customer struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// NewCustomer returns an unsaved [Customer] with the given name. Its ID is zero until inserted.
func NewCustomer(name string) *Customer {
	return &Customer{Name: name}
}

// Persisted reports whether the store has assigned an id.
func (c *Customer) Persisted() bool {
	return c.ID > 0
}

// Validate checks field presence. Names may repeat and have no length limit.
func (c *Customer) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("customer name is required")
	}
	return nil
}

func (c *Customer) String() string {
	return fmt.Sprintf("Customer(id=%d, name=%s)", c.ID, c.Name)
}

// CustomerStore defines data access for customers.
//
// Implementations must be safe for concurrent readers.
type CustomerStore interface {
	Insert(ctx context.Context, name string) (*Customer, error) // Insert stores a new customer and returns it with its assigned id
	List(ctx context.Context) ([]*Customer, error)              // List returns every stored customer ordered by id
	Count(ctx context.Context) (int, error)                     // Count returns the number of stored customers
}
