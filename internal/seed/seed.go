// Package seed populates the customers table once at startup.
//
// Seeding is not idempotent: every run inserts the full list again, and the
// store assigns fresh ids to the duplicates. A failed insert is logged and
// the remaining names are still inserted; nothing is rolled back or retried.
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/customers/internal/models"
	"github.com/desertthunder/customers/internal/shared"
)

// Names is the fixed, ordered dataset inserted at startup.
var Names = []string{
	"Marie Curie",
	"Albert Einstein",
	"Rosalind Franklin",
	"Neil deGrasse Tyson",
	"Jane Goodall",
	"Stephen Hawking",
	"Katherine Johnson",
	"Chien-Shiung Wu",
	"Carl Sagan",
	"Tu Youyou",
}

// Seeder inserts a fixed list of names into a [models.CustomerStore].
type Seeder struct {
	store  models.CustomerStore
	logger *log.Logger
	names  []string
}

// Report summarizes a seeding run.
type Report struct {
	Inserted []*models.Customer
	Failed   []string
}

// NewSeeder creates a [Seeder] for store. With no names it seeds [Names].
func NewSeeder(store models.CustomerStore, logger *log.Logger, names ...string) *Seeder {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	if len(names) == 0 {
		names = Names
	}
	return &Seeder{
		store:  store,
		logger: shared.WithLogger(logger, "component", "seeder"),
		names:  names,
	}
}

// Run inserts every name in order and logs each stored customer.
//
// Insert failures are wrapped with [shared.ErrInsertFailure] and joined into the returned error.
// A cancelled context stops the run before the next insert.
func (s *Seeder) Run(ctx context.Context) (Report, error) {
	var (
		report Report
		errs   []error
	)

	for _, name := range s.names {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		customer, err := s.store.Insert(ctx, name)
		if err != nil {
			err = fmt.Errorf("%w: %q: %w", shared.ErrInsertFailure, name, err)
			s.logger.Error("failed to seed customer", "name", name, "error", err)
			report.Failed = append(report.Failed, name)
			errs = append(errs, err)
			continue
		}

		s.logger.Info("seeded customer", "id", customer.ID, "name", customer.Name)
		report.Inserted = append(report.Inserted, customer)
	}

	s.logger.Info("seeding finished", "inserted", len(report.Inserted), "failed", len(report.Failed))
	return report, errors.Join(errs...)
}
