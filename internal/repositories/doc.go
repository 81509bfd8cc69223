// Package repositories implements SQLite persistence for customers.
//
// [CustomerRepository] satisfies [models.CustomerStore]. Ids come from the
// customers table's AUTOINCREMENT primary key, so they increase monotonically
// and are never reused. Listing is ordered by id.
//
// Every failure to reach or query the database is wrapped with
// [shared.ErrStorageUnavailable] so callers can classify it with errors.Is.
package repositories
