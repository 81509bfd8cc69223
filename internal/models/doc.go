// Package models defines the domain entity and persistence interface for the customers service.
//
//   - [Customer] : a named record identified by a store-assigned integer id
//   - [CustomerStore] : insert and list access to stored customers, implemented by the repositories package
//
// Customers are only ever created; there is no update or delete.
package models
