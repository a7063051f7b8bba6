// Package billing provides the domain model for periodic rental statements.
//
// This package implements the statement bounded context, which is responsible
// for:
//   - Computing the billing window for a labeled month from the configured
//     boundary day
//   - Snapshotting contract line items into immutable statement lines
//   - Totaling statements in VND with half-up VAT rounding
//   - Guarding the statement lifecycle: generate, regenerate, confirm,
//     soft delete, restore
//
// Key Aggregates:
//   - MonthlyStatement: One customer's charges for one billing period,
//     unique per (customer, year, month) among non-deleted rows
//
// Value Objects:
//   - Period: The half-open date window a labeled month covers
//   - LineItem: A priced plant position frozen at generation time
//
// The billing domain reads from:
//   - Directory domain: customer identity and billability
//   - Contract domain: assignments in effect during the window
package billing
