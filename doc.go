// Package millbook provides a comprehensive set of functions and types for
// keeping the daily production ledger of a cone-winding mill. It is designed
// to be local-first and auditable, ensuring users have full control and
// transparency over their production and payment records.
//
// The core functionalities include:
//   - Ledger Management: Recording daily production entries and payments
//     received in a most-recent-first record, persisted after every change.
//   - Weight Calculation: Deriving the billable production weight from the
//     spool counts and stock readings using the mill's fixed formula, and
//     pricing it at the day's rate per kilogram.
//   - Period Filtering: Grouping and filtering records by calendar month, and
//     aggregating weight, value, payment, and outstanding-balance totals.
//   - Data Persistence: Handling the encoding and decoding of ledger state to
//     and from human-readable formats (JSON backups and CSV exports).
//
// This package serves as the foundational logic for the `mill` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package millbook
