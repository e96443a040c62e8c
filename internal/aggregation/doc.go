// Package aggregation holds the read-only calculations over ledger data:
// per-column statistics, Monday–Sunday week bucketing, weekly profit totals
// and the daily net profit roll-up. Functions here never perform I/O.
package aggregation
