// Package ledger holds the pure balance computation rules of the ledger: period
// resolution, exchange rate lookup, transaction sign resolution, aggregations and
// manual ordering. Every function works on entities already loaded in memory and
// has no side effects; persistence and caching live in the application layer.
package ledger
