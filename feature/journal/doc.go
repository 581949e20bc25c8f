// Package journal exposes the operation journal at GET /journal.
//
// The feature only loads when the database is enabled; without it there is
// nothing to read.
package journal
