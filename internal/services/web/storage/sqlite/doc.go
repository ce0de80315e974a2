// Package sqlite provides the response cache persistence adapter backed by
// SQLite.
//
// The store only holds derived cache state for the running process. Open
// empties it, and deleting the database file is always safe.
package sqlite
