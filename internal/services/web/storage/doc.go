// Package storage declares persistence interfaces for the web response cache.
//
// Cached responses are derived data: they can always be discarded and
// re-fetched from the upstream GraphQL API.
package storage
