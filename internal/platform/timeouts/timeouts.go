// Package timeouts defines shared timeout constants used by the service.
package timeouts

import "time"

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// Request bounds one page request, upstream GraphQL calls included.
const Request = 10 * time.Second
