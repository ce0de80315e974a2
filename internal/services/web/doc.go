// Package web hosts the browser-facing Deep Thoughts service.
//
// NewHandler assembles the GraphQL data client, the page modules and the
// shared middleware; Server runs that handler with a bounded shutdown.
package web
