// Package graphql is the web service's data client for the upstream GraphQL
// API.
//
// Every outbound operation passes through a link chain: the auth link adds
// the bearer token taken from the request context, then the HTTP link posts
// the operation to the fixed /graphql endpoint. Client wraps the chain with a
// response cache partitioned by identity so pages can issue the same query
// repeatedly without re-fetching.
package graphql
