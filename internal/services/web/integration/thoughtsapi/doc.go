// Package thoughtsapi holds the GraphQL documents of the Deep Thoughts API and
// a typed gateway that runs them through the web data client.
package thoughtsapi
