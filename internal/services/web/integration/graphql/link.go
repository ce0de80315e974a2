package graphql

import "context"

// Handler executes a request and returns the upstream response.
type Handler func(ctx context.Context, req Request) (Response, error)

// Link is one stage of the outbound pipeline. It receives the next stage and
// returns a handler that runs before it.
type Link func(next Handler) Handler

// Chain applies links in declaration order around the terminal handler, so
// Chain(t, a, b) runs a, then b, then t.
func Chain(terminal Handler, links ...Link) Handler {
	if terminal == nil {
		terminal = func(context.Context, Request) (Response, error) {
			return Response{}, &TransportError{Kind: TransportNetwork, Err: errNoTransport}
		}
	}
	wrapped := terminal
	for idx := len(links) - 1; idx >= 0; idx-- {
		if links[idx] == nil {
			continue
		}
		wrapped = links[idx](wrapped)
	}
	return wrapped
}
