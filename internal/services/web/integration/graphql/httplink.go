package graphql

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// EndpointPath is the fixed path of the upstream GraphQL endpoint.
const EndpointPath = "/graphql"

const (
	tracerName       = "github.com/louisbranch/deepthoughts/internal/services/web/integration/graphql"
	maxResponseBytes = 8 << 20
)

type wireRequest struct {
	OperationName string    `json:"operationName,omitempty"`
	Query         string    `json:"query"`
	Variables     Variables `json:"variables,omitempty"`
}

// EndpointURL resolves the GraphQL endpoint for an upstream base URL.
func EndpointURL(baseURL string) (string, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return "", fmt.Errorf("graphql base url is required")
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse graphql base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", fmt.Errorf("graphql base url must be http or https, got %q", baseURL)
	}
	if parsed.Host == "" {
		return "", fmt.Errorf("graphql base url must include a host, got %q", baseURL)
	}
	parsed.Path = strings.TrimRight(parsed.Path, "/") + EndpointPath
	parsed.RawQuery = ""
	parsed.Fragment = ""
	return parsed.String(), nil
}

// HTTPLink returns the terminal transport stage posting operations to the
// GraphQL endpoint under baseURL.
func HTTPLink(baseURL string, client *http.Client) (Handler, error) {
	endpoint, err := EndpointURL(baseURL)
	if err != nil {
		return nil, err
	}
	if client == nil {
		client = http.DefaultClient
	}
	tracer := otel.Tracer(tracerName)

	return func(ctx context.Context, req Request) (Response, error) {
		ctx, span := tracer.Start(ctx, spanName(req.Operation),
			trace.WithSpanKind(trace.SpanKindClient),
			trace.WithAttributes(
				attribute.String("graphql.operation.name", req.Operation.Name),
				attribute.String("graphql.operation.type", string(req.Operation.Kind())),
				attribute.String("url.full", endpoint),
			),
		)
		defer span.End()

		resp, err := send(ctx, client, endpoint, req)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return Response{}, err
		}
		if len(resp.Errors) > 0 {
			span.SetAttributes(attribute.Int("graphql.errors", len(resp.Errors)))
		}
		return resp, nil
	}, nil
}

func send(ctx context.Context, client *http.Client, endpoint string, req Request) (Response, error) {
	body, err := json.Marshal(wireRequest{
		OperationName: req.Operation.Name,
		Query:         req.Operation.Query,
		Variables:     req.Variables,
	})
	if err != nil {
		return Response{}, &TransportError{Kind: TransportPayload, Err: fmt.Errorf("encode request: %w", err)}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return Response{}, &TransportError{Kind: TransportNetwork, Err: fmt.Errorf("build request: %w", err)}
	}
	for _, name := range req.Headers.Names() {
		value, _ := req.Headers.Get(name)
		httpReq.Header.Set(name, value)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(httpReq.Header))

	httpResp, err := client.Do(httpReq)
	if err != nil {
		return Response{}, &TransportError{Kind: TransportNetwork, Err: err}
	}
	defer func() {
		_ = httpResp.Body.Close()
	}()

	payload, err := io.ReadAll(io.LimitReader(httpResp.Body, maxResponseBytes))
	if err != nil {
		return Response{}, &TransportError{Kind: TransportNetwork, StatusCode: httpResp.StatusCode, Err: fmt.Errorf("read response: %w", err)}
	}
	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		return Response{}, &TransportError{Kind: TransportStatus, StatusCode: httpResp.StatusCode}
	}

	var resp Response
	if err := json.Unmarshal(payload, &resp); err != nil {
		return Response{}, &TransportError{Kind: TransportPayload, StatusCode: httpResp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}
	if len(resp.Data) == 0 && len(resp.Errors) == 0 {
		return Response{}, &TransportError{Kind: TransportPayload, StatusCode: httpResp.StatusCode, Err: fmt.Errorf("response has neither data nor errors")}
	}
	return resp, nil
}

func spanName(op Operation) string {
	name := strings.TrimSpace(op.Name)
	if name == "" {
		name = "anonymous"
	}
	return "graphql " + string(op.Kind()) + " " + name
}
