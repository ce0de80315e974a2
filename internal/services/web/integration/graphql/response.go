package graphql

import (
	"encoding/json"

	"github.com/tidwall/gjson"
)

// ResponseError is one entry of a GraphQL "errors" array.
type ResponseError struct {
	Message    string         `json:"message"`
	Path       []any          `json:"path,omitempty"`
	Extensions map[string]any `json:"extensions,omitempty"`
}

// Code returns extensions.code when the server set one.
func (e ResponseError) Code() string {
	code, _ := e.Extensions["code"].(string)
	return code
}

// Response is a decoded GraphQL response.
type Response struct {
	Data   json.RawMessage `json:"data"`
	Errors []ResponseError `json:"errors,omitempty"`
}

// Get extracts a value from the response data using a gjson path such as
// "thought.reactions.#.reactionBody".
func (r Response) Get(path string) gjson.Result {
	if len(r.Data) == 0 {
		return gjson.Result{}
	}
	return gjson.GetBytes(r.Data, path)
}

// Err returns the response's GraphQL errors as an error, or nil.
func (r Response) Err() error {
	if len(r.Errors) == 0 {
		return nil
	}
	return ResponseErrors(r.Errors)
}
