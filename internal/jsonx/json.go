// Package jsonx routes all JSON encoding in the module through a single
// jsoniter instance configured for standard-library compatibility.
package jsonx

import (
	"encoding/json"

	jsoniter "github.com/json-iterator/go"
)

var (
	// JSON is the jsoniter.API instance used throughout the module.
	JSON = jsoniter.ConfigCompatibleWithStandardLibrary

	// Marshal is a shorthand for JSON.Marshal.
	Marshal = JSON.Marshal

	// Unmarshal is a shorthand for JSON.Unmarshal.
	Unmarshal = JSON.Unmarshal
)

// RawMessage is re-exported so callers need no second json import.
type RawMessage = json.RawMessage
