// Package apierror decodes the API's error envelope
// ({"error": string, "details": string|array|object}) and flattens it
// into a single display line. The details field is modeled as a tagged
// union over the shapes the server actually produces instead of ad hoc
// type probing.
package apierror

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Kind classifies an API error for recovery decisions.
type Kind int

const (
	KindUnknown Kind = iota
	KindNetwork
	KindValidation // 4xx with field details, recoverable by user edit
	KindNotFound
	KindConstraint // e.g. delete blocked by a reference
)

// DetailKind tags the shape of one details node.
type DetailKind int

const (
	DetailNone DetailKind = iota
	DetailString
	DetailList
	DetailObject
)

// Detail is one node of the details tree.
type Detail struct {
	Kind DetailKind

	Str     string   // DetailString: the literal text
	List    []Detail // DetailList: element nodes
	Msg     string   // DetailObject: "msg" value
	Message string   // DetailObject: "message" value
	Nested  *Detail  // DetailObject: nested "details"
}

// UnmarshalJSON decodes whichever shape the server sent. Unknown
// scalar shapes are taken literally rather than rejected.
func (d *Detail) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		d.Kind = DetailNone
		return nil
	}

	switch data[0] {
	case '"':
		d.Kind = DetailString
		return json.Unmarshal(data, &d.Str)
	case '[':
		d.Kind = DetailList
		return json.Unmarshal(data, &d.List)
	case '{':
		var obj struct {
			Msg     string  `json:"msg"`
			Message string  `json:"message"`
			Details *Detail `json:"details"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		d.Kind = DetailObject
		d.Msg = obj.Msg
		d.Message = obj.Message
		d.Nested = obj.Details
		return nil
	default:
		// Numbers, booleans: keep the literal text.
		d.Kind = DetailString
		d.Str = string(data)
		return nil
	}
}

// collect appends every message in the tree in document order.
func (d Detail) collect(out *[]string) {
	switch d.Kind {
	case DetailString:
		if d.Str != "" {
			*out = append(*out, d.Str)
		}
	case DetailList:
		for _, el := range d.List {
			el.collect(out)
		}
	case DetailObject:
		if d.Msg != "" {
			*out = append(*out, d.Msg)
		}
		if d.Message != "" {
			*out = append(*out, d.Message)
		}
		if d.Nested != nil {
			d.Nested.collect(out)
		}
	}
}

// APIError is a failed API call with its decoded envelope.
// StatusCode is zero when the request never reached the server.
type APIError struct {
	StatusCode int
	Message    string
	Details    Detail
}

// Error renders the flattened single-line form: the top-level message
// followed by every collected detail, joined by " | ".
func (e *APIError) Error() string {
	var parts []string
	if e.Message != "" {
		parts = append(parts, e.Message)
	}
	e.Details.collect(&parts)

	if len(parts) == 0 {
		return fmt.Sprintf("request failed with status %d", e.StatusCode)
	}

	out := parts[0]
	for _, p := range parts[1:] {
		out += " | " + p
	}
	return out
}

// Kind classifies by status code.
func (e *APIError) Kind() Kind {
	switch {
	case e.StatusCode == 0:
		return KindNetwork
	case e.StatusCode == 404:
		return KindNotFound
	case e.StatusCode == 409:
		return KindConstraint
	case e.StatusCode >= 400 && e.StatusCode < 500:
		return KindValidation
	default:
		return KindUnknown
	}
}

// Decode builds an APIError from a failure response body. Bodies that
// are not the JSON envelope fall back to their literal text.
func Decode(statusCode int, body []byte) *APIError {
	e := &APIError{StatusCode: statusCode}

	var envelope struct {
		Error   string  `json:"error"`
		Details *Detail `json:"details"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error != "" {
		e.Message = envelope.Error
		if envelope.Details != nil {
			e.Details = *envelope.Details
		}
		return e
	}

	if text := string(bytes.TrimSpace(body)); text != "" {
		e.Message = text
	}
	return e
}

// Format normalizes any error into one display line. A nil error
// yields the fallback, an APIError its flattened envelope, anything
// else its own message.
func Format(err error, fallback string) string {
	if err == nil {
		return fallback
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Error()
	}

	if msg := err.Error(); msg != "" {
		return msg
	}
	return fallback
}
