package utils

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"sort"
	"strings"
)

// ErrMalformedJSON marks a body that could not be parsed at all, as opposed
// to one that parsed but failed the closed-shape or type checks.
var ErrMalformedJSON = stderrors.New("malformed json body")

// FieldErrors maps a dotted field path to a human-readable message suitable
// for direct display.
type FieldErrors map[string]string

func (f FieldErrors) Error() string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return "invalid fields: " + strings.Join(keys, ", ")
}

// DecodeJSONStrict decodes a JSON body into dst, rejecting unknown top-level
// keys (closed shape) and wrong-typed fields. It returns ErrMalformedJSON for
// unparsable bodies and FieldErrors for shape violations.
func DecodeJSONStrict(r io.Reader, dst any) error {
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()

	err := decoder.Decode(dst)
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	switch {
	case stderrors.As(err, &typeErr):
		if typeErr.Field == "" {
			// Top-level value is not an object at all
			return ErrMalformedJSON
		}
		return FieldErrors{typeErr.Field: fmt.Sprintf("%s must be %s", typeErr.Field, friendlyTypeName(typeErr))}
	case isUnknownFieldError(err):
		return FieldErrors{unknownFieldName(err): "unknown field"}
	default:
		return ErrMalformedJSON
	}
}

func friendlyTypeName(typeErr *json.UnmarshalTypeError) string {
	switch typeErr.Type.Kind().String() {
	case "int", "int8", "int16", "int32", "int64", "uint", "uint8", "uint16", "uint32", "uint64":
		return "an integer"
	case "float32", "float64":
		return "a number"
	case "bool":
		return "a boolean"
	case "string":
		return "a string"
	default:
		return "a valid value"
	}
}

// encoding/json exposes unknown-field rejection only as an opaque error of
// the form: json: unknown field "name"
func isUnknownFieldError(err error) bool {
	return strings.HasPrefix(err.Error(), "json: unknown field ")
}

func unknownFieldName(err error) string {
	return strings.Trim(strings.TrimPrefix(err.Error(), "json: unknown field "), `"`)
}
