package utils

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type decodeTarget struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
	Flag  bool   `json:"flag"`
}

func TestDecodeJSONStrict_Valid(t *testing.T) {
	var dst decodeTarget
	err := DecodeJSONStrict(strings.NewReader(`{"name":"a","count":3,"flag":true}`), &dst)
	require.NoError(t, err)
	assert.Equal(t, decodeTarget{Name: "a", Count: 3, Flag: true}, dst)
}

func TestDecodeJSONStrict_Malformed(t *testing.T) {
	var dst decodeTarget
	err := DecodeJSONStrict(strings.NewReader(`{"name":`), &dst)
	assert.ErrorIs(t, err, ErrMalformedJSON)
}

func TestDecodeJSONStrict_NonObjectBody(t *testing.T) {
	var dst decodeTarget
	err := DecodeJSONStrict(strings.NewReader(`"just a string"`), &dst)
	assert.ErrorIs(t, err, ErrMalformedJSON)
}

func TestDecodeJSONStrict_UnknownField(t *testing.T) {
	var dst decodeTarget
	err := DecodeJSONStrict(strings.NewReader(`{"name":"a","nope":1}`), &dst)

	var fields FieldErrors
	require.True(t, errors.As(err, &fields))
	assert.Equal(t, FieldErrors{"nope": "unknown field"}, fields)
}

func TestDecodeJSONStrict_WrongType(t *testing.T) {
	cases := []struct {
		name string
		body string
		want FieldErrors
	}{
		{"string for int", `{"count":"three"}`, FieldErrors{"count": "count must be an integer"}},
		{"string for bool", `{"flag":"yes"}`, FieldErrors{"flag": "flag must be a boolean"}},
		{"number for string", `{"name":42}`, FieldErrors{"name": "name must be a string"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var dst decodeTarget
			err := DecodeJSONStrict(strings.NewReader(tc.body), &dst)

			var fields FieldErrors
			require.True(t, errors.As(err, &fields))
			assert.Equal(t, tc.want, fields)
		})
	}
}

func TestFieldErrors_ErrorListsSortedKeys(t *testing.T) {
	err := FieldErrors{"b": "x", "a": "y"}
	assert.Equal(t, "invalid fields: a, b", err.Error())
}
