package model

import (
	"strings"
	"testing"

	"users/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringList_Value(t *testing.T) {
	v, err := StringList{"a@example.com", "b@example.com"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `["a@example.com","b@example.com"]`, v)

	v, err = StringList(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, `[]`, v)
}

func TestStringList_ValueTooLong(t *testing.T) {
	long := StringList{strings.Repeat("x", MaxListLength)}

	_, err := long.Value()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrListTooLong))
}

func TestStringList_Scan(t *testing.T) {
	tests := []struct {
		name string
		src  any
		want StringList
	}{
		{name: "string", src: `["x","y"]`, want: StringList{"x", "y"}},
		{name: "bytes", src: []byte(`["x"]`), want: StringList{"x"}},
		{name: "null", src: nil, want: StringList{}},
		{name: "empty", src: "", want: StringList{}},
		{name: "json null", src: "null", want: StringList{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got StringList
			require.NoError(t, got.Scan(tt.src))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStringList_ScanRejectsGarbage(t *testing.T) {
	var got StringList
	assert.Error(t, got.Scan(42))
	assert.Error(t, got.Scan("not json"))
}
