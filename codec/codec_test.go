package codec

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.lepak.sg/multiset/counter"
)

func TestEncode(t *testing.T) {
	c := counter.FromMap(map[string]int{"b": 1, "a": 2, "z": -1})

	tests := []struct {
		name  string
		codec Codec
		want  string
	}{
		{name: "json", codec: JSON, want: `{"a":2,"b":1,"z":-1}`},
		{name: "yaml", codec: YAML, want: "a: 2\nb: 1\nz: -1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode(tt.codec, c)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestEncode_Unsupported(t *testing.T) {
	type point struct{ x, y int }
	c := counter.Of(point{1, 2})

	_, err := Encode(JSON, c)
	assert.Error(t, err)
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name  string
		codec Codec
		data  string
		want  map[rune]int
	}{
		{name: "json", codec: JSON, data: `{"97":3,"98":-1}`, want: map[rune]int{'a': 3, 'b': -1}},
		{name: "json null", codec: JSON, data: `null`, want: map[rune]int{}},
		{name: "yaml", codec: YAML, data: "97: 3\n98: -1\n", want: map[rune]int{'a': 3, 'b': -1}},
		{name: "yaml empty", codec: YAML, data: "", want: map[rune]int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode[rune, int](tt.codec, []byte(tt.data))
			require.NoError(t, err)
			assert.Equal(t, tt.want, counter.ToMap(got))
		})
	}
}

func TestDecode_Error(t *testing.T) {
	tests := []struct {
		name  string
		codec Codec
		data  string
	}{
		{name: "json syntax", codec: JSON, data: `{"a":`},
		{name: "json count type", codec: JSON, data: `{"a":"many"}`},
		{name: "yaml list", codec: YAML, data: "- a\n- b\n"},
		{name: "yaml negative unsigned", codec: YAML, data: "a: -1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode[string, uint](tt.codec, []byte(tt.data))
			assert.Nil(t, got)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrDecode)
			assert.Equal(t, ErrDecode, errors.Cause(err))
			assert.Contains(t, err.Error(), "cannot decode counter")
			assert.NotEqual(t, ErrDecode.Error(), err.Error(), "cause is in the message")
		})
	}
}

func TestRoundTrip(t *testing.T) {
	for _, cd := range []Codec{JSON, YAML} {
		c := counter.FromSlice[float64]([]string{"x", "y", "x"})
		c.Set("w", -0.5)

		data, err := Encode(cd, c)
		require.NoError(t, err)

		got, err := Decode[string, float64](cd, data)
		require.NoError(t, err)
		assert.True(t, c.Equal(got), "%s != %s", c, got)
	}
}

func TestByName(t *testing.T) {
	cd, err := ByName("json")
	require.NoError(t, err)
	assert.Equal(t, JSON, cd)

	cd, err = ByName("yml")
	require.NoError(t, err)
	assert.Equal(t, YAML, cd)

	_, err = ByName("toml")
	assert.EqualError(t, err, `unknown format "toml"`)
}
