// Package codec encodes counters as an object mapping each element to its
// count, and decodes them back.
package codec

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"go.lepak.sg/multiset/counter"
)

// ErrDecode is returned, wrapped, when data cannot be decoded into a counter.
var ErrDecode = errors.New("cannot decode counter")

// Codec marshals and unmarshals values to and from a serialized form.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

type yamlCodec struct{}

func (yamlCodec) Marshal(v any) ([]byte, error)      { return yaml.Marshal(v) }
func (yamlCodec) Unmarshal(data []byte, v any) error { return yaml.Unmarshal(data, v) }

var (
	// JSON behaves like encoding/json: map keys are sorted, and integer
	// elements are written as strings.
	JSON Codec = jsoniter.ConfigCompatibleWithStandardLibrary

	YAML Codec = yamlCodec{}
)

// ByName returns the codec called name, either "json" or "yaml".
func ByName(name string) (Codec, error) {
	switch name {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	}
	return nil, errors.Errorf("unknown format %q", name)
}

// Encode writes every element of c with its count, including zero and
// negative counts.
func Encode[E comparable, N counter.Number](cd Codec, c *counter.Counter[E, N]) ([]byte, error) {
	data, err := cd.Marshal(counter.ToMap(c))
	if err != nil {
		return nil, errors.Wrapf(err, "encode counter of %d elements", c.Len())
	}
	return data, nil
}

// Decode reads a counter written by Encode. Counts are taken as they are.
// A null document gives an empty counter.
func Decode[E comparable, N counter.Number](cd Codec, data []byte) (*counter.Counter[E, N], error) {
	var m map[E]N
	if err := cd.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrapf(ErrDecode, "%v", err)
	}
	return counter.FromMap(m), nil
}
