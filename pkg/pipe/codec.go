package pipe

import (
	"bytes"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

var jsonNull = []byte("null")

// MarshalJSON encodes an absent Option as null.
func (o Option[T]) MarshalJSON() ([]byte, error) {
	if !o.present {
		return jsonNull, nil
	}
	return json.Marshal(o.value)
}

// UnmarshalJSON decodes null as absence. A field missing from the document
// leaves the Option untouched, which for a fresh struct means absent.
func (o *Option[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		*o = None[T]()
		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}

// MarshalYAML encodes an absent Option as null.
func (o Option[T]) MarshalYAML() (any, error) {
	if !o.present {
		return nil, nil
	}
	return o.value, nil
}

// UnmarshalYAML decodes a non-null node into a present value. yaml.v3 does
// not call unmarshalers for null nodes, so a null, like a missing key, leaves
// the Option untouched: absent for a fresh struct, unchanged otherwise.
func (o *Option[T]) UnmarshalYAML(node *yaml.Node) error {
	var v T
	if err := node.Decode(&v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}
