package strongint

import (
	"encoding"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

var (
	_ encoding.TextMarshaler   = Int[struct{}, int, NoValidation[int]]{}
	_ encoding.TextUnmarshaler = (*Int[struct{}, int, NoValidation[int]])(nil)
	_ json.Marshaler           = Int[struct{}, int, NoValidation[int]]{}
	_ json.Unmarshaler         = (*Int[struct{}, int, NoValidation[int]])(nil)
	_ yaml.Marshaler           = Int[struct{}, int, NoValidation[int]]{}
	_ yaml.Unmarshaler         = (*Int[struct{}, int, NoValidation[int]])(nil)
)

// MarshalText implements encoding.TextMarshaler, rendering the value in
// decimal.
func (x Int[Tag, N, V]) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The text must be a
// decimal integer within the representation's range; the parsed value runs
// through the init hook. Syntax failures wrap ErrInvalidText and range
// failures wrap ErrOutOfRange.
func (x *Int[Tag, N, V]) UnmarshalText(text []byte) error {
	bitSize := int(bitsOf[N]())
	if isUnsigned[N]() {
		u, err := strconv.ParseUint(string(text), 10, bitSize)
		if err != nil {
			return parseError(text, err)
		}
		x.Set(N(u))
		return nil
	}
	i, err := strconv.ParseInt(string(text), 10, bitSize)
	if err != nil {
		return parseError(text, err)
	}
	x.Set(N(i))
	return nil
}

// MarshalJSON implements json.Marshaler, encoding the value as a JSON
// number.
func (x Int[Tag, N, V]) MarshalJSON() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalJSON implements json.Unmarshaler. JSON null leaves the value
// untouched.
func (x *Int[Tag, N, V]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	return x.UnmarshalText(data)
}

// MarshalYAML implements yaml.Marshaler, encoding the value as a scalar.
func (x Int[Tag, N, V]) MarshalYAML() (any, error) {
	return x.value, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (x *Int[Tag, N, V]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: yaml node is not a scalar", ErrInvalidText)
	}
	return x.UnmarshalText([]byte(node.Value))
}

func parseError(text []byte, err error) error {
	if errors.Is(err, strconv.ErrRange) {
		return fmt.Errorf("%w: %q", ErrOutOfRange, text)
	}
	return fmt.Errorf("%w: %q", ErrInvalidText, text)
}
