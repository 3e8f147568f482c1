// Package serializer defines the JSON backend used by the currency decoder.
//
// Subpackages wrap encoding/json, goccy/go-json, bytedance/sonic and
// json-iterator/go behind the same interface. Use fast.New() unless you have
// a reason to pick one.
package serializer

import "io"

type (
	JSONSerializer interface {
		Marshal(v any) ([]byte, error)
		Unmarshal(data []byte, v any) error

		// Documents are read whole and passed to Unmarshal, so only the
		// encoding side is streamed.
		NewEncoder(w io.Writer) JSONEncoder

		// Name of the underlying JSON library. Used in debug output.
		Name() string
	}

	JSONEncoder interface {
		Encode(v any) error
	}
)
