package jsoniter

import (
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/tomruk/currency-go/serializer"
)

const Name = "github.com/json-iterator/go"

type jsoniterSerializer struct {
	api jsoniter.API
}

func (s *jsoniterSerializer) Marshal(v any) ([]byte, error) {
	return s.api.Marshal(v)
}

func (s *jsoniterSerializer) Unmarshal(data []byte, v any) error {
	return s.api.Unmarshal(data, v)
}

func (s *jsoniterSerializer) NewEncoder(w io.Writer) serializer.JSONEncoder {
	return s.api.NewEncoder(w)
}

func (s *jsoniterSerializer) Name() string { return Name }

// New returns a serializer that behaves like encoding/json,
// including sorted map keys on encode.
func New() serializer.JSONSerializer {
	return &jsoniterSerializer{api: jsoniter.ConfigCompatibleWithStandardLibrary}
}
