package stdjson

import (
	"encoding/json"
	"io"

	"github.com/tomruk/currency-go/serializer"
)

const Name = "encoding/json"

type stdjsonSerializer struct{}

func (stdjsonSerializer) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (stdjsonSerializer) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (stdjsonSerializer) NewEncoder(w io.Writer) serializer.JSONEncoder {
	return json.NewEncoder(w)
}

func (stdjsonSerializer) Name() string { return Name }

func New() serializer.JSONSerializer {
	return stdjsonSerializer{}
}
