package gojson

import (
	"io"

	"github.com/goccy/go-json"
	"github.com/tomruk/currency-go/serializer"
)

const Name = "github.com/goccy/go-json"

type Config struct {
	// Map keys are sorted on encode unless json.UnorderedMap() is one of these.
	EncodeOptions []json.EncodeOptionFunc
	DecodeOptions []json.DecodeOptionFunc
}

type gojsonSerializer struct {
	config Config
}

func (s *gojsonSerializer) Marshal(v any) ([]byte, error) {
	return json.MarshalWithOption(v, s.config.EncodeOptions...)
}

func (s *gojsonSerializer) Unmarshal(data []byte, v any) error {
	return json.UnmarshalWithOption(data, v, s.config.DecodeOptions...)
}

func (s *gojsonSerializer) NewEncoder(w io.Writer) serializer.JSONEncoder {
	return optionEncoder{Encoder: json.NewEncoder(w), options: s.config.EncodeOptions}
}

func (s *gojsonSerializer) Name() string { return Name }

// json.Encoder.Encode ignores options; they have to be passed on every call.
type optionEncoder struct {
	*json.Encoder
	options []json.EncodeOptionFunc
}

func (e optionEncoder) Encode(v any) error {
	return e.EncodeWithOption(v, e.options...)
}

// New returns a go-json serializer. config may be nil.
func New(config *Config) serializer.JSONSerializer {
	s := new(gojsonSerializer)
	if config != nil {
		s.config = *config
	}
	return s
}
