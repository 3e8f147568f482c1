package currency

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"unicode/utf8"

	"github.com/mitchellh/mapstructure"
	"github.com/tomruk/currency-go/serializer"
	"github.com/tomruk/currency-go/serializer/fast"
)

type DecoderConfig struct {
	// JSON backend used to parse payloads.
	//
	// Default: fast.New()
	JSONSerializer serializer.JSONSerializer

	// For debugging purposes. Leave it nil if it is of no use.
	Debugger Debugger
}

// Decoder turns currency documents into Lists.
// It holds no mutable state and is safe for concurrent use.
type Decoder struct {
	json  serializer.JSONSerializer
	debug Debugger
}

func NewDecoder(config *DecoderConfig) *Decoder {
	if config == nil {
		config = new(DecoderConfig)
	} else {
		// User can modify the config. We copy the config here in order to avoid problems.
		c := *config
		config = &c
	}

	d := &Decoder{
		json: config.JSONSerializer,
	}
	if d.json == nil {
		d.json = fast.New()
	}

	if config.Debugger != nil {
		d.debug = config.Debugger
	} else {
		d.debug = NewNoopDebugger()
	}
	d.debug = d.debug.WithContext("[currency] Decoder with serializer: " + d.json.Name())
	return d
}

var defaultDecoder = NewDecoder(nil)

// Decode decodes data with a decoder using the default configuration.
func Decode(data []byte) (List, error) {
	return defaultDecoder.Decode(data)
}

// DecodeReader decodes r with a decoder using the default configuration.
func DecodeReader(r io.Reader) (List, error) {
	return defaultDecoder.DecodeReader(r)
}

// DecodeMap converts m with a decoder using the default configuration.
func DecodeMap(m map[string]any) (List, error) {
	return defaultDecoder.DecodeMap(m)
}

// Decode parses data, a JSON object whose values are strings, and returns one
// Currency per key, sorted by acronym.
//
// If data is not valid JSON or is not shaped like that, the returned
// error is a *MalformedInputError.
func (d *Decoder) Decode(data []byte) (List, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, d.malformed(newDocumentError("", io.ErrUnexpectedEOF))
	}

	// Some serializers replace invalid sequences with U+FFFD, others keep
	// the raw bytes. Reject the payload before either happens.
	if !utf8.Valid(data) {
		return nil, d.malformed(newDocumentError("", ErrInvalidUTF8))
	}

	var m map[string]any
	err := d.json.Unmarshal(data, &m)
	if err != nil {
		// Valid JSON of the wrong shape is reported by its kind,
		// not by whatever the serializer had to say.
		var v any
		if d.json.Unmarshal(data, &v) == nil {
			return nil, d.malformed(newDocumentError(kindOf(v), err))
		}
		return nil, d.malformed(newDocumentError("", err))
	}

	// null unmarshals into a nil map without an error.
	if m == nil {
		return nil, d.malformed(newDocumentError(kindNull, nil))
	}

	return d.DecodeMap(m)
}

// DecodeReader reads r until EOF and decodes what it read.
// Errors returned by r are not MalformedInputErrors.
//
// The payload is buffered rather than handed to the serializer's stream
// decoder: json-iterator's Decoder reports a truncated document as success.
func (d *Decoder) DecodeReader(r io.Reader) (List, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("currency: reading input: %w", err)
	}
	return d.Decode(data)
}

// DecodeMap converts an already parsed document. Values must be strings,
// or of a type whose underlying type is string. Keys and values must be
// valid UTF-8.
func (d *Decoder) DecodeMap(m map[string]any) (List, error) {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	// Sorted up front so that the output order, and the key reported
	// when more than one value is malformed, don't depend on map iteration.
	sort.Strings(keys)

	currencies := make(List, 0, len(keys))
	for _, key := range keys {
		if !utf8.ValidString(key) {
			return nil, d.malformed(newEntryError(key, "", ErrInvalidUTF8))
		}
		name, err := toName(key, m[key])
		if err != nil {
			return nil, d.malformed(err)
		}
		currencies = append(currencies, Currency{Acronym: key, FullName: name})
	}

	d.debug.Log("Decoded", len(currencies), "currencies")
	return currencies, nil
}

// Encode writes currencies to w as a currency document, using the decoder's
// serializer. The document is followed by a newline.
func (d *Decoder) Encode(w io.Writer, currencies List) error {
	return d.json.NewEncoder(w).Encode(currencies.Map())
}

func (d *Decoder) malformed(err *MalformedInputError) error {
	d.debug.Log("Malformed input", err)
	return err
}

func toName(key string, v any) (string, *MalformedInputError) {
	switch kind := kindOf(v); kind {
	case kindString, kindOther:
	default:
		return "", newEntryError(key, kind, nil)
	}

	var name string
	err := mapstructure.Decode(v, &name)
	if err != nil {
		return "", newEntryError(key, fmt.Sprintf("%T", v), err)
	}
	if !utf8.ValidString(name) {
		return "", newEntryError(key, "", ErrInvalidUTF8)
	}
	return name, nil
}

const (
	kindNull    = "null"
	kindBoolean = "boolean"
	kindNumber  = "number"
	kindString  = "string"
	kindArray   = "array"
	kindObject  = "object"
	kindOther   = ""
)

// Implemented by json.Number and jsoniter.Number. Both have string as their
// underlying type, so they must be caught before mapstructure sees them.
type number interface {
	Float64() (float64, error)
}

func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return kindNull
	case bool:
		return kindBoolean
	case float64, float32, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, number:
		return kindNumber
	case string:
		return kindString
	case []any:
		return kindArray
	case map[string]any:
		return kindObject
	}
	return kindOther
}
