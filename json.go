package currency

import "bytes"

// MarshalJSON encodes the list back into a currency document:
// an object of acronym -> full name.
//
// It always uses the default serializer (fast.New()), whichever serializer
// decoded the list. Use Decoder.Encode to encode with a chosen one.
func (l List) MarshalJSON() ([]byte, error) {
	return defaultDecoder.json.Marshal(l.Map())
}

// UnmarshalJSON lets a List be the target of any JSON unmarshaler,
// or a field of a struct that is.
//
// As with encoding/json, null is a no-op. Use Decode to reject it.
func (l *List) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	currencies, err := defaultDecoder.Decode(data)
	if err != nil {
		return err
	}
	*l = currencies
	return nil
}
