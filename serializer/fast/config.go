package fast

import (
	"github.com/bytedance/sonic"
	gojson "github.com/tomruk/currency-go/serializer/go-json"
)

// Config carries options for both libraries. Only the one picked
// for the platform is used.
type Config struct {
	Sonic  sonic.Config
	GoJSON gojson.Config
}

func DefaultConfig() Config {
	return Config{
		Sonic: sonic.Config{
			// Decoded names outlive the payload they were read from.
			CopyString: true,
			// Currency lists are re-encoded as objects; keep that output stable.
			SortMapKeys: true,
			EscapeHTML:  true,
		},
		// go-json sorts map keys unless told otherwise.
		GoJSON: gojson.Config{},
	}
}
