//go:build !amd64 || (amd64 && !(linux || windows || darwin))

package fast

import (
	"github.com/tomruk/currency-go/serializer"
	gojson "github.com/tomruk/currency-go/serializer/go-json"
)

const selected = BackendGoJSON

func NewWithConfig(config Config) serializer.JSONSerializer {
	return gojson.New(&config.GoJSON)
}
