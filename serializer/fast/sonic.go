//go:build amd64 && (linux || windows || darwin)

package fast

import (
	"github.com/tomruk/currency-go/serializer"
	"github.com/tomruk/currency-go/serializer/sonic"
)

const selected = BackendSonic

func NewWithConfig(config Config) serializer.JSONSerializer {
	return sonic.New(config.Sonic)
}
