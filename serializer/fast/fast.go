// Package fast picks the quickest JSON library that runs on the target:
// sonic on amd64 Linux, Windows and macOS, go-json everywhere else.
package fast

import "github.com/tomruk/currency-go/serializer"

// Backend names a library fast can pick.
type Backend string

const (
	BackendSonic  Backend = "sonic"
	BackendGoJSON Backend = "go-json"
)

func New() serializer.JSONSerializer {
	return NewWithConfig(DefaultConfig())
}

// Selected returns the library New and NewWithConfig use on this platform.
func Selected() Backend { return selected }
