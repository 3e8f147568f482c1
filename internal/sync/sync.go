//go:build !deadlock

// Package sync lets the module swap its locks for go-deadlock's
// when built with the deadlock tag.
package sync

import "sync"

type Mutex = sync.Mutex
