// Package storage holds the destinations the logger can write to besides stderr
package storage

import (
	"io"
)

type Storage interface {
	io.WriteCloser

	Open() error
}
