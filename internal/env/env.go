// Package env reads process environment variables behind an interface the tests can stub
package env

import (
	"os"
)

type Env interface {
	Get(key string) string
}

type lookupFunc func(key string) (string, bool)

func (f lookupFunc) Get(key string) string {
	value, _ := f(key)
	return value
}

func New() Env {
	return lookupFunc(os.LookupEnv)
}

type Stubs map[string]string

// NewWithStubs returns an Env seeing only the stubbed variables
func NewWithStubs(stubs Stubs) Env {
	return lookupFunc(func(key string) (string, bool) {
		value, ok := stubs[key]
		return value, ok
	})
}
