package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	testKey   = "PROVISIONER_TEST_VARIABLE"
	testValue = "correct horse"
)

func assertGet(t *testing.T, e Env) {
	tests := map[string]string{
		testKey:                      testValue,
		"PROVISIONER_UNSET_VARIABLE": "",
	}

	for key, expected := range tests {
		assert.Equal(t, expected, e.Get(key), "Unexpected value of %s", key)
	}
}

func TestNew_Get(t *testing.T) {
	t.Setenv(testKey, testValue)

	assertGet(t, New())
}

func TestNewWithStubs_Get(t *testing.T) {
	t.Setenv(testKey, "from the process")

	assertGet(t, NewWithStubs(Stubs{testKey: testValue}))
}

func TestNewWithStubs_NilStubs(t *testing.T) {
	assert.Empty(t, NewWithStubs(nil).Get(testKey))
}
